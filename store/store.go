package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"bioskopi-cli/model"
)

const (
	userFile     = "user.json"
	tokenFile    = "token.json"
	loggedInFile = "logged_in.json"
)

type tokenRecord struct {
	Token string `json:"token"`
}

type loggedInRecord struct {
	LoggedIn bool `json:"logged_in"`
}

// SaveUser persists the logged-in user's profile.
func SaveUser(user model.User) error {
	return saveJSON(userFile, user)
}

// LoadUser returns the stored user profile, or the zero User when no
// profile has been saved.
func LoadUser() (model.User, error) {
	var user model.User
	if err := loadJSON(userFile, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// SaveToken persists the auth token.
func SaveToken(token string) error {
	return saveJSON(tokenFile, tokenRecord{Token: token})
}

// LoadToken returns the stored auth token, empty when none is saved.
func LoadToken() (string, error) {
	var record tokenRecord
	if err := loadJSON(tokenFile, &record); err != nil {
		return "", err
	}
	return record.Token, nil
}

// SetLoggedIn persists the logged-in flag.
func SetLoggedIn(loggedIn bool) error {
	return saveJSON(loggedInFile, loggedInRecord{LoggedIn: loggedIn})
}

// IsLoggedIn reports whether a login flag has been stored.
func IsLoggedIn() (bool, error) {
	var record loggedInRecord
	if err := loadJSON(loggedInFile, &record); err != nil {
		return false, err
	}
	return record.LoggedIn, nil
}

// ClearAll removes the user profile, token and login flag. Every file is
// attempted; the first failure is reported.
func ClearAll() error {
	var firstErr error
	for _, name := range []string{userFile, tokenFile, loggedInFile} {
		path, err := configPath(name)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func saveJSON(name string, value any) error {
	path, err := configPath(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func loadJSON(name string, out any) error {
	path, err := configPath(name)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, out)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bioskopi-cli", name), nil
}
