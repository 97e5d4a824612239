package tui

import (
	"bioskopi-cli/model"
	"bioskopi-cli/store"
)

// session is the single source of truth for the logged-in user. It is
// loaded from the store once at startup and written back only on login
// and logout; screens read it through the app model instead of reaching
// for ambient globals.
type session struct {
	user     model.User
	loggedIn bool
}

func loadSession() session {
	user, err := store.LoadUser()
	if err != nil {
		return session{}
	}
	loggedIn, err := store.IsLoggedIn()
	if err != nil {
		return session{}
	}
	return session{user: user, loggedIn: loggedIn && user.Id != ""}
}

func (s *session) login(user model.User) error {
	s.user = user
	s.loggedIn = true
	if err := store.SaveUser(user); err != nil {
		return err
	}
	return store.SetLoggedIn(true)
}

func (s *session) logout() error {
	s.user = model.User{}
	s.loggedIn = false
	return store.ClearAll()
}
