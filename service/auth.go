package service

import (
	"context"
	"errors"
	"net/url"

	"bioskopi-cli/model"
)

// Login authenticates against the backend and returns the stored user
// profile. Bad credentials come back as a DomainError with the server
// message.
func (c *Client) Login(ctx context.Context, username string, password string) (model.User, error) {
	if username == "" || password == "" {
		return model.User{}, errors.New("username and password are required")
	}
	form := url.Values{}
	form.Set("user_name", username)
	form.Set("user_password", password)

	var user model.User
	if err := c.postForm(ctx, "login.php", form, &user); err != nil {
		return model.User{}, err
	}
	if user.Id == "" {
		return model.User{}, errors.New("server did not return a user")
	}
	return user, nil
}

// Register creates a new account. Some backend deployments log the new
// account in immediately and return the user; others only confirm, in
// which case the zero User is returned and the caller should route to
// login.
func (c *Client) Register(ctx context.Context, username string, password string) (model.User, error) {
	if username == "" || password == "" {
		return model.User{}, errors.New("username and password are required")
	}
	form := url.Values{}
	form.Set("user_name", username)
	form.Set("user_password", password)

	var user model.User
	if err := c.postForm(ctx, "register.php", form, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}
