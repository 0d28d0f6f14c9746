package cli

import (
	"context"

	"github.com/dmitrijs2005/famousshop/internal/accounts"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, string, error) {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

// Register prompts for a username and password and creates the account.
//
// Recoverable account errors are shown to the user and nil is returned;
// store failures are returned unchanged.
func (a *App) Register(ctx context.Context) error {
	username, password, err := a.readCredentials()
	if err != nil {
		return err
	}

	if err := a.accounts.Register(ctx, username, password); err != nil {
		if msg := accounts.Message(err); msg != "" {
			a.println(msg)
			return nil
		}
		return err
	}

	a.println("User created successfully!")
	return nil
}

// Login prompts for credentials and, when they match a registered account,
// marks the session logged in.
func (a *App) Login(ctx context.Context) error {
	username, password, err := a.readCredentials()
	if err != nil {
		return err
	}

	if err := a.accounts.Authenticate(ctx, username, password); err != nil {
		if msg := accounts.Message(err); msg != "" {
			a.println(msg)
			return nil
		}
		return err
	}

	if err := a.session.Login(ctx); err != nil {
		return err
	}

	a.println("Login successful!")
	return nil
}

// Logout clears the session flag.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out")
	return nil
}
