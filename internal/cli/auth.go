package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/avoskres/parlor/internal/common"
)

func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.auth.Register(ctx, userName, string(password))
	switch {
	case errors.Is(err, common.ErrorValidation):
		printlnFn("Please enter both username and password!")
	case errors.Is(err, common.ErrorAlreadyExists):
		printlnFn("Username already exists!")
	case err != nil:
		a.logger.Error(ctx, "registration failed", "error", err)
		printlnFn("Registration failed, please try again.")
	default:
		printlnFn("Account created successfully!")
	}
	return err
}

func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Authenticate(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			printlnFn("Invalid username or password!")
		} else {
			a.logger.Error(ctx, "login failed", "error", err)
			printlnFn("Login failed, please try again.")
		}
		return err
	}

	a.session.Login(user.UserName)
	printlnFn(fmt.Sprintf("Welcome, %s!", user.UserName))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	a.lastResults = nil
	printlnFn("Logged out.")
	return nil
}
