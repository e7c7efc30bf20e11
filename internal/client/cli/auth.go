package cli

import (
	"context"
	"fmt"
	"time"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, signs in and loads the profile.
//
// The password is wiped before returning. A failed sign-in leaves any
// previous session untouched.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter login or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	if err := a.authService.Login(ctx, identifier, string(password)); err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return a.Profile(ctx)
}

// Logout clears the stored session and the cached profile.
func (a *App) Logout(ctx context.Context) error {
	a.profile = nil
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the identity carried by the stored token.
func (a *App) WhoAmI(ctx context.Context) error {
	id, exp, err := a.authService.Identity(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if exp.IsZero() {
		fmt.Fprintf(a.out, "Logged in as %s\n", id)
		return nil
	}
	fmt.Fprintf(a.out, "Logged in as %s, session expires %s\n", id, exp.Local().Format(time.DateTime))
	return nil
}
