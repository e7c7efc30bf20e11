package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/xpboard/internal/client/models"
)

// load fetches a fresh snapshot. Any failure clears the session: a profile
// that cannot be loaded is treated as a dead session.
func (a *App) load(ctx context.Context) (*models.Profile, error) {
	p, err := a.profileService.LoadProfile(ctx)
	if err != nil {
		a.profile = nil
		fmt.Fprintf(a.out, "Failed to load profile: %v\n", err)
		if cerr := a.authService.Logout(ctx); cerr != nil {
			a.log.Warn(ctx, "clearing session after failed load", "err", cerr)
		}
		return nil, err
	}
	a.profile = p
	return p, nil
}

// current returns the cached snapshot, loading one if needed.
func (a *App) current(ctx context.Context) (*models.Profile, error) {
	if a.profile != nil {
		return a.profile, nil
	}
	return a.load(ctx)
}

// Profile reloads and prints the whole profile.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.load(ctx)
	if err != nil {
		return err
	}
	renderProfile(a.out, p)
	return nil
}

func (a *App) XP(ctx context.Context) error {
	p, err := a.current(ctx)
	if err != nil {
		return err
	}
	renderXP(a.out, p.XP)
	return nil
}

func (a *App) Audit(ctx context.Context) error {
	p, err := a.current(ctx)
	if err != nil {
		return err
	}
	renderAudit(a.out, p.Audit)
	return nil
}

func (a *App) Grades(ctx context.Context) error {
	p, err := a.current(ctx)
	if err != nil {
		return err
	}
	renderGrades(a.out, p.Grades)
	renderProjects(a.out, p.Projects)
	return nil
}
