package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/xpboard/internal/client/models"
	"github.com/dmitrijs2005/xpboard/internal/common"
	"github.com/dmitrijs2005/xpboard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ fakes ------------

type fakeAuth struct {
	loggedIn bool
	loginErr error

	id  models.Identity
	exp time.Time

	logins  []string
	logouts int
}

func (f *fakeAuth) Login(_ context.Context, identifier, password string) error {
	f.logins = append(f.logins, identifier+":"+password)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = true
	return nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	f.loggedIn = false
	return nil
}

func (f *fakeAuth) IsAuthenticated(context.Context) bool { return f.loggedIn }

func (f *fakeAuth) Identity(context.Context) (models.Identity, time.Time, error) {
	if !f.loggedIn {
		return models.Identity{}, time.Time{}, common.ErrNotAuthenticated
	}
	return f.id, f.exp, nil
}

type fakeProfiles struct {
	profile *models.Profile
	err     error
	loads   int
}

func (f *fakeProfiles) FetchUser(context.Context) (models.User, error) { return f.profile.User, f.err }
func (f *fakeProfiles) FetchXPTransactions(context.Context) ([]models.Transaction, error) {
	return f.profile.XP, f.err
}
func (f *fakeProfiles) FetchCompletedProjectXP(context.Context) ([]models.Transaction, error) {
	return f.profile.Projects, f.err
}
func (f *fakeProfiles) FetchAuditRatio(context.Context) (models.AuditAggregate, error) {
	return f.profile.Audit, f.err
}
func (f *fakeProfiles) FetchProjectGrades(context.Context) ([]models.Grade, error) {
	return f.profile.Grades, f.err
}
func (f *fakeProfiles) LoadProfile(context.Context) (*models.Profile, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func sampleProfile() *models.Profile {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	libft := models.Object{Name: "libft", Type: models.ObjectTypeProject}
	return &models.Profile{
		User: models.User{ID: 42, Login: "jdoe", Email: "jdoe@example.com", CreatedAt: day},
		XP: []models.Transaction{
			{Amount: 800, CreatedAt: day, Object: libft},
			{Amount: 1200, CreatedAt: day.Add(time.Hour), Object: libft},
		},
		Audit:    models.AuditAggregate{Up: 30_000, Down: 10_000, Summed: true, Ratio: 3, Rounded: 3},
		Grades:   []models.Grade{{Grade: 1.2, CreatedAt: day, Object: libft}},
		Projects: []models.Transaction{{Amount: 1200, Object: libft}},
	}
}

func newTestApp(auth *fakeAuth, profiles *fakeProfiles, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		log:            logging.Discard(),
		authService:    auth,
		profileService: profiles,
		reader:         rdr(input),
		out:            &out,
	}, &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := getPassword
	getPassword = func(io.Writer) ([]byte, error) {
		return []byte(pw), nil
	}
	t.Cleanup(func() { getPassword = old })
}

// ------------ tests ------------

func TestLogin_SuccessLoadsProfile(t *testing.T) {
	stubPassword(t, "pw")
	auth := &fakeAuth{}
	profiles := &fakeProfiles{profile: sampleProfile()}
	app, out := newTestApp(auth, profiles, "jdoe\n")

	require.NoError(t, app.Login(context.Background()))

	assert.Equal(t, []string{"jdoe:pw"}, auth.logins)
	assert.Equal(t, 1, profiles.loads)
	assert.Equal(t, "(jdoe)", app.status())
	assert.Contains(t, out.String(), "Login successful")
	assert.Contains(t, out.String(), "jdoe (#42)")
}

func TestLogin_Failure(t *testing.T) {
	stubPassword(t, "bad")
	auth := &fakeAuth{loginErr: fmt.Errorf("wrapped: %w", common.ErrAuthenticationFailed)}
	profiles := &fakeProfiles{profile: sampleProfile()}
	app, out := newTestApp(auth, profiles, "jdoe\n")

	err := app.Login(context.Background())
	require.ErrorIs(t, err, common.ErrAuthenticationFailed)
	assert.Zero(t, profiles.loads)
	assert.Contains(t, out.String(), "Login unsuccessful")
	assert.Empty(t, app.status())
}

func TestProfile_FailureClearsSession(t *testing.T) {
	auth := &fakeAuth{loggedIn: true}
	profiles := &fakeProfiles{err: fmt.Errorf("%s: %w", "Audit data", errors.New("HTTP error! status: 500"))}
	app, out := newTestApp(auth, profiles, "")
	app.profile = sampleProfile()

	err := app.Profile(context.Background())
	require.Error(t, err)

	assert.Nil(t, app.profile, "no partial state after a failed load")
	assert.Equal(t, 1, auth.logouts)
	assert.False(t, auth.loggedIn)
	assert.Contains(t, out.String(), "Failed to load profile: Audit data: HTTP error! status: 500")
}

func TestSections_UseCachedProfile(t *testing.T) {
	auth := &fakeAuth{loggedIn: true}
	profiles := &fakeProfiles{profile: sampleProfile()}
	app, out := newTestApp(auth, profiles, "")
	ctx := context.Background()

	require.NoError(t, app.XP(ctx))
	require.NoError(t, app.Audit(ctx))
	require.NoError(t, app.Grades(ctx))
	assert.Equal(t, 1, profiles.loads)

	s := out.String()
	assert.Contains(t, s, "Cumulative XP")
	assert.Contains(t, s, "2.00 kB")
	assert.Contains(t, s, "Audit ratio 3.0")
	assert.Contains(t, s, "libft")
	assert.Contains(t, s, "pass")
}

func TestLogoutAndWhoAmI(t *testing.T) {
	exp := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	auth := &fakeAuth{loggedIn: true, id: models.ByID(42), exp: exp}
	app, out := newTestApp(auth, &fakeProfiles{}, "")
	app.profile = sampleProfile()
	ctx := context.Background()

	require.NoError(t, app.WhoAmI(ctx))
	assert.Contains(t, out.String(), "Logged in as id:42, session expires")

	require.NoError(t, app.Logout(ctx))
	assert.Nil(t, app.profile)
	assert.Contains(t, out.String(), "Logged out")

	err := app.WhoAmI(ctx)
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.True(t, strings.HasSuffix(out.String(), "You are not logged in. Please log in to continue\n"))
}

func TestRenderAudit_Infinite(t *testing.T) {
	var out bytes.Buffer
	renderAudit(&out, models.AuditAggregate{Up: 5, Ratio: math.Inf(1), Rounded: math.Inf(1)})
	assert.Contains(t, out.String(), "Audit ratio ∞")
	assert.Contains(t, out.String(), "received "+strings.Repeat(".", barWidth)+" 0")
}

func TestBar(t *testing.T) {
	assert.Equal(t, strings.Repeat(".", barWidth), bar(0, 10))
	assert.Equal(t, strings.Repeat(".", barWidth), bar(5, 0))
	assert.Equal(t, strings.Repeat("#", barWidth), bar(10, 10))
	assert.Equal(t, strings.Repeat("#", barWidth/2)+strings.Repeat(".", barWidth/2), bar(5, 10))
}

func TestRenderEmptySections(t *testing.T) {
	var out bytes.Buffer
	renderXP(&out, nil)
	renderGrades(&out, nil)
	renderProjects(&out, nil)
	assert.Contains(t, out.String(), "no XP yet")
	assert.Contains(t, out.String(), "no graded projects")
	assert.Contains(t, out.String(), "no completed projects")
}
