package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/db"
	svcErr "github.com/oggyb/muzz-dating/internal/errors"
	"github.com/oggyb/muzz-dating/internal/service/account"
	"github.com/oggyb/muzz-dating/internal/testutil"
)

func newService(t *testing.T) (*account.Service, *testutil.Env, *auth.Issuer) {
	t.Helper()
	env := testutil.NewEnv(t)
	issuer := auth.NewIssuer(env.App.Config)
	return account.NewService(env.App, issuer), env, issuer
}

func validProfile() account.ProfileInput {
	return account.ProfileInput{
		Name:      "Alice",
		Age:       29,
		Gender:    db.GenderFemale,
		City:      "London",
		Photos:    []string{"a.jpg", "b.jpg"},
		Interests: []string{"hiking", "jazz"},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, issuer := newService(t)

	sess, err := svc.Register(ctx, "  Alice@Example.COM ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", sess.User.Email)
	assert.NotEqual(t, "password123", sess.User.PasswordHash)

	id, err := issuer.Parse(sess.Token.Value)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, id)

	login, err := svc.Login(ctx, "ALICE@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, login.User.ID)

	_, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, svcErr.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, svcErr.ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	_, err := svc.Register(ctx, "not-an-email", "password123")
	assert.ErrorIs(t, err, svcErr.ErrInvalidArgument)

	_, err = svc.Register(ctx, "a@example.com", "short")
	assert.ErrorIs(t, err, svcErr.ErrInvalidArgument)

	_, err = svc.Register(ctx, "a@example.com", "password123")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "A@example.com", "password456")
	assert.ErrorIs(t, err, svcErr.ErrEmailTaken)
}

func TestUpsertProfile(t *testing.T) {
	ctx := context.Background()
	svc, env, _ := newService(t)
	u := testutil.CreateUser(t, env.DB, "u@test.com")

	_, err := svc.GetProfile(ctx, u.ID)
	assert.ErrorIs(t, err, svcErr.ErrNotFound)

	p, err := svc.UpsertProfile(ctx, u.ID, validProfile())
	require.NoError(t, err)
	assert.Equal(t, db.LookingForEveryone, p.LookingFor)
	assert.Equal(t, 18, p.MinAge)
	assert.Equal(t, 99, p.MaxAge)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Photos())

	in := validProfile()
	in.Name = "Alice B"
	in.Photos = nil
	in.Interests = nil
	_, err = svc.UpsertProfile(ctx, u.ID, in)
	require.NoError(t, err)

	got, err := svc.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID, "updated in place")
	assert.Equal(t, "Alice B", got.Name)
	assert.Empty(t, got.Photos())
	assert.Equal(t, db.Interests{}, got.Interests)

	var count int64
	env.DB.Model(&db.Profile{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpsertProfileValidation(t *testing.T) {
	ctx := context.Background()
	svc, env, _ := newService(t)
	u := testutil.CreateUser(t, env.DB, "u@test.com")

	tests := []struct {
		name   string
		mutate func(*account.ProfileInput)
	}{
		{"missing name", func(p *account.ProfileInput) { p.Name = "  " }},
		{"under age", func(p *account.ProfileInput) { p.Age = 17 }},
		{"unknown gender", func(p *account.ProfileInput) { p.Gender = "robot" }},
		{"unknown looking_for", func(p *account.ProfileInput) { p.LookingFor = "other" }},
		{"min age too low", func(p *account.ProfileInput) { p.MinAge = 16 }},
		{"inverted age range", func(p *account.ProfileInput) { p.MinAge = 40; p.MaxAge = 30 }},
		{"too many photos", func(p *account.ProfileInput) { p.Photos = []string{"1", "2", "3", "4"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProfile()
			tt.mutate(&in)
			_, err := svc.UpsertProfile(ctx, u.ID, in)
			assert.ErrorIs(t, err, svcErr.ErrInvalidArgument)
		})
	}

	_, err := svc.UpsertProfile(ctx, 9999, validProfile())
	assert.ErrorIs(t, err, svcErr.ErrNotFound)
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	svc, env, _ := newService(t)

	sess, err := svc.Register(ctx, "gone@test.com", "password123")
	require.NoError(t, err)
	_, err = svc.UpsertProfile(ctx, sess.User.ID, validProfile())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, sess.User.ID))

	_, err = svc.GetProfile(ctx, sess.User.ID)
	assert.ErrorIs(t, err, svcErr.ErrNotFound)
	_, err = svc.Login(ctx, "gone@test.com", "password123")
	assert.ErrorIs(t, err, svcErr.ErrInvalidCredentials)

	assert.ErrorIs(t, svc.DeleteAccount(ctx, sess.User.ID), svcErr.ErrNotFound)

	var count int64
	env.DB.Model(&db.Profile{}).Count(&count)
	assert.Zero(t, count)
}
