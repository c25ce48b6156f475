// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trananh/movira/internal/platform/apperr"
	"github.com/trananh/movira/internal/platform/dberr"
	"github.com/trananh/movira/internal/platform/sec"
)

// # Test Doubles

type fakeUserRepo struct {
	users map[string]*User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*User{}}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, userID, newHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return dberr.ErrNotFound
	}
	u.PasswordHash = newHash
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*Session // keyed by id
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*Session{}}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*Session, error) {
	for _, s := range r.sessions {
		if s.TokenHash == tokenHash && !s.IsRevoked && s.ExpiresAt.After(time.Now()) {
			return s, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeSessionRepo) Revoke(_ context.Context, sessionID string) error {
	if s, ok := r.sessions[sessionID]; ok {
		s.IsRevoked = true
		return nil
	}
	return dberr.ErrNotFound
}

func (r *fakeSessionRepo) RevokeAll(_ context.Context, userID string) error {
	for _, s := range r.sessions {
		if s.UserID == userID {
			s.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeSessionRepo) live(userID string) int {
	count := 0
	for _, s := range r.sessions {
		if s.UserID == userID && !s.IsRevoked {
			count++
		}
	}
	return count
}

type fakeResetRepo struct {
	tokens map[string]string // token -> userID
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: map[string]string{}}
}

func (r *fakeResetRepo) Set(_ context.Context, token, userID string, _ time.Duration) error {
	r.tokens[token] = userID
	return nil
}

func (r *fakeResetRepo) Get(_ context.Context, token string) (string, error) {
	if userID, ok := r.tokens[token]; ok {
		return userID, nil
	}
	return "", apperr.NotFound("Reset token is invalid or expired")
}

func (r *fakeResetRepo) Delete(_ context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

type staticTokenProvider struct{}

func (staticTokenProvider) GenerateAccessToken(userID, username, role string, _ time.Duration) (string, error) {
	return "jwt-" + userID, nil
}

func newTestService() (*Service, *fakeUserRepo, *fakeSessionRepo, *fakeResetRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	resets := newFakeResetRepo()
	return NewService(users, sessions, resets, staticTokenProvider{}), users, sessions, resets
}

func registerMember(t *testing.T, service *Service) *User {
	t.Helper()
	user, err := service.Register(context.Background(), RegisterInput{
		Username: "filmfan",
		Email:    "fan@movira.app",
		Password: "correct horse",
	})
	require.NoError(t, err)
	return user
}

// # Tests

func TestService_Register_RejectsDuplicateIdentity(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	registerMember(t, service)

	_, err := service.Register(ctx, RegisterInput{
		Username: "someone-else",
		Email:    "fan@movira.app",
		Password: "whatever12",
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	_, err = service.Register(ctx, RegisterInput{
		Username: "filmfan",
		Email:    "new@movira.app",
		Password: "whatever12",
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

func TestService_Register_AssignsMemberRole(t *testing.T) {
	service, users, _, _ := newTestService()

	user := registerMember(t, service)

	assert.Equal(t, sec.RoleMember, user.Role)
	assert.NotEmpty(t, user.ID)
	// Stored hash must never be the plaintext password.
	assert.NotEqual(t, "correct horse", users.users[user.ID].PasswordHash)
}

func TestService_Login_ByEmailOrUsername(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	registerMember(t, service)

	for _, login := range []string{"fan@movira.app", "filmfan"} {
		session, err := service.Login(ctx, LoginInput{Login: login, Password: "correct horse"})
		require.NoError(t, err, login)
		assert.NotEmpty(t, session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
	}
}

func TestService_Login_GenericErrorOnBadCredentials(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	registerMember(t, service)

	// Wrong password and unknown account must be indistinguishable.
	_, wrongPassword := service.Login(ctx, LoginInput{Login: "filmfan", Password: "nope"})
	_, unknownUser := service.Login(ctx, LoginInput{Login: "ghost", Password: "nope"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	assert.Equal(t, "UNAUTHORIZED", apperr.As(wrongPassword).Code)
}

func TestService_RefreshSession_RotatesToken(t *testing.T) {
	service, _, sessions, _ := newTestService()
	ctx := context.Background()

	user := registerMember(t, service)
	first, err := service.Login(ctx, LoginInput{Login: "filmfan", Password: "correct horse"})
	require.NoError(t, err)

	second, err := service.RefreshSession(ctx, first.RefreshToken, "ua", "ip")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, 1, sessions.live(user.ID))

	// The rotated-out token must be unusable.
	_, err = service.RefreshSession(ctx, first.RefreshToken, "ua", "ip")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

func TestService_Logout_IsIdempotent(t *testing.T) {
	service, _, sessions, _ := newTestService()
	ctx := context.Background()

	user := registerMember(t, service)
	session, err := service.Login(ctx, LoginInput{Login: "filmfan", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, session.RefreshToken))
	assert.Equal(t, 0, sessions.live(user.ID))

	// A second logout with the same token is a no-op, not an error.
	require.NoError(t, service.Logout(ctx, session.RefreshToken))
}

func TestService_PasswordReset_Flow(t *testing.T) {
	service, _, sessions, resets := newTestService()
	ctx := context.Background()

	user := registerMember(t, service)
	_, err := service.Login(ctx, LoginInput{Login: "filmfan", Password: "correct horse"})
	require.NoError(t, err)

	token, err := service.RequestPasswordReset(ctx, "fan@movira.app")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, service.ResetPassword(ctx, token, "fresh password"))

	// Old sessions are revoked and the token is single-use.
	assert.Equal(t, 0, sessions.live(user.ID))
	assert.Empty(t, resets.tokens)

	_, err = service.Login(ctx, LoginInput{Login: "filmfan", Password: "fresh password"})
	assert.NoError(t, err)
}

func TestService_PasswordReset_UnknownEmailIsSilent(t *testing.T) {
	service, _, _, resets := newTestService()

	token, err := service.RequestPasswordReset(context.Background(), "nobody@movira.app")

	// No token, no error, nothing stored. Prevents account enumeration.
	assert.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, resets.tokens)
}

func TestService_ChangePassword_RequiresCurrent(t *testing.T) {
	service, _, sessions, _ := newTestService()
	ctx := context.Background()

	user := registerMember(t, service)
	_, err := service.Login(ctx, LoginInput{Login: "filmfan", Password: "correct horse"})
	require.NoError(t, err)

	err = service.ChangePassword(ctx, user.ID, "wrong current", "new password")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	require.NoError(t, service.ChangePassword(ctx, user.ID, "correct horse", "new password"))
	assert.Equal(t, 0, sessions.live(user.ID))

	_, err = service.Login(ctx, LoginInput{Login: "filmfan", Password: "new password"})
	assert.NoError(t, err)
}
