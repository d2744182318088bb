package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Hipolitoneto/receitas/internal/adapter"
	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/internal/mock"
	"github.com/Hipolitoneto/receitas/internal/store"
	"github.com/Hipolitoneto/receitas/models"
)

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockRemoteStore, *mock.MockSessionRepository) {
	t.Helper()
	remote := mock.NewMockRemoteStore(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	svc := NewAuthService(remote, sessions, logger.Nop())
	return svc, remote, sessions
}

func validSession() models.Session {
	return models.Session{
		AccessToken:  "at",
		RefreshToken: "rt",
		ExpiresAt:    time.Now().Add(time.Hour),
		UserID:       "u1",
		Email:        "maria@example.com",
	}
}

func TestRegister_CreatesProfileAndPersistsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, sessions := newTestAuthService(t, ctrl)
	session := validSession()

	remote.EXPECT().SignUp(gomock.Any(), "maria@example.com", "s3cret").Return(session, nil)
	remote.EXPECT().SetSession(session)
	remote.EXPECT().InsertProfile(gomock.Any(), models.User{
		ID:    "u1",
		Email: "maria@example.com",
		Name:  "Maria",
	}).Return(nil)
	sessions.EXPECT().SaveSession(gomock.Any(), session).Return(nil)

	got, err := svc.Register(context.Background(), "Maria", "maria@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestRegister_ProfileInsertFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, sessions := newTestAuthService(t, ctrl)
	session := validSession()

	remote.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).Return(session, nil)
	remote.EXPECT().SetSession(session)
	remote.EXPECT().InsertProfile(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))
	sessions.EXPECT().SaveSession(gomock.Any(), session).Return(nil)

	_, err := svc.Register(context.Background(), "Maria", "maria@example.com", "s3cret")
	require.NoError(t, err)
}

func TestLogin_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestAuthService(t, ctrl)

	remote.EXPECT().
		SignIn(gomock.Any(), "maria@example.com", "wrong").
		Return(models.Session{}, fmt.Errorf("POST /auth: %w", adapter.ErrUnauthorized))

	_, err := svc.Login(context.Background(), "maria@example.com", "wrong")
	require.ErrorIs(t, err, ErrNotSignedIn)
}

func TestRestoreSession_FreshSessionReusedWithoutRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, sessions := newTestAuthService(t, ctrl)
	session := validSession()

	sessions.EXPECT().LoadSession(gomock.Any()).Return(session, nil)
	remote.EXPECT().SetSession(session)
	sessions.EXPECT().SaveSession(gomock.Any(), session).Return(nil)

	got, err := svc.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestRestoreSession_ExpiredSessionRefreshed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, sessions := newTestAuthService(t, ctrl)

	stale := validSession()
	stale.ExpiresAt = time.Now().Add(-time.Minute)

	fresh := validSession()
	fresh.AccessToken = "at2"

	sessions.EXPECT().LoadSession(gomock.Any()).Return(stale, nil)
	remote.EXPECT().RefreshSession(gomock.Any(), "rt").Return(fresh, nil)
	remote.EXPECT().SetSession(fresh)
	sessions.EXPECT().SaveSession(gomock.Any(), fresh).Return(nil)

	got, err := svc.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "at2", got.AccessToken)
}

func TestRestoreSession_RefreshRejectedClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, sessions := newTestAuthService(t, ctrl)

	stale := validSession()
	stale.ExpiresAt = time.Now().Add(-time.Minute)

	sessions.EXPECT().LoadSession(gomock.Any()).Return(stale, nil)
	remote.EXPECT().
		RefreshSession(gomock.Any(), "rt").
		Return(models.Session{}, fmt.Errorf("POST /auth: %w", adapter.ErrSessionExpired))
	sessions.EXPECT().ClearSession(gomock.Any()).Return(nil)

	_, err := svc.RestoreSession(context.Background())
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestRestoreSession_NoLocalSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthService(t, ctrl)

	sessions.EXPECT().LoadSession(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

	_, err := svc.RestoreSession(context.Background())
	require.ErrorIs(t, err, store.ErrLocalSessionNotFound)
}

func TestCurrentUser_MissingProfileFallsBackToIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestAuthService(t, ctrl)

	remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "u1", Email: "maria@example.com"}, nil)
	remote.EXPECT().
		GetProfile(gomock.Any(), "u1").
		Return(models.User{}, fmt.Errorf("GET /users: %w", adapter.ErrNotFound))

	user, err := svc.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "maria@example.com", user.Email)
}

func TestUpdateProfile_WithAvatarUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestAuthService(t, ctrl)

	avatar := []byte{0x89, 0x50, 0x4e, 0x47}

	remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "u1"}, nil).Times(2)
	remote.EXPECT().
		UploadAvatar(gomock.Any(), "u1", avatar, "image/png").
		Return("https://cdn/avatars/u1.png", nil)
	remote.EXPECT().UpdateProfile(gomock.Any(), models.User{
		ID:        "u1",
		Name:      "Maria Silva",
		AvatarURL: "https://cdn/avatars/u1.png",
	}).Return(nil)
	remote.EXPECT().
		GetProfile(gomock.Any(), "u1").
		Return(models.User{ID: "u1", Name: "Maria Silva", AvatarURL: "https://cdn/avatars/u1.png"}, nil)

	user, err := svc.UpdateProfile(context.Background(), "Maria Silva", avatar, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", user.Name)
	assert.Equal(t, "https://cdn/avatars/u1.png", user.AvatarURL)
}

func TestUpdateProfile_NoAvatarSkipsUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestAuthService(t, ctrl)

	remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "u1"}, nil).Times(2)
	remote.EXPECT().UpdateProfile(gomock.Any(), models.User{ID: "u1", Name: "Maria Silva"}).Return(nil)
	remote.EXPECT().GetProfile(gomock.Any(), "u1").Return(models.User{ID: "u1", Name: "Maria Silva"}, nil)

	user, err := svc.UpdateProfile(context.Background(), "Maria Silva", nil, "")
	require.NoError(t, err)
	assert.Empty(t, user.AvatarURL)
}

func TestLogout_ClearsLocalStateAndAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, sessions := newTestAuthService(t, ctrl)

	sessions.EXPECT().ClearSession(gomock.Any()).Return(nil)
	remote.EXPECT().SetSession(models.Session{})

	require.NoError(t, svc.Logout(context.Background()))
}
