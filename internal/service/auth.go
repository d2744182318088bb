package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Hipolitoneto/receitas/internal/adapter"
	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/internal/store"
	"github.com/Hipolitoneto/receitas/models"
)

// expirySkew widens the expiry check so a token about to lapse is refreshed
// before a request can fail with it mid-flight.
const expirySkew = 30 * time.Second

type authService struct {
	remote   adapter.RemoteStore
	sessions store.SessionRepository
	logger   *logger.Logger
}

// NewAuthService returns the auth/session service backed by the remote store
// and the local session repository.
func NewAuthService(remote adapter.RemoteStore, sessions store.SessionRepository, logger *logger.Logger) AuthService {
	return &authService{
		remote:   remote,
		sessions: sessions,
		logger:   logger,
	}
}

func (a *authService) Register(ctx context.Context, name, email, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := a.remote.SignUp(ctx, email, password)
	if err != nil {
		return models.Session{}, mapRemoteError(err)
	}
	a.remote.SetSession(session)

	profile := models.User{
		ID:    session.UserID,
		Email: email,
		Name:  name,
	}
	if err := a.remote.InsertProfile(ctx, profile); err != nil {
		// The auth identity exists even if the profile insert failed; the
		// profile can be completed later from the profile screen.
		log.Err(err).
			Str("func", "authService.Register").
			Str("user_id", session.UserID).
			Msg("failed to create profile row after signup")
	}

	if err := a.persist(ctx, session); err != nil {
		return models.Session{}, err
	}

	log.Info().
		Str("func", "authService.Register").
		Str("user_id", session.UserID).
		Msg("account registered")

	return session, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	session, err := a.remote.SignIn(ctx, email, password)
	if err != nil {
		return models.Session{}, mapRemoteError(err)
	}
	a.remote.SetSession(session)

	if err := a.persist(ctx, session); err != nil {
		return models.Session{}, err
	}

	return session, nil
}

func (a *authService) RestoreSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := a.sessions.LoadSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if session.Expired(expirySkew) {
		refreshed, refreshErr := a.remote.RefreshSession(ctx, session.RefreshToken)
		if refreshErr != nil {
			if errors.Is(refreshErr, adapter.ErrSessionExpired) || errors.Is(refreshErr, adapter.ErrUnauthorized) {
				if clearErr := a.sessions.ClearSession(ctx); clearErr != nil {
					log.Err(clearErr).
						Str("func", "authService.RestoreSession").
						Msg("failed to clear stale session")
				}
				return models.Session{}, ErrSessionExpired
			}
			return models.Session{}, mapRemoteError(refreshErr)
		}
		session = refreshed
	}

	a.remote.SetSession(session)

	if err := a.persist(ctx, session); err != nil {
		return models.Session{}, err
	}

	log.Info().
		Str("func", "authService.RestoreSession").
		Str("user_id", session.UserID).
		Msg("session restored")

	return session, nil
}

func (a *authService) CurrentUser(ctx context.Context) (models.User, error) {
	identity, err := a.remote.CurrentIdentity(ctx)
	if err != nil {
		return models.User{}, mapRemoteError(err)
	}

	profile, err := a.remote.GetProfile(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.User{ID: identity.ID, Email: identity.Email}, nil
		}
		return models.User{}, mapRemoteError(err)
	}

	return profile, nil
}

func (a *authService) UpdateProfile(ctx context.Context, name string, avatar []byte, avatarContentType string) (models.User, error) {
	identity, err := a.remote.CurrentIdentity(ctx)
	if err != nil {
		return models.User{}, mapRemoteError(err)
	}

	patch := models.User{ID: identity.ID, Name: name}

	if len(avatar) > 0 {
		url, uploadErr := a.remote.UploadAvatar(ctx, identity.ID, avatar, avatarContentType)
		if uploadErr != nil {
			return models.User{}, mapRemoteError(uploadErr)
		}
		patch.AvatarURL = url
	}

	if err := a.remote.UpdateProfile(ctx, patch); err != nil {
		return models.User{}, mapRemoteError(err)
	}

	return a.CurrentUser(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("failed to clear local session: %w", err)
	}
	a.remote.SetSession(models.Session{})

	log.Info().
		Str("func", "authService.Logout").
		Msg("signed out")

	return nil
}

func (a *authService) persist(ctx context.Context, session models.Session) error {
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
