package commands

//go:generate mockgen -source=auth.go -destination=../../testutil/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"storefront-checkout/internal/domain/reservation"
	"storefront-checkout/internal/domain/user"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/session"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrInvalidVerification  = errs.New("invalid verification code")
)

type LoginRequest struct {
	Email    string
	Password string
}

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

type VerifyRequest struct {
	Email string
	Code  string
}

type LoginResult struct {
	User        *user.User
	AccessToken string
	ExpiresAt   *time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) (*user.User, error)
	Verify(ctx context.Context, req VerifyRequest) (*LoginResult, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type authCommandsImpl struct {
	auth     shared.AuthService
	sessions *session.Registry
}

func NewAuthCommands(auth shared.AuthService, sessions *session.Registry) AuthCommands {
	return &authCommandsImpl{
		auth:     auth,
		sessions: sessions,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	sess, err := a.auth.Login(ctx, credentials.Email().Value(), credentials.Password().Value())
	if err != nil {
		// Unknown email and wrong password look the same to the caller.
		if infra.IsKind(err, infra.KindUnauthorized) || infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}

	return toLoginResult(sess)
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*user.User, error) {
	reg, err := user.NewRegistration(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	created, err := a.auth.Register(ctx, reg.Name(), reg.Email().Value(), reg.Password().Value())
	if err != nil {
		return nil, err
	}

	return toUser(*created)
}

func (a *authCommandsImpl) Verify(ctx context.Context, req VerifyRequest) (*LoginResult, error) {
	v, err := user.NewVerification(req.Email, req.Code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	sess, err := a.auth.Verify(ctx, v.Email().Value(), v.Code().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindValidation) || infra.IsKind(err, infra.KindUnauthorized) {
			return nil, errs.Mark(err, ErrInvalidVerification)
		}
		return nil, err
	}

	return toLoginResult(sess)
}

// Logout releases the shopper's pending reservation, drops the checkout
// session and revokes the credential upstream. Upstream failures are logged
// only; the caller clears its cookie regardless.
func (a *authCommandsImpl) Logout(ctx context.Context, userID uuid.UUID) error {
	if s, ok := a.sessions.Get(userID); ok {
		if s.View().Reservation.Status == reservation.StatusPending {
			if err := s.Cancel(ctx); err != nil {
				slog.Warn("failed to cancel reservation on logout", "user_id", userID, "error", err)
			}
		}
		a.sessions.Remove(userID)
	}

	if err := a.auth.Logout(ctx); err != nil {
		slog.Warn("upstream logout failed", "user_id", userID, "error", err)
	}
	return nil
}

func toLoginResult(sess *shared.AuthSession) (*LoginResult, error) {
	u, err := toUser(sess.User)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		User:        u,
		AccessToken: sess.Token,
		ExpiresAt:   sess.ExpiresAt,
	}, nil
}

func toUser(au shared.AuthUser) (*user.User, error) {
	email, err := user.NewEmail(au.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	role, err := user.NewRole(au.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	return user.NewUser(au.ID, email, au.Name, role, au.Verified), nil
}
