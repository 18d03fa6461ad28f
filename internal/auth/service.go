// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/carterperez-dev/farrior-homes-api/internal/core"
	"github.com/carterperez-dev/farrior-homes-api/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountSuspended   = errors.New("account suspended")
)

type Service struct {
	users    user.Repository
	jwt      *JWTManager
	verifier FederatedVerifier
}

// NewService wires the credential flow. verifier may be nil; Google sign-in
// then reports "not configured" instead of being silently absent.
func NewService(
	users user.Repository,
	jwt *JWTManager,
	verifier FederatedVerifier,
) *Service {
	return &Service{
		users:    users,
		jwt:      jwt,
		verifier: verifier,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*user.User, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		ProfileImage:  req.ProfileImage,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		HomeAddress:   req.HomeAddress,
		OfficeAddress: req.OfficeAddress,
		Password:      passwordHash,
		WebsiteLink:   req.WebsiteLink,
		FacebookLink:  req.FacebookLink,
		InstagramLink: req.InstagramLink,
		TwitterLink:   req.TwitterLink,
		LinkedinLink:  req.LinkedinLink,
		Role:          user.RoleUser,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("email or phone")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // dummy verify keeps unknown emails from being distinguishable by timing
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, &u.Password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	// Suspension is checked after the password so a suspended caller learns
	// their account state, not whether the password matched.
	if u.IsSuspended {
		return nil, ErrAccountSuspended
	}

	return s.createAuthResponse(u)
}

func (s *Service) GoogleLogin(
	ctx context.Context,
	req GoogleLoginRequest,
) (*AuthResponse, error) {
	if s.verifier == nil {
		return nil, core.NotConfiguredError("google sign-in")
	}

	identity, err := s.verifier.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := s.resolveFederatedUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	if u.IsSuspended {
		return nil, ErrAccountSuspended
	}

	return s.createAuthResponse(u)
}

// resolveFederatedUser finds the local account for a verified Google
// identity, linking by googleId first, then by email, creating a
// passwordless account when neither matches.
func (s *Service) resolveFederatedUser(
	ctx context.Context,
	identity *FederatedIdentity,
) (*user.User, error) {
	u, err := s.users.GetByGoogleID(ctx, identity.Subject)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("get user by google id: %w", err)
	}

	if identity.Email != "" {
		u, err = s.users.GetByEmail(ctx, identity.Email)
		if err == nil {
			return s.users.UpdateFields(ctx, u.ID, bson.M{
				"googleId": identity.Subject,
			})
		}
		if !errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("get user by email: %w", err)
		}
	}

	created := &user.User{
		ProfileImage: identity.Picture,
		Name:         identity.Name,
		Email:        identity.Email,
		GoogleID:     identity.Subject,
		Role:         user.RoleUser,
	}

	if err := s.users.Create(ctx, created); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("email or phone")
		}
		return nil, fmt.Errorf("create federated user: %w", err)
	}

	return created, nil
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	userID string,
) (*user.User, error) {
	oid, err := user.ParseID(userID)
	if err != nil {
		return nil, err
	}

	return s.users.GetByID(ctx, oid)
}

func (s *Service) ChangePassword(
	ctx context.Context,
	userID string,
	req ChangePasswordRequest,
) error {
	oid, err := user.ParseID(userID)
	if err != nil {
		return err
	}

	u, err := s.users.GetByID(ctx, oid)
	if err != nil {
		return err
	}

	valid, err := core.VerifyPasswordTimingSafe(
		req.CurrentPassword,
		&u.Password,
	)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return ErrInvalidCredentials
	}

	newHash, err := core.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.users.UpdatePassword(ctx, oid, newHash)
}

func (s *Service) createAuthResponse(u *user.User) (*AuthResponse, error) {
	accessToken, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID: u.ID.Hex(),
		Email:  u.Email,
		Role:   u.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	return &AuthResponse{
		AccessToken: accessToken,
		User:        u,
	}, nil
}
