package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/config"
	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/repository"
	"github.com/michaeltheo/placements-backend/internal/sso"
	"github.com/michaeltheo/placements-backend/pkg/jwt"
	"github.com/michaeltheo/placements-backend/pkg/redis"
)

var (
	ErrLoginStateInvalid = errors.New("μη έγκυρη ή ληγμένη αίτηση σύνδεσης")
	ErrLoginFailed       = errors.New("η σύνδεση απέτυχε")
)

// stateTTL bounds the window between redirecting to the IdP and the callback.
const stateTTL = 10 * time.Minute

// AuthService implements the SSO login flow and session issuance.
type AuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
	jwt      *jwt.Manager
	redis    *redis.Client
	sso      *sso.Client
	logger   *zap.Logger
}

// NewAuthService creates the auth service.
func NewAuthService(
	cfg *config.Config,
	userRepo repository.UserRepository,
	jwtManager *jwt.Manager,
	redisClient *redis.Client,
	ssoClient *sso.Client,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		cfg:      cfg,
		userRepo: userRepo,
		jwt:      jwtManager,
		redis:    redisClient,
		sso:      ssoClient,
		logger:   logger,
	}
}

// LoginURL generates a state value and returns the IdP redirect target.
func (s *AuthService) LoginURL(ctx context.Context) (string, error) {
	state := uuid.New().String()
	if err := s.redis.SaveState(ctx, state, stateTTL); err != nil {
		return "", fmt.Errorf("saving login state: %w", err)
	}
	return s.sso.AuthorizeURL(state), nil
}

// HandleCallback completes a login: the state must match an outstanding
// login attempt, the code is exchanged for a profile, and the user record is
// created or refreshed from the profile attributes.
func (s *AuthService) HandleCallback(ctx context.Context, code, state string) (*model.User, string, error) {
	if err := s.redis.ConsumeState(ctx, state); err != nil {
		if errors.Is(err, redis.ErrStateNotFound) {
			return nil, "", ErrLoginStateInvalid
		}
		return nil, "", fmt.Errorf("consuming login state: %w", err)
	}

	accessToken, err := s.sso.ExchangeCode(ctx, code)
	if err != nil {
		s.logger.Warn("sso code exchange failed", zap.Error(err))
		return nil, "", ErrLoginFailed
	}

	profile, err := s.sso.FetchProfile(ctx, accessToken)
	if err != nil {
		s.logger.Warn("sso profile fetch failed", zap.Error(err))
		return nil, "", ErrLoginFailed
	}
	if profile.AM == "" {
		return nil, "", ErrLoginFailed
	}

	user, err := s.upsertFromProfile(ctx, profile)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateSessionToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("issuing session token: %w", err)
	}

	s.logger.Info("user logged in",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return user, token, nil
}

// upsertFromProfile creates the user on first login and refreshes the
// institutional attributes on every subsequent one. Role is never downgraded
// from the profile; administrators are promoted locally.
func (s *AuthService) upsertFromProfile(ctx context.Context, profile *sso.Profile) (*model.User, error) {
	user, err := s.userRepo.GetByAM(ctx, profile.AM)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("looking up user: %w", err)
		}
		user = &model.User{
			AM:              profile.AM,
			FirstName:       profile.GivenName(),
			LastName:        profile.SN,
			Email:           profile.Email,
			TelephoneNumber: profile.TelephoneNumber,
			RegYear:         profile.RegYear,
			Role:            model.RoleStudent,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("creating user: %w", err)
		}
		return user, nil
	}

	user.FirstName = profile.GivenName()
	user.LastName = profile.SN
	if profile.Email != "" {
		user.Email = profile.Email
	}
	if profile.TelephoneNumber != "" {
		user.TelephoneNumber = profile.TelephoneNumber
	}
	if profile.RegYear != "" {
		user.RegYear = profile.RegYear
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("refreshing user: %w", err)
	}
	return user, nil
}

// CookieName the session cookie carrying the access token.
const CookieName = "placements_access_token"
