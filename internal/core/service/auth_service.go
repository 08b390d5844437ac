package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
	"github.com/igiehon-foundation/tournament-portal/internal/core/ports"
)

// AuthService implements sign-in, sign-out, and session rehydration against
// the identity provider and the two role-determining lookups.
type AuthService struct {
	identities ports.IdentityRepository
	admins     ports.AdminDirectory
	schools    ports.SchoolRepository
	sessions   ports.SessionStore
	jwtSecret  string
	tokenTTL   time.Duration
	logger     zerolog.Logger
}

func NewAuthService(
	identities ports.IdentityRepository,
	admins ports.AdminDirectory,
	schools ports.SchoolRepository,
	sessions ports.SessionStore,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		identities: identities,
		admins:     admins,
		schools:    schools,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

// SignIn verifies the credential pair and builds a fresh session. The role
// is recomputed on every sign-in, never carried over from a previous one.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.Session, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	identity, err := s.identities.FindByEmail(ctx, email)
	if err != nil {
		// An unknown email is indistinguishable from a wrong password.
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("sign in: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	session, err := s.buildSession(ctx, identity.ID, identity.Email)
	if err != nil {
		return nil, "", err
	}

	token, err := s.signToken(session)
	if err != nil {
		return nil, "", fmt.Errorf("sign in: sign token: %w", err)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		// Cache write failure is not fatal: rehydration re-resolves the role.
		s.logger.Warn().Err(err).Str("email", email).Msg("session cache write failed")
	}

	s.logger.Info().Str("email", email).Str("role", string(session.Role)).Msg("signed in")
	return session, token, nil
}

// SignOut discards the cached session. Local sign-out must not be blocked by
// a cache failure: once the credential is discarded client-side, a stale
// remote session has no further capability.
func (s *AuthService) SignOut(ctx context.Context, tokenID string) {
	if tokenID == "" {
		return
	}
	if err := s.sessions.Delete(ctx, tokenID); err != nil {
		s.logger.Warn().Err(err).Str("token_id", tokenID).Msg("session cache delete failed")
	}
}

// CurrentSession rehydrates a session from its persisted credential token.
// The cached copy is preferred; on a miss the role lookups run again and the
// result is re-cached.
func (s *AuthService) CurrentSession(ctx context.Context, token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	tokenID, _ := claims["jti"].(string)
	userID, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if tokenID == "" || email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	cached, err := s.sessions.Find(ctx, tokenID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, domain.ErrSessionNotFound) {
		s.logger.Warn().Err(err).Str("token_id", tokenID).Msg("session cache read failed, re-resolving role")
	}

	session, err := s.buildSession(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	session.TokenID = tokenID
	if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		s.logger.Warn().Err(saveErr).Str("token_id", tokenID).Msg("session cache write failed")
	}
	return session, nil
}

// buildSession issues exactly two role-determining lookups and assigns the
// role by priority admin > school > anonymous.
func (s *AuthService) buildSession(ctx context.Context, userID, email string) (*domain.Session, error) {
	isAdmin, err := s.admins.IsAdmin(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolve role: admin lookup: %w", err)
	}

	schoolID := ""
	school, err := s.schools.FindByEmail(ctx, email)
	switch {
	case err == nil:
		schoolID = school.ID
	case errors.Is(err, domain.ErrSchoolNotFound):
		// no school association
	default:
		return nil, fmt.Errorf("resolve role: school lookup: %w", err)
	}

	now := time.Now().UTC()
	return &domain.Session{
		TokenID:   newTokenID(),
		UserID:    userID,
		Email:     email,
		Role:      domain.ResolveRole(isAdmin, schoolID != ""),
		SchoolID:  schoolID,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.tokenTTL),
	}, nil
}

func (s *AuthService) signToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"jti":   session.TokenID,
		"sub":   session.UserID,
		"email": session.Email,
		"iat":   session.IssuedAt.Unix(),
		"exp":   session.ExpiresAt.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func newTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
