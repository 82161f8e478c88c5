package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"lexcase/internal/core/apperr"
	"lexcase/internal/domain"
	"lexcase/internal/repo"
)

const msgInvalidCredentials = "Invalid credentials"

type PasswordHasher interface {
	Hash(pw string) (string, error)
	Verify(pw, hashed string) bool
}

type TokenIssuer interface {
	Issue(id domain.Identity) (string, error)
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

type AuthService struct {
	users  domain.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(users domain.UserRepository, hasher PasswordHasher, tokens TokenIssuer, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log, now: time.Now}
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	const failMsg = "Server error during registration"

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.Internal(failMsg, err)
	}
	if existing != nil {
		return nil, apperr.Conflict("User with this email already exists")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperr.Internal(failMsg, err)
	}
	u := &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         domain.Role(in.Role),
	}
	if err := s.users.Create(ctx, u); err != nil {
		// the unique index is authoritative; the lookup above only gives a faster answer
		if repo.IsDuplicateKey(err) {
			return nil, apperr.Conflict("User with this email already exists")
		}
		return nil, apperr.Internal(failMsg, err)
	}

	tok, err := s.tokens.Issue(domain.Identity{ID: u.ID, Email: u.Email, Role: u.Role})
	if err != nil {
		return nil, apperr.Internal(failMsg, err)
	}
	signupsTotal.Inc()
	s.log.Info("user registered", zap.String("email", u.Email), zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	return &AuthResult{Token: tok, User: u.Public()}, nil
}

// Login answers an unknown email and a wrong password identically.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	const failMsg = "Server error during login"

	u, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		loginsTotal.WithLabelValues("error").Inc()
		return nil, apperr.Internal(failMsg, err)
	}
	if u == nil || !s.hasher.Verify(in.Password, u.PasswordHash) {
		loginsTotal.WithLabelValues("rejected").Inc()
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	tok, err := s.tokens.Issue(domain.Identity{ID: u.ID, Email: u.Email, Role: u.Role})
	if err != nil {
		loginsTotal.WithLabelValues("error").Inc()
		return nil, apperr.Internal(failMsg, err)
	}

	// best effort: a failed timestamp write must not undo a valid login
	at := s.now().UTC()
	if err := s.users.TouchLastLogin(ctx, u.ID, at); err != nil {
		s.log.Warn("last login update failed", zap.String("user_id", u.ID), zap.Error(err))
	}

	loginsTotal.WithLabelValues("ok").Inc()
	s.log.Info("user logged in", zap.String("email", u.Email), zap.String("user_id", u.ID))
	return &AuthResult{Token: tok, User: u.Public()}, nil
}
