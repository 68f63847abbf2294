package user

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/MikeMC777/ropa-market/internal/apperr"
	"github.com/MikeMC777/ropa-market/internal/auth"
)

const minPasswordLen = 6

type Service struct {
	repo   Repository
	tokens *auth.Tokens
}

func NewService(repo Repository, tokens *auth.Tokens) *Service {
	return &Service{repo: repo, tokens: tokens}
}

func (s *Service) Signup(ctx context.Context, in SignupRequest) (*AuthResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Password == "" {
		return nil, apperr.Validationf("name, email and password are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperr.Validationf("invalid email")
	}
	if len(in.Password) < minPasswordLen {
		return nil, apperr.Validationf("password must be at least %d characters", minPasswordLen)
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internalw("hash error", err)
	}
	u := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         auth.RoleUser,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrAlreadyExist) {
			return nil, apperr.Conflictf("email already registered")
		}
		return nil, apperr.Internalw("create error", err)
	}
	return s.issue(u)
}

func (s *Service) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, apperr.Validationf("email and password are required")
	}
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.Unauthorizedf("invalid credentials")
		}
		return nil, apperr.Internalw("auth error", err)
	}
	if !CheckPassword(u.PasswordHash, in.Password) {
		return nil, apperr.Unauthorizedf("invalid credentials")
	}
	return s.issue(u)
}

func (s *Service) issue(u *User) (*AuthResponse, error) {
	tok, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, apperr.Internalw("token error", err)
	}
	return &AuthResponse{Token: tok, User: u}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFoundf("user not found")
		}
		return nil, apperr.Internalw("get error", err)
	}
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateProfileRequest) (*User, error) {
	u := &User{
		ID:      id,
		Name:    strings.TrimSpace(in.Name),    // empty => unchanged
		Phone:   strings.TrimSpace(in.Phone),   // empty => unchanged
		Address: strings.TrimSpace(in.Address), // empty => unchanged
	}
	if err := s.repo.UpdateProfile(ctx, u); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFoundf("user not found")
		}
		return nil, apperr.Internalw("update error", err)
	}
	return s.Get(ctx, id)
}

func (s *Service) ChangePassword(ctx context.Context, id string, in ChangePasswordRequest) error {
	if len(in.NewPassword) < minPasswordLen {
		return apperr.Validationf("password must be at least %d characters", minPasswordLen)
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CheckPassword(u.PasswordHash, in.OldPassword) {
		return apperr.Forbiddenf("current password is incorrect")
	}
	hash, err := HashPassword(in.NewPassword)
	if err != nil {
		return apperr.Internalw("hash error", err)
	}
	if err := s.repo.SetPassword(ctx, id, hash); err != nil {
		return apperr.Internalw("update error", err)
	}
	return nil
}

func (s *Service) SetRole(ctx context.Context, id, role string) (*User, error) {
	r, err := auth.ParseRole(role)
	if err != nil {
		return nil, apperr.Validationf("role must be user or admin")
	}
	if err := s.repo.SetRole(ctx, id, r); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFoundf("user not found")
		}
		return nil, apperr.Internalw("update error", err)
	}
	return s.Get(ctx, id)
}
