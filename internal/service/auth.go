package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/kidlit/library-service/internal/errs"
	"github.com/kidlit/library-service/internal/model"
	"github.com/kidlit/library-service/pkg/auth"
)

// Login verifies credentials and gates access by portal: a valid student
// signing in on the admin portal (or vice versa) gets no token.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	login, err := s.repo.GetLogin(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.LoginResponse{}, errs.ErrBadCredentials
		}
		return model.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(login.PasswordHash), []byte(req.Password)); err != nil {
		return model.LoginResponse{}, errs.ErrBadCredentials
	}

	if login.Role != req.Portal {
		return model.LoginResponse{}, errs.ErrRoleMismatch
	}

	ttl := s.authCfg.TokenTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	token, expiresAt, err := auth.NewToken(login.ID, login.Email, string(login.Role), ttl)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(expiresAt.Unix()),
	}, nil
}
