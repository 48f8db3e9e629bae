package service

import (
	"go.uber.org/zap"

	"github.com/kidlit/library-service/config"
	"github.com/kidlit/library-service/internal/repository"
)

type Service struct {
	log     *zap.Logger
	repo    repository.Repository
	authCfg config.Auth
}

func NewService(repo repository.Repository, authCfg config.Auth, log *zap.Logger) *Service {
	return &Service{
		log:     log,
		repo:    repo,
		authCfg: authCfg,
	}
}
