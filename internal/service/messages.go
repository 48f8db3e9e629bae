package service

import (
	"context"

	"github.com/kidlit/library-service/internal/model"
)

func (s *Service) SendMessage(ctx context.Context, req model.SendMessageRequest) (model.Message, error) {
	return s.repo.CreateMessage(ctx, req)
}

func (s *Service) ListMessages(ctx context.Context, studentID string) ([]model.Message, error) {
	return s.repo.ListMessages(ctx, studentID)
}

func (s *Service) ReplyMessage(ctx context.Context, id string, req model.ReplyRequest) (model.Message, error) {
	return s.repo.ReplyMessage(ctx, id, req.Text)
}
