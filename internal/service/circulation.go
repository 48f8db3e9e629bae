package service

import (
	"context"
	"time"

	"github.com/kidlit/library-service/internal/model"
)

func (s *Service) IssueBook(ctx context.Context, req model.IssueRequest) (model.IssuedBook, error) {
	return s.repo.IssueBook(ctx, req)
}

func (s *Service) ReturnBook(ctx context.Context, req model.ReturnRequest) (model.ReturnResponse, error) {
	issued, err := s.repo.ReturnBook(ctx, req.StudentID, req.BookID)
	if err != nil {
		return model.ReturnResponse{}, err
	}

	overdue := false
	if issued.ReturnedAt != nil {
		overdue = issued.ReturnedAt.After(issued.DueDate)
	} else {
		overdue = time.Now().After(issued.DueDate)
	}

	return model.ReturnResponse{
		IssuedBook: issued,
		Overdue:    overdue,
	}, nil
}

func (s *Service) ListIssues(ctx context.Context, studentID string, openOnly bool) ([]model.IssueView, error) {
	return s.repo.ListIssues(ctx, studentID, openOnly)
}
