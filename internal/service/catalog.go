package service

import (
	"context"

	"github.com/kidlit/library-service/internal/model"
)

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, filter)
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error) {
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Service) DeleteBook(ctx context.Context, id string) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) ListEbooks(ctx context.Context) ([]model.Ebook, error) {
	return s.repo.ListEbooks(ctx)
}

func (s *Service) CreateEbook(ctx context.Context, req model.CreateEbookRequest) (model.Ebook, error) {
	return s.repo.CreateEbook(ctx, req)
}
