package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kidlit/library-service/internal/model"
)

// Dashboard gathers the four counter cards concurrently; every render
// re-queries the store.
func (s *Service) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		n, err := s.repo.CountStudents(ctx)
		stats.Students = n
		return err
	})
	gg.Go(func() error {
		n, err := s.repo.CountBooks(ctx)
		stats.Books = n
		return err
	})
	gg.Go(func() error {
		n, err := s.repo.CountOpenIssues(ctx)
		stats.OpenIssues = n
		return err
	})
	gg.Go(func() error {
		n, err := s.repo.CountOverdue(ctx)
		stats.Overdue = n
		return err
	})

	if err := gg.Wait(); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}

func (s *Service) RecentActivity(ctx context.Context, limit int) ([]model.Activity, error) {
	rows, err := s.repo.RecentActivity(ctx, limit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]model.Activity, 0, len(rows))
	for _, row := range rows {
		status := model.ActivityOK
		switch {
		case row.ReturnedAt != nil:
			status = model.ActivityReturned
		case row.DueDate.Before(now):
			status = model.ActivityOverdue
		}
		items = append(items, model.Activity{
			When:    row.IssuedAt,
			User:    row.FullName,
			Action:  "Issued Book",
			Details: fmt.Sprintf("Book: %s, due %s", row.Title, row.DueDate.Format(time.DateOnly)),
			Status:  status,
		})
	}
	return items, nil
}
