package repository

import (
	"context"

	"github.com/kidlit/library-service/internal/model"
)

func (r *repository) CountStudents(ctx context.Context) (int, error) {
	return r.count(ctx, `select count(*) from profiles where role = 'student'`)
}

func (r *repository) CountBooks(ctx context.Context) (int, error) {
	return r.count(ctx, `select count(*) from books`)
}

func (r *repository) CountOpenIssues(ctx context.Context) (int, error) {
	return r.count(ctx, `select count(*) from issued_books where returned_at is null`)
}

func (r *repository) CountOverdue(ctx context.Context) (int, error) {
	return r.count(ctx, `select count(*) from issued_books where returned_at is null and due_date < now()`)
}

func (r *repository) count(ctx context.Context, q string) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, q).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) RecentActivity(ctx context.Context, limit int) ([]model.ActivityRow, error) {
	q := `
	select i.issued_at, p.full_name, b.title, i.due_date, i.returned_at
	from issued_books i
	join profiles p on p.id = i.student_id
	join books b on b.id = i.book_id
	order by i.issued_at desc
	limit $1`

	var rows []model.ActivityRow
	if err := r.db.SelectContext(ctx, &rows, q, limit); err != nil {
		return nil, err
	}
	return rows, nil
}
