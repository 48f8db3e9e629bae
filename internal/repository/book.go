package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/kidlit/library-service/internal/errs"
	"github.com/kidlit/library-service/internal/model"
)

const bookColumns = "id, title, author, class_suitable, total_count, available_count, created_at, updated_at"

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	q := qb.Select("id", "title", "author", "class_suitable", "total_count", "available_count", "created_at", "updated_at").
		From(booksTableName)

	if filter.Search != "" {
		q = q.Where(sq.ILike{"title": "%" + filter.Search + "%"})
	}
	if filter.Grade > 0 {
		q = q.Where(sq.LtOrEq{"class_suitable": filter.Grade})
	}
	if filter.AvailableOnly {
		q = q.Where(sq.Gt{"available_count": 0})
	}
	switch filter.Sort {
	case model.SortTitleAsc:
		q = q.OrderBy("title asc")
	case model.SortTitleDesc:
		q = q.OrderBy("title desc")
	default:
		q = q.OrderBy("created_at desc")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("id", "title", "author", "class_suitable", "total_count", "available_count").
		Values(uuid.New(), req.Title, req.Author, req.ClassSuitable, req.TotalCount, req.TotalCount).
		Suffix("returning " + bookColumns).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

// UpdateBook applies admin catalog edits. A total_count change shifts
// available_count by the same delta, clamped to [0, total_count], so the
// open-issuance bookkeeping stays intact.
func (r *repository) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error) {
	q := qb.Update(booksTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if req.Title != nil {
		q = q.Set("title", *req.Title)
	}
	if req.Author != nil {
		q = q.Set("author", *req.Author)
	}
	if req.ClassSuitable != nil {
		q = q.Set("class_suitable", *req.ClassSuitable)
	}
	if req.TotalCount != nil {
		q = q.Set("available_count",
			sq.Expr("greatest(0, least(?::int, available_count + ? - total_count))",
				*req.TotalCount, *req.TotalCount)).
			Set("total_count", *req.TotalCount)
	}

	query, args, err := q.Suffix("returning " + bookColumns).ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, id string) error {
	query, args, err := qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isFKViolation(err) {
			return errs.ErrHasIssues
		}
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListEbooks(ctx context.Context) ([]model.Ebook, error) {
	query, args, err := qb.Select("id", "title", "author", "grade_suitable", "url", "created_at").
		From(ebooksTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var ebooks []model.Ebook
	if err := r.db.SelectContext(ctx, &ebooks, query, args...); err != nil {
		return nil, err
	}
	return ebooks, nil
}

func (r *repository) CreateEbook(ctx context.Context, req model.CreateEbookRequest) (model.Ebook, error) {
	query, args, err := qb.Insert(ebooksTableName).
		Columns("id", "title", "author", "grade_suitable", "url").
		Values(uuid.New(), req.Title, req.Author, req.GradeSuitable, req.URL).
		Suffix("returning id, title, author, grade_suitable, url, created_at").
		ToSql()
	if err != nil {
		return model.Ebook{}, err
	}

	var ebook model.Ebook
	if err := r.db.GetContext(ctx, &ebook, query, args...); err != nil {
		return model.Ebook{}, err
	}
	return ebook, nil
}
