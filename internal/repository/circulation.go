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

// finePerDay is the flat fine charged per day a return is late.
const finePerDay = 5

const issuedColumns = "id, book_id, student_id, issued_by, issued_at, due_date, returned_at, fine_amount, created_at"

// IssueBook decrements availability and opens an issuance in one
// transaction. The decrement is conditional on available_count > 0, so
// two concurrent issues of a single-copy book cannot both succeed.
func (r *repository) IssueBook(ctx context.Context, req model.IssueRequest) (model.IssuedBook, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.IssuedBook{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `
	update books
	    set available_count = available_count - 1, updated_at = now()
	where id = $1 and available_count > 0`, req.BookID)
	if err != nil {
		return model.IssuedBook{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			`select exists (select 1 from books where id = $1)`, req.BookID); err != nil {
			return model.IssuedBook{}, err
		}
		if !exists {
			return model.IssuedBook{}, errs.ErrNotFound
		}
		return model.IssuedBook{}, errs.ErrNoCopies
	}

	query, args, err := qb.Insert(issuedBooksTableName).
		Columns("id", "book_id", "student_id", "issued_by", "due_date").
		Values(uuid.New(), req.BookID, req.StudentID, req.IssuedBy, req.DueDate).
		Suffix("returning " + issuedColumns).
		ToSql()
	if err != nil {
		return model.IssuedBook{}, err
	}

	var issued model.IssuedBook
	if err := tx.GetContext(ctx, &issued, query, args...); err != nil {
		r.log.Error("IssueBook", zap.String("q", query), zap.Any("args", args))
		if isFKViolation(err) {
			return model.IssuedBook{}, errs.ErrNotFound
		}
		return model.IssuedBook{}, err
	}

	return issued, tx.Commit()
}

// ReturnBook closes the earliest open issuance for the pair, charges the
// overdue fine and gives the copy back, all in one transaction. The
// increment is conditional on available_count < total_count, so a stray
// return can never push availability past the shelf count.
func (r *repository) ReturnBook(ctx context.Context, studentID, bookID string) (model.IssuedBook, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.IssuedBook{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q := `
	update issued_books
	    set returned_at = now(),
	        fine_amount = case when now()::date > due_date::date
	            then (now()::date - due_date::date) * $3 end
	where id = (
	    select id from issued_books
	    where student_id = $1 and book_id = $2 and returned_at is null
	    order by issued_at
	    limit 1
	)
	returning ` + issuedColumns

	var issued model.IssuedBook
	if err := tx.GetContext(ctx, &issued, q, studentID, bookID, finePerDay); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.IssuedBook{}, errs.ErrNotFound
		}
		return model.IssuedBook{}, err
	}

	if _, err := tx.ExecContext(ctx, `
	update books
	    set available_count = available_count + 1, updated_at = now()
	where id = $1 and available_count < total_count`, bookID); err != nil {
		return model.IssuedBook{}, err
	}

	if issued.FineAmount != nil && *issued.FineAmount > 0 {
		query, args, err := qb.Insert(transactionsTableName).
			Columns("id", "student_id", "amount", "type").
			Values(uuid.New(), studentID, *issued.FineAmount, model.TransactionFine).
			ToSql()
		if err != nil {
			return model.IssuedBook{}, err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return model.IssuedBook{}, err
		}
	}

	return issued, tx.Commit()
}

func (r *repository) ListIssues(ctx context.Context, studentID string, openOnly bool) ([]model.IssueView, error) {
	q := qb.Select("i.id", "i.book_id", "b.title", "i.issued_at", "i.due_date",
		"(i.returned_at is null and i.due_date < now()) as overdue").
		From(issuedBooksTableName + " i").
		Join(booksTableName + " b on b.id = i.book_id").
		Where(sq.Eq{"i.student_id": studentID}).
		OrderBy("i.issued_at desc")

	if openOnly {
		q = q.Where("i.returned_at is null")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var issues []model.IssueView
	if err := r.db.SelectContext(ctx, &issues, query, args...); err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *repository) ListCirculation(ctx context.Context) ([]model.CirculationRow, error) {
	q := `
	select i.issued_at, p.full_name, p.email, b.title, b.author,
	       i.due_date, i.returned_at, i.fine_amount
	from issued_books i
	join profiles p on p.id = i.student_id
	join books b on b.id = i.book_id
	order by i.issued_at desc`

	var rows []model.CirculationRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}
