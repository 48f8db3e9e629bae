package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/kidlit/library-service/internal/errs"
	"github.com/kidlit/library-service/internal/model"
)

func (r *repository) ListStudents(ctx context.Context) ([]model.Student, error) {
	query, args, err := qb.Select("id", "full_name", "email", "grade", "role", "created_at", "updated_at").
		From(profilesTableName).
		Where(sq.Eq{"role": model.RoleStudent}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var students []model.Student
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, err
	}
	return students, nil
}

// CreateStudent inserts the auth identity and the profile in one
// transaction, so a failed profile insert never leaves an orphaned
// credential behind.
func (r *repository) CreateStudent(ctx context.Context, cred model.Credential, profile model.Profile) (model.Student, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Student{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := qb.Insert(credentialsTableName).
		Columns("id", "email", "password_hash").
		Values(cred.ID, cred.Email, cred.PasswordHash).
		ToSql()
	if err != nil {
		return model.Student{}, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Student{}, errs.ErrDuplicateEmail
		}
		return model.Student{}, err
	}

	query, args, err = qb.Insert(profilesTableName).
		Columns("id", "email", "full_name", "role", "grade", "age", "parent_name", "contact_number", "address").
		Values(profile.ID, profile.Email, profile.FullName, profile.Role,
			profile.Grade, profile.Age, profile.ParentName, profile.ContactNumber, profile.Address).
		Suffix("returning id, full_name, email, grade, role, created_at, updated_at").
		ToSql()
	if err != nil {
		return model.Student{}, err
	}

	var student model.Student
	if err := tx.GetContext(ctx, &student, query, args...); err != nil {
		r.log.Error("CreateStudent", zap.String("q", query), zap.Error(err))
		if isUniqueViolation(err) {
			return model.Student{}, errs.ErrDuplicateEmail
		}
		return model.Student{}, err
	}

	return student, tx.Commit()
}

func (r *repository) GetLogin(ctx context.Context, email string) (model.Login, error) {
	q := `
	select c.id, c.email, c.password_hash, p.full_name, p.role
	from credentials c
	join profiles p on p.id = c.id
	where c.email = $1`

	var login model.Login
	if err := r.db.GetContext(ctx, &login, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Login{}, errs.ErrNotFound
		}
		return model.Login{}, err
	}
	return login, nil
}

func (r *repository) ListTransactions(ctx context.Context, studentID string) ([]model.Transaction, error) {
	query, args, err := qb.Select("id", "student_id", "amount", "type", "created_at").
		From(transactionsTableName).
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Transaction
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
