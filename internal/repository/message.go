package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/kidlit/library-service/internal/errs"
	"github.com/kidlit/library-service/internal/model"
)

const messageColumns = "id, student_id, text, admin_reply, status, created_at"

func (r *repository) CreateMessage(ctx context.Context, req model.SendMessageRequest) (model.Message, error) {
	query, args, err := qb.Insert(messagesTableName).
		Columns("id", "student_id", "text", "status").
		Values(uuid.New(), req.StudentID, req.Text, model.MessageOpen).
		Suffix("returning " + messageColumns).
		ToSql()
	if err != nil {
		return model.Message{}, err
	}

	var msg model.Message
	if err := r.db.GetContext(ctx, &msg, query, args...); err != nil {
		if isFKViolation(err) {
			return model.Message{}, errs.ErrNotFound
		}
		return model.Message{}, err
	}
	return msg, nil
}

func (r *repository) ListMessages(ctx context.Context, studentID string) ([]model.Message, error) {
	q := qb.Select("id", "student_id", "text", "admin_reply", "status", "created_at").
		From(messagesTableName).
		OrderBy("created_at desc")

	if studentID != "" {
		q = q.Where(sq.Eq{"student_id": studentID})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var msgs []model.Message
	if err := r.db.SelectContext(ctx, &msgs, query, args...); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *repository) ReplyMessage(ctx context.Context, id, text string) (model.Message, error) {
	q := `
	update messages
	    set admin_reply = $2, status = $3
	where id = $1
	returning ` + messageColumns

	var msg model.Message
	if err := r.db.GetContext(ctx, &msg, q, id, text, model.MessageAnswered); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Message{}, errs.ErrNotFound
		}
		return model.Message{}, err
	}
	return msg, nil
}
