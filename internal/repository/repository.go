package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/kidlit/library-service/internal/model"
)

type Repository interface {
	// profiles
	ListStudents(ctx context.Context) ([]model.Student, error)
	CreateStudent(ctx context.Context, cred model.Credential, profile model.Profile) (model.Student, error)
	GetLogin(ctx context.Context, email string) (model.Login, error)
	ListTransactions(ctx context.Context, studentID string) ([]model.Transaction, error)

	// catalog
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	ListEbooks(ctx context.Context) ([]model.Ebook, error)
	CreateEbook(ctx context.Context, req model.CreateEbookRequest) (model.Ebook, error)

	// circulation
	IssueBook(ctx context.Context, req model.IssueRequest) (model.IssuedBook, error)
	ReturnBook(ctx context.Context, studentID, bookID string) (model.IssuedBook, error)
	ListIssues(ctx context.Context, studentID string, openOnly bool) ([]model.IssueView, error)
	ListCirculation(ctx context.Context) ([]model.CirculationRow, error)

	// dashboard
	CountStudents(ctx context.Context) (int, error)
	CountBooks(ctx context.Context) (int, error)
	CountOpenIssues(ctx context.Context) (int, error)
	CountOverdue(ctx context.Context) (int, error)
	RecentActivity(ctx context.Context, limit int) ([]model.ActivityRow, error)

	// messages
	CreateMessage(ctx context.Context, req model.SendMessageRequest) (model.Message, error)
	ListMessages(ctx context.Context, studentID string) ([]model.Message, error)
	ReplyMessage(ctx context.Context, id, text string) (model.Message, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	credentialsTableName  = `credentials`
	profilesTableName     = `profiles`
	booksTableName        = `books`
	issuedBooksTableName  = `issued_books`
	messagesTableName     = `messages`
	ebooksTableName       = `ebooks`
	transactionsTableName = `transactions`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrCode(err) == pgerrcode.UniqueViolation
}

func isFKViolation(err error) bool {
	return pgErrCode(err) == pgerrcode.ForeignKeyViolation
}
