package handler

import (
	"context"

	"github.com/kidlit/library-service/internal/model"
	"github.com/kidlit/library-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type Service interface {
	// profiles
	ListStudents(ctx context.Context) ([]model.Student, error)
	CreateStudent(ctx context.Context, req model.CreateStudentRequest) (model.Student, error)
	ListTransactions(ctx context.Context, studentID string) ([]model.Transaction, error)

	// auth
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)

	// catalog
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	ListEbooks(ctx context.Context) ([]model.Ebook, error)
	CreateEbook(ctx context.Context, req model.CreateEbookRequest) (model.Ebook, error)

	// circulation
	IssueBook(ctx context.Context, req model.IssueRequest) (model.IssuedBook, error)
	ReturnBook(ctx context.Context, req model.ReturnRequest) (model.ReturnResponse, error)
	ListIssues(ctx context.Context, studentID string, openOnly bool) ([]model.IssueView, error)

	// stats
	Dashboard(ctx context.Context) (model.DashboardStats, error)
	RecentActivity(ctx context.Context, limit int) ([]model.Activity, error)
	CirculationReport(ctx context.Context) ([]byte, error)

	// messages
	SendMessage(ctx context.Context, req model.SendMessageRequest) (model.Message, error)
	ListMessages(ctx context.Context, studentID string) ([]model.Message, error)
	ReplyMessage(ctx context.Context, id string, req model.ReplyRequest) (model.Message, error)
}

var _ Service = (*service.Service)(nil)
