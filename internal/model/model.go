package model

import (
	"time"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Profile is a user record shared by admins and students.
type Profile struct {
	ID            string    `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	FullName      string    `json:"full_name" db:"full_name"`
	Role          Role      `json:"role" db:"role"`
	Grade         *int      `json:"grade" db:"grade"`
	Age           *int      `json:"age,omitempty" db:"age"`
	ParentName    *string   `json:"parent_name,omitempty" db:"parent_name"`
	ContactNumber *string   `json:"contact_number,omitempty" db:"contact_number"`
	Address       *string   `json:"address,omitempty" db:"address"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Credential is the auth identity backing a profile; both share one id.
type Credential struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
}

// Login is the credentials+profile join used by the auth service.
type Login struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	FullName     string `db:"full_name"`
	Role         Role   `db:"role"`
}

// Student is the legacy /api/students projection of a profile.
type Student struct {
	ID        string    `json:"id" db:"id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Grade     *int      `json:"grade" db:"grade"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateStudentRequest is the consolidated student-creation contract.
// Grade and age arrive as strings, the way the admin form submits them.
type CreateStudentRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	Grade         string `json:"grade"`
	Password      string `json:"password"`
	Age           string `json:"age"`
	ParentName    string `json:"parentName"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
}

type StudentsResponse struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Data    []Student `json:"data"`
}

type CreateStudentResponse struct {
	Success bool    `json:"success"`
	Data    Student `json:"data"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Fields  []string `json:"fields,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Portal   Role   `json:"portal" validate:"required,oneof=admin student"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

type Book struct {
	ID             string    `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Author         string    `json:"author" db:"author"`
	ClassSuitable  int       `json:"classSuitable" db:"class_suitable"`
	TotalCount     int       `json:"totalCount" db:"total_count"`
	AvailableCount int       `json:"availableCount" db:"available_count"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type BookSort string

const (
	SortTitleAsc  BookSort = "title_asc"
	SortTitleDesc BookSort = "title_desc"
)

// BookFilter narrows the catalog listing; zero values mean "no filter".
type BookFilter struct {
	Search        string
	Grade         int
	AvailableOnly bool
	Sort          BookSort
}

type CreateBookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	ClassSuitable int    `json:"classSuitable" validate:"required,gte=1"`
	TotalCount    int    `json:"totalCount" validate:"gte=0"`
}

type UpdateBookRequest struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	ClassSuitable *int    `json:"classSuitable" validate:"omitempty,gte=1"`
	TotalCount    *int    `json:"totalCount" validate:"omitempty,gte=0"`
}

type Ebook struct {
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Author        string    `json:"author" db:"author"`
	GradeSuitable int       `json:"gradeSuitable" db:"grade_suitable"`
	URL           string    `json:"url" db:"url"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

type CreateEbookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	GradeSuitable int    `json:"gradeSuitable" validate:"required,gte=1"`
	URL           string `json:"url" validate:"required,url"`
}

// IssuedBook is open while ReturnedAt is nil.
type IssuedBook struct {
	ID         string     `json:"id" db:"id"`
	BookID     string     `json:"bookId" db:"book_id"`
	StudentID  string     `json:"studentId" db:"student_id"`
	IssuedBy   string     `json:"issuedBy" db:"issued_by"`
	IssuedAt   time.Time  `json:"issuedAt" db:"issued_at"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnedAt *time.Time `json:"returnedAt" db:"returned_at"`
	FineAmount *int       `json:"fineAmount" db:"fine_amount"`
	CreatedAt  time.Time  `json:"-" db:"created_at"`
}

type IssueRequest struct {
	StudentID string    `json:"studentId" validate:"required,uuid"`
	BookID    string    `json:"bookId" validate:"required,uuid"`
	DueDate   time.Time `json:"dueDate" validate:"required"`
	IssuedBy  string    `json:"-"`
}

type ReturnRequest struct {
	StudentID string `json:"studentId" validate:"required,uuid"`
	BookID    string `json:"bookId" validate:"required,uuid"`
}

type ReturnResponse struct {
	IssuedBook
	Overdue bool `json:"overdue"`
}

// IssueView is the student-facing "my borrowed books" row.
type IssueView struct {
	ID       string    `json:"id" db:"id"`
	BookID   string    `json:"bookId" db:"book_id"`
	Title    string    `json:"title" db:"title"`
	IssuedAt time.Time `json:"issuedAt" db:"issued_at"`
	DueDate  time.Time `json:"dueDate" db:"due_date"`
	Overdue  bool      `json:"overdue" db:"overdue"`
}

type DashboardStats struct {
	Students   int `json:"students"`
	Books      int `json:"books"`
	OpenIssues int `json:"openIssues"`
	Overdue    int `json:"overdue"`
}

// ActivityRow is the raw recent-issuance join from the store.
type ActivityRow struct {
	IssuedAt   time.Time  `db:"issued_at"`
	FullName   string     `db:"full_name"`
	Title      string     `db:"title"`
	DueDate    time.Time  `db:"due_date"`
	ReturnedAt *time.Time `db:"returned_at"`
}

type ActivityStatus string

const (
	ActivityOK       ActivityStatus = "ok"
	ActivityOverdue  ActivityStatus = "overdue"
	ActivityReturned ActivityStatus = "returned"
)

type Activity struct {
	When    time.Time      `json:"when"`
	User    string         `json:"user"`
	Action  string         `json:"action"`
	Details string         `json:"details"`
	Status  ActivityStatus `json:"status"`
}

// CirculationRow feeds the xlsx circulation report.
type CirculationRow struct {
	IssuedAt   time.Time  `db:"issued_at"`
	FullName   string     `db:"full_name"`
	Email      string     `db:"email"`
	Title      string     `db:"title"`
	Author     string     `db:"author"`
	DueDate    time.Time  `db:"due_date"`
	ReturnedAt *time.Time `db:"returned_at"`
	FineAmount *int       `db:"fine_amount"`
}

type MessageStatus string

const (
	MessageOpen     MessageStatus = "open"
	MessageAnswered MessageStatus = "answered"
)

type Message struct {
	ID         string        `json:"id" db:"id"`
	StudentID  string        `json:"studentId" db:"student_id"`
	Text       string        `json:"text" db:"text"`
	AdminReply *string       `json:"adminReply" db:"admin_reply"`
	Status     MessageStatus `json:"status" db:"status"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
}

type SendMessageRequest struct {
	StudentID string `json:"studentId" validate:"required,uuid"`
	Text      string `json:"text" validate:"required"`
}

type ReplyRequest struct {
	Text string `json:"text" validate:"required"`
}

type TransactionType string

const (
	TransactionFine TransactionType = "fine"
)

type Transaction struct {
	ID        string          `json:"id" db:"id"`
	StudentID string          `json:"studentId" db:"student_id"`
	Amount    int             `json:"amount" db:"amount"`
	Type      TransactionType `json:"type" db:"type"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}
