package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kidlit/library-service/internal/model"
)

const emailDomain = "kids-paradise.com"

func (s *Service) ListStudents(ctx context.Context) ([]model.Student, error) {
	return s.repo.ListStudents(ctx)
}

// CreateStudent derives the missing optional fields the way the legacy
// endpoint did (email from name, generated password) and creates the
// credential and profile atomically.
func (s *Service) CreateStudent(ctx context.Context, req model.CreateStudentRequest) (model.Student, error) {
	id := uuid.New().String()

	email := req.Email
	if email == "" {
		email = deriveEmail(req.Name)
	}
	password := req.Password
	if password == "" {
		password = uuid.New().String()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Student{}, err
	}

	profile := model.Profile{
		ID:            id,
		Email:         email,
		FullName:      req.Name,
		Role:          model.RoleStudent,
		Grade:         parseOptionalInt(req.Grade),
		Age:           parseOptionalInt(req.Age),
		ParentName:    optionalString(req.ParentName),
		ContactNumber: optionalString(req.ContactNumber),
		Address:       optionalString(req.Address),
	}
	cred := model.Credential{
		ID:           id,
		Email:        email,
		PasswordHash: string(hash),
	}

	return s.repo.CreateStudent(ctx, cred, profile)
}

func (s *Service) ListTransactions(ctx context.Context, studentID string) ([]model.Transaction, error) {
	return s.repo.ListTransactions(ctx, studentID)
}

func deriveEmail(name string) string {
	local := strings.ToLower(strings.Join(strings.Fields(name), "."))
	return local + "@" + emailDomain
}

func parseOptionalInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
