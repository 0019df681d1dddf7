package service

import (
	"context"

	"student_manager/internal/models"
	"student_manager/internal/repository"
)

// Directory exposes the student CRUD surface: listing, lookup, mutation,
// search and CSV export.
type Directory interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id int) (models.Student, error)
	Create(ctx context.Context, name, email string) (int, error)
	Update(ctx context.Context, id int, name, email string) error
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string) ([]models.Student, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// Authorization exposes registration and the session-token flow.
type Authorization interface {
	Register(ctx context.Context, username, email, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

type Service struct {
	Directory
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Directory:     NewDirectoryService(repos.Students),
		Authorization: NewAuthService(repos.Auth, repos.Students, signingKey),
	}
}
