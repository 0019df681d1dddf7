package repository

import (
	"context"
	"database/sql"
	"errors"

	"student_manager/internal/models"
)

// ErrNotFound reports an id-based lookup (or update/delete) that matched
// no row. The handler layer translates it to HTTP 404.
var ErrNotFound = errors.New("record not found")

type Students interface {
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id int) (*models.Student, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	SearchName(ctx context.Context, substr string) ([]models.Student, error)
	Insert(ctx context.Context, name, email string) (int, error)
	Update(ctx context.Context, s models.Student) error
	Delete(ctx context.Context, id int) error
}

type Authorization interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// CreateWithStudent inserts the user and its paired student row in a
	// single transaction.
	CreateWithStudent(ctx context.Context, username, passwordHash, email string) (int, error)
}

type Repository struct {
	Students Students
	Auth     Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Students: NewStudentSQLite(db),
		Auth:     NewUserRepository(db),
	}
}
