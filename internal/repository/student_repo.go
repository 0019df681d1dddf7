package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"student_manager/internal/models"
)

type StudentSQLite struct {
	db *sql.DB
}

func NewStudentSQLite(db *sql.DB) *StudentSQLite {
	return &StudentSQLite{db: db}
}

// Ensure implementation of Students interface at compile time.
var _ Students = (*StudentSQLite)(nil)

const (
	listStudentsSQL         = `SELECT id, name, email FROM students ORDER BY id ASC`
	selectStudentByIDSQL    = `SELECT id, name, email FROM students WHERE id = ?`
	selectStudentByEmailSQL = `SELECT id, name, email FROM students WHERE email = ? LIMIT 1`
	// LIKE is case-insensitive for ASCII in SQLite; the search view relies
	// on that ("an" matches "Anna").
	searchStudentsSQL = `SELECT id, name, email FROM students WHERE name LIKE '%' || ? || '%' ORDER BY id ASC`
	insertStudentSQL  = `INSERT INTO students (name, email) VALUES (?, ?)`
	updateStudentSQL  = `UPDATE students SET name = ?, email = ? WHERE id = ?`
	deleteStudentSQL  = `DELETE FROM students WHERE id = ?`
)

// List returns every student in id order.
func (r *StudentSQLite) List(ctx context.Context) ([]models.Student, error) {
	rows, err := r.db.QueryContext(ctx, listStudentsSQL)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// GetByID fetches one student. Returns ErrNotFound if the id is absent.
func (r *StudentSQLite) GetByID(ctx context.Context, id int) (*models.Student, error) {
	var s models.Student
	err := r.db.QueryRowContext(ctx, selectStudentByIDSQL, id).Scan(&s.ID, &s.Name, &s.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select student %d: %w", id, err)
	}
	return &s, nil
}

// FindByEmail fetches a student by email. Returns (nil, nil) if not found.
func (r *StudentSQLite) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	var s models.Student
	err := r.db.QueryRowContext(ctx, selectStudentByEmailSQL, email).Scan(&s.ID, &s.Name, &s.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select student by email %q: %w", email, err)
	}
	return &s, nil
}

// SearchName returns students whose name contains substr.
func (r *StudentSQLite) SearchName(ctx context.Context, substr string) ([]models.Student, error) {
	rows, err := r.db.QueryContext(ctx, searchStudentsSQL, substr)
	if err != nil {
		return nil, fmt.Errorf("search students %q: %w", substr, err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Insert adds a new student and returns its ID.
func (r *StudentSQLite) Insert(ctx context.Context, name, email string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertStudentSQL, name, email)
	if err != nil {
		return 0, fmt.Errorf("insert student %q: %w", name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for student %q: %w", name, err)
	}
	return int(lastID), nil
}

// Update rewrites name and email of the student with s.ID.
// Returns ErrNotFound when no row matched.
func (r *StudentSQLite) Update(ctx context.Context, s models.Student) error {
	res, err := r.db.ExecContext(ctx, updateStudentSQL, s.Name, s.Email, s.ID)
	if err != nil {
		return fmt.Errorf("update student %d: %w", s.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for student %d: %w", s.ID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the student with the given id.
// Returns ErrNotFound when no row matched.
func (r *StudentSQLite) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteStudentSQL, id)
	if err != nil {
		return fmt.Errorf("delete student %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for student %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanStudents(rows *sql.Rows) ([]models.Student, error) {
	out := make([]models.Student, 0, 16)
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
