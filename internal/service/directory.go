package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"

	"student_manager/internal/models"
	"student_manager/internal/repository"
)

// ErrStudentNotFound reports an id that matched no student row.
var ErrStudentNotFound = errors.New("student not found")

type DirectoryService struct {
	students repository.Students
}

func NewDirectoryService(students repository.Students) *DirectoryService {
	return &DirectoryService{students: students}
}

// List returns every student in store order.
func (s *DirectoryService) List(ctx context.Context) ([]models.Student, error) {
	return s.students.List(ctx)
}

// Get returns one student or ErrStudentNotFound.
func (s *DirectoryService) Get(ctx context.Context, id int) (models.Student, error) {
	st, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Student{}, ErrStudentNotFound
		}
		return models.Student{}, err
	}
	return *st, nil
}

// Create inserts a new student and returns its assigned id.
func (s *DirectoryService) Create(ctx context.Context, name, email string) (int, error) {
	return s.students.Insert(ctx, name, email)
}

// Update rewrites the submitted fields of an existing student; the id is
// never changed.
func (s *DirectoryService) Update(ctx context.Context, id int, name, email string) error {
	err := s.students.Update(ctx, models.Student{ID: id, Name: name, Email: email})
	if errors.Is(err, repository.ErrNotFound) {
		return ErrStudentNotFound
	}
	return err
}

// Delete removes one student, or reports ErrStudentNotFound.
func (s *DirectoryService) Delete(ctx context.Context, id int) error {
	err := s.students.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrStudentNotFound
	}
	return err
}

// Search returns students whose name contains query.
// An empty query matches everyone, like the list view.
func (s *DirectoryService) Search(ctx context.Context, query string) ([]models.Student, error) {
	if query == "" {
		return s.students.List(ctx)
	}
	return s.students.SearchName(ctx, query)
}

// csvHeader is the exported file's first row. The French "Nom" is part of
// the download format consumed by existing clients.
var csvHeader = []string{"Nom", "Email"}

// ExportCSV renders all students as a CSV document, one row per student in
// store order. Standard CSV quoting applies, so names or emails containing
// commas or quotes stay parseable.
func (s *DirectoryService) ExportCSV(ctx context.Context) ([]byte, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, st := range students {
		if err := w.Write([]string{st.Name, st.Email}); err != nil {
			return nil, fmt.Errorf("write csv row for student %d: %w", st.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
