package service

import (
	"context"
	"strings"

	"student_manager/internal/models"
	"student_manager/internal/repository"
)

// ---- Repository mocks ----

type mockStudentRepo struct {
	students  []models.Student
	byID      map[int]models.Student
	byEmail   map[string]models.Student
	insertID  int
	listErr   error
	insertErr error
	updateErr error
	deleteErr error

	lastInsertName  string
	lastInsertEmail string
	lastUpdate      models.Student
	lastDeleteID    int
	lastSearch      string
	listCalls       int
	searchCalls     int
}

var _ repository.Students = (*mockStudentRepo)(nil)

func (m *mockStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	m.listCalls++
	return m.students, m.listErr
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id int) (*models.Student, error) {
	if s, ok := m.byID[id]; ok {
		return &s, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockStudentRepo) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	if s, ok := m.byEmail[email]; ok {
		return &s, nil
	}
	return nil, nil
}

func (m *mockStudentRepo) SearchName(ctx context.Context, substr string) ([]models.Student, error) {
	m.searchCalls++
	m.lastSearch = substr
	var out []models.Student
	for _, s := range m.students {
		// Matches repository semantics: LIKE is case-insensitive for ASCII.
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(substr)) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStudentRepo) Insert(ctx context.Context, name, email string) (int, error) {
	m.lastInsertName = name
	m.lastInsertEmail = email
	return m.insertID, m.insertErr
}

func (m *mockStudentRepo) Update(ctx context.Context, s models.Student) error {
	m.lastUpdate = s
	return m.updateErr
}

func (m *mockStudentRepo) Delete(ctx context.Context, id int) error {
	m.lastDeleteID = id
	return m.deleteErr
}

type mockAuthRepo struct {
	users     map[string]models.User
	createID  int
	createErr error

	lastUsername string
	lastHash     string
	lastEmail    string
	createCalls  int
}

var _ repository.Authorization = (*mockAuthRepo)(nil)

func (m *mockAuthRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := m.users[username]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *mockAuthRepo) CreateWithStudent(ctx context.Context, username, passwordHash, email string) (int, error) {
	m.createCalls++
	m.lastUsername = username
	m.lastHash = passwordHash
	m.lastEmail = email
	return m.createID, m.createErr
}
