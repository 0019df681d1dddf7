package handlers

import (
	"context"
	"net/http/httptest"

	"student_manager/internal/models"
	"student_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockDirectory struct {
	students  []models.Student
	student   models.Student
	createID  int
	csv       []byte
	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
	searchErr error
	csvErr    error

	lastCreateName  string
	lastCreateEmail string
	lastUpdateID    int
	lastUpdateName  string
	lastUpdateEmail string
	lastDeleteID    int
	lastSearchQuery string
	deleteCalls     int
}

func (m *mockDirectory) List(ctx context.Context) ([]models.Student, error) {
	return m.students, m.listErr
}

func (m *mockDirectory) Get(ctx context.Context, id int) (models.Student, error) {
	return m.student, m.getErr
}

func (m *mockDirectory) Create(ctx context.Context, name, email string) (int, error) {
	m.lastCreateName = name
	m.lastCreateEmail = email
	return m.createID, m.createErr
}

func (m *mockDirectory) Update(ctx context.Context, id int, name, email string) error {
	m.lastUpdateID = id
	m.lastUpdateName = name
	m.lastUpdateEmail = email
	return m.updateErr
}

func (m *mockDirectory) Delete(ctx context.Context, id int) error {
	m.deleteCalls++
	m.lastDeleteID = id
	return m.deleteErr
}

func (m *mockDirectory) Search(ctx context.Context, query string) ([]models.Student, error) {
	m.lastSearchQuery = query
	return m.students, m.searchErr
}

func (m *mockDirectory) ExportCSV(ctx context.Context) ([]byte, error) {
	return m.csv, m.csvErr
}

type mockAuth struct {
	registerID  int
	registerErr error
	token       string
	tokenErr    error
	parseID     int
	parseErr    error

	lastRegisterUsername string
	lastRegisterEmail    string
	lastRegisterPassword string
	lastTokenUsername    string
	lastTokenPassword    string
	lastParseToken       string
}

func (m *mockAuth) Register(ctx context.Context, username, email, password string) (int, error) {
	m.lastRegisterUsername = username
	m.lastRegisterEmail = email
	m.lastRegisterPassword = password
	return m.registerID, m.registerErr
}

func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastTokenUsername = username
	m.lastTokenPassword = password
	return m.token, m.tokenErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// ---- Shared Test Helpers ----

const testTemplateGlob = "../../web/templates/*.html"

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	h.SetTemplateGlob(testTemplateGlob)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// cookieValue returns the value of the named Set-Cookie entry, or "".
func cookieValue(w *httptest.ResponseRecorder, name string) string {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}

// hasCookie reports whether the response sets the named cookie at all.
func hasCookie(w *httptest.ResponseRecorder, name string) bool {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return true
		}
	}
	return false
}
