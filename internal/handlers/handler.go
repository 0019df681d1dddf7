package handlers

import (
	"student_manager/internal/logger"
	"student_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// defaultTemplateGlob locates the page templates relative to the working
// directory when running from the repository root.
const defaultTemplateGlob = "web/templates/*.html"

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services     *service.Service
	log          *logger.Logger
	templateGlob string
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		services:     services,
		log:          log,
		templateGlob: defaultTemplateGlob,
	}
}

// SetTemplateGlob overrides where page templates are loaded from
// (used by tests, which run with a different working directory).
func (h *Handler) SetTemplateGlob(glob string) {
	h.templateGlob = glob
}

// InitRoutes builds and returns the Gin router with all routes registered.
// Paths and form field names mirror the original application and are the
// compatibility contract with its templates.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestLogger)
	router.Use(h.currentUser)

	router.LoadHTMLGlob(h.templateGlob)

	// Health endpoint
	router.GET("/health", h.health)

	h.registerPageRoutes(router)
	h.registerStudentRoutes(router)
	h.registerAuthRoutes(router)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.GET("/about", h.about)
	r.GET("/contact", h.contact)
}

func (h *Handler) registerStudentRoutes(r *gin.Engine) {
	r.GET("/students", h.studentList)
	r.GET("/add", h.addStudentForm)
	r.POST("/add", h.addStudent)
	r.GET("/edit/:id", h.editStudentForm)
	r.POST("/edit/:id", h.editStudent)
	r.GET("/delete/:id", h.deleteStudent)
	r.GET("/student/:id", h.studentDetail)
	r.GET("/export_csv", h.exportCSV)
	r.GET("/search", h.searchForm)
	r.POST("/search", h.searchStudents)
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/register", h.registerForm)
	r.POST("/register", h.register)
	r.GET("/login", h.loginForm)
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)
}
