package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"student_manager/internal/forms"
	"student_manager/internal/models"
	"student_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing notices. French strings are the contract of the reused
// templates.
const (
	msgStudentAdded   = "Étudiant ajouté avec succès."
	msgStudentEdited  = "Informations modifiées avec succès."
	msgStudentDeleted = "Étudiant supprimé."

	msgGenericError = "Une erreur est survenue. Veuillez réessayer."
)

const csvDisposition = "attachment;filename=students.csv"

// logError records an internal failure; user-facing output is handled by
// the caller so no raw detail leaks to the client.
func (h *Handler) logError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
}

// paramID parses the :id path parameter. A malformed id is handled like a
// missing record.
func (h *Handler) paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderNotFound(c)
		return 0, false
	}
	return id, true
}

func (h *Handler) studentList(c *gin.Context) {
	students, err := h.services.List(c.Request.Context())
	if err != nil {
		h.logError(c, "student_list_failed", err)
		h.render(c, http.StatusInternalServerError, "student_list.html", gin.H{"Students": []models.Student{}, "Error": msgGenericError})
		return
	}
	h.render(c, http.StatusOK, "student_list.html", gin.H{"Students": students})
}

func (h *Handler) addStudentForm(c *gin.Context) {
	h.render(c, http.StatusOK, "add_student.html", gin.H{"Form": forms.StudentData{}, "Errors": forms.Errors(nil)})
}

func (h *Handler) addStudent(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form payload")
		return
	}
	data, errs := forms.BindStudent(c.Request.PostForm)
	if len(errs) > 0 {
		h.render(c, http.StatusOK, "add_student.html", gin.H{"Form": data, "Errors": errs})
		return
	}

	if _, err := h.services.Create(c.Request.Context(), data.Name, data.Email); err != nil {
		h.logError(c, "student_add_failed", err, "name", data.Name)
		h.render(c, http.StatusInternalServerError, "add_student.html", gin.H{"Form": data, "Errors": forms.Errors(nil), "Error": msgGenericError})
		return
	}

	h.setFlash(c, msgStudentAdded)
	c.Redirect(http.StatusFound, "/students")
}

func (h *Handler) editStudentForm(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	student, err := h.services.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			h.renderNotFound(c)
			return
		}
		h.logError(c, "student_edit_load_failed", err, "id", id)
		h.render(c, http.StatusInternalServerError, "edit_student.html", gin.H{"StudentID": id, "Form": forms.StudentData{}, "Errors": forms.Errors(nil), "Error": msgGenericError})
		return
	}

	h.render(c, http.StatusOK, "edit_student.html", gin.H{
		"StudentID": student.ID,
		"Form":      forms.StudentData{Name: student.Name, Email: student.Email},
		"Errors":    forms.Errors(nil),
	})
}

func (h *Handler) editStudent(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form payload")
		return
	}
	data, errs := forms.BindStudent(c.Request.PostForm)
	if len(errs) > 0 {
		h.render(c, http.StatusOK, "edit_student.html", gin.H{"StudentID": id, "Form": data, "Errors": errs})
		return
	}

	if err := h.services.Update(c.Request.Context(), id, data.Name, data.Email); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			h.renderNotFound(c)
			return
		}
		h.logError(c, "student_edit_failed", err, "id", id)
		h.render(c, http.StatusInternalServerError, "edit_student.html", gin.H{"StudentID": id, "Form": data, "Errors": forms.Errors(nil), "Error": msgGenericError})
		return
	}

	h.setFlash(c, msgStudentEdited)
	c.Redirect(http.StatusFound, "/students")
}

func (h *Handler) deleteStudent(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			h.renderNotFound(c)
			return
		}
		h.logError(c, "student_delete_failed", err, "id", id)
		h.setFlash(c, msgGenericError)
		c.Redirect(http.StatusFound, "/students")
		return
	}

	h.setFlash(c, msgStudentDeleted)
	c.Redirect(http.StatusFound, "/students")
}

func (h *Handler) studentDetail(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	student, err := h.services.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			h.renderNotFound(c)
			return
		}
		h.logError(c, "student_detail_failed", err, "id", id)
		h.render(c, http.StatusInternalServerError, "student_list.html", gin.H{"Students": []models.Student{}, "Error": msgGenericError})
		return
	}

	h.render(c, http.StatusOK, "student_detail.html", gin.H{"Student": student})
}

func (h *Handler) exportCSV(c *gin.Context) {
	body, err := h.services.ExportCSV(c.Request.Context())
	if err != nil {
		h.logError(c, "export_csv_failed", err)
		h.render(c, http.StatusInternalServerError, "student_list.html", gin.H{"Students": []models.Student{}, "Error": msgGenericError})
		return
	}

	c.Header("Content-Disposition", csvDisposition)
	c.Data(http.StatusOK, "text/csv", body)
}

func (h *Handler) searchForm(c *gin.Context) {
	h.render(c, http.StatusOK, "search.html", gin.H{"Query": ""})
}

func (h *Handler) searchStudents(c *gin.Context) {
	query := c.PostForm("query")

	results, err := h.services.Search(c.Request.Context(), query)
	if err != nil {
		h.logError(c, "student_search_failed", err, "query", query)
		h.render(c, http.StatusInternalServerError, "search.html", gin.H{"Query": query, "Error": msgGenericError})
		return
	}

	h.render(c, http.StatusOK, "search.html", gin.H{
		"Query":    query,
		"Results":  results,
		"Searched": true,
	})
}
