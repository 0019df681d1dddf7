package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *Handler) index(c *gin.Context) {
	h.render(c, http.StatusOK, "index.html", gin.H{})
}

func (h *Handler) about(c *gin.Context) {
	h.render(c, http.StatusOK, "about.html", gin.H{})
}

func (h *Handler) contact(c *gin.Context) {
	h.render(c, http.StatusOK, "contact.html", gin.H{})
}
