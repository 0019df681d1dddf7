package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey    = "userId"
	requestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "requestId"
)

// requestLogger tags every request with an id and logs method, path,
// status and duration once the handler chain finishes.
func (h *Handler) requestLogger(c *gin.Context) {
	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set(ctxRequestIDKey, reqID)
	c.Header(requestIDHeader, reqID)

	start := time.Now()
	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// currentUser resolves the session cookie into a user id, if present and
// valid. It never aborts: no route requires a session, the id only toggles
// logged-in UI state.
func (h *Handler) currentUser(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		c.Next()
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		// Expired or tampered token: treat the client as logged out.
		c.Next()
		return
	}

	c.Set(ctxUserIDKey, userID)
	c.Next()
}

// isLoggedIn reports whether the middleware resolved a session for this
// request.
func isLoggedIn(c *gin.Context) bool {
	_, ok := c.Get(ctxUserIDKey)
	return ok
}
