package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashCookieName   = "flash"
	sessionCookieName = "session"

	// sessionMaxAge matches the token TTL issued by the auth service.
	sessionMaxAge = 24 * 60 * 60
)

// render draws a page template, attaching the pending flash notice (one-shot)
// and the logged-in flag every view needs.
func (h *Handler) render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flash"] = h.takeFlash(c)
	data["LoggedIn"] = isLoggedIn(c)
	c.HTML(code, name, data)
}

// renderNotFound draws the shared 404 page.
func (h *Handler) renderNotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "not_found.html", gin.H{})
}

// setFlash stores a one-shot notice for the next rendered page.
func (h *Handler) setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, message, 60, "/", "", false, true)
}

// takeFlash reads and clears the pending flash notice, if any.
func (h *Handler) takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookieName)
	if err != nil || msg == "" {
		return ""
	}
	// gin already url-unescapes the cookie value.
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return msg
}

// setSessionCookie attaches the opaque session token to the client.
func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, sessionMaxAge, "/", "", false, true)
}

// clearSessionCookie removes the session token. Safe to call when no
// session was set.
func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
