package handlers

import (
	"errors"
	"net/http"

	"student_manager/internal/forms"
	"student_manager/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgRegistered     = "Inscription réussie. Connectez-vous."
	msgUsernameTaken  = "Ce nom d'utilisateur est déjà pris. Veuillez en choisir un autre."
	msgEmailTaken     = "Cet email est déjà utilisé. Veuillez en choisir un autre."
	msgRegisterFailed = "Une erreur est survenue lors de l'inscription. Veuillez réessayer."

	msgLoggedIn = "Connexion réussie."
	// msgBadCredentials is deliberately the same for an unknown username
	// and a wrong password.
	msgBadCredentials = "Identifiants invalides."
	msgLoggedOut      = "Déconnexion réussie."
)

func (h *Handler) registerForm(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{"Form": forms.RegisterData{}, "Errors": forms.Errors(nil)})
}

func (h *Handler) register(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form payload")
		return
	}
	data, errs := forms.BindRegister(c.Request.PostForm)
	if len(errs) > 0 {
		h.render(c, http.StatusOK, "register.html", gin.H{"Form": data, "Errors": errs})
		return
	}

	_, err := h.services.Register(c.Request.Context(), data.Username, data.Email, data.Password)
	switch {
	case err == nil:
		h.setFlash(c, msgRegistered)
		c.Redirect(http.StatusFound, "/login")
	case errors.Is(err, service.ErrUsernameTaken):
		h.setFlash(c, msgUsernameTaken)
		c.Redirect(http.StatusFound, "/register")
	case errors.Is(err, service.ErrEmailTaken):
		h.setFlash(c, msgEmailTaken)
		c.Redirect(http.StatusFound, "/register")
	default:
		// Transaction already rolled back in the repository; show a
		// generic notice and keep the detail in the logs.
		h.logError(c, "register_failed", err, "username", data.Username)
		h.render(c, http.StatusInternalServerError, "register.html", gin.H{"Form": data, "Errors": forms.Errors(nil), "Error": msgRegisterFailed})
	}
}

func (h *Handler) loginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"Form": forms.LoginData{}, "Errors": forms.Errors(nil)})
}

func (h *Handler) login(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form payload")
		return
	}
	data, errs := forms.BindLogin(c.Request.PostForm)
	if len(errs) > 0 {
		h.render(c, http.StatusOK, "login.html", gin.H{"Form": data, "Errors": errs})
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), data.Username, data.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.logError(c, "login_failed", err, "username", data.Username)
		}
		h.render(c, http.StatusOK, "login.html", gin.H{"Form": data, "Errors": forms.Errors(nil), "Error": msgBadCredentials})
		return
	}

	h.setSessionCookie(c, token)
	h.setFlash(c, msgLoggedIn)
	c.Redirect(http.StatusFound, "/")
}

// logout clears the session cookie; harmless when none was set.
func (h *Handler) logout(c *gin.Context) {
	h.clearSessionCookie(c)
	h.setFlash(c, msgLoggedOut)
	c.Redirect(http.StatusFound, "/login")
}
