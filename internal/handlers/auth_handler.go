package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendview/internal/middleware"
	"spendview/internal/models"
)

// ShowLogin renders the login form. Visitors who already hold a live
// session are sent straight to their expenses.
func (h *Handlers) ShowLogin(c *gin.Context) {
	if middleware.CurrentSession(c).IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/expenses")
		return
	}

	data := gin.H{"From": c.Query("from")}
	if c.Query("registered") == "1" {
		data["Flash"] = "Account created. You can log in now."
	}
	c.HTML(http.StatusOK, "login", h.view(c, data))
}

// Login validates the form and exchanges the credentials for a session.
// On success the visitor returns to where they were headed before the
// guard intercepted them.
func (h *Handlers) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		h.failPage(c, "login", bindingError(err), gin.H{"Form": creds, "From": c.PostForm("from")})
		return
	}

	if _, err := h.sessions.Login(c, creds); err != nil {
		h.failPage(c, "login", err, gin.H{"Form": creds, "From": c.PostForm("from")})
		return
	}

	c.Redirect(http.StatusSeeOther, returnPath(c.PostForm("from")))
}

// Logout clears the session and returns to the landing page.
func (h *Handlers) Logout(c *gin.Context) {
	h.sessions.Logout(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// ShowRegister renders the self-registration form.
func (h *Handlers) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register", h.view(c, nil))
}

// Register validates the registration form locally, mismatched password
// confirmation included, and only then forwards it to the backend.
func (h *Handlers) Register(c *gin.Context) {
	var reg models.UserRegister
	if err := c.ShouldBind(&reg); err != nil {
		h.failPage(c, "register", bindingError(err), gin.H{"Form": reg})
		return
	}

	if _, err := h.client.Register(c.Request.Context(), reg); err != nil {
		h.failPage(c, "register", err, gin.H{"Form": reg})
		return
	}

	c.Redirect(http.StatusSeeOther, "/login?registered=1")
}
