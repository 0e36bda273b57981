package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	apperrors "spendview/internal/errors"
	"spendview/internal/middleware"
	"spendview/internal/models"
	"spendview/internal/pagination"
)

// Users renders the paginated account list. Admin only.
func (h *Handlers) Users(c *gin.Context) {
	s := middleware.CurrentSession(c)

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		page = pagination.PageRequest{}
	}
	page.Defaults()

	result, err := h.client.PaginatedUsers(c.Request.Context(), s.Token, page)
	if err != nil {
		h.failPage(c, "users", err, nil)
		return
	}

	c.HTML(http.StatusOK, "users", h.view(c, gin.H{
		"Result": result,
		"Flash":  c.Query("flash"),
		"Error":  c.Query("error"),
	}))
}

// NewUser renders the admin create form. Role and password fields only
// exist here, not on edit.
func (h *Handlers) NewUser(c *gin.Context) {
	c.HTML(http.StatusOK, "user_form", h.view(c, gin.H{
		"Insert": models.UserInsert{UserRole: models.RoleUser},
	}))
}

// CreateUser validates and submits a new account with an explicit role.
func (h *Handlers) CreateUser(c *gin.Context) {
	var in models.UserInsert
	if err := c.ShouldBind(&in); err != nil {
		h.failPage(c, "user_form", bindingError(err), gin.H{"Insert": in})
		return
	}

	if _, err := h.client.CreateUser(c.Request.Context(), middleware.CurrentSession(c).Token, in); err != nil {
		h.failPage(c, "user_form", err, gin.H{"Insert": in})
		return
	}

	c.Redirect(http.StatusSeeOther, "/users?flash="+url.QueryEscape("User created"))
}

// EditUser renders the edit form pre-filled with the account's profile
// fields.
func (h *Handlers) EditUser(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		h.failPage(c, "users", err, nil)
		return
	}

	user, err := h.client.User(c.Request.Context(), middleware.CurrentSession(c).Token, id)
	if err != nil {
		h.failPage(c, "users", err, nil)
		return
	}

	c.HTML(http.StatusOK, "user_form", h.view(c, gin.H{
		"Update": models.UserUpdate{
			Username:  user.Username,
			Email:     user.Email,
			Firstname: user.Firstname,
			Lastname:  user.Lastname,
		},
		"EditID": id,
	}))
}

// UpdateUser validates and submits profile changes for an account.
func (h *Handlers) UpdateUser(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		h.failPage(c, "users", err, nil)
		return
	}

	var in models.UserUpdate
	if err := c.ShouldBind(&in); err != nil {
		h.failPage(c, "user_form", bindingError(err), gin.H{"Update": in, "EditID": id})
		return
	}

	if _, err := h.client.UpdateUser(c.Request.Context(), middleware.CurrentSession(c).Token, id, in); err != nil {
		h.failPage(c, "user_form", err, gin.H{"Update": in, "EditID": id})
		return
	}

	c.Redirect(http.StatusSeeOther, "/users?flash="+url.QueryEscape("User updated"))
}

// DeleteUser deletes an account after backend confirmation.
func (h *Handlers) DeleteUser(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/users?error="+url.QueryEscape(errorMessage(err)))
		return
	}

	if err := h.client.DeleteUser(c.Request.Context(), middleware.CurrentSession(c).Token, id); err != nil {
		if isCode(err, apperrors.ErrSessionExpired.Code) {
			h.sessions.Logout(c)
			c.Redirect(http.StatusSeeOther, "/login?from="+url.QueryEscape("/users"))
			return
		}
		c.Redirect(http.StatusSeeOther, "/users?error="+url.QueryEscape(errorMessage(err)))
		return
	}

	c.Redirect(http.StatusSeeOther, "/users?flash="+url.QueryEscape("User deleted"))
}
