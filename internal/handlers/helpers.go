package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "spendview/internal/errors"
	"spendview/internal/logger"
)

// parsePathID parses a positive integer path parameter.
func parsePathID(c *gin.Context, param string) (int, error) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id < 1 {
		return 0, apperrors.WithMessage(apperrors.ErrValidation, "Invalid "+param)
	}
	return id, nil
}

// errorMessage returns the user-facing text for an error. AppErrors carry
// their own message; anything else gets a generic one, with the detail
// kept to the logs.
func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
			)
		}
		return appErr.Message
	}
	logger.Get().Errorw("unexpected error", "error", err.Error())
	return "Something went wrong"
}

// statusFor returns the HTTP status to render an error page with.
func statusFor(err error) int {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// isCode reports whether err is an AppError with the given code.
func isCode(err error, code string) bool {
	var appErr *apperrors.AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// failPage renders tmpl with the error message merged into extra. A lapsed
// session instead clears the cookie and sends the visitor back through
// login, preserving the current URL for the return trip.
func (h *Handlers) failPage(c *gin.Context, tmpl string, err error, extra gin.H) {
	if isCode(err, apperrors.ErrSessionExpired.Code) {
		h.sessions.Logout(c)
		c.Redirect(http.StatusSeeOther, "/login?from="+url.QueryEscape(c.Request.URL.RequestURI()))
		return
	}

	data := gin.H{"Error": errorMessage(err)}
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(statusFor(err), tmpl, h.view(c, data))
}

// bindingError converts a form binding failure into a ValidationError with
// a readable message. The failure never reaches the backend.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.WithMessage(apperrors.ErrValidation, "Please check the form and try again")
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldMessage(fe))
	}
	return apperrors.WithMessage(apperrors.ErrValidation, strings.Join(parts, ". "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " cannot exceed " + fe.Param() + " characters"
	case "gte":
		return fe.Field() + " must be non-negative"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "eqfield":
		return "Passwords do not match"
	case "gtfield":
		return "End date must be after start date"
	case "password_complexity":
		return "Password must contain uppercase, lowercase, number, and special character"
	case "user_role":
		return "Role must be Admin or User"
	}
	return fe.Field() + " is invalid"
}

// returnPath sanitizes the post-login return target. Only local paths are
// honored; everything else lands on the expense list.
func returnPath(from string) string {
	if strings.HasPrefix(from, "/") && !strings.HasPrefix(from, "//") {
		return from
	}
	return "/expenses"
}
