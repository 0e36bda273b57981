// Package handlers renders the application's pages and orchestrates form
// submissions against the expense-tracker backend.
package handlers

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"spendview/internal/api"
	"spendview/internal/middleware"
	"spendview/internal/models"
	"spendview/internal/session"
	"spendview/web"
)

// Handlers bundles the dependencies shared by all page handlers.
type Handlers struct {
	client   *api.Client
	sessions *session.Manager
}

// New creates the page handlers.
func New(client *api.Client, sessions *session.Manager) *Handlers {
	return &Handlers{client: client, sessions: sessions}
}

// Routes builds the application router with all middleware and pages wired.
func Routes(h *Handlers, sessions *session.Manager) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.WithSession(sessions))

	router.SetHTMLTemplate(web.Templates())
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		router.StaticFS("/static", http.FS(staticFS))
	}

	// Public pages
	router.GET("/", h.Home)
	router.GET("/login", h.ShowLogin)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	router.GET("/register", h.ShowRegister)
	router.POST("/register", h.Register)
	router.GET("/unauthorized", h.Unauthorized)

	// Pages requiring a live session
	protected := router.Group("", middleware.RequireAuth())
	protected.GET("/expenses", h.Expenses)
	protected.GET("/expenses/new", h.NewExpense)
	protected.POST("/expenses/create", h.CreateExpense)
	protected.GET("/expenses/edit/:id", h.EditExpense)
	protected.POST("/expenses/update/:id", h.UpdateExpense)
	protected.POST("/expenses/delete/:id", h.DeleteExpense)

	protected.GET("/budgets/new", h.NewBudget)
	protected.POST("/budgets/create", h.CreateBudget)
	protected.POST("/budgets/delete/:id", h.DeleteBudget)

	// Account administration
	admin := protected.Group("/users", middleware.RequireRole(models.RoleAdmin))
	admin.GET("", h.Users)
	admin.GET("/new", h.NewUser)
	admin.POST("/create", h.CreateUser)
	admin.GET("/edit/:id", h.EditUser)
	admin.POST("/update/:id", h.UpdateUser)
	admin.POST("/delete/:id", h.DeleteUser)

	return router
}

// Home renders the landing page.
func (h *Handlers) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", h.view(c, nil))
}

// Unauthorized renders the access-denied notice.
func (h *Handlers) Unauthorized(c *gin.Context) {
	c.HTML(http.StatusForbidden, "unauthorized", h.view(c, nil))
}

// view assembles the data every template render needs on top of the
// page-specific extras.
func (h *Handlers) view(c *gin.Context, extra gin.H) gin.H {
	s := middleware.CurrentSession(c)
	data := gin.H{
		"Authenticated": s.IsAuthenticated(),
		"Username":      s.Claims.Username,
		"IsAdmin":       s.HasRole(models.RoleAdmin),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
