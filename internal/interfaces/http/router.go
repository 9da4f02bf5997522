package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/CRM-api/internal/application/analytics"
	"github.com/jhoicas/CRM-api/internal/application/auth"
	"github.com/jhoicas/CRM-api/internal/application/export"
	"github.com/jhoicas/CRM-api/internal/application/followup"
	"github.com/jhoicas/CRM-api/internal/application/leads"
	"github.com/jhoicas/CRM-api/internal/application/usecase"
	"github.com/jhoicas/CRM-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	LeadUC      *leads.LeadUseCase
	FollowUpUC  *followup.FollowUpUseCase
	ProjectUC   *usecase.ProjectUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ExportUC    *export.ExportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Debe llamarse al final: deja registrado
// el fallback JSON 404 para rutas desconocidas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	var revocations revocationChecker
	if deps.AuthUC != nil {
		revocations = deps.AuthUC
	}
	requireAuth := AuthMiddleware(deps.JWTSecret, revocations)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)

	// Leads (protegido). /export va antes de /:id.
	leadHandler := NewLeadHandler(deps.LeadUC, deps.FollowUpUC, deps.ExportUC)
	leadsGroup := api.Group("/leads", requireAuth)
	leadsGroup.Get("/", leadHandler.List)
	leadsGroup.Post("/", RequireRole(entity.RoleSales), leadHandler.Create)
	leadsGroup.Get("/export", leadHandler.Export)
	leadsGroup.Get("/:id", leadHandler.GetByID)
	leadsGroup.Put("/:id", leadHandler.Update)
	leadsGroup.Patch("/:id/status", leadHandler.UpdateStatus)
	leadsGroup.Post("/:id/follow-ups", leadHandler.ScheduleFollowUp)
	leadsGroup.Delete("/:id", RequireRole(entity.RoleAdmin), leadHandler.Delete)

	// Follow-ups (protegido)
	followUpHandler := NewFollowUpHandler(deps.FollowUpUC)
	followUps := api.Group("/follow-ups", requireAuth)
	followUps.Get("/", followUpHandler.List)
	followUps.Get("/:id", followUpHandler.GetByID)
	followUps.Post("/:id/complete", followUpHandler.Complete)

	// Projects (protegido)
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects := api.Group("/projects", requireAuth)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", RequireRole(entity.RoleAdmin), projectHandler.Update)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", requireAuth, dashboardHandler.GetSummary)

	app.Use(NotFound)
}
