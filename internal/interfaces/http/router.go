package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/enterprise-api/internal/application/usecase"
	"github.com/jhoicas/enterprise-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EnterpriseUC *usecase.EnterpriseUseCase
	JWTSecret    string // vacío: /api sin autenticación
	JWTIssuer    string
	Logger       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Logger))
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	}

	enterpriseHandler := NewEnterpriseHandler(deps.EnterpriseUC)

	enterprises := api.Group("/enterprises")
	enterprises.Post("/", enterpriseHandler.Create)
	enterprises.Get("/", enterpriseHandler.List)
	enterprises.Get("/:id", enterpriseHandler.GetByID)
	enterprises.Put("/:id", enterpriseHandler.Update)

	parties := api.Group("/parties/:partyId/enterprises")
	parties.Get("/", enterpriseHandler.ListByParty)
	parties.Post("/:id", enterpriseHandler.AssignToParty)
}
