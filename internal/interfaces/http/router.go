package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sales-auth-api/internal/application/auth"
	"github.com/tu-usuario/sales-auth-api/internal/application/usecase"
	"github.com/tu-usuario/sales-auth-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	SaleUC    *usecase.SaleUseCase
	Log       *logger.Logger
	JWTSecret string
}

// Router registra las rutas de la API. Los paths se conservan tal cual los
// expone el API desde siempre (el panel admin los tiene cableados); solo /me
// es nuevo y va detrás del Bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Log)

	// Auth
	app.Post("/login", authHandler.Login)
	app.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Administración de usuarios (sin auth, igual que siempre las expuso el API)
	app.Post("/add", userHandler.Create)
	app.Get("/all", userHandler.List)
	app.Delete("/delete/:id", userHandler.Delete)

	// Libro de ventas
	app.Get("/sale/:id", saleHandler.Get)
	app.Put("/sale/:id", saleHandler.Update)
}
