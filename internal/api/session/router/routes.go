// Package router đăng ký các route thuộc domain session:
// SellSession (CRUD + extend/update-status/clean-expired).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"cashmitra/internal/api/middleware"
	apirouter "cashmitra/internal/api/router"
	sessionhdl "cashmitra/internal/api/session/handler"
)

// Register đăng ký tất cả route session lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	sessionHandler, err := sessionhdl.NewSessionHandler()
	if err != nil {
		return fmt.Errorf("create session handler: %w", err)
	}

	auth := middleware.AuthMiddleware("")
	authAdmin := middleware.AuthMiddleware("admin")

	r.RegisterCRUDRoutes(v1, "/session", sessionHandler, apirouter.ReadWriteConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/session", "POST", "/extend/:id", []fiber.Handler{auth}, sessionHandler.HandleExtend)
	apirouter.RegisterRouteWithMiddleware(v1, "/session", "POST", "/update-status/:id", []fiber.Handler{auth}, sessionHandler.HandleUpdateStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/session", "POST", "/clean-expired", []fiber.Handler{authAdmin}, sessionHandler.HandleCleanExpired)

	return nil
}
