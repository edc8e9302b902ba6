// Package router đăng ký các route thuộc domain pickup:
// PickupOrder (CRUD + assign/update-status/reschedule/for-date/analytics).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"cashmitra/internal/api/middleware"
	pickuphdl "cashmitra/internal/api/pickup/handler"
	apirouter "cashmitra/internal/api/router"
)

// Register đăng ký tất cả route pickup lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	pickupHandler, err := pickuphdl.NewPickupHandler()
	if err != nil {
		return fmt.Errorf("create pickup handler: %w", err)
	}

	auth := middleware.AuthMiddleware("")

	r.RegisterCRUDRoutes(v1, "/pickup", pickupHandler, apirouter.ReadWriteConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/pickup", "POST", "/assign/:id", []fiber.Handler{auth}, pickupHandler.HandleAssign)
	apirouter.RegisterRouteWithMiddleware(v1, "/pickup", "POST", "/update-status/:id", []fiber.Handler{auth}, pickupHandler.HandleUpdateStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/pickup", "POST", "/reschedule/:id", []fiber.Handler{auth}, pickupHandler.HandleReschedule)
	apirouter.RegisterRouteWithMiddleware(v1, "/pickup", "GET", "/for-date", []fiber.Handler{auth}, pickupHandler.HandleForDate)
	apirouter.RegisterRouteWithMiddleware(v1, "/pickup", "GET", "/analytics", []fiber.Handler{auth}, pickupHandler.HandleAnalytics)
	apirouter.RegisterRouteWithMiddleware(v1, "/pickup", "GET", "/slots", []fiber.Handler{auth}, pickupHandler.HandleSlots)

	return nil
}
