// Package router đăng ký các route thuộc domain partner:
// Partner (CRUD + verify/toggle-user-status/wallet).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"cashmitra/internal/api/middleware"
	partnerhdl "cashmitra/internal/api/partner/handler"
	apirouter "cashmitra/internal/api/router"
)

// Register đăng ký tất cả route partner lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	partnerHandler, err := partnerhdl.NewPartnerHandler()
	if err != nil {
		return fmt.Errorf("create partner handler: %w", err)
	}

	authAdmin := middleware.AuthMiddleware("admin")

	r.RegisterCRUDRoutes(v1, "/partner", partnerHandler, apirouter.ReadWriteConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/partner", "POST", "/verify/:id", []fiber.Handler{authAdmin}, partnerHandler.HandleVerify)
	apirouter.RegisterRouteWithMiddleware(v1, "/partner", "POST", "/toggle-user-status/:id", []fiber.Handler{authAdmin}, partnerHandler.HandleToggleUserStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/partner", "POST", "/wallet/credit/:id", []fiber.Handler{authAdmin}, partnerHandler.HandleCreditWallet)
	apirouter.RegisterRouteWithMiddleware(v1, "/partner", "POST", "/wallet/debit/:id", []fiber.Handler{authAdmin}, partnerHandler.HandleDebitWallet)

	return nil
}
