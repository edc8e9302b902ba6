// Package router đăng ký các route thuộc domain catalog:
// Product (CRUD + luồng form), Category (CRUD), Accessory (CRUD + bulk).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "cashmitra/internal/api/catalog/handler"
	"cashmitra/internal/api/middleware"
	apirouter "cashmitra/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("create product handler: %w", err)
	}
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("create category handler: %w", err)
	}
	accessoryHandler, err := cataloghdl.NewAccessoryHandler()
	if err != nil {
		return fmt.Errorf("create accessory handler: %w", err)
	}

	auth := middleware.AuthMiddleware("")
	authAdmin := middleware.AuthMiddleware("admin")

	r.RegisterCRUDRoutes(v1, "/product", productHandler, apirouter.ReadWriteConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "GET", "/template", []fiber.Handler{auth}, productHandler.HandleTemplate)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "GET", "/edit-form/:id", []fiber.Handler{auth}, productHandler.HandleEditForm)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "POST", "/update-field/:id", []fiber.Handler{auth}, productHandler.HandleUpdateField)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "POST", "/submit", []fiber.Handler{auth}, productHandler.HandleSubmit)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "POST", "/duplicate/:id", []fiber.Handler{auth}, productHandler.HandleDuplicate)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "POST", "/update-status/:id", []fiber.Handler{auth}, productHandler.HandleUpdateStatus)

	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, apirouter.ReadWriteConfig)

	r.RegisterCRUDRoutes(v1, "/accessory", accessoryHandler, apirouter.ReadWriteConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/accessory", "POST", "/bulk-insert", []fiber.Handler{auth}, accessoryHandler.HandleBulkInsert)
	apirouter.RegisterRouteWithMiddleware(v1, "/accessory", "POST", "/bulk-update-status", []fiber.Handler{auth}, accessoryHandler.HandleBulkUpdateStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/accessory", "POST", "/bulk-delete", []fiber.Handler{authAdmin}, accessoryHandler.HandleBulkDelete)

	return nil
}
