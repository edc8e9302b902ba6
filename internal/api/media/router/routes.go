// Package router đăng ký các route thuộc domain media:
// Asset (CRUD chỉ đọc + upload/upload-batch/delete).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	mediahdl "cashmitra/internal/api/media/handler"
	"cashmitra/internal/api/middleware"
	apirouter "cashmitra/internal/api/router"
)

// Register đăng ký tất cả route media lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	mediaHandler, err := mediahdl.NewMediaHandler()
	if err != nil {
		return fmt.Errorf("create media handler: %w", err)
	}

	auth := middleware.AuthMiddleware("")
	authAdmin := middleware.AuthMiddleware("admin")

	r.RegisterCRUDRoutes(v1, "/media", mediaHandler, apirouter.ReadOnlyConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/media", "POST", "/upload", []fiber.Handler{auth}, mediaHandler.HandleUpload)
	apirouter.RegisterRouteWithMiddleware(v1, "/media", "POST", "/upload-batch", []fiber.Handler{auth}, mediaHandler.HandleUploadBatch)
	apirouter.RegisterRouteWithMiddleware(v1, "/media", "DELETE", "/delete/:publicId", []fiber.Handler{authAdmin}, mediaHandler.HandleDelete)

	return nil
}
