// Package router đăng ký các route thuộc domain questionnaire:
// Question (CRUD + duplicate/update-status/reorder + editor lựa chọn)
// và Questionnaire (bộ câu hỏi: CRUD + duplicate/update-status).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"cashmitra/internal/api/middleware"
	questionhdl "cashmitra/internal/api/questionnaire/handler"
	apirouter "cashmitra/internal/api/router"
)

// Register đăng ký tất cả route questionnaire lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	questionHandler, err := questionhdl.NewQuestionHandler()
	if err != nil {
		return fmt.Errorf("create question handler: %w", err)
	}

	auth := middleware.AuthMiddleware("")

	r.RegisterCRUDRoutes(v1, "/question", questionHandler, apirouter.ReadWriteConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/question", "POST", "/duplicate/:id", []fiber.Handler{auth}, questionHandler.HandleDuplicate)
	apirouter.RegisterRouteWithMiddleware(v1, "/question", "POST", "/update-status/:id", []fiber.Handler{auth}, questionHandler.HandleUpdateStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/question", "POST", "/reorder", []fiber.Handler{auth}, questionHandler.HandleReorder)
	apirouter.RegisterRouteWithMiddleware(v1, "/question", "POST", "/add-option/:id", []fiber.Handler{auth}, questionHandler.HandleAddOption)
	apirouter.RegisterRouteWithMiddleware(v1, "/question", "PUT", "/update-option/:id/:optionId", []fiber.Handler{auth}, questionHandler.HandleUpdateOption)
	apirouter.RegisterRouteWithMiddleware(v1, "/question", "DELETE", "/remove-option/:id/:optionId", []fiber.Handler{auth}, questionHandler.HandleRemoveOption)

	questionnaireHandler, err := questionhdl.NewQuestionnaireHandler()
	if err != nil {
		return fmt.Errorf("create questionnaire handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/questionnaire", questionnaireHandler, apirouter.ReadWriteConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/questionnaire", "POST", "/duplicate/:id", []fiber.Handler{auth}, questionnaireHandler.HandleDuplicate)
	apirouter.RegisterRouteWithMiddleware(v1, "/questionnaire", "POST", "/update-status/:id", []fiber.Handler{auth}, questionnaireHandler.HandleUpdateStatus)

	return nil
}
