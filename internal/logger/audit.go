package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogAdminAction ghi một dòng audit cho thao tác nhạy cảm của admin
// (duyệt KYC, giao dịch ví, xóa hàng loạt). Đi vào file audit riêng,
// không lẫn với log ứng dụng.
//
// Parameters:
// - c: Fiber context của request (lấy IP, request ID, user đang đăng nhập)
// - action: Tên hành động, ví dụ "partner_verify", "wallet_debit"
// - resourceType: Loại tài nguyên bị tác động, ví dụ "partner"
// - resourceID: ID tài nguyên bị tác động
// - details: Chi tiết bổ sung, có thể nil
func LogAdminAction(c fiber.Ctx, action, resourceType, resourceID string, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	if requestID := c.Get("X-Request-ID"); requestID != "" {
		details["request_id"] = requestID
	}

	userID, _ := c.Locals("user_id").(string)

	GetAuditLogger().WithFields(logrus.Fields{
		"action":        action,
		"user_id":       userID,
		"resource_type": resourceType,
		"resource_id":   resourceID,
		"ip":            c.IP(),
		"details":       details,
		"timestamp":     time.Now(),
	}).Info("Audit log")
}
