package middleware

import (
	"strings"

	"cashmitra/internal/common"
	"cashmitra/internal/global"
	"cashmitra/internal/logger"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AdminClaims là claims trong JWT token của tài khoản quản trị
type AdminClaims struct {
	UserID string `json:"userId"` // ID của tài khoản quản trị
	Email  string `json:"email"`  // Email đăng nhập
	Role   string `json:"role"`   // Vai trò (admin, operator)
	jwt.StandardClaims
}

// AuthMiddleware xác thực JWT token từ header Authorization.
// Token được ký bằng HMAC với secret từ cấu hình server.
// Sau khi xác thực thành công, userId/email/role được lưu vào Locals cho handler phía sau.
//
// Parameters:
// - requireRole: Vai trò yêu cầu để truy cập route (rỗng = chỉ cần đăng nhập)
//
// Returns:
// - fiber.Handler: Middleware function
func AuthMiddleware(requireRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		tokenStr := parts[1]

		// Parse và verify token với secret từ config
		claims := &AdminClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
		})
		if err != nil {
			// Phân biệt token hết hạn với token không hợp lệ
			if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
				HandleErrorResponse(c, common.ErrTokenExpired)
				return nil
			}
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		if !token.Valid {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra vai trò nếu route yêu cầu
		if requireRole != "" && claims.Role != requireRole && claims.Role != "admin" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":         c.Path(),
				"role":         claims.Role,
				"require_role": requireRole,
			}).Warn("Tài khoản không có quyền truy cập route")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				common.MsgForbidden,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin tài khoản vào Locals cho handler phía sau
		c.Locals("user_id", claims.UserID)
		c.Locals("user_email", claims.Email)
		c.Locals("user_role", claims.Role)

		return c.Next()
	}
}
