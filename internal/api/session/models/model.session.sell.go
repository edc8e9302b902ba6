package sessionmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của phiên bán máy
const (
	SessionStatusActive    = "active"
	SessionStatusExtended  = "extended"
	SessionStatusCompleted = "completed"
	SessionStatusExpired   = "expired"
	SessionStatusAbandoned = "abandoned"
)

// SellSession là phiên bán máy của khách: khách trả lời bộ câu hỏi tình trạng,
// nhận giá chốt và giữ giá trong thời hạn của phiên. Quá hạn, worker dọn phiên
// chuyển trạng thái sang expired.
type SellSession struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`                       // ID của phiên
	SessionKey  string             `json:"sessionKey" bson:"sessionKey" index:"unique"`   // Khóa phiên cấp cho client
	CustomerID  string             `json:"customerId" bson:"customerId"`                  // ID khách hàng
	ProductID   string             `json:"productId" bson:"productId"`                    // ID sản phẩm khách bán
	Selections  map[string]string  `json:"selections" bson:"selections"`                  // Câu trả lời: questionKey → optionKey
	QuotedPrice float64            `json:"quotedPrice" bson:"quotedPrice"`                // Giá đã chốt với khách
	Status      string             `json:"status" bson:"status" default:"active"`         // Trạng thái phiên
	ExpiresAt   int64              `json:"expiresAt" bson:"expiresAt" index:"single:1"`   // Hạn giữ giá (ms)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// IsOpen cho biết phiên còn đang giữ giá (chưa vào trạng thái kết thúc)
func (s SellSession) IsOpen() bool {
	return s.Status == SessionStatusActive || s.Status == SessionStatusExtended
}
