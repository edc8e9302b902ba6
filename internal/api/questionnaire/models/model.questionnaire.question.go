package questionmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại câu hỏi đánh giá tình trạng máy
const (
	QuestionKindSingleChoice   = "single_choice"
	QuestionKindMultipleChoice = "multiple_choice"
	QuestionKindText           = "text"
	QuestionKindNumber         = "number"
	QuestionKindBoolean        = "boolean"
)

// Các trạng thái của câu hỏi
const (
	QuestionStatusActive   = "active"
	QuestionStatusInactive = "inactive"
)

// QuestionOption là một lựa chọn trả lời của câu hỏi dạng choice.
// ID là UUID sinh khi tạo, ổn định qua mọi lần sửa/sắp xếp lại.
type QuestionOption struct {
	ID          string  `json:"id" bson:"id"`                   // UUID ổn định của lựa chọn
	Key         string  `json:"key" bson:"key"`                 // Khóa máy đọc (vd "screen-cracked")
	Label       string  `json:"label" bson:"label"`             // Nhãn hiển thị cho khách
	Description string  `json:"description" bson:"description"` // Mô tả thêm
	Type        string  `json:"type" bson:"type"`               // Mức tình trạng: excellent | good | fair | poor
	PriceImpact float64 `json:"priceImpact" bson:"priceImpact"` // Mức cộng/trừ giá (số âm là trừ)
	SortOrder   int64   `json:"sortOrder" bson:"sortOrder"`     // Thứ tự hiển thị trong câu hỏi
}

// Question là câu hỏi trong bộ đánh giá tình trạng máy khi khách bán lại.
// Câu hỏi dạng choice phải giữ ít nhất một lựa chọn sau mọi lần sửa.
type Question struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`                 // ID của câu hỏi
	Key         string             `json:"key" bson:"key" index:"unique"`           // Khóa máy đọc, duy nhất
	Title       string             `json:"title" bson:"title" index:"text"`         // Nội dung câu hỏi
	Description string             `json:"description" bson:"description"`          // Hướng dẫn trả lời
	Kind        string             `json:"kind" bson:"kind"`                        // Loại: single_choice | multiple_choice | text | number | boolean
	Required    bool               `json:"required" bson:"required"`                // Bắt buộc trả lời
	Order       int64              `json:"order" bson:"order"`                      // Thứ tự trong bộ câu hỏi
	Status      string             `json:"status" bson:"status" default:"active"`   // Trạng thái: active | inactive
	Options     []QuestionOption   `json:"options" bson:"options"`                  // Danh sách lựa chọn (choice kinds)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// IsChoiceKind cho biết câu hỏi có dùng danh sách lựa chọn hay không
func (q Question) IsChoiceKind() bool {
	return q.Kind == QuestionKindSingleChoice || q.Kind == QuestionKindMultipleChoice
}
