package questionmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các mức độ khó của bộ câu hỏi (hiển thị cho khách trước khi bắt đầu)
const (
	QuestionnaireDifficultyEasy   = "easy"
	QuestionnaireDifficultyMedium = "medium"
	QuestionnaireDifficultyHard   = "hard"
)

// QuestionnaireMetadata là thông tin hiển thị kèm bộ câu hỏi
type QuestionnaireMetadata struct {
	EstimatedTime int64    `json:"estimatedTime" bson:"estimatedTime"` // Thời gian làm ước tính (phút)
	Difficulty    string   `json:"difficulty" bson:"difficulty"`       // Mức độ khó: easy | medium | hard
	Tags          []string `json:"tags" bson:"tags"`                   // Nhãn phân loại
	Instructions  string   `json:"instructions" bson:"instructions"`   // Hướng dẫn trước khi làm
}

// Questionnaire là bộ câu hỏi đánh giá tình trạng máy cho một nhóm thiết bị.
// Bộ câu hỏi tham chiếu các Question theo ID, thứ tự trong QuestionIDs là
// thứ tự hiển thị cho khách. Mỗi category chỉ nên có một bộ isDefault.
type Questionnaire struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`           // ID của bộ câu hỏi
	Title       string             `json:"title" bson:"title" index:"text"`   // Tên bộ câu hỏi
	Description string             `json:"description" bson:"description"`    // Mô tả
	Category    string             `json:"category" bson:"category" index:""` // Slug nhóm thiết bị áp dụng
	Version     int64              `json:"version" bson:"version"`            // Số phiên bản, tăng khi sửa nội dung
	IsActive    bool               `json:"isActive" bson:"isActive" default:"true"` // Đang dùng hay đã tắt
	IsDefault   bool               `json:"isDefault" bson:"isDefault"`        // Bộ mặc định của category

	Metadata    QuestionnaireMetadata `json:"metadata" bson:"metadata"`       // Thông tin hiển thị
	QuestionIDs []string              `json:"questionIds" bson:"questionIds"` // ID các câu hỏi theo thứ tự hiển thị

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
