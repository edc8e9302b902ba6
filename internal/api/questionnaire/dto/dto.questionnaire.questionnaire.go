package questiondto

// QuestionnaireMetadataInput thông tin hiển thị kèm bộ câu hỏi
type QuestionnaireMetadataInput struct {
	EstimatedTime int64    `json:"estimatedTime" validate:"min=0,max=240"`
	Difficulty    string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Tags          []string `json:"tags" validate:"max=20,dive,max=50"`
	Instructions  string   `json:"instructions" validate:"max=2000"`
}

// QuestionnaireCreateInput dữ liệu đầu vào khi tạo bộ câu hỏi
type QuestionnaireCreateInput struct {
	Title       string                     `json:"title" validate:"required,max=300"`
	Description string                     `json:"description" validate:"max=1000"`
	Category    string                     `json:"category" validate:"required,max=100"`
	IsDefault   bool                       `json:"isDefault"`
	Metadata    QuestionnaireMetadataInput `json:"metadata"`
	QuestionIDs []string                   `json:"questionIds" validate:"max=200,dive,len=24,hexadecimal"`
}

// QuestionnaireUpdateInput dữ liệu đầu vào khi cập nhật bộ câu hỏi
type QuestionnaireUpdateInput struct {
	Title       string                     `json:"title" validate:"omitempty,max=300"`
	Description string                     `json:"description" validate:"max=1000"`
	Category    string                     `json:"category" validate:"omitempty,max=100"`
	IsDefault   bool                       `json:"isDefault"`
	Metadata    QuestionnaireMetadataInput `json:"metadata"`
	QuestionIDs []string                   `json:"questionIds" validate:"max=200,dive,len=24,hexadecimal"`
}

// QuestionnaireStatusInput bật/tắt bộ câu hỏi.
// Dùng con trỏ để phân biệt false với không truyền.
type QuestionnaireStatusInput struct {
	IsActive *bool `json:"isActive" validate:"required"`
}
