package questiondto

// QuestionOptionInput dữ liệu một lựa chọn khi tạo/sửa câu hỏi.
// ID để trống khi tạo mới, service sẽ sinh UUID.
type QuestionOptionInput struct {
	ID          string  `json:"id"`
	Key         string  `json:"key" validate:"required,max=100"`
	Label       string  `json:"label" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=500"`
	Type        string  `json:"type" validate:"required,oneof=excellent good fair poor"`
	PriceImpact float64 `json:"priceImpact"`
	SortOrder   int64   `json:"sortOrder"`
}

// QuestionCreateInput dữ liệu đầu vào khi tạo câu hỏi
type QuestionCreateInput struct {
	Key         string                `json:"key" validate:"required,max=100"`
	Title       string                `json:"title" validate:"required,max=300"`
	Description string                `json:"description" validate:"max=1000"`
	Kind        string                `json:"kind" validate:"required,oneof=single_choice multiple_choice text number boolean"`
	Required    bool                  `json:"required"`
	Order       int64                 `json:"order"`
	Options     []QuestionOptionInput `json:"options" validate:"dive"`
}

// QuestionUpdateInput dữ liệu đầu vào khi cập nhật câu hỏi
type QuestionUpdateInput struct {
	Title       string `json:"title" validate:"omitempty,max=300"`
	Description string `json:"description" validate:"max=1000"`
	Required    bool   `json:"required"`
	Order       int64  `json:"order"`
}

// QuestionStatusInput đổi trạng thái câu hỏi
type QuestionStatusInput struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// QuestionReorderInput sắp xếp lại bộ câu hỏi theo danh sách ID đã có thứ tự
type QuestionReorderInput struct {
	IDs []string `json:"ids" validate:"required,min=1,max=200"`
}
