package catalogdto

// CategoryCreateInput dữ liệu đầu vào khi tạo danh mục
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Icon        string `json:"icon" validate:"max=500"`
	IsActive    bool   `json:"isActive"`
	SortOrder   int64  `json:"sortOrder"`
}

// CategoryUpdateInput dữ liệu đầu vào khi cập nhật danh mục
type CategoryUpdateInput struct {
	Name        string `json:"name" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"max=500"`
	Icon        string `json:"icon" validate:"max=500"`
	IsActive    bool   `json:"isActive"`
	SortOrder   int64  `json:"sortOrder"`
}
