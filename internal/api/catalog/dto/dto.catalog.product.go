package catalogdto

// ProductCreateInput dữ liệu đầu vào khi tạo sản phẩm qua CRUD chuẩn.
// Luồng form admin dùng /product/submit với payload dạng cây thay vì DTO này.
type ProductCreateInput struct {
	Name        string                 `json:"name" validate:"required,max=200"`
	Slug        string                 `json:"slug" validate:"required,max=200"`
	Brand       string                 `json:"brand" validate:"max=100"`
	CategoryID  string                 `json:"categoryId"`
	Description string                 `json:"description"`
	IsActive    bool                   `json:"isActive"`
	SortOrder   int64                  `json:"sortOrder"`
	Pricing     map[string]interface{} `json:"pricing"`
}

// ProductUpdateInput dữ liệu đầu vào khi cập nhật sản phẩm qua CRUD chuẩn
type ProductUpdateInput struct {
	Name        string                 `json:"name" validate:"omitempty,max=200"`
	Brand       string                 `json:"brand" validate:"omitempty,max=100"`
	CategoryID  string                 `json:"categoryId"`
	Description string                 `json:"description"`
	IsActive    bool                   `json:"isActive"`
	SortOrder   int64                  `json:"sortOrder"`
	Pricing     map[string]interface{} `json:"pricing"`
}

// ProductUpdateFieldInput cập nhật một trường theo dot-path từ form admin
type ProductUpdateFieldInput struct {
	Path  string      `json:"path" validate:"required,max=200"` // Dot-path của trường, ví dụ "pricing.discount.value"
	Value interface{} `json:"value"`                            // Giá trị mới, null hợp lệ
}

// ProductStatusInput đổi trạng thái vòng đời của sản phẩm
type ProductStatusInput struct {
	Status string `json:"status" validate:"required,oneof=draft active archived"`
}
