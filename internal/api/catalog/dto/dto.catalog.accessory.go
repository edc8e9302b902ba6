package catalogdto

// AccessoryCreateInput dữ liệu đầu vào khi tạo phụ kiện
type AccessoryCreateInput struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Brand       string   `json:"brand" validate:"max=100"`
	CategoryID  string   `json:"categoryId"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Stock       int64    `json:"stock" validate:"gte=0"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
	Images      []string `json:"images"`
}

// AccessoryUpdateInput dữ liệu đầu vào khi cập nhật phụ kiện
type AccessoryUpdateInput struct {
	Name        string   `json:"name" validate:"omitempty,max=200"`
	Brand       string   `json:"brand" validate:"max=100"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Stock       int64    `json:"stock" validate:"gte=0"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
	Images      []string `json:"images"`
}

// AccessoryBulkInsertInput tạo nhiều phụ kiện trong một request
type AccessoryBulkInsertInput struct {
	Items []AccessoryCreateInput `json:"items" validate:"required,min=1,max=100,dive"`
}

// AccessoryBulkStatusInput đổi trạng thái hàng loạt theo danh sách ID
type AccessoryBulkStatusInput struct {
	IDs    []string `json:"ids" validate:"required,min=1,max=100"`
	Status string   `json:"status" validate:"required,oneof=active inactive"`
}

// AccessoryBulkDeleteInput xóa hàng loạt theo danh sách ID
type AccessoryBulkDeleteInput struct {
	IDs []string `json:"ids" validate:"required,min=1,max=100"`
}
