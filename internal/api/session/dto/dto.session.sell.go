package sessiondto

// SessionCreateInput dữ liệu đầu vào khi tạo phiên bán máy
type SessionCreateInput struct {
	SessionKey  string            `json:"sessionKey" validate:"required,max=100"`
	CustomerID  string            `json:"customerId" validate:"required,max=50"`
	ProductID   string            `json:"productId" validate:"required,max=50"`
	Selections  map[string]string `json:"selections"`
	QuotedPrice float64           `json:"quotedPrice" validate:"gte=0"`
	TTLMinutes  int64             `json:"ttlMinutes" validate:"omitempty,gt=0,lte=10080"`
}

// SessionUpdateInput dữ liệu đầu vào khi cập nhật phiên
type SessionUpdateInput struct {
	Selections  map[string]string `json:"selections"`
	QuotedPrice float64           `json:"quotedPrice" validate:"gte=0"`
}

// SessionExtendInput gia hạn phiên thêm N phút
type SessionExtendInput struct {
	Minutes int64 `json:"minutes" validate:"required,gt=0,lte=10080"`
}

// SessionStatusInput chuyển trạng thái phiên
type SessionStatusInput struct {
	Status string `json:"status" validate:"required,oneof=active extended completed expired abandoned"`
}
