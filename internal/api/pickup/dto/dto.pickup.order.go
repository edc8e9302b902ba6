package pickupdto

// PickupCreateInput dữ liệu đầu vào khi tạo đơn lấy hàng
type PickupCreateInput struct {
	OrderCode    string  `json:"orderCode" validate:"required,max=50"`
	OrderType    string  `json:"orderType" validate:"required,oneof=buy sell"`
	ProductID    string  `json:"productId"`
	QuotedPrice  float64 `json:"quotedPrice" validate:"gte=0"`
	CustomerName string  `json:"customerName" validate:"required,max=200"`
	Phone        string  `json:"phone" validate:"required,max=20"`
	Address      string  `json:"address" validate:"required,max=500"`
	Pincode      string  `json:"pincode" validate:"max=10"`
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	Slot         string  `json:"slot" validate:"required,oneof=morning afternoon evening night"`
	Priority     string  `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
}

// PickupUpdateInput dữ liệu đầu vào khi cập nhật đơn lấy hàng
type PickupUpdateInput struct {
	QuotedPrice  float64 `json:"quotedPrice" validate:"gte=0"`
	CustomerName string  `json:"customerName" validate:"omitempty,max=200"`
	Phone        string  `json:"phone" validate:"omitempty,max=20"`
	Address      string  `json:"address" validate:"omitempty,max=500"`
	Pincode      string  `json:"pincode" validate:"max=10"`
	Priority     string  `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
}

// PickupAssignInput gán nhân viên và chốt khung giờ cho đơn
type PickupAssignInput struct {
	AgentID    string `json:"agentId" validate:"required,max=50"`
	AgentName  string `json:"agentName" validate:"required,max=200"`
	AgentPhone string `json:"agentPhone" validate:"max=20"`
	Slot       string `json:"slot" validate:"omitempty,oneof=morning afternoon evening night"`
}

// PickupStatusInput chuyển trạng thái đơn kèm ghi chú timeline
type PickupStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending assigned in_transit completed cancelled"`
	Note   string `json:"note" validate:"max=500"`
}

// PickupRescheduleInput đổi lịch hẹn (chỉ trước khi in_transit)
type PickupRescheduleInput struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Slot string `json:"slot" validate:"required,oneof=morning afternoon evening night"`
}
