package pickupmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của đơn lấy hàng. Chuỗi chính tiến một chiều:
// pending → confirmed → assigned → in_transit → reached → picked_up → completed.
// cancelled đi được từ mọi trạng thái chưa kết thúc; rescheduled là trạng thái
// rẽ nhánh khi khách dời hẹn trước lúc nhân viên xuất phát, từ đó quay lại
// chuỗi tại assigned.
const (
	PickupStatusPending     = "pending"
	PickupStatusConfirmed   = "confirmed"
	PickupStatusAssigned    = "assigned"
	PickupStatusInTransit   = "in_transit"
	PickupStatusReached     = "reached"
	PickupStatusPickedUp    = "picked_up"
	PickupStatusCompleted   = "completed"
	PickupStatusCancelled   = "cancelled"
	PickupStatusRescheduled = "rescheduled"
)

// Các mức ưu tiên của đơn lấy hàng
const (
	PickupPriorityLow    = "low"
	PickupPriorityNormal = "normal"
	PickupPriorityHigh   = "high"
	PickupPriorityUrgent = "urgent"
)

// Các loại đơn nguồn của pickup
const (
	PickupOrderTypeBuy  = "buy"  // Giao máy đã bán cho khách
	PickupOrderTypeSell = "sell" // Thu máy khách bán lại
)

// PickupCustomer là thông tin khách tại điểm lấy hàng
type PickupCustomer struct {
	Name    string `json:"name" bson:"name"`       // Tên khách
	Phone   string `json:"phone" bson:"phone"`     // Số điện thoại
	Address string `json:"address" bson:"address"` // Địa chỉ lấy hàng
	Pincode string `json:"pincode" bson:"pincode"` // Mã bưu chính
}

// PickupSchedule là lịch hẹn lấy hàng
type PickupSchedule struct {
	Date string `json:"date" bson:"date"` // Ngày hẹn "YYYY-MM-DD"
	Slot string `json:"slot" bson:"slot"` // Mã khung giờ (bảng slot)
}

// PickupAgent là nhân viên được gán đi lấy hàng
type PickupAgent struct {
	AgentID string `json:"agentId" bson:"agentId"` // ID nhân viên
	Name    string `json:"name" bson:"name"`       // Tên nhân viên
	Phone   string `json:"phone" bson:"phone"`     // Số điện thoại
}

// PickupTimelineEntry là một mốc trong dòng thời gian xử lý đơn
type PickupTimelineEntry struct {
	ID     string `json:"id" bson:"id"`         // UUID của mốc
	Status string `json:"status" bson:"status"` // Trạng thái tại mốc
	At     int64  `json:"at" bson:"at"`         // Thời điểm (ms)
	Note   string `json:"note" bson:"note"`     // Ghi chú
}

// PickupOrder là đơn lấy hàng tận nơi: thu máy khách bán lại (sell)
// hoặc giao máy cho khách mua (buy).
type PickupOrder struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`                    // ID của đơn
	OrderCode   string             `json:"orderCode" bson:"orderCode" index:"unique"`  // Mã đơn hiển thị
	OrderType   string             `json:"orderType" bson:"orderType"`                 // buy | sell
	ProductID   string             `json:"productId" bson:"productId"`                 // ID sản phẩm liên quan
	QuotedPrice float64            `json:"quotedPrice" bson:"quotedPrice"`             // Giá đã chốt với khách

	Customer      PickupCustomer        `json:"customer" bson:"customer"`               // Thông tin khách
	Schedule      PickupSchedule        `json:"schedule" bson:"schedule"`               // Lịch hẹn
	Status        string                `json:"status" bson:"status" default:"pending"` // Trạng thái đơn
	Priority      string                `json:"priority" bson:"priority" default:"normal"` // Mức ưu tiên
	AssignedAgent PickupAgent           `json:"assignedAgent" bson:"assignedAgent"`     // Nhân viên được gán
	Timeline      []PickupTimelineEntry `json:"timeline" bson:"timeline"`               // Dòng thời gian xử lý

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// Thứ tự tiến của chuỗi trạng thái chính; cancel được phép từ mọi trạng thái
// chưa kết thúc, rescheduled nằm ngoài chuỗi
var pickupStatusOrder = map[string]int{
	PickupStatusPending:   0,
	PickupStatusConfirmed: 1,
	PickupStatusAssigned:  2,
	PickupStatusInTransit: 3,
	PickupStatusReached:   4,
	PickupStatusPickedUp:  5,
	PickupStatusCompleted: 6,
}

// CanBeRescheduled cho biết đơn còn dời hẹn được không: chỉ trước khi
// nhân viên xuất phát (pending|confirmed|assigned|rescheduled)
func CanBeRescheduled(current string) bool {
	if current == PickupStatusRescheduled {
		return true
	}
	order, ok := pickupStatusOrder[current]
	return ok && order < pickupStatusOrder[PickupStatusInTransit]
}

// CanTransitionStatus kiểm tra cạnh chuyển trạng thái đơn lấy hàng:
// chỉ tiến một bước trên chuỗi chính, cancelled đi được từ mọi trạng thái
// chưa kết thúc, rescheduled đi được từ các trạng thái trước in_transit
// và quay lại chuỗi tại assigned.
func CanTransitionStatus(current, next string) bool {
	if current == PickupStatusCompleted || current == PickupStatusCancelled {
		return false
	}
	if next == PickupStatusCancelled {
		return true
	}
	if next == PickupStatusRescheduled {
		return current != PickupStatusRescheduled && CanBeRescheduled(current)
	}
	if current == PickupStatusRescheduled {
		return next == PickupStatusAssigned
	}
	currentOrder, ok := pickupStatusOrder[current]
	if !ok {
		return false
	}
	nextOrder, ok := pickupStatusOrder[next]
	if !ok {
		return false
	}
	return nextOrder == currentOrder+1
}
