package notifier

import (
	"context"
	"fmt"
	"time"

	"cashmitra/internal/api/events"
	partnermodels "cashmitra/internal/api/partner/models"
	pickupmodels "cashmitra/internal/api/pickup/models"
	"cashmitra/internal/global"
	"cashmitra/internal/utility"
)

// Cửa sổ nhận diện sự kiện vừa xảy ra. Event bus chỉ mang bản ghi sau khi
// ghi, không mang diff, nên dùng timestamp của mốc nghiệp vụ (reviewedAt,
// timeline.at) để lọc đúng lần chuyển trạng thái thay vì mọi lần update.
const freshnessWindow = 10 * time.Second

// Subscribe đăng ký dispatcher vào event bus dữ liệu: thông báo khi hồ sơ
// đối tác được duyệt/từ chối và khi đơn lấy hàng được gán nhân viên.
func Subscribe(d *Dispatcher) {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.Operation != events.OpUpdate || e.Document == nil {
			return
		}

		switch e.CollectionName {
		case global.MongoDB_ColNames.Partners:
			if msg, ok := partnerVerifiedMessage(e.Document); ok {
				d.Dispatch(ctx, msg)
			}
		case global.MongoDB_ColNames.PickupOrders:
			if msg, ok := pickupAssignedMessage(e.Document); ok {
				d.Dispatch(ctx, msg)
			}
		}
	})
}

// partnerVerifiedMessage build message khi hồ sơ đối tác vừa được duyệt
func partnerVerifiedMessage(doc interface{}) (Message, bool) {
	p, ok := asPartner(doc)
	if !ok {
		return Message{}, false
	}
	if p.Status != partnermodels.PartnerStatusApproved && p.Status != partnermodels.PartnerStatusRejected {
		return Message{}, false
	}
	if !isFresh(p.Review.ReviewedAt) {
		return Message{}, false
	}

	subject := "Hồ sơ đối tác CashMitra đã được duyệt"
	body := fmt.Sprintf("Xin chào %s, hồ sơ đối tác của bạn đã được phê duyệt. Bạn có thể bắt đầu nhận đơn thu mua.", p.Name)
	if p.Status == partnermodels.PartnerStatusRejected {
		subject = "Hồ sơ đối tác CashMitra bị từ chối"
		body = fmt.Sprintf("Xin chào %s, hồ sơ đối tác của bạn đã bị từ chối. Lý do: %s", p.Name, p.Review.Note)
	}

	return Message{
		Event:   "partner_verified",
		To:      p.Email,
		Subject: subject,
		Body:    body,
		Meta: map[string]interface{}{
			"partnerId":          p.ID.Hex(),
			"status":             p.Status,
			"verificationStatus": p.VerificationStatus,
			"reviewedBy":         p.Review.ReviewedBy,
		},
	}, true
}

// pickupAssignedMessage build message khi đơn lấy hàng vừa được gán nhân viên
func pickupAssignedMessage(doc interface{}) (Message, bool) {
	o, ok := asPickupOrder(doc)
	if !ok {
		return Message{}, false
	}
	if o.Status != pickupmodels.PickupStatusAssigned || len(o.Timeline) == 0 {
		return Message{}, false
	}
	last := o.Timeline[len(o.Timeline)-1]
	if last.Status != pickupmodels.PickupStatusAssigned || !isFresh(last.At) {
		return Message{}, false
	}

	return Message{
		Event:   "pickup_assigned",
		Subject: fmt.Sprintf("Đơn lấy hàng %s đã được gán", o.OrderCode),
		Body: fmt.Sprintf("Đơn %s được gán cho %s, hẹn ngày %s khung giờ %s.",
			o.OrderCode, o.AssignedAgent.Name, o.Schedule.Date, o.Schedule.Slot),
		Meta: map[string]interface{}{
			"orderId":   o.ID.Hex(),
			"orderCode": o.OrderCode,
			"agentId":   o.AssignedAgent.AgentID,
			"date":      o.Schedule.Date,
			"slot":      o.Schedule.Slot,
		},
	}, true
}

func asPartner(doc interface{}) (partnermodels.Partner, bool) {
	switch v := doc.(type) {
	case partnermodels.Partner:
		return v, true
	case *partnermodels.Partner:
		if v != nil {
			return *v, true
		}
	}
	return partnermodels.Partner{}, false
}

func asPickupOrder(doc interface{}) (pickupmodels.PickupOrder, bool) {
	switch v := doc.(type) {
	case pickupmodels.PickupOrder:
		return v, true
	case *pickupmodels.PickupOrder:
		if v != nil {
			return *v, true
		}
	}
	return pickupmodels.PickupOrder{}, false
}

func isFresh(ts int64) bool {
	if ts <= 0 {
		return false
	}
	return utility.CurrentTimeInMilli()-ts <= freshnessWindow.Milliseconds()
}
