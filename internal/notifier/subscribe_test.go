// Package notifier - Test lọc sự kiện: chỉ lần duyệt/gán vừa xảy ra mới sinh thông báo.
package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	partnermodels "cashmitra/internal/api/partner/models"
	pickupmodels "cashmitra/internal/api/pickup/models"
	"cashmitra/internal/utility"
)

func freshPartner(status string) partnermodels.Partner {
	return partnermodels.Partner{
		Name:   "Ravi Kumar",
		Email:  "ravi@example.com",
		Status: status,
		Review: partnermodels.PartnerReview{
			ReviewedBy: "admin-1",
			ReviewedAt: utility.CurrentTimeInMilli(),
			Note:       "Thiếu ảnh mặt sau Aadhaar",
		},
	}
}

func TestPartnerVerifiedMessage_Approved(t *testing.T) {
	msg, ok := partnerVerifiedMessage(freshPartner(partnermodels.PartnerStatusApproved))
	require.True(t, ok, "hồ sơ vừa được duyệt phải sinh thông báo")

	assert.Equal(t, "partner_verified", msg.Event)
	assert.Equal(t, "ravi@example.com", msg.To)
	assert.Equal(t, partnermodels.PartnerStatusApproved, msg.Meta["status"])
}

func TestPartnerVerifiedMessage_RejectedCoLyDo(t *testing.T) {
	msg, ok := partnerVerifiedMessage(freshPartner(partnermodels.PartnerStatusRejected))
	require.True(t, ok)
	assert.Contains(t, msg.Body, "Thiếu ảnh mặt sau Aadhaar")
}

func TestPartnerVerifiedMessage_BoQuaUpdateThuongVaCu(t *testing.T) {
	// Update khác trên hồ sơ đang pending: không thông báo
	_, ok := partnerVerifiedMessage(freshPartner(partnermodels.PartnerStatusPending))
	assert.False(t, ok, "hồ sơ pending không được sinh thông báo")

	// Hồ sơ đã duyệt từ lâu, update field khác: không thông báo lại
	stale := freshPartner(partnermodels.PartnerStatusApproved)
	stale.Review.ReviewedAt = utility.CurrentTimeInMilli() - time.Hour.Milliseconds()
	_, ok = partnerVerifiedMessage(stale)
	assert.False(t, ok, "lần duyệt cũ không được thông báo lại")

	// Document không phải Partner: bỏ qua
	_, ok = partnerVerifiedMessage("not-a-partner")
	assert.False(t, ok)
}

func TestPickupAssignedMessage(t *testing.T) {
	order := pickupmodels.PickupOrder{
		OrderCode: "PU-2025-0042",
		Status:    pickupmodels.PickupStatusAssigned,
		Schedule:  pickupmodels.PickupSchedule{Date: "2025-08-30", Slot: pickupmodels.SlotMorning},
		AssignedAgent: pickupmodels.PickupAgent{
			AgentID: "agent-7",
			Name:    "Priya Sharma",
		},
		Timeline: []pickupmodels.PickupTimelineEntry{
			{Status: pickupmodels.PickupStatusPending, At: utility.CurrentTimeInMilli() - 60_000},
			{Status: pickupmodels.PickupStatusAssigned, At: utility.CurrentTimeInMilli()},
		},
	}

	msg, ok := pickupAssignedMessage(order)
	require.True(t, ok, "đơn vừa được gán phải sinh thông báo")
	assert.Equal(t, "pickup_assigned", msg.Event)
	assert.Equal(t, "PU-2025-0042", msg.Meta["orderCode"])
	assert.Contains(t, msg.Body, "Priya Sharma")

	// Đơn đã sang in_transit: mốc assigned không còn là mốc cuối
	order.Status = pickupmodels.PickupStatusInTransit
	_, ok = pickupAssignedMessage(order)
	assert.False(t, ok)

	// Timeline rỗng: không đoán được mốc gán
	order.Status = pickupmodels.PickupStatusAssigned
	order.Timeline = nil
	_, ok = pickupAssignedMessage(order)
	assert.False(t, ok)
}

// channel giả ghi lại message nhận được
type recordingChannel struct {
	mu       sync.Mutex
	received []Message
}

func (r *recordingChannel) Name() string { return "recording" }

func (r *recordingChannel) Send(ctx context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.received = append(r.received, msg)
	return nil
}

func TestDispatcher_BoQuaChannelNil(t *testing.T) {
	rec := &recordingChannel{}
	d := NewDispatcher(nil, rec, nil)

	d.Dispatch(context.Background(), Message{Event: "partner_verified"})

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.received, 1)
	assert.Equal(t, "partner_verified", rec.received[0].Event)
}
