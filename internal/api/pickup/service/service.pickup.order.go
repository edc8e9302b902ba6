// Package pickupsvc chứa service data access cho domain pickup
// (đơn lấy hàng tận nơi).
package pickupsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "cashmitra/internal/api/base/service"
	pickupmodels "cashmitra/internal/api/pickup/models"
	"cashmitra/internal/common"
	"cashmitra/internal/global"
	"cashmitra/internal/utility"
)

// Key và TTL cache cho analytics (aggregation chạy lại tối đa mỗi phút)
const analyticsCacheKey = "pickup_analytics"

// PickupService là service quản lý đơn lấy hàng: gán nhân viên,
// chuyển trạng thái tiến một chiều, đổi lịch và thống kê.
type PickupService struct {
	*basesvc.BaseServiceMongoImpl[pickupmodels.PickupOrder]
	analyticsCache *utility.Cache
}

// NewPickupService tạo mới PickupService
func NewPickupService() (*PickupService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PickupOrders)
	if !exist {
		return nil, fmt.Errorf("failed to get pickup_orders collection: %v", common.ErrNotFound)
	}

	return &PickupService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[pickupmodels.PickupOrder](collection),
		analyticsCache:       utility.NewCache(time.Minute, 5*time.Minute),
	}, nil
}

// Assign gán nhân viên cho đơn chưa lên đường (pending|confirmed|rescheduled),
// kèm chốt lại khung giờ nếu truyền
func (s *PickupService) Assign(ctx context.Context, id primitive.ObjectID, agent pickupmodels.PickupAgent, slot string) (pickupmodels.PickupOrder, error) {
	var zero pickupmodels.PickupOrder

	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	switch order.Status {
	case pickupmodels.PickupStatusPending,
		pickupmodels.PickupStatusConfirmed,
		pickupmodels.PickupStatusRescheduled:
	default:
		return zero, common.ErrInvalidState.WithMessage("Chỉ gán được nhân viên cho đơn chưa lên đường, đơn hiện tại %q", order.Status)
	}

	set := map[string]interface{}{
		"assignedAgent": agent,
		"status":        pickupmodels.PickupStatusAssigned,
	}
	if slot != "" {
		if !pickupmodels.ValidSlot(slot) {
			return zero, common.ErrInvalidTimeSlot.WithMessage("Khung giờ không hợp lệ: %q", slot)
		}
		set["schedule.slot"] = slot
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: set,
		Push: map[string]interface{}{
			"timeline": timelineEntry(pickupmodels.PickupStatusAssigned, "Gán nhân viên "+agent.Name),
		},
	})
}

// UpdateStatus chuyển trạng thái đơn theo chuỗi tiến một chiều
// (cancel được từ mọi trạng thái chưa kết thúc) và ghi mốc timeline
func (s *PickupService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, note string) (pickupmodels.PickupOrder, error) {
	var zero pickupmodels.PickupOrder

	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if !pickupmodels.CanTransitionStatus(order.Status, status) {
		return zero, common.ErrInvalidState.WithMessage("Không thể chuyển đơn từ %q sang %q", order.Status, status)
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
		Push: map[string]interface{}{
			"timeline": timelineEntry(status, note),
		},
	})
}

// Reschedule đổi lịch hẹn, chỉ được phép trước khi đơn lên đường (in_transit).
// Đơn chuyển sang trạng thái rescheduled và quay lại chuỗi khi gán lại nhân viên.
func (s *PickupService) Reschedule(ctx context.Context, id primitive.ObjectID, date, slot string) (pickupmodels.PickupOrder, error) {
	var zero pickupmodels.PickupOrder

	if !pickupmodels.ValidSlot(slot) {
		return zero, common.ErrInvalidTimeSlot.WithMessage("Khung giờ không hợp lệ: %q", slot)
	}

	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if !pickupmodels.CanBeRescheduled(order.Status) {
		return zero, common.ErrInvalidState.WithMessage("Không thể đổi lịch đơn đang ở trạng thái %q", order.Status)
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"schedule": pickupmodels.PickupSchedule{Date: date, Slot: slot},
			"status":   pickupmodels.PickupStatusRescheduled,
		},
		Push: map[string]interface{}{
			"timeline": timelineEntry(pickupmodels.PickupStatusRescheduled, fmt.Sprintf("Đổi lịch sang %s (%s)", date, slot)),
		},
	})
}

// ForDate trả về các đơn theo ngày hẹn, lọc thêm theo khung giờ nếu truyền
func (s *PickupService) ForDate(ctx context.Context, date, slot string) ([]pickupmodels.PickupOrder, error) {
	filter := bson.M{"schedule.date": date}
	if slot != "" {
		if !pickupmodels.ValidSlot(slot) {
			return nil, common.ErrInvalidTimeSlot.WithMessage("Khung giờ không hợp lệ: %q", slot)
		}
		filter["schedule.slot"] = slot
	}
	return s.Find(ctx, filter, nil)
}

// Analytics thống kê đơn lấy hàng: đếm theo trạng thái, theo khung giờ
// và tỷ lệ hoàn thành. Kết quả cache một phút.
func (s *PickupService) Analytics(ctx context.Context) (map[string]interface{}, error) {
	if cached, ok := s.analyticsCache.Get(analyticsCacheKey); ok {
		return cached.(map[string]interface{}), nil
	}

	byStatus, err := s.countBy(ctx, "$status")
	if err != nil {
		return nil, err
	}
	bySlot, err := s.countBy(ctx, "$schedule.slot")
	if err != nil {
		return nil, err
	}

	var total, completed int64
	for status, count := range byStatus {
		total += count
		if status == pickupmodels.PickupStatusCompleted {
			completed = count
		}
	}
	completionRate := float64(0)
	if total > 0 {
		completionRate = float64(completed) / float64(total)
	}

	result := map[string]interface{}{
		"total":          total,
		"byStatus":       byStatus,
		"bySlot":         bySlot,
		"completionRate": completionRate,
	}
	s.analyticsCache.Set(analyticsCacheKey, result)
	return result, nil
}

// countBy nhóm và đếm document theo một field qua aggregation
func (s *PickupService) countBy(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": field, "count": bson.M{"$sum": 1}}},
	}
	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	out := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		out[row.ID] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return out, nil
}

// timelineEntry tạo một mốc timeline mới
func timelineEntry(status, note string) pickupmodels.PickupTimelineEntry {
	return pickupmodels.PickupTimelineEntry{
		ID:     uuid.NewString(),
		Status: status,
		At:     time.Now().UnixMilli(),
		Note:   note,
	}
}
