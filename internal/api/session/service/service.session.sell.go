// Package sessionsvc chứa service data access cho domain session
// (phiên bán máy của khách).
package sessionsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "cashmitra/internal/api/base/service"
	sessionmodels "cashmitra/internal/api/session/models"
	"cashmitra/internal/common"
	"cashmitra/internal/global"
)

// TTL mặc định của phiên giữ giá khi client không truyền
// và SESSION_TTL_MINUTES cũng không cấu hình
const DefaultSessionTTL = 24 * time.Hour

// SessionService là service quản lý phiên bán máy: gia hạn,
// chuyển trạng thái và dọn phiên quá hạn theo lô.
type SessionService struct {
	*basesvc.BaseServiceMongoImpl[sessionmodels.SellSession]
}

// NewSessionService tạo mới SessionService
func NewSessionService() (*SessionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SellSessions)
	if !exist {
		return nil, fmt.Errorf("failed to get sell_sessions collection: %v", common.ErrNotFound)
	}

	return &SessionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[sessionmodels.SellSession](collection),
	}, nil
}

// Create tạo phiên mới với hạn giữ giá tính từ bây giờ
func (s *SessionService) Create(ctx context.Context, session sessionmodels.SellSession, ttl time.Duration) (sessionmodels.SellSession, error) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
		if cfg := global.MongoDB_ServerConfig; cfg != nil && cfg.SessionTTLMinutes > 0 {
			ttl = time.Duration(cfg.SessionTTLMinutes) * time.Minute
		}
	}
	session.Status = sessionmodels.SessionStatusActive
	session.ExpiresAt = time.Now().Add(ttl).UnixMilli()
	return s.InsertOne(ctx, session)
}

// Extend gia hạn phiên thêm N phút. Chỉ phiên đang mở (active|extended)
// được gia hạn; hạn mới tính từ max(bây giờ, hạn cũ).
func (s *SessionService) Extend(ctx context.Context, id primitive.ObjectID, minutes int64) (sessionmodels.SellSession, error) {
	var zero sessionmodels.SellSession

	if minutes <= 0 {
		return zero, common.ErrInvalidInput.WithMessage("Số phút gia hạn phải lớn hơn 0")
	}

	session, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if !session.IsOpen() {
		return zero, common.ErrInvalidState.WithMessage("Không thể gia hạn phiên ở trạng thái %q", session.Status)
	}

	base := session.ExpiresAt
	if now := time.Now().UnixMilli(); now > base {
		base = now
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":    sessionmodels.SessionStatusExtended,
			"expiresAt": base + minutes*60_000,
		},
	})
}

// UpdateStatus chuyển trạng thái phiên. completed/expired/abandoned là
// trạng thái kết thúc, không có cạnh đi ra.
func (s *SessionService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (sessionmodels.SellSession, error) {
	var zero sessionmodels.SellSession

	session, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if !session.IsOpen() {
		return zero, common.ErrInvalidState.WithMessage("Phiên đã kết thúc ở trạng thái %q", session.Status)
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
	})
}

// ExpireOverdue chuyển các phiên đang mở đã quá hạn sang expired,
// trả về số phiên đã dọn. Worker dọn phiên gọi định kỳ.
func (s *SessionService) ExpireOverdue(ctx context.Context) (int64, error) {
	filter := bson.M{
		"status": bson.M{"$in": []string{
			sessionmodels.SessionStatusActive,
			sessionmodels.SessionStatusExtended,
		}},
		"expiresAt": bson.M{"$lte": time.Now().UnixMilli()},
	}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": sessionmodels.SessionStatusExpired},
	}
	return s.UpdateMany(ctx, filter, update, nil)
}
