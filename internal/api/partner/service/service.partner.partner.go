// Package partnersvc chứa service data access cho domain partner
// (hồ sơ đối tác thu mua, duyệt KYC, ví thanh toán).
package partnersvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "cashmitra/internal/api/base/service"
	"cashmitra/internal/api/events"
	partnermodels "cashmitra/internal/api/partner/models"
	"cashmitra/internal/common"
	"cashmitra/internal/global"
)

// PartnerService là service quản lý hồ sơ đối tác: duyệt KYC theo
// state machine, khóa/mở tài khoản và giao dịch ví.
type PartnerService struct {
	*basesvc.BaseServiceMongoImpl[partnermodels.Partner]
}

// NewPartnerService tạo mới PartnerService
func NewPartnerService() (*PartnerService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Partners)
	if !exist {
		return nil, fmt.Errorf("failed to get partners collection: %v", common.ErrNotFound)
	}

	return &PartnerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[partnermodels.Partner](collection),
	}, nil
}

// Verify ghi kết luận duyệt hồ sơ KYC. Chỉ các cạnh của state machine
// được phép; từ chối bắt buộc có ghi chú.
func (s *PartnerService) Verify(ctx context.Context, id primitive.ObjectID, verdict, note, reviewedBy string) (partnermodels.Partner, error) {
	var zero partnermodels.Partner

	if verdict == partnermodels.PartnerStatusRejected && strings.TrimSpace(note) == "" {
		return zero, common.ErrRequiredField.WithMessage("Từ chối hồ sơ phải kèm ghi chú lý do")
	}

	partner, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if !partnermodels.CanTransition(partner.Status, verdict) {
		return zero, common.ErrInvalidState.WithMessage("Không thể chuyển hồ sơ từ %q sang %q", partner.Status, verdict)
	}

	verification := partnermodels.VerificationVerified
	if verdict == partnermodels.PartnerStatusRejected {
		verification = partnermodels.VerificationRejected
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":             verdict,
			"verificationStatus": verification,
			"review": partnermodels.PartnerReview{
				ReviewedBy: reviewedBy,
				ReviewedAt: time.Now().UnixMilli(),
				Note:       note,
			},
		},
	})
}

// ToggleUserStatus đảo trạng thái tài khoản đăng nhập của đối tác
func (s *PartnerService) ToggleUserStatus(ctx context.Context, id primitive.ObjectID) (partnermodels.Partner, error) {
	var zero partnermodels.Partner

	partner, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"userActive": !partner.UserActive},
	})
}

// CreditWallet cộng tiền vào ví và ghi một dòng lịch sử giao dịch
func (s *PartnerService) CreditWallet(ctx context.Context, id primitive.ObjectID, amount float64, reason string) (partnermodels.Partner, error) {
	return s.applyWalletEntry(ctx, bson.M{"_id": id}, id, "credit", amount, reason)
}

// DebitWallet trừ tiền từ ví, atomic theo điều kiện số dư.
// Số dư không đủ trả về lỗi BIZ_INSUFFICIENT_FUNDS.
func (s *PartnerService) DebitWallet(ctx context.Context, id primitive.ObjectID, amount float64, reason string) (partnermodels.Partner, error) {
	var zero partnermodels.Partner

	filter := bson.M{"_id": id, "wallet.balance": bson.M{"$gte": amount}}
	partner, err := s.applyWalletEntry(ctx, filter, id, "debit", -amount, reason)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Phân biệt "không tồn tại" với "không đủ số dư"
			exists, existsErr := s.DocumentExists(ctx, bson.M{"_id": id})
			if existsErr != nil {
				return zero, existsErr
			}
			if exists {
				return zero, common.ErrInsufficientFunds
			}
		}
		return zero, err
	}
	return partner, nil
}

// applyWalletEntry ghi giao dịch ví bằng FindOneAndUpdate trực tiếp trên
// collection ($inc không thuộc UpdateData của base service)
func (s *PartnerService) applyWalletEntry(ctx context.Context, filter bson.M, id primitive.ObjectID, entryType string, delta float64, reason string) (partnermodels.Partner, error) {
	var zero partnermodels.Partner

	amount := delta
	if amount < 0 {
		amount = -amount
	}
	entry := partnermodels.WalletEntry{
		ID:     uuid.NewString(),
		Type:   entryType,
		Amount: amount,
		Reason: reason,
		At:     time.Now().UnixMilli(),
	}

	update := bson.M{
		"$inc":  bson.M{"wallet.balance": delta},
		"$push": bson.M{"walletHistory": entry},
		"$set":  bson.M{"updatedAt": time.Now().UnixMilli()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var partner partnermodels.Partner
	err := s.Collection().FindOneAndUpdate(ctx, filter, update, opts).Decode(&partner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.Collection().Name(),
		Operation:      events.OpUpdate,
		Document:       partner,
	})
	return partner, nil
}
