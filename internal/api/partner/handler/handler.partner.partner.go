// Package partnerhdl chứa HTTP handler cho domain partner.
package partnerhdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "cashmitra/internal/api/base/handler"
	partnerdto "cashmitra/internal/api/partner/dto"
	partnermodels "cashmitra/internal/api/partner/models"
	partnersvc "cashmitra/internal/api/partner/service"
	"cashmitra/internal/common"
	"cashmitra/internal/logger"
)

// PartnerHandler xử lý các request liên quan đến hồ sơ đối tác
type PartnerHandler struct {
	*basehdl.BaseHandler[partnermodels.Partner, partnerdto.PartnerCreateInput, partnerdto.PartnerUpdateInput]
	PartnerService *partnersvc.PartnerService
}

// NewPartnerHandler tạo mới PartnerHandler
func NewPartnerHandler() (*PartnerHandler, error) {
	service, err := partnersvc.NewPartnerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create partner service: %v", err)
	}

	hdl := &PartnerHandler{PartnerService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[partnermodels.Partner, partnerdto.PartnerCreateInput, partnerdto.PartnerUpdateInput](service)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{"kyc.panNumber", "kyc.aadhaarNumber"},
		AllowedOperators: []string{
			"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
		},
		MaxFields: 10,
	})
	return hdl, nil
}

// HandleVerify ghi kết luận duyệt hồ sơ KYC (approved/rejected)
func (h *PartnerHandler) HandleVerify(c fiber.Ctx) error {
	id, err := h.partnerID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(partnerdto.PartnerVerifyInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	reviewedBy, _ := c.Locals("user_id").(string)
	data, err := h.PartnerService.Verify(context.Background(), id, input.Verdict, input.Note, reviewedBy)
	if err == nil {
		logger.LogAdminAction(c, "partner_verify", "partner", id.Hex(), map[string]interface{}{
			"verdict": input.Verdict,
		})
	}
	h.HandleResponse(c, data, err)
	return nil
}

// HandleToggleUserStatus khóa/mở tài khoản đăng nhập của đối tác
func (h *PartnerHandler) HandleToggleUserStatus(c fiber.Ctx) error {
	id, err := h.partnerID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	data, err := h.PartnerService.ToggleUserStatus(context.Background(), id)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleCreditWallet cộng tiền vào ví đối tác
func (h *PartnerHandler) HandleCreditWallet(c fiber.Ctx) error {
	h.handleWallet(c, "wallet_credit", h.PartnerService.CreditWallet)
	return nil
}

// HandleDebitWallet trừ tiền từ ví đối tác
func (h *PartnerHandler) HandleDebitWallet(c fiber.Ctx) error {
	h.handleWallet(c, "wallet_debit", h.PartnerService.DebitWallet)
	return nil
}

// handleWallet dùng chung cho credit và debit
func (h *PartnerHandler) handleWallet(c fiber.Ctx, action string, op func(context.Context, primitive.ObjectID, float64, string) (partnermodels.Partner, error)) {
	id, err := h.partnerID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return
	}

	input := new(partnerdto.PartnerWalletInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return
	}

	data, err := op(context.Background(), id, input.Amount, input.Reason)
	if err == nil {
		logger.LogAdminAction(c, action, "partner", id.Hex(), map[string]interface{}{
			"amount": input.Amount,
			"reason": input.Reason,
		})
	}
	h.HandleResponse(c, data, err)
}

// partnerID đọc và parse param :id của route
func (h *PartnerHandler) partnerID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidInput.WithMessage("ID đối tác không hợp lệ")
	}
	return id, nil
}
