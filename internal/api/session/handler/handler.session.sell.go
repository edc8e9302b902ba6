// Package sessionhdl chứa HTTP handler cho domain session.
package sessionhdl

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "cashmitra/internal/api/base/handler"
	sessiondto "cashmitra/internal/api/session/dto"
	sessionmodels "cashmitra/internal/api/session/models"
	sessionsvc "cashmitra/internal/api/session/service"
	"cashmitra/internal/common"
)

// SessionHandler xử lý các request liên quan đến phiên bán máy
type SessionHandler struct {
	*basehdl.BaseHandler[sessionmodels.SellSession, sessiondto.SessionCreateInput, sessiondto.SessionUpdateInput]
	SessionService *sessionsvc.SessionService
}

// NewSessionHandler tạo mới SessionHandler
func NewSessionHandler() (*SessionHandler, error) {
	service, err := sessionsvc.NewSessionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %v", err)
	}

	hdl := &SessionHandler{SessionService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[sessionmodels.SellSession, sessiondto.SessionCreateInput, sessiondto.SessionUpdateInput](service)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
		},
		MaxFields: 10,
	})
	return hdl, nil
}

// InsertOne tạo phiên mới qua service.Create để tính hạn giữ giá
// (override handler CRUD mặc định)
func (h *SessionHandler) InsertOne(c fiber.Ctx) error {
	input := new(sessiondto.SessionCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	session := sessionmodels.SellSession{
		SessionKey:  input.SessionKey,
		CustomerID:  input.CustomerID,
		ProductID:   input.ProductID,
		Selections:  input.Selections,
		QuotedPrice: input.QuotedPrice,
	}

	data, err := h.SessionService.Create(context.Background(), session, time.Duration(input.TTLMinutes)*time.Minute)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleExtend gia hạn phiên thêm N phút
func (h *SessionHandler) HandleExtend(c fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(sessiondto.SessionExtendInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.SessionService.Extend(context.Background(), id, input.Minutes)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleUpdateStatus chuyển trạng thái phiên
func (h *SessionHandler) HandleUpdateStatus(c fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(sessiondto.SessionStatusInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.SessionService.UpdateStatus(context.Background(), id, input.Status)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleCleanExpired dọn ngay các phiên quá hạn (ngoài chu kỳ worker)
func (h *SessionHandler) HandleCleanExpired(c fiber.Ctx) error {
	count, err := h.SessionService.ExpireOverdue(context.Background())
	h.HandleResponse(c, map[string]interface{}{"expired": count}, err)
	return nil
}

// sessionID đọc và parse param :id của route
func (h *SessionHandler) sessionID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidInput.WithMessage("ID phiên không hợp lệ")
	}
	return id, nil
}
