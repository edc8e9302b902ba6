// Package pickuphdl chứa HTTP handler cho domain pickup.
package pickuphdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "cashmitra/internal/api/base/handler"
	pickupdto "cashmitra/internal/api/pickup/dto"
	pickupmodels "cashmitra/internal/api/pickup/models"
	pickupsvc "cashmitra/internal/api/pickup/service"
	"cashmitra/internal/common"
)

// PickupHandler xử lý các request liên quan đến đơn lấy hàng
type PickupHandler struct {
	*basehdl.BaseHandler[pickupmodels.PickupOrder, pickupdto.PickupCreateInput, pickupdto.PickupUpdateInput]
	PickupService *pickupsvc.PickupService
}

// NewPickupHandler tạo mới PickupHandler
func NewPickupHandler() (*PickupHandler, error) {
	service, err := pickupsvc.NewPickupService()
	if err != nil {
		return nil, fmt.Errorf("failed to create pickup service: %v", err)
	}

	hdl := &PickupHandler{PickupService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[pickupmodels.PickupOrder, pickupdto.PickupCreateInput, pickupdto.PickupUpdateInput](service)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
		},
		MaxFields: 10,
	})
	return hdl, nil
}

// InsertOne tạo đơn lấy hàng từ DTO phẳng, dựng các khối lồng nhau
// (override handler CRUD mặc định vì cấu trúc DTO khác cấu trúc model)
func (h *PickupHandler) InsertOne(c fiber.Ctx) error {
	input := new(pickupdto.PickupCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	priority := input.Priority
	if priority == "" {
		priority = pickupmodels.PickupPriorityNormal
	}
	order := pickupmodels.PickupOrder{
		OrderCode:   input.OrderCode,
		OrderType:   input.OrderType,
		ProductID:   input.ProductID,
		QuotedPrice: input.QuotedPrice,
		Customer: pickupmodels.PickupCustomer{
			Name:    input.CustomerName,
			Phone:   input.Phone,
			Address: input.Address,
			Pincode: input.Pincode,
		},
		Schedule: pickupmodels.PickupSchedule{Date: input.Date, Slot: input.Slot},
		Priority: priority,
	}

	data, err := h.PickupService.InsertOne(context.Background(), order)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleAssign gán nhân viên cho đơn đang chờ
func (h *PickupHandler) HandleAssign(c fiber.Ctx) error {
	id, err := h.pickupID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(pickupdto.PickupAssignInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	agent := pickupmodels.PickupAgent{
		AgentID: input.AgentID,
		Name:    input.AgentName,
		Phone:   input.AgentPhone,
	}
	data, err := h.PickupService.Assign(context.Background(), id, agent, input.Slot)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleUpdateStatus chuyển trạng thái đơn
func (h *PickupHandler) HandleUpdateStatus(c fiber.Ctx) error {
	id, err := h.pickupID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(pickupdto.PickupStatusInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.PickupService.UpdateStatus(context.Background(), id, input.Status, input.Note)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleReschedule đổi lịch hẹn lấy hàng
func (h *PickupHandler) HandleReschedule(c fiber.Ctx) error {
	id, err := h.pickupID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(pickupdto.PickupRescheduleInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.PickupService.Reschedule(context.Background(), id, input.Date, input.Slot)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleForDate trả về các đơn theo ngày hẹn (query: date bắt buộc, slot tùy chọn)
func (h *PickupHandler) HandleForDate(c fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		h.HandleResponse(c, nil, common.ErrRequiredField.WithMessage("Thiếu tham số date"))
		return nil
	}
	data, err := h.PickupService.ForDate(context.Background(), date, c.Query("slot"))
	h.HandleResponse(c, data, err)
	return nil
}

// HandleAnalytics thống kê đơn theo trạng thái, khung giờ và tỷ lệ hoàn thành
func (h *PickupHandler) HandleAnalytics(c fiber.Ctx) error {
	data, err := h.PickupService.Analytics(context.Background())
	h.HandleResponse(c, data, err)
	return nil
}

// HandleSlots trả về bảng khung giờ (mã + nhãn hiển thị)
func (h *PickupHandler) HandleSlots(c fiber.Ctx) error {
	slots := make([]map[string]string, 0, 4)
	for _, slot := range pickupmodels.AllSlots() {
		label, err := pickupmodels.SlotLabel(slot)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		slots = append(slots, map[string]string{"slot": slot, "label": label})
	}
	h.HandleResponse(c, slots, nil)
	return nil
}

// pickupID đọc và parse param :id của route
func (h *PickupHandler) pickupID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidInput.WithMessage("ID đơn lấy hàng không hợp lệ")
	}
	return id, nil
}
