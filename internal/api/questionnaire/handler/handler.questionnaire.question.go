// Package questionhdl chứa HTTP handler cho domain questionnaire.
package questionhdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "cashmitra/internal/api/base/handler"
	questiondto "cashmitra/internal/api/questionnaire/dto"
	questionmodels "cashmitra/internal/api/questionnaire/models"
	questionsvc "cashmitra/internal/api/questionnaire/service"
	"cashmitra/internal/common"
)

// QuestionHandler xử lý các request liên quan đến câu hỏi đánh giá tình trạng máy
type QuestionHandler struct {
	*basehdl.BaseHandler[questionmodels.Question, questiondto.QuestionCreateInput, questiondto.QuestionUpdateInput]
	QuestionService *questionsvc.QuestionService
}

// NewQuestionHandler tạo mới QuestionHandler
func NewQuestionHandler() (*QuestionHandler, error) {
	service, err := questionsvc.NewQuestionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create question service: %v", err)
	}

	hdl := &QuestionHandler{QuestionService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[questionmodels.Question, questiondto.QuestionCreateInput, questiondto.QuestionUpdateInput](service)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
		},
		MaxFields: 10,
	})
	return hdl, nil
}

// InsertOne tạo câu hỏi mới qua service.Create để sinh UUID lựa chọn
// và kiểm tra invariant (override handler CRUD mặc định).
func (h *QuestionHandler) InsertOne(c fiber.Ctx) error {
	input := new(questiondto.QuestionCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	question := questionmodels.Question{
		Key:         input.Key,
		Title:       input.Title,
		Description: input.Description,
		Kind:        input.Kind,
		Required:    input.Required,
		Order:       input.Order,
		Options:     optionsFromInput(input.Options),
	}

	data, err := h.QuestionService.Create(context.Background(), question)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleDuplicate nhân bản một câu hỏi với key "-copy" và lựa chọn mang ID mới
func (h *QuestionHandler) HandleDuplicate(c fiber.Ctx) error {
	id, err := h.questionID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	data, err := h.QuestionService.Duplicate(context.Background(), id)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleUpdateStatus đổi trạng thái câu hỏi
func (h *QuestionHandler) HandleUpdateStatus(c fiber.Ctx) error {
	id, err := h.questionID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(questiondto.QuestionStatusInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.QuestionService.UpdateStatus(context.Background(), id, input.Status)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleReorder sắp xếp lại bộ câu hỏi theo danh sách ID
func (h *QuestionHandler) HandleReorder(c fiber.Ctx) error {
	input := new(questiondto.QuestionReorderInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(input.IDs))
	for _, hex := range input.IDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidInput.WithMessage("ID không hợp lệ: %s", hex))
			return nil
		}
		ids = append(ids, id)
	}

	err := h.QuestionService.Reorder(context.Background(), ids)
	h.HandleResponse(c, map[string]interface{}{"reordered": len(ids)}, err)
	return nil
}

// HandleAddOption thêm một lựa chọn vào câu hỏi
func (h *QuestionHandler) HandleAddOption(c fiber.Ctx) error {
	id, err := h.questionID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(questiondto.QuestionOptionInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.QuestionService.AddOption(context.Background(), id, optionFromInput(*input))
	h.HandleResponse(c, data, err)
	return nil
}

// HandleUpdateOption thay nội dung một lựa chọn theo ID ổn định
func (h *QuestionHandler) HandleUpdateOption(c fiber.Ctx) error {
	id, err := h.questionID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	optionID := c.Params("optionId")
	if optionID == "" {
		h.HandleResponse(c, nil, common.ErrInvalidInput.WithMessage("Thiếu ID lựa chọn"))
		return nil
	}

	input := new(questiondto.QuestionOptionInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.QuestionService.UpdateOption(context.Background(), id, optionID, optionFromInput(*input))
	h.HandleResponse(c, data, err)
	return nil
}

// HandleRemoveOption xóa một lựa chọn theo ID ổn định
func (h *QuestionHandler) HandleRemoveOption(c fiber.Ctx) error {
	id, err := h.questionID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	optionID := c.Params("optionId")
	if optionID == "" {
		h.HandleResponse(c, nil, common.ErrInvalidInput.WithMessage("Thiếu ID lựa chọn"))
		return nil
	}

	data, err := h.QuestionService.RemoveOption(context.Background(), id, optionID)
	h.HandleResponse(c, data, err)
	return nil
}

// questionID đọc và parse param :id của route
func (h *QuestionHandler) questionID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidInput.WithMessage("ID câu hỏi không hợp lệ")
	}
	return id, nil
}

// optionFromInput chuyển DTO lựa chọn sang model
func optionFromInput(input questiondto.QuestionOptionInput) questionmodels.QuestionOption {
	return questionmodels.QuestionOption{
		ID:          input.ID,
		Key:         input.Key,
		Label:       input.Label,
		Description: input.Description,
		Type:        input.Type,
		PriceImpact: input.PriceImpact,
		SortOrder:   input.SortOrder,
	}
}

// optionsFromInput chuyển danh sách DTO lựa chọn sang model
func optionsFromInput(inputs []questiondto.QuestionOptionInput) []questionmodels.QuestionOption {
	options := make([]questionmodels.QuestionOption, 0, len(inputs))
	for _, input := range inputs {
		options = append(options, optionFromInput(input))
	}
	return options
}
