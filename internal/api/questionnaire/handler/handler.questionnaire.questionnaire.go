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

// QuestionnaireHandler xử lý các request liên quan đến bộ câu hỏi đánh giá
type QuestionnaireHandler struct {
	*basehdl.BaseHandler[questionmodels.Questionnaire, questiondto.QuestionnaireCreateInput, questiondto.QuestionnaireUpdateInput]
	QuestionnaireService *questionsvc.QuestionnaireService
}

// NewQuestionnaireHandler tạo mới QuestionnaireHandler
func NewQuestionnaireHandler() (*QuestionnaireHandler, error) {
	service, err := questionsvc.NewQuestionnaireService()
	if err != nil {
		return nil, fmt.Errorf("failed to create questionnaire service: %v", err)
	}

	hdl := &QuestionnaireHandler{QuestionnaireService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[questionmodels.Questionnaire, questiondto.QuestionnaireCreateInput, questiondto.QuestionnaireUpdateInput](service)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
		},
		MaxFields: 10,
	})
	return hdl, nil
}

// InsertOne tạo bộ câu hỏi mới qua service.Create để dedupe danh sách câu hỏi
// và giữ mỗi category một bộ mặc định (override handler CRUD mặc định)
func (h *QuestionnaireHandler) InsertOne(c fiber.Ctx) error {
	input := new(questiondto.QuestionnaireCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.QuestionnaireService.Create(context.Background(), questionnaireFromCreateInput(input))
	h.HandleResponse(c, data, err)
	return nil
}

// UpdateById cập nhật nội dung bộ câu hỏi qua service.UpdateContent
// để tăng số phiên bản (override handler CRUD mặc định)
func (h *QuestionnaireHandler) UpdateById(c fiber.Ctx) error {
	id, err := h.questionnaireID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(questiondto.QuestionnaireUpdateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	questionnaire := questionmodels.Questionnaire{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		IsDefault:   input.IsDefault,
		Metadata:    metadataFromInput(input.Metadata),
		QuestionIDs: input.QuestionIDs,
	}
	data, err := h.QuestionnaireService.UpdateContent(context.Background(), id, questionnaire)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleDuplicate nhân bản một bộ câu hỏi thành bản mới cùng danh sách câu hỏi
func (h *QuestionnaireHandler) HandleDuplicate(c fiber.Ctx) error {
	id, err := h.questionnaireID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	data, err := h.QuestionnaireService.Duplicate(context.Background(), id)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleUpdateStatus bật/tắt bộ câu hỏi
func (h *QuestionnaireHandler) HandleUpdateStatus(c fiber.Ctx) error {
	id, err := h.questionnaireID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(questiondto.QuestionnaireStatusInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.QuestionnaireService.UpdateStatus(context.Background(), id, *input.IsActive)
	h.HandleResponse(c, data, err)
	return nil
}

// questionnaireID đọc và parse param :id của route
func (h *QuestionnaireHandler) questionnaireID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidInput.WithMessage("ID bộ câu hỏi không hợp lệ")
	}
	return id, nil
}

// questionnaireFromCreateInput dựng model từ input tạo mới
func questionnaireFromCreateInput(input *questiondto.QuestionnaireCreateInput) questionmodels.Questionnaire {
	return questionmodels.Questionnaire{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		IsActive:    true,
		IsDefault:   input.IsDefault,
		Metadata:    metadataFromInput(input.Metadata),
		QuestionIDs: input.QuestionIDs,
	}
}

// metadataFromInput dựng metadata từ input
func metadataFromInput(input questiondto.QuestionnaireMetadataInput) questionmodels.QuestionnaireMetadata {
	return questionmodels.QuestionnaireMetadata{
		EstimatedTime: input.EstimatedTime,
		Difficulty:    input.Difficulty,
		Tags:          input.Tags,
		Instructions:  input.Instructions,
	}
}
