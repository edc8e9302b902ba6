// Package questionsvc chứa service data access cho domain questionnaire
// (bộ câu hỏi đánh giá tình trạng máy).
package questionsvc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "cashmitra/internal/api/base/service"
	questionmodels "cashmitra/internal/api/questionnaire/models"
	"cashmitra/internal/common"
	"cashmitra/internal/global"
)

// QuestionService là service quản lý câu hỏi đánh giá tình trạng máy.
// Giữ invariant: câu hỏi dạng choice luôn có ít nhất một lựa chọn.
type QuestionService struct {
	*basesvc.BaseServiceMongoImpl[questionmodels.Question]
}

// NewQuestionService tạo mới QuestionService
func NewQuestionService() (*QuestionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Questions)
	if !exist {
		return nil, fmt.Errorf("failed to get questions collection: %v", common.ErrNotFound)
	}

	return &QuestionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[questionmodels.Question](collection),
	}, nil
}

// EnsureOptionIDs gán UUID cho các lựa chọn chưa có ID (tạo mới từ form)
func EnsureOptionIDs(options []questionmodels.QuestionOption) []questionmodels.QuestionOption {
	out := make([]questionmodels.QuestionOption, len(options))
	copy(out, options)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}

// ValidateOptionInvariant kiểm tra câu hỏi dạng choice phải còn >= 1 lựa chọn
// sau mọi lần sửa, bất kể trạng thái active hay inactive
func ValidateOptionInvariant(question questionmodels.Question) error {
	if question.IsChoiceKind() && len(question.Options) == 0 {
		return common.ErrLastOption
	}
	return nil
}

// Create tạo câu hỏi mới, sinh UUID cho lựa chọn và kiểm tra invariant
func (s *QuestionService) Create(ctx context.Context, question questionmodels.Question) (questionmodels.Question, error) {
	var zero questionmodels.Question

	question.Options = EnsureOptionIDs(question.Options)
	if question.Status == "" {
		question.Status = questionmodels.QuestionStatusActive
	}
	if err := ValidateOptionInvariant(question); err != nil {
		return zero, err
	}
	return s.InsertOne(ctx, question)
}

// Duplicate nhân bản một câu hỏi: key thêm "-copy", mọi lựa chọn nhận UUID mới
func (s *QuestionService) Duplicate(ctx context.Context, id primitive.ObjectID) (questionmodels.Question, error) {
	var zero questionmodels.Question

	question, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	question.ID = primitive.NewObjectID()
	question.Key = question.Key + "-copy"
	for i := range question.Options {
		question.Options[i].ID = uuid.NewString()
	}
	question.CreatedAt = 0
	question.UpdatedAt = 0

	return s.InsertOne(ctx, question)
}

// UpdateStatus đổi trạng thái câu hỏi. Kích hoạt câu hỏi choice
// không có lựa chọn nào bị từ chối.
func (s *QuestionService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (questionmodels.Question, error) {
	var zero questionmodels.Question

	question, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	question.Status = status
	if err := ValidateOptionInvariant(question); err != nil {
		return zero, err
	}
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
	})
}

// Reorder ghi lại thứ tự bộ câu hỏi theo danh sách ID đã sắp xếp
func (s *QuestionService) Reorder(ctx context.Context, ids []primitive.ObjectID) error {
	for i, id := range ids {
		if _, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
			Set: map[string]interface{}{"order": int64(i)},
		}); err != nil {
			return err
		}
	}
	return nil
}

// AddOption thêm một lựa chọn vào câu hỏi, sinh UUID nếu chưa có
func (s *QuestionService) AddOption(ctx context.Context, id primitive.ObjectID, option questionmodels.QuestionOption) (questionmodels.Question, error) {
	var zero questionmodels.Question

	if option.ID == "" {
		option.ID = uuid.NewString()
	}

	question, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	options := append(append([]questionmodels.QuestionOption{}, question.Options...), option)
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"options": options},
	})
}

// UpdateOption thay nội dung một lựa chọn theo ID ổn định, giữ nguyên ID
func (s *QuestionService) UpdateOption(ctx context.Context, id primitive.ObjectID, optionID string, option questionmodels.QuestionOption) (questionmodels.Question, error) {
	var zero questionmodels.Question

	question, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	options := make([]questionmodels.QuestionOption, len(question.Options))
	copy(options, question.Options)
	found := false
	for i := range options {
		if options[i].ID == optionID {
			option.ID = optionID
			options[i] = option
			found = true
			break
		}
	}
	if !found {
		return zero, common.ErrNotFound.WithMessage("Không tìm thấy lựa chọn %s trong câu hỏi", optionID)
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"options": options},
	})
}

// RemoveOption xóa một lựa chọn theo ID ổn định. Xóa lựa chọn cuối cùng
// của câu hỏi dạng choice bị từ chối.
func (s *QuestionService) RemoveOption(ctx context.Context, id primitive.ObjectID, optionID string) (questionmodels.Question, error) {
	var zero questionmodels.Question

	question, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	options := make([]questionmodels.QuestionOption, 0, len(question.Options))
	found := false
	for _, opt := range question.Options {
		if opt.ID == optionID {
			found = true
			continue
		}
		options = append(options, opt)
	}
	if !found {
		return zero, common.ErrNotFound.WithMessage("Không tìm thấy lựa chọn %s trong câu hỏi", optionID)
	}

	question.Options = options
	if err := ValidateOptionInvariant(question); err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"options": options},
	})
}
