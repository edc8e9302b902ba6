package questionsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "cashmitra/internal/api/base/service"
	questionmodels "cashmitra/internal/api/questionnaire/models"
	"cashmitra/internal/common"
	"cashmitra/internal/global"
)

// QuestionnaireService là service quản lý bộ câu hỏi đánh giá: nhóm các
// câu hỏi theo thứ tự cho một category thiết bị, mỗi category một bộ mặc định.
type QuestionnaireService struct {
	*basesvc.BaseServiceMongoImpl[questionmodels.Questionnaire]
}

// NewQuestionnaireService tạo mới QuestionnaireService
func NewQuestionnaireService() (*QuestionnaireService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Questionnaires)
	if !exist {
		return nil, fmt.Errorf("failed to get condition_questionnaires collection: %v", common.ErrNotFound)
	}

	return &QuestionnaireService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[questionmodels.Questionnaire](collection),
	}, nil
}

// DedupeQuestionIDs loại ID trùng trong danh sách, giữ lần xuất hiện đầu
// (thứ tự hiển thị là thứ tự trong danh sách nên không được xáo trộn)
func DedupeQuestionIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// CopyForDuplicate trả về bản sao của bộ câu hỏi để lưu thành bản ghi mới:
// tên thêm " (Copy)", không giữ cờ mặc định, phiên bản về 1. Danh sách
// QuestionIDs giữ nguyên — bản sao tham chiếu cùng các câu hỏi.
func CopyForDuplicate(questionnaire questionmodels.Questionnaire) questionmodels.Questionnaire {
	copied := questionnaire
	copied.ID = primitive.NewObjectID()
	copied.Title = questionnaire.Title + " (Copy)"
	copied.IsDefault = false
	copied.Version = 1
	copied.QuestionIDs = append([]string{}, questionnaire.QuestionIDs...)
	copied.CreatedAt = 0
	copied.UpdatedAt = 0
	return copied
}

// Create tạo bộ câu hỏi mới. Bộ được đánh dấu mặc định sẽ gỡ cờ mặc định
// của các bộ khác cùng category.
func (s *QuestionnaireService) Create(ctx context.Context, questionnaire questionmodels.Questionnaire) (questionmodels.Questionnaire, error) {
	var zero questionmodels.Questionnaire

	questionnaire.QuestionIDs = DedupeQuestionIDs(questionnaire.QuestionIDs)
	if questionnaire.Version <= 0 {
		questionnaire.Version = 1
	}

	if questionnaire.IsDefault {
		if err := s.clearDefault(ctx, questionnaire.Category); err != nil {
			return zero, err
		}
	}
	return s.InsertOne(ctx, questionnaire)
}

// UpdateContent cập nhật nội dung bộ câu hỏi và tăng số phiên bản
func (s *QuestionnaireService) UpdateContent(ctx context.Context, id primitive.ObjectID, questionnaire questionmodels.Questionnaire) (questionmodels.Questionnaire, error) {
	var zero questionmodels.Questionnaire

	existing, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	if questionnaire.IsDefault && !existing.IsDefault {
		category := questionnaire.Category
		if category == "" {
			category = existing.Category
		}
		if err := s.clearDefault(ctx, category); err != nil {
			return zero, err
		}
	}

	set := map[string]interface{}{
		"isDefault":   questionnaire.IsDefault,
		"metadata":    questionnaire.Metadata,
		"questionIds": DedupeQuestionIDs(questionnaire.QuestionIDs),
		"version":     existing.Version + 1,
	}
	if questionnaire.Title != "" {
		set["title"] = questionnaire.Title
	}
	if questionnaire.Description != "" {
		set["description"] = questionnaire.Description
	}
	if questionnaire.Category != "" {
		set["category"] = questionnaire.Category
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// UpdateStatus bật/tắt bộ câu hỏi
func (s *QuestionnaireService) UpdateStatus(ctx context.Context, id primitive.ObjectID, isActive bool) (questionmodels.Questionnaire, error) {
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"isActive": isActive},
	})
}

// Duplicate nhân bản một bộ câu hỏi thành bản nháp mới cùng danh sách câu hỏi
func (s *QuestionnaireService) Duplicate(ctx context.Context, id primitive.ObjectID) (questionmodels.Questionnaire, error) {
	var zero questionmodels.Questionnaire

	questionnaire, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.InsertOne(ctx, CopyForDuplicate(questionnaire))
}

// clearDefault gỡ cờ mặc định của mọi bộ câu hỏi trong category
func (s *QuestionnaireService) clearDefault(ctx context.Context, category string) error {
	_, err := s.UpdateMany(ctx, bson.M{"category": category, "isDefault": true}, &basesvc.UpdateData{
		Set: map[string]interface{}{"isDefault": false},
	}, nil)
	return err
}
