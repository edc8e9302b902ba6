package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	catalogmodels "cashmitra/internal/api/catalog/models"
	catalogsvc "cashmitra/internal/api/catalog/service"
	questionmodels "cashmitra/internal/api/questionnaire/models"
	questionsvc "cashmitra/internal/api/questionnaire/service"
	"cashmitra/internal/global"
	"cashmitra/internal/logger"
)

// InitDefaultData seed dữ liệu mặc định khi chạy ở chế độ INITMODE:
// danh mục sản phẩm cơ bản và bộ câu hỏi đánh giá tình trạng máy khởi đầu.
// Seed là idempotent: bản ghi đã tồn tại (theo slug/key) được bỏ qua.
func InitDefaultData() {
	if !global.MongoDB_ServerConfig.InitMode {
		return
	}

	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	seedCategories()
	seedQuestions()
	seedQuestionnaire()

	log.Info("✅ [INIT] InitDefaultData completed")
}

// seedCategories tạo các danh mục mặc định nếu chưa có
func seedCategories() {
	log := logger.GetAppLogger()
	ctx := context.Background()

	service, err := catalogsvc.NewCategoryService()
	if err != nil {
		log.WithError(err).Error("❌ [INIT] Failed to create category service")
		return
	}

	categories := []catalogmodels.Category{
		{Name: "Điện thoại", Slug: "smartphones", Icon: "smartphone", IsActive: true, SortOrder: 1},
		{Name: "Laptop", Slug: "laptops", Icon: "laptop", IsActive: true, SortOrder: 2},
		{Name: "Máy tính bảng", Slug: "tablets", Icon: "tablet", IsActive: true, SortOrder: 3},
		{Name: "Đồng hồ thông minh", Slug: "smartwatches", Icon: "watch", IsActive: true, SortOrder: 4},
	}

	for _, category := range categories {
		exists, err := service.DocumentExists(ctx, bson.M{"slug": category.Slug})
		if err != nil {
			log.WithError(err).Errorf("❌ [INIT] Failed to check category %s", category.Slug)
			continue
		}
		if exists {
			continue
		}
		if _, err := service.InsertOne(ctx, category); err != nil {
			log.WithError(err).Errorf("❌ [INIT] Failed to seed category %s", category.Slug)
			continue
		}
		log.Infof("✅ [INIT] Seeded category %s", category.Slug)
	}
}

// seedQuestions tạo bộ câu hỏi đánh giá tình trạng máy khởi đầu nếu chưa có
func seedQuestions() {
	log := logger.GetAppLogger()
	ctx := context.Background()

	service, err := questionsvc.NewQuestionService()
	if err != nil {
		log.WithError(err).Error("❌ [INIT] Failed to create question service")
		return
	}

	questions := []questionmodels.Question{
		{
			Key:      "screen_condition",
			Title:    "Màn hình của máy trong tình trạng nào?",
			Kind:     questionmodels.QuestionKindSingleChoice,
			Required: true,
			Order:    1,
			Options: []questionmodels.QuestionOption{
				{Key: "flawless", Label: "Không trầy xước", Type: "excellent", PriceImpact: 0, SortOrder: 1},
				{Key: "minor_scratches", Label: "Trầy xước nhẹ", Type: "good", PriceImpact: -5, SortOrder: 2},
				{Key: "visible_scratches", Label: "Trầy xước rõ", Type: "fair", PriceImpact: -15, SortOrder: 3},
				{Key: "cracked", Label: "Nứt vỡ", Type: "poor", PriceImpact: -40, SortOrder: 4},
			},
		},
		{
			Key:      "battery_health",
			Title:    "Pin của máy còn tốt không?",
			Kind:     questionmodels.QuestionKindSingleChoice,
			Required: true,
			Order:    2,
			Options: []questionmodels.QuestionOption{
				{Key: "above_85", Label: "Trên 85%", Type: "excellent", PriceImpact: 0, SortOrder: 1},
				{Key: "70_to_85", Label: "70% - 85%", Type: "good", PriceImpact: -10, SortOrder: 2},
				{Key: "below_70", Label: "Dưới 70%", Type: "poor", PriceImpact: -25, SortOrder: 3},
			},
		},
		{
			Key:      "powers_on",
			Title:    "Máy có bật nguồn bình thường không?",
			Kind:     questionmodels.QuestionKindBoolean,
			Required: true,
			Order:    3,
		},
	}

	for _, question := range questions {
		exists, err := service.DocumentExists(ctx, bson.M{"key": question.Key})
		if err != nil {
			log.WithError(err).Errorf("❌ [INIT] Failed to check question %s", question.Key)
			continue
		}
		if exists {
			continue
		}
		if _, err := service.Create(ctx, question); err != nil {
			log.WithError(err).Errorf("❌ [INIT] Failed to seed question %s", question.Key)
			continue
		}
		log.Infof("✅ [INIT] Seeded question %s", question.Key)
	}
}

// seedQuestionnaire tạo bộ câu hỏi mặc định cho điện thoại nếu chưa có,
// tham chiếu các câu hỏi seed theo thứ tự
func seedQuestionnaire() {
	log := logger.GetAppLogger()
	ctx := context.Background()

	questionService, err := questionsvc.NewQuestionService()
	if err != nil {
		log.WithError(err).Error("❌ [INIT] Failed to create question service")
		return
	}
	service, err := questionsvc.NewQuestionnaireService()
	if err != nil {
		log.WithError(err).Error("❌ [INIT] Failed to create questionnaire service")
		return
	}

	exists, err := service.DocumentExists(ctx, bson.M{"category": "smartphones", "isDefault": true})
	if err != nil {
		log.WithError(err).Error("❌ [INIT] Failed to check default questionnaire")
		return
	}
	if exists {
		return
	}

	questionIDs := make([]string, 0, 3)
	for _, key := range []string{"screen_condition", "battery_health", "powers_on"} {
		question, err := questionService.FindOne(ctx, bson.M{"key": key}, nil)
		if err != nil {
			log.WithError(err).Errorf("❌ [INIT] Failed to load question %s for questionnaire", key)
			return
		}
		questionIDs = append(questionIDs, question.ID.Hex())
	}

	questionnaire := questionmodels.Questionnaire{
		Title:       "Đánh giá điện thoại",
		Description: "Bộ câu hỏi chuẩn khi khách bán lại điện thoại",
		Category:    "smartphones",
		IsActive:    true,
		IsDefault:   true,
		Metadata: questionmodels.QuestionnaireMetadata{
			EstimatedTime: 3,
			Difficulty:    questionmodels.QuestionnaireDifficultyEasy,
			Tags:          []string{"man-hinh", "pin", "nguon"},
			Instructions:  "Trả lời trung thực để nhận báo giá chính xác",
		},
		QuestionIDs: questionIDs,
	}
	if _, err := service.Create(ctx, questionnaire); err != nil {
		log.WithError(err).Error("❌ [INIT] Failed to seed default questionnaire")
		return
	}
	log.Info("✅ [INIT] Seeded default smartphone questionnaire")
}
