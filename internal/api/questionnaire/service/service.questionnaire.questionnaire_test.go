// Package questionsvc - Test bộ câu hỏi: dedupe danh sách câu hỏi và nhân bản.
package questionsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	questionmodels "cashmitra/internal/api/questionnaire/models"
)

func TestDedupeQuestionIDs(t *testing.T) {
	ids := []string{"a", "b", "a", "", "c", "b"}

	out := DedupeQuestionIDs(ids)

	want := []string{"a", "b", "c"}
	if len(out) != len(want) {
		t.Fatalf("DedupeQuestionIDs trả về %v, muốn %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("phần tử %d = %q, muốn %q (thứ tự xuất hiện đầu phải được giữ)", i, out[i], want[i])
		}
	}
}

func TestCopyForDuplicate(t *testing.T) {
	original := questionmodels.Questionnaire{
		ID:        primitive.NewObjectID(),
		Title:     "Đánh giá smartphone",
		Category:  "smartphones",
		Version:   4,
		IsActive:  true,
		IsDefault: true,
		Metadata: questionmodels.QuestionnaireMetadata{
			EstimatedTime: 5,
			Difficulty:    questionmodels.QuestionnaireDifficultyEasy,
			Tags:          []string{"man-hinh", "pin"},
		},
		QuestionIDs: []string{"q1", "q2"},
		CreatedAt:   1000,
		UpdatedAt:   2000,
	}

	copied := CopyForDuplicate(original)

	if copied.ID == original.ID {
		t.Error("bản sao phải có ID mới")
	}
	if copied.Title != "Đánh giá smartphone (Copy)" {
		t.Errorf("tên bản sao = %q, muốn thêm hậu tố (Copy)", copied.Title)
	}
	if copied.IsDefault {
		t.Error("bản sao không được giữ cờ mặc định")
	}
	if copied.Version != 1 {
		t.Errorf("phiên bản bản sao = %d, muốn 1", copied.Version)
	}
	if copied.CreatedAt != 0 || copied.UpdatedAt != 0 {
		t.Error("timestamp bản sao phải được reset")
	}

	// Danh sách câu hỏi giữ nguyên nội dung nhưng là slice riêng
	if len(copied.QuestionIDs) != 2 || copied.QuestionIDs[0] != "q1" {
		t.Errorf("danh sách câu hỏi bản sao sai: %v", copied.QuestionIDs)
	}
	copied.QuestionIDs[0] = "khac"
	if original.QuestionIDs[0] != "q1" {
		t.Error("sửa bản sao làm thay đổi danh sách câu hỏi gốc")
	}
}
