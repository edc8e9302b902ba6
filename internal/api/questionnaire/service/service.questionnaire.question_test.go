// Package questionsvc - Test ID ổn định của lựa chọn và invariant lựa chọn cuối.
package questionsvc

import (
	"testing"

	questionmodels "cashmitra/internal/api/questionnaire/models"
)

func TestEnsureOptionIDs_GanUUIDChoOptionMoi(t *testing.T) {
	options := []questionmodels.QuestionOption{
		{Key: "flawless", Label: "Không trầy xước"},
		{ID: "existing-id", Key: "cracked", Label: "Nứt vỡ"},
	}

	out := EnsureOptionIDs(options)

	if out[0].ID == "" {
		t.Error("option chưa có ID phải được gán UUID")
	}
	if out[1].ID != "existing-id" {
		t.Errorf("option đã có ID bị đổi thành %q, muốn giữ nguyên", out[1].ID)
	}
	// Slice đầu vào không bị sửa tại chỗ
	if options[0].ID != "" {
		t.Error("EnsureOptionIDs phải trả về bản sao, không sửa slice đầu vào")
	}
}

func TestEnsureOptionIDs_IDKhongTrung(t *testing.T) {
	options := []questionmodels.QuestionOption{{Key: "a"}, {Key: "b"}, {Key: "c"}}
	out := EnsureOptionIDs(options)

	seen := map[string]bool{}
	for _, option := range out {
		if seen[option.ID] {
			t.Fatalf("ID %q bị trùng", option.ID)
		}
		seen[option.ID] = true
	}
}

func TestValidateOptionInvariant_ChoiceRongBiChan(t *testing.T) {
	// Invariant áp dụng bất kể trạng thái: xóa lựa chọn cuối của câu hỏi
	// inactive cũng bị chặn, nếu không câu hỏi đó không bao giờ kích hoạt lại được
	for _, status := range []string{
		questionmodels.QuestionStatusActive,
		questionmodels.QuestionStatusInactive,
	} {
		question := questionmodels.Question{
			Kind:   questionmodels.QuestionKindSingleChoice,
			Status: status,
		}
		if err := ValidateOptionInvariant(question); err == nil {
			t.Errorf("câu hỏi choice %s không còn lựa chọn nào phải bị chặn", status)
		}
	}
}

func TestValidateOptionInvariant_CacTruongHopHopLe(t *testing.T) {
	cases := []struct {
		name     string
		question questionmodels.Question
	}{
		{
			name: "choice active còn lựa chọn",
			question: questionmodels.Question{
				Kind:    questionmodels.QuestionKindMultipleChoice,
				Status:  questionmodels.QuestionStatusActive,
				Options: []questionmodels.QuestionOption{{ID: "x", Key: "k"}},
			},
		},
		{
			name: "choice inactive còn lựa chọn",
			question: questionmodels.Question{
				Kind:    questionmodels.QuestionKindSingleChoice,
				Status:  questionmodels.QuestionStatusInactive,
				Options: []questionmodels.QuestionOption{{ID: "y", Key: "k2"}},
			},
		},
		{
			name: "câu hỏi boolean không có khái niệm lựa chọn",
			question: questionmodels.Question{
				Kind:   questionmodels.QuestionKindBoolean,
				Status: questionmodels.QuestionStatusActive,
			},
		},
		{
			name: "câu hỏi text cũng vậy",
			question: questionmodels.Question{
				Kind:   questionmodels.QuestionKindText,
				Status: questionmodels.QuestionStatusActive,
			},
		},
	}

	for _, tc := range cases {
		if err := ValidateOptionInvariant(tc.question); err != nil {
			t.Errorf("%s: trả về lỗi %v, muốn nil", tc.name, err)
		}
	}
}
