package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
)

func TestCreateQuestionShapeRules(t *testing.T) {
	svc := NewQuestionService(newMockQuestionRepo(), newMockAnswerRepo(), zap.NewNop())

	tests := []struct {
		name    string
		req     dto.CreateQuestionRequest
		wantErr error
	}{
		{
			name: "choice question without options",
			req: dto.CreateQuestionRequest{
				QuestionText:      "Ερώτηση",
				QuestionType:      model.QuestionMultipleChoice,
				QuestionnaireType: model.QuestionnaireStudent,
			},
			wantErr: ErrOptionsRequired,
		},
		{
			name: "free text question with options",
			req: dto.CreateQuestionRequest{
				QuestionText:      "Ερώτηση",
				QuestionType:      model.QuestionFreeText,
				QuestionnaireType: model.QuestionnaireStudent,
				AnswerOptions:     []string{"Α"},
			},
			wantErr: ErrOptionsNotAllowed,
		},
		{
			name: "unknown question type",
			req: dto.CreateQuestionRequest{
				QuestionText:      "Ερώτηση",
				QuestionType:      "ranking",
				QuestionnaireType: model.QuestionnaireStudent,
			},
			wantErr: ErrInvalidQuestionType,
		},
		{
			name: "unknown questionnaire",
			req: dto.CreateQuestionRequest{
				QuestionText:      "Ερώτηση",
				QuestionType:      model.QuestionFreeText,
				QuestionnaireType: "alumni",
			},
			wantErr: ErrInvalidQuestionnaire,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateQuestionReplacesOptions(t *testing.T) {
	questions := newMockQuestionRepo()
	svc := NewQuestionService(questions, newMockAnswerRepo(), zap.NewNop())

	q, err := svc.Create(context.Background(), &dto.CreateQuestionRequest{
		QuestionText:      "Ερώτηση",
		QuestionType:      model.QuestionMultipleChoice,
		QuestionnaireType: model.QuestionnaireStudent,
		AnswerOptions:     []string{"Α", "Β"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	multi := true
	updated, err := svc.Update(context.Background(), q.ID, &dto.UpdateQuestionRequest{
		QuestionText:            "Νέα διατύπωση",
		SupportsMultipleAnswers: &multi,
		AnswerOptions:           []string{"Γ", "Δ", "Ε"},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.QuestionText != "Νέα διατύπωση" {
		t.Errorf("text = %q, want %q", updated.QuestionText, "Νέα διατύπωση")
	}
	if !updated.SupportsMultipleAnswers {
		t.Error("SupportsMultipleAnswers flag not persisted")
	}
	if len(updated.AnswerOptions) != 3 {
		t.Errorf("options = %d, want 3", len(updated.AnswerOptions))
	}
}

func TestCreateQuestionCarriesMultiSelectFlag(t *testing.T) {
	svc := NewQuestionService(newMockQuestionRepo(), newMockAnswerRepo(), zap.NewNop())

	q, err := svc.Create(context.Background(), &dto.CreateQuestionRequest{
		QuestionText:            "Ερώτηση",
		QuestionType:            model.QuestionMultipleChoice,
		QuestionnaireType:       model.QuestionnaireStudent,
		SupportsMultipleAnswers: true,
		AnswerOptions:           []string{"Α", "Β"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !q.SupportsMultipleAnswers {
		t.Error("SupportsMultipleAnswers flag not stored")
	}
}

func TestStatisticsIncludesZeroCounts(t *testing.T) {
	questions := newMockQuestionRepo()
	answers := newMockAnswerRepo()
	mc, mcText, free := seedQuestionnaire(t, questions)
	answerSvc := newTestAnswerService(answers, questions, nil)
	svc := NewQuestionService(questions, answers, zap.NewNop())

	otherID := mcText.AnswerOptions[1].ID
	// Two students answer; both pick the first choice, one uses the sentinel.
	for _, sub := range []struct {
		userID uint
		mcOpt  uint
		other  bool
	}{
		{userID: 1, mcOpt: mc.AnswerOptions[0].ID, other: false},
		{userID: 2, mcOpt: mc.AnswerOptions[0].ID, other: true},
	} {
		mcTextInput := dto.AnswerInput{QuestionID: mcText.ID, AnswerOptionIDs: []uint{mcText.AnswerOptions[0].ID}}
		if sub.other {
			mcTextInput.AnswerOptionIDs = append(mcTextInput.AnswerOptionIDs, otherID)
			mcTextInput.AnswerText = "Μετακινήσεις"
		}
		err := answerSvc.SubmitStudent(context.Background(), sub.userID, &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
			{QuestionID: mc.ID, AnswerOptionIDs: []uint{sub.mcOpt}},
			mcTextInput,
			{QuestionID: free.ID, AnswerText: "σχόλιο"},
		}})
		if err != nil {
			t.Fatalf("SubmitStudent() error = %v", err)
		}
	}

	stats, err := svc.Statistics(context.Background(), model.QuestionnaireStudent)
	if err != nil {
		t.Fatalf("Statistics() error = %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("stats for %d questions, want 3", len(stats))
	}

	byQuestion := make(map[uint]dto.QuestionStatistics, len(stats))
	for _, s := range stats {
		byQuestion[s.QuestionID] = s
	}

	mcStats := byQuestion[mc.ID]
	if mcStats.TotalAnswers != 2 {
		t.Errorf("total answers = %d, want 2", mcStats.TotalAnswers)
	}
	if len(mcStats.Options) != 2 {
		t.Fatalf("option stats = %d, want 2", len(mcStats.Options))
	}
	// Nobody picked the second option; it must still appear.
	counts := map[uint]int64{}
	for _, o := range mcStats.Options {
		counts[o.OptionID] = o.Count
	}
	if counts[mc.AnswerOptions[0].ID] != 2 || counts[mc.AnswerOptions[1].ID] != 0 {
		t.Errorf("option counts = %v, want first 2 and second 0", counts)
	}

	textStats := byQuestion[mcText.ID]
	if len(textStats.FreeText) != 1 || textStats.FreeText[0].Text != "Μετακινήσεις" || textStats.FreeText[0].Count != 1 {
		t.Errorf("sentinel text tally = %v, want one entry for Μετακινήσεις", textStats.FreeText)
	}

	freeStats := byQuestion[free.ID]
	if len(freeStats.FreeText) != 1 || freeStats.FreeText[0].Count != 2 {
		t.Errorf("free text tally = %v, want one distinct text counted twice", freeStats.FreeText)
	}
	if freeStats.Options != nil {
		t.Error("free text question has option stats")
	}
}

func TestStatisticsSentinelCountsDistinctTexts(t *testing.T) {
	questions := newMockQuestionRepo()
	answers := newMockAnswerRepo()
	_, mcText, _ := seedQuestionnaire(t, questions)
	answerSvc := newTestAnswerService(answers, questions, nil)
	svc := NewQuestionService(questions, answers, zap.NewNop())

	otherID := mcText.AnswerOptions[1].ID
	// Three students pick the sentinel; two type the same text.
	for userID, text := range map[uint]string{1: "Μετακινήσεις", 2: "Μετακινήσεις", 3: "Ωράριο"} {
		err := answerSvc.SubmitStudent(context.Background(), userID, &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
			{QuestionID: mcText.ID, AnswerOptionIDs: []uint{otherID}, AnswerText: text},
		}})
		if err != nil {
			t.Fatalf("SubmitStudent() error = %v", err)
		}
	}

	stats, err := svc.Statistics(context.Background(), model.QuestionnaireStudent)
	if err != nil {
		t.Fatalf("Statistics() error = %v", err)
	}

	for _, s := range stats {
		if s.QuestionID != mcText.ID {
			continue
		}
		var sentinelCount int64 = -1
		for _, o := range s.Options {
			if o.OptionID == otherID {
				sentinelCount = o.Count
			}
		}
		if sentinelCount != 2 {
			t.Errorf("sentinel option count = %d, want 2 distinct texts", sentinelCount)
		}
		if s.TotalAnswers != 2 {
			t.Errorf("total answers = %d, want 2", s.TotalAnswers)
		}
	}
}
