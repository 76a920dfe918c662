package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
)

// seedQuestionnaire builds a three-question student questionnaire: one plain
// multiple choice, one multi-select with an "Άλλο" option, one free text.
func seedQuestionnaire(t *testing.T, questions *mockQuestionRepo) (mc, mcText, free *model.Question) {
	t.Helper()
	ctx := context.Background()

	mc = &model.Question{
		QuestionText:      "Πώς βρήκατε τη θέση;",
		QuestionType:      model.QuestionMultipleChoice,
		QuestionnaireType: model.QuestionnaireStudent,
		AnswerOptions: []model.AnswerOption{
			{OptionText: "Μέσω του τμήματος"},
			{OptionText: "Μόνος/η μου"},
		},
	}
	if err := questions.Create(ctx, mc); err != nil {
		t.Fatal(err)
	}

	mcText = &model.Question{
		QuestionText:            "Τι δυσκολίες συναντήσατε;",
		QuestionType:            model.QuestionMultipleChoiceWithText,
		QuestionnaireType:       model.QuestionnaireStudent,
		SupportsMultipleAnswers: true,
		AnswerOptions: []model.AnswerOption{
			{OptionText: "Γραφειοκρατία"},
			{OptionText: model.OtherOptionText},
		},
	}
	if err := questions.Create(ctx, mcText); err != nil {
		t.Fatal(err)
	}

	free = &model.Question{
		QuestionText:      "Σχόλια",
		QuestionType:      model.QuestionFreeText,
		QuestionnaireType: model.QuestionnaireStudent,
	}
	if err := questions.Create(ctx, free); err != nil {
		t.Fatal(err)
	}

	return mc, mcText, free
}

func newTestAnswerService(answers *mockAnswerRepo, questions *mockQuestionRepo, internships *mockInternshipRepo) *AnswerService {
	if internships == nil {
		internships = newMockInternshipRepo()
	}
	return NewAnswerService(answers, questions, internships, zap.NewNop())
}

func TestSubmitStudentStoresRows(t *testing.T) {
	questions := newMockQuestionRepo()
	answers := newMockAnswerRepo()
	mc, mcText, free := seedQuestionnaire(t, questions)
	svc := newTestAnswerService(answers, questions, nil)

	otherID := mcText.AnswerOptions[1].ID
	req := &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
		{QuestionID: mc.ID, AnswerOptionIDs: []uint{mc.AnswerOptions[0].ID}},
		{QuestionID: mcText.ID, AnswerOptionIDs: []uint{mcText.AnswerOptions[0].ID, otherID}, AnswerText: "Απόσταση"},
		{QuestionID: free.ID, AnswerText: "Όλα καλά"},
	}}

	if err := svc.SubmitStudent(context.Background(), 1, req); err != nil {
		t.Fatalf("SubmitStudent() error = %v", err)
	}

	rows, _ := svc.GetStudentAnswers(context.Background(), 1)
	// One row for the plain choice, two for the multi-select options, one free text.
	if len(rows) != 4 {
		t.Fatalf("stored %d rows, want 4", len(rows))
	}

	var otherText string
	for _, r := range rows {
		if r.AnswerOptionID != nil && *r.AnswerOptionID == otherID && r.AnswerText != nil {
			otherText = *r.AnswerText
		}
	}
	if otherText != "Απόσταση" {
		t.Errorf("sentinel option text = %q, want %q", otherText, "Απόσταση")
	}
}

func TestSubmitStudentReplacesPrevious(t *testing.T) {
	questions := newMockQuestionRepo()
	answers := newMockAnswerRepo()
	mc, mcText, free := seedQuestionnaire(t, questions)
	svc := newTestAnswerService(answers, questions, nil)

	submit := func(optionIdx int) error {
		return svc.SubmitStudent(context.Background(), 1, &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
			{QuestionID: mc.ID, AnswerOptionIDs: []uint{mc.AnswerOptions[optionIdx].ID}},
			{QuestionID: mcText.ID, AnswerOptionIDs: []uint{mcText.AnswerOptions[0].ID}},
			{QuestionID: free.ID, AnswerText: "σχόλιο"},
		}})
	}

	if err := submit(0); err != nil {
		t.Fatalf("first submission error = %v", err)
	}
	if err := submit(1); err != nil {
		t.Fatalf("second submission error = %v", err)
	}

	rows, _ := svc.GetStudentAnswers(context.Background(), 1)
	if len(rows) != 3 {
		t.Fatalf("stored %d rows after resubmission, want 3", len(rows))
	}
	for _, r := range rows {
		if r.QuestionID == mc.ID && (r.AnswerOptionID == nil || *r.AnswerOptionID != mc.AnswerOptions[1].ID) {
			t.Error("resubmission did not replace the stored selection")
		}
	}
}

func TestSubmitStudentPartialKeepsOtherAnswers(t *testing.T) {
	questions := newMockQuestionRepo()
	answers := newMockAnswerRepo()
	mc, _, free := seedQuestionnaire(t, questions)
	svc := newTestAnswerService(answers, questions, nil)

	// Answer two of the three questions.
	err := svc.SubmitStudent(context.Background(), 1, &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
		{QuestionID: mc.ID, AnswerOptionIDs: []uint{mc.AnswerOptions[0].ID}},
		{QuestionID: free.ID, AnswerText: "πρώτο σχόλιο"},
	}})
	if err != nil {
		t.Fatalf("SubmitStudent() error = %v", err)
	}

	// A later single-question submission replaces only that answer.
	err = svc.SubmitStudent(context.Background(), 1, &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
		{QuestionID: free.ID, AnswerText: "δεύτερο σχόλιο"},
	}})
	if err != nil {
		t.Fatalf("SubmitStudent() resubmission error = %v", err)
	}

	rows, _ := svc.GetStudentAnswers(context.Background(), 1)
	if len(rows) != 2 {
		t.Fatalf("stored %d rows, want 2", len(rows))
	}
	for _, r := range rows {
		switch r.QuestionID {
		case mc.ID:
			if r.AnswerOptionID == nil || *r.AnswerOptionID != mc.AnswerOptions[0].ID {
				t.Error("partial resubmission clobbered the untouched answer")
			}
		case free.ID:
			if r.AnswerText == nil || *r.AnswerText != "δεύτερο σχόλιο" {
				t.Error("resubmitted answer was not replaced")
			}
		}
	}
}

func TestSubmitStudentValidation(t *testing.T) {
	questions := newMockQuestionRepo()
	mc, mcText, free := seedQuestionnaire(t, questions)
	svc := newTestAnswerService(newMockAnswerRepo(), questions, nil)

	tests := []struct {
		name    string
		input   dto.AnswerInput
		wantErr error
	}{
		{
			name:    "two options on single choice",
			input:   dto.AnswerInput{QuestionID: mc.ID, AnswerOptionIDs: []uint{mc.AnswerOptions[0].ID, mc.AnswerOptions[1].ID}},
			wantErr: ErrMultipleNotAllowed,
		},
		{
			name:    "no option on choice question",
			input:   dto.AnswerInput{QuestionID: mc.ID},
			wantErr: ErrOptionRequired,
		},
		{
			name:    "same option twice",
			input:   dto.AnswerInput{QuestionID: mcText.ID, AnswerOptionIDs: []uint{mcText.AnswerOptions[0].ID, mcText.AnswerOptions[0].ID}},
			wantErr: ErrDuplicateOption,
		},
		{
			name:    "text without sentinel option",
			input:   dto.AnswerInput{QuestionID: mcText.ID, AnswerOptionIDs: []uint{mcText.AnswerOptions[0].ID}, AnswerText: "κάτι"},
			wantErr: ErrTextNotAllowed,
		},
		{
			name:    "sentinel option without text",
			input:   dto.AnswerInput{QuestionID: mcText.ID, AnswerOptionIDs: []uint{mcText.AnswerOptions[1].ID}},
			wantErr: ErrTextRequired,
		},
		{
			name:    "empty free text",
			input:   dto.AnswerInput{QuestionID: free.ID, AnswerText: "   "},
			wantErr: ErrTextRequired,
		},
		{
			name:    "unknown question",
			input:   dto.AnswerInput{QuestionID: 99, AnswerText: "σχόλιο"},
			wantErr: ErrQuestionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SubmitStudent(context.Background(), 1, &dto.SubmitAnswersRequest{
				Answers: []dto.AnswerInput{tt.input},
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SubmitStudent() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubmitStudentMultiSelectFlag(t *testing.T) {
	questions := newMockQuestionRepo()
	answers := newMockAnswerRepo()
	mc, mcText, _ := seedQuestionnaire(t, questions)
	svc := newTestAnswerService(answers, questions, nil)

	// mcText allows several selections.
	otherID := mcText.AnswerOptions[1].ID
	err := svc.SubmitStudent(context.Background(), 1, &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
		{QuestionID: mcText.ID, AnswerOptionIDs: []uint{mcText.AnswerOptions[0].ID, otherID}, AnswerText: "Απόσταση"},
	}})
	if err != nil {
		t.Fatalf("SubmitStudent() error = %v for multi-select question", err)
	}

	// mc does not, regardless of its type having options.
	err = svc.SubmitStudent(context.Background(), 1, &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
		{QuestionID: mc.ID, AnswerOptionIDs: []uint{mc.AnswerOptions[0].ID, mc.AnswerOptions[1].ID}},
	}})
	if !errors.Is(err, ErrMultipleNotAllowed) {
		t.Fatalf("SubmitStudent() error = %v, want ErrMultipleNotAllowed", err)
	}
}

func TestSubmitStudentRejectsForeignOption(t *testing.T) {
	questions := newMockQuestionRepo()
	mc, mcText, _ := seedQuestionnaire(t, questions)
	svc := newTestAnswerService(newMockAnswerRepo(), questions, nil)

	// Option from the other question.
	err := svc.SubmitStudent(context.Background(), 1, &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
		{QuestionID: mc.ID, AnswerOptionIDs: []uint{mcText.AnswerOptions[0].ID}},
	}})

	var invalid *InvalidOptionIDsError
	if !errors.As(err, &invalid) {
		t.Fatalf("SubmitStudent() error = %v, want InvalidOptionIDsError", err)
	}
	if invalid.QuestionID != mc.ID {
		t.Errorf("QuestionID = %d, want %d", invalid.QuestionID, mc.ID)
	}
}

func TestSubmitStudentRejectsDuplicateQuestion(t *testing.T) {
	questions := newMockQuestionRepo()
	mc, _, _ := seedQuestionnaire(t, questions)
	svc := newTestAnswerService(newMockAnswerRepo(), questions, nil)

	err := svc.SubmitStudent(context.Background(), 1, &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
		{QuestionID: mc.ID, AnswerOptionIDs: []uint{mc.AnswerOptions[0].ID}},
		{QuestionID: mc.ID, AnswerOptionIDs: []uint{mc.AnswerOptions[1].ID}},
	}})
	if !errors.Is(err, ErrDuplicateQuestion) {
		t.Fatalf("SubmitStudent() error = %v, want ErrDuplicateQuestion", err)
	}
}

func TestSubmitStudentRejectsCompanyQuestion(t *testing.T) {
	questions := newMockQuestionRepo()
	companyQ := &model.Question{
		QuestionText:      "Αξιολόγηση",
		QuestionType:      model.QuestionFreeText,
		QuestionnaireType: model.QuestionnaireCompany,
	}
	if err := questions.Create(context.Background(), companyQ); err != nil {
		t.Fatal(err)
	}
	svc := newTestAnswerService(newMockAnswerRepo(), questions, nil)

	err := svc.SubmitStudent(context.Background(), 1, &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
		{QuestionID: companyQ.ID, AnswerText: "σχόλιο"},
	}})
	if !errors.Is(err, ErrQuestionnaireMismatch) {
		t.Fatalf("SubmitStudent() error = %v, want ErrQuestionnaireMismatch", err)
	}
}

func TestSubmitCompanyKeyedByInternship(t *testing.T) {
	questions := newMockQuestionRepo()
	answers := newMockAnswerRepo()
	q := &model.Question{
		QuestionText:      "Αξιολόγηση ασκούμενου",
		QuestionType:      model.QuestionMultipleChoice,
		QuestionnaireType: model.QuestionnaireCompany,
		AnswerOptions: []model.AnswerOption{
			{OptionText: "Άριστη"},
			{OptionText: "Καλή"},
		},
	}
	if err := questions.Create(context.Background(), q); err != nil {
		t.Fatal(err)
	}

	internships := newMockInternshipRepo()
	internships.Create(context.Background(), &model.Internship{
		UserID:  5,
		Program: model.ProgramEspa,
		Status:  model.StatusActive,
	})
	svc := newTestAnswerService(answers, questions, internships)

	err := svc.SubmitCompany(context.Background(), 5, &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
		{QuestionID: q.ID, AnswerOptionIDs: []uint{q.AnswerOptions[0].ID}},
	}})
	if err != nil {
		t.Fatalf("SubmitCompany() error = %v", err)
	}

	rows, err := svc.GetCompanyAnswers(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetCompanyAnswers() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("stored %d company rows, want 1", len(rows))
	}

	internship, _ := internships.GetByUserID(context.Background(), 5)
	if rows[0].InternshipID != internship.ID {
		t.Errorf("row keyed by internship %d, want %d", rows[0].InternshipID, internship.ID)
	}

	// The student questionnaire must be untouched.
	studentRows, _ := svc.GetStudentAnswers(context.Background(), 5)
	if len(studentRows) != 0 {
		t.Errorf("company submission leaked %d rows into student answers", len(studentRows))
	}
}

func TestSubmitCompanyRequiresInternship(t *testing.T) {
	questions := newMockQuestionRepo()
	q := &model.Question{
		QuestionText:      "Αξιολόγηση",
		QuestionType:      model.QuestionFreeText,
		QuestionnaireType: model.QuestionnaireCompany,
	}
	if err := questions.Create(context.Background(), q); err != nil {
		t.Fatal(err)
	}
	svc := newTestAnswerService(newMockAnswerRepo(), questions, newMockInternshipRepo())

	err := svc.SubmitCompany(context.Background(), 5, &dto.SubmitAnswersRequest{Answers: []dto.AnswerInput{
		{QuestionID: q.ID, AnswerText: "σχόλιο"},
	}})
	if !errors.Is(err, ErrInternshipNotFound) {
		t.Fatalf("SubmitCompany() error = %v, want ErrInternshipNotFound", err)
	}
}
