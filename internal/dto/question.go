package dto

import "github.com/michaeltheo/placements-backend/internal/model"

// CreateQuestionRequest payload for adding a questionnaire question.
type CreateQuestionRequest struct {
	QuestionText            string                  `json:"question" binding:"required"`
	QuestionType            model.QuestionType      `json:"question_type" binding:"required"`
	QuestionnaireType       model.QuestionnaireType `json:"questionnaire_type" binding:"required"`
	SupportsMultipleAnswers bool                    `json:"supports_multiple_answers"`
	AnswerOptions           []string                `json:"answer_options"`
}

// UpdateQuestionRequest payload for editing a question. Supplying answer
// options replaces the existing option set.
type UpdateQuestionRequest struct {
	QuestionText            string   `json:"question" binding:"omitempty"`
	SupportsMultipleAnswers *bool    `json:"supports_multiple_answers"`
	AnswerOptions           []string `json:"answer_options"`
}

// QuestionResponse question fields exposed over the API.
type QuestionResponse struct {
	ID                      uint                    `json:"id"`
	QuestionText            string                  `json:"question"`
	QuestionType            model.QuestionType      `json:"question_type"`
	QuestionnaireType       model.QuestionnaireType `json:"questionnaire_type"`
	SupportsMultipleAnswers bool                    `json:"supports_multiple_answers"`
	AnswerOptions           []AnswerOptionResponse  `json:"answer_options"`
}

// AnswerOptionResponse option fields exposed over the API.
type AnswerOptionResponse struct {
	ID         uint   `json:"id"`
	OptionText string `json:"option_text"`
}

// ToQuestionResponse converts a question model with its options.
func ToQuestionResponse(q *model.Question) QuestionResponse {
	options := make([]AnswerOptionResponse, len(q.AnswerOptions))
	for i, opt := range q.AnswerOptions {
		options[i] = AnswerOptionResponse{ID: opt.ID, OptionText: opt.OptionText}
	}
	return QuestionResponse{
		ID:                      q.ID,
		QuestionText:            q.QuestionText,
		QuestionType:            q.QuestionType,
		QuestionnaireType:       q.QuestionnaireType,
		SupportsMultipleAnswers: q.SupportsMultipleAnswers,
		AnswerOptions:           options,
	}
}

// ToQuestionResponses converts a slice of question models.
func ToQuestionResponses(questions []model.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i := range questions {
		out[i] = ToQuestionResponse(&questions[i])
	}
	return out
}

// OptionStatistic the selection tally of one answer option.
type OptionStatistic struct {
	OptionID   uint   `json:"option_id"`
	OptionText string `json:"option_text"`
	Count      int64  `json:"count"`
}

// TextStatistic the tally of one distinct free-text answer.
type TextStatistic struct {
	Text  string `json:"text"`
	Count int64  `json:"count"`
}

// QuestionStatistics the aggregate answers of one question.
type QuestionStatistics struct {
	QuestionID   uint               `json:"question_id"`
	QuestionText string             `json:"question"`
	QuestionType model.QuestionType `json:"question_type"`
	TotalAnswers int64              `json:"total_answers"`
	Options      []OptionStatistic  `json:"options,omitempty"`
	FreeText     []TextStatistic    `json:"free_text,omitempty"`
}
