package dto

import "github.com/michaeltheo/placements-backend/internal/model"

// SubmitAnswersRequest a full questionnaire submission. Re-submitting
// replaces any previously stored answers.
type SubmitAnswersRequest struct {
	Answers []AnswerInput `json:"answers" binding:"required,min=1,dive"`
}

// AnswerInput one question's answer within a submission. Multiple-choice
// questions carry option IDs; free-text questions carry text; the sentinel
// option of a multiple_choice_with_text question carries both.
type AnswerInput struct {
	QuestionID      uint   `json:"question_id" binding:"required"`
	AnswerOptionIDs []uint `json:"answer_option_ids"`
	AnswerText      string `json:"answer_text"`
}

// AnswerResponse one stored answer row exposed over the API.
type AnswerResponse struct {
	QuestionID   uint    `json:"question_id"`
	QuestionText string  `json:"question"`
	OptionID     *uint   `json:"answer_option_id,omitempty"`
	OptionText   string  `json:"option_text,omitempty"`
	AnswerText   *string `json:"answer_text,omitempty"`
}

// ToUserAnswerResponses converts stored student answer rows.
func ToUserAnswerResponses(answers []model.UserAnswer) []AnswerResponse {
	out := make([]AnswerResponse, len(answers))
	for i := range answers {
		a := &answers[i]
		resp := AnswerResponse{
			QuestionID: a.QuestionID,
			OptionID:   a.AnswerOptionID,
			AnswerText: a.AnswerText,
		}
		if a.Question != nil {
			resp.QuestionText = a.Question.QuestionText
		}
		if a.AnswerOption != nil {
			resp.OptionText = a.AnswerOption.OptionText
		}
		out[i] = resp
	}
	return out
}

// ToCompanyAnswerResponses converts stored company answer rows.
func ToCompanyAnswerResponses(answers []model.CompanyAnswer) []AnswerResponse {
	out := make([]AnswerResponse, len(answers))
	for i := range answers {
		a := &answers[i]
		resp := AnswerResponse{
			QuestionID: a.QuestionID,
			OptionID:   a.AnswerOptionID,
			AnswerText: a.AnswerText,
		}
		if a.Question != nil {
			resp.QuestionText = a.Question.QuestionText
		}
		if a.AnswerOption != nil {
			resp.OptionText = a.AnswerOption.OptionText
		}
		out[i] = resp
	}
	return out
}
