package model

// Question a questionnaire question.
type Question struct {
	ID                      uint              `gorm:"primaryKey" json:"id"`
	QuestionText            string            `gorm:"type:text;not null" json:"question"`
	QuestionType            QuestionType      `gorm:"size:32;not null" json:"question_type"`
	QuestionnaireType       QuestionnaireType `gorm:"size:16;not null" json:"questionnaire_type"`
	SupportsMultipleAnswers bool              `gorm:"not null;default:false" json:"supports_multiple_answers"`

	AnswerOptions []AnswerOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answer_options,omitempty"`
}

// TableName overrides the table name.
func (Question) TableName() string {
	return "questions"
}

// SupportsText reports whether an answer to this question may carry free text.
func (q *Question) SupportsText() bool {
	return q.QuestionType == QuestionFreeText || q.QuestionType == QuestionMultipleChoiceWithText
}

// AnswerOption a selectable option of a multiple-choice question.
type AnswerOption struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	OptionText string `gorm:"type:text;not null" json:"option_text"`
}

// TableName overrides the table name.
func (AnswerOption) TableName() string {
	return "answer_options"
}
