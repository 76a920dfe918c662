package model

// UserAnswer a student's stored answer row. Multiple-choice questions that
// allow several selections produce one row per selected option.
type UserAnswer struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	UserID         uint    `gorm:"not null;index" json:"user_id"`
	QuestionID     uint    `gorm:"not null;index" json:"question_id"`
	AnswerOptionID *uint   `json:"answer_option_id"`
	AnswerText     *string `gorm:"type:text" json:"answer_text"`

	Question     *Question     `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	AnswerOption *AnswerOption `gorm:"foreignKey:AnswerOptionID" json:"answer_option,omitempty"`
}

// TableName overrides the table name.
func (UserAnswer) TableName() string {
	return "user_answers"
}

// CompanyAnswer a company's stored answer row, keyed by the internship the
// questionnaire concerns.
type CompanyAnswer struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	InternshipID   uint    `gorm:"not null;index" json:"internship_id"`
	QuestionID     uint    `gorm:"not null;index" json:"question_id"`
	AnswerOptionID *uint   `json:"answer_option_id"`
	AnswerText     *string `gorm:"type:text" json:"answer_text"`

	Question     *Question     `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	AnswerOption *AnswerOption `gorm:"foreignKey:AnswerOptionID" json:"answer_option,omitempty"`
}

// TableName overrides the table name.
func (CompanyAnswer) TableName() string {
	return "company_answers"
}
