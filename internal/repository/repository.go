package repository

import "gorm.io/gorm"

// Repository aggregates all data access components.
type Repository struct {
	User       UserRepository
	Company    CompanyRepository
	Internship InternshipRepository
	Document   DocumentRepository
	OTP        OTPRepository
	Question   QuestionRepository
	Answer     AnswerRepository
}

// New creates the repository aggregate backed by GORM.
func New(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepository(db),
		Company:    NewCompanyRepository(db),
		Internship: NewInternshipRepository(db),
		Document:   NewDocumentRepository(db),
		OTP:        NewOTPRepository(db),
		Question:   NewQuestionRepository(db),
		Answer:     NewAnswerRepository(db),
	}
}
