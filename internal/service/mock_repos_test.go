package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/repository"
)

// ── internships ──

type mockInternshipRepo struct {
	byUser map[uint]*model.Internship
	nextID uint
}

func newMockInternshipRepo() *mockInternshipRepo {
	return &mockInternshipRepo{byUser: make(map[uint]*model.Internship), nextID: 1}
}

func (m *mockInternshipRepo) Create(_ context.Context, in *model.Internship) error {
	in.ID = m.nextID
	m.nextID++
	cp := *in
	m.byUser[in.UserID] = &cp
	return nil
}

func (m *mockInternshipRepo) GetByID(_ context.Context, id uint) (*model.Internship, error) {
	for _, in := range m.byUser {
		if in.ID == id {
			cp := *in
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInternshipRepo) GetByUserID(_ context.Context, userID uint) (*model.Internship, error) {
	in, ok := m.byUser[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *in
	return &cp, nil
}

func (m *mockInternshipRepo) Update(_ context.Context, in *model.Internship) error {
	cp := *in
	m.byUser[in.UserID] = &cp
	return nil
}

func (m *mockInternshipRepo) DeleteCascade(_ context.Context, in *model.Internship) error {
	delete(m.byUser, in.UserID)
	return nil
}

func (m *mockInternshipRepo) List(_ context.Context, _ *dto.ListInternshipsQuery) ([]model.Internship, int64, error) {
	var out []model.Internship
	for _, in := range m.byUser {
		out = append(out, *in)
	}
	return out, int64(len(out)), nil
}

func (m *mockInternshipRepo) ListAll(_ context.Context, program model.InternshipProgram, status model.InternshipStatus) ([]model.Internship, error) {
	var out []model.Internship
	for _, in := range m.byUser {
		if program != "" && in.Program != program {
			continue
		}
		if status != "" && in.Status != status {
			continue
		}
		out = append(out, *in)
	}
	return out, nil
}

// ── users ──

type mockUserRepo struct {
	byID   map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = m.nextID
	m.nextID++
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetByAM(_ context.Context, am string) (*model.User, error) {
	for _, u := range m.byID {
		if u.AM == am {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, u *model.User) error {
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	delete(m.byID, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context, _ *dto.ListUsersQuery) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range m.byID {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

// ── companies ──

type mockCompanyRepo struct {
	byID   map[uint]*model.Company
	nextID uint
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{byID: make(map[uint]*model.Company), nextID: 1}
}

func (m *mockCompanyRepo) Create(_ context.Context, c *model.Company) error {
	c.ID = m.nextID
	m.nextID++
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id uint) (*model.Company, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCompanyRepo) GetByAFM(_ context.Context, afm string) (*model.Company, error) {
	for _, c := range m.byID {
		if c.AFM == afm {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompanyRepo) Update(_ context.Context, c *model.Company) error {
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *mockCompanyRepo) Delete(_ context.Context, id uint) error {
	delete(m.byID, id)
	return nil
}

func (m *mockCompanyRepo) List(_ context.Context, _ *dto.ListCompaniesQuery) ([]model.Company, int64, error) {
	var out []model.Company
	for _, c := range m.byID {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

// ── documents ──

type mockDocumentRepo struct {
	byID   map[uint]*model.Dikaiologitiko
	nextID uint
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{byID: make(map[uint]*model.Dikaiologitiko), nextID: 1}
}

func (m *mockDocumentRepo) Create(_ context.Context, d *model.Dikaiologitiko) error {
	d.ID = m.nextID
	m.nextID++
	cp := *d
	m.byID[d.ID] = &cp
	return nil
}

func (m *mockDocumentRepo) GetByID(_ context.Context, id uint) (*model.Dikaiologitiko, error) {
	d, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *mockDocumentRepo) GetByUserAndType(_ context.Context, userID uint, docType model.DocumentType) (*model.Dikaiologitiko, error) {
	for _, d := range m.byID {
		if d.UserID == userID && d.Type == docType {
			cp := *d
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDocumentRepo) ListByUser(_ context.Context, userID uint, docType model.DocumentType) ([]model.Dikaiologitiko, error) {
	var out []model.Dikaiologitiko
	for _, d := range m.byID {
		if d.UserID != userID {
			continue
		}
		if docType != "" && d.Type != docType {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockDocumentRepo) ListAll(_ context.Context, docType model.DocumentType) ([]model.Dikaiologitiko, error) {
	var out []model.Dikaiologitiko
	for _, d := range m.byID {
		if docType != "" && d.Type != docType {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockDocumentRepo) Update(_ context.Context, d *model.Dikaiologitiko) error {
	cp := *d
	m.byID[d.ID] = &cp
	return nil
}

func (m *mockDocumentRepo) Delete(_ context.Context, id uint) error {
	delete(m.byID, id)
	return nil
}

// ── otps ──

type mockOTPRepo struct {
	byUser map[uint]*model.OTP
	nextID uint
}

func newMockOTPRepo() *mockOTPRepo {
	return &mockOTPRepo{byUser: make(map[uint]*model.OTP), nextID: 1}
}

func (m *mockOTPRepo) Create(_ context.Context, o *model.OTP) error {
	o.ID = m.nextID
	m.nextID++
	cp := *o
	m.byUser[o.UserID] = &cp
	return nil
}

func (m *mockOTPRepo) GetByUserID(_ context.Context, userID uint) (*model.OTP, error) {
	o, ok := m.byUser[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOTPRepo) GetByCode(_ context.Context, code string) (*model.OTP, error) {
	for _, o := range m.byUser {
		if o.Code == code {
			cp := *o
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOTPRepo) Update(_ context.Context, o *model.OTP) error {
	cp := *o
	m.byUser[o.UserID] = &cp
	return nil
}

func (m *mockOTPRepo) Delete(_ context.Context, id uint) error {
	for userID, o := range m.byUser {
		if o.ID == id {
			delete(m.byUser, userID)
			return nil
		}
	}
	return nil
}

func (m *mockOTPRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for userID, o := range m.byUser {
		if now.After(o.ExpiryDate) {
			delete(m.byUser, userID)
			n++
		}
	}
	return n, nil
}

// ── questions ──

type mockQuestionRepo struct {
	byID    map[uint]*model.Question
	nextID  uint
	nextOpt uint
}

func newMockQuestionRepo() *mockQuestionRepo {
	return &mockQuestionRepo{byID: make(map[uint]*model.Question), nextID: 1, nextOpt: 1}
}

func (m *mockQuestionRepo) Create(_ context.Context, q *model.Question) error {
	q.ID = m.nextID
	m.nextID++
	for i := range q.AnswerOptions {
		q.AnswerOptions[i].ID = m.nextOpt
		q.AnswerOptions[i].QuestionID = q.ID
		m.nextOpt++
	}
	cp := *q
	m.byID[q.ID] = &cp
	return nil
}

func (m *mockQuestionRepo) GetByID(_ context.Context, id uint) (*model.Question, error) {
	q, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *q
	return &cp, nil
}

func (m *mockQuestionRepo) ListByQuestionnaire(_ context.Context, qt model.QuestionnaireType) ([]model.Question, error) {
	var out []model.Question
	for id := uint(1); id < m.nextID; id++ {
		if q, ok := m.byID[id]; ok && q.QuestionnaireType == qt {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (m *mockQuestionRepo) Update(_ context.Context, q *model.Question) error {
	existing, ok := m.byID[q.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.QuestionText = q.QuestionText
	existing.SupportsMultipleAnswers = q.SupportsMultipleAnswers
	return nil
}

func (m *mockQuestionRepo) ReplaceOptions(_ context.Context, questionID uint, options []model.AnswerOption) error {
	q, ok := m.byID[questionID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range options {
		options[i].ID = m.nextOpt
		options[i].QuestionID = questionID
		m.nextOpt++
	}
	q.AnswerOptions = options
	return nil
}

func (m *mockQuestionRepo) Delete(_ context.Context, id uint) error {
	delete(m.byID, id)
	return nil
}

// ── answers ──

type mockAnswerRepo struct {
	userAnswers    map[uint][]model.UserAnswer
	companyAnswers map[uint][]model.CompanyAnswer
}

func newMockAnswerRepo() *mockAnswerRepo {
	return &mockAnswerRepo{
		userAnswers:    make(map[uint][]model.UserAnswer),
		companyAnswers: make(map[uint][]model.CompanyAnswer),
	}
}

func (m *mockAnswerRepo) ReplaceUserAnswers(_ context.Context, userID uint, questionIDs []uint, rows []model.UserAnswer) error {
	replaced := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		replaced[id] = true
	}
	var kept []model.UserAnswer
	for _, r := range m.userAnswers[userID] {
		if !replaced[r.QuestionID] {
			kept = append(kept, r)
		}
	}
	m.userAnswers[userID] = append(kept, rows...)
	return nil
}

func (m *mockAnswerRepo) ReplaceCompanyAnswers(_ context.Context, internshipID uint, questionIDs []uint, rows []model.CompanyAnswer) error {
	replaced := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		replaced[id] = true
	}
	var kept []model.CompanyAnswer
	for _, r := range m.companyAnswers[internshipID] {
		if !replaced[r.QuestionID] {
			kept = append(kept, r)
		}
	}
	m.companyAnswers[internshipID] = append(kept, rows...)
	return nil
}

func (m *mockAnswerRepo) ListUserAnswers(_ context.Context, userID uint) ([]model.UserAnswer, error) {
	return m.userAnswers[userID], nil
}

func (m *mockAnswerRepo) ListCompanyAnswers(_ context.Context, internshipID uint) ([]model.CompanyAnswer, error) {
	return m.companyAnswers[internshipID], nil
}

func (m *mockAnswerRepo) OptionCounts(_ context.Context, qt model.QuestionnaireType, questionID uint) ([]repository.OptionCount, error) {
	tally := make(map[uint]int64)
	if qt == model.QuestionnaireCompany {
		for _, rows := range m.companyAnswers {
			for _, r := range rows {
				if r.QuestionID == questionID && r.AnswerOptionID != nil {
					tally[*r.AnswerOptionID]++
				}
			}
		}
	} else {
		for _, rows := range m.userAnswers {
			for _, r := range rows {
				if r.QuestionID == questionID && r.AnswerOptionID != nil {
					tally[*r.AnswerOptionID]++
				}
			}
		}
	}
	var out []repository.OptionCount
	for id, n := range tally {
		out = append(out, repository.OptionCount{AnswerOptionID: id, Count: n})
	}
	return out, nil
}

func (m *mockAnswerRepo) TextCounts(_ context.Context, qt model.QuestionnaireType, questionID uint) ([]repository.TextCount, error) {
	tally := make(map[string]int64)
	if qt == model.QuestionnaireCompany {
		for _, rows := range m.companyAnswers {
			for _, r := range rows {
				if r.QuestionID == questionID && r.AnswerText != nil && *r.AnswerText != "" {
					tally[*r.AnswerText]++
				}
			}
		}
	} else {
		for _, rows := range m.userAnswers {
			for _, r := range rows {
				if r.QuestionID == questionID && r.AnswerText != nil && *r.AnswerText != "" {
					tally[*r.AnswerText]++
				}
			}
		}
	}
	var out []repository.TextCount
	for text, n := range tally {
		out = append(out, repository.TextCount{AnswerText: text, Count: n})
	}
	return out, nil
}

func (m *mockAnswerRepo) TotalAnswers(_ context.Context, qt model.QuestionnaireType, questionID uint) (int64, error) {
	var total int64
	if qt == model.QuestionnaireCompany {
		for _, rows := range m.companyAnswers {
			for _, r := range rows {
				if r.QuestionID == questionID {
					total++
					break
				}
			}
		}
	} else {
		for _, rows := range m.userAnswers {
			for _, r := range rows {
				if r.QuestionID == questionID {
					total++
					break
				}
			}
		}
	}
	return total, nil
}
