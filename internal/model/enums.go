package model

// Role user roles.
type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
	RoleSecretary  Role = "secretary"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleSuperAdmin, RoleSecretary:
		return true
	}
	return false
}

// IsAdministrative reports whether the role may access the back-office surface.
func (r Role) IsAdministrative() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleSecretary:
		return true
	}
	return false
}

// InternshipProgram funding programs an internship can run under.
type InternshipProgram string

const (
	ProgramTeitheOaed       InternshipProgram = "teithe_oaed"
	ProgramEspa             InternshipProgram = "espa"
	ProgramEmployerFinanced InternshipProgram = "employer_financed"
)

// Valid reports whether the program is one of the known values.
func (p InternshipProgram) Valid() bool {
	switch p {
	case ProgramTeitheOaed, ProgramEspa, ProgramEmployerFinanced:
		return true
	}
	return false
}

// Description returns the Greek display name of the program.
func (p InternshipProgram) Description() string {
	switch p {
	case ProgramTeitheOaed:
		return "ΟΑΕΔ ΤΕΙΘ"
	case ProgramEspa:
		return "ΕΣΠΑ"
	case ProgramEmployerFinanced:
		return "Αποκλειστικά χρηματοδοτούμενη από εργοδότη"
	}
	return string(p)
}

// InternshipStatus lifecycle states of an internship. Students move their
// record into the review stages; the secretariat sets everything else.
type InternshipStatus string

const (
	StatusSubmitStartFiles   InternshipStatus = "submit_start_files"
	StatusPendingReviewStart InternshipStatus = "pending_review_start"
	StatusActive             InternshipStatus = "active"
	StatusPendingReviewEnd   InternshipStatus = "pending_review_end"
	StatusEnded              InternshipStatus = "ended"
)

// Valid reports whether the status is one of the known values.
func (s InternshipStatus) Valid() bool {
	switch s {
	case StatusSubmitStartFiles, StatusPendingReviewStart, StatusActive,
		StatusPendingReviewEnd, StatusEnded:
		return true
	}
	return false
}

// Description returns the Greek display name of the status.
func (s InternshipStatus) Description() string {
	switch s {
	case StatusSubmitStartFiles:
		return "Υποβολή δικαιολογητικών έναρξης"
	case StatusPendingReviewStart:
		return "Έλεγχος δικαιολογητικών έναρξης"
	case StatusActive:
		return "Ενεργή πρακτική άσκηση"
	case StatusPendingReviewEnd:
		return "Έλεγχος δικαιολογητικών λήξης"
	case StatusEnded:
		return "Ολοκληρωμένη πρακτική άσκηση"
	}
	return string(s)
}

// DocumentType kinds of dikaiologitika a student can submit.
type DocumentType string

const (
	DocAitisiPraktikis                 DocumentType = "AitisiPraktikis"
	DocBebaiosiPraktikisApoGramateia   DocumentType = "BebaiosiPraktikisApoGramateia"
	DocAitisiForeaGiaApasxolisiFoititi DocumentType = "AitisiForeaGiaApasxolisiFoititi"
	DocBebaiosiPraktikis               DocumentType = "BebaiosiPraktikis"
	DocBebaiosiApasxolisis             DocumentType = "BebaiosiApasxolisis"
	DocAsfalisiAskoumenou              DocumentType = "AsfalisiAskoumenou"
)

// Valid reports whether the document type is one of the known values.
func (t DocumentType) Valid() bool {
	switch t {
	case DocAitisiPraktikis, DocBebaiosiPraktikisApoGramateia,
		DocAitisiForeaGiaApasxolisiFoititi, DocBebaiosiPraktikis,
		DocBebaiosiApasxolisis, DocAsfalisiAskoumenou:
		return true
	}
	return false
}

// Description returns the Greek display name of the document type.
func (t DocumentType) Description() string {
	switch t {
	case DocAitisiPraktikis:
		return "Αίτηση πρακτικής άσκησης"
	case DocBebaiosiPraktikisApoGramateia:
		return "Βεβαίωση πρακτικής άσκησης από τη γραμματεία"
	case DocAitisiForeaGiaApasxolisiFoititi:
		return "Αίτηση φορέα για απασχόληση φοιτητή"
	case DocBebaiosiPraktikis:
		return "Βεβαίωση πρακτικής άσκησης"
	case DocBebaiosiApasxolisis:
		return "Βεβαίωση απασχόλησης"
	case DocAsfalisiAskoumenou:
		return "Ασφάλιση ασκούμενου"
	}
	return string(t)
}

// SubmissionPhase distinguishes documents handed in at the start of an
// internship from those handed in at its end.
type SubmissionPhase string

const (
	PhaseStart SubmissionPhase = "start"
	PhaseEnd   SubmissionPhase = "end"
)

// Valid reports whether the phase is one of the known values.
func (p SubmissionPhase) Valid() bool {
	return p == PhaseStart || p == PhaseEnd
}

// QuestionType answer shapes a question can take.
type QuestionType string

const (
	QuestionMultipleChoice         QuestionType = "multiple_choice"
	QuestionMultipleChoiceWithText QuestionType = "multiple_choice_with_text"
	QuestionFreeText               QuestionType = "free_text"
)

// Valid reports whether the question type is one of the known values.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionMultipleChoice, QuestionMultipleChoiceWithText, QuestionFreeText:
		return true
	}
	return false
}

// QuestionnaireType which audience a question targets.
type QuestionnaireType string

const (
	QuestionnaireStudent QuestionnaireType = "student"
	QuestionnaireCompany QuestionnaireType = "company"
)

// Valid reports whether the questionnaire type is one of the known values.
func (t QuestionnaireType) Valid() bool {
	return t == QuestionnaireStudent || t == QuestionnaireCompany
}

// OtherOptionText is the sentinel option label whose selection carries
// free text alongside the choice.
const OtherOptionText = "Άλλο"
