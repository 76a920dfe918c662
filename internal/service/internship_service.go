package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/repository"
	"github.com/michaeltheo/placements-backend/internal/requirements"
	"github.com/michaeltheo/placements-backend/internal/storage"
)

var (
	ErrInternshipNotFound = errors.New("δεν βρέθηκε πρακτική άσκηση")
	ErrInvalidProgram     = errors.New("μη έγκυρο πρόγραμμα πρακτικής άσκησης")
	ErrInvalidStatus      = errors.New("μη έγκυρη κατάσταση πρακτικής άσκησης")
	ErrNotInternshipOwner = errors.New("η πρακτική άσκηση ανήκει σε άλλον χρήστη")
	ErrStatusAdminOnly    = errors.New("μόνο η γραμματεία μπορεί να ορίσει αυτή την κατάσταση")
	ErrProgramLocked      = errors.New("το πρόγραμμα δεν μπορεί να αλλάξει μετά την έναρξη ελέγχου")
)

// InternshipService manages placement records and their lifecycle.
type InternshipService struct {
	internshipRepo repository.InternshipRepository
	companyRepo    repository.CompanyRepository
	documentRepo   repository.DocumentRepository
	store          *storage.LocalStore
	logger         *zap.Logger
}

// NewInternshipService creates the internship service.
func NewInternshipService(
	internshipRepo repository.InternshipRepository,
	companyRepo repository.CompanyRepository,
	documentRepo repository.DocumentRepository,
	store *storage.LocalStore,
	logger *zap.Logger,
) *InternshipService {
	return &InternshipService{
		internshipRepo: internshipRepo,
		companyRepo:    companyRepo,
		documentRepo:   documentRepo,
		store:          store,
		logger:         logger,
	}
}

// CreateOrUpdate upserts the student's internship record. The program may
// only change while the record is still collecting start documents.
func (s *InternshipService) CreateOrUpdate(ctx context.Context, userID uint, req *dto.UpsertInternshipRequest) (*model.Internship, error) {
	if !req.Program.Valid() {
		return nil, ErrInvalidProgram
	}
	if req.CompanyID != nil {
		if _, err := s.companyRepo.GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, fmt.Errorf("checking company: %w", err)
		}
	}

	internship, err := s.internshipRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("getting internship: %w", err)
		}
		internship = &model.Internship{
			UserID:     userID,
			Program:    req.Program,
			Status:     model.StatusSubmitStartFiles,
			CompanyID:  req.CompanyID,
			Department: req.Department,
			Supervisor: req.Supervisor,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
		}
		if err := s.internshipRepo.Create(ctx, internship); err != nil {
			return nil, fmt.Errorf("creating internship: %w", err)
		}
		s.logger.Info("internship created",
			zap.Uint("user_id", userID),
			zap.String("program", string(req.Program)),
		)
		return s.internshipRepo.GetByUserID(ctx, userID)
	}

	if req.Program != internship.Program && internship.Status != model.StatusSubmitStartFiles {
		return nil, ErrProgramLocked
	}

	applyUpsert(internship, req)
	if err := s.internshipRepo.Update(ctx, internship); err != nil {
		return nil, fmt.Errorf("updating internship: %w", err)
	}
	return s.internshipRepo.GetByUserID(ctx, userID)
}

// AdminUpdate updates any internship by ID with the same fields a student
// may set, bypassing the ownership check. The program lock still applies.
func (s *InternshipService) AdminUpdate(ctx context.Context, id uint, req *dto.UpsertInternshipRequest) (*model.Internship, error) {
	if !req.Program.Valid() {
		return nil, ErrInvalidProgram
	}
	if req.CompanyID != nil {
		if _, err := s.companyRepo.GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, fmt.Errorf("checking company: %w", err)
		}
	}

	internship, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Program != internship.Program && internship.Status != model.StatusSubmitStartFiles {
		return nil, ErrProgramLocked
	}

	applyUpsert(internship, req)
	if err := s.internshipRepo.Update(ctx, internship); err != nil {
		return nil, fmt.Errorf("updating internship: %w", err)
	}

	s.logger.Info("internship updated by administrator", zap.Uint("internship_id", id))
	return s.internshipRepo.GetByID(ctx, id)
}

func applyUpsert(internship *model.Internship, req *dto.UpsertInternshipRequest) {
	internship.Program = req.Program
	internship.CompanyID = req.CompanyID
	internship.Department = req.Department
	internship.Supervisor = req.Supervisor
	internship.StartDate = req.StartDate
	internship.EndDate = req.EndDate
}

// GetByUserID returns the student's internship.
func (s *InternshipService) GetByUserID(ctx context.Context, userID uint) (*model.Internship, error) {
	internship, err := s.internshipRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("getting internship: %w", err)
	}
	return internship, nil
}

// GetByID returns an internship by its own ID.
func (s *InternshipService) GetByID(ctx context.Context, id uint) (*model.Internship, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("getting internship: %w", err)
	}
	return internship, nil
}

// reviewPhases maps the statuses a student may request to the document phase
// that must be complete first.
var reviewPhases = map[model.InternshipStatus]model.SubmissionPhase{
	model.StatusPendingReviewStart: model.PhaseStart,
	model.StatusPendingReviewEnd:   model.PhaseEnd,
}

// UpdateStatus moves an internship to a new status. Administrators may set
// any status on any record. The owning student may only move the record into
// a review stage, and only once that phase's document set is complete.
func (s *InternshipService) UpdateStatus(ctx context.Context, actorID uint, isAdmin bool, id uint, newStatus model.InternshipStatus) (*model.Internship, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	internship, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin {
		if internship.UserID != actorID {
			return nil, ErrNotInternshipOwner
		}
		phase, ok := reviewPhases[newStatus]
		if !ok {
			return nil, ErrStatusAdminOnly
		}
		if err := s.checkDocuments(ctx, internship, phase); err != nil {
			return nil, err
		}
	}

	oldStatus := internship.Status
	internship.Status = newStatus
	if err := s.internshipRepo.Update(ctx, internship); err != nil {
		return nil, fmt.Errorf("updating internship status: %w", err)
	}

	s.logger.Info("internship status changed",
		zap.Uint("internship_id", id),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(newStatus)),
		zap.Bool("by_admin", isAdmin),
	)
	return internship, nil
}

// checkDocuments verifies every required document of the phase is on file.
func (s *InternshipService) checkDocuments(ctx context.Context, internship *model.Internship, phase model.SubmissionPhase) error {
	docs, err := s.documentRepo.ListByUser(ctx, internship.UserID, "")
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	submitted := make(map[model.DocumentType]bool, len(docs))
	for _, d := range docs {
		submitted[d.Type] = true
	}

	required := requirements.RequiredTypes(internship.Program, phase)
	var missing []model.DocumentType
	for _, t := range required {
		if !submitted[t] {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		return &MissingDocumentsError{
			Phase:     phase,
			Submitted: len(required) - len(missing),
			Required:  len(required),
			Missing:   missing,
		}
	}
	return nil
}

// Delete removes an internship together with the student's documents, OTP,
// and questionnaire answers. Stored files are removed after the database
// transaction commits.
func (s *InternshipService) Delete(ctx context.Context, id uint) error {
	internship, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	docs, err := s.documentRepo.ListByUser(ctx, internship.UserID, "")
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if err := s.internshipRepo.DeleteCascade(ctx, internship); err != nil {
		return fmt.Errorf("deleting internship: %w", err)
	}

	for _, d := range docs {
		if err := s.store.Remove(d.FilePath); err != nil {
			s.logger.Warn("removing document file failed",
				zap.String("path", d.FilePath),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("internship deleted",
		zap.Uint("internship_id", id),
		zap.Uint("user_id", internship.UserID),
	)
	return nil
}

// List returns internships matching the query with pagination.
func (s *InternshipService) List(ctx context.Context, q *dto.ListInternshipsQuery) ([]model.Internship, int64, error) {
	if q.Program != "" && !q.Program.Valid() {
		return nil, 0, ErrInvalidProgram
	}
	if q.Status != "" && !q.Status.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	internships, total, err := s.internshipRepo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listing internships: %w", err)
	}
	return internships, total, nil
}
