package service

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/repository"
	"github.com/michaeltheo/placements-backend/internal/requirements"
	"github.com/michaeltheo/placements-backend/internal/storage"
)

var (
	ErrDocumentNotFound    = errors.New("το δικαιολογητικό δεν βρέθηκε")
	ErrDocumentExists      = errors.New("υπάρχει ήδη δικαιολογητικό αυτού του τύπου")
	ErrInvalidDocumentType = errors.New("μη έγκυρος τύπος δικαιολογητικού")
	ErrDocumentNotAccepted = errors.New("το πρόγραμμα δεν δέχεται αυτόν τον τύπο δικαιολογητικού")
	ErrInvalidFileType     = errors.New("επιτρέπονται μόνο αρχεία PDF")
	ErrInvalidPhase        = errors.New("μη έγκυρη φάση υποβολής")
	ErrNotDocumentOwner    = errors.New("το δικαιολογητικό ανήκει σε άλλον χρήστη")
)

// maxDocumentSize caps uploaded files at 10 MB.
const maxDocumentSize = 10 << 20

// DocumentService manages dikaiologitika uploads and retrieval.
type DocumentService struct {
	documentRepo   repository.DocumentRepository
	internshipRepo repository.InternshipRepository
	store          *storage.LocalStore
	logger         *zap.Logger
}

// NewDocumentService creates the document service.
func NewDocumentService(
	documentRepo repository.DocumentRepository,
	internshipRepo repository.InternshipRepository,
	store *storage.LocalStore,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		documentRepo:   documentRepo,
		internshipRepo: internshipRepo,
		store:          store,
		logger:         logger,
	}
}

// Upload stores a new document for the student. Uploading a type that is
// already on file is rejected; corrections go through Replace. An empty
// phase is derived from the program's requirement table.
func (s *DocumentService) Upload(ctx context.Context, userID uint, docType model.DocumentType, phase model.SubmissionPhase, file *multipart.FileHeader) (*model.Dikaiologitiko, error) {
	internship, err := s.requireInternship(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.validateUpload(internship, docType, file); err != nil {
		return nil, err
	}

	if phase == "" {
		derived, ok := requirements.DeterminePhase(internship.Program, docType)
		if !ok {
			return nil, ErrDocumentNotAccepted
		}
		phase = derived
	} else if !phase.Valid() {
		return nil, ErrInvalidPhase
	}

	if _, err := s.documentRepo.GetByUserAndType(ctx, userID, docType); err == nil {
		return nil, ErrDocumentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing document: %w", err)
	}

	path, err := s.saveFile(userID, docType, file)
	if err != nil {
		return nil, err
	}

	doc := &model.Dikaiologitiko{
		UserID:         userID,
		Type:           docType,
		FileName:       filepath.Base(file.Filename),
		FilePath:       path,
		Phase:          phase,
		SubmissionTime: time.Now(),
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		s.store.Remove(path)
		return nil, fmt.Errorf("creating document record: %w", err)
	}

	s.logger.Info("document uploaded",
		zap.Uint("user_id", userID),
		zap.String("type", string(docType)),
	)
	return doc, nil
}

// Replace swaps the stored file of an existing document.
func (s *DocumentService) Replace(ctx context.Context, userID uint, docID uint, file *multipart.FileHeader) (*model.Dikaiologitiko, error) {
	doc, err := s.getOwned(ctx, userID, docID)
	if err != nil {
		return nil, err
	}

	internship, err := s.requireInternship(ctx, doc.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.validateUpload(internship, doc.Type, file); err != nil {
		return nil, err
	}

	oldPath := doc.FilePath
	path, err := s.saveFile(doc.UserID, doc.Type, file)
	if err != nil {
		return nil, err
	}

	doc.FileName = filepath.Base(file.Filename)
	doc.FilePath = path
	doc.SubmissionTime = time.Now()
	if err := s.documentRepo.Update(ctx, doc); err != nil {
		s.store.Remove(path)
		return nil, fmt.Errorf("updating document record: %w", err)
	}

	if oldPath != path {
		if err := s.store.Remove(oldPath); err != nil {
			s.logger.Warn("removing replaced file failed", zap.String("path", oldPath), zap.Error(err))
		}
	}

	s.logger.Info("document replaced",
		zap.Uint("document_id", doc.ID),
		zap.String("type", string(doc.Type)),
	)
	return doc, nil
}

// ListByUser returns the student's documents, optionally restricted to one
// type.
func (s *DocumentService) ListByUser(ctx context.Context, userID uint, docType model.DocumentType) ([]model.Dikaiologitiko, error) {
	if docType != "" && !docType.Valid() {
		return nil, ErrInvalidDocumentType
	}
	docs, err := s.documentRepo.ListByUser(ctx, userID, docType)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return docs, nil
}

// ListAll returns every submitted document for the back office, optionally
// restricted to one type.
func (s *DocumentService) ListAll(ctx context.Context, docType model.DocumentType) ([]model.Dikaiologitiko, error) {
	if docType != "" && !docType.Valid() {
		return nil, ErrInvalidDocumentType
	}
	docs, err := s.documentRepo.ListAll(ctx, docType)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return docs, nil
}

// Requirements returns a program's ordered document checklist.
func (s *DocumentService) Requirements(program model.InternshipProgram) ([]dto.DocumentRequirement, error) {
	if !program.Valid() {
		return nil, ErrInvalidProgram
	}
	reqs := requirements.Requirements(program)
	out := make([]dto.DocumentRequirement, len(reqs))
	for i, r := range reqs {
		out[i] = dto.DocumentRequirement{
			Type:            r.Type,
			Description:     r.Description,
			SubmissionPhase: r.Phase,
		}
	}
	return out, nil
}

// Progress reports the submitted versus required documents for one phase of
// the student's internship.
func (s *DocumentService) Progress(ctx context.Context, userID uint, phase model.SubmissionPhase) (*dto.DocumentProgress, error) {
	internship, err := s.requireInternship(ctx, userID)
	if err != nil {
		return nil, err
	}

	docs, err := s.documentRepo.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	required := requirements.RequiredTypes(internship.Program, phase)
	onFile := make(map[model.DocumentType]bool, len(docs))
	var submitted []model.Dikaiologitiko
	for _, d := range docs {
		onFile[d.Type] = true
	}
	for _, d := range docs {
		for _, t := range required {
			if d.Type == t {
				submitted = append(submitted, d)
				break
			}
		}
	}

	missing := []model.DocumentType{}
	for _, t := range required {
		if !onFile[t] {
			missing = append(missing, t)
		}
	}

	return &dto.DocumentProgress{
		Phase:     phase,
		Required:  required,
		Submitted: dto.ToDikaiologitikoResponses(submitted),
		Missing:   missing,
		Complete:  len(missing) == 0,
	}, nil
}

// Open returns the stored file of a document for download, enforcing
// ownership unless the caller is administrative.
func (s *DocumentService) Open(ctx context.Context, userID uint, isAdmin bool, docID uint) (*model.Dikaiologitiko, *os.File, error) {
	doc, err := s.documentRepo.GetByID(ctx, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrDocumentNotFound
		}
		return nil, nil, fmt.Errorf("getting document: %w", err)
	}
	if !isAdmin && doc.UserID != userID {
		return nil, nil, ErrNotDocumentOwner
	}

	f, err := s.store.Open(doc.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening document file: %w", err)
	}
	return doc, f, nil
}

// WriteArchive streams a ZIP of all the student's documents, each entry named
// by its type.
func (s *DocumentService) WriteArchive(ctx context.Context, userID uint, w io.Writer) error {
	docs, err := s.documentRepo.ListByUser(ctx, userID, "")
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}
	if len(docs) == 0 {
		return ErrDocumentNotFound
	}

	zw := zip.NewWriter(w)
	for _, d := range docs {
		f, err := s.store.Open(d.FilePath)
		if err != nil {
			s.logger.Warn("skipping missing file in archive",
				zap.String("path", d.FilePath),
				zap.Error(err),
			)
			continue
		}
		entry, err := zw.Create(string(d.Type) + "_" + d.FileName)
		if err != nil {
			f.Close()
			return fmt.Errorf("creating archive entry: %w", err)
		}
		if _, err := io.Copy(entry, f); err != nil {
			f.Close()
			return fmt.Errorf("writing archive entry: %w", err)
		}
		f.Close()
	}
	return zw.Close()
}

// Delete removes a document and its stored file.
func (s *DocumentService) Delete(ctx context.Context, userID uint, isAdmin bool, docID uint) error {
	doc, err := s.documentRepo.GetByID(ctx, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("getting document: %w", err)
	}
	if !isAdmin && doc.UserID != userID {
		return ErrNotDocumentOwner
	}

	if err := s.documentRepo.Delete(ctx, doc.ID); err != nil {
		return fmt.Errorf("deleting document record: %w", err)
	}
	if err := s.store.Remove(doc.FilePath); err != nil {
		s.logger.Warn("removing document file failed", zap.String("path", doc.FilePath), zap.Error(err))
	}

	s.logger.Info("document deleted",
		zap.Uint("document_id", doc.ID),
		zap.String("type", string(doc.Type)),
	)
	return nil
}

// ── helpers ──

func (s *DocumentService) requireInternship(ctx context.Context, userID uint) (*model.Internship, error) {
	internship, err := s.internshipRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("getting internship: %w", err)
	}
	return internship, nil
}

func (s *DocumentService) validateUpload(internship *model.Internship, docType model.DocumentType, file *multipart.FileHeader) error {
	if !docType.Valid() {
		return ErrInvalidDocumentType
	}
	if !requirements.Accepts(internship.Program, docType) {
		return ErrDocumentNotAccepted
	}
	if file.Header.Get("Content-Type") != "application/pdf" {
		return ErrInvalidFileType
	}
	if file.Size > maxDocumentSize {
		return ErrInvalidFileType
	}
	return nil
}

func (s *DocumentService) saveFile(userID uint, docType model.DocumentType, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	path, err := s.store.Save(userID, string(docType), file.Filename, src)
	if err != nil {
		return "", fmt.Errorf("storing file: %w", err)
	}
	return path, nil
}

func (s *DocumentService) getOwned(ctx context.Context, userID, docID uint) (*model.Dikaiologitiko, error) {
	doc, err := s.documentRepo.GetByID(ctx, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}
	if doc.UserID != userID {
		return nil, ErrNotDocumentOwner
	}
	return doc, nil
}
