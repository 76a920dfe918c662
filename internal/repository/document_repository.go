package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/model"
)

// DocumentRepository data access for dikaiologitika.
type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Dikaiologitiko) error
	GetByID(ctx context.Context, id uint) (*model.Dikaiologitiko, error)
	GetByUserAndType(ctx context.Context, userID uint, docType model.DocumentType) (*model.Dikaiologitiko, error)
	// ListByUser returns a user's documents, optionally restricted to one
	// type. An empty docType means no filter.
	ListByUser(ctx context.Context, userID uint, docType model.DocumentType) ([]model.Dikaiologitiko, error)
	// ListAll returns every submitted document, optionally restricted to one
	// type, with the owning user preloaded.
	ListAll(ctx context.Context, docType model.DocumentType) ([]model.Dikaiologitiko, error)
	Update(ctx context.Context, doc *model.Dikaiologitiko) error
	Delete(ctx context.Context, id uint) error
}

type gormDocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a GORM-backed document repository.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &gormDocumentRepository{db: db}
}

func (r *gormDocumentRepository) Create(ctx context.Context, doc *model.Dikaiologitiko) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *gormDocumentRepository) GetByID(ctx context.Context, id uint) (*model.Dikaiologitiko, error) {
	var doc model.Dikaiologitiko
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *gormDocumentRepository) GetByUserAndType(ctx context.Context, userID uint, docType model.DocumentType) (*model.Dikaiologitiko, error) {
	var doc model.Dikaiologitiko
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, docType).
		First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *gormDocumentRepository) ListByUser(ctx context.Context, userID uint, docType model.DocumentType) ([]model.Dikaiologitiko, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if docType != "" {
		query = query.Where("type = ?", docType)
	}

	var docs []model.Dikaiologitiko
	if err := query.Order("submission_time").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *gormDocumentRepository) ListAll(ctx context.Context, docType model.DocumentType) ([]model.Dikaiologitiko, error) {
	query := r.db.WithContext(ctx).Preload("User")
	if docType != "" {
		query = query.Where("type = ?", docType)
	}

	var docs []model.Dikaiologitiko
	if err := query.Order("submission_time").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *gormDocumentRepository) Update(ctx context.Context, doc *model.Dikaiologitiko) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

func (r *gormDocumentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Dikaiologitiko{}, id).Error
}
