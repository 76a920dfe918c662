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
)

var (
	ErrCompanyNotFound = errors.New("η εταιρεία δεν βρέθηκε")
	ErrCompanyExists   = errors.New("υπάρχει ήδη εταιρεία με αυτό το ΑΦΜ")
)

// CompanyService manages host companies.
type CompanyService struct {
	companyRepo repository.CompanyRepository
	logger      *zap.Logger
}

// NewCompanyService creates the company service.
func NewCompanyService(companyRepo repository.CompanyRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{companyRepo: companyRepo, logger: logger}
}

// Create registers a company. AFM is the dedup key.
func (s *CompanyService) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*model.Company, error) {
	if _, err := s.companyRepo.GetByAFM(ctx, req.AFM); err == nil {
		return nil, ErrCompanyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking company AFM: %w", err)
	}

	company := &model.Company{
		Name:      req.Name,
		AFM:       req.AFM,
		Email:     req.Email,
		Telephone: req.Telephone,
		City:      req.City,
		Address:   req.Address,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("creating company: %w", err)
	}

	s.logger.Info("company created",
		zap.Uint("company_id", company.ID),
		zap.String("afm", company.AFM),
	)
	return company, nil
}

// GetByID returns a company by ID.
func (s *CompanyService) GetByID(ctx context.Context, id uint) (*model.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("getting company: %w", err)
	}
	return company, nil
}

// Update edits a company. AFM is immutable.
func (s *CompanyService) Update(ctx context.Context, id uint, req *dto.UpdateCompanyRequest) (*model.Company, error) {
	company, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Email != "" {
		company.Email = req.Email
	}
	if req.Telephone != "" {
		company.Telephone = req.Telephone
	}
	if req.City != "" {
		company.City = req.City
	}
	if req.Address != "" {
		company.Address = req.Address
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("updating company: %w", err)
	}
	return company, nil
}

// Delete removes a company.
func (s *CompanyService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}
	s.logger.Info("company deleted", zap.Uint("company_id", id))
	return nil
}

// List returns companies matching the query with pagination.
func (s *CompanyService) List(ctx context.Context, q *dto.ListCompaniesQuery) ([]model.Company, int64, error) {
	companies, total, err := s.companyRepo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listing companies: %w", err)
	}
	return companies, total, nil
}
