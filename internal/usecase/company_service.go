package usecase

import (
	"context"
	"fmt"

	"jobdesk/internal/domain"
)

type CompanyService struct {
	Companies CompanyRepository
}

func NewCompanyService(companies CompanyRepository) *CompanyService {
	return &CompanyService{Companies: companies}
}

func (s *CompanyService) List(ctx context.Context, offset, limit int) ([]domain.Company, int64, error) {
	if s == nil || s.Companies == nil {
		return nil, 0, fmt.Errorf("company service not configured")
	}
	return s.Companies.List(ctx, offset, limit)
}

func (s *CompanyService) Get(ctx context.Context, companyID int64) (domain.Company, error) {
	if s == nil || s.Companies == nil {
		return domain.Company{}, fmt.Errorf("company service not configured")
	}
	return s.Companies.GetByID(ctx, companyID)
}

// Create is open to any authenticated user; the creator becomes the
// company's first member in the same write.
func (s *CompanyService) Create(ctx context.Context, actor domain.User, company domain.Company) (domain.Company, error) {
	if s == nil || s.Companies == nil {
		return domain.Company{}, fmt.Errorf("company service not configured")
	}
	return s.Companies.CreateWithOwner(ctx, company, actor.ID)
}

func (s *CompanyService) Update(ctx context.Context, actor domain.User, companyID int64, update domain.CompanyUpdate) (domain.Company, error) {
	if s == nil || s.Companies == nil {
		return domain.Company{}, fmt.Errorf("company service not configured")
	}
	if _, err := s.Companies.GetByID(ctx, companyID); err != nil {
		return domain.Company{}, err
	}
	if err := s.requireMember(ctx, actor, companyID); err != nil {
		return domain.Company{}, err
	}
	return s.Companies.Update(ctx, companyID, update)
}

func (s *CompanyService) Delete(ctx context.Context, actor domain.User, companyID int64) error {
	if s == nil || s.Companies == nil {
		return fmt.Errorf("company service not configured")
	}
	if _, err := s.Companies.GetByID(ctx, companyID); err != nil {
		return err
	}
	if err := s.requireMember(ctx, actor, companyID); err != nil {
		return err
	}
	return s.Companies.Delete(ctx, companyID)
}

func (s *CompanyService) requireMember(ctx context.Context, actor domain.User, companyID int64) error {
	member, err := s.Companies.IsMember(ctx, actor.ID, companyID)
	if err != nil {
		return err
	}
	if !member {
		return domain.ErrForbidden
	}
	return nil
}
