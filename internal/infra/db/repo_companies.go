package db

import (
	"context"
	"errors"

	"jobdesk/internal/domain"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) List(ctx context.Context, offset, limit int) ([]domain.Company, int64, error) {
	if r.db == nil {
		return nil, 0, errDBUnavailable
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&CompanyModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var models []CompanyModel
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}
	companies := make([]domain.Company, 0, len(models))
	for _, model := range models {
		companies = append(companies, companyFromModel(model))
	}
	return companies, total, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, companyID int64) (domain.Company, error) {
	if r.db == nil {
		return domain.Company{}, errDBUnavailable
	}
	var model CompanyModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", companyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Company{}, domain.ErrNotFound
		}
		return domain.Company{}, err
	}
	return companyFromModel(model), nil
}

// CreateWithOwner inserts the company and attaches the creating user
// as its first member in one transaction.
func (r *CompanyRepository) CreateWithOwner(ctx context.Context, company domain.Company, ownerID int64) (domain.Company, error) {
	if r.db == nil {
		return domain.Company{}, errDBUnavailable
	}
	model := CompanyModel{
		Name:        company.Name,
		Description: company.Description,
		LogoURL:     company.LogoURL,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model).Error; err != nil {
			return err
		}
		return tx.Create(&MembershipModel{UserID: ownerID, CompanyID: model.ID}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Company{}, domain.ErrConflict
		}
		return domain.Company{}, err
	}
	return companyFromModel(model), nil
}

func (r *CompanyRepository) Update(ctx context.Context, companyID int64, update domain.CompanyUpdate) (domain.Company, error) {
	if r.db == nil {
		return domain.Company{}, errDBUnavailable
	}
	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.LogoURL != nil {
		fields["logo_url"] = *update.LogoURL
	}
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).Model(&CompanyModel{}).Where("id = ?", companyID).Updates(fields)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return domain.Company{}, domain.ErrConflict
			}
			return domain.Company{}, result.Error
		}
	}
	return r.GetByID(ctx, companyID)
}

// Delete removes the company together with its jobs and memberships so
// no dangling rows survive the write.
func (r *CompanyRepository) Delete(ctx context.Context, companyID int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", companyID).Delete(&JobModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", companyID).Delete(&MembershipModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&CompanyModel{}, "id = ?", companyID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// IsMember is the single membership predicate both the company and job
// authorization paths consume.
func (r *CompanyRepository) IsMember(ctx context.Context, userID, companyID int64) (bool, error) {
	if r.db == nil {
		return false, errDBUnavailable
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&MembershipModel{}).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func companyFromModel(model CompanyModel) domain.Company {
	return domain.Company{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		LogoURL:     model.LogoURL,
	}
}
