package usecase

import (
	"context"

	"jobdesk/internal/domain"
)

type UserRepository interface {
	GetOrCreate(ctx context.Context, identity domain.Identity) (domain.User, error)
}

type CompanyRepository interface {
	List(ctx context.Context, offset, limit int) ([]domain.Company, int64, error)
	GetByID(ctx context.Context, companyID int64) (domain.Company, error)
	CreateWithOwner(ctx context.Context, company domain.Company, ownerID int64) (domain.Company, error)
	Update(ctx context.Context, companyID int64, update domain.CompanyUpdate) (domain.Company, error)
	Delete(ctx context.Context, companyID int64) error
	IsMember(ctx context.Context, userID, companyID int64) (bool, error)
}

type JobRepository interface {
	List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error)
	GetByID(ctx context.Context, jobID int64) (domain.Job, error)
	Create(ctx context.Context, job domain.Job) (domain.Job, error)
	Update(ctx context.Context, jobID int64, update domain.JobUpdate) (domain.Job, error)
	Delete(ctx context.Context, jobID int64) error
}
