package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobdesk/internal/domain"
)

type JobService struct {
	Jobs      JobRepository
	Companies CompanyRepository
}

func NewJobService(jobs JobRepository, companies CompanyRepository) *JobService {
	return &JobService{Jobs: jobs, Companies: companies}
}

func (s *JobService) List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error) {
	if s == nil || s.Jobs == nil {
		return nil, 0, fmt.Errorf("job service not configured")
	}
	return s.Jobs.List(ctx, offset, limit)
}

func (s *JobService) Get(ctx context.Context, jobID int64) (domain.Job, error) {
	if s == nil || s.Jobs == nil {
		return domain.Job{}, fmt.Errorf("job service not configured")
	}
	return s.Jobs.GetByID(ctx, jobID)
}

// Create checks that the target company exists before checking
// membership, so an unknown company reads as 404 and a foreign one as
// 403. Both checks run before any row is written.
func (s *JobService) Create(ctx context.Context, actor domain.User, job domain.Job) (domain.Job, error) {
	if s == nil || s.Jobs == nil || s.Companies == nil {
		return domain.Job{}, fmt.Errorf("job service not configured")
	}
	company, err := s.Companies.GetByID(ctx, job.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Job{}, domain.ErrNotFound
		}
		return domain.Job{}, err
	}
	if err := s.requireMember(ctx, actor, company.ID); err != nil {
		return domain.Job{}, err
	}
	job.CompanyName = company.Name
	return s.Jobs.Create(ctx, job)
}

func (s *JobService) Update(ctx context.Context, actor domain.User, jobID int64, update domain.JobUpdate) (domain.Job, error) {
	if s == nil || s.Jobs == nil || s.Companies == nil {
		return domain.Job{}, fmt.Errorf("job service not configured")
	}
	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return domain.Job{}, err
	}
	if err := s.requireMember(ctx, actor, job.CompanyID); err != nil {
		return domain.Job{}, err
	}
	return s.Jobs.Update(ctx, jobID, update)
}

func (s *JobService) Delete(ctx context.Context, actor domain.User, jobID int64) error {
	if s == nil || s.Jobs == nil || s.Companies == nil {
		return fmt.Errorf("job service not configured")
	}
	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if err := s.requireMember(ctx, actor, job.CompanyID); err != nil {
		return err
	}
	return s.Jobs.Delete(ctx, jobID)
}

func (s *JobService) requireMember(ctx context.Context, actor domain.User, companyID int64) error {
	member, err := s.Companies.IsMember(ctx, actor.ID, companyID)
	if err != nil {
		return err
	}
	if !member {
		return domain.ErrForbidden
	}
	return nil
}
