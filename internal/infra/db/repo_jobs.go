package db

import (
	"context"
	"errors"
	"time"

	"jobdesk/internal/domain"

	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error) {
	if r.db == nil {
		return nil, 0, errDBUnavailable
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&JobModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var models []JobModel
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}
	names, err := r.companyNames(ctx, models)
	if err != nil {
		return nil, 0, err
	}
	jobs := make([]domain.Job, 0, len(models))
	for _, model := range models {
		job, err := jobFromModel(model)
		if err != nil {
			return nil, 0, err
		}
		job.CompanyName = names[model.CompanyID]
		jobs = append(jobs, job)
	}
	return jobs, total, nil
}

func (r *JobRepository) GetByID(ctx context.Context, jobID int64) (domain.Job, error) {
	if r.db == nil {
		return domain.Job{}, errDBUnavailable
	}
	var model JobModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Job{}, domain.ErrNotFound
		}
		return domain.Job{}, err
	}
	job, err := jobFromModel(model)
	if err != nil {
		return domain.Job{}, err
	}
	var company CompanyModel
	if err := r.db.WithContext(ctx).First(&company, "id = ?", model.CompanyID).Error; err == nil {
		job.CompanyName = company.Name
	}
	return job, nil
}

func (r *JobRepository) Create(ctx context.Context, job domain.Job) (domain.Job, error) {
	if r.db == nil {
		return domain.Job{}, errDBUnavailable
	}
	model, err := jobToModel(job)
	if err != nil {
		return domain.Job{}, err
	}
	if model.StartDate.IsZero() {
		model.StartDate = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Job{}, err
	}
	created, err := jobFromModel(model)
	if err != nil {
		return domain.Job{}, err
	}
	created.CompanyName = job.CompanyName
	return created, nil
}

func (r *JobRepository) Update(ctx context.Context, jobID int64, update domain.JobUpdate) (domain.Job, error) {
	if r.db == nil {
		return domain.Job{}, errDBUnavailable
	}
	fields := map[string]any{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.SalaryMin != nil {
		fields["salary_min"] = *update.SalaryMin
	}
	if update.SalaryMax != nil {
		fields["salary_max"] = *update.SalaryMax
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.StartDate != nil {
		fields["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		fields["end_date"] = *update.EndDate
	}
	if update.ContractTypes != nil {
		raw, err := toJSON(update.ContractTypes)
		if err != nil {
			return domain.Job{}, err
		}
		fields["contract_types"] = raw
	}
	if update.WorkModes != nil {
		raw, err := toJSON(update.WorkModes)
		if err != nil {
			return domain.Job{}, err
		}
		fields["work_modes"] = raw
	}
	if update.ExperienceLevels != nil {
		raw, err := toJSON(update.ExperienceLevels)
		if err != nil {
			return domain.Job{}, err
		}
		fields["experience_levels"] = raw
	}
	if update.JobTypes != nil {
		raw, err := toJSON(update.JobTypes)
		if err != nil {
			return domain.Job{}, err
		}
		fields["job_types"] = raw
	}
	if update.Requirements != nil {
		raw, err := toJSON(update.Requirements)
		if err != nil {
			return domain.Job{}, err
		}
		fields["requirements"] = raw
	}
	if update.Locations != nil {
		raw, err := toJSON(update.Locations)
		if err != nil {
			return domain.Job{}, err
		}
		fields["locations"] = raw
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(&JobModel{}).Where("id = ?", jobID).Updates(fields).Error; err != nil {
			return domain.Job{}, err
		}
	}
	return r.GetByID(ctx, jobID)
}

func (r *JobRepository) Delete(ctx context.Context, jobID int64) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Delete(&JobModel{}, "id = ?", jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *JobRepository) companyNames(ctx context.Context, models []JobModel) (map[int64]string, error) {
	if len(models) == 0 {
		return map[int64]string{}, nil
	}
	seen := map[int64]bool{}
	ids := make([]int64, 0, len(models))
	for _, model := range models {
		if !seen[model.CompanyID] {
			seen[model.CompanyID] = true
			ids = append(ids, model.CompanyID)
		}
	}
	var companies []CompanyModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&companies).Error; err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(companies))
	for _, company := range companies {
		names[company.ID] = company.Name
	}
	return names, nil
}

func jobToModel(job domain.Job) (JobModel, error) {
	contracts, err := toJSON(job.ContractTypes)
	if err != nil {
		return JobModel{}, err
	}
	modes, err := toJSON(job.WorkModes)
	if err != nil {
		return JobModel{}, err
	}
	levels, err := toJSON(job.ExperienceLevels)
	if err != nil {
		return JobModel{}, err
	}
	types, err := toJSON(job.JobTypes)
	if err != nil {
		return JobModel{}, err
	}
	requirements, err := toJSON(job.Requirements)
	if err != nil {
		return JobModel{}, err
	}
	locations, err := toJSON(job.Locations)
	if err != nil {
		return JobModel{}, err
	}
	return JobModel{
		ID:               job.ID,
		Title:            job.Title,
		SalaryMin:        job.SalaryMin,
		SalaryMax:        job.SalaryMax,
		ContractTypes:    contracts,
		WorkModes:        modes,
		ExperienceLevels: levels,
		JobTypes:         types,
		Description:      job.Description,
		Requirements:     requirements,
		Locations:        locations,
		StartDate:        job.StartDate,
		EndDate:          job.EndDate,
		CompanyID:        job.CompanyID,
	}, nil
}

func jobFromModel(model JobModel) (domain.Job, error) {
	job := domain.Job{
		ID:          model.ID,
		Title:       model.Title,
		SalaryMin:   model.SalaryMin,
		SalaryMax:   model.SalaryMax,
		Description: model.Description,
		StartDate:   model.StartDate,
		EndDate:     model.EndDate,
		CompanyID:   model.CompanyID,
	}
	if err := fromJSON(model.ContractTypes, &job.ContractTypes); err != nil {
		return domain.Job{}, err
	}
	if err := fromJSON(model.WorkModes, &job.WorkModes); err != nil {
		return domain.Job{}, err
	}
	if err := fromJSON(model.ExperienceLevels, &job.ExperienceLevels); err != nil {
		return domain.Job{}, err
	}
	if err := fromJSON(model.JobTypes, &job.JobTypes); err != nil {
		return domain.Job{}, err
	}
	if err := fromJSON(model.Requirements, &job.Requirements); err != nil {
		return domain.Job{}, err
	}
	if err := fromJSON(model.Locations, &job.Locations); err != nil {
		return domain.Job{}, err
	}
	return job, nil
}
