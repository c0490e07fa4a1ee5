package usecase

import (
	"context"
	"sync"

	"jobdesk/internal/domain"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	nextID  int64
	bySub   map[string]domain.User
	creates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{bySub: map[string]domain.User{}}
}

func (r *fakeUserRepo) GetOrCreate(ctx context.Context, identity domain.Identity) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.bySub[identity.Subject]; ok {
		return user, nil
	}
	r.nextID++
	r.creates++
	user := domain.User{
		ID:       r.nextID,
		GoogleID: identity.Subject,
		Email:    identity.Email,
		Name:     identity.Name,
	}
	r.bySub[identity.Subject] = user
	return user, nil
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	nextID    int64
	companies map[int64]domain.Company
	members   map[[2]int64]bool
	updates   int
	deletes   int
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		companies: map[int64]domain.Company{},
		members:   map[[2]int64]bool{},
	}
}

func (r *fakeCompanyRepo) List(ctx context.Context, offset, limit int) ([]domain.Company, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Company, 0, len(r.companies))
	for id := int64(1); id <= r.nextID; id++ {
		if company, ok := r.companies[id]; ok {
			out = append(out, company)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeCompanyRepo) GetByID(ctx context.Context, companyID int64) (domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	company, ok := r.companies[companyID]
	if !ok {
		return domain.Company{}, domain.ErrNotFound
	}
	return company, nil
}

func (r *fakeCompanyRepo) CreateWithOwner(ctx context.Context, company domain.Company, ownerID int64) (domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.companies {
		if existing.Name == company.Name {
			return domain.Company{}, domain.ErrConflict
		}
	}
	r.nextID++
	company.ID = r.nextID
	r.companies[company.ID] = company
	r.members[[2]int64{ownerID, company.ID}] = true
	return company, nil
}

func (r *fakeCompanyRepo) Update(ctx context.Context, companyID int64, update domain.CompanyUpdate) (domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	company, ok := r.companies[companyID]
	if !ok {
		return domain.Company{}, domain.ErrNotFound
	}
	if update.Name != nil {
		company.Name = *update.Name
	}
	if update.Description != nil {
		company.Description = *update.Description
	}
	if update.LogoURL != nil {
		company.LogoURL = *update.LogoURL
	}
	r.companies[companyID] = company
	r.updates++
	return company, nil
}

func (r *fakeCompanyRepo) Delete(ctx context.Context, companyID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[companyID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.companies, companyID)
	for key := range r.members {
		if key[1] == companyID {
			delete(r.members, key)
		}
	}
	r.deletes++
	return nil
}

func (r *fakeCompanyRepo) IsMember(ctx context.Context, userID, companyID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.members[[2]int64{userID, companyID}], nil
}

func (r *fakeCompanyRepo) addMember(userID, companyID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[[2]int64{userID, companyID}] = true
}

type fakeJobRepo struct {
	mu      sync.Mutex
	nextID  int64
	jobs    map[int64]domain.Job
	creates int
	updates int
	deletes int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[int64]domain.Job{}}
}

func (r *fakeJobRepo) List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Job, 0, len(r.jobs))
	for id := int64(1); id <= r.nextID; id++ {
		if job, ok := r.jobs[id]; ok {
			out = append(out, job)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, jobID int64) (domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return domain.Job{}, domain.ErrNotFound
	}
	return job, nil
}

func (r *fakeJobRepo) Create(ctx context.Context, job domain.Job) (domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	job.ID = r.nextID
	r.jobs[job.ID] = job
	r.creates++
	return job, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, jobID int64, update domain.JobUpdate) (domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return domain.Job{}, domain.ErrNotFound
	}
	if update.Title != nil {
		job.Title = *update.Title
	}
	if update.Description != nil {
		job.Description = *update.Description
	}
	r.jobs[jobID] = job
	r.updates++
	return job, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, jobID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[jobID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.jobs, jobID)
	r.deletes++
	return nil
}
