package usecase

import (
	"context"
	"errors"
	"testing"

	"jobdesk/internal/domain"
)

func seedCompany(t *testing.T, companies *fakeCompanyRepo, owner domain.User, name string) domain.Company {
	t.Helper()
	company, err := companies.CreateWithOwner(context.Background(), domain.Company{Name: name}, owner.ID)
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return company
}

func TestJobService_CreateByMember(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	svc := NewJobService(jobs, companies)
	owner := domain.User{ID: 1}
	company := seedCompany(t, companies, owner, "Acme")

	job, err := svc.Create(context.Background(), owner, domain.Job{
		Title:         "Backend Engineer",
		CompanyID:     company.ID,
		ContractTypes: []domain.ContractType{domain.ContractB2B},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.ID == 0 {
		t.Fatal("expected job id")
	}
	if job.CompanyName != "Acme" {
		t.Fatalf("expected company name on job, got %q", job.CompanyName)
	}
}

func TestJobService_CreateForUnknownCompanyIs404(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	svc := NewJobService(jobs, companies)

	_, err := svc.Create(context.Background(), domain.User{ID: 1}, domain.Job{Title: "x", CompanyID: 999})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if jobs.creates != 0 {
		t.Fatal("no job row may be written for an unknown company")
	}
}

func TestJobService_CreateByNonMemberIs403AndWritesNothing(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	svc := NewJobService(jobs, companies)
	owner := domain.User{ID: 1}
	outsider := domain.User{ID: 2}
	company := seedCompany(t, companies, owner, "Acme")

	_, err := svc.Create(context.Background(), outsider, domain.Job{Title: "x", CompanyID: company.ID})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if jobs.creates != 0 {
		t.Fatal("forbidden create must not write")
	}
}

func TestJobService_UpdateChecksMembershipOfOwningCompany(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	svc := NewJobService(jobs, companies)
	owner := domain.User{ID: 1}
	outsider := domain.User{ID: 2}
	company := seedCompany(t, companies, owner, "Acme")

	job, err := svc.Create(context.Background(), owner, domain.Job{Title: "Backend Engineer", CompanyID: company.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Senior Backend Engineer"
	if _, err := svc.Update(context.Background(), owner, job.ID, domain.JobUpdate{Title: &title}); err != nil {
		t.Fatalf("member update: %v", err)
	}

	_, err = svc.Update(context.Background(), outsider, job.ID, domain.JobUpdate{Title: &title})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if jobs.updates != 1 {
		t.Fatalf("forbidden update must not write, got %d updates", jobs.updates)
	}
}

func TestJobService_DeleteChecksMembershipOfOwningCompany(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	svc := NewJobService(jobs, companies)
	owner := domain.User{ID: 1}
	outsider := domain.User{ID: 2}
	company := seedCompany(t, companies, owner, "Acme")

	job, err := svc.Create(context.Background(), owner, domain.Job{Title: "Backend Engineer", CompanyID: company.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), outsider, job.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), owner, job.ID); err != nil {
		t.Fatalf("member delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), job.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestJobService_GetUnknownJobIs404(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), newFakeCompanyRepo())
	if _, err := svc.Get(context.Background(), 12345); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
