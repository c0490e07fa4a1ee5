package usecase

import (
	"context"
	"errors"
	"testing"

	"jobdesk/internal/domain"
)

func TestCompanyService_CreateMakesCreatorMember(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	actor := domain.User{ID: 7}

	company, err := svc.Create(context.Background(), actor, domain.Company{Name: "Acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	member, err := repo.IsMember(context.Background(), actor.ID, company.ID)
	if err != nil {
		t.Fatalf("is member: %v", err)
	}
	if !member {
		t.Fatal("creator should be a member of the new company")
	}
}

func TestCompanyService_CreateDuplicateNameConflicts(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	actor := domain.User{ID: 7}

	if _, err := svc.Create(context.Background(), actor, domain.Company{Name: "Acme"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), actor, domain.Company{Name: "Acme"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCompanyService_UpdateRequiresMembership(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	owner := domain.User{ID: 1}
	outsider := domain.User{ID: 2}

	company, err := svc.Create(context.Background(), owner, domain.Company{Name: "Acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Acme Corp"
	if _, err := svc.Update(context.Background(), owner, company.ID, domain.CompanyUpdate{Name: &name}); err != nil {
		t.Fatalf("owner update: %v", err)
	}

	_, err = svc.Update(context.Background(), outsider, company.ID, domain.CompanyUpdate{Name: &name})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.updates != 1 {
		t.Fatalf("forbidden update must not write, got %d updates", repo.updates)
	}
}

func TestCompanyService_UpdateUnknownCompanyIs404BeforeMembership(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	name := "Acme"

	_, err := svc.Update(context.Background(), domain.User{ID: 1}, 999, domain.CompanyUpdate{Name: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompanyService_DeleteRequiresMembership(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	owner := domain.User{ID: 1}
	outsider := domain.User{ID: 2}

	company, err := svc.Create(context.Background(), owner, domain.Company{Name: "Acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), outsider, company.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.deletes != 0 {
		t.Fatal("forbidden delete must not write")
	}

	if err := svc.Delete(context.Background(), owner, company.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), company.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCompanyService_SecondMemberCanManage(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	owner := domain.User{ID: 1}
	colleague := domain.User{ID: 2}

	company, err := svc.Create(context.Background(), owner, domain.Company{Name: "Acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	repo.addMember(colleague.ID, company.ID)

	desc := "hiring"
	if _, err := svc.Update(context.Background(), colleague, company.ID, domain.CompanyUpdate{Description: &desc}); err != nil {
		t.Fatalf("member update: %v", err)
	}
}
