package repos

import (
	"context"
	"testing"

	apperrors "github.com/stackmart/marketplace-backend/internal/pkg/errors"
	"github.com/stackmart/marketplace-backend/internal/repos/testutil"
	"github.com/stackmart/marketplace-backend/internal/types"
)

func TestCustomerRepoCRUD(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewCustomerRepo(db, testutil.Logger(t))

	c := &types.Customer{FirstName: "John", LastName: "Doe", Email: "john@x.com", Age: 25}
	if err := repo.Create(ctx, nil, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("Create did not assign an id")
	}

	got, err := repo.GetByID(ctx, nil, c.ID)
	if err != nil || got == nil || got.Email != "john@x.com" {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}

	if got, err := repo.GetByID(ctx, nil, 9999); err != nil || got != nil {
		t.Fatalf("GetByID missing: got=%v err=%v", got, err)
	}

	byEmail, err := repo.GetByEmail(ctx, nil, "john@x.com")
	if err != nil || byEmail == nil || byEmail.ID != c.ID {
		t.Fatalf("GetByEmail: got=%v err=%v", byEmail, err)
	}
	if byEmail, err := repo.GetByEmail(ctx, nil, "nobody@x.com"); err != nil || byEmail != nil {
		t.Fatalf("GetByEmail missing: got=%v err=%v", byEmail, err)
	}

	if exists, err := repo.ExistsByID(ctx, nil, c.ID); err != nil || !exists {
		t.Fatalf("ExistsByID: exists=%v err=%v", exists, err)
	}

	all, err := repo.GetAll(ctx, nil)
	if err != nil || len(all) != 1 {
		t.Fatalf("GetAll: len=%d err=%v", len(all), err)
	}

	if err := repo.DeleteByID(ctx, nil, c.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if exists, _ := repo.ExistsByID(ctx, nil, c.ID); exists {
		t.Fatal("customer still exists after delete")
	}
}

func TestCustomerRepoDuplicateEmail(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewCustomerRepo(db, testutil.Logger(t))

	testutil.SeedCustomer(t, ctx, db, "john@x.com")
	dup := &types.Customer{FirstName: "Jane", LastName: "Doe", Email: "john@x.com", Age: 30}
	err := repo.Create(ctx, nil, dup)
	if !apperrors.IsConflict(err) {
		t.Fatalf("expected conflict on duplicate email, got %v", err)
	}
}

func TestCustomerRepoStaleVersion(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewCustomerRepo(db, testutil.Logger(t))

	c := testutil.SeedCustomer(t, ctx, db, "john@x.com")
	stale := *c

	c.Age = 26
	if err := repo.Update(ctx, nil, c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if c.Version != stale.Version+1 {
		t.Fatalf("version not bumped: %d", c.Version)
	}

	stale.Age = 99
	err := repo.Update(ctx, nil, &stale)
	if !apperrors.IsConflict(err) {
		t.Fatalf("expected conflict on stale write, got %v", err)
	}

	got, err := repo.GetByID(ctx, nil, c.ID)
	if err != nil || got == nil || got.Age != 26 {
		t.Fatalf("stale write leaked through: got=%+v err=%v", got, err)
	}
}
