package repos

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "github.com/stackmart/marketplace-backend/internal/pkg/errors"
	"github.com/stackmart/marketplace-backend/internal/repos/testutil"
	"github.com/stackmart/marketplace-backend/internal/types"
)

func TestProductRepoGetByIDsReturnsExistingSubset(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewProductRepo(db, testutil.Logger(t))

	a := testutil.SeedProduct(t, ctx, db, "A", "10")
	b := testutil.SeedProduct(t, ctx, db, "B", "20")

	got, err := repo.GetByIDs(ctx, nil, []int64{a.ID, b.ID, 999})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected the existing subset of 2, got %d", len(got))
	}

	if got, err := repo.GetByIDs(ctx, nil, nil); err != nil || len(got) != 0 {
		t.Fatalf("GetByIDs empty input: len=%d err=%v", len(got), err)
	}
}

func TestProductRepoUniqueName(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewProductRepo(db, testutil.Logger(t))

	testutil.SeedProduct(t, ctx, db, "A", "10")
	err := repo.Create(ctx, nil, &types.Product{ProductName: "A", Price: decimal.RequireFromString("20")})
	if !apperrors.IsConflict(err) {
		t.Fatalf("expected conflict on duplicate name, got %v", err)
	}
}

func TestProductRepoByName(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewProductRepo(db, testutil.Logger(t))

	a := testutil.SeedProduct(t, ctx, db, "A", "10")
	got, err := repo.GetByName(ctx, nil, "A")
	if err != nil || got == nil || got.ID != a.ID {
		t.Fatalf("GetByName: got=%v err=%v", got, err)
	}
	if got, err := repo.GetByName(ctx, nil, "missing"); err != nil || got != nil {
		t.Fatalf("GetByName missing: got=%v err=%v", got, err)
	}
}
