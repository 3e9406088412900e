package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmertens/portfolio-tracker-backend/internal/apperrors"
	"github.com/jmertens/portfolio-tracker-backend/internal/model"
	"github.com/jmertens/portfolio-tracker-backend/internal/repository"
	"github.com/jmertens/portfolio-tracker-backend/internal/testutil"
)

func strptr(s string) *string { return &s }

// TestHoldingRepository_ApplyMetadataPatch tests the three field combinations
// of a metadata patch and its row-count contract.
//
// WHY: The affected-row count is the only signal callers have to tell "patch
// landed" from "holding was sold before the patch arrived"; both must come
// back as nil errors with different counts.
func TestHoldingRepository_ApplyMetadataPatch(t *testing.T) {
	ctx := context.Background()

	t.Run("both fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)
		portfolio := testutil.NewPortfolio().Build(t, db)
		testutil.NewHolding(portfolio.ID).WithSymbol("AAPL").Build(t, db)

		affected, err := repo.ApplyMetadataPatch(ctx, portfolio.ID, "AAPL", model.MetadataPatch{
			Sector:     strptr("Technology"),
			AssetClass: strptr("Common Stock"),
		})
		if err != nil {
			t.Fatalf("ApplyMetadataPatch() returned unexpected error: %v", err)
		}
		if affected != 1 {
			t.Errorf("Expected 1 row affected, got %d", affected)
		}

		holding, err := repo.GetBySymbol(ctx, portfolio.ID, "AAPL")
		if err != nil {
			t.Fatalf("Failed to load holding: %v", err)
		}
		if holding.Sector != "Technology" || holding.AssetClass != "Common Stock" {
			t.Errorf("Expected both fields set, got sector %q asset class %q", holding.Sector, holding.AssetClass)
		}
	})

	t.Run("sector only leaves asset class alone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)
		portfolio := testutil.NewPortfolio().Build(t, db)
		testutil.NewHolding(portfolio.ID).WithSymbol("AAPL").WithMetadata("", "ETF").Build(t, db)

		if _, err := repo.ApplyMetadataPatch(ctx, portfolio.ID, "AAPL", model.MetadataPatch{Sector: strptr("Technology")}); err != nil {
			t.Fatalf("ApplyMetadataPatch() returned unexpected error: %v", err)
		}

		holding, err := repo.GetBySymbol(ctx, portfolio.ID, "AAPL")
		if err != nil {
			t.Fatalf("Failed to load holding: %v", err)
		}
		if holding.Sector != "Technology" {
			t.Errorf("Expected sector Technology, got %q", holding.Sector)
		}
		if holding.AssetClass != "ETF" {
			t.Errorf("Expected asset class preserved, got %q", holding.AssetClass)
		}
	})

	t.Run("asset class only leaves sector alone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)
		portfolio := testutil.NewPortfolio().Build(t, db)
		testutil.NewHolding(portfolio.ID).WithSymbol("AAPL").WithMetadata("Technology", "").Build(t, db)

		if _, err := repo.ApplyMetadataPatch(ctx, portfolio.ID, "AAPL", model.MetadataPatch{AssetClass: strptr("Common Stock")}); err != nil {
			t.Fatalf("ApplyMetadataPatch() returned unexpected error: %v", err)
		}

		holding, err := repo.GetBySymbol(ctx, portfolio.ID, "AAPL")
		if err != nil {
			t.Fatalf("Failed to load holding: %v", err)
		}
		if holding.Sector != "Technology" {
			t.Errorf("Expected sector preserved, got %q", holding.Sector)
		}
		if holding.AssetClass != "Common Stock" {
			t.Errorf("Expected asset class Common Stock, got %q", holding.AssetClass)
		}
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)
		portfolio := testutil.NewPortfolio().Build(t, db)
		testutil.NewHolding(portfolio.ID).WithSymbol("AAPL").Build(t, db)

		_, err := repo.ApplyMetadataPatch(ctx, portfolio.ID, "AAPL", model.MetadataPatch{})
		if !errors.Is(err, apperrors.ErrEmptyMetadataPatch) {
			t.Errorf("Expected ErrEmptyMetadataPatch, got %v", err)
		}
	})

	t.Run("missing holding affects zero rows without error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)
		portfolio := testutil.NewPortfolio().Build(t, db)

		affected, err := repo.ApplyMetadataPatch(ctx, portfolio.ID, "GONE", model.MetadataPatch{Sector: strptr("Technology")})
		if err != nil {
			t.Fatalf("ApplyMetadataPatch() returned unexpected error: %v", err)
		}
		if affected != 0 {
			t.Errorf("Expected 0 rows affected, got %d", affected)
		}
	})
}

// TestHoldingRepository_UpdatePrice tests the affected-row contract of price
// updates.
func TestHoldingRepository_UpdatePrice(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the matching holding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)
		portfolio := testutil.NewPortfolio().Build(t, db)
		testutil.NewHolding(portfolio.ID).WithSymbol("AAPL").Build(t, db)

		affected, err := repo.UpdatePrice(ctx, portfolio.ID, "AAPL", 187.5)
		if err != nil {
			t.Fatalf("UpdatePrice() returned unexpected error: %v", err)
		}
		if affected != 1 {
			t.Errorf("Expected 1 row affected, got %d", affected)
		}
	})

	t.Run("missing holding affects zero rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)
		portfolio := testutil.NewPortfolio().Build(t, db)

		affected, err := repo.UpdatePrice(ctx, portfolio.ID, "GONE", 10)
		if err != nil {
			t.Fatalf("UpdatePrice() returned unexpected error: %v", err)
		}
		if affected != 0 {
			t.Errorf("Expected 0 rows affected, got %d", affected)
		}
	})
}

// TestHoldingRepository_GetByPortfolio tests ordering and scoping of the
// holdings listing.
func TestHoldingRepository_GetByPortfolio(t *testing.T) {
	ctx := context.Background()

	db := testutil.SetupTestDB(t)
	repo := repository.NewHoldingRepository(db)
	portfolio := testutil.NewPortfolio().Build(t, db)
	other := testutil.NewPortfolio().Build(t, db)

	testutil.NewHolding(portfolio.ID).WithSymbol("MSFT").Build(t, db)
	testutil.NewHolding(portfolio.ID).WithSymbol("AAPL").Build(t, db)
	testutil.NewHolding(other.ID).WithSymbol("VTI").Build(t, db)

	holdings, err := repo.GetByPortfolio(ctx, portfolio.ID)
	if err != nil {
		t.Fatalf("GetByPortfolio() returned unexpected error: %v", err)
	}

	if len(holdings) != 2 {
		t.Fatalf("Expected 2 holdings, got %d", len(holdings))
	}
	if holdings[0].Symbol != "AAPL" || holdings[1].Symbol != "MSFT" {
		t.Errorf("Expected symbols ordered alphabetically, got %s then %s", holdings[0].Symbol, holdings[1].Symbol)
	}
}
