package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/powerfrill/showcase-backend-go/internal/catalog"
	"github.com/powerfrill/showcase-backend-go/internal/database"
	"github.com/powerfrill/showcase-backend-go/internal/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.NewMigrationManager(db, zap.NewNop()).RunMigrations())
	return db
}

func TestCatalogRepositorySeedAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(openTestDB(t))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	want := catalog.Builtin()
	require.NoError(t, repo.Seed(ctx, want))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(want.Products), n)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("loaded catalog differs (-want +got):\n%s", diff)
	}
}

func TestCatalogRepositoryReseedReplaces(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(openTestDB(t))
	require.NoError(t, repo.Seed(ctx, catalog.Builtin()))

	small := catalog.Table{
		Solutions:  []models.Solution{{ID: "wind", Title: "Wind"}},
		Categories: []models.Category{{ID: "turbines", Name: "Turbines", SolutionID: "wind"}},
		Products: []models.Product{{
			ID:           "t1",
			CategoryPath: []string{"Turbines", "T1"},
			Title:        "T1",
			Features:     []models.Feature{{Label: "RATED", Value: "3 MW"}},
			Advantages:   []string{"quiet"},
			SolutionID:   "wind",
		}},
	}
	require.NoError(t, repo.Seed(ctx, small))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(small, got); diff != "" {
		t.Fatalf("reseeded catalog differs (-want +got):\n%s", diff)
	}
}

func TestCatalogRepositorySeedRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(openTestDB(t))
	require.NoError(t, repo.Seed(ctx, catalog.Builtin()))

	// Unknown solution violates the foreign key
	bad := catalog.Table{
		Solutions:  []models.Solution{{ID: "solar", Title: "Solar"}},
		Categories: []models.Category{{ID: "x", Name: "X", SolutionID: "missing"}},
	}
	assert.Error(t, repo.Seed(ctx, bad))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 15, n)
}
