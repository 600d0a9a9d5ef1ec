package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
)

func setupTestStore(t *testing.T) Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Simulation{}))
	return NewWithDB(db)
}

func testProfile(skills string) models.Profile {
	return models.Profile{
		Skills:       skills,
		Interests:    "Design",
		Availability: "5 hrs/week",
		Background:   "CS student",
		Goals:        "Lead a team",
	}
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	st := setupTestStore(t)
	result := datatypes.JSON(`{"careerPaths":[]}`)

	sim, err := st.Create(context.Background(), testProfile("Python"), result)
	require.NoError(t, err)
	require.NotZero(t, sim.ID)
	require.False(t, sim.CreatedAt.IsZero())
	require.Equal(t, "Python", sim.Skills)
	require.Equal(t, string(result), string(sim.Result))
}

func TestGetByIDReturnsStoredRecord(t *testing.T) {
	st := setupTestStore(t)
	result := datatypes.JSON(`{"careerPaths":[{"title":"Data Analyst"}]}`)

	created, err := st.Create(context.Background(), testProfile("SQL"), result)
	require.NoError(t, err)

	got, err := st.GetByID(context.Background(), int(created.ID))
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "SQL", got.Skills)
	require.Equal(t, string(result), string(got.Result))
}

func TestGetByIDMissing(t *testing.T) {
	st := setupTestStore(t)

	_, err := st.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = st.GetByID(context.Background(), -1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListAllNewestFirst(t *testing.T) {
	st := setupTestStore(t)
	result := datatypes.JSON(`{"careerPaths":[]}`)

	for i := 0; i < 3; i++ {
		_, err := st.Create(context.Background(), testProfile(fmt.Sprintf("skill-%d", i)), result)
		require.NoError(t, err)
	}

	sims, err := st.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, sims, 3)
	require.Equal(t, uint(3), sims[0].ID)
	require.Equal(t, uint(2), sims[1].ID)
	require.Equal(t, uint(1), sims[2].ID)
	require.False(t, sims[0].CreatedAt.Before(sims[2].CreatedAt))
}

func TestListAllEmpty(t *testing.T) {
	st := setupTestStore(t)

	sims, err := st.ListAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, sims)
}

func TestPing(t *testing.T) {
	st := setupTestStore(t)
	require.NoError(t, st.Ping(context.Background()))
}
