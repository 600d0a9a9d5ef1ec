package simulation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rishav-del/ai-career-path-simulator/internal/config"
	"github.com/rishav-del/ai-career-path-simulator/internal/store"
	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
)

const sampleResult = `{"careerPaths":[{"title":"Data Analyst","matchScore":88,"timeline":"6 months","difficulty":"Medium","description":"Analyze data","requiredSkills":["SQL"],"missingSkills":["Tableau"],"actionPlan":["Learn SQL"]}]}`

type fakeProvider struct {
	failures    int // fail this many calls before succeeding
	response    json.RawMessage
	calls       int
	lastProfile models.Profile
}

func (f *fakeProvider) GenerateCareerPaths(ctx context.Context, profile models.Profile) (json.RawMessage, error) {
	f.calls++
	f.lastProfile = profile
	if f.calls <= f.failures {
		return nil, errors.New("provider unavailable")
	}
	return f.response, nil
}

func (f *fakeProvider) IsHealthy(ctx context.Context) error { return nil }

func (f *fakeProvider) Name() string { return "fake" }

func setupTestStore(t *testing.T) store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Simulation{}))
	return store.NewWithDB(db)
}

func newTestService(t *testing.T, provider *fakeProvider, maxRetries int) (*Service, store.Store) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LLM.Timeout = time.Second
	cfg.LLM.MaxRetries = maxRetries
	st := setupTestStore(t)
	return NewService(cfg, st, provider), st
}

func validProfile() models.Profile {
	return models.Profile{
		Skills:       "Python",
		Interests:    "Design",
		Availability: "5 hrs/week",
		Background:   "CS student",
		Goals:        "Lead a team",
	}
}

func TestGeneratePersistsResultVerbatim(t *testing.T) {
	provider := &fakeProvider{response: json.RawMessage(sampleResult)}
	svc, st := newTestService(t, provider, 1)

	sim, err := svc.Generate(context.Background(), validProfile())
	require.NoError(t, err)
	require.NotZero(t, sim.ID)
	require.Equal(t, sampleResult, string(sim.Result))
	require.Equal(t, 1, provider.calls)

	stored, err := st.GetByID(context.Background(), int(sim.ID))
	require.NoError(t, err)
	require.Equal(t, sampleResult, string(stored.Result))
}

func TestGenerateDefaultsGoals(t *testing.T) {
	provider := &fakeProvider{response: json.RawMessage(sampleResult)}
	svc, _ := newTestService(t, provider, 1)

	profile := validProfile()
	profile.Goals = ""

	sim, err := svc.Generate(context.Background(), profile)
	require.NoError(t, err)
	require.Equal(t, DefaultGoals, sim.Goals)
	// The default is applied before prompt construction, not only at persist
	require.Equal(t, DefaultGoals, provider.lastProfile.Goals)
}

func TestGenerateProviderFailureLeavesStoreUntouched(t *testing.T) {
	provider := &fakeProvider{failures: 10}
	svc, st := newTestService(t, provider, 1)

	_, err := svc.Generate(context.Background(), validProfile())
	require.ErrorIs(t, err, ErrGeneration)
	require.Equal(t, 2, provider.calls)

	sims, err := st.ListAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, sims)
}

func TestGenerateRetriesOnceBeforePersisting(t *testing.T) {
	provider := &fakeProvider{failures: 1, response: json.RawMessage(sampleResult)}
	svc, st := newTestService(t, provider, 1)

	sim, err := svc.Generate(context.Background(), validProfile())
	require.NoError(t, err)
	require.Equal(t, 2, provider.calls)

	sims, err := st.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, sims, 1)
	require.Equal(t, sim.ID, sims[0].ID)
}

func TestGenerateNoRetryWhenDisabled(t *testing.T) {
	provider := &fakeProvider{failures: 1, response: json.RawMessage(sampleResult)}
	svc, st := newTestService(t, provider, 0)

	_, err := svc.Generate(context.Background(), validProfile())
	require.ErrorIs(t, err, ErrGeneration)
	require.Equal(t, 1, provider.calls)

	sims, err := st.ListAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, sims)
}

func TestGenerateRetryIsBounded(t *testing.T) {
	provider := &fakeProvider{failures: 10}
	svc, _ := newTestService(t, provider, 5)

	_, err := svc.Generate(context.Background(), validProfile())
	require.ErrorIs(t, err, ErrGeneration)
	// max_retries above 1 is still capped at a single retry
	require.Equal(t, 2, provider.calls)
}
