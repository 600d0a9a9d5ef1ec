package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
)

type probeProvider struct {
	err    error
	probes int
}

func (p *probeProvider) GenerateCareerPaths(ctx context.Context, profile models.Profile) (json.RawMessage, error) {
	return json.RawMessage(`{"careerPaths":[]}`), nil
}

func (p *probeProvider) IsHealthy(ctx context.Context) error {
	p.probes++
	return p.err
}

func (p *probeProvider) Name() string { return "probe" }

func TestCheckHealthRefreshesCachedState(t *testing.T) {
	provider := &probeProvider{err: errors.New("API key not configured")}
	m := &Manager{provider: provider}

	require.Error(t, m.CheckHealth(context.Background()))
	require.Error(t, m.IsHealthy(context.Background()))

	// A provider that comes up after startup must flip readiness back
	provider.err = nil
	require.NoError(t, m.CheckHealth(context.Background()))
	require.NoError(t, m.IsHealthy(context.Background()))
	require.Equal(t, 2, provider.probes)
}

func TestCheckHealthWithoutProvider(t *testing.T) {
	m := &Manager{}
	require.Error(t, m.CheckHealth(context.Background()))
	require.Error(t, m.IsHealthy(context.Background()))
}
