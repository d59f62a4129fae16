package monitoring_test

import (
	"testing"
	"time"

	"missionctl/internal/core/application/monitoring"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/core/domain/model/telemetry"
	"missionctl/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietRegistry(t *testing.T, limit int) (*monitoring.Registry, *fakeClock) {
	t.Helper()
	gw, clock, deps := newDeps()
	deps.PollInterval = time.Hour
	gw.On("Parameters", mock.Anything, mock.Anything).Return(telemetry.Snapshot{}, nil)
	gw.On("Geometry", mock.Anything, mock.Anything).Return(telemetry.Geometry{}, nil)
	r, err := monitoring.NewRegistry(deps, limit)
	require.NoError(t, err)
	t.Cleanup(r.CloseAll)
	return r, clock
}

func TestRegistry_Lifecycle(t *testing.T) {
	r, _ := quietRegistry(t, 4)
	id := kernel.NewUUID()

	v, err := r.Open(id, "D1")
	require.NoError(t, err)
	_, err = r.Open(id, "D2")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Same(t, v, got)

	require.NoError(t, r.Remove(id))
	_, err = r.Get(id)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.ErrorIs(t, v.SwitchDrone("D2"), errs.ErrObjectNotFound)
}

func TestRegistry_EvictionClosesView(t *testing.T) {
	r, _ := quietRegistry(t, 1)

	first, err := r.Open(kernel.NewUUID(), "D1")
	require.NoError(t, err)
	_, err = r.Open(kernel.NewUUID(), "D2")
	require.NoError(t, err)

	assert.Equal(t, 1, r.Len())
	require.ErrorIs(t, first.SwitchDrone("D3"), errs.ErrObjectNotFound)
}

func TestRegistry_ReapIdle(t *testing.T) {
	r, clock := quietRegistry(t, 4)
	idle, err := r.Open(kernel.NewUUID(), "D1")
	require.NoError(t, err)
	clock.Advance(time.Hour)
	_, err = r.Open(kernel.NewUUID(), "D2")
	require.NoError(t, err)

	assert.Equal(t, 1, r.ReapIdle(clock.Now(), 30*time.Minute))
	_, err = r.Get(idle.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, 1, r.Len())
}
