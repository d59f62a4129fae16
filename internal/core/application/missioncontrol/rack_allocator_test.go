package missioncontrol_test

import (
	"testing"

	"missionctl/internal/core/application/missioncontrol"
	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRackAllocator(t *testing.T) {
	t.Run("available count and occupied rack refusal", func(t *testing.T) {
		a := missioncontrol.NewRackAllocator()
		a.Load([]*facility.Facility{facilityF(t)})

		f, ok := a.SelectedFacility()
		require.True(t, ok)
		assert.Equal(t, 1, f.AvailableCount())

		_, err := a.SelectRack("rack_01")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "rack is occupied")
		assert.Empty(t, a.SelectedRack())

		sel, err := a.SelectRack("rack_02")
		require.NoError(t, err)
		assert.Equal(t, "F", sel.FacilityName())
		assert.Equal(t, facility.RackKey("rack_02"), sel.Rack())

		current, err := a.Selection()
		require.NoError(t, err)
		assert.Equal(t, sel.Rack(), current.Rack())
	})

	t.Run("rack outside the facility", func(t *testing.T) {
		a := missioncontrol.NewRackAllocator()
		a.Load([]*facility.Facility{facilityF(t)})

		_, err := a.SelectRack("rack_05")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("needs a facility", func(t *testing.T) {
		a := missioncontrol.NewRackAllocator()

		_, err := a.SelectRack("rack_02")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = a.Selection()
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("changing facility drops the rack", func(t *testing.T) {
		other, err := facility.NewFacility("2", "G", 2, facility.StatusActive, nil)
		require.NoError(t, err)
		a := missioncontrol.NewRackAllocator()
		a.Load([]*facility.Facility{facilityF(t), other})
		_, err = a.SelectRack("rack_02")
		require.NoError(t, err)

		require.NoError(t, a.SelectFacility("G"))

		assert.Empty(t, a.SelectedRack())
		require.ErrorIs(t, a.SelectFacility("nope"), errs.ErrObjectNotFound)
	})

	t.Run("launch selection rechecks the cache", func(t *testing.T) {
		a := missioncontrol.NewRackAllocator()
		a.Load([]*facility.Facility{facilityF(t)})
		_, err := a.SelectRack("rack_02")
		require.NoError(t, err)
		f, _ := a.SelectedFacility()
		require.NoError(t, f.Occupy("rack_02", "PKG-1"))

		_, err = a.LaunchSelection()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "rack is occupied")
	})

	t.Run("reserve and release mirror the backend", func(t *testing.T) {
		a := missioncontrol.NewRackAllocator()
		a.Load([]*facility.Facility{facilityF(t)})
		sel, err := a.SelectRack("rack_02")
		require.NoError(t, err)

		require.NoError(t, a.Reserve(sel, "PKG-1"))
		f, _ := a.SelectedFacility()
		assert.Equal(t, 0, f.AvailableCount())
		assert.Empty(t, a.SelectedRack())
		_, err = a.LaunchSelection()
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		require.NoError(t, a.Release(sel))
		assert.Equal(t, 1, f.AvailableCount())
		assert.Empty(t, a.SelectedRack())
		occupant, err := f.Occupant("rack_02")
		require.NoError(t, err)
		assert.Empty(t, occupant)
	})
}

func TestSession_SelectRack(t *testing.T) {
	f := newFixture()
	s := f.readyToLaunch(t)

	st := s.State()
	require.Len(t, st.Facilities, 1)
	assert.Equal(t, 4, st.Facilities[0].TotalRacks)
	assert.Equal(t, 1, st.Facilities[0].AvailableCount)
	assert.Equal(t, []facility.RackKey{"rack_02"}, st.Facilities[0].AvailableRacks)
	assert.Equal(t, facility.RackKey("rack_02"), st.SelectedRack)
	assert.Equal(t, "Selected Rack 02 at F", st.Notice)

	require.ErrorIs(t, s.SelectRack("rack_03"), errs.ErrValueIsInvalid)
	require.Error(t, s.SelectRack("shelf_1"))
	assert.Equal(t, facility.RackKey("rack_02"), s.State().SelectedRack)

	f.missions.AssertNotCalled(t, "Launch")
}
