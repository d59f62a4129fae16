package missioncontrol

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"missionctl/internal/core/domain/model/drone"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/errs"
)

// PromptAction is the operator action suspended by a CoordinatePrompt.
type PromptAction int

const (
	// ActionSelect resumes the drone selection once coordinates are confirmed.
	ActionSelect PromptAction = iota + 1

	// ActionUpdate only updates the coordinates.
	ActionUpdate
)

func (a PromptAction) String() string {
	switch a {
	case ActionSelect:
		return "select"
	case ActionUpdate:
		return "update"
	}
	return "unknown"
}

// CoordinatePrompt is an open request for a drone's source coordinates. While
// it is open the suspended action has not touched any drone state.
type CoordinatePrompt struct {
	DroneID string
	Action  PromptAction

	// PrefillLat and PrefillLng carry the current values for an update.
	PrefillLat string
	PrefillLng string
}

// RefreshDrones reloads the delivery drone list. A pending hand-off drone is
// auto-selected once it appears in the list.
func (s *Session) RefreshDrones(ctx context.Context) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()

	list, err := s.deps.Drones.ListDeliveryDrones(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch delivery drones", "error", err)
		return fmt.Errorf("list delivery drones: %w", err)
	}

	s.mu.Lock()
	s.drones = list
	autoSelect := s.handOff.DroneID
	if autoSelect != "" && s.findDroneLocked(autoSelect) != nil {
		s.handOff.DroneID = ""
	} else {
		autoSelect = ""
	}
	s.mu.Unlock()

	if autoSelect == "" {
		return nil
	}

	s.logger.InfoContext(ctx, "Auto-selecting drone", "drone_id", autoSelect)
	if err := s.requestSelect(ctx, autoSelect); err != nil {
		return err
	}
	s.mu.Lock()
	s.notice = appendNotice(s.notice, fmt.Sprintf("Drone %s auto-selected", autoSelect))
	s.mu.Unlock()
	return nil
}

// RequestSelect selects a drone. If the drone lacks a source position a
// CoordinatePrompt is opened instead and the selection resumes after
// SubmitCoordinates.
func (s *Session) RequestSelect(ctx context.Context, droneID string) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()

	s.mu.Lock()
	s.notice = ""
	s.mu.Unlock()

	return s.requestSelect(ctx, droneID)
}

func (s *Session) requestSelect(ctx context.Context, droneID string) error {
	s.mu.Lock()
	d := s.findDroneLocked(droneID)
	if d == nil {
		s.mu.Unlock()
		return errs.NewObjectNotFoundError("droneId", droneID)
	}
	if !d.HasSource() {
		s.prompt = &CoordinatePrompt{DroneID: droneID, Action: ActionSelect}
		s.mu.Unlock()
		s.logger.InfoContext(ctx, "Source coordinates required before selection", "drone_id", droneID)
		return nil
	}
	s.mu.Unlock()

	return s.proceedWithSelection(ctx, d)
}

// RequestCoordinateUpdate opens a CoordinatePrompt prefilled with the drone's
// current source position.
func (s *Session) RequestCoordinateUpdate(droneID string) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()

	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.findDroneLocked(droneID)
	if d == nil {
		return errs.NewObjectNotFoundError("droneId", droneID)
	}

	p := &CoordinatePrompt{DroneID: droneID, Action: ActionUpdate}
	if src, ok := d.Source(); ok {
		p.PrefillLat = strconv.FormatFloat(src.Lat(), 'f', -1, 64)
		p.PrefillLng = strconv.FormatFloat(src.Lng(), 'f', -1, 64)
	}
	s.prompt = p
	return nil
}

// SubmitCoordinates confirms the open prompt. Both values must parse as finite
// numbers, otherwise a validation error is returned and the prompt stays open.
// On success exactly one backend write is made, the local drone is updated and
// the suspended action resumes.
func (s *Session) SubmitCoordinates(ctx context.Context, latText string, lngText string) error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()

	s.mu.Lock()
	p := s.prompt
	s.mu.Unlock()
	if p == nil {
		return errs.NewValueIsRequiredError("coordinate prompt")
	}

	loc, err := kernel.ParseLocation(latText, lngText)
	if err != nil {
		return err
	}

	if err := s.deps.Drones.UpdateSourceCoordinates(ctx, p.DroneID, loc); err != nil {
		s.mu.Lock()
		s.notice = fmt.Sprintf("Failed to update source coordinates: %s", errs.Message(err))
		s.mu.Unlock()
		return fmt.Errorf("update source coordinates of %s: %w", p.DroneID, err)
	}

	s.mu.Lock()
	if s.closed || s.prompt != p {
		s.mu.Unlock()
		return nil
	}
	d := s.findDroneLocked(p.DroneID)
	if d != nil {
		_ = d.SetSource(loc)
	}
	if s.selected != nil && s.selected.ID() == p.DroneID {
		_ = s.selected.SetSource(loc)
	}
	s.prompt = nil
	s.notice = fmt.Sprintf("Source coordinates updated for drone %s", p.DroneID)
	resume := p.Action == ActionSelect && d != nil
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Source coordinates updated",
		"drone_id", p.DroneID, "action", p.Action.String(), "location", loc.String())

	if !resume {
		return nil
	}
	return s.proceedWithSelection(ctx, d)
}

// CancelPrompt closes the open prompt. The suspended action is dropped and
// nothing is mutated.
func (s *Session) CancelPrompt() error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	defer done()

	s.mu.Lock()
	s.prompt = nil
	s.mu.Unlock()
	return nil
}

// proceedWithSelection makes d the selected drone, then loads its detail and
// destination. Switching drones stops the status poller and drops tracking of
// the previous drone's mission.
func (s *Session) proceedWithSelection(ctx context.Context, d *drone.Drone) error {
	s.mu.Lock()
	s.selectionGen++
	gen := s.selectionGen
	s.abandonMissionLocked()
	s.selected = d.Clone()
	s.resolution = nil
	s.racks.Clear()
	s.prompt = nil
	s.mu.Unlock()

	detail, detailErr := s.deps.Drones.GetDrone(ctx, d.ID())
	res, resErr := s.deps.Drones.ResolveDestination(ctx, d.ID())

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.selectionGen {
		return nil
	}

	if detailErr == nil {
		if src, ok := d.Source(); ok && !detail.HasSource() {
			_ = detail.SetSource(src)
		}
		s.selected = detail
	} else {
		s.logger.ErrorContext(ctx, "Failed to fetch drone details", "drone_id", d.ID(), "error", detailErr)
		detailErr = fmt.Errorf("get drone %s: %w", d.ID(), detailErr)
	}

	if resErr != nil {
		s.logger.ErrorContext(ctx, "Failed to resolve destination", "drone_id", d.ID(), "error", resErr)
		s.notice = fmt.Sprintf("Failed to load destination for drone %s: %s", d.ID(), errs.Message(resErr))
		return errors.Join(detailErr, fmt.Errorf("resolve destination of %s: %w", d.ID(), resErr))
	}

	s.resolution = &res
	s.racks.Load(res.Facilities())
	s.applyHandOffRackLocked()
	return detailErr
}

func appendNotice(prev string, next string) string {
	if prev == "" {
		return next
	}
	return prev + " - " + next
}
