package queries

import (
	"context"
	"errors"

	"missionctl/internal/core/application/monitoring"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrGetViewQueryIsNotConstructed = errors.New(
	"GetViewQuery must be created via NewGetViewQuery constructor",
)

// GetViewQuery reads the latest telemetry of a view: the parameter snapshot,
// the mission geometry and the computed viewport.
type GetViewQuery struct {
	viewID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetViewQuery(viewID kernel.UUID) (GetViewQuery, error) {
	if err := viewID.Validate(); err != nil {
		return GetViewQuery{}, err
	}
	return GetViewQuery{viewID: viewID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetViewQuery) Validate() error {
	return q.guard.Validate(ErrGetViewQueryIsNotConstructed)
}

func (q GetViewQuery) ViewID() kernel.UUID {
	return q.viewID
}

type GetViewQueryHandler struct {
	views ViewProvider
}

func NewGetViewQueryHandler(views ViewProvider) GetViewQueryHandler {
	return GetViewQueryHandler{views: views}
}

func (h GetViewQueryHandler) Handle(_ context.Context, query GetViewQuery) (monitoring.State, error) {
	if err := query.Validate(); err != nil {
		return monitoring.State{}, err
	}

	view, err := h.views.Get(query.ViewID())
	if err != nil {
		return monitoring.State{}, err
	}
	return view.State(), nil
}
