package queries

import (
	"context"
	"errors"

	"missionctl/internal/core/application/monitoring"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrStreamViewQueryIsNotConstructed = errors.New(
	"StreamViewQuery must be created via NewStreamViewQuery constructor",
)

// StreamViewQuery subscribes to every state change of a view.
type StreamViewQuery struct {
	viewID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewStreamViewQuery(viewID kernel.UUID) (StreamViewQuery, error) {
	if err := viewID.Validate(); err != nil {
		return StreamViewQuery{}, err
	}
	return StreamViewQuery{viewID: viewID, guard: guard.NewConstructorGuard()}, nil
}

func (q StreamViewQuery) Validate() error {
	return q.guard.Validate(ErrStreamViewQueryIsNotConstructed)
}

func (q StreamViewQuery) ViewID() kernel.UUID {
	return q.viewID
}

type StreamViewQueryHandler struct {
	views ViewProvider
}

func NewStreamViewQueryHandler(views ViewProvider) StreamViewQueryHandler {
	return StreamViewQueryHandler{views: views}
}

// Handle returns the subscription channel, which starts with the current
// state, and the function that ends it. The caller must call cancel.
//
// Example:
//
//	states, cancel, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	defer cancel()
//	for st := range states {
//	    render(st)
//	}
func (h StreamViewQueryHandler) Handle(_ context.Context, query StreamViewQuery) (<-chan monitoring.State, func(), error) {
	if err := query.Validate(); err != nil {
		return nil, nil, err
	}

	view, err := h.views.Get(query.ViewID())
	if err != nil {
		return nil, nil, err
	}
	return view.Subscribe()
}
