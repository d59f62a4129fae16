package queries

import (
	"context"
	"errors"

	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrGetCameraURLQueryIsNotConstructed = errors.New(
	"GetCameraURLQuery must be created via NewGetCameraURLQuery constructor",
)

// GetCameraURLQuery looks up the video feed of the drone a view follows.
type GetCameraURLQuery struct {
	viewID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetCameraURLQuery(viewID kernel.UUID) (GetCameraURLQuery, error) {
	if err := viewID.Validate(); err != nil {
		return GetCameraURLQuery{}, err
	}
	return GetCameraURLQuery{viewID: viewID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCameraURLQuery) Validate() error {
	return q.guard.Validate(ErrGetCameraURLQueryIsNotConstructed)
}

func (q GetCameraURLQuery) ViewID() kernel.UUID {
	return q.viewID
}

type GetCameraURLQueryHandler struct {
	views ViewProvider
}

func NewGetCameraURLQueryHandler(views ViewProvider) GetCameraURLQueryHandler {
	return GetCameraURLQueryHandler{views: views}
}

func (h GetCameraURLQueryHandler) Handle(ctx context.Context, query GetCameraURLQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	view, err := h.views.Get(query.ViewID())
	if err != nil {
		return "", err
	}
	return view.CameraURL(ctx)
}
