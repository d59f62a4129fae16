package queries

import (
	"context"
	"errors"

	"missionctl/internal/core/application/missioncontrol"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrListDronesQueryIsNotConstructed = errors.New(
	"ListDronesQuery must be created via NewListDronesQuery constructor",
)

// ListDronesQuery reloads the delivery drones from the backend into the
// session and returns them. A pending hand-off selection is applied on the
// first successful load.
type ListDronesQuery struct {
	sessionID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewListDronesQuery(sessionID kernel.UUID) (ListDronesQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return ListDronesQuery{}, err
	}
	return ListDronesQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDronesQuery) Validate() error {
	return q.guard.Validate(ErrListDronesQueryIsNotConstructed)
}

func (q ListDronesQuery) SessionID() kernel.UUID {
	return q.sessionID
}

type ListDronesQueryHandler struct {
	sessions SessionProvider
}

func NewListDronesQueryHandler(sessions SessionProvider) ListDronesQueryHandler {
	return ListDronesQueryHandler{sessions: sessions}
}

// Handle refreshes the list. When the backend is unreachable the error is
// returned and the previously loaded drones stay in the session.
func (h ListDronesQueryHandler) Handle(ctx context.Context, query ListDronesQuery) ([]missioncontrol.DroneState, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	session, err := h.sessions.Get(query.SessionID())
	if err != nil {
		return nil, err
	}
	if err := session.RefreshDrones(ctx); err != nil {
		return nil, err
	}
	return session.State().Drones, nil
}
