package queries

import (
	"context"
	"errors"

	"missionctl/internal/core/application/missioncontrol"
	"missionctl/internal/core/domain/model/kernel"
	"missionctl/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New(
	"GetSessionQuery must be created via NewGetSessionQuery constructor",
)

// GetSessionQuery reads the state of one mission-control session: drones,
// selection, prompt, destination, facilities, mission and the last notice.
//
// Example:
//
//	query, err := NewGetSessionQuery(sessionID)
//	if err != nil {
//	    return err
//	}
//	state, err := NewGetSessionQueryHandler(sessions).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(state.Mission.Status, state.Notice)
type GetSessionQuery struct {
	sessionID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionQuery{}, err
	}
	return GetSessionQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

func (q GetSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetSessionQueryHandler returns the session read model.
type GetSessionQueryHandler struct {
	sessions SessionProvider
}

func NewGetSessionQueryHandler(sessions SessionProvider) GetSessionQueryHandler {
	return GetSessionQueryHandler{sessions: sessions}
}

func (h GetSessionQueryHandler) Handle(_ context.Context, query GetSessionQuery) (missioncontrol.State, error) {
	if err := query.Validate(); err != nil {
		return missioncontrol.State{}, err
	}

	session, err := h.sessions.Get(query.SessionID())
	if err != nil {
		return missioncontrol.State{}, err
	}
	return session.State(), nil
}
