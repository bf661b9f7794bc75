package accesscontrol

import "github.com/fleetdesk-io/fleetdesk/shared"

type userSession struct {
	userID string
	scopes []string
}

func (s userSession) GetUserID() string {
	return s.userID
}

func (s userSession) GetScopes() []string {
	return s.scopes
}

func NewSession(userID string, scopes []string) shared.AuthSession {
	return userSession{
		userID: userID,
		scopes: scopes,
	}
}

// NoSession marks an unauthenticated request. Handlers behind the access
// control middleware never see it; public routes might.
var NoSession = userSession{}
