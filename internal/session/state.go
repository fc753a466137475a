package session

// State is the lifecycle state of the session.
type State int

const (
	// StateLoading covers startup until Restore has read the stored record.
	StateLoading State = iota
	StateUnauthenticated
	// StateAuthenticating is held while a Login or Register call waits out
	// its delay.
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
