package domain

// Authored is implemented by every resource that records the user who created it.
type Authored interface {
	AuthorID() int64
}

// Action is the kind of access a request wants on a resource.
type Action int8

const (
	ActionRead Action = iota
	ActionCreate
	ActionWrite
)

func (a Action) String() string {
	switch a {
	case ActionRead:
		return "READ"
	case ActionCreate:
		return "CREATE"
	case ActionWrite:
		return "WRITE"
	default:
		return "UNKNOWN"
	}
}

// AuthDecision is the outcome of Authorize.
type AuthDecision int8

const (
	Allowed AuthDecision = iota
	Forbidden
	Unauthenticated
)

func (d AuthDecision) String() string {
	switch d {
	case Allowed:
		return "ALLOWED"
	case Forbidden:
		return "FORBIDDEN"
	case Unauthenticated:
		return "UNAUTHENTICATED"
	default:
		return "UNKNOWN"
	}
}

// Err converts the decision into the matching sentinel error, nil when allowed.
func (d AuthDecision) Err() error {
	switch d {
	case Allowed:
		return nil
	case Unauthenticated:
		return ErrUnauthenticated
	default:
		return ErrForbidden
	}
}

// CanMutate reports whether requesterID is the recorded author of resource.
func CanMutate(requesterID int64, resource Authored) bool {
	if resource == nil {
		return false
	}
	return resource.AuthorID() == requesterID
}

// Authorize evaluates access for a single request.
// Any authenticated requester may read or create; update and delete require authorship.
// A requesterID <= 0 means no identity was attached to the request.
func Authorize(requesterID int64, resource Authored, action Action) AuthDecision {
	if requesterID <= 0 {
		return Unauthenticated
	}

	switch action {
	case ActionRead, ActionCreate:
		return Allowed
	case ActionWrite:
		if CanMutate(requesterID, resource) {
			return Allowed
		}
		return Forbidden
	default:
		return Forbidden
	}
}

// RequireIdentity fails with ErrUnauthenticated when no identity is attached.
func RequireIdentity(requesterID int64) error {
	return Authorize(requesterID, nil, ActionRead).Err()
}
