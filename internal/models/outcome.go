package models

// Outcome reports how an operation resolved. The original behavior keeps
// not-found and forbidden cases as silent no-ops toward the client; the
// outcome lets handlers and tests tell them apart without turning them
// into transaction-aborting errors.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
	OutcomeForbidden
	OutcomeAlreadyExists
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeForbidden:
		return "forbidden"
	case OutcomeAlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}
