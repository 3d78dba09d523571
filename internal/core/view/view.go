// Package view holds the resource views of the client. Each view owns its
// snapshot of server state: Load fetches everything the view needs (with
// independent fetches isolated from one another's failures), and every
// mutating action re-fetches the authoritative resource before the
// displayed state changes; the view never hand-computes post-mutation
// state from the request payload.
package view

import "context"

// Status describes where a view is in its load cycle.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Loader is implemented by every view that fetches data on mount. Retry
// re-runs the initial load after a view-level error.
type Loader interface {
	Load(ctx context.Context)
	Status() Status
	Err() error
}
