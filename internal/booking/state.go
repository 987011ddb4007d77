package booking

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/itemshare/item-sharing-backend/internal/pkg/apperror"
)

// State is a list-filter token. CURRENT, PAST and FUTURE classify bookings
// against the query-time clock and partition the whole set; WAITING and
// REJECTED filter on status only; ALL adds no predicate. APPROVED and
// CANCELED are booking statuses but deliberately not filter tokens.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// Role selects which side of a booking a listing is scoped to.
type Role int

const (
	RoleBooker Role = iota
	RoleOwner
)

// statePredicates maps each filter state to the squirrel predicate it adds
// to the list query. The now argument is the single evaluation instant for
// the whole query, so CURRENT/PAST/FUTURE stay disjoint and exhaustive.
var statePredicates = map[State]func(now time.Time) squirrel.Sqlizer{
	StateAll: func(time.Time) squirrel.Sqlizer { return nil },
	StateCurrent: func(now time.Time) squirrel.Sqlizer {
		return squirrel.And{
			squirrel.LtOrEq{"b.start_time": now},
			squirrel.GtOrEq{"b.end_time": now},
		}
	},
	StatePast: func(now time.Time) squirrel.Sqlizer {
		return squirrel.Lt{"b.end_time": now}
	},
	StateFuture: func(now time.Time) squirrel.Sqlizer {
		return squirrel.Gt{"b.start_time": now}
	},
	StateWaiting: func(time.Time) squirrel.Sqlizer {
		return squirrel.Eq{"b.status": StatusWaiting}
	},
	StateRejected: func(time.Time) squirrel.Sqlizer {
		return squirrel.Eq{"b.status": StatusRejected}
	},
}

// ParseState validates a state-filter token. Tokens are case sensitive and
// limited to the six filter states; anything else (including APPROVED and
// CANCELED) is rejected.
func ParseState(token string) (State, error) {
	state := State(token)
	if _, ok := statePredicates[state]; !ok {
		return "", apperror.InvalidState("Unknown state: " + token)
	}
	return state, nil
}

// predicate returns the filter predicate for the state, or nil for ALL.
func (s State) predicate(now time.Time) squirrel.Sqlizer {
	return statePredicates[s](now)
}
