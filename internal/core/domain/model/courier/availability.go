package courier

// Availability is the display-facing state of a courier. It is derived,
// never persisted: the only stored truth is the retired flag, the
// active-today flag, the starting cash float, and whether an in-transit
// order exists. Recomputing on every read keeps the label from drifting
// from its inputs.
type Availability int

const (
	// AvailabilityUnknown represents an undefined availability value.
	AvailabilityUnknown Availability = iota

	// Available means the courier is on shift, funded, and carries nothing.
	Available

	// Busy means the courier has an order in transit.
	Busy

	// Unavailable means the courier is off shift or has no cash float.
	Unavailable

	// Inactive means the courier opted out entirely (retired). This is the
	// only availability driven by an explicit flag.
	Inactive
)

// Compute derives the availability from its persisted inputs. It is a pure
// function: the same inputs always produce the same output, regardless of
// call order or history.
//
// Rules, in priority order:
//   - retired -> Inactive
//   - not on shift today, or no starting cash float -> Unavailable
//   - an in-transit order exists -> Busy
//   - otherwise -> Available
func Compute(retired, activeToday, funded, hasInTransitOrder bool) Availability {
	switch {
	case retired:
		return Inactive
	case !activeToday || !funded:
		return Unavailable
	case hasInTransitOrder:
		return Busy
	default:
		return Available
	}
}

// String returns the wire name of the availability state.
func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Busy:
		return "busy"
	case Unavailable:
		return "unavailable"
	case Inactive:
		return "inactive"
	default:
		return "unknown"
	}
}
