package network

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Network operations.
var (
	// ErrNotFound is the root of every "unknown airport or route" error.
	ErrNotFound = errors.New("network: not found")

	// ErrAirportNotFound indicates an operation referenced an unknown airport code.
	ErrAirportNotFound = fmt.Errorf("%w: unknown airport", ErrNotFound)

	// ErrRouteNotFound indicates no route exists for the ordered (origin, destination) pair.
	ErrRouteNotFound = fmt.Errorf("%w: unknown route", ErrNotFound)

	// ErrNoRoute indicates both airports exist but the destination is unreachable.
	ErrNoRoute = errors.New("network: no route found between origin and destination")

	// ErrEmptyCode indicates an empty airport code was supplied.
	ErrEmptyCode = errors.New("network: airport code is empty")

	// ErrBadSelector indicates an unknown weight Selector.
	ErrBadSelector = errors.New("network: unknown weight selector")
)

// Default unit labels.
const (
	// UnitHours labels flight-time weights.
	UnitHours = "hours"

	// DefaultCurrency labels cost weights unless overridden with WithCurrency.
	DefaultCurrency = "R$"
)

// Selector chooses which route weight a shortest-path query minimizes.
type Selector int

const (
	// ByFlightTime minimizes total flight time (hours).
	ByFlightTime Selector = iota

	// ByCost minimizes total cost (currency units).
	ByCost
)

// String returns the lower-case name of the selector.
func (s Selector) String() string {
	switch s {
	case ByFlightTime:
		return "flight_time"
	case ByCost:
		return "cost"
	default:
		return fmt.Sprintf("selector(%d)", int(s))
	}
}

// Weights holds the two independent weights of a route.
type Weights struct {
	// FlightTime is the flight duration in hours.
	FlightTime float64

	// Cost is the ticket price in currency units.
	Cost float64
}

// ValidWeight reports whether v is usable as a route weight: finite and
// non-negative. Network itself stores whatever it is given; input
// boundaries call this before AddRoute.
func ValidWeight(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// pick returns the weight chosen by s.
func (w Weights) pick(s Selector) float64 {
	if s == ByCost {
		return w.Cost
	}
	return w.FlightTime
}

// Route is a directed edge Origin→Destination with its weights.
type Route struct {
	Origin      string
	Destination string
	Weights
}

// PathResult is the outcome of a shortest-path query.
//
// On success Err is nil, Path runs from origin to destination (a single
// element when they are equal), Weight is the accumulated weight rounded
// to two decimals and Unit names it. When the destination is unreachable
// Err wraps ErrNoRoute and Path is nil.
type PathResult struct {
	Path   []string `json:"path,omitempty"`
	Weight float64  `json:"weight"`
	Unit   string   `json:"unit"`

	// MinConnection echoes the layover penalty. It is set by
	// ShortestPathWithLayover only, zero penalty included, and nil otherwise.
	MinConnection *float64 `json:"min_connection,omitempty"`

	Err error `json:"-"`
}

// OK reports whether the query found a path.
func (r PathResult) OK() bool { return r.Err == nil }

// Layover reports whether the result comes from ShortestPathWithLayover.
func (r PathResult) Layover() bool { return r.MinConnection != nil }

// Option configures a Network at construction time.
type Option func(*Network)

// WithCurrency sets the unit label reported for cost queries.
// An empty label keeps DefaultCurrency.
func WithCurrency(label string) Option {
	return func(n *Network) {
		if label != "" {
			n.currency = label
		}
	}
}
