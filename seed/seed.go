// Package seed populates a network.Network with an initial topology,
// either the built-in demo or one decoded from a TOML file.
package seed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/airnet/network"
)

// Sentinel errors returned by Apply.
var (
	// ErrNilNetwork is returned when no network is supplied.
	ErrNilNetwork = errors.New("seed: network is nil")

	// ErrInvalidWeight is returned for a NaN, infinite or negative route weight.
	ErrInvalidWeight = errors.New("seed: route weight must be finite and non-negative")
)

// RouteSpec describes one directed route.
type RouteSpec struct {
	From       string  `toml:"from"`
	To         string  `toml:"to"`
	FlightTime float64 `toml:"flight_time"`
	Cost       float64 `toml:"cost"`
}

// Topology is a set of routes plus airports that may have none.
//
// TOML layout:
//
//	airports = ["FLN", "MAO"]
//
//	[[routes]]
//	from = "GRU"
//	to = "GIG"
//	flight_time = 1.5
//	cost = 300
type Topology struct {
	Airports []string    `toml:"airports"`
	Routes   []RouteSpec `toml:"routes"`
}

// Default returns the demo network: seven routes between GRU, GIG, SSA,
// BSB and POA, plus the isolated airports FLN and MAO.
func Default() Topology {
	return Topology{
		Routes: []RouteSpec{
			{From: "GRU", To: "GIG", FlightTime: 1.5, Cost: 300},
			{From: "GRU", To: "SSA", FlightTime: 3.0, Cost: 500},
			{From: "GIG", To: "SSA", FlightTime: 2.5, Cost: 400},
			{From: "GIG", To: "BSB", FlightTime: 2.0, Cost: 350},
			{From: "SSA", To: "BSB", FlightTime: 1.8, Cost: 200},
			{From: "BSB", To: "GRU", FlightTime: 2.0, Cost: 320},
			{From: "POA", To: "GRU", FlightTime: 2.0, Cost: 450},
		},
		Airports: []string{"FLN", "MAO"},
	}
}

// Load decodes a topology from the TOML file at path.
func Load(path string) (Topology, error) {
	var t Topology
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Topology{}, fmt.Errorf("seed: failed to decode %s: %w", path, err)
	}
	return t, nil
}

// Decode decodes a topology from TOML text.
func Decode(data string) (Topology, error) {
	var t Topology
	if _, err := toml.Decode(data, &t); err != nil {
		return Topology{}, fmt.Errorf("seed: failed to decode topology: %w", err)
	}
	return t, nil
}

// Apply adds every route and airport of t to n. Codes are upper-cased.
// Weights are checked with network.ValidWeight before anything is added,
// so a rejected topology leaves n untouched. Otherwise it stops at the
// first failing entry.
func Apply(n *network.Network, t Topology) error {
	if n == nil {
		return ErrNilNetwork
	}
	for i, r := range t.Routes {
		if !network.ValidWeight(r.FlightTime) {
			return fmt.Errorf("%w: route #%d %s -> %s flight_time=%v", ErrInvalidWeight, i, r.From, r.To, r.FlightTime)
		}
		if !network.ValidWeight(r.Cost) {
			return fmt.Errorf("%w: route #%d %s -> %s cost=%v", ErrInvalidWeight, i, r.From, r.To, r.Cost)
		}
	}
	for i, r := range t.Routes {
		from, to := normalize(r.From), normalize(r.To)
		if err := n.AddRoute(from, to, r.FlightTime, r.Cost); err != nil {
			return fmt.Errorf("seed: route #%d %s -> %s: %w", i, from, to, err)
		}
	}
	for _, code := range t.Airports {
		if err := n.AddAirport(normalize(code)); err != nil {
			return fmt.Errorf("seed: airport %q: %w", code, err)
		}
	}

	log.Infof("network initialized: %d routes, %d airports", n.RouteCount(), n.Len())
	log.Debugf("airports: %s", strings.Join(n.Airports(), ", "))

	return nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
