package network

import "fmt"

func notFound(code string) error {
	return fmt.Errorf("%w %q", ErrAirportNotFound, code)
}

func routeNotFound(origin, destination string) error {
	return fmt.Errorf("%w %s -> %s", ErrRouteNotFound, origin, destination)
}

// checkEndpoints verifies both codes are known airports.
func (n *Network) checkEndpoints(origin, destination string) error {
	if !n.HasAirport(origin) {
		return notFound(origin)
	}
	if !n.HasAirport(destination) {
		return notFound(destination)
	}

	return nil
}
