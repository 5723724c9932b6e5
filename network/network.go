package network

import "sort"

// Network is a directed flight network keyed by airport code.
//
// airports is the authoritative airport set; routes[origin][destination]
// holds the weights of each route. Every airport has a (possibly empty)
// routes bucket and every route endpoint is in airports.
type Network struct {
	airports map[string]struct{}
	routes   map[string]map[string]Weights
	currency string
}

// New creates an empty Network.
// Complexity: O(1)
func New(opts ...Option) *Network {
	n := &Network{
		airports: make(map[string]struct{}),
		routes:   make(map[string]map[string]Weights),
		currency: DefaultCurrency,
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Currency returns the unit label used for cost results.
func (n *Network) Currency() string { return n.currency }

// AddAirport inserts code with no routes. Adding an existing airport is a no-op.
//
// Implementation:
//   - Stage 1: Reject an empty code.
//   - Stage 2: If missing, register the code and bootstrap an empty routes
//     bucket so every airport can be ranged over as an origin.
//
// Complexity: O(1) amortized.
//
// Errors:
//   - ErrEmptyCode if code == "".
func (n *Network) AddAirport(code string) error {
	if code == "" {
		return ErrEmptyCode
	}
	if _, ok := n.airports[code]; ok {
		return nil
	}
	n.airports[code] = struct{}{}
	n.routes[code] = make(map[string]Weights)

	return nil
}

// RemoveAirport deletes code together with every route leaving or entering it.
//
// Errors:
//   - ErrAirportNotFound if code is unknown.
//
// Complexity: O(V) for the incoming-route scan.
func (n *Network) RemoveAirport(code string) error {
	if !n.HasAirport(code) {
		return notFound(code)
	}

	// 1) Outgoing routes go with the bucket.
	delete(n.routes, code)

	// 2) Incoming routes live in every other origin's bucket.
	for _, out := range n.routes {
		delete(out, code)
	}

	// 3) Finally the airport itself.
	delete(n.airports, code)

	return nil
}

// HasAirport reports whether code is a known airport.
func (n *Network) HasAirport(code string) bool {
	_, ok := n.airports[code]
	return ok
}

// Airports returns every airport code sorted ascending.
// Complexity: O(V log V).
func (n *Network) Airports() []string {
	codes := make([]string, 0, len(n.airports))
	for code := range n.airports {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes
}

// Len returns the number of airports.
func (n *Network) Len() int { return len(n.airports) }

// RouteCount returns the number of routes.
func (n *Network) RouteCount() int {
	total := 0
	for _, out := range n.routes {
		total += len(out)
	}

	return total
}

// AddRoute sets the weights of origin→destination, creating either airport
// when missing. An existing route is overwritten, never duplicated.
//
// Weights are stored as given. Negative values are not rejected here; they
// flow into path sums and make query results meaningless, but never panic.
// Input boundaries screen them with ValidWeight.
//
// Implementation:
//   - Stage 1: AddAirport both endpoints (no-op when present).
//   - Stage 2: Overwrite routes[origin][destination].
//
// Complexity: O(1) amortized.
//
// Errors:
//   - ErrEmptyCode if origin or destination is empty.
func (n *Network) AddRoute(origin, destination string, flightTime, cost float64) error {
	if err := n.AddAirport(origin); err != nil {
		return err
	}
	if err := n.AddAirport(destination); err != nil {
		return err
	}
	n.routes[origin][destination] = Weights{FlightTime: flightTime, Cost: cost}

	return nil
}

// RemoveRoute deletes origin→destination. Both airports stay.
//
// Complexity: O(1).
//
// Errors:
//   - ErrRouteNotFound if origin is unknown or has no route to destination.
func (n *Network) RemoveRoute(origin, destination string) error {
	out, ok := n.routes[origin]
	if !ok {
		return routeNotFound(origin, destination)
	}
	if _, ok = out[destination]; !ok {
		return routeNotFound(origin, destination)
	}
	delete(out, destination)

	return nil
}

// Route returns the route origin→destination if it exists.
func (n *Network) Route(origin, destination string) (Route, bool) {
	w, ok := n.routes[origin][destination]
	if !ok {
		return Route{}, false
	}

	return Route{Origin: origin, Destination: destination, Weights: w}, true
}

// DirectRoutes lists the routes leaving origin sorted by destination code.
// An airport without outgoing routes yields an empty, non-nil slice.
//
// Complexity: O(d log d) for d outgoing routes.
//
// Errors:
//   - ErrAirportNotFound if origin is unknown.
func (n *Network) DirectRoutes(origin string) ([]Route, error) {
	if !n.HasAirport(origin) {
		return nil, notFound(origin)
	}
	out := n.routes[origin]
	res := make([]Route, 0, len(out))
	for _, dest := range sortedKeys(out) {
		res = append(res, Route{Origin: origin, Destination: dest, Weights: out[dest]})
	}

	return res, nil
}

// sortedKeys returns the destination codes of out in ascending order.
func sortedKeys(out map[string]Weights) []string {
	keys := make([]string, 0, len(out))
	for k := range out {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
