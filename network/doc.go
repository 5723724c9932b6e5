// Package network provides an in-memory directed, weighted flight network
// and single-source shortest-path queries over it.
//
// Overview:
//
//   - Airports are vertices identified by a unique code (e.g. "GRU").
//     An airport may exist without any route.
//   - Routes are directed edges carrying two independent weights:
//     FlightTime (hours) and Cost (currency units). At most one route exists
//     per ordered (origin, destination) pair; adding it again overwrites it.
//   - Queries: direct routes, reachability (BFS), fastest or cheapest path
//     (Dijkstra) and fastest path with a per-connection layover penalty.
//
// Path queries:
//
//   - Dijkstra uses a binary min-heap with lazy deletion: improved distances
//     are pushed as new entries and stale entries are skipped on pop.
//   - The search stops as soon as the destination is popped.
//   - Neighbors are relaxed in ascending destination-code order, so ties
//     between equal-weight paths resolve the same way on every call.
//   - An unreachable destination is not a Go error: the PathResult carries
//     ErrNoRoute in its Err field.
//
// Layover penalty:
//
//	The layover variant adds MinConnection to the flight time of a leg u→v
//	whenever u is not the origin and the best path known for u at relaxation
//	time already has more than one airport. The first leg never pays it.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per path query, O(V + E) for HasPath.
//   - Space: O(V + E) for the heap plus O(V·L) for stored paths of length L.
//
// Concurrency:
//
//	Network is not safe for concurrent use. Callers own one instance and
//	serialize every mutation and query against it.
//
// Errors (sentinel):
//
//   - ErrNotFound        root of the not-found class.
//   - ErrAirportNotFound unknown airport code (wraps ErrNotFound).
//   - ErrRouteNotFound   no route for the ordered pair (wraps ErrNotFound).
//   - ErrNoRoute         destination unreachable (carried in PathResult).
//   - ErrEmptyCode       empty airport code.
//   - ErrBadSelector     unknown weight Selector.
//
// Example usage:
//
//	n := network.New()
//	_ = n.AddRoute("GRU", "GIG", 1.5, 300)
//	_ = n.AddRoute("GIG", "BSB", 2.0, 350)
//	res, err := n.ShortestPath("GRU", "BSB", network.ByFlightTime)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Weight, res.Unit) // [GRU GIG BSB] 3.5 hours
package network
