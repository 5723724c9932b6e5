package network

import (
	"container/heap"
	"fmt"
	"math"
)

// ShortestPath finds the minimum-weight path from origin to destination,
// minimizing the route weight chosen by sel.
//
// Returns:
//   - PathResult with Path, Weight (rounded to 2 decimals) and Unit
//     ("hours" for ByFlightTime, the network currency for ByCost).
//     If destination is unreachable, PathResult.Err wraps ErrNoRoute.
//   - error: ErrAirportNotFound for unknown codes, ErrBadSelector for an
//     unknown sel.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (n *Network) ShortestPath(origin, destination string, sel Selector) (PathResult, error) {
	if sel != ByFlightTime && sel != ByCost {
		return PathResult{}, fmt.Errorf("%w: %s", ErrBadSelector, sel)
	}
	if err := n.checkEndpoints(origin, destination); err != nil {
		return PathResult{}, err
	}

	r := n.newRunner(origin, func(_ string, w Weights) float64 { return w.pick(sel) })
	r.run(destination)

	unit := UnitHours
	if sel == ByCost {
		unit = n.currency
	}

	return r.result(destination, unit), nil
}

// ShortestPathWithLayover finds the fastest path from origin to destination
// where every connection costs minConnection extra hours.
//
// When relaxing a leg u→v, minConnection is added to its flight time if u is
// not the origin and the best path known for u at that moment already holds
// more than one airport. The decision is taken at relaxation time, so it
// follows the path stored for u then, not necessarily the final optimum.
//
// Returns the same shapes as ShortestPath with Unit fixed to "hours" and
// MinConnection pointing at the penalty, even when it is zero.
func (n *Network) ShortestPathWithLayover(origin, destination string, minConnection float64) (PathResult, error) {
	if err := n.checkEndpoints(origin, destination); err != nil {
		return PathResult{}, err
	}

	var r *runner
	r = n.newRunner(origin, func(u string, w Weights) float64 {
		if u != origin && len(r.path[u]) > 1 {
			return w.FlightTime + minConnection
		}
		return w.FlightTime
	})
	r.run(destination)

	res := r.result(destination, UnitHours)
	res.MinConnection = &minConnection

	return res, nil
}

// legWeight returns the weight of leaving u along a route with weights w.
type legWeight func(u string, w Weights) float64

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	net    *Network            // The network being searched; read-only here.
	origin string              // Source airport code.
	leg    legWeight           // Weight of a leg, including any layover penalty.
	dist   map[string]float64  // Maps code → best-known distance from origin.
	path   map[string][]string // Maps code → best-known path from origin, origin first.
	pq     nodePQ              // Min-heap of *nodeItem for the lazy priority queue.
}

// newRunner sets every distance to +∞ except origin, every path to [origin],
// and seeds the heap with (0, origin).
func (n *Network) newRunner(origin string, leg legWeight) *runner {
	// 1) Allocate state sized by the airport count.
	V := len(n.airports)
	r := &runner{
		net:    n,
		origin: origin,
		leg:    leg,
		dist:   make(map[string]float64, V),
		path:   make(map[string][]string, V),
		pq:     make(nodePQ, 0, V),
	}
	// 2) dist[v] = +∞ and path[v] = [origin] for every airport v.
	for code := range n.airports {
		r.dist[code] = math.Inf(1)
		r.path[code] = []string{origin}
	}
	// 3) The origin is at distance zero and seeds the heap.
	r.dist[origin] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{code: origin, dist: 0})

	return r
}

// run pops vertices in distance order until destination is settled or the
// heap drains. Stale entries (popped distance above the best known) are
// skipped.
func (r *runner) run(destination string) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.code

		// 2) A better distance was pushed after this entry: skip it.
		if item.dist > r.dist[u] {
			continue
		}

		// 3) Weights are non-negative, so the destination is final once popped.
		if u == destination {
			return
		}

		// 4) Relax the routes leaving u.
		r.relax(u)
	}
}

// relax tries every route leaving u, in destination-code order.
func (r *runner) relax(u string) {
	out := r.net.routes[u]
	limit := len(r.net.airports)
	for _, v := range sortedKeys(out) {
		// Only reachable with negative weights: a strictly shorter walk that
		// revisits an airport. Refusing paths longer than V keeps the loop finite.
		if len(r.path[u]) >= limit {
			return
		}

		// 1) Candidate distance through u, penalty included.
		newDist := r.dist[u] + r.leg(u, out[v])

		// 2) Only a strict improvement counts; NaN never does.
		if !(newDist < r.dist[v]) {
			continue
		}
		r.dist[v] = newDist

		// 3) path[v] = path[u] + [v], copied so paths never share storage.
		p := make([]string, len(r.path[u]), len(r.path[u])+1)
		copy(p, r.path[u])
		r.path[v] = append(p, v)

		// 4) Lazy decrease-key: push a new entry, the old one goes stale.
		heap.Push(&r.pq, &nodeItem{code: v, dist: newDist})
	}
}

// result packages the outcome for destination: a NoRoute error when its
// distance is still +∞, otherwise its path and rounded distance.
func (r *runner) result(destination, unit string) PathResult {
	d := r.dist[destination]
	if math.IsInf(d, 1) {
		return PathResult{
			Unit: unit,
			Err:  fmt.Errorf("%w: %s -> %s", ErrNoRoute, r.origin, destination),
		}
	}

	return PathResult{
		Path:   r.path[destination],
		Weight: round2(d),
		Unit:   unit,
	}
}

// round2 rounds x to two decimal places.
func round2(x float64) float64 { return math.Round(x*100) / 100 }

// nodeItem is a heap entry: an airport and a tentative distance.
type nodeItem struct {
	code string  // airport code
	dist float64 // tentative distance from origin
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by code.
// Improvements push new entries; outdated ones are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of entries in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances fall back to the airport code.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].code < pq[j].code
}

// Swap swaps two entries.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
