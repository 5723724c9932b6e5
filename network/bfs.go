package network

// HasPath reports whether destination is reachable from origin by following
// routes forward. An airport always reaches itself.
//
// Implementation:
//   - Breadth-first walk from origin with a visited set, so cycles terminate.
//   - Stops as soon as destination is dequeued.
//
// Errors:
//   - ErrAirportNotFound if either code is unknown.
//
// Complexity: O(V + E) time, O(V) space.
func (n *Network) HasPath(origin, destination string) (bool, error) {
	if err := n.checkEndpoints(origin, destination); err != nil {
		return false, err
	}
	if origin == destination {
		return true, nil
	}

	w := &walker{
		net:     n,
		queue:   make([]string, 0, len(n.airports)),
		visited: make(map[string]bool, len(n.airports)),
	}
	w.enqueue(origin)

	return w.reaches(destination), nil
}

// walker holds the mutable BFS state.
type walker struct {
	net     *Network
	queue   []string
	visited map[string]bool
}

func (w *walker) enqueue(code string) {
	w.visited[code] = true
	w.queue = append(w.queue, code)
}

// reaches drains the queue until target is dequeued or nothing is left.
func (w *walker) reaches(target string) bool {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		if cur == target {
			return true
		}
		for next := range w.net.routes[cur] {
			if !w.visited[next] {
				w.enqueue(next)
			}
		}
	}

	return false
}
