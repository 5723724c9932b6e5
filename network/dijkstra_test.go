package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnet/network"
)

func TestShortestPath_Demo(t *testing.T) {
	n := buildDemo(t)

	cases := []struct {
		name     string
		from, to string
		sel      network.Selector
		path     []string
		weight   float64
		unit     string
	}{
		{"fastest GRU-BSB", "GRU", "BSB", network.ByFlightTime, []string{"GRU", "GIG", "BSB"}, 3.5, network.UnitHours},
		{"cheapest GRU-BSB", "GRU", "BSB", network.ByCost, []string{"GRU", "GIG", "BSB"}, 650, network.DefaultCurrency},
		{"fastest POA-SSA", "POA", "SSA", network.ByFlightTime, []string{"POA", "GRU", "SSA"}, 5.0, network.UnitHours},
		{"cheapest SSA-GIG", "SSA", "GIG", network.ByCost, []string{"SSA", "BSB", "GRU", "GIG"}, 820, network.DefaultCurrency},
		{"fastest BSB-SSA", "BSB", "SSA", network.ByFlightTime, []string{"BSB", "GRU", "SSA"}, 5.0, network.UnitHours},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := n.ShortestPath(tc.from, tc.to, tc.sel)
			require.NoError(t, err)
			require.True(t, res.OK(), "unexpected failure: %v", res.Err)
			assert.Equal(t, tc.path, res.Path)
			assert.InDelta(t, tc.weight, res.Weight, 1e-9)
			assert.Equal(t, tc.unit, res.Unit)
			assert.Nil(t, res.MinConnection)
			assert.False(t, res.Layover())
		})
	}
}

func TestShortestPath_NoRoute(t *testing.T) {
	n := buildDemo(t)

	res, err := n.ShortestPath("MAO", "GRU", network.ByFlightTime)
	require.NoError(t, err, "unreachable is a result, not an error")
	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err, network.ErrNoRoute)
	assert.Nil(t, res.Path)
	assert.Equal(t, network.UnitHours, res.Unit)

	res, err = n.ShortestPath("GRU", "POA", network.ByCost)
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err, network.ErrNoRoute)
}

func TestShortestPath_SameAirport(t *testing.T) {
	n := buildDemo(t)

	for _, code := range []string{"GRU", "MAO"} {
		res, err := n.ShortestPath(code, code, network.ByCost)
		require.NoError(t, err)
		require.True(t, res.OK())
		assert.Equal(t, []string{code}, res.Path)
		assert.Zero(t, res.Weight)
	}
}

func TestShortestPath_Errors(t *testing.T) {
	n := buildDemo(t)

	_, err := n.ShortestPath("XXX", "GRU", network.ByFlightTime)
	assert.ErrorIs(t, err, network.ErrAirportNotFound)

	_, err = n.ShortestPath("GRU", "XXX", network.ByCost)
	assert.ErrorIs(t, err, network.ErrAirportNotFound)

	_, err = n.ShortestPath("GRU", "GIG", network.Selector(7))
	assert.ErrorIs(t, err, network.ErrBadSelector)
}

func TestShortestPath_Idempotent(t *testing.T) {
	n := buildDemo(t)

	first, err := n.ShortestPath("POA", "BSB", network.ByCost)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := n.ShortestPath("POA", "BSB", network.ByCost)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestShortestPath_TieBreakIsStable(t *testing.T) {
	// A→B→D and A→C→D both weigh 2.
	n := network.New()
	require.NoError(t, n.AddRoute("A", "C", 1, 1))
	require.NoError(t, n.AddRoute("A", "B", 1, 1))
	require.NoError(t, n.AddRoute("C", "D", 1, 1))
	require.NoError(t, n.AddRoute("B", "D", 1, 1))

	res, err := n.ShortestPath("A", "D", network.ByFlightTime)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Weight)
	assert.Equal(t, []string{"A", "B", "D"}, res.Path)
}

func TestShortestPath_Rounding(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddRoute("A", "B", 0.1, 10.004))
	require.NoError(t, n.AddRoute("B", "C", 0.2, 10.004))

	res, err := n.ShortestPath("A", "C", network.ByFlightTime)
	require.NoError(t, err)
	assert.Equal(t, 0.3, res.Weight)

	res, err = n.ShortestPath("A", "C", network.ByCost)
	require.NoError(t, err)
	assert.Equal(t, 20.01, res.Weight)
}

func TestShortestPath_CurrencyLabel(t *testing.T) {
	n := network.New(network.WithCurrency("USD"))
	require.NoError(t, n.AddRoute("A", "B", 1, 99))

	res, err := n.ShortestPath("A", "B", network.ByCost)
	require.NoError(t, err)
	assert.Equal(t, "USD", res.Unit)
}

func TestShortestPath_NegativeCycleTerminates(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddRoute("A", "B", -1, -1))
	require.NoError(t, n.AddRoute("B", "A", -1, -1))
	require.NoError(t, n.AddAirport("Z"))

	assert.NotPanics(t, func() {
		res, err := n.ShortestPath("A", "Z", network.ByFlightTime)
		require.NoError(t, err)
		assert.ErrorIs(t, res.Err, network.ErrNoRoute)
	})
}

func TestShortestPathWithLayover_Demo(t *testing.T) {
	n := buildDemo(t)

	res, err := n.ShortestPathWithLayover("GRU", "BSB", 1.0)
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, []string{"GRU", "GIG", "BSB"}, res.Path)
	assert.InDelta(t, 4.5, res.Weight, 1e-9)
	assert.Equal(t, network.UnitHours, res.Unit)
	require.NotNil(t, res.MinConnection)
	assert.Equal(t, 1.0, *res.MinConnection)
}

func TestShortestPathWithLayover_FirstLegFree(t *testing.T) {
	n := buildDemo(t)

	res, err := n.ShortestPathWithLayover("GRU", "GIG", 5.0)
	require.NoError(t, err)
	assert.Equal(t, []string{"GRU", "GIG"}, res.Path)
	assert.Equal(t, 1.5, res.Weight)
}

func TestShortestPathWithLayover_PenaltyChangesWinner(t *testing.T) {
	// Direct A→D is 5h; A→B→C→D flies 3h but has two connections.
	n := network.New()
	require.NoError(t, n.AddRoute("A", "D", 5, 0))
	require.NoError(t, n.AddRoute("A", "B", 1, 0))
	require.NoError(t, n.AddRoute("B", "C", 1, 0))
	require.NoError(t, n.AddRoute("C", "D", 1, 0))

	plain, err := n.ShortestPath("A", "D", network.ByFlightTime)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, plain.Path)

	zero, err := n.ShortestPathWithLayover("A", "D", 0)
	require.NoError(t, err)
	assert.Equal(t, plain.Path, zero.Path)
	assert.Equal(t, plain.Weight, zero.Weight)
	require.NotNil(t, zero.MinConnection, "a zero penalty is still echoed")
	assert.Zero(t, *zero.MinConnection)
	assert.True(t, zero.Layover())

	res, err := n.ShortestPathWithLayover("A", "D", 1.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, res.Path)
	assert.Equal(t, 5.0, res.Weight)
}

func TestShortestPathWithLayover_PenaltyFollowsStoredPath(t *testing.T) {
	// B is first reached directly (A→B, 5h), then improved through C
	// (1 + 1 + 2 penalty = 4h) before it is popped. The leg B→D is judged
	// on B's stored path at that point, [A C B], and pays the penalty again.
	n := network.New()
	require.NoError(t, n.AddRoute("A", "B", 5, 0))
	require.NoError(t, n.AddRoute("A", "C", 1, 0))
	require.NoError(t, n.AddRoute("C", "B", 1, 0))
	require.NoError(t, n.AddRoute("B", "D", 1, 0))
	require.NoError(t, n.AddRoute("A", "D", 7.5, 0))

	res, err := n.ShortestPathWithLayover("A", "B", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, res.Path)
	assert.Equal(t, 4.0, res.Weight)

	res, err = n.ShortestPathWithLayover("A", "D", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, res.Path)
	assert.Equal(t, 7.0, res.Weight)

	// One more hour of penalty tips it to the direct flight.
	res, err = n.ShortestPathWithLayover("A", "D", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, res.Path)
	assert.Equal(t, 7.5, res.Weight)
}

func TestShortestPathWithLayover_OnePenaltyPerStop(t *testing.T) {
	n := buildDemo(t)
	const minConn = 0.7

	for _, from := range n.Airports() {
		for _, to := range n.Airports() {
			res, err := n.ShortestPathWithLayover(from, to, minConn)
			require.NoError(t, err)
			if !res.OK() {
				continue
			}

			flight := 0.0
			for i := 1; i < len(res.Path); i++ {
				r, ok := n.Route(res.Path[i-1], res.Path[i])
				require.True(t, ok)
				flight += r.FlightTime
			}
			stops := len(res.Path) - 2
			if stops < 0 {
				stops = 0
			}
			assert.InDelta(t, flight+minConn*float64(stops), res.Weight, 0.005, "%s -> %s via %v", from, to, res.Path)
		}
	}
}

func TestShortestPathWithLayover_Errors(t *testing.T) {
	n := buildDemo(t)

	_, err := n.ShortestPathWithLayover("XXX", "GRU", 1)
	assert.ErrorIs(t, err, network.ErrAirportNotFound)

	res, err := n.ShortestPathWithLayover("MAO", "GRU", 1)
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err, network.ErrNoRoute)
	require.NotNil(t, res.MinConnection)
	assert.Equal(t, 1.0, *res.MinConnection)

	res, err = n.ShortestPathWithLayover("FLN", "FLN", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"FLN"}, res.Path)
	assert.Zero(t, res.Weight)
}

func TestSelector_String(t *testing.T) {
	assert.Equal(t, "flight_time", network.ByFlightTime.String())
	assert.Equal(t, "cost", network.ByCost.String())
	assert.Equal(t, "selector(9)", network.Selector(9).String())
}
