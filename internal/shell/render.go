package shell

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/airnet/network"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// criterionLayover names the connection-aware fastest query in JSON output.
const criterionLayover = "flight_time_layover"

// query identifies which path query produced a result.
type query struct {
	sel     network.Selector
	layover bool
}

func (q query) criterion() string {
	if q.layover {
		return criterionLayover
	}
	return q.sel.String()
}

// resultView is the JSON shape of a query outcome.
type resultView struct {
	Path          []string `json:"path,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Unit          string   `json:"unit,omitempty"`
	Criterion     string   `json:"criterion"`
	MinConnection *float64 `json:"min_connection,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// render prints a path query outcome. err is the call error (unknown
// airport); res.Err is the no-route outcome.
func (s *Shell) render(res network.PathResult, err error, q query) {
	if s.opts.Format == FormatJSON {
		s.renderJSON(res, err, q)
		return
	}

	switch {
	case err != nil:
		s.printf("Origin or destination airport not found.\n")
	case !res.OK():
		s.printf("Could not find a route: %v\n", res.Err)
	default:
		s.printf("Path: %s\n", strings.Join(res.Path, " -> "))
		label := "Total time"
		switch {
		case q.layover:
			label = "Total time (with layovers)"
		case q.sel == network.ByCost:
			label = "Total cost"
		}
		s.printf("%s: %s %s\n", label, formatNumber(res.Weight), res.Unit)
		if q.layover && res.MinConnection != nil {
			s.printf("Detail: %sh at each connection.\n", formatNumber(*res.MinConnection))
		}
	}
}

func (s *Shell) renderJSON(res network.PathResult, err error, q query) {
	view := resultView{Criterion: q.criterion()}
	switch {
	case err != nil:
		view.Error = err.Error()
	case !res.OK():
		view.Error = res.Err.Error()
		view.MinConnection = res.MinConnection
	default:
		w := res.Weight
		view.Path = res.Path
		view.Weight = &w
		view.Unit = res.Unit
		view.MinConnection = res.MinConnection
	}

	data, mErr := json.Marshal(view)
	if mErr != nil {
		s.printf("[ERROR] %v\n", mErr)
		return
	}
	s.printf("%s\n", data)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
