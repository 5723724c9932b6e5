// Package shell implements the interactive airnet menu on top of a
// network.Network. It reads user input line by line, normalizes airport
// codes, validates numbers and renders query results as text or JSON.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/airnet/network"
)

// ErrInvalidInput reports a malformed number typed by the user.
var ErrInvalidInput = errors.New("shell: invalid input")

// Output formats for query results.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options tunes a Shell.
type Options struct {
	// Format is FormatText (default) or FormatJSON.
	Format string
	// MinConnection is used when the layover prompt is left blank.
	MinConnection float64
}

// Option configures a Shell.
type Option func(*Options)

// WithFormat selects the result format; unknown values keep FormatText.
func WithFormat(format string) Option {
	return func(o *Options) {
		if format == FormatJSON {
			o.Format = FormatJSON
		}
	}
}

// WithMinConnection sets the default layover penalty in hours.
func WithMinConnection(hours float64) Option {
	return func(o *Options) {
		if hours >= 0 {
			o.MinConnection = hours
		}
	}
}

// Shell is one interactive session owning a single network.
type Shell struct {
	net  *network.Network
	in   *bufio.Scanner
	out  io.Writer
	opts Options
}

// New creates a Shell reading from in and writing to out.
func New(n *network.Network, in io.Reader, out io.Writer, opts ...Option) *Shell {
	o := Options{Format: FormatText, MinConnection: 1.0}
	for _, opt := range opts {
		opt(&o)
	}

	return &Shell{
		net:  n,
		in:   bufio.NewScanner(in),
		out:  out,
		opts: o,
	}
}

// Run drives the main menu until the user exits or input ends.
// It returns nil on exit and on EOF, and the reader's error otherwise.
func (s *Shell) Run() error {
	log.Debug("shell session started")
	for {
		s.mainMenu()
		choice, err := s.ask("Enter your choice (0-6): ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = s.manage()
		case "2":
			err = s.directFlights()
		case "3":
			err = s.checkRoute()
		case "4":
			err = s.pathQuery(network.ByFlightTime)
		case "5":
			err = s.pathQuery(network.ByCost)
		case "6":
			err = s.layoverQuery()
		case "0":
			s.printf("Leaving the flight route simulator. Goodbye!\n")
			log.Debug("shell session finished")
			return nil
		default:
			s.printf("[ERROR] Invalid option. Please choose a number between 0 and 6.\n")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func (s *Shell) mainMenu() {
	line := strings.Repeat("=", 50)
	s.printf("\n%s\nMAIN MENU - FLIGHT ROUTES\n%s\n", line, line)
	s.printf("1. Add/Remove Airport/Route\n")
	s.printf("2. List Direct Flights\n")
	s.printf("3. Check Route Exists\n")
	s.printf("4. Fastest Path (time)\n")
	s.printf("5. Cheapest Path (cost)\n")
	s.printf("6. Fastest Path with Minimum Connection\n")
	s.printf("0. Exit\n%s\n", line)
}

// manage runs the airport/route management submenu.
func (s *Shell) manage() error {
	for {
		s.printf("\n--- Management ---\n")
		s.printf("1. Add Airport\n2. Remove Airport\n3. Add Route\n4. Remove Route\n0. Back to Main Menu\n")
		choice, err := s.ask("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.addAirport()
		case "2":
			err = s.removeAirport()
		case "3":
			err = s.addRoute()
		case "4":
			err = s.removeRoute()
		case "0":
			return nil
		default:
			s.printf("[ERROR] Invalid option. Try again.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) addAirport() error {
	code, err := s.askCode("Airport code (e.g. GRU): ")
	if err != nil {
		return err
	}
	if err = s.net.AddAirport(code); err != nil {
		s.printf("[ERROR] %v\n", err)
		return nil
	}
	log.WithField("airport", code).Info("airport added")
	s.printf("[SUCCESS] Airport %s added.\n", code)
	return nil
}

func (s *Shell) removeAirport() error {
	code, err := s.askCode("Airport code to remove: ")
	if err != nil {
		return err
	}
	if err = s.net.RemoveAirport(code); err != nil {
		s.printf("[RESULT] Error: airport %s not found.\n", code)
		return nil
	}
	log.WithField("airport", code).Info("airport removed")
	s.printf("[RESULT] Airport %s removed with all its routes.\n", code)
	return nil
}

func (s *Shell) addRoute() error {
	origin, destination, err := s.askPair()
	if err != nil {
		return err
	}
	flightTime, err := s.askNumber("Flight time in hours (e.g. 1.5): ")
	if err != nil {
		return s.reportInvalid(err, "Flight time and cost must be valid non-negative numbers.")
	}
	cost, err := s.askNumber(fmt.Sprintf("Flight cost in %s: ", s.net.Currency()))
	if err != nil {
		return s.reportInvalid(err, "Flight time and cost must be valid non-negative numbers.")
	}
	if err = s.net.AddRoute(origin, destination, flightTime, cost); err != nil {
		s.printf("[ERROR] %v\n", err)
		return nil
	}
	log.WithFields(log.Fields{
		"origin":      origin,
		"destination": destination,
		"flight_time": flightTime,
		"cost":        cost,
	}).Info("route added")
	s.printf("[SUCCESS] Route %s -> %s added (Time: %sh, Cost: %s%s).\n",
		origin, destination, formatNumber(flightTime), s.net.Currency(), formatNumber(cost))
	return nil
}

func (s *Shell) removeRoute() error {
	origin, destination, err := s.askPair()
	if err != nil {
		return err
	}
	if err = s.net.RemoveRoute(origin, destination); err != nil {
		s.printf("[RESULT] Error: route %s -> %s not found.\n", origin, destination)
		return nil
	}
	log.WithFields(log.Fields{"origin": origin, "destination": destination}).Info("route removed")
	s.printf("[RESULT] Route %s -> %s removed.\n", origin, destination)
	return nil
}

func (s *Shell) directFlights() error {
	if !s.listAirports() {
		return nil
	}
	origin, err := s.askCode("Departure airport code: ")
	if err != nil {
		return err
	}

	s.printf("\n--- Query Result ---\n")
	routes, err := s.net.DirectRoutes(origin)
	switch {
	case err != nil:
		s.printf("Error: airport %s not found.\n", origin)
	case len(routes) == 0:
		s.printf("No direct flights departing from %s.\n", origin)
	default:
		s.printf("Direct flights departing from %s:\n", origin)
		for _, r := range routes {
			s.printf("  -> %s: Time: %sh, Cost: %s%s\n",
				r.Destination, formatNumber(r.FlightTime), s.net.Currency(), formatNumber(r.Cost))
		}
	}
	return nil
}

func (s *Shell) checkRoute() error {
	if !s.listAirports() {
		return nil
	}
	origin, destination, err := s.askPair()
	if err != nil {
		return err
	}

	ok, err := s.net.HasPath(origin, destination)
	var msg string
	switch {
	case err != nil:
		msg = "Airport(s) not found."
	case ok && origin == destination:
		msg = "Origin and destination are the same airport."
	case ok:
		msg = "Route found."
	default:
		msg = "No route found."
	}
	s.printf("\n[RESULT] Route from %s to %s: %t (%s)\n", origin, destination, ok, msg)
	return nil
}

func (s *Shell) pathQuery(sel network.Selector) error {
	if !s.listAirports() {
		return nil
	}
	origin, destination, err := s.askPair()
	if err != nil {
		return err
	}

	res, err := s.net.ShortestPath(origin, destination, sel)
	log.WithFields(log.Fields{
		"origin":      origin,
		"destination": destination,
		"selector":    sel.String(),
	}).Debug("shortest path query")

	title := "Fastest (time)"
	if sel == network.ByCost {
		title = "Cheapest (cost)"
	}
	s.printf("\n--- %s Path Result ---\n", title)
	s.render(res, err, query{sel: sel})
	return nil
}

func (s *Shell) layoverQuery() error {
	if !s.listAirports() {
		return nil
	}
	origin, destination, err := s.askPair()
	if err != nil {
		return err
	}
	minConn, err := s.askOptionalNumber(
		fmt.Sprintf("Minimum connection time in hours (blank for %s): ", formatNumber(s.opts.MinConnection)),
		s.opts.MinConnection,
	)
	if err != nil {
		return s.reportInvalid(err, "Connection time must be a valid non-negative number.")
	}

	res, err := s.net.ShortestPathWithLayover(origin, destination, minConn)
	log.WithFields(log.Fields{
		"origin":         origin,
		"destination":    destination,
		"min_connection": minConn,
	}).Debug("layover path query")

	s.printf("\n--- Path with Connections Result ---\n")
	s.render(res, err, query{sel: network.ByFlightTime, layover: true})
	return nil
}

// listAirports prints the known codes; it reports false on an empty network.
func (s *Shell) listAirports() bool {
	if s.net.Len() == 0 {
		s.printf("[ERROR] The network has no airports. Add routes first.\n")
		return false
	}
	s.printf("\n--- Available Airports ---\nCodes: %s\n", strings.Join(s.net.Airports(), ", "))
	return true
}

// reportInvalid prints msg for ErrInvalidInput and passes other errors up.
func (s *Shell) reportInvalid(err error, msg string) error {
	if errors.Is(err, ErrInvalidInput) {
		log.WithError(err).Debug("rejected input")
		s.printf("[ERROR] %s\n", msg)
		return nil
	}
	return err
}

func (s *Shell) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// ask prints prompt and returns the next trimmed input line.
func (s *Shell) ask(prompt string) (string, error) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// askCode reads an airport code and upper-cases it.
func (s *Shell) askCode(prompt string) (string, error) {
	code, err := s.ask(prompt)
	return strings.ToUpper(code), err
}

func (s *Shell) askPair() (string, string, error) {
	origin, err := s.askCode("Origin airport: ")
	if err != nil {
		return "", "", err
	}
	destination, err := s.askCode("Destination airport: ")
	if err != nil {
		return "", "", err
	}
	return origin, destination, nil
}

func (s *Shell) askNumber(prompt string) (float64, error) {
	text, err := s.ask(prompt)
	if err != nil {
		return 0, err
	}
	return ParseWeight(text)
}

func (s *Shell) askOptionalNumber(prompt string, fallback float64) (float64, error) {
	text, err := s.ask(prompt)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return fallback, nil
	}
	return ParseWeight(text)
}

// ParseWeight converts user text into a finite non-negative number.
// A decimal comma is accepted ("1,5" == "1.5").
func ParseWeight(text string) (float64, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, text)
	}
	if !network.ValidWeight(v) {
		return 0, fmt.Errorf("%w: %q must be finite and non-negative", ErrInvalidInput, text)
	}
	return v, nil
}

// endOfInput turns EOF into a clean session end.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		log.Debug("input closed, ending shell session")
		return nil
	}
	return err
}
