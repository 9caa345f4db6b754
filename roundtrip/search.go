package roundtrip

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/skyloop/skyloop/flight"
)

// Search binds a flight.Graph to an origin and a set of constraints.
// Construct with New, drive with Run, interrupt with Stop.
//
// A Search holds no per-run state: Run may be called repeatedly (each call
// counts afresh), and an unmodified graph with an unset stop token yields
// the same set of itineraries every time.
type Search struct {
	graph  *flight.Graph
	origin string
	opts   Options
}

// walker owns the mutable state of one Run: the serialized sink, the
// delivery lock, and the result counter. Branch state (path, visited set)
// is never stored here — each branch carries its own copies.
type walker struct {
	graph  *flight.Graph
	origin string
	opts   Options

	sink  Sink
	muOut sync.Mutex    // serializes sink delivery
	found atomic.Uint64 // successful deliveries this run
}

// New validates the configuration and returns a ready Search.
//
// Errors:
//   - ErrNilGraph    if g is nil.
//   - ErrEmptyOrigin if origin is the empty string.
func New(g *flight.Graph, origin string, opts ...Option) (*Search, error) {
	// 1. Validate required inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if origin == "" {
		return nil, ErrEmptyOrigin
	}

	// 2. Apply options over defaults.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Fill in runtime defaults that options left unset.
	if o.Stop == nil {
		o.Stop = NewStopToken()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Parallelism < 1 {
		o.Parallelism = 1
	}

	return &Search{graph: g, origin: origin, opts: o}, nil
}

// Stop requests cooperative cancellation via the search's stop token.
func (s *Search) Stop() {
	s.opts.Stop.Request()
}

// Token returns the stop token driving this search, for callers that want
// to arm deadlines (StopToken.RequestAfter) or share the token elsewhere.
func (s *Search) Token() *StopToken {
	return s.opts.Stop
}

// Run explores the graph from the configured origin and delivers every
// valid round-trip itinerary to sink. It returns the number of itineraries
// successfully delivered during this run.
//
// Runs are exhaustive unless cancelled: the walk ends when every branch is
// exhausted, the depth bound prunes the rest, or the stop token is observed.
// A nil sink is a configuration error (ErrNilSink); everything else — an
// origin with no outgoing legs, MaxFlights below 2 — simply yields zero.
func (s *Search) Run(sink Sink) (uint64, error) {
	if sink == nil {
		return 0, ErrNilSink
	}

	w := &walker{graph: s.graph, origin: s.origin, opts: s.opts, sink: sink}

	first := s.graph.Outgoing(s.origin)
	s.opts.Logger.Info("starting search",
		"origin", s.origin,
		"first_legs", len(first),
		"max_flights", s.opts.MaxFlights,
	)

	// No itinerary can both leave and return below two legs.
	if s.opts.MaxFlights < 2 || len(first) == 0 {
		return 0, nil
	}

	if s.opts.Parallelism == 1 {
		w.runSequential(first)
	} else {
		w.runParallel(first)
	}

	return w.found.Load(), nil
}

// runSequential walks first-leg branches one after another, giving fully
// deterministic emission order for a fixed graph.
func (w *walker) runSequential(first []flight.Leg) {
	var leg flight.Leg
	for _, leg = range first {
		if w.opts.Stop.Stopped() {
			return
		}
		if leg.Destination == w.origin {
			continue // a self-loop cannot start a round trip
		}
		w.explore(
			[]flight.Leg{leg},
			map[string]struct{}{w.origin: {}, leg.Destination: {}},
			1,
		)
	}
}

// runParallel fans first-leg branches across Parallelism workers. Branch
// state is copied per branch, so workers share only the stop token, the
// delivery lock, and the counter; emission order becomes unspecified.
func (w *walker) runParallel(first []flight.Leg) {
	branches := make(chan flight.Leg)
	var wg sync.WaitGroup

	for i := 0; i < w.opts.Parallelism; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for leg := range branches {
				w.explore(
					[]flight.Leg{leg},
					map[string]struct{}{w.origin: {}, leg.Destination: {}},
					1,
				)
			}
		}()
	}

	var leg flight.Leg
	for _, leg = range first {
		if w.opts.Stop.Stopped() {
			break
		}
		if leg.Destination == w.origin {
			continue
		}
		branches <- leg
	}
	close(branches)
	wg.Wait()
}

// explore advances one branch: path holds the legs taken so far, visited the
// origin plus every intermediate destination, depth == len(path).
//
// Closing and extension candidates are scanned in the graph's stored edge
// order; the stop token is polled at entry and per candidate.
func (w *walker) explore(path []flight.Leg, visited map[string]struct{}, depth int) {
	// 1. Poll cancellation and the depth bound at branch entry.
	if w.opts.Stop.Stopped() || depth >= w.opts.MaxFlights {
		return
	}

	last := path[len(path)-1]
	here := last.Destination

	// 2. Closing moves: any return leg to the origin that departs after the
	//    last arrival and satisfies the stay rule completes an itinerary.
	//    Emission does not terminate the branch.
	if here != w.origin {
		var cand flight.Leg
		for _, cand = range w.graph.Outgoing(here) {
			if w.opts.Stop.Stopped() {
				return
			}
			if cand.Destination != w.origin {
				continue
			}
			if cand.Departure <= last.Arrival {
				continue
			}
			if !ValidStay(last.Arrival, cand.Departure, w.opts.MinNights, w.opts.MaxNights) {
				continue
			}
			w.deliver(appendLeg(path, cand))
		}
	}

	// 3. Extension moves: recurse while one more leg still leaves room for
	//    the eventual return within the depth bound.
	if depth+1 >= w.opts.MaxFlights {
		return
	}
	var next flight.Leg
	for _, next = range w.graph.Outgoing(here) {
		if w.opts.Stop.Stopped() {
			return
		}
		if next.Destination == w.origin {
			continue
		}
		if _, seen := visited[next.Destination]; seen {
			continue
		}
		if next.Departure <= last.Arrival {
			continue
		}
		if !ValidStay(last.Arrival, next.Departure, w.opts.MinNights, w.opts.MaxNights) {
			continue
		}

		// Branch-local copies: the recursion never mutates the caller's
		// path or visited set, so backtracking needs no undo step.
		nextVisited := make(map[string]struct{}, len(visited)+1)
		for id := range visited {
			nextVisited[id] = struct{}{}
		}
		nextVisited[next.Destination] = struct{}{}

		w.explore(appendLeg(path, next), nextVisited, depth+1)
	}
}

// deliver hands one completed itinerary to the sink under the delivery lock.
// A failed delivery is logged and dropped — never retried, never fatal.
func (w *walker) deliver(itinerary []flight.Leg) {
	w.muOut.Lock()
	err := w.sink.Accept(itinerary)
	w.muOut.Unlock()

	if err != nil {
		w.opts.Logger.Error("dropping itinerary: sink rejected delivery",
			"route", Route(itinerary),
			"err", err,
		)

		return
	}

	n := w.found.Add(1)
	if w.opts.ProgressEvery > 0 && n%w.opts.ProgressEvery == 0 {
		w.opts.Logger.Info("search progress", "found", n)
	}
}

// appendLeg returns a fresh slice holding path plus leg, leaving path
// untouched for the caller's other candidates.
func appendLeg(path []flight.Leg, leg flight.Leg) []flight.Leg {
	out := make([]flight.Leg, len(path)+1)
	copy(out, path)
	out[len(path)] = leg

	return out
}
