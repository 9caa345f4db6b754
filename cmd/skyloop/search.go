package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/skyloop/skyloop/flight"
	"github.com/skyloop/skyloop/roundtrip"
	"github.com/skyloop/skyloop/sink"
)

func searchCmd() *cobra.Command {
	var (
		configPath string
		graphPath  string
		origin     string
		outPath    string
		minNights  int
		maxNights  int
		maxFlights int
		parallel   int
		maxCost    float64
		timeout    time.Duration

		neo4jURI  string
		neo4jUser string
		neo4jPass string
		neo4jDB   string
	)

	c := &cobra.Command{
		Use:   "search",
		Short: "Enumerate round-trip itineraries and stream them as JSON Lines or into Neo4j",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Config file fills in whatever flags the caller did not set.
			if configPath != "" {
				cfg, err := loadFileConfig(configPath)
				if err != nil {
					return err
				}

				flags := cmd.Flags()
				if !flags.Changed("graph") && cfg.Graph != "" {
					graphPath = cfg.Graph
				}
				if !flags.Changed("origin") && cfg.Origin != "" {
					origin = cfg.Origin
				}
				if !flags.Changed("min-nights") {
					minNights = cfg.MinNights
				}
				if !flags.Changed("max-nights") {
					maxNights = cfg.MaxNights
				}
				if !flags.Changed("max-flights") && cfg.MaxFlights != 0 {
					maxFlights = cfg.MaxFlights
				}
				if !flags.Changed("max-cost") {
					maxCost = cfg.MaxCost
				}
				if !flags.Changed("parallel") && cfg.Parallel != 0 {
					parallel = cfg.Parallel
				}
				if !flags.Changed("out") && cfg.Out != "" {
					outPath = cfg.Out
				}
				if !flags.Changed("timeout") {
					d, derr := cfg.timeoutDuration()
					if derr != nil {
						return derr
					}
					if d > 0 {
						timeout = d
					}
				}
			}

			if graphPath == "" {
				return errors.New("a graph file is required (--graph or config)")
			}
			if origin == "" {
				return errors.New("an origin is required (--origin or config)")
			}

			var gopts []flight.GraphOption
			if maxCost > 0 {
				gopts = append(gopts, flight.WithMaxCost(maxCost))
			}
			g, err := flight.LoadGraph(graphPath, gopts...)
			if err != nil {
				return err
			}
			slog.Info("graph loaded", "path", graphPath, "nodes", len(g.Nodes()), "legs", g.LegCount())

			token := roundtrip.NewStopToken()
			search, err := roundtrip.New(g, origin,
				roundtrip.WithMinNights(minNights),
				roundtrip.WithMaxNights(maxNights),
				roundtrip.WithMaxFlights(maxFlights),
				roundtrip.WithParallelism(parallel),
				roundtrip.WithStopToken(token),
			)
			if err != nil {
				return err
			}

			// SIGINT/SIGTERM request a cooperative stop; in-flight branches
			// drain and the run reports what it found so far.
			signals := make(chan os.Signal, 1)
			signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(signals)
			go func() {
				sig, ok := <-signals
				if !ok {
					return
				}
				slog.Warn("shutdown signal received, stopping search", "signal", sig)
				token.Request()
			}()

			if timeout > 0 {
				cancel := token.RequestAfter(timeout)
				defer cancel()
			}

			dest, cleanup, err := resultSink(cmd.Context(), outPath, sink.Neo4jConfig{
				URI:      neo4jURI,
				Username: neo4jUser,
				Password: neo4jPass,
				Database: neo4jDB,
			})
			if err != nil {
				return err
			}
			defer cleanup()

			start := time.Now()
			total, err := search.Run(dest)
			if err != nil {
				return err
			}
			slog.Info("search finished",
				"found", total,
				"elapsed", time.Since(start).Round(time.Millisecond),
				"stopped", token.Stopped(),
			)

			return nil
		},
	}

	c.Flags().StringVar(&configPath, "config", "", "YAML search configuration (flags override)")
	c.Flags().StringVar(&graphPath, "graph", "", "JSON graph file to search")
	c.Flags().StringVar(&origin, "origin", "", "origin node ID, e.g. DUB")
	c.Flags().StringVarP(&outPath, "out", "o", "", "JSON Lines output path (default stdout)")
	c.Flags().IntVar(&minNights, "min-nights", 0, "minimum stopover nights (0 = connection mode)")
	c.Flags().IntVar(&maxNights, "max-nights", 0, "maximum stopover nights")
	c.Flags().IntVar(&maxFlights, "max-flights", 2, "maximum legs per itinerary")
	c.Flags().IntVar(&parallel, "parallel", 1, "workers for first-leg branches (1 = deterministic order)")
	c.Flags().Float64Var(&maxCost, "max-cost", 0, "drop legs above this cost at load time (0 = no cap)")
	c.Flags().DurationVar(&timeout, "timeout", 0, "stop the search after this duration (0 = none)")
	c.Flags().StringVar(&neo4jURI, "neo4j-uri", "", "persist results to this Neo4j instance instead of JSON Lines")
	c.Flags().StringVar(&neo4jUser, "neo4j-user", "neo4j", "Neo4j username")
	c.Flags().StringVar(&neo4jPass, "neo4j-pass", "", "Neo4j password")
	c.Flags().StringVar(&neo4jDB, "neo4j-db", "neo4j", "Neo4j database name")

	return c
}

// resultSink picks the destination for found itineraries: Neo4j when a URI
// is configured, otherwise JSON Lines to a file or stdout.
func resultSink(ctx context.Context, outPath string, neoCfg sink.Neo4jConfig) (roundtrip.Sink, func(), error) {
	if neoCfg.URI != "" {
		neo, err := sink.NewNeo4j(ctx, neoCfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if cerr := neo.Close(ctx); cerr != nil {
				slog.Error("closing neo4j sink", "err", cerr)
			}
		}

		return neo, cleanup, nil
	}

	var w io.Writer = os.Stdout
	cleanup := func() {}
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return nil, nil, err
		}
		w = f
		cleanup = func() {
			if cerr := f.Close(); cerr != nil {
				slog.Error("closing output file", "path", outPath, "err", cerr)
			}
		}
	}

	return sink.NewJSONL(w), cleanup, nil
}
