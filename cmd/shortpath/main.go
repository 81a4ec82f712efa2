// Command shortpath prints the minimum-cost path between two nodes of a
// directed graph, either the built-in a..h graph or one loaded from HCL.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/internal/cli"
	"github.com/katalvlaran/shortpath/internal/ctxlog"
	"github.com/katalvlaran/shortpath/internal/graphfile"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run holds the program logic; results go to outW, logs to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cfg, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	g, err := loadGraph(ctx, cfg.GraphPath)
	if err != nil {
		return err
	}

	fromLabel, toLabel := route(cfg, g)
	from, err := g.Lookup(fromLabel)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: fmt.Sprintf("-from: %v", err)}
	}
	to, err := g.Lookup(toLabel)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: fmt.Sprintf("-to: %v", err)}
	}

	var opts []dijkstra.Option
	registry := prometheus.NewRegistry()
	if cfg.Metrics {
		opts = append(opts, dijkstra.WithMetrics(dijkstra.NewMetrics(registry)))
	}

	res, err := dijkstra.ShortestPathContext(ctx, g.Store, from, to, opts...)
	if err != nil {
		return err
	}
	logger.Info("computation finished", "from", fromLabel, "to", toLabel,
		"found", res.Found(), "finalized", res.Stats.Finalized, "pruned", res.Stats.Pruned)

	if res.Found() {
		for _, n := range res.Path {
			fmt.Fprintf(outW, "%d - %s\n", n.ID, n.Payload)
		}
		fmt.Fprintf(outW, "total cost: %g\n", res.Cost)
	} else {
		fmt.Fprintf(outW, "no path from %s to %s\n", fromLabel, toLabel)
	}

	if cfg.Metrics {
		return writeMetrics(outW, registry)
	}
	return nil
}

func loadGraph(ctx context.Context, path string) (*graphfile.Graph, error) {
	if path == "" {
		return graphfile.Letters(ctx)
	}
	return graphfile.Load(ctx, path)
}

// route resolves the node labels: flags first, then the file's route block,
// then the defaults.
func route(cfg *cli.Config, g *graphfile.Graph) (string, string) {
	from, to := cli.DefaultFrom, cli.DefaultTo
	if g.Route != nil {
		from, to = g.Route.From, g.Route.To
	}
	if cfg.From != "" {
		from = cfg.From
	}
	if cfg.To != "" {
		to = cfg.To
	}
	return from, to
}

func writeMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
