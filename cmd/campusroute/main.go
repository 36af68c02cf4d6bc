// Package main provides the campusroute CLI: shortest walking routes over the
// campus graph, or over any graph document given with --graph.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/loader"
	"github.com/katalvlaran/lvroute/router"
)

// app carries the persistent flags and the state derived from them.
type app struct {
	graphPath string
	logLevel  string
	strategy  string

	log zerolog.Logger
	doc *loader.Document
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "campusroute",
		Short: "Shortest walking routes between campus locations",
		Long: `campusroute computes single-source shortest paths over an undirected,
weighted graph and prints the distance and the walking directions for each route.

Without --graph the built-in 30-location campus graph is used.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.graphPath, "graph", "", "Graph document (.yaml, .json, optionally .gz); default is the built-in campus graph")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.strategy, "strategy", "heap", "Minimum-selection strategy (heap, scan)")

	root.AddCommand(newRouteCmd(a), newTableCmd(a), newValidateCmd(a))

	return root
}

func (a *app) setupLogger(cmd *cobra.Command) error {
	lvl, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	out := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}
	a.log = zerolog.New(out).Level(lvl).With().Timestamp().Logger()

	return nil
}

// loadGraph decodes the selected document and builds its frozen graph.
func (a *app) loadGraph() (*core.Graph, error) {
	var (
		doc *loader.Document
		err error
	)
	if a.graphPath == "" {
		doc, err = loader.Campus()
	} else {
		doc, err = loader.LoadFile(a.graphPath)
	}
	if err != nil {
		return nil, err
	}
	g, err := doc.Build()
	if err != nil {
		return nil, err
	}
	a.doc = doc
	a.log.Info().Str("graph", a.graphName()).Int("vertices", g.VertexCount()).Int("edges", g.EdgeCount()).Msg("graph loaded")

	return g, nil
}

func (a *app) graphName() string {
	if a.graphPath == "" {
		return "campus"
	}

	return a.graphPath
}

// newRouter loads the graph and wraps it in a Router configured from the flags.
func (a *app) newRouter() (*router.Router, error) {
	s, err := dijkstra.ParseStrategy(a.strategy)
	if err != nil {
		return nil, err
	}
	g, err := a.loadGraph()
	if err != nil {
		return nil, err
	}

	return router.New(g, dijkstra.WithStrategy(s), dijkstra.WithLogger(a.log)), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
