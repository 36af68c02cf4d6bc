package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/router"
)

const (
	formatText = "text"
	formatJSON = "json"

	destPrompt = "Enter your destination: "
)

var errBadFormat = errors.New("unknown output format")

// routeJSON is the JSON shape of one answer. Distance is null when the
// destination is unreachable, since JSON has no infinity.
type routeJSON struct {
	Source    int      `json:"source"`
	Dest      int      `json:"dest"`
	Name      string   `json:"name,omitempty"`
	Distance  *float64 `json:"distance"`
	Label     string   `json:"label"`
	Edges     []int    `json:"edges"`
	Reachable bool     `json:"reachable"`
}

func (a *app) toJSON(rt router.Route) routeJSON {
	out := routeJSON{
		Source:    rt.Source,
		Dest:      rt.Dest,
		Label:     rt.Label,
		Edges:     rt.Edges,
		Reachable: rt.Reachable,
	}
	if a.doc != nil {
		out.Name = a.doc.Names[rt.Dest]
	}
	if rt.Reachable {
		d := rt.Distance
		out.Distance = &d
	}

	return out
}

// formatDistance prints six significant digits; +Inf for unreachable.
func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "+Inf"
	}

	return strconv.FormatFloat(d, 'g', 6, 64)
}

func checkFormat(f string) error {
	if f != formatText && f != formatJSON {
		return fmt.Errorf("%w: %q (want %s or %s)", errBadFormat, f, formatText, formatJSON)
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)

	return err
}

func newRouteCmd(a *app) *cobra.Command {
	var (
		from, to int
		format   string
	)
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the shortest route from one location to another",
		Long: `Print the distance and walking directions from --from to --to.

Without --to the destination is read from standard input.

Examples:
  campusroute route --to 16
  campusroute route --from 29 --to 0 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			r, err := a.newRouter()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("to") {
				if to, err = promptDest(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			rt, err := r.Route(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			a.log.Debug().Int("from", from).Int("to", to).Bool("reachable", rt.Reachable).Msg("route")

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), a.toJSON(rt))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatDistance(rt.Distance), rt.Label)

			return err
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "Source location")
	cmd.Flags().IntVar(&to, "to", 0, "Destination location (prompted for when omitted)")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text, json)")

	return cmd
}

// promptDest asks for a destination index and reads one integer.
func promptDest(in io.Reader, out io.Writer) (int, error) {
	if _, err := io.WriteString(out, destPrompt); err != nil {
		return 0, err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("read destination: %w", err)
	}
	dest, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("read destination: %w", err)
	}

	return dest, nil
}

func newTableCmd(a *app) *cobra.Command {
	var (
		from   int
		format string
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the shortest route from one location to every location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			r, err := a.newRouter()
			if err != nil {
				return err
			}
			res, err := r.Result(cmd.Context(), from)
			if err != nil {
				return err
			}

			routes := make([]router.Route, 0, res.Len())
			for v := 0; v < res.Len(); v++ {
				rt, err := r.Route(cmd.Context(), from, v)
				if err != nil {
					return err
				}
				routes = append(routes, rt)
			}

			if format == formatJSON {
				out := make([]routeJSON, len(routes))
				for i, rt := range routes {
					out[i] = a.toJSON(rt)
				}

				return writeJSON(cmd.OutOrStdout(), out)
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, rt := range routes {
				fmt.Fprintf(w, "%d %s %s\n", rt.Dest, formatDistance(rt.Distance), rt.Label)
			}

			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "Source location")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text, json)")

	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and build the graph, then report its size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			res, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithLogger(a.log))
			if err != nil && g.VertexCount() > 0 {
				return err
			}
			reachable := 0
			if res != nil {
				reachable = res.ReachableCount()
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d vertices, %d edges, %d reachable from 0\n",
				a.graphName(), g.VertexCount(), g.EdgeCount(), reachable)

			return err
		},
	}
}
