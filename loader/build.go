package loader

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Build constructs the graph described by d, adds its edges in document order
// and freezes it. An invalid edge aborts the build; the error names its index.
func (d *Document) Build(opts ...core.GraphOption) (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	all := make([]core.GraphOption, 0, len(opts)+1)
	all = append(all, core.WithEdgeCapacity(len(d.Edges)))
	all = append(all, opts...)

	g, err := core.NewGraph(d.Vertices, all...)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	for i, e := range d.Edges {
		if _, err = g.AddEdge(e.From, e.To, e.Weight, e.Description); err != nil {
			return nil, fmt.Errorf("loader: edge %d: %w", i, err)
		}
	}
	g.Freeze()

	return g, nil
}

//go:embed campus.yaml
var campusYAML []byte

// Campus returns the 30-location campus walking graph as a fresh Document.
func Campus() (*Document, error) {
	return Decode(bytes.NewReader(campusYAML), FormatYAML)
}
