// Package loader builds core.Graph values from graph documents: YAML or JSON
// files (optionally gzip-compressed) and the embedded campus walking graph.
//
// Graph construction is kept out of core and dijkstra; the engine only ever
// sees a finished, frozen *core.Graph.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for document loading.
var (
	// ErrUnknownFormat indicates a file extension or format name that is not YAML or JSON.
	ErrUnknownFormat = errors.New("loader: unknown document format")

	// ErrBadDocument indicates a structurally invalid document (e.g. negative vertex count).
	ErrBadDocument = errors.New("loader: invalid graph document")
)

// Format identifies the encoding of a graph document.
type Format int

const (
	// FormatYAML is decoded with goccy/go-yaml.
	FormatYAML Format = iota
	// FormatJSON is decoded with goccy/go-json.
	FormatJSON
)

// String returns the canonical name of f.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// gzipExt marks a compressed document.
const gzipExt = ".gz"

// FormatFromPath infers the format from a file name such as "campus.yaml" or
// "campus.json.gz". compressed reports a trailing ".gz".
func FormatFromPath(path string) (f Format, compressed bool, err error) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, gzipExt) {
		compressed = true
		name = strings.TrimSuffix(name, gzipExt)
	}
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	case ".json":
		return FormatJSON, compressed, nil
	default:
		return FormatYAML, compressed, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// ParseFormat maps "yaml"/"yml"/"json" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatYAML, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// EdgeSpec is one undirected edge of a graph document.
type EdgeSpec struct {
	From        int     `yaml:"from" json:"from"`
	To          int     `yaml:"to" json:"to"`
	Weight      float64 `yaml:"weight" json:"weight"`
	Description string  `yaml:"description" json:"description"`
}

// Names maps vertex indices to display names. In YAML the keys may be bare
// (`0: Kininvie`) or quoted (`"0": Kininvie`); the encoder writes quoted keys.
type Names map[int]string

// UnmarshalYAML accepts integer keys written either way and rejects any
// other key with ErrBadDocument.
func (n *Names) UnmarshalYAML(data []byte) error {
	var raw map[any]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: names: %v", ErrBadDocument, err)
	}
	if raw == nil {
		*n = nil
		return nil
	}
	out := make(Names, len(raw))
	for k, name := range raw {
		v, err := strconv.Atoi(fmt.Sprint(k))
		if err != nil {
			return fmt.Errorf("%w: name key %q is not a vertex index", ErrBadDocument, fmt.Sprint(k))
		}
		out[v] = name
	}
	*n = out

	return nil
}

// Document is the on-disk shape of a graph: a vertex count, optional display
// names, and the edges in insertion order. Edge order matters: among parallel
// edges the first listed is the one used for routing.
type Document struct {
	Vertices int            `yaml:"vertices" json:"vertices"`
	Names    Names          `yaml:"names,omitempty" json:"names,omitempty"`
	Edges    []EdgeSpec     `yaml:"edges" json:"edges"`
}

// Name returns the display name of vertex v, or its index when unnamed.
func (d *Document) Name(v int) string {
	if n, ok := d.Names[v]; ok && n != "" {
		return n
	}

	return strconv.Itoa(v)
}

// Validate checks the document-level invariants that core.Graph cannot see:
// a non-negative vertex count and names that refer to existing vertices.
// Edge endpoints and weights are checked by Build through core.
func (d *Document) Validate() error {
	if d.Vertices < 0 {
		return fmt.Errorf("%w: vertices=%d", ErrBadDocument, d.Vertices)
	}
	for v := range d.Names {
		if v < 0 || v >= d.Vertices {
			return fmt.Errorf("%w: name for vertex %d outside [0,%d)", ErrBadDocument, v, d.Vertices)
		}
	}

	return nil
}
