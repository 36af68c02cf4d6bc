package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
)

// Decode reads one document in the given format. Unknown fields are rejected
// so that a misspelt key ("wieght") fails loudly instead of yielding zero weights.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r, yaml.Strict()).Decode(&doc); err != nil {
			return nil, fmt.Errorf("loader: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("loader: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Encode writes doc in the given format.
func Encode(w io.Writer, doc *Document, format Format) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("loader: encode %s: %w", format, err)
	}
	_, err = w.Write(data)

	return err
}

// LoadFile opens path, infers the format from its extension, transparently
// decompresses a ".gz" suffix and decodes the document.
func LoadFile(path string) (*Document, error) {
	format, compressed, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if compressed {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("loader: gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	doc, err := Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// SaveFile writes doc to path in the format implied by its extension,
// gzip-compressing when the name ends in ".gz".
func SaveFile(path string, doc *Document) (err error) {
	format, compressed, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !compressed {
		return Encode(f, doc, format)
	}
	zw := gzip.NewWriter(f)
	if err = Encode(zw, doc, format); err != nil {
		return err
	}

	return zw.Close()
}
