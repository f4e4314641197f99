// Package fileio reads and writes whole text buffers through a configured
// text encoding. The core transform works on in-memory strings; this package
// is the collaborator that materializes them from files or streams and
// writes them back, decoding and encoding with the caller's chosen charset.
package fileio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// encodings maps the names accepted on the option surface to their codecs.
// UTF-16 variants read and write a byte-order mark.
var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf-8-bom":    unicode.UTF8BOM,
	"utf-16":       unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"latin-1":      charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

// ByName returns the named text encoding. Names are case-insensitive.
func ByName(name string) (encoding.Encoding, error) {
	enc, ok := encodings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return enc, nil
}

// Names lists the accepted encoding names, for help output.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	return names
}

// ReadAll decodes the whole stream with enc and returns it as a string.
func ReadAll(r io.Reader, enc encoding.Encoding) (string, error) {
	data, err := io.ReadAll(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("decoding input: %w", err)
	}
	return string(data), nil
}

// ReadFile decodes the named file with enc and returns it as a string.
func ReadFile(path string, enc encoding.Encoding) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()
	return ReadAll(f, enc)
}

// Write encodes text with enc and writes it to w.
func Write(w io.Writer, text string, enc encoding.Encoding) error {
	tw := transform.NewWriter(w, enc.NewEncoder())
	if _, err := tw.Write([]byte(text)); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return tw.Close()
}

// WriteFile encodes text with enc and writes it to the named file.
func WriteFile(path, text string, enc encoding.Encoding) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := Write(f, text, enc); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
