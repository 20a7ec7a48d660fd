// Package properties reads and writes the line-oriented key=value
// format used by Gradle's local.properties and key.properties.
package properties

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	javaproperties "github.com/magiconair/properties"
)

// Map is a set of properties keyed by property name.
// A Map returned by Load or Parse is not modified afterwards.
type Map map[string]string

// Get returns the value of key and whether it was present.
func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the keys of m in lexical order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseError is returned when a property file exists
// but cannot be read or is malformed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("read properties %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Gradle reads these files with java.util.Properties, which
// does not expand ${} references.
func newLoader() *javaproperties.Loader {
	return &javaproperties.Loader{
		Encoding:         javaproperties.UTF8,
		DisableExpansion: true,
	}
}

// Load parses the property file at name. A missing file is
// not an error: it yields an empty Map.
func Load(name string) (Map, error) {
	//nolint:gosec
	buf, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return Map{}, nil
	} else if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}

	m, err := parse(buf)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}

	return m, nil
}

// Parse reads properties from r the way java.util.Properties does:
// '#' and '!' start comments, the key ends at the first unescaped '=',
// ':' or whitespace, a trailing backslash continues the line and
// backslash escapes are decoded. Later duplicates win.
func Parse(r io.Reader) (Map, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return parse(buf)
}

func parse(buf []byte) (Map, error) {
	p, err := newLoader().LoadBytes(dropEmptyKeys(buf))
	if err != nil {
		return nil, err
	}

	return Map(p.Map()), nil
}

// dropEmptyKeys removes lines such as "=value" that have no key,
// leaving continuation lines of the previous entry alone.
func dropEmptyKeys(buf []byte) []byte {
	var (
		lines     = bytes.SplitAfter(buf, []byte("\n"))
		out       = make([]byte, 0, len(buf))
		continued bool
	)

	for _, line := range lines {
		var (
			content = bytes.TrimRight(line, "\r\n")
			trimmed = bytes.TrimLeft(content, " \t\f")
		)

		if !continued && (bytes.HasPrefix(trimmed, []byte("=")) || bytes.HasPrefix(trimmed, []byte(":"))) {
			continue
		}

		out = append(out, line...)

		if len(trimmed) > 0 && (continued || (trimmed[0] != '#' && trimmed[0] != '!')) {
			continued = (len(content)-len(bytes.TrimRight(content, "\\")))%2 == 1
		} else {
			continued = false
		}
	}

	return out
}

// Encode writes m to w, one key=value per line. If keys are given only
// those keys are written, in that order, skipping any not present in m;
// otherwise every key is written in lexical order.
func Encode(w io.Writer, m Map, keys ...string) error {
	if len(keys) == 0 {
		keys = m.Keys()
	}

	p := javaproperties.NewProperties()
	p.DisableExpansion = true
	p.WriteSeparator = "="

	for _, key := range keys {
		value, ok := m[key]
		if !ok {
			continue
		}

		if _, _, err := p.Set(key, value); err != nil {
			return err
		}
	}

	_, err := p.Write(w, javaproperties.UTF8)
	return err
}
