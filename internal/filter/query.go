package filter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"cli-tabdb-helper/internal/dataset"
)

// LoadQueryFile reads a YAML mapping of field name to raw value, e.g.
//
//	artist: A
//	year: 2020
//
// Values go through the same coercion as interactive input.
func LoadQueryFile(path string) (Raw, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read query file: %w", err)
	}
	return ParseQuery(data)
}

// ParseQuery parses the YAML body of a query file.
func ParseQuery(data []byte) (Raw, error) {
	var doc map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}

	raw := make(Raw, len(doc))
	var unknown []string
	for name, value := range doc {
		f, ok := dataset.ParseField(name)
		if !ok || f == dataset.FieldSong {
			unknown = append(unknown, name)
			continue
		}
		raw[f] = value
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown filter field(s) in query: %s", strings.Join(unknown, ", "))
	}
	return raw, nil
}
