package layout

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed layout.yaml
var defaultLayout []byte

// Layout is the directory and file set produced by one scaffold run.
type Layout struct {
	Version  string   `yaml:"version"`
	BasePath string   `yaml:"base_path"`
	Files    []string `yaml:"files"`
}

var (
	defaultOnce sync.Once
	defaultVal  *Layout
	defaultErr  error
)

// Default returns the embedded component layout. Each call returns an
// independent copy so callers may modify it freely.
func Default() (*Layout, error) {
	defaultOnce.Do(func() {
		defaultVal, defaultErr = Parse(defaultLayout)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded layout: %w", defaultErr)
		}
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultVal.clone(), nil
}

// Parse validates raw YAML against the layout schema and the supported
// format version, then decodes it.
func Parse(data []byte) (*Layout, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			msgs = append(msgs, issue.String())
		}
		return nil, fmt.Errorf("invalid layout: %s", strings.Join(msgs, "; "))
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	if err := CheckVersion(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Dir returns the base directory of the layout resolved under root.
func (l *Layout) Dir(root string) string {
	return filepath.Join(root, filepath.FromSlash(l.BasePath))
}

// Paths returns every file path of the layout resolved under root, in order.
func (l *Layout) Paths(root string) []string {
	dir := l.Dir(root)
	paths := make([]string, len(l.Files))
	for i, name := range l.Files {
		paths[i] = filepath.Join(dir, name)
	}
	return paths
}

func (l *Layout) clone() *Layout {
	c := *l
	c.Files = append([]string(nil), l.Files...)
	return &c
}
