package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type variable struct {
	name string
	val  float32
}

// loadVars reads a YAML mapping of variable names to numbers. Variables are
// returned in the order they appear so that their slots follow the file.
func loadVars(r io.Reader) ([]variable, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: variables must be a mapping of names to numbers", root.Line)
	}
	vars := make([]variable, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		var f float32
		if err := v.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: variable %s: %w", v.Line, k.Value, err)
		}
		vars = append(vars, variable{name: k.Value, val: f})
	}
	return vars, nil
}
