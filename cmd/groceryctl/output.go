package main

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// render writes v to the configured output in the selected format.
func (s *settings) render(v interface{}) error {
	switch s.output {
	case "yaml":
		enc := yaml.NewEncoder(s.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", s.output)
	}
}
