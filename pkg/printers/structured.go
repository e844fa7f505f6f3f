package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Emit writes a command result in a structured format. Runners print tables
// when it is nil.
type Emit func(v interface{}) error

// Structured writes v as indented JSON or as YAML. YAML output goes through
// JSON first so both formats share the json field names.
func Structured(w io.Writer, format string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	switch format {
	case FormatJSON:
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML, "yml":
		var generic interface{}
		if err := json.Unmarshal(b, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q, want json or yaml", format)
}
