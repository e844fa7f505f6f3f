package options

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON   bool
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
	cmd.Flags().StringVarP(&po.Output, "output", "o", "",
		"Output format. One of 'json' or 'yaml'; empty prints tables.")
}

// Format is the structured format asked for, or "" for tables.
func (o *OutputOptions) Format() string {
	if o.JSON {
		return printers.FormatJSON
	}
	return strings.ToLower(strings.TrimSpace(o.Output))
}

// Structured reports whether tables should be skipped.
func (o *OutputOptions) Structured() bool {
	return o.Format() != ""
}

// Print writes v in the requested structured format.
func (o *OutputOptions) Print(v interface{}) error {
	return printers.Structured(color.Output, o.Format(), v)
}

func (o *OutputOptions) HandleError(err error) error {
	if o.Structured() && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		if o.Format() == printers.FormatYAML {
			return printers.Structured(color.Output, printers.FormatYAML, out)
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
