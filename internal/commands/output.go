package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// row is one labelled line of text output.
type row struct {
	label string
	value string
}

// emit writes result as YAML, or rows as an aligned two-column listing.
func (o *rootOptions) emit(w io.Writer, result any, rows []row) error {
	if o.output == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.label, r.value)
	}
	return tw.Flush()
}

// deducted renders an amount taken off a total.
func (o *rootOptions) deducted(amount float64) string {
	return "-" + o.money.Format(amount)
}
