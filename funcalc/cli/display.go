package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/funcalc"
	"github.com/npillmayer/funcalc/evaluator"
	"github.com/npillmayer/funcalc/funcalc/ui/termui"
)

// Formatter prints evaluation results and listings.
type Formatter struct {
	termui.DefaultFormatter
	Precision int // decimal places, or -1 for the exact value
}

// Format is part of interface termui.Formatter.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case evaluator.Result:
		switch t.Kind {
		case evaluator.NumberValue:
			return f.DefaultFormatter.Format(funcalc.FormatValue(t.Value, f.Precision), w)
		case evaluator.PlotOutput:
			_, err := fmt.Fprintln(w, t.Frame)
			return true, err
		}
		return true, nil // nothing to show
	case []evaluator.Binding:
		tw := termui.NewTable("variable", "value")
		for _, b := range t {
			tw.AppendRow([]interface{}{b.Name, funcalc.FormatValue(b.Value, f.Precision)})
		}
		return f.DefaultFormatter.Format(tw, w)
	case []evaluator.Definition:
		tw := termui.NewTable("function", "definition")
		for _, d := range t {
			sig := d.Name + "(" + strings.Join(d.Params, ", ") + ")"
			tw.AppendRow([]interface{}{sig, d.Body})
		}
		return f.DefaultFormatter.Format(tw, w)
	}
	if ok, err := f.DefaultFormatter.Format(item, w); ok {
		return ok, err
	}
	tracer().Debugf("no format for type %T", item)
	_, err := fmt.Fprintf(w, "%sobject of type %T\n", f.Marker, item)
	return true, err
}
