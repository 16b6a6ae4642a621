// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'funcalc.cli'.
func trace() tracing.Trace {
	return tracing.Select("funcalc.cli")
}

// Formatter writes an item to an output. It returns false if it does not
// know how to format the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings, errors and tables. Strings are
// preceded by Marker.
type DefaultFormatter struct {
	Marker string // e.g. "▶ "
}

// Format is part of interface Formatter.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		_, err := fmt.Fprintf(w, "%s%s\n", df.Marker, t)
		return true, err
	case error:
		_, err := fmt.Fprintf(w, "%serror: %s\n", df.Marker, t.Error())
		return true, err
	case table.Writer:
		if t == nil {
			_, err := fmt.Fprintf(w, "%s(empty table)\n", df.Marker)
			return true, err
		}
		_, err := fmt.Fprintf(w, "%s\n", t.Render())
		return true, err
	}
	return false, nil
}

// NewTable creates a table writer with the style used for REPL listings.
func NewTable(header ...interface{}) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row(header))
	return tw
}
