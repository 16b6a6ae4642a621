package evaluator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/funcalc/evaluator"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type recordingCanvas struct {
	xs, ys []float64
}

func (c *recordingCanvas) Set(x, y float64) {
	c.xs = append(c.xs, x)
	c.ys = append(c.ys, y)
}

func (c *recordingCanvas) Frame() string {
	return "frame"
}

func TestPlotSamplesFunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.eval")
	defer teardown()
	//
	var c *recordingCanvas
	ev := evaluator.New(evaluator.WithCanvas(func() evaluator.Canvas {
		c = &recordingCanvas{}
		return c
	}))
	r, err := run(t, ev, "fun sq(x) = x * x", "%plot2d(sq, 0, 2, 0.5)")
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != evaluator.PlotOutput || r.Frame != "frame" {
		t.Errorf("expected plot output with rendered frame, have %v", r)
	}
	wantX := []float64{0, 0.5, 1, 1.5}
	wantY := []float64{0, 0.25, 1, 2.25}
	if len(c.xs) != len(wantX) {
		t.Fatalf("expected %d samples, have %d", len(wantX), len(c.xs))
	}
	for i := range wantX {
		if c.xs[i] != wantX[i] || c.ys[i] != wantY[i] {
			t.Errorf("sample %d: expected (%g,%g), have (%g,%g)", i, wantX[i], wantY[i], c.xs[i], c.ys[i])
		}
	}
	if len(r.Points) != 4 || r.Points[3].X() != 1.5 || r.Points[3].Y() != 2.25 {
		t.Errorf("expected result to carry the samples, have %v", r.Points)
	}
}

func TestPlotRangeExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.eval")
	defer teardown()
	//
	ev := evaluator.New()
	r, err := run(t, ev, "n = 4", "fun line(x) = 2 * x", "%plot2d(line, n - 4, n, n / 4)")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Points) != 4 {
		t.Errorf("expected 4 samples, have %d", len(r.Points))
	}
	// (0,0) and (1,2) share the first cell, (2,4) and (3,6) one in the second row
	if lines := strings.Split(r.Frame, "\n"); len(lines) != 2 || !strings.HasPrefix(lines[0], "⠡") {
		t.Errorf("expected braille frame of 2 rows starting with '⠡', have %q", r.Frame)
	}
	// empty range is not an error
	r, err = ev.Run("%plot2d(line, 5, 5, 0)")
	if err != nil || len(r.Points) != 0 {
		t.Errorf("expected empty plot, have %v, %v", r.Points, err)
	}
}

func TestPlotErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.eval")
	defer teardown()
	//
	ev := evaluator.New(evaluator.WithMaxSamples(10))
	run(t, ev, "fun sq(x) = x * x", "fun two(a, b) = a + b", "0")
	for i, x := range []struct {
		input string
		err   error
	}{
		{"%plot2d(nope, 0, 1, 0.1)", evaluator.ErrUndefinedFunction},
		{"%plot2d(sq, 0, 1, 0)", evaluator.ErrPlot},
		{"%plot2d(sq, 0, 1, -1)", evaluator.ErrPlot},
		{"%plot2d(sq, 0, 100, 1)", evaluator.ErrPlot},
		{"%plot2d(sq, 0, 1, undefined)", evaluator.ErrUndefinedVariable},
		{"%plot2d(two, 0, 1, 0.5)", evaluator.ErrInsufficientArguments},
	} {
		if _, err := ev.Run(x.input); !errors.Is(err, x.err) {
			t.Errorf("test %d: expected %v, have %v", i, x.err, err)
		}
	}
	if _, err := ev.Run("%plot2d(sq, 0, 10, 1)"); err != nil {
		t.Errorf("expected 10 samples to be within the limit, have %v", err)
	}
}
