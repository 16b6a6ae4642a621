package evaluator

import (
	"fmt"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/funcalc/grammar"
)

// plot samples a user function at x = start, start+step, … while x < end
// and draws the samples onto a fresh canvas.
//
// A plot fails if the step would never reach the end, or if it takes more
// than the configured number of samples.
func (ev *Evaluator) plot(p *grammar.Plot) (Result, error) {
	fname := ev.name(p.Fn)
	if _, ok := ev.functions[p.Fn]; !ok {
		return Result{}, ev.fail(fmt.Errorf("%w: %s", ErrUndefinedFunction, fname))
	}
	var bounds [3]float64
	for i, e := range []grammar.Expr{p.Start, p.End, p.Step} {
		x, err := ev.eval(e, nil)
		if err != nil {
			return Result{}, err
		}
		bounds[i] = x
	}
	start, end, step := bounds[0], bounds[1], bounds[2]
	if start < end && !(step > 0) {
		return Result{}, ev.fail(fmt.Errorf("%w: %s from %g to %g needs a positive step, have %g",
			ErrPlot, fname, start, end, step))
	}
	tracer().P("fun", fname).Debugf("plot from %g to %g, step %g", start, end, step)
	c := ev.newCanvas()
	var points []arithm.Pair
	for x := start; x < end; x += step {
		if err := ev.interrupted(); err != nil {
			return Result{}, err
		}
		if len(points) >= ev.maxSamples {
			return Result{}, ev.fail(fmt.Errorf("%w: %s needs more than %d samples",
				ErrPlot, fname, ev.maxSamples))
		}
		y, err := ev.call(p.Fn, []float64{x})
		if err != nil {
			return Result{}, err
		}
		c.Set(x, y)
		points = append(points, arithm.P(x, y))
	}
	tracer().P("fun", fname).Debugf("plotted %d samples", len(points))
	return Result{Kind: PlotOutput, Frame: c.Frame(), Points: points}, nil
}
