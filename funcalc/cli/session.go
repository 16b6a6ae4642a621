package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/knadh/koanf"
	"github.com/npillmayer/funcalc"
	"github.com/npillmayer/funcalc/evaluator"
	"golang.org/x/text/width"
)

// session is one calculator session, shared by batch mode and the REPL.
type session struct {
	ev        *evaluator.Evaluator
	ctx       context.Context // interrupts batch evaluation
	fold      bool            // fold full-width input to ASCII
	formatter Formatter
}

// newSession creates a session configured from k, which may be nil.
func newSession(k *koanf.Koanf) *session {
	if k == nil {
		k = koanf.New(".")
		funcalc.LoadDefaults(k)
	}
	ctx := funcalc.SignalContext
	if ctx == nil {
		ctx = context.Background()
	}
	s := &session{
		ev: evaluator.New(
			evaluator.WithMaxDepth(k.Int(funcalc.KeyMaxDepth)),
			evaluator.WithMaxSamples(k.Int(funcalc.KeyMaxSamples)),
			evaluator.WithContext(ctx),
		),
		ctx:       ctx,
		fold:      k.Bool(funcalc.KeyFoldWidth),
		formatter: Formatter{Precision: k.Int(funcalc.KeyPrecision)},
	}
	tracer().Debugf("session with precision %d, width folding %v", s.formatter.Precision, s.fold)
	return s
}

// evalLine evaluates one line of input, writing its result to out and
// diagnostics to errout. Evaluation stops with an error if ctx is done.
func (s *session) evalLine(ctx context.Context, line string, out, errout io.Writer) error {
	if s.fold {
		line = width.Fold.String(line)
	}
	r, err := s.ev.RunContext(ctx, line)
	if err != nil {
		s.formatter.Format(err, errout)
		return err
	}
	_, err = s.formatter.Format(r, out)
	return err
}

// runBatch evaluates statements in order, continuing after failures. It
// returns the number of failed statements. An interrupt stops the batch.
func (s *session) runBatch(stmts []string, out, errout io.Writer) int {
	failed := 0
	for _, stmt := range stmts {
		if err := s.evalLine(s.ctx, stmt, out, errout); err != nil {
			failed++
			if s.ctx.Err() != nil {
				break
			}
		}
	}
	return failed
}

// runReader evaluates every line of r, like runBatch. Lines may be of any
// length.
func (s *session) runReader(r io.Reader, out, errout io.Writer) (int, error) {
	failed := 0
	br := bufio.NewReader(r)
	for {
		line, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return failed, rerr
		}
		if line != "" {
			if err := s.evalLine(s.ctx, line, out, errout); err != nil {
				failed++
				if s.ctx.Err() != nil {
					return failed, nil
				}
			}
		}
		if rerr == io.EOF {
			return failed, nil
		}
	}
}
