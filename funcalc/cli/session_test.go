package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/npillmayer/funcalc"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/cobra"
)

func TestBatchEvaluation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.cli")
	defer teardown()
	//
	s := newSession(nil)
	var out, errout bytes.Buffer
	failed := s.runBatch([]string{
		"fun sq(x) = x * x",
		"sq(5)",
		"x = 3",
		"x + 1",
		"undefined_name",
		"13!",
	}, &out, &errout)
	if failed != 1 {
		t.Errorf("expected 1 failed statement, have %d", failed)
	}
	if out.String() != "25\n4\n1932053504\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if !strings.Contains(errout.String(), "undefined variable: undefined_name") {
		t.Errorf("expected diagnostic for undefined_name, have %q", errout.String())
	}
}

func TestReaderEvaluation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.cli")
	defer teardown()
	//
	s := newSession(nil)
	var out, errout bytes.Buffer
	failed, err := s.runReader(strings.NewReader("a = 2\n\n# comment\na ^ 10\n1 +\n"), &out, &errout)
	if err != nil {
		t.Fatal(err)
	}
	if failed != 1 || out.String() != "1024\n" {
		t.Errorf("expected 1024 and 1 failure, have %q and %d", out.String(), failed)
	}
}

func TestReaderLongLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.cli")
	defer teardown()
	//
	long := "1" + strings.Repeat(" + 1", 20000) // beyond 64 KiB
	s := newSession(nil)
	var out, errout bytes.Buffer
	failed, err := s.runReader(strings.NewReader(long+"\n2 * 3"), &out, &errout)
	if err != nil {
		t.Fatal(err)
	}
	if failed != 0 || out.String() != "20001\n6\n" {
		t.Errorf("expected 20001 and 6, have %q with %d failures: %s", out.String(), failed, errout.String())
	}
}

func TestInterruptStopsBatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.cli")
	defer teardown()
	//
	s := newSession(nil)
	var out, errout bytes.Buffer
	s.runBatch([]string{"fun id(x) = x"}, &out, &errout)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ctx = ctx
	failed := s.runBatch([]string{"1 + 1", "id(2)", "id(3)"}, &out, &errout)
	if failed != 1 {
		t.Errorf("expected the batch to stop after 1 failure, have %d", failed)
	}
	if out.String() != "2\n" {
		t.Errorf("expected only 1 + 1 to be printed, have %q", out.String())
	}
	if !strings.Contains(errout.String(), "interrupted") {
		t.Errorf("expected an interrupt diagnostic, have %q", errout.String())
	}
	// a fresh context lets the session continue
	out.Reset()
	if err := s.evalLine(context.Background(), "id(4)", &out, &errout); err != nil || out.String() != "4\n" {
		t.Errorf("expected id(4) = 4 after interrupt, have %q, %v", out.String(), err)
	}
}

func TestSessionConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.cli")
	defer teardown()
	//
	k := koanf.New(".")
	funcalc.LoadDefaults(k)
	k.Load(confmap.Provider(map[string]interface{}{
		funcalc.KeyPrecision: 2,
		funcalc.KeyMaxDepth:  5,
	}, "."), nil)
	s := newSession(k)
	var out, errout bytes.Buffer
	s.runBatch([]string{
		"1/3",
		"２＋３", // full-width
		"fun down(n) = down(n - 1)",
		"down(1)",
	}, &out, &errout)
	if out.String() != "0.33\n5\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if !strings.Contains(errout.String(), "recursion limit exceeded: depth 5") {
		t.Errorf("expected recursion limit of 5, have %q", errout.String())
	}
}

func TestPlotOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.cli")
	defer teardown()
	//
	s := newSession(nil)
	var out, errout bytes.Buffer
	s.runBatch([]string{"fun id(x) = x", "%plot2d(id, 0, 8, 1)"}, &out, &errout)
	if errout.Len() > 0 {
		t.Fatalf("unexpected error %q", errout.String())
	}
	if !strings.HasPrefix(out.String(), "⠑") || !strings.HasSuffix(out.String(), "\n") {
		t.Errorf("expected a diagonal braille frame, have %q", out.String())
	}
}

func TestListings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.cli")
	defer teardown()
	//
	s := newSession(nil)
	var out, errout bytes.Buffer
	s.runBatch([]string{"r = 2", "fun area(w, h) = w * h"}, &out, &errout)
	s.formatter.Format(s.ev.Variables(), &out)
	s.formatter.Format(s.ev.Functions(), &out)
	listing := out.String()
	for _, want := range []string{"PI", "3.141592653589793", "r", "area(w, h)", "w * h"} {
		if !strings.Contains(listing, want) {
			t.Errorf("expected listing to contain %q, have\n%s", want, listing)
		}
	}
}

func TestMergeFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "funcalc.cli")
	defer teardown()
	//
	cmd := &cobra.Command{Use: "test"}
	addFlags(cmd)
	if err := cmd.PersistentFlags().Parse([]string{"--max-depth", "7", "--no-fold"}); err != nil {
		t.Fatal(err)
	}
	k := koanf.New(".")
	funcalc.LoadDefaults(k)
	konf := koanfadapter.New(k, "FUNCALC", []string{"nt"})
	if err := mergeFlags(konf, cmd); err != nil {
		t.Fatal(err)
	}
	if d := k.Int(funcalc.KeyMaxDepth); d != 7 {
		t.Errorf("expected max depth 7 from command line, is %d", d)
	}
	if p := k.Int(funcalc.KeyPrecision); p != -1 {
		t.Errorf("expected default precision -1, is %d", p)
	}
	if k.Bool(funcalc.KeyFoldWidth) {
		t.Errorf("expected width folding to be switched off")
	}
}
