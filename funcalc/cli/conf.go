package cli

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/funcalc"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	if err := funcalc.LoadDefaults(k); err != nil {
		tracing.Errorf("%v", err)
		funcalc.Exit(1)
	}
	// We locate funcalc configuration with an application-key of 'FUNCALC' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "FUNCALC", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf, rootCmd); err != nil {
		tracing.Errorf("%v", err)
		funcalc.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf("%v", err)
		funcalc.Exit(1)
	}
	funcalc.Configuration = k // push the configuration to app-global scope
}

// flags which set calculator configuration keys
var flagKeys = map[string]string{
	"max-depth":   funcalc.KeyMaxDepth,
	"max-samples": funcalc.KeyMaxSamples,
	"precision":   funcalc.KeyPrecision,
}

func mergeFlags(konf *koanfadapter.KConf, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	settings := make(map[string]interface{})
	for flag, key := range flagKeys {
		if flags.Changed(flag) {
			if settings[key], err = flags.GetInt(flag); err != nil {
				return err
			}
		}
	}
	if flags.Changed("no-fold") {
		nofold, _ := flags.GetBool("no-fold")
		settings[funcalc.KeyFoldWidth] = !nofold
	}
	tracer().Debugf("settings from command line: %v", settings)
	return konf.Koanf().Load(confmap.Provider(settings, "."), nil)
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	tracing.Infof("searching for trace redirection")
	paths := locatePaths()
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") && paths.LogDir() != "" {
			dest = "file://" + paths.LogDir() + "/" + dest
			konf.Set("tracing.destination", dest)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Infof("%s", rootCmd.Long)
	return nil
}

func locatePaths() AppPaths {
	paths, err := DefaultAppPaths("FUNCALC")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
