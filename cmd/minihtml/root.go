package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/npillmayer/minihtml/config"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tracerKeys lists the tracers of all packages of this module.
var tracerKeys = []string{
	"minihtml",
	"minihtml.cmd",
	"minihtml.config",
	"minihtml.css",
	"minihtml.dom",
	"minihtml.fetch",
	"minihtml.parser",
	"minihtml.selector",
	"minihtml.stream",
	"minihtml.tree",
	"minihtml.writer",
}

var (
	cfgFile   string
	traceFlag string
	traceFile string
	strict    bool
	settings  = config.Defaults()
)

var rootCmd = &cobra.Command{
	Use:   "minihtml",
	Short: "Parse, query and write HTML documents",
	Long: `minihtml reads HTML from files, URLs or standard input into a
lightweight document tree. The tree may be queried with selector
patterns like "div.note p[-1]", printed as a tree or diagram,
or written back as HTML.`,
	Version:           "v0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (default: minihtml.yaml)")
	rootCmd.PersistentFlags().StringVarP(&traceFlag, "trace", "t", "", "trace level for all tracers: Error, Info or Debug")
	rootCmd.PersistentFlags().StringVar(&traceFile, "tracefile", "", "write traces to a log file, rotated daily")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail on malformed input instead of using the partial document")
}

func setup(cmd *cobra.Command, args []string) error {
	conf, err := loadConfiguration(cfgFile)
	if err != nil {
		return err
	}
	if err = setupTracing(conf, traceFlag, traceFile); err != nil {
		return err
	}
	settings = config.FromConfiguration(conf)
	return nil
}

// loadConfiguration reads the application configuration. A configuration
// file is optional unless it has been named explicitly.
func loadConfiguration(path string) (*viperadapter.VConf, error) {
	conf := viperadapter.New("minihtml")
	conf.InitDefaults()
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("minihtml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.minihtml")
		viper.AddConfigPath("$HOME/.config/minihtml")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading configuration: %w", err)
		}
	}
	return conf, nil
}

// setupTracing connects the tracers of all packages to the Go logger, with
// trace levels taken from configuration keys "trace.<tracer-key>". A non-empty
// level overrides the configured levels of all tracers.
func setupTracing(conf schuko.Configuration, level, logfile string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	if level != "" {
		l := tracing.TraceLevelFromString(level)
		trace2go.Root().SetTraceLevel(l)
		for _, key := range tracerKeys {
			tracing.Select(key).SetTraceLevel(l)
		}
	}
	if logfile == "" {
		return nil
	}
	w, err := rotatelogs.New(
		logfile+".%Y%m%d",
		rotatelogs.WithLinkName(logfile),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("opening trace file: %w", err)
	}
	trace2go.Root().SetOutput(w)
	for _, key := range tracerKeys {
		tracing.Select(key).SetOutput(w)
	}
	fmt.Fprintf(os.Stderr, "tracing to %s\n", logfile)
	return nil
}
