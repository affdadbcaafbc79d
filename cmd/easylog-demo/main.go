// Package main provides easylog-demo, a small tour of the easylog pipeline:
// levels, labels, colorize ranges, positional templates, file targets, and
// the async worker.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	easylog "github.com/RealFaceCode/easyLog"
	"github.com/RealFaceCode/easyLog/ansi"
)

type options struct {
	configPath string
	filePath   string
	toFile     bool
	threaded   bool
	noColor    bool
	count      int
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "easylog-demo [flags]",
		Short: "Demonstrate the easylog logging pipeline",
		Long: `easylog-demo emits a batch of log lines through every feature of the
pipeline: the six seeded levels, a custom level, labeled output, colorize
ranges, positional templates, and optionally a file target and the async
worker.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	registerFlags(rootCmd.Flags(), &opts)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func registerFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVarP(&opts.configPath, "config", "c", "", "YAML config file to apply before the demo")
	fs.StringVarP(&opts.filePath, "file", "f", "", "also log to this file (enables the file sink)")
	fs.BoolVar(&opts.toFile, "default-file", false, "also log to the default file target")
	fs.BoolVarP(&opts.threaded, "threaded", "t", false, "dispatch through the background worker")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable ANSI color output")
	fs.IntVarP(&opts.count, "count", "n", 3, "how many worker batches to emit")
}

func run(opts options) error {
	log := easylog.NewWithOptions(easylog.Options{NoColor: opts.noColor})

	if opts.configPath != "" {
		if err := log.LoadConfig(opts.configPath); err != nil {
			return err
		}
	}
	if opts.filePath != "" {
		log.SetState(easylog.FileLog, true)
		if opts.toFile {
			log.SetDefaultFilePath(opts.filePath)
		} else {
			log.AddFileLogger("demo", opts.filePath, easylog.Truncate)
			log.SetState(easylog.DefaultFileLog, false)
			log.UseFileLogger("demo")
		}
	}

	log.Trace("tracing pipeline startup")
	log.Debug("resolved configuration")
	log.Info("service ready")
	log.Warning("cache miss ratio above threshold")
	log.Error("connect failed",
		easylog.Colorize{Target: "failed", Color: ansi.BoldRed})
	log.Fatal("unrecoverable state reached")

	log.AddLogLevel("AUDIT", ansi.Cyan)
	log.Custom("AUDIT", "user admin logged in")

	db := log.Label("database")
	db.Info(easylog.Format("query took {:f2} ms after {} retries", 12.3456, 2))
	db.WarningIf(opts.count > 1, "replication lag growing")

	net := log.Label("network")
	net.Info(easylog.Format("peer {0} handshake, session {:x8}", "10.0.0.7", 48813))

	if opts.threaded {
		log.SetState(easylog.ThreadedLog, true)
		for i := 0; i < opts.count; i++ {
			log.Info(easylog.Format("worker batch {} of {}", i+1, opts.count))
			time.Sleep(10 * time.Millisecond)
		}
		log.Wait()
	}

	if err := log.CloseStreams(); err != nil {
		return err
	}
	if stats := log.SinkStats(); stats.ConsoleFailures+stats.FileFailures > 0 {
		return fmt.Errorf("sink failures: console=%d file=%d",
			stats.ConsoleFailures, stats.FileFailures)
	}
	return nil
}
