package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/deusflow/trendbrief/internal/app"
	"github.com/deusflow/trendbrief/internal/config"
	"github.com/deusflow/trendbrief/internal/logger"
)

// Options override the environment configuration for a single invocation.
type Options struct {
	Settings   string        `long:"settings" description:"Settings file with criteria, feeds and search queries"`
	Categories []string      `short:"c" long:"category" description:"Category to process, repeatable (default: every category in the settings file)"`
	Output     string        `short:"o" long:"output" description:"Write the report to this file instead of stdout"`
	Format     string        `long:"format" choice:"json" choice:"text" default:"json" description:"Report format"`
	NoLLM      bool          `long:"no-llm" description:"Skip the LLM relevance pass"`
	Translate  bool          `long:"translate" description:"Add Korean translations to selected articles"`
	Analyze    bool          `long:"analyze" description:"Add country, one-liner, hashtags and a 3 sentence summary to selected articles"`
	Monitor    string        `long:"monitor" description:"Serve /health and /metrics on this address, e.g. :8080"`
	Interval   time.Duration `long:"interval" env:"RUN_INTERVAL" description:"Repeat the run at this interval (default: run once)"`
	Debug      bool          `long:"debug" description:"Enable debug logging"`
}

func main() {
	opts, handled, err := parseOptions(os.Args[1:], os.Stdout)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(2)
		}
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
	if handled {
		return
	}

	if err := run(opts); err != nil {
		logger.Error("Run failed", "error", err)
		os.Exit(1)
	}
}

// parseOptions parses args. handled reports that a settings command ran and
// there is no scoring run to do.
func parseOptions(args []string, out io.Writer) (opts *Options, handled bool, err error) {
	opts = &Options{}
	parser := flags.NewParser(opts, flags.Default)
	parser.SubcommandsOptional = true
	if err := addSettingsCommands(parser, opts, out); err != nil {
		return nil, false, err
	}

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, false, err
	}
	return opts, parser.Active != nil, nil
}

// apply copies the options that were given onto cfg.
func (o *Options) apply(cfg *config.Config) {
	if o.Settings != "" {
		cfg.SettingsPath = o.Settings
	}
	if len(o.Categories) > 0 {
		cfg.Categories = o.Categories
	}
	if o.Output != "" {
		cfg.OutputPath = o.Output
	}
	if o.NoLLM {
		cfg.LLMEnabled = false
	}
	if o.Translate {
		cfg.TranslateTop = true
	}
	if o.Analyze {
		cfg.AnalyzeTop = true
	}
	if o.Monitor != "" {
		cfg.MonitoringAddr = o.Monitor
	}
	if o.Debug {
		cfg.Debug = true
	}
}

func run(opts *Options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	opts.apply(cfg)
	logger.Init(cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.MonitoringAddr != "" {
		srv := &http.Server{
			Addr:         cfg.MonitoringAddr,
			Handler:      newMonitor(a.Stats),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("Starting monitoring server", "addr", cfg.MonitoringAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Monitoring server error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Monitoring server shutdown error", "error", err)
			}
		}()
	}

	for {
		report, err := a.Run(ctx)
		if report != nil {
			if werr := writeReport(report, opts.Format, cfg.OutputPath); werr != nil {
				logger.Error("Failed to write report", "error", werr)
			}
		}
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("Interrupted, shutting down")
				return nil
			}
			return err
		}

		if opts.Interval <= 0 {
			return nil
		}

		logger.Info("Next run scheduled", "in", opts.Interval)
		select {
		case <-ctx.Done():
			logger.Info("Interrupted, shutting down")
			return nil
		case <-time.After(opts.Interval):
		}
	}
}

func writeReport(r *app.Report, format, path string) error {
	if format == "text" {
		text := r.FormatText()
		if path == "" {
			_, err := fmt.Fprint(os.Stdout, text)
			return err
		}
		return os.WriteFile(path, []byte(text), 0o644)
	}

	if path == "" {
		return r.WriteJSON(os.Stdout)
	}
	if err := r.Save(path); err != nil {
		return err
	}
	logger.Info("Report written", "path", path)
	return nil
}
