package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"courtwatch/internal/availability"
	"courtwatch/internal/config"
	"courtwatch/internal/logger"
	"courtwatch/internal/notifier"
	"courtwatch/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig   string
	flagDays     int
	flagFormat   string
	flagTimes    []string
	flagDryRun   bool
	flagWatch    bool
	flagInterval time.Duration
	flagLogFile  string
	flagVerbose  bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courtwatch",
		Short: "Check tennis court availability and email when slots open up",
		Long: `Checks a Courtside booking site for tennis court availability over a
rolling 7-day window and sends an email notification when open slots are found.
Intended to run from an external scheduler; the exit code is the pass/fail signal.`,
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to venue config YAML (defaults apply if omitted)")
	cmd.Flags().IntVar(&flagDays, "days", availability.DefaultWindowDays, "Number of days to check, starting today")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringSliceVar(&flagTimes, "times", nil, "Only report available slots at these times (e.g. 18:00,19:00)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the email that would be sent instead of sending it")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Keep checking at a fixed interval instead of exiting")
	cmd.Flags().DurationVar(&flagInterval, "interval", 5*time.Minute, "Interval between checks in watch mode")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Also write JSON logs to this file")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runCheck is the outermost run boundary: any error escaping the pipeline is
// logged, reported by a best-effort error email, and surfaced as exit code 1.
func runCheck(cmd *cobra.Command, args []string) error {
	format := OutputFormat(flagFormat)
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, closeLog, err := logger.New(flagVerbose, flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := scraper.New(cfg.Venue.BaseURL, cfg.Venue.Slug, &log,
		scraper.WithCourts(cfg.Venue.Courts),
		scraper.WithPause(time.Duration(cfg.Check.PauseSeconds)*time.Second),
	)
	if err != nil {
		return fmt.Errorf("creating scraper: %w", err)
	}

	var notif notifier.Notifier
	if flagDryRun {
		notif = notifier.NewDryRunNotifier(cmd.OutOrStdout(), cfg.Venue.Name, client.BookingURL())
	} else {
		notif = notifier.NewEmailNotifier(config.SMTPFromEnv(), cfg.Venue.Name, client.BookingURL(), &log)
	}

	preferred := flagTimes
	if len(preferred) == 0 {
		preferred = cfg.Check.PreferredTimes
	}

	days := flagDays
	if !cmd.Flags().Changed("days") {
		days = cfg.Check.WindowDays
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run := &runner{
		client:    client,
		notif:     notif,
		log:       &log,
		out:       cmd.OutOrStdout(),
		format:    format,
		days:      days,
		preferred: preferred,
		verbose:   flagVerbose,
	}

	if flagWatch {
		return run.watch(ctx, flagInterval)
	}

	if err := run.once(ctx); err != nil {
		log.Error().Err(err).Msg("court check failed")
		if nerr := notif.NotifyError(err); nerr != nil {
			log.Error().Err(nerr).Msg("failed to send error notification")
		}
		return err
	}
	return nil
}

// runner carries the wired pipeline for one or more check cycles.
type runner struct {
	client    *scraper.Client
	notif     notifier.Notifier
	log       *zerolog.Logger
	out       io.Writer
	format    OutputFormat
	days      int
	preferred []string
	verbose   bool
}

// once performs a full check cycle: session bootstrap, per-date fetch and
// parse, aggregation, notification, and output.
func (r *runner) once(ctx context.Context) error {
	r.log.Info().Int("days", r.days).Msg("starting court availability check")

	if err := r.client.InitSession(ctx); err != nil {
		return err
	}

	reports, err := r.client.CheckWeek(ctx, time.Now(), r.days)
	if err != nil {
		return err
	}

	summary := availability.Summarize(reports)
	summary.Available = availability.FilterByTimes(summary.Available, r.preferred)

	avail, booked, session, closed := summary.Counts()
	r.log.Info().
		Int("available", avail).
		Int("booked", booked).
		Int("sessions", session).
		Int("closed_days", closed).
		Msg("check completed")

	// A failed notification doesn't fail the check itself.
	if err := r.notif.Notify(summary); err != nil {
		r.log.Error().Err(err).Msg("failed to send notification")
	}

	result := &OutputResult{
		CheckedAt:      time.Now().UTC(),
		Days:           r.days,
		Summary:        summary,
		AvailableCount: len(summary.Available),
	}
	return WriteOutput(r.out, result, r.format, r.verbose)
}

// watch repeats check cycles at interval until the context is cancelled.
// A failed cycle doesn't stop the loop; its retry is delayed by exponential
// backoff so a broken site isn't hammered every interval.
func (r *runner) watch(ctx context.Context, interval time.Duration) error {
	r.log.Info().Dur("interval", interval).Msg("starting availability watch")

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Minute
	bo.MaxInterval = 15 * time.Minute
	bo.MaxElapsedTime = 0

	for {
		wait := interval
		if err := r.once(ctx); err != nil {
			if ctx.Err() != nil {
				r.log.Info().Msg("watch stopped")
				return nil
			}
			wait = bo.NextBackOff()
			r.log.Error().Err(err).Dur("retry_in", wait).Msg("check cycle failed")
		} else {
			bo.Reset()
		}

		select {
		case <-ctx.Done():
			r.log.Info().Msg("watch stopped")
			return nil
		case <-time.After(wait):
		}
	}
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
