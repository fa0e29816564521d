package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/expense_tracker/internal/app"
	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/scheduler"
	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/alecthomas/kong"
)

// Globals are bound into every command.
type Globals struct {
	LogLevel string `help:"Minimum log level." default:"info" enum:"debug,info,warn,error"`
}

// RunCmd performs one processing run and prints the result as JSON.
type RunCmd struct {
	Now string `help:"Process as of this moment (RFC3339 or YYYY-MM-DD). Defaults to the current time."`
}

func (cmd *RunCmd) Run(g *Globals) error {
	now, err := parseNow(cmd.Now, time.Now)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, logger, err := bootstrap(ctx, g)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.Config.RecurringRunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Config.RecurringRunTimeout)
		defer cancel()
	}

	result, err := a.Services.Recurring.ProcessDue(ctx, now)
	if err != nil {
		return err
	}
	logger.Info("Recurring run complete", slog.Int("processed", result.Processed), slog.Int("failed", len(result.Errors)))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// ServeCmd runs the timer loop until interrupted. SIGHUP triggers an
// immediate run.
type ServeCmd struct{}

func (cmd *ServeCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, logger, err := bootstrap(ctx, g)
	if err != nil {
		return err
	}
	defer a.Close()

	runner, err := scheduler.NewRunner(a.Services.Recurring, a.Config, logger)
	if err != nil {
		return err
	}
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go runner.NotifyOn(ctx, hup)

	runner.Start(ctx)
	return nil
}

// HashPasswordCmd prints a bcrypt hash for ADMIN_PASSWORD_HASH.
type HashPasswordCmd struct {
	Password string `arg:"" help:"Plaintext operator password."`
}

func (cmd *HashPasswordCmd) Run() error {
	hash, err := utils.HashPassword(cmd.Password)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}

var cli struct {
	Globals

	Run          RunCmd          `cmd:"" help:"Materialize every recurring schedule that is due, once."`
	Serve        ServeCmd        `cmd:"" help:"Materialize due schedules on the configured timer."`
	HashPassword HashPasswordCmd `cmd:"" help:"Print a bcrypt hash for ADMIN_PASSWORD_HASH."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("recurring_worker"),
		kong.Description("Creates transactions for due recurring schedules."),
		kong.UsageOnError(),
		kong.Bind(&cli.Globals),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

func bootstrap(ctx context.Context, g *Globals) (*app.App, *slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return a, logger, nil
}

// parseNow accepts an RFC3339 timestamp or a bare date, which is read as
// midnight UTC.
func parseNow(value string, clock func() time.Time) (time.Time, error) {
	if value == "" {
		return clock(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(calendar.Layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: want RFC3339 or %s", value, calendar.Layout)
	}
	return t, nil
}
