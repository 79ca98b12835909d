// cmd/wifiquick/app.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/tamzrod/wifiquick/internal/backoff"
	"github.com/tamzrod/wifiquick/internal/config"
	"github.com/tamzrod/wifiquick/internal/logging"
	"github.com/tamzrod/wifiquick/internal/reconnect"
	"github.com/tamzrod/wifiquick/internal/record"
	"github.com/tamzrod/wifiquick/internal/status"
	"github.com/tamzrod/wifiquick/internal/writer"
)

// exitMissed tells the caller to sleep and retry.
const exitMissed = 3

func newApp() *cli.App {
	return &cli.App{
		Name:  "wifiquick",
		Usage: "fast Wi-Fi reconnect for periodically waking devices",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML config",
				EnvVars: []string{"WIFIQUICK_CONFIG"},
				Value:   "wifiquick.yaml",
			},
		},
		DefaultCommand: "run",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Count the wake, connect, publish status",
				Action: runAction,
			},
			{
				Name:   "show",
				Usage:  "Print the persistent record",
				Action: showAction,
			},
			{
				Name:   "clear-wakes",
				Usage:  "Reset the wake counter",
				Action: clearWakesAction,
			},
		},
	}
}

// session is everything one command needs, opened from the config.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	rec    *record.Record

	closers []func() error
}

func openSession(c *cli.Context) (*session, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	s := &session{
		cfg: cfg,
		logger: logging.New(logging.Config{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			Output: c.App.ErrWriter,
		}),
	}

	region, closeRegion, err := buildRegion(cfg.State, s.logger)
	if err != nil {
		return nil, fmt.Errorf("state region: %w", err)
	}
	s.closers = append(s.closers, closeRegion)

	s.rec, err = record.Open(region)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *session) controller() (*reconnect.Controller, error) {
	r, closeRadio, err := buildRadio(s.cfg.Radio)
	if err != nil {
		return nil, fmt.Errorf("radio build failed (backend=%s): %w", s.cfg.Radio.Backend, err)
	}
	s.closers = append(s.closers, closeRadio)

	return reconnect.New(reconnect.Config{
		PollInterval: time.Duration(s.cfg.Radio.PollIntervalMs) * time.Millisecond,
		Logger:       s.logger,
	}, s.rec, r)
}

// Close releases in reverse order of acquisition.
func (s *session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func runAction(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer s.Close()

	ctl, err := s.controller()
	if err != nil {
		return err
	}

	req, err := joinRequest(s.cfg.Network)
	if err != nil {
		return fmt.Errorf("network config: %w", err)
	}

	ctl.RecordWake()
	ok := ctl.Connect(req, time.Duration(s.cfg.Network.TimeoutMs)*time.Millisecond)

	attempt, _ := ctl.LastAttempt()
	publishStatus(s, ctl, attempt)

	out := c.App.Writer
	if ok {
		fmt.Fprintf(out, "connected via %s in %s (wake %d, mac %s)\n",
			attempt.Strategy, attempt.Elapsed.Round(time.Millisecond), ctl.WakeCount(), ctl.MACString())
		return nil
	}

	delay := backoff.NewLinear(
		time.Duration(s.cfg.Backoff.BaseMs)*time.Millisecond,
		time.Duration(s.cfg.Backoff.MaxMs)*time.Millisecond,
	).Delay(ctl.MissedCount())

	fmt.Fprintf(out, "connection missed %d time(s); retry in %s\n", ctl.MissedCount(), delay)
	return cli.Exit("", exitMissed)
}

// publishStatus is best effort: a telemetry failure never changes the outcome.
func publishStatus(s *session, ctl *reconnect.Controller, a reconnect.Attempt) {
	sc := s.cfg.Status
	if !sc.Enabled() {
		return
	}

	sw, closeWriter, err := writer.Build(sc)
	if err != nil {
		s.logger.Warn("status writer build failed", "endpoint", sc.Endpoint, "err", err)
		return
	}
	defer closeWriter()

	if err := sw.WriteStatus(snapshot(ctl, a, s.rec)); err != nil {
		s.logger.Warn("status write failed", "endpoint", sc.Endpoint, "err", err)
	}
}

func snapshot(ctl *reconnect.Controller, a reconnect.Attempt, rec *record.Record) status.Snapshot {
	snap := status.Snapshot{
		Health:        status.HealthMissed,
		MissedCount:   status.Saturate(ctl.MissedCount()),
		WakeCount:     status.Saturate(ctl.WakeCount()),
		Channel:       uint16(rec.Channel()),
		ConnectMillis: status.Millis(a.Elapsed),
	}
	if a.Result == reconnect.Connected {
		snap.Health = status.HealthConnected
	}
	return snap
}

func showAction(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer s.Close()

	rec := s.rec
	out := c.App.Writer
	fmt.Fprintf(out, "valid:     %t\n", rec.Valid())
	fmt.Fprintf(out, "plausible: %t\n", rec.Plausible())
	fmt.Fprintf(out, "version:   %d\n", rec.Version())
	fmt.Fprintf(out, "checksum:  %#08x\n", rec.StoredChecksum())
	fmt.Fprintf(out, "wakes:     %d\n", rec.ResetCount())
	fmt.Fprintf(out, "missed:    %d\n", rec.MissedCount())
	fmt.Fprintf(out, "channel:   %d\n", rec.Channel())
	fmt.Fprintf(out, "bssid:     %s\n", rec.BSSID())
	fmt.Fprintf(out, "local:     %s\n", rec.LocalAddr())
	fmt.Fprintf(out, "gateway:   %s\n", rec.Gateway())
	fmt.Fprintf(out, "subnet:    %s\n", rec.SubnetMask())
	fmt.Fprintf(out, "dns:       %s\n", rec.DNS())
	return nil
}

func clearWakesAction(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer s.Close()

	ctl, err := s.controller()
	if err != nil {
		return err
	}
	ctl.ClearWakeCount()
	fmt.Fprintln(c.App.Writer, "wake count cleared")
	return nil
}
