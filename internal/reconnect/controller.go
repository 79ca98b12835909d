// internal/reconnect/controller.go

// Package reconnect decides between a cached no-scan reconnect and a full
// join, bounds the wait, and commits the outcome to the persistent record.
package reconnect

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tamzrod/wifiquick/internal/radio"
	"github.com/tamzrod/wifiquick/internal/record"
)

// DefaultPollInterval is how often Begin polls the link state.
const DefaultPollInterval = 50 * time.Millisecond

// Config is the minimal runtime config the controller needs.
type Config struct {
	PollInterval time.Duration
	Clock        radio.Clock
	Logger       *slog.Logger
}

// Controller owns the record and the radio power state.
// Single-threaded by contract: no method may be called concurrently.
type Controller struct {
	rec   *record.Record
	radio radio.Radio
	clock radio.Clock
	log   *slog.Logger
	poll  time.Duration

	attempt *Attempt
}

// New creates the controller. Call once per boot.
func New(cfg Config, rec *record.Record, r radio.Radio) (*Controller, error) {
	if rec == nil {
		return nil, errors.New("reconnect: record required")
	}
	if r == nil {
		return nil, errors.New("reconnect: radio required")
	}
	if cfg.PollInterval < 0 {
		return nil, errors.New("reconnect: poll interval must be >= 0")
	}

	c := &Controller{
		rec:   rec,
		radio: r,
		clock: cfg.Clock,
		log:   cfg.Logger,
		poll:  cfg.PollInterval,
	}
	if c.clock == nil {
		c.clock = radio.SystemClock{}
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.poll == 0 {
		c.poll = DefaultPollInterval
	}
	return c, nil
}

// Init decides the strategy and issues exactly one connect call.
func (c *Controller) Init(req JoinRequest) Strategy {
	a := &Attempt{Start: c.clock.Now()}
	c.attempt = a

	if err := c.radio.SetPower(true); err != nil {
		c.log.Warn("radio power on failed", "err", err)
	}

	params := radio.ConnectParams{
		SSID:       req.SSID,
		Passphrase: req.Passphrase,
		Addressing: req.Static,
	}

	if c.fastPathAllowed() {
		a.Strategy = FastReconnect
		params.Channel = int(c.rec.Channel())
		params.BSSID = c.rec.BSSID()
		if req.Static == nil && !req.ForceDHCP {
			if cached := c.cachedAddressing(); !cached.IsZero() {
				params.Addressing = &cached
			}
		}
		c.log.Info("reconnecting to previous network",
			"channel", params.Channel,
			"bssid", params.BSSID.String(),
			"static", params.Addressing != nil,
		)
	} else {
		a.Strategy = FullJoin
		c.log.Info("connecting to network",
			"record_valid", c.rec.Valid(),
			"missed", c.rec.MissedCount(),
		)
	}

	if err := c.radio.Connect(params); err != nil {
		a.ConnectErr = err
		c.log.Warn("connect call failed", "strategy", a.Strategy.String(), "err", err)
	}
	return a.Strategy
}

// Begin blocks until the link is up or timeout has elapsed since Init.
// A timeout is a normal outcome and is reported as false.
func (c *Controller) Begin(timeout time.Duration) bool {
	a := c.attempt
	if a == nil {
		c.log.Warn("begin called without init")
		return false
	}
	a.Timeout = timeout

	if a.ConnectErr == nil {
		for {
			if c.radio.Status() == radio.Connected {
				c.succeed(a)
				return true
			}
			if c.clock.Now().Sub(a.Start) > timeout {
				break
			}
			c.clock.Sleep(c.poll)
		}
	}

	c.fail(a)
	return false
}

// Connect is Init followed by Begin.
func (c *Controller) Connect(req JoinRequest, timeout time.Duration) bool {
	c.Init(req)
	return c.Begin(timeout)
}

// Disconnect drops the link and powers the radio down.
func (c *Controller) Disconnect() error {
	var errs []error
	if err := c.radio.Disconnect(); err != nil {
		errs = append(errs, fmt.Errorf("disconnect: %w", err))
	}
	if err := c.radio.SetPower(false); err != nil {
		errs = append(errs, fmt.Errorf("power off: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("reconnect: %w", errors.Join(errs...))
	}
	return nil
}

// LastAttempt returns a copy of the most recent attempt.
func (c *Controller) LastAttempt() (Attempt, bool) {
	if c.attempt == nil {
		return Attempt{}, false
	}
	return *c.attempt, true
}

// ---- outcome commits ----

func (c *Controller) succeed(a *Attempt) {
	a.Result = Connected
	a.Elapsed = c.clock.Now().Sub(a.Start)

	addr := c.radio.Addressing()

	c.rec.StampVersion()
	c.rec.SetMissedCount(0)
	c.rec.SetChannel(uint32(c.radio.Channel()))
	c.rec.SetBSSID(c.radio.BSSID())
	c.rec.SetAddresses(addr.Local, addr.Gateway, addr.Subnet, addr.DNS)
	c.commit()

	c.log.Info("connected",
		"strategy", a.Strategy.String(),
		"elapsed", a.Elapsed,
		"channel", c.rec.Channel(),
		"bssid", c.rec.BSSID().String(),
		"ip", addr.Local.String(),
	)
}

func (c *Controller) fail(a *Attempt) {
	a.Result = TimedOut
	a.Elapsed = c.clock.Now().Sub(a.Start)

	missed := c.rec.MissedCount() + 1
	c.rec.SetMissedCount(missed)
	c.commit()

	c.log.Warn("connection missed",
		"strategy", a.Strategy.String(),
		"elapsed", a.Elapsed,
		"missed", missed,
	)

	if err := c.Disconnect(); err != nil {
		c.log.Warn("radio shutdown after miss failed", "err", err)
	}
}

// commit seals the record; a storage error is logged, never fatal.
func (c *Controller) commit() {
	if err := c.rec.Commit(); err != nil {
		c.log.Warn("record commit failed", "err", err)
	}
}

func (c *Controller) fastPathAllowed() bool {
	return c.rec.Valid() && c.rec.MissedCount() == 0 && c.rec.Plausible()
}

func (c *Controller) cachedAddressing() radio.Addressing {
	return radio.Addressing{
		Local:   c.rec.LocalAddr(),
		Gateway: c.rec.Gateway(),
		Subnet:  c.rec.SubnetMask(),
		DNS:     c.rec.DNS(),
	}
}
