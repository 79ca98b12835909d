// cmd/wifiquick/build.go
package main

import (
	"fmt"
	"log/slog"
	"net"
	"net/netip"
	"time"

	"github.com/tamzrod/wifiquick/internal/config"
	"github.com/tamzrod/wifiquick/internal/radio"
	rmodbus "github.com/tamzrod/wifiquick/internal/radio/modbus"
	"github.com/tamzrod/wifiquick/internal/radio/sim"
	"github.com/tamzrod/wifiquick/internal/reconnect"
	"github.com/tamzrod/wifiquick/internal/record"
	"github.com/tamzrod/wifiquick/internal/record/kvregion"
)

// buildRegion opens the configured state backend and its closer.
func buildRegion(sc config.StateConfig, logger *slog.Logger) (record.Region, func() error, error) {
	noop := func() error { return nil }

	switch sc.Backend {
	case config.StateFile:
		r, err := record.NewFileRegion(sc.Path)
		if err != nil {
			return nil, nil, err
		}
		return r, noop, nil
	case config.StateBadger:
		r, err := kvregion.Open(sc.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown state backend %q", sc.Backend)
}

// buildRadio returns the configured backend and its closer.
// Assumes config has already passed validation and normalization.
func buildRadio(rc config.RadioConfig) (radio.Radio, func() error, error) {
	switch rc.Backend {
	case config.BackendSim:
		scfg, err := simConfig(rc.Sim)
		if err != nil {
			return nil, nil, err
		}
		return sim.New(scfg, nil), func() error { return nil }, nil

	case config.BackendModbus:
		m := rc.Modbus
		r, err := rmodbus.New(rmodbus.Config{
			Transport: m.Transport,
			Endpoint:  m.Endpoint,
			UnitID:    m.UnitID,
			Timeout:   time.Duration(m.TimeoutMs) * time.Millisecond,
			BaudRate:  m.BaudRate,
			Parity:    m.Parity,
		})
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown radio backend %q", rc.Backend)
}

func simConfig(s config.SimConfig) (sim.Config, error) {
	out := sim.Config{
		ConnectDelay:  time.Duration(s.ConnectDelayMs) * time.Millisecond,
		TargetedDelay: time.Duration(s.TargetedDelayMs) * time.Millisecond,
		Unreachable:   s.Unreachable,
		Channel:       s.Channel,
	}

	var err error
	if out.BSSID, err = optionalMAC(s.BSSID); err != nil {
		return sim.Config{}, fmt.Errorf("sim bssid: %w", err)
	}
	if out.MAC, err = optionalMAC(s.MAC); err != nil {
		return sim.Config{}, fmt.Errorf("sim mac: %w", err)
	}
	out.Addressing, err = addressing(s.Local, s.Gateway, s.Subnet, s.DNS)
	if err != nil {
		return sim.Config{}, fmt.Errorf("sim addressing: %w", err)
	}
	return out, nil
}

// joinRequest maps the network section onto a controller request.
func joinRequest(nc config.NetworkConfig) (reconnect.JoinRequest, error) {
	req := reconnect.JoinRequest{
		SSID:       nc.SSID,
		Passphrase: nc.Passphrase,
		ForceDHCP:  nc.ForceDHCP,
	}
	if nc.Static != nil {
		a, err := addressing(nc.Static.Local, nc.Static.Gateway, nc.Static.Subnet, nc.Static.DNS)
		if err != nil {
			return reconnect.JoinRequest{}, fmt.Errorf("static addressing: %w", err)
		}
		req.Static = &a
	}
	return req, nil
}

func addressing(local, gateway, subnet, dns string) (radio.Addressing, error) {
	var a radio.Addressing
	for _, f := range []struct {
		name string
		in   string
		dst  *netip.Addr
	}{
		{"local", local, &a.Local},
		{"gateway", gateway, &a.Gateway},
		{"subnet", subnet, &a.Subnet},
		{"dns", dns, &a.DNS},
	} {
		if f.in == "" {
			continue
		}
		ip, err := netip.ParseAddr(f.in)
		if err != nil {
			return radio.Addressing{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = ip
	}
	return a, nil
}

func optionalMAC(s string) (net.HardwareAddr, error) {
	if s == "" {
		return nil, nil
	}
	return net.ParseMAC(s)
}
