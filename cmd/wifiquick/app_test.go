// cmd/wifiquick/app_test.go
package main

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/tamzrod/wifiquick/internal/config"
	"github.com/tamzrod/wifiquick/internal/radio/sim"
	"github.com/tamzrod/wifiquick/internal/reconnect"
	"github.com/tamzrod/wifiquick/internal/record"
	"github.com/tamzrod/wifiquick/internal/status"
)

const simYAML = `
network:
  ssid: home
  passphrase: correct-horse
  timeout_ms: %d
radio:
  backend: sim
  poll_interval_ms: 1
  sim:
    unreachable: %t
    channel: 6
    bssid: "aa:bb:cc:dd:ee:01"
    mac: "24:0a:c4:12:34:56"
    local: 192.168.1.50
    gateway: 192.168.1.1
    subnet: 255.255.255.0
    dns: 192.168.1.1
state:
  path: %s
log:
  level: error
`

func writeConfig(t *testing.T, timeoutMs int, unreachable bool) (cfgPath, statePath string) {
	t.Helper()
	dir := t.TempDir()
	statePath = filepath.Join(dir, "rtc.bin")
	cfgPath = filepath.Join(dir, "wifiquick.yaml")
	body := []byte(fmt.Sprintf(simYAML, timeoutMs, unreachable, statePath))
	require.NoError(t, os.WriteFile(cfgPath, body, 0o600))
	return cfgPath, statePath
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"wifiquick"}, args...))
	return out.String(), err
}

func TestRunConnectsThenReconnectsFast(t *testing.T) {
	cfgPath, _ := writeConfig(t, 2000, false)

	out, err := runApp(t, "-c", cfgPath, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "connected via full-join")
	assert.Contains(t, out, "wake 1")
	assert.Contains(t, out, "24:0A:C4:12:34:56")

	out, err = runApp(t, "-c", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "connected via fast-reconnect")
	assert.Contains(t, out, "wake 2")
}

func TestRunWithoutStatePathPersistsToDefaultFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	body := fmt.Sprintf(simYAML, 2000, false, "unused")
	body = strings.Replace(body, "state:\n  path: unused\n", "", 1)
	require.NotContains(t, body, "state:")
	cfgPath := filepath.Join(dir, "wifiquick.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))

	out, err := runApp(t, "-c", cfgPath, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "connected via full-join")
	assert.Contains(t, out, "wake 1")

	out, err = runApp(t, "-c", cfgPath, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "connected via fast-reconnect")
	assert.Contains(t, out, "wake 2")

	assert.FileExists(t, filepath.Join(dir, config.DefaultStatePath))
}

func TestMemoryStateRejected(t *testing.T) {
	cfgPath, statePath := writeConfig(t, 2000, false)
	body, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	patched := strings.Replace(string(body), "  path: "+statePath, "  backend: memory", 1)
	require.NoError(t, os.WriteFile(cfgPath, []byte(patched), 0o600))

	_, err = runApp(t, "-c", cfgPath, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory backend")
}

func TestRunMissedExitsWithRetryCode(t *testing.T) {
	var exitCode int
	prev := cli.OsExiter
	cli.OsExiter = func(code int) { exitCode = code }
	defer func() { cli.OsExiter = prev }()

	cfgPath, _ := writeConfig(t, 5, true)

	out, err := runApp(t, "-c", cfgPath, "run")
	require.Error(t, err)

	var coder cli.ExitCoder
	require.True(t, errors.As(err, &coder))
	assert.Equal(t, exitMissed, coder.ExitCode())
	assert.Equal(t, exitMissed, exitCode)
	assert.Contains(t, out, "connection missed 1 time(s); retry in 1m0s")
}

func TestShowAndClearWakes(t *testing.T) {
	cfgPath, _ := writeConfig(t, 2000, false)

	_, err := runApp(t, "-c", cfgPath, "run")
	require.NoError(t, err)

	out, err := runApp(t, "-c", cfgPath, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "valid:     true")
	assert.Contains(t, out, "wakes:     1")
	assert.Contains(t, out, "channel:   6")
	assert.Contains(t, out, "bssid:     aa:bb:cc:dd:ee:01")

	out, err = runApp(t, "-c", cfgPath, "clear-wakes")
	require.NoError(t, err)
	assert.Contains(t, out, "wake count cleared")

	out, err = runApp(t, "-c", cfgPath, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "wakes:     0")
}

func TestShowOnFreshStateIsInvalid(t *testing.T) {
	cfgPath, _ := writeConfig(t, 2000, false)

	out, err := runApp(t, "-c", cfgPath, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "valid:     false")
}

func TestBadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("network:\n  ssid: \"\"\n"), 0o600))

	_, err := runApp(t, "-c", path, "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestSnapshotSaturatesCounters(t *testing.T) {
	rec, err := record.Open(record.NewMemoryRegion())
	require.NoError(t, err)
	rec.StampVersion()
	rec.SetResetCount(70000)
	rec.SetMissedCount(80000)
	rec.SetChannel(6)
	rec.Seal()

	ctl, err := reconnect.New(reconnect.Config{}, rec, sim.New(sim.Config{}, nil))
	require.NoError(t, err)

	snap := snapshot(ctl, reconnect.Attempt{Result: reconnect.Connected, Elapsed: 420 * time.Millisecond}, rec)
	assert.Equal(t, status.HealthConnected, snap.Health)
	assert.Equal(t, uint16(math.MaxUint16), snap.WakeCount)
	assert.Equal(t, uint16(math.MaxUint16), snap.MissedCount)
	assert.Equal(t, uint16(6), snap.Channel)
	assert.Equal(t, uint16(420), snap.ConnectMillis)
}
