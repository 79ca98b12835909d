// internal/writer/builder.go
package writer

import (
	"errors"
	"time"

	cfg "github.com/tamzrod/wifiquick/internal/config"
	wmodbus "github.com/tamzrod/wifiquick/internal/writer/modbus"
)

// BuildPlan converts the status config into a StatusPlan.
// Assumes config has already passed validation.
func BuildPlan(s cfg.StatusConfig) (StatusPlan, error) {
	if !s.Enabled() {
		return StatusPlan{}, errors.New("writer: status block not enabled")
	}
	return StatusPlan{
		Endpoint:   s.Endpoint,
		UnitID:     s.UnitID,
		BaseSlot:   *s.Slot,
		DeviceName: s.DeviceName,
	}, nil
}

// Build connects to the status endpoint and returns a writer plus its closer.
func Build(s cfg.StatusConfig) (StatusWriter, func() error, error) {
	plan, err := BuildPlan(s)
	if err != nil {
		return nil, nil, err
	}

	c, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Endpoint: plan.Endpoint,
		Timeout:  time.Duration(s.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	sw, err := NewDeviceStatusWriter(plan, c)
	if err != nil {
		_ = c.Close()
		return nil, nil, err
	}
	return sw, c.Close, nil
}
