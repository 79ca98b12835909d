// internal/reconnect/wake.go
package reconnect

import (
	"fmt"
	"net"
)

// RecordWake counts one boot.
// An invalid record starts from zero and drops its connection fields;
// the missed counter is kept as found.
func (c *Controller) RecordWake() {
	var n uint32
	if c.rec.Valid() {
		n = c.rec.ResetCount()
	} else {
		c.rec.ClearConnection()
	}
	c.rec.SetResetCount(n + 1)
	c.commit()
}

// ClearWakeCount resets the wake counter only.
func (c *Controller) ClearWakeCount() {
	if !c.rec.Valid() {
		c.rec.ClearConnection()
	}
	c.rec.SetResetCount(0)
	c.commit()
}

func (c *Controller) WakeCount() uint32   { return c.rec.ResetCount() }
func (c *Controller) MissedCount() uint32 { return c.rec.MissedCount() }

// RecordValid reports whether the cached state passed its checksum.
func (c *Controller) RecordValid() bool { return c.rec.Valid() }

// MACAddress returns the station interface hardware address.
func (c *Controller) MACAddress() (net.HardwareAddr, error) {
	mac, err := c.radio.MACAddress()
	if err != nil {
		return nil, fmt.Errorf("reconnect: mac address: %w", err)
	}
	return mac, nil
}

// MACString formats the station MAC as AA:BB:CC:DD:EE:FF.
// It returns an empty string if the stack cannot report it.
func (c *Controller) MACString() string {
	mac, err := c.MACAddress()
	if err != nil || len(mac) < 6 {
		return ""
	}
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", mac[0], mac[1], mac[2], mac[3], mac[4], mac[5])
}
