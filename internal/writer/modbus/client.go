// internal/writer/modbus/client.go

// Package modbus is the status endpoint transport: holding register writes
// (FC 16) over one Modbus TCP connection.
package modbus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/wifiquick/internal/regs"
)

// EndpointClient is a single TCP connection to the status endpoint.
// Requests are serialized because SlaveId is set per write.
type EndpointClient struct {
	mu       sync.Mutex
	endpoint string
	handler  *modbus.TCPClientHandler
	client   modbus.Client
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("status endpoint: address required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("status endpoint %s: %w", cfg.Endpoint, err)
	}

	return &EndpointClient{
		endpoint: cfg.Endpoint,
		handler:  h,
		client:   modbus.NewClient(h),
	}, nil
}

func (c *EndpointClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// WriteRegisters writes a contiguous run of holding registers on unitID.
func (c *EndpointClient) WriteRegisters(unitID uint8, addr uint16, vals []uint16) error {
	if len(vals) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.handler.SlaveId = unitID
	if _, err := c.client.WriteMultipleRegisters(addr, uint16(len(vals)), regs.Pack(vals)); err != nil {
		return fmt.Errorf("status endpoint %s: write unit=%d addr=%d qty=%d: %w", c.endpoint, unitID, addr, len(vals), err)
	}
	return nil
}
