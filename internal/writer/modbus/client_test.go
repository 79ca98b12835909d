// internal/writer/modbus/client_test.go
package modbus

import (
	"net"
	"testing"
	"time"
)

func TestNewEndpointClient_AddressRequired(t *testing.T) {
	if _, err := NewEndpointClient(Config{}); err == nil {
		t.Fatalf("expected error for empty endpoint")
	}
}

func TestNewEndpointClient_ConnectFailure(t *testing.T) {
	// Grab a free port, then close it so nothing is listening.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()

	if _, err := NewEndpointClient(Config{Endpoint: addr, Timeout: 200 * time.Millisecond}); err == nil {
		t.Fatalf("expected connect error for %s", addr)
	}
}
