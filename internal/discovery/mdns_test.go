// ABOUTME: Tests for mDNS advertisement
// ABOUTME: Tests manager creation and lifecycle
package discovery

import (
	"testing"
)

func TestNewManager(t *testing.T) {
	config := Config{
		InstanceName: "test-transmitter",
		Port:         9000,
		TXT:          []string{"rate=48000", "channels=2"},
	}

	mgr := NewManager(config)
	if mgr == nil {
		t.Fatal("expected manager to be created")
	}

	// Stop before Advertise must not panic
	mgr.Stop()
}
