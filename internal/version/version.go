// ABOUTME: Version and product identification constants
// ABOUTME: Used in logs and mDNS TXT records
package version

const (
	// Version is the software version
	Version = "0.1.0"

	// Product is the product name
	Product = "SyncWave Transmitter"

	// Manufacturer identifies the project
	Manufacturer = "SyncWave"
)
