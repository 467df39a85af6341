// ABOUTME: SO_BROADCAST socket option, windows variant
// ABOUTME: Enables subnet broadcast sends on the UDP socket
//go:build windows

package transport

import (
	"net"
	"syscall"
)

// enableBroadcast sets SO_BROADCAST so sends to subnet-broadcast
// destinations are permitted.
func enableBroadcast(conn *net.UDPConn) error {
	raw, err := conn.SyscallConn()
	if err != nil {
		return err
	}

	var sockErr error
	err = raw.Control(func(fd uintptr) {
		sockErr = syscall.SetsockoptInt(syscall.Handle(fd), syscall.SOL_SOCKET, syscall.SO_BROADCAST, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
