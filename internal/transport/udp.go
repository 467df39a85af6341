// ABOUTME: UDP transport for outgoing stream datagrams
// ABOUTME: Owns one socket with a fixed destination, optional broadcast
package transport

import (
	"fmt"
	"net"
	"strconv"
)

// UDPSender owns a UDP socket bound to an ephemeral local port with a
// destination resolved once at construction. Sends are best-effort and
// lossy by design.
//
// *net.UDPConn is safe for concurrent use and each WriteToUDP transmits
// one complete datagram, so the session startup path and the capture
// callback can share a single sender without additional locking.
type UDPSender struct {
	conn *net.UDPConn
	dest *net.UDPAddr
}

// NewUDPSender resolves the destination, binds an ephemeral local port,
// and optionally enables subnet broadcast before any send occurs.
func NewUDPSender(targetIP string, targetPort int, broadcast bool) (*UDPSender, error) {
	dest, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(targetIP, strconv.Itoa(targetPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid destination %s:%d: %w", targetIP, targetPort, err)
	}

	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: 0})
	if err != nil {
		return nil, fmt.Errorf("socket bind failed: %w", err)
	}

	if broadcast {
		if err := enableBroadcast(conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("broadcast enable failed: %w", err)
		}
	}

	return &UDPSender{conn: conn, dest: dest}, nil
}

// Send transmits one datagram to the fixed destination. Failures are
// expected under load (full send buffer, unreachable host) and the caller
// decides whether to log or fail; nothing is retried.
func (s *UDPSender) Send(data []byte) error {
	if _, err := s.conn.WriteToUDP(data, s.dest); err != nil {
		return fmt.Errorf("udp send failed: %w", err)
	}
	return nil
}

// Dest returns the resolved destination address
func (s *UDPSender) Dest() *net.UDPAddr {
	return s.dest
}

// LocalAddr returns the bound local address
func (s *UDPSender) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}

// Close releases the socket
func (s *UDPSender) Close() error {
	return s.conn.Close()
}
