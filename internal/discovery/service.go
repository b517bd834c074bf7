package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Service represents a discovered calculator service
type Service struct {
	// Instance is the advertised instance name (e.g., "imc-laptop")
	Instance string

	// Host is the mDNS hostname (e.g., "laptop.local.")
	Host string

	// IP is the service address, IPv4 preferred
	IP string

	// Port is the HTTP port
	Port int

	// Metadata contains the TXT record data ("path", "version")
	Metadata map[string]string

	// DiscoveredAt is when the service was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the service
func (s *Service) String() string {
	return fmt.Sprintf("Calculator %s (%s) at %s", s.Instance, s.Host, net.JoinHostPort(s.IP, strconv.Itoa(s.Port)))
}

// BaseURL returns the HTTP base URL of the service
func (s *Service) BaseURL() string {
	return "http://" + net.JoinHostPort(s.IP, strconv.Itoa(s.Port))
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (s *Service) GetMetadata(key string) string {
	if s.Metadata == nil {
		return ""
	}
	return s.Metadata[key]
}
