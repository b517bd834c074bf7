package discovery

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/imc/internal/logging"
)

const (
	// ServiceType is the mDNS service type of calculator services
	ServiceType = "_imc._tcp"

	// ServiceDomain is the mDNS domain
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for service discovery
	DefaultScanTimeout = 5 * time.Second

	// DefaultPort is used when an entry carries no port
	DefaultPort = 3000

	// TXT record keys
	TextKeyPath    = "path"
	TextKeyVersion = "version"
)

// Scanner handles mDNS service discovery
type Scanner struct {
	// Timeout is the maximum time to wait for discovery
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan browses for calculator services until the timeout or ctx ends.
// Services are returned sorted by instance name, one per instance.
func (s *Scanner) Scan(ctx context.Context) ([]*Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	var (
		mu       sync.Mutex
		services = make(map[string]*Service)
	)

	err := s.browse(ctx, func(svc *Service) bool {
		mu.Lock()
		defer mu.Unlock()
		if _, seen := services[svc.Instance]; !seen {
			logging.Debug("Discovered calculator", zap.String("service", svc.String()))
			services[svc.Instance] = svc
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()

	out := make([]*Service, 0, len(services))
	for _, svc := range services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Instance < out[j].Instance })
	return out, nil
}

// First returns the first calculator service that answers within the timeout
func (s *Scanner) First(ctx context.Context) (*Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	found := make(chan *Service, 1)

	err := s.browse(ctx, func(svc *Service) bool {
		select {
		case found <- svc:
			cancel()
		default:
		}
		return false
	})
	if err != nil {
		return nil, err
	}

	select {
	case svc := <-found:
		return svc, nil
	case <-ctx.Done():
		select {
		case svc := <-found:
			return svc, nil
		default:
		}
		return nil, fmt.Errorf("no calculator service found within %s", s.Timeout)
	}
}

// browse starts an mDNS browse and feeds parsed services to fn until fn
// returns false. Entries keep being drained afterwards so the resolver
// never blocks on a send.
func (s *Scanner) browse(ctx context.Context, fn func(*Service) bool) error {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	go func() {
		done := false
		for entry := range entries {
			if done {
				continue
			}
			if svc := s.parseServiceEntry(entry); svc != nil {
				done = !fn(svc)
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return fmt.Errorf("failed to browse for mDNS services: %w", err)
	}
	return nil
}

// parseServiceEntry converts a zeroconf service entry to a Service
// Returns nil if the entry has no instance name or no address
func (s *Scanner) parseServiceEntry(entry *zeroconf.ServiceEntry) *Service {
	if entry == nil || entry.Instance == "" {
		return nil
	}

	// Get IP address (prefer IPv4)
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	}
	if ip == "" && len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	return &Service{
		Instance:     entry.Instance,
		Host:         entry.HostName,
		IP:           ip,
		Port:         port,
		Metadata:     parseText(entry.Text),
		DiscoveredAt: time.Now(),
	}
}

// parseText splits "key=value" TXT records into a map
func parseText(text []string) map[string]string {
	metadata := make(map[string]string, len(text))
	for _, txt := range text {
		parts := strings.SplitN(txt, "=", 2)
		if len(parts) == 2 {
			metadata[parts[0]] = parts[1]
		} else {
			metadata[parts[0]] = ""
		}
	}
	return metadata
}

// ScanForServices is a convenience function to scan with a custom timeout
func ScanForServices(ctx context.Context, timeout time.Duration) ([]*Service, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.Scan(ctx)
}
