package discovery

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/imc/internal/logging"
)

// CalculatePath is advertised in the "path" TXT record
const CalculatePath = "/imc/calculate"

// ServiceText builds the TXT records of a calculator service
func ServiceText(version string) []string {
	text := []string{TextKeyPath + "=" + CalculatePath}
	if version != "" {
		text = append(text, TextKeyVersion+"="+version)
	}
	return text
}

// DefaultInstance returns "imc-<hostname>", or "imc" when the hostname is unknown
func DefaultInstance() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "imc"
	}
	host, _, _ = strings.Cut(host, ".")
	return "imc-" + host
}

// Advertise registers a calculator service on port and keeps it registered
// until ctx ends.
func Advertise(ctx context.Context, instance string, port int, text []string) error {
	if instance == "" {
		instance = DefaultInstance()
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, text, nil)
	if err != nil {
		return fmt.Errorf("failed to register mDNS service: %w", err)
	}
	defer server.Shutdown()

	logging.Info("Advertising calculator service",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)

	<-ctx.Done()

	logging.Info("Stopped advertising calculator service", zap.String("instance", instance))
	return nil
}
