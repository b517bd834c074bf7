// Package discovery provides mDNS-based discovery of BMI calculator services.
//
// A calculator service started with 'imc serve' advertises itself with the
// "_imc._tcp" service type in the "local." domain. Clients browse for that
// type to find a base URL without configuring one.
//
// # Usage Example
//
//	// Discover calculators with a 5-second timeout
//	scanner := discovery.NewScanner()
//	services, err := scanner.Scan(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, svc := range services {
//	    fmt.Printf("Found: %s at %s\n", svc.Instance, svc.BaseURL())
//	}
//
//	// Advertise a calculator listening on port 3000 until ctx ends
//	err = discovery.Advertise(ctx, "imc-laptop", 3000, discovery.ServiceText("v1.0.0"))
//
// # Service Information
//
// TXT records carry "path" (the calculation path) and "version" (the
// server's build version). Both are exposed through Service.Metadata.
//
// # Network Requirements
//
//   - Multicast must be allowed on the local network
//   - UDP port 5353 must not be blocked by a firewall
//   - Client and service must be on the same subnet
package discovery
