// Package server implements the reference BMI calculator service.
//
// The service answers the same exchange the form sends:
//
//	POST /imc/calculate
//	{"height": 1.75, "weight": 70}
//
//	200 OK
//	{"imc": 22.86, "imcDescription": "Normal weight"}
//
// The value is weight / height² rounded to two decimals and the description
// is the label of the classification range containing it. Invalid bodies and
// non-positive values get a 400 with {"status": 400, "message": "..."}.
// GET /health answers {"status": "ok"}.
//
// The HTTP layer is fasthttp. When advertising is enabled the service also
// registers itself over mDNS (see internal/discovery) for the lifetime of
// the listener.
//
// # Usage Example
//
//	srv := server.New(&server.Config{
//	    Host:      "",
//	    Port:      3000,
//	    Advertise: true,
//	})
//
//	// Blocks until SIGINT or SIGTERM
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
package server
