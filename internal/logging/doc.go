// Package logging provides structured logging for imc.
//
// This package wraps a global zap logger. Logging is silent unless a level is
// given explicitly (--log-level, the settings file) or through the
// IMC_LOG_LEVEL environment variable, so CLI output and the terminal form are
// not polluted by default.
//
// # Log Levels
//
//   - Debug: request/response bodies, discovery entries
//   - Info: submissions, served requests, service lifecycle
//   - Warn: failed calculations, shutdown timeouts
//   - Error: startup failures
//
// # Structured Logging
//
//	logging.Info("Calculation succeeded",
//	    zap.String("request_id", id),
//	    zap.Float64("imc", 22.86),
//	)
//
// # Output
//
// Logs go to stdout in console format. The terminal form owns stdout, so
// the form command points the logger at a file instead:
//
//	if err := logging.InitializeTo("debug", "/tmp/imc.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
package logging
