// Package config manages the imc settings file.
//
// Settings are stored as YAML in the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/imc/config.yaml or $HOME/.config/imc/config.yaml
//   - macOS: $HOME/.config/imc/config.yaml
//   - Windows: %LOCALAPPDATA%\imc\config.yaml
//
// The file only holds preferences (calculator endpoint, timeout, logging,
// discovery). Measurements and results are never written to disk.
//
// Command-line flags take precedence over the file, and the file over the
// built-in defaults:
//
//	settings, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	client := calculator.NewClient(settings.Calculator.Endpoint)
package config
