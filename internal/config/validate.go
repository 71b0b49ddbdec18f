package config

import (
	"errors"
	"fmt"
	"os"
)

// Validate checks the loaded configuration and the filesystem paths it
// references. Errors are fatal (the server must not start); warnings are
// reported but non-fatal.
func Validate(cfg Config) (errs, warnings []string) {
	if cfg.Server == (ServerConfig{}) {
		errs = append(errs, "missing required config section: 'server'")
	}
	if cfg.Security == (SecurityConfig{}) {
		errs = append(errs, "missing required config section: 'security'")
	}
	if cfg.Paths == (PathsConfig{}) {
		errs = append(errs, "missing required config section: 'paths'")
	}
	if cfg.Models == nil {
		errs = append(errs, "missing required config section: 'models'")
	}
	if len(errs) > 0 {
		return errs, warnings
	}

	if cfg.Server.Host == "" || cfg.Server.Port == 0 {
		errs = append(errs, "missing 'host' or 'port' in server config")
	}
	if cfg.Server.LlamaHost == "" || cfg.Server.LlamaPort == 0 {
		errs = append(errs, "missing 'llama_host' or 'llama_port' in server config")
	}

	if cfg.Security.APIKey == "" {
		errs = append(errs, "missing 'api_key' in security config")
	} else if cfg.Security.APIKey == DefaultAPIKey {
		warnings = append(warnings, "using default API key - please change for security!")
	}

	if cfg.Paths.LlamaServer == "" {
		errs = append(errs, "missing 'llama_server' path in config")
	} else if !pathExists(cfg.Paths.LlamaServer) {
		errs = append(errs, fmt.Sprintf("llama-server not found at: %s", cfg.Paths.LlamaServer))
	}
	if cfg.Paths.ModelsBase == "" {
		errs = append(errs, "missing 'models_base' path in config")
	} else if !pathExists(cfg.Paths.ModelsBase) {
		errs = append(errs, fmt.Sprintf("models directory not found at: %s", cfg.Paths.ModelsBase))
	}

	if len(cfg.Models) == 0 {
		warnings = append(warnings, "no models defined in config")
	}
	for id, m := range cfg.Models {
		if m.Name == "" {
			warnings = append(warnings, fmt.Sprintf("model '%s' missing 'name' field", id))
		}
		if m.File == "" {
			errs = append(errs, fmt.Sprintf("model '%s' missing 'file' field", id))
		} else if cfg.Paths.ModelsBase != "" && !pathExists(cfg.ModelPath(m)) {
			warnings = append(warnings, fmt.Sprintf("model file not found: %s", cfg.ModelPath(m)))
		}
	}
	return errs, warnings
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}
