package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultAPIKey is the placeholder secret shipped in example configs.
// Validate warns when it is still in use.
const DefaultAPIKey = "CHANGE_ME_TO_SOMETHING_RANDOM_1234567890"

const (
	defaultContext   = 8192
	defaultGPULayers = 48
)

// ServerConfig addresses the control server itself and the port the
// managed llama-server will bind to.
type ServerConfig struct {
	Host      string `json:"host" yaml:"host" toml:"host"`
	Port      int    `json:"port" yaml:"port" toml:"port"`
	LlamaHost string `json:"llama_host" yaml:"llama_host" toml:"llama_host"`
	LlamaPort int    `json:"llama_port" yaml:"llama_port" toml:"llama_port"`
}

// SecurityConfig carries the shared secret compared at the API boundary.
type SecurityConfig struct {
	APIKey string `json:"api_key" yaml:"api_key" toml:"api_key"`
}

// PathsConfig locates the llama-server binary and the model files directory.
type PathsConfig struct {
	LlamaServer string `json:"llama_server" yaml:"llama_server" toml:"llama_server"`
	ModelsBase  string `json:"models_base" yaml:"models_base" toml:"models_base"`
}

// ModelConfig is one launch descriptor. Optional sampling knobs are pointers
// so absent keys produce no command-line flag.
type ModelConfig struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	File      string   `json:"file" yaml:"file" toml:"file"`
	Context   int      `json:"context" yaml:"context" toml:"context"`
	GPULayers int      `json:"gpu_layers" yaml:"gpu_layers" toml:"gpu_layers"`
	CPUMoE    *int     `json:"cpu_moe,omitempty" yaml:"cpu_moe,omitempty" toml:"cpu_moe,omitempty"`
	Temp      *float64 `json:"temp,omitempty" yaml:"temp,omitempty" toml:"temp,omitempty"`
	TopK      *int     `json:"top_k,omitempty" yaml:"top_k,omitempty" toml:"top_k,omitempty"`
	TopP      *float64 `json:"top_p,omitempty" yaml:"top_p,omitempty" toml:"top_p,omitempty"`
	MinP      *float64 `json:"min_p,omitempty" yaml:"min_p,omitempty" toml:"min_p,omitempty"`
	ExtraArgs []string `json:"extra_args,omitempty" yaml:"extra_args,omitempty" toml:"extra_args,omitempty"`
}

// ContextSize returns the configured context window or the package default.
func (m ModelConfig) ContextSize() int {
	if m.Context > 0 {
		return m.Context
	}
	return defaultContext
}

// GPULayerCount returns the configured GPU layer count or the package default.
func (m ModelConfig) GPULayerCount() int {
	if m.GPULayers > 0 {
		return m.GPULayers
	}
	return defaultGPULayers
}

// Config holds the full validated configuration. Loaded once at boot and
// treated as immutable afterwards.
type Config struct {
	Server   ServerConfig           `json:"server" yaml:"server" toml:"server"`
	Security SecurityConfig         `json:"security" yaml:"security" toml:"security"`
	Paths    PathsConfig            `json:"paths" yaml:"paths" toml:"paths"`
	Models   map[string]ModelConfig `json:"models" yaml:"models" toml:"models"`
}

// ModelPath builds the absolute path of a model file from the base directory.
func (c Config) ModelPath(m ModelConfig) string {
	return filepath.Join(c.Paths.ModelsBase, m.File)
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	expandPaths(&cfg)
	return cfg, nil
}

func expandPaths(cfg *Config) {
	cfg.Paths.LlamaServer = expandHome(cfg.Paths.LlamaServer)
	cfg.Paths.ModelsBase = expandHome(cfg.Paths.ModelsBase)
}

// expandHome expands a leading '~' to the user's home directory.
// The path is returned unchanged when the home directory is unknown.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/"))
}
