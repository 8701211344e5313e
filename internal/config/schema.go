package config

import "time"

// Config holds seadex configuration.
// Stored at: ./config.yaml or ~/.seadex/config.yaml
type Config struct {
	Vision VisionCfg `mapstructure:"vision" yaml:"vision"`
	Server ServerCfg `mapstructure:"server" yaml:"server"`
	Upload UploadCfg `mapstructure:"upload" yaml:"upload"`
	Log    LogCfg    `mapstructure:"log" yaml:"log"`
}

// VisionCfg configures the vision-language model endpoint.
type VisionCfg struct {
	Endpoint    string  `mapstructure:"endpoint" yaml:"endpoint"`       // API endpoint URL
	APIKey      string  `mapstructure:"api_key" yaml:"api_key"`         // API key (supports ${ENV_VAR} syntax)
	Model       string  `mapstructure:"model" yaml:"model"`             // Model name
	MaxTokens   int     `mapstructure:"max_tokens" yaml:"max_tokens"`   // Generation token budget
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`
	TopP        float64 `mapstructure:"top_p" yaml:"top_p"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`   // Per-call HTTP timeout
}

// ServerCfg configures the HTTP server.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// UploadCfg bounds what images the upload endpoints accept.
type UploadCfg struct {
	MaxSizeBytes int64 `mapstructure:"max_size_bytes" yaml:"max_size_bytes"`
}

// LogCfg configures logging.
type LogCfg struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
}
