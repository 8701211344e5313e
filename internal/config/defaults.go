package config

import "time"

// DefaultConfig returns configuration with sensible defaults. The API key is
// never a literal: it references an environment variable that the operator
// sets.
func DefaultConfig() *Config {
	return &Config{
		Vision: VisionCfg{
			Endpoint:    "https://dashscope.aliyuncs.com/api/v1/services/aigc/multimodal-generation/generation",
			APIKey:      "${SEADEX_VISION_API_KEY}",
			Model:       "qwen-vl-plus",
			MaxTokens:   2000,
			Temperature: 0.1,
			TopP:        0.8,
			Timeout:     60 * time.Second,
		},
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8080",
		},
		Upload: UploadCfg{
			MaxSizeBytes: 10 << 20, // 10MB
		},
		Log: LogCfg{
			Level: "info",
		},
	}
}
