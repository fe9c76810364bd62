package config

import "time"

// defaultConfig returns the built-in fallback values applied when no other
// configuration source provides a value.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "farm-ledger",
			TokenDuration: 24 * time.Hour,
			PublicBaseURL: "http://localhost:8080",
		},
		Storage: Storage{
			S3: S3{
				Region: "us-east-1",
			},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}
