// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration types shared across stages.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "nuclide-data/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// InsecureHosts lists hosts for which TLS certificate verification is
	// disabled. The ICRP and SAGE archive servers present certificate chains
	// that fail default verification, so fetches from those hosts opt out
	// explicitly. Verification stays on for every other host.
	InsecureHosts []string `json:"insecure_hosts" yaml:"insecure_hosts"`
}

// FetchConfig holds settings for the checksummed fetcher.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// ChunkSize is the streaming buffer size in bytes for downloads
	// (default 4096000).
	ChunkSize int `json:"chunk_size" yaml:"chunk_size"`
}

// DatasetConfig holds settings for the dataset assemblers.
type DatasetConfig struct {
	FetchConfig `yaml:",inline"`

	// DataDir is the base directory for downloaded archives and dataset
	// output directories (default ".").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// ZMin and ZMax bound the atomic numbers scraped for the NIST mass
	// attenuation dataset, inclusive. Both default to 1.
	ZMin int `json:"z_min" yaml:"z_min"`
	ZMax int `json:"z_max" yaml:"z_max"`
}
