// Package cli provides common CLI utilities for giztoy command-line tools.
//
// This package includes:
//   - Configuration management (named render profiles)
//   - Output formatting (YAML, JSON, table)
//   - Request file loading (YAML/JSON)
//   - A bordered frame for terminal charts
//
// Configuration is stored in ~/.giztoy/<app>/config.yaml, supporting
// multiple profiles similar to kubectl contexts.
//
// Example usage:
//
//	cfg, err := cli.LoadConfig("wavescale")
//
//	// Current profile, overridden by explicit flags
//	p, err := cfg.ResolveProfile("")
//	eff := p.Merge(cli.Profile{SampleRate: 22050})
//
//	// Output result
//	cli.Output(result, cli.OutputOptions{Format: cli.FormatJSON})
package cli
