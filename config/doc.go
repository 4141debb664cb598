// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The feed endpoint and agency are injected settings rather than compiled-in
// constants so tests and deployments can point at a different upstream.
package config
