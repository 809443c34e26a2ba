// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It provides typed
// access to the settings the server needs while keeping configuration
// details out of the trainer logic.
package config
