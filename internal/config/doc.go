// Package config manages user-level settings stored at ~/.scaffolder/config.yaml.
// Settings only affect how the CLI reports its work (for example verbose
// progress output); the component layout itself is compiled in and is never
// read from configuration.
package config
