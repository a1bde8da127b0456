// Package cli defines the Cobra command tree for the scaffolder CLI. The root
// command performs the scaffold run itself; each other file registers one
// subcommand. Commands delegate to internal packages for the filesystem work
// and only handle flags and output formatting.
package cli
