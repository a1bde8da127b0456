// Package layout describes the component skeleton the scaffolder materializes:
// a base directory and the ordered list of empty files created inside it.
// The default layout is embedded in the binary as layout.yaml and checked
// against a JSON Schema and a supported format version before use.
package layout
