// Package scaffold materializes a component layout on disk: it ensures the
// layout's base directory exists and creates each listed file empty, in
// order. It powers the root "scaffolder" command and the "verify" check.
package scaffold
