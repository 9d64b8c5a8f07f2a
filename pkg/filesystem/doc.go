// Package filesystem provides PathResolver implementations: a purely
// lexical resolver over bundler-normalized slash paths, and an afero-backed
// resolver that additionally requires the base directory to exist. The
// afero variant is what tests and tooling use to exercise resolution
// failures without touching the real filesystem.
package filesystem
