// Package types defines the shared data model for bindle's rule selection:
// the facts known about a candidate source file, how that file is referenced
// by its importer, the path-resolution collaborator used to derive rule
// scopes, and the opaque transform payloads attached to matched rules.
package types
