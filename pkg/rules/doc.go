// Package rules implements bindle's transform rule selection. Given a
// build context (server or client rendering variant, page routing root,
// rendering sub-mode), the Selector derives the ordered list of transform
// rules for that context. Each rule pairs a condition tree over candidate
// file facts with the ordered transform payloads to apply on match.
//
// Rule order within a context is significant: the bundling pipeline
// evaluates rules in list order and accumulates effects of every matching
// rule. Selection itself is side-effect free apart from path derivation
// through the PathResolver collaborator; a resolution failure aborts the
// whole selection with no partial list.
package rules
