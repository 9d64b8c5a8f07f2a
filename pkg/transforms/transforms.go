// Package transforms defines the transform payloads that selected rules
// attach to matched files. The rule engine treats these as opaque data;
// the transform executors downstream interpret them.
package transforms

// Transform kind identifiers, stable across releases so executors and
// logs can rely on them.
const (
	KindStripPageExports = "strip-page-exports"
	KindDynamicImport    = "dynamic-import"
	KindFontLoader       = "font-loader"
)

// ExportFilter selects which exports the page export-stripping transform
// removes from a page module.
type ExportFilter string

const (
	// StripDefaultExport removes the default export, keeping data exports.
	// Used when compiling the server data variant of a page.
	StripDefaultExport ExportFilter = "strip-default-export"

	// StripDataExports removes data exports, keeping the default export.
	// Used when compiling the client variant of a page.
	StripDataExports ExportFilter = "strip-data-exports"
)

// StripPageExports strips a subset of a page module's exports
type StripPageExports struct {
	// Filter selects which exports are removed.
	Filter ExportFilter

	// PagesDir is the routing root the page belongs to.
	PagesDir string
}

// Kind implements types.TransformSpec
func (StripPageExports) Kind() string { return KindStripPageExports }

// DynamicImport wraps dynamic imports with the flags the runtime needs.
// The flags are carried through unchanged; the rule engine never reads them.
type DynamicImport struct {
	IsDevelopment      bool
	IsServer           bool
	IsServerComponents bool

	// PagesDir is the routing root, when the context has one.
	PagesDir *string
}

// Kind implements types.TransformSpec
func (DynamicImport) Kind() string { return KindDynamicImport }

// FontLoader rewrites imports of recognized font-loader modules.
type FontLoader struct {
	// Loaders is the ordered list of recognized font-loader import
	// specifiers, supplied by build configuration.
	Loaders []string
}

// Kind implements types.TransformSpec
func (FontLoader) Kind() string { return KindFontLoader }
