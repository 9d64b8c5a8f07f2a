package rules

// SSRMode is the rendering sub-mode of a server pages context.
type SSRMode string

const (
	// ModeSSR renders the full page on the server.
	ModeSSR SSRMode = "ssr"

	// ModeSSRData compiles the data-only variant of a page, where the
	// default export is stripped and only data exports survive.
	ModeSSRData SSRMode = "ssr-data"
)

// Context is the build-target classification that drives which transform
// rules apply. It is a closed union: the concrete types below are the only
// implementations, and the Selector handles every one of them.
type Context interface {
	// Variant returns a stable name for the context, used in logs and
	// CLI output.
	Variant() string

	isContext()
}

// ServerPages is the server-rendering context for the pages routing
// convention. PagesDir is the routing root, supplied by the caller and
// never synthesized here.
type ServerPages struct {
	PagesDir string
	Mode     SSRMode
}

// ServerAppSSR is the server-rendering context for the app routing
// convention (no routing-root payload).
type ServerAppSSR struct{}

// ServerAppRSC is the server-components context for the app routing
// convention (no routing-root payload).
type ServerAppRSC struct{}

// ClientPages is the client context for the pages routing convention.
type ClientPages struct {
	PagesDir string
}

// ClientApp is the client context for the app routing convention.
type ClientApp struct{}

// ClientFallback is the client context for fallback bundles.
type ClientFallback struct{}

// ClientOther is the client context for bundles outside any routing
// convention.
type ClientOther struct{}

func (c ServerPages) Variant() string  { return "server-pages" }
func (ServerAppSSR) Variant() string   { return "server-app-ssr" }
func (ServerAppRSC) Variant() string   { return "server-app-rsc" }
func (c ClientPages) Variant() string  { return "client-pages" }
func (ClientApp) Variant() string      { return "client-app" }
func (ClientFallback) Variant() string { return "client-fallback" }
func (ClientOther) Variant() string    { return "client-other" }

func (ServerPages) isContext()    {}
func (ServerAppSSR) isContext()   {}
func (ServerAppRSC) isContext()   {}
func (ClientPages) isContext()    {}
func (ClientApp) isContext()      {}
func (ClientFallback) isContext() {}
func (ClientOther) isContext()    {}
