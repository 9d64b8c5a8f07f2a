package rules

import (
	"github.com/bindle-build/bindle/pkg/conditions"
	"github.com/bindle-build/bindle/pkg/errors"
	"github.com/bindle-build/bindle/pkg/logging"
	"github.com/bindle-build/bindle/pkg/transforms"
	"github.com/bindle-build/bindle/pkg/types"
	"github.com/rs/zerolog"
)

// scriptExtensions are the extensions code transforms apply to.
var scriptExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// documentBasename is the framework-reserved page whose exports must never
// be stripped.
const documentBasename = "_document"

// DefaultFontLoaders is the font-loader specifier set used when build
// configuration supplies none.
var DefaultFontLoaders = []string{"@next/font/google"}

// Options are the build-configuration inputs to rule selection. The zero
// value selects the stock behavior.
type Options struct {
	// FontLoaders is the ordered list of recognized font-loader import
	// specifiers. Empty means DefaultFontLoaders.
	FontLoaders []string

	// ExtraPageExcludes lists additional page basenames (without
	// extension, e.g. "_app") excluded from export stripping alongside
	// the always-excluded document page.
	ExtraPageExcludes []string

	// FontRuleScope optionally restricts the font-loader rule to files
	// within the given directory. Empty means any script file.
	FontRuleScope string
}

// Selector derives ordered transform rule lists from build contexts. It
// holds no mutable state and may be used from any number of goroutines.
type Selector struct {
	resolver types.PathResolver
	opts     Options
	logger   zerolog.Logger
}

// NewSelector creates a selector that derives rule scopes through resolver
func NewSelector(resolver types.PathResolver, opts Options) *Selector {
	if len(opts.FontLoaders) == 0 {
		opts.FontLoaders = DefaultFontLoaders
	}
	return &Selector{
		resolver: resolver,
		opts:     opts,
		logger:   logging.GetLogger("rules.selector"),
	}
}

// Select returns the ordered transform rules for the given build context.
// Rule order is part of the contract: callers apply effects in list order.
// A path-resolution failure aborts the whole call; no partial list is
// returned.
func (s *Selector) Select(ctx Context) ([]Rule, error) {
	s.logger.Debug().Str("context", ctx.Variant()).Msg("Selecting transform rules")

	var rules []Rule

	switch c := ctx.(type) {
	case ServerPages:
		rules = append(rules, s.dynamicImportRule(true, true, false, &c.PagesDir))

		switch c.Mode {
		case ModeSSR:
			// Full SSR keeps all page exports.
		case ModeSSRData:
			rule, err := s.pagesTransformsRule(c.PagesDir, transforms.StripDefaultExport)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		default:
			return nil, errors.Newf(errors.ErrContextInvalid,
				"unknown SSR mode %q", string(c.Mode))
		}

	case ServerAppSSR:
		rules = append(rules, s.dynamicImportRule(true, true, false, nil))

	case ServerAppRSC:
		rules = append(rules, s.dynamicImportRule(true, true, true, nil))

	case ClientPages:
		rules = append(rules, s.fontLoaderRule())

		rule, err := s.pagesTransformsRule(c.PagesDir, transforms.StripDataExports)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
		rules = append(rules, s.dynamicImportRule(true, false, false, &c.PagesDir))

	case ClientApp, ClientFallback, ClientOther:
		rules = append(rules, s.fontLoaderRule())
		rules = append(rules, s.dynamicImportRule(true, false, false, nil))

	default:
		return nil, errors.Newf(errors.ErrContextInvalid,
			"unhandled build context %q", ctx.Variant())
	}

	s.logger.Debug().
		Str("context", ctx.Variant()).
		Int("ruleCount", len(rules)).
		Msg("Selected transform rules")

	return rules, nil
}

// pagesTransformsRule builds the export-stripping rule for page files. It
// applies to script files under the routing root, excluding API routes,
// the document page, and any configured extra page excludes.
func (s *Selector) pagesTransformsRule(pagesDir string, filter transforms.ExportFilter) (Rule, error) {
	apiDir, err := s.resolver.Join(pagesDir, "api")
	if err != nil {
		return Rule{}, errors.Wrapf(err, errors.ErrPathResolve,
			"failed to resolve %q under pages dir %s", "api", pagesDir)
	}

	excluded, err := s.excludedPageConditions(pagesDir)
	if err != nil {
		return Rule{}, err
	}

	condition := conditions.All(
		conditions.All(
			conditions.PathWithinDirectory(pagesDir),
			conditions.Not(conditions.PathWithinDirectory(apiDir)),
			conditions.Not(conditions.Any(excluded...)),
		),
		scriptExtensionGate(),
	)

	return Rule{
		Name:        RuleNamePagesTransforms,
		Description: "strips page exports not needed by this rendering variant",
		Condition:   condition,
		Effects: []types.TransformSpec{
			transforms.StripPageExports{Filter: filter, PagesDir: pagesDir},
		},
	}, nil
}

// excludedPageConditions derives the exact-path conditions for pages that
// must never have exports stripped: the document page plus configured
// extras, each across every script extension.
func (s *Selector) excludedPageConditions(pagesDir string) ([]conditions.Condition, error) {
	basenames := append([]string{documentBasename}, s.opts.ExtraPageExcludes...)

	var excluded []conditions.Condition
	for _, base := range basenames {
		for _, ext := range scriptExtensions {
			path, err := s.resolver.Join(pagesDir, base+ext)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrPathResolve,
					"failed to resolve %q under pages dir %s", base+ext, pagesDir)
			}
			excluded = append(excluded, conditions.PathEquals(path))
		}
	}

	return excluded, nil
}

// dynamicImportRule builds the dynamic-import wrapping rule. It must not
// touch files reached through URL references; those are resource loads,
// not code module loads.
func (s *Selector) dynamicImportRule(isDevelopment, isServer, isServerComponents bool, pagesDir *string) Rule {
	return Rule{
		Name:        RuleNameDynamicImport,
		Description: "wraps dynamic imports with runtime flags",
		Condition: conditions.All(
			conditions.Not(conditions.ReferenceKindIs(types.RefKindURLUndefined)),
			scriptExtensionGate(),
		),
		Effects: []types.TransformSpec{
			transforms.DynamicImport{
				IsDevelopment:      isDevelopment,
				IsServer:           isServer,
				IsServerComponents: isServerComponents,
				PagesDir:           pagesDir,
			},
		},
	}
}

// fontLoaderRule builds the font-loader import rewriting rule. The loader
// specifier set comes from build configuration; the optional scope
// restriction narrows the rule beyond the extension gate.
func (s *Selector) fontLoaderRule() Rule {
	gate := []conditions.Condition{
		conditions.Not(conditions.ReferenceKindIs(types.RefKindURLUndefined)),
		scriptExtensionGate(),
	}
	if s.opts.FontRuleScope != "" {
		gate = append(gate, conditions.PathWithinDirectory(s.opts.FontRuleScope))
	}

	loaders := make([]string, len(s.opts.FontLoaders))
	copy(loaders, s.opts.FontLoaders)

	return Rule{
		Name:        RuleNameFontLoader,
		Description: "rewrites recognized font-loader imports",
		Condition:   conditions.All(gate...),
		Effects: []types.TransformSpec{
			transforms.FontLoader{Loaders: loaders},
		},
	}
}

// scriptExtensionGate matches any recognized script extension
func scriptExtensionGate() conditions.Condition {
	exts := make([]conditions.Condition, len(scriptExtensions))
	for i, ext := range scriptExtensions {
		exts[i] = conditions.PathEndsWith(ext)
	}
	return conditions.Any(exts...)
}
