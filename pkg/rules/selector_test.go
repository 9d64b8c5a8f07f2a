package rules_test

import (
	"testing"

	"github.com/bindle-build/bindle/pkg/errors"
	"github.com/bindle-build/bindle/pkg/filesystem"
	"github.com/bindle-build/bindle/pkg/rules"
	"github.com/bindle-build/bindle/pkg/testutil"
	"github.com/bindle-build/bindle/pkg/transforms"
	"github.com/bindle-build/bindle/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelector(opts rules.Options) *rules.Selector {
	return rules.NewSelector(filesystem.NewResolver(), opts)
}

func ruleNames(list []rules.Rule) []string {
	names := make([]string, len(list))
	for i, r := range list {
		names[i] = r.Name
	}
	return names
}

func moduleFact(path string) types.ResourceFact {
	return types.NewResourceFact(path, types.RefKindModule)
}

func TestSelect_DecisionTable(t *testing.T) {
	tests := []struct {
		name     string
		context  rules.Context
		expected []string
	}{
		{
			name:     "server pages ssr",
			context:  rules.ServerPages{PagesDir: "/pages", Mode: rules.ModeSSR},
			expected: []string{rules.RuleNameDynamicImport},
		},
		{
			name:     "server pages ssr data",
			context:  rules.ServerPages{PagesDir: "/pages", Mode: rules.ModeSSRData},
			expected: []string{rules.RuleNameDynamicImport, rules.RuleNamePagesTransforms},
		},
		{
			name:     "server app ssr",
			context:  rules.ServerAppSSR{},
			expected: []string{rules.RuleNameDynamicImport},
		},
		{
			name:     "server app rsc",
			context:  rules.ServerAppRSC{},
			expected: []string{rules.RuleNameDynamicImport},
		},
		{
			name:    "client pages",
			context: rules.ClientPages{PagesDir: "/pages"},
			expected: []string{
				rules.RuleNameFontLoader,
				rules.RuleNamePagesTransforms,
				rules.RuleNameDynamicImport,
			},
		},
		{
			name:     "client app",
			context:  rules.ClientApp{},
			expected: []string{rules.RuleNameFontLoader, rules.RuleNameDynamicImport},
		},
		{
			name:     "client fallback",
			context:  rules.ClientFallback{},
			expected: []string{rules.RuleNameFontLoader, rules.RuleNameDynamicImport},
		},
		{
			name:     "client other",
			context:  rules.ClientOther{},
			expected: []string{rules.RuleNameFontLoader, rules.RuleNameDynamicImport},
		},
	}

	selector := newSelector(rules.Options{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := selector.Select(tt.context)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ruleNames(list))
		})
	}
}

func TestSelect_Determinism(t *testing.T) {
	selector := newSelector(rules.Options{})
	ctx := rules.ClientPages{PagesDir: "/pages"}

	first, err := selector.Select(ctx)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := selector.Select(ctx)
		require.NoError(t, err)
		require.Len(t, again, len(first))
		for j := range first {
			assert.Equal(t, first[j].Name, again[j].Name)
			assert.Equal(t, first[j].Condition.Describe(), again[j].Condition.Describe())
			assert.Equal(t, first[j].Effects, again[j].Effects)
		}
	}
}

func TestSelect_DynamicImportFlags(t *testing.T) {
	pagesDir := "/pages"

	tests := []struct {
		name     string
		context  rules.Context
		expected transforms.DynamicImport
	}{
		{
			name:    "server pages carries pages dir",
			context: rules.ServerPages{PagesDir: pagesDir, Mode: rules.ModeSSR},
			expected: transforms.DynamicImport{
				IsDevelopment: true,
				IsServer:      true,
				PagesDir:      &pagesDir,
			},
		},
		{
			name:    "server app ssr has no pages dir",
			context: rules.ServerAppSSR{},
			expected: transforms.DynamicImport{
				IsDevelopment: true,
				IsServer:      true,
			},
		},
		{
			name:    "server app rsc sets components flag",
			context: rules.ServerAppRSC{},
			expected: transforms.DynamicImport{
				IsDevelopment:      true,
				IsServer:           true,
				IsServerComponents: true,
			},
		},
		{
			name:    "client pages carries pages dir",
			context: rules.ClientPages{PagesDir: pagesDir},
			expected: transforms.DynamicImport{
				IsDevelopment: true,
				PagesDir:      &pagesDir,
			},
		},
		{
			name:     "client fallback has no pages dir",
			context:  rules.ClientFallback{},
			expected: transforms.DynamicImport{IsDevelopment: true},
		},
	}

	selector := newSelector(rules.Options{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := selector.Select(tt.context)
			require.NoError(t, err)

			var spec *transforms.DynamicImport
			for _, rule := range list {
				if rule.Name == rules.RuleNameDynamicImport {
					require.Len(t, rule.Effects, 1)
					dyn := rule.Effects[0].(transforms.DynamicImport)
					spec = &dyn
				}
			}
			require.NotNil(t, spec, "every context produces a dynamic-import rule")
			assert.Equal(t, tt.expected, *spec)
		})
	}
}

func TestSelect_ExportFilterPerContext(t *testing.T) {
	selector := newSelector(rules.Options{})

	serverRules, err := selector.Select(rules.ServerPages{PagesDir: "/pages", Mode: rules.ModeSSRData})
	require.NoError(t, err)
	serverStrip := findRule(t, serverRules, rules.RuleNamePagesTransforms)
	assert.Equal(t,
		transforms.StripPageExports{Filter: transforms.StripDefaultExport, PagesDir: "/pages"},
		serverStrip.Effects[0])

	clientRules, err := selector.Select(rules.ClientPages{PagesDir: "/pages"})
	require.NoError(t, err)
	clientStrip := findRule(t, clientRules, rules.RuleNamePagesTransforms)
	assert.Equal(t,
		transforms.StripPageExports{Filter: transforms.StripDataExports, PagesDir: "/pages"},
		clientStrip.Effects[0])
}

func TestPagesTransformsCondition(t *testing.T) {
	selector := newSelector(rules.Options{})
	list, err := selector.Select(rules.ClientPages{PagesDir: "/pages"})
	require.NoError(t, err)

	strip := findRule(t, list, rules.RuleNamePagesTransforms)

	tests := []struct {
		name    string
		fact    types.ResourceFact
		matches bool
	}{
		{"page under root", moduleFact("/pages/about.tsx"), true},
		{"nested page", moduleFact("/pages/blog/first.jsx"), true},
		{"api route excluded", moduleFact("/pages/api/hello.ts"), false},
		{"nested api route excluded", moduleFact("/pages/api/v2/users.ts"), false},
		{"document js excluded", moduleFact("/pages/_document.js"), false},
		{"document jsx excluded", moduleFact("/pages/_document.jsx"), false},
		{"document ts excluded", moduleFact("/pages/_document.ts"), false},
		{"document tsx excluded", moduleFact("/pages/_document.tsx"), false},
		{"outside pages dir", moduleFact("/src/about.tsx"), false},
		{"stylesheet under root", moduleFact("/pages/styles.css"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, strip.Matches(tt.fact))
		})
	}
}

func TestURLReferenceExclusion(t *testing.T) {
	selector := newSelector(rules.Options{})
	list, err := selector.Select(rules.ClientApp{})
	require.NoError(t, err)

	urlFact := types.NewResourceFact("/src/widget.tsx", types.RefKindURLUndefined)

	for _, rule := range list {
		assert.False(t, rule.Matches(urlFact),
			"rule %s must not match URL references", rule.Name)
	}

	// The same candidate as a module import does match.
	for _, rule := range list {
		assert.True(t, rule.Matches(moduleFact("/src/widget.tsx")))
	}
}

func TestExtensionGate(t *testing.T) {
	selector := newSelector(rules.Options{})
	list, err := selector.Select(rules.ServerAppSSR{})
	require.NoError(t, err)
	dynamic := findRule(t, list, rules.RuleNameDynamicImport)

	for _, ext := range []string{".js", ".jsx", ".ts", ".tsx"} {
		assert.True(t, dynamic.Matches(moduleFact("/src/widget"+ext)),
			"extension %s should pass the gate", ext)
	}
	assert.False(t, dynamic.Matches(moduleFact("/src/widget.css")))
	assert.False(t, dynamic.Matches(moduleFact("/src/widget.json")))
	assert.False(t, dynamic.Matches(moduleFact("/src/widget")))
}

func TestSelect_FailurePropagation(t *testing.T) {
	tests := []struct {
		name    string
		segment string
	}{
		{"api dir fails", "api"},
		{"document file fails", "_document.tsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := testutil.NewRecordingResolver().FailOnSegment(tt.segment)
			selector := rules.NewSelector(resolver, rules.Options{})

			list, err := selector.Select(rules.ClientPages{PagesDir: "/pages"})
			require.Error(t, err)
			assert.Nil(t, list, "no partial rule list on failure")
			assert.True(t, errors.IsErrorCode(err, errors.ErrPathResolve))
		})
	}
}

func TestSelect_NoResolverCallsWithoutPagesDir(t *testing.T) {
	resolver := testutil.NewRecordingResolver()
	selector := rules.NewSelector(resolver, rules.Options{})

	for _, ctx := range []rules.Context{
		rules.ServerPages{PagesDir: "/pages", Mode: rules.ModeSSR},
		rules.ServerAppSSR{},
		rules.ServerAppRSC{},
		rules.ClientApp{},
		rules.ClientFallback{},
		rules.ClientOther{},
	} {
		_, err := selector.Select(ctx)
		require.NoError(t, err)
	}

	assert.Empty(t, resolver.Calls,
		"only export-stripping contexts derive sub-paths")
}

func TestSelect_FontLoaderConfiguration(t *testing.T) {
	t.Run("default loaders", func(t *testing.T) {
		list, err := newSelector(rules.Options{}).Select(rules.ClientOther{})
		require.NoError(t, err)
		font := findRule(t, list, rules.RuleNameFontLoader)
		assert.Equal(t,
			transforms.FontLoader{Loaders: []string{"@next/font/google"}},
			font.Effects[0])
	})

	t.Run("configured loaders", func(t *testing.T) {
		opts := rules.Options{
			FontLoaders: []string{"@next/font/google", "@next/font/local"},
		}
		list, err := newSelector(opts).Select(rules.ClientOther{})
		require.NoError(t, err)
		font := findRule(t, list, rules.RuleNameFontLoader)
		assert.Equal(t,
			transforms.FontLoader{Loaders: []string{"@next/font/google", "@next/font/local"}},
			font.Effects[0])
	})

	t.Run("scope restriction", func(t *testing.T) {
		opts := rules.Options{FontRuleScope: "/pages"}
		list, err := newSelector(opts).Select(rules.ClientOther{})
		require.NoError(t, err)
		font := findRule(t, list, rules.RuleNameFontLoader)

		assert.True(t, font.Matches(moduleFact("/pages/index.tsx")))
		assert.False(t, font.Matches(moduleFact("/src/widget.tsx")))
	})
}

func TestSelect_ExtraPageExcludes(t *testing.T) {
	opts := rules.Options{ExtraPageExcludes: []string{"_app"}}
	list, err := newSelector(opts).Select(rules.ClientPages{PagesDir: "/pages"})
	require.NoError(t, err)

	strip := findRule(t, list, rules.RuleNamePagesTransforms)

	for _, ext := range []string{".js", ".jsx", ".ts", ".tsx"} {
		assert.False(t, strip.Matches(moduleFact("/pages/_app"+ext)),
			"_app%s should be excluded", ext)
	}
	assert.True(t, strip.Matches(moduleFact("/pages/about.tsx")),
		"ordinary pages are still stripped")
}

func TestSelect_UnknownSSRMode(t *testing.T) {
	selector := newSelector(rules.Options{})

	list, err := selector.Select(rules.ServerPages{PagesDir: "/pages", Mode: "bogus"})
	require.Error(t, err)
	assert.Nil(t, list)
	assert.True(t, errors.IsErrorCode(err, errors.ErrContextInvalid))
}

func findRule(t *testing.T, list []rules.Rule, name string) rules.Rule {
	t.Helper()
	for _, rule := range list {
		if rule.Name == name {
			return rule
		}
	}
	t.Fatalf("rule %s not found in %v", name, ruleNames(list))
	return rules.Rule{}
}
