package bindle

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bindle-build/bindle/internal/version"
	"github.com/bindle-build/bindle/pkg/config"
	"github.com/bindle-build/bindle/pkg/errors"
	"github.com/bindle-build/bindle/pkg/filesystem"
	"github.com/bindle-build/bindle/pkg/logging"
	"github.com/bindle-build/bindle/pkg/output"
	"github.com/bindle-build/bindle/pkg/rules"
	"github.com/bindle-build/bindle/pkg/types"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		stylesPath string
	)

	rootCmd := &cobra.Command{
		Use:     "bindle",
		Short:   "Transform rule selection for bundling pipelines",
		Long: `bindle selects, for each build context of a bundling pipeline, the
ordered set of content-transform rules that must run on matching source
files. Rules are gated by condition trees over a file's resource path
and how it is referenced.`,
		Version: FormatVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if stylesPath != "" {
				if err := output.LoadStyles(stylesPath); err != nil {
					return err
				}
				log.Debug().Str("path", stylesPath).Msg("Loaded style overrides")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&stylesPath, "styles", "",
		"YAML file overriding output styles")

	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newGenconfigCmd())

	return rootCmd
}

// contextFlags hold the flags shared by select and eval
type contextFlags struct {
	target   string
	pagesDir string
	ssrMode  string
	root     string
}

func (f *contextFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.target, "target", "t", "",
		"Build context: server-pages, server-app-ssr, server-app-rsc, client-pages, client-app, client-fallback, client-other")
	cmd.Flags().StringVar(&f.pagesDir, "pages-dir", "",
		"Routing root for pages contexts")
	cmd.Flags().StringVar(&f.ssrMode, "ssr-mode", "ssr",
		"Rendering sub-mode for server-pages: ssr or ssr-data")
	cmd.Flags().StringVar(&f.root, "root", ".",
		"Project root for configuration lookup")
	_ = cmd.MarkFlagRequired("target")
}

// buildContext converts CLI flags into a build context
func (f *contextFlags) buildContext() (rules.Context, error) {
	needsPagesDir := f.target == "server-pages" || f.target == "client-pages"
	if needsPagesDir && f.pagesDir == "" {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"--pages-dir is required for target %q", f.target)
	}

	switch f.target {
	case "server-pages":
		mode := rules.SSRMode(f.ssrMode)
		if mode != rules.ModeSSR && mode != rules.ModeSSRData {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"unknown --ssr-mode %q (expected ssr or ssr-data)", f.ssrMode)
		}
		return rules.ServerPages{PagesDir: f.pagesDir, Mode: mode}, nil
	case "server-app-ssr":
		return rules.ServerAppSSR{}, nil
	case "server-app-rsc":
		return rules.ServerAppRSC{}, nil
	case "client-pages":
		return rules.ClientPages{PagesDir: f.pagesDir}, nil
	case "client-app":
		return rules.ClientApp{}, nil
	case "client-fallback":
		return rules.ClientFallback{}, nil
	case "client-other":
		return rules.ClientOther{}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput,
			"unknown target %q", f.target)
	}
}

func (f *contextFlags) selectRules() (rules.Context, []rules.Rule, error) {
	ctx, err := f.buildContext()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(f.root)
	if err != nil {
		return nil, nil, err
	}

	selector := rules.NewSelector(filesystem.NewResolver(), cfg.SelectorOptions())
	list, err := selector.Select(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ctx, list, nil
}

func newSelectCmd() *cobra.Command {
	flags := &contextFlags{}

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Show the transform rules selected for a build context",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, list, err := flags.selectRules()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output.RenderRules(ctx, list))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newEvalCmd() *cobra.Command {
	flags := &contextFlags{}
	var refKind string

	cmd := &cobra.Command{
		Use:   "eval [paths...]",
		Short: "Evaluate a context's rules against candidate file paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseReferenceKind(refKind)
			if err != nil {
				return err
			}

			_, list, err := flags.selectRules()
			if err != nil {
				return err
			}

			for _, path := range args {
				fact := types.NewResourceFact(path, kind)
				effects := rules.CollectEffects(list, fact)
				fmt.Fprint(cmd.OutOrStdout(), output.RenderEffects(fact, effects))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&refKind, "reference", string(types.RefKindModule),
		"Reference kind of the candidates: module, entry, url-undefined")
	return cmd
}

// parseReferenceKind validates the --reference flag value
func parseReferenceKind(s string) (types.ReferenceKind, error) {
	switch kind := types.ReferenceKind(s); kind {
	case types.RefKindModule, types.RefKindEntry, types.RefKindURLUndefined:
		return kind, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput,
			"unknown reference kind %q (expected module, entry, url-undefined)", s)
	}
}

func newGenconfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Print (or write) a starter bindle.toml with the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Default()
			if err != nil {
				return err
			}

			content, err := config.Generate(cfg)
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			if _, err := os.Stat("bindle.toml"); err == nil {
				return fmt.Errorf("bindle.toml already exists, refusing to overwrite")
			}
			if err := os.WriteFile("bindle.toml", []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write bindle.toml: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote bindle.toml")
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write bindle.toml instead of printing to stdout")
	return cmd
}

// FormatVersion renders the full version string for --version output
func FormatVersion() string {
	parts := []string{version.Version}
	if version.Commit != "unknown" {
		parts = append(parts, version.Commit)
	}
	return strings.Join(parts, " ")
}
