package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zeusync/schemagen/internal/cli/config"
	"github.com/zeusync/schemagen/internal/codegen"
	"github.com/zeusync/schemagen/internal/codegen/bundle"
	"github.com/zeusync/schemagen/internal/injector"
	"github.com/zeusync/schemagen/pkg/concurrent"
	"github.com/zeusync/schemagen/pkg/observability/log"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	v := config.New()
	var configPath string

	cmd := &cobra.Command{
		Use:     "generate [bundle...]",
		Aliases: []string{"gen"},
		Short:   "Generate Go code from schema bundles",
		Long: `Generate Go types, codecs and registration code from one or more schema bundles.

Settings come from flags, SCHEMAGEN_* environment variables and schemagen.yaml,
in that order of precedence.

Examples:
  schemagen generate schema/bundle.json
  schemagen generate schema/bundle.json -o internal/components/components.gen.go -p components
  schemagen generate a.json b.yaml -o gen/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				v.Set("bundles", args)
			}

			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			if len(cfg.Bundles) == 0 {
				return fmt.Errorf("no schema bundles given\n\nUsage: schemagen generate <bundle>...")
			}

			app, err := injector.InitializeApp(cfg)
			if err != nil {
				return err
			}

			return runGenerate(cmd, cfg, app)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default ./schemagen.yaml)")
	flags.StringP("output", "o", "", "output .go file or directory (default stdout)")
	flags.StringP("package", "p", codegen.DefaultPackageName, "package name of the generated file")
	flags.Bool("qualified-names", false, "prefix Go type names with their schema package")
	flags.String("schema-import", codegen.DefaultSchemaImport, "import path of the schema runtime")
	flags.Int("workers", 4, "bundles generated in parallel (0 means one per bundle)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	bindFlags(v, cmd, map[string]string{
		"output":          "output",
		"package":         "package",
		"qualified_names": "qualified-names",
		"schema_import":   "schema-import",
		"workers":         "workers",
		"log_level":       "log-level",
	})

	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, flag := range keys {
		// Lookup never fails for flags registered above.
		_ = v.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}

// generateJob is one bundle and where its code goes. An empty output means
// stdout.
type generateJob struct {
	bundle string
	output string
	pkg    string
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, app *injector.App) error {
	jobs, err := planJobs(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sources, err := concurrent.Map(ctx, jobs, cfg.Workers, func(ctx context.Context, job generateJob) (string, error) {
		return generateBundle(job, app)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	successColor := color.New(color.FgGreen, color.Bold)
	for i, job := range jobs {
		if job.output == "" {
			fmt.Fprint(out, sources[i])
			continue
		}
		successColor.Fprintf(out, "✓ %s -> %s\n", job.bundle, job.output)
	}
	return nil
}

// generateBundle generates a single bundle, writing it to job.output when set.
// It returns the generated source.
func generateBundle(job generateJob, app *injector.App) (string, error) {
	b, err := bundle.LoadFile(job.bundle)
	if err != nil {
		return "", fmt.Errorf("failed to load %s: %w", job.bundle, err)
	}

	opts := app.Options
	opts.PackageName = job.pkg
	src, err := codegen.GenerateCode(b, opts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", job.bundle, err)
	}

	if job.output == "" {
		return src, nil
	}
	if err := os.MkdirAll(filepath.Dir(job.output), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(job.output, []byte(src), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", job.output, err)
	}

	app.Logger.Info("wrote generated code",
		log.String("bundle", job.bundle),
		log.String("output", job.output),
		log.String("package", job.pkg),
	)
	return src, nil
}

// planJobs decides where each bundle is written. A single bundle goes to
// stdout, to the named .go file, or to <dir>/<bundle>.gen.go. Several bundles
// each get their own package directory under the output directory, named
// after the bundle file.
func planJobs(cfg *config.Config) ([]generateJob, error) {
	if len(cfg.Bundles) == 1 {
		job := generateJob{bundle: cfg.Bundles[0], pkg: cfg.Package}
		switch {
		case cfg.Output == "":
		case strings.HasSuffix(cfg.Output, ".go"):
			job.output = cfg.Output
		default:
			job.output = filepath.Join(cfg.Output, bundleBaseName(job.bundle)+".gen.go")
		}
		return []generateJob{job}, nil
	}

	jobs := make([]generateJob, 0, len(cfg.Bundles))
	seen := make(map[string]string, len(cfg.Bundles))
	for _, path := range cfg.Bundles {
		pkg := packageNameFor(path)
		if other, ok := seen[pkg]; ok {
			return nil, fmt.Errorf("bundles %s and %s both map to package %q", other, path, pkg)
		}
		seen[pkg] = path
		jobs = append(jobs, generateJob{
			bundle: path,
			output: filepath.Join(cfg.Output, pkg, pkg+".gen.go"),
			pkg:    pkg,
		})
	}
	return jobs, nil
}

func bundleBaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// packageNameFor derives a Go package name from a bundle file name:
// "Game-Components.json" becomes "gamecomponents".
func packageNameFor(path string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(bundleBaseName(path)) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "schema" + name
	}
	return name
}
