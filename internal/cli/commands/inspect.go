package commands

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/zeusync/schemagen/internal/codegen/bundle"
)

// NewInspectCommand creates the inspect command
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <bundle>",
		Short: "Validate a schema bundle and summarize its contents",
		Long: `Validate a schema bundle and print its fingerprint, definition counts
and components. Every validation problem is listed, not only the first.

Examples:
  schemagen inspect schema/bundle.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bundle.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", args[0], err)
			}
			return inspectBundle(cmd.OutOrStdout(), args[0], b)
		},
	}
}

func inspectBundle(out io.Writer, path string, b *bundle.Bundle) error {
	titleColor := color.New(color.FgCyan, color.Bold)
	errorColor := color.New(color.FgRed)

	if err := b.Validate(); err != nil {
		problems := multierr.Errors(err)
		errorColor.Fprintf(out, "✗ %s is invalid:\n", path)
		for _, p := range problems {
			errorColor.Fprintf(out, "  - %v\n", p)
		}
		return fmt.Errorf("%s: %d validation problem(s)", path, len(problems))
	}

	fp, err := b.Fingerprint()
	if err != nil {
		return err
	}

	titleColor.Fprint(out, "Bundle: ")
	fmt.Fprintln(out, path)
	titleColor.Fprint(out, "Fingerprint: ")
	fmt.Fprintf(out, "0x%016x\n", fp)
	titleColor.Fprint(out, "Definitions: ")
	fmt.Fprintf(out, "%d enums, %d types, %d components\n",
		len(b.V1.EnumDefinitions), len(b.V1.TypeDefinitions), len(b.V1.ComponentDefinitions))

	if len(b.V1.ComponentDefinitions) == 0 {
		return nil
	}

	idx := bundle.NewIndex(b)
	components := slices.Clone(b.V1.ComponentDefinitions)
	slices.SortFunc(components, func(x, y bundle.ComponentDefinition) int {
		return cmp.Compare(x.ComponentID, y.ComponentID)
	})

	titleColor.Fprintln(out, "Components:")
	for i := range components {
		c := &components[i]
		fmt.Fprintf(out, "  %-6d %-24s fields=%d events=%d commands=%d",
			c.ComponentID, c.Identifier.QualifiedName,
			len(idx.ComponentFields(c)), len(c.EventDefinitions), len(c.CommandDefinitions))
		if src := b.SourceOf(c.Identifier.QualifiedName); src != "" {
			fmt.Fprintf(out, "  %s", src)
		}
		fmt.Fprintln(out)
	}
	return nil
}
