package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	cacheadapter "go.trai.ch/declgraph/internal/adapters/cache"
	"go.trai.ch/declgraph/internal/adapters/castxml"
	configadapter "go.trai.ch/declgraph/internal/adapters/config"
	"go.trai.ch/declgraph/internal/adapters/logger"
	scanneradapter "go.trai.ch/declgraph/internal/adapters/scanner"
	"go.trai.ch/declgraph/internal/app"
	"go.trai.ch/declgraph/internal/core/domain"
)

func (c *CLI) newReadCmd() *cobra.Command {
	var fromDump bool

	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Parse a C++ source file and print its declaration tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := configadapter.Load(configPath)
			if err != nil {
				return err
			}

			log := logger.New()
			reader := app.NewSourceReader(
				cfg,
				scanneradapter.New(),
				castxml.NewRunner(log),
				cacheadapter.NewMemory(),
				log,
			)

			var roots []*domain.Namespace
			if fromDump {
				roots, err = reader.ReadDump(cmd.Context(), args[0])
			} else {
				roots, err = reader.ReadFile(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			for _, ns := range roots {
				printDecl(c.out, ns, 0)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromDump, "dump", false, "Treat <file> as an existing dump instead of C++ source")
	return cmd
}

// printDecl writes one declaration and its members, indented by depth.
func printDecl(w io.Writer, d domain.Decl, depth int) {
	indent := strings.Repeat("  ", depth)
	switch dd := d.(type) {
	case *domain.Namespace:
		_, _ = fmt.Fprintf(w, "%snamespace %s\n", indent, dd.Name())
		for _, child := range dd.Decls {
			printDecl(w, child, depth+1)
		}
	case *domain.Class:
		_, _ = fmt.Fprintf(w, "%s%s %s%s\n", indent, dd.Variant, dd.Name(), aliasSuffix(dd))
		for _, child := range dd.Decls {
			printDecl(w, child, depth+1)
		}
	case *domain.Typedef:
		_, _ = fmt.Fprintf(w, "%stypedef %s -> %s\n", indent, dd.Name(), dd.Type)
	case *domain.Enumeration:
		_, _ = fmt.Fprintf(w, "%senum %s\n", indent, dd.Name())
	case *domain.Variable:
		_, _ = fmt.Fprintf(w, "%svariable %s: %s\n", indent, dd.Name(), dd.Type)
	case *domain.Calldef:
		_, _ = fmt.Fprintf(w, "%s%s %s\n", indent, dd.Variant, dd.Name())
	}
}

func aliasSuffix(cls *domain.Class) string {
	if len(cls.Aliases) == 0 {
		return ""
	}
	names := make([]string, len(cls.Aliases))
	for i, td := range cls.Aliases {
		names[i] = td.Name()
	}
	return " (aka " + strings.Join(names, ", ") + ")"
}
