package cmd

import (
	"fmt"
	"sort"

	"github.com/omniwsa/omniwsa/dialect"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "omniwsa",
		Short:        "omniwsa",
		SilenceUsage: true,
		Long:         `Multi-dialect Whitespace-assembly assembler and rewriter. See spec.md.`,
	}

	dialectFlag string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&dialectFlag, "dialect", "l", string(dialect.Burghard), "source dialect ("+dialectList()+")")
	return rootCmd.Execute()
}

func dialectList() string {
	reg := dialect.NewRegistry()
	ids := reg.IDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	s := ""
	for i, id := range ids {
		if i > 0 {
			s += ", "
		}
		s += string(id)
	}
	return s
}

func resolveDialect() (*dialect.Dialect, error) {
	reg := dialect.NewRegistry()
	d, ok := reg.Lookup(dialect.ID(dialectFlag))
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (known: %s)", dialectFlag, dialectList())
	}
	return d, nil
}
