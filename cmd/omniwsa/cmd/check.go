package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/omniwsa/omniwsa/compile"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check file",
	Short: "Parse and preprocess a source file, reporting diagnostics without generating",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify argument <file>")
		}
		file := args[0]

		src, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		d, err := resolveDialect()
		if err != nil {
			return err
		}

		result := compile.Check(compile.Compilation{
			Source:   src,
			File:     file,
			Dialect:  d,
			Provider: newDirProvider(file),
		})
		for _, diagnostic := range result.Diagnostics {
			fmt.Fprintln(os.Stderr, diagnostic.String())
		}
		if result.Diagnostics.HasErrors() {
			return errors.New("check found errors")
		}
		fmt.Fprintln(os.Stdout, "ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
