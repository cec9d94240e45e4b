package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/omniwsa/omniwsa/compile"
	"github.com/omniwsa/omniwsa/wstoken"
	"github.com/spf13/cobra"
)

var (
	outFile string

	compileCmd = &cobra.Command{
		Use:   "compile file",
		Short: "Assemble a Whitespace-assembly source file to a Whitespace program",
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

			result := compile.Compile(compile.Compilation{
				Source:   src,
				File:     file,
				Dialect:  d,
				Provider: newDirProvider(file),
			})
			for _, diagnostic := range result.Diagnostics {
				fmt.Fprintln(os.Stderr, diagnostic.String())
			}
			if result.Diagnostics.HasErrors() {
				return errors.New("compilation failed")
			}

			out := os.Stdout
			if outFile != "" && outFile != "-" {
				f, err := os.Create(outFile)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			_, err = out.Write(wstoken.DefaultEncoder{}.Encode(result.Tokens))
			return err
		},
	}
)

func init() {
	compileCmd.Flags().StringVarP(&outFile, "out", "o", "-", "output file (\"-\" for stdout)")
	rootCmd.AddCommand(compileCmd)
}
