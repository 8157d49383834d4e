package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"divigen/internal/plan"
	"divigen/internal/schema"
)

var (
	checkSchemaPath string
	checkDump       bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a schema file without generating code",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := schema.Load(checkSchemaPath)
		if err != nil {
			return err
		}

		p := plan.NewResolver(file).Resolve()
		printDiagnostics(&p.Diagnostics)

		if checkDump {
			spew.Fdump(cmd.OutOrStdout(), p.Records)
		}

		if p.Diagnostics.HasErrors() {
			return fmt.Errorf("schema has %d error(s)", len(p.Diagnostics.Errors))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d record(s) resolved\n", len(p.Records))

		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkSchemaPath, "schema", "s", "divide.yaml", "schema file path")
	checkCmd.Flags().BoolVar(&checkDump, "dump", false, "dump resolved records")
}
