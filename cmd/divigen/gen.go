package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"divigen/internal/diagnostic"
	"divigen/internal/gen"
	"divigen/internal/plan"
	"divigen/internal/schema"
)

var (
	genSchemaPath   string
	genOutputDir    string
	genPackageName  string
	genLengthPolicy string
	genNoComments   bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate capability code from a schema file",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		policy, err := gen.ParseLengthPolicy(genLengthPolicy)
		if err != nil {
			return err
		}

		file, err := schema.Load(genSchemaPath)
		if err != nil {
			return err
		}

		logger.Debug("schema loaded",
			zap.String("path", genSchemaPath),
			zap.Int("records", len(file.Records)))

		p := plan.NewResolver(file).Resolve()
		printDiagnostics(&p.Diagnostics)

		if p.Diagnostics.HasErrors() {
			return fmt.Errorf("schema has %d error(s); generation aborted", len(p.Diagnostics.Errors))
		}

		config := gen.DefaultGeneratorConfig()
		config.OutputDir = genOutputDir
		config.PackageName = genPackageName
		config.LengthPolicy = policy
		config.GenerateComments = !genNoComments
		config.Logger = logger

		files, err := gen.NewGenerator(config).Generate(p)
		if err != nil {
			return err
		}

		if err := gen.WriteFiles(files, genOutputDir); err != nil {
			return err
		}

		for _, f := range files {
			logger.Info("generated", zap.String("file", f.Filename))
		}

		logger.Info("generation complete",
			zap.Int("records", len(p.Records)),
			zap.String("policy", policy.String()),
			zap.String("dir", genOutputDir))

		return nil
	},
}

func init() {
	genCmd.Flags().StringVarP(&genSchemaPath, "schema", "s", "divide.yaml", "schema file path")
	genCmd.Flags().StringVarP(&genOutputDir, "out", "o", "./generated", "output directory")
	genCmd.Flags().StringVar(&genPackageName, "package", "", "override generated package name")
	genCmd.Flags().StringVar(&genLengthPolicy, "length-policy", "bounded", "length aggregation policy (bounded|unbounded)")
	genCmd.Flags().BoolVar(&genNoComments, "no-comments", false, "omit per-field strategy comments")
}

// printDiagnostics renders diagnostics to stderr, colored by severity.
func printDiagnostics(diags *diagnostic.Diagnostics) {
	errC := color.New(color.FgRed, color.Bold)
	warnC := color.New(color.FgYellow)
	infoC := color.New(color.FgCyan)

	for _, d := range diags.All() {
		c := infoC

		switch d.Severity {
		case diagnostic.SeverityError:
			c = errC
		case diagnostic.SeverityWarning:
			c = warnC
		}

		_, _ = c.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d.String())
	}
}
