package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"capability-typing/internal/analyze"
	"capability-typing/internal/schemafile"
	"capability-typing/typesys"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		paths    bool
		maxDepth int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "analyze <pattern>...",
		Short: "Derive declared types from generated Go packages",
		Long: `Loads Go packages and prints the declared types of their records as an
interface definition document. With --paths, prints the member paths of
every struct instead.`,
		Example: `capability-typing analyze ./types/...
capability-typing analyze --paths ./types/testtypes`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer := analyze.NewAnalyzer(analyze.WithLogger(a.log))

			reg, err := analyzer.LoadPackages(args...)
			if err != nil {
				return err
			}

			for _, pkg := range analyzer.Packages() {
				a.log.Info().Str("package", pkg.Path).Str("collection", pkg.Collection).
					Int("types", len(pkg.Types)).Msg("analyzed package")
			}

			if paths {
				return printMemberPaths(cmd, reg.Types(), maxDepth)
			}

			doc := schemafile.Export(reg)
			if output != "" {
				return schemafile.WriteFile(doc, output)
			}

			data, err := schemafile.Marshal(doc)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().BoolVar(&paths, "paths", false, "print member paths instead of a schema document")
	cmd.Flags().IntVar(&maxDepth, "depth", 4, "maximum struct nesting for --paths")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the schema document to a file")

	return cmd
}

func printMemberPaths(cmd *cobra.Command, infos []*typesys.TypeInfo, maxDepth int) error {
	out := cmd.OutOrStdout()

	for _, t := range infos {
		if t.Kind != typesys.TypeKindStruct {
			continue
		}

		memberPaths := analyze.MemberPaths(t, maxDepth)
		for _, p := range slices.Sorted(maps.Keys(memberPaths)) {
			if _, err := fmt.Fprintf(out, "%s\t%s\n", p, memberPaths[p]); err != nil {
				return err
			}
		}
	}

	return nil
}
