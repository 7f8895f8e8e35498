package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"capability-typing/typing"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		schemaPath string
		typeName   string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "check [--schema <file>] [--type <name>] <document>",
		Short: "Type check a record document",
		Long: `Decodes a YAML or JSON record document and checks every declared member
against its declared type. The type is taken from --type or from the
document's "_typeName" member. Without --schema the built-in joynr.types
collection is used. Use "-" to read the document from stdin.

By default absent members are skipped; --strict reports them.`,
		Example: `capability-typing check --type GlobalDiscoveryEntry entry.json
capability-typing check --schema types.yaml --strict record.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry(schemaPath)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			var raw any
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			record, schema, err := typing.NewDecoder(reg).DecodeDocument(raw, typeName)
			if err != nil {
				return err
			}

			checker := typing.NewChecker(
				typing.WithMaxTypedefDepth(a.cfg.Check.MaxTypedefDepth),
				typing.WithLogger(a.log),
			)

			check := checker.CheckPropertyIfDefined
			if strict || a.cfg.Check.Strict {
				check = checker.CheckProperty
			}

			if err := checker.CheckMembers(record, schema, check); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", schema.ID)

			return err
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "interface definition document declaring the types")
	cmd.Flags().StringVar(&typeName, "type", "", "declared type of the document (full, suffix or bare name)")
	cmd.Flags().BoolVar(&strict, "strict", false, "report absent members")

	return cmd
}
