package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"capability-typing/capabilities"
	"capability-typing/internal/schemafile"
)

func newSchemaCmd(_ *app) *cobra.Command {
	var document bool

	shapes := make([]string, 0, len(capabilities.Shapes()))
	for _, s := range capabilities.Shapes() {
		shapes = append(shapes, string(s))
	}

	cmd := &cobra.Command{
		Use:       "schema <" + strings.Join(shapes, "|") + ">",
		Short:     "Print the JSON schema of an entry shape",
		Long:      `Prints the JSON schema of a discovery entry shape. With --document, prints the schema of interface definition documents instead.`,
		ValidArgs: shapes,
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if document {
				_, err := cmd.OutOrStdout().Write(schemafile.JSONSchema)
				return err
			}

			if len(args) == 0 {
				return fmt.Errorf("missing entry shape, one of %s", strings.Join(shapes, ", "))
			}

			shape, err := capabilities.ParseShape(args[0])
			if err != nil {
				return err
			}

			data, err := capabilities.EntrySchema(shape)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return err
		},
	}

	cmd.Flags().BoolVar(&document, "document", false, "print the interface definition document schema")

	return cmd
}
