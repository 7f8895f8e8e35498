package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"capability-typing/internal/schemafile"
)

var errInvalidDocument = errors.New("schema document has errors")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schema document>",
		Short: "Check an interface definition document",
		Long: `Checks the structure of an interface definition document against its JSON
schema, then reports unknown references, duplicates, empty enumerations and
typedef cycles. Warnings are printed but do not fail the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			if err := schemafile.CheckStructure(data); err != nil {
				return err
			}

			doc, err := schemafile.Parse(data)
			if err != nil {
				return err
			}

			diags := schemafile.Validate(doc)
			for _, d := range diags.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Severity, d); err != nil {
					return err
				}
			}

			if diags.HasErrors() {
				a.log.Debug().Strs("codes", diags.Codes()).Msg("schema document rejected")
				return fmt.Errorf("%w: %d error(s)", errInvalidDocument, len(diags.Errors))
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d collection(s)\n", len(doc.Collections))

			return err
		},
	}
}
