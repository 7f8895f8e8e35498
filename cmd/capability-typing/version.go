package main

import (
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// BuildVersion overrides the module version reported by the version command.
// It can be set at build time with
//
//	-ldflags "-X main.BuildVersion=1.2.3"
var BuildVersion = "n/a"

const (
	formatText = "text"
	formatJSON = "json"
)

type versionInfo struct {
	Version     string            `json:"version"`
	GoVersion   string            `json:"goVersion"`
	Collections map[string]string `json:"collections"`
}

func newVersionCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the tool version and the versions of the declared type collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{Version: BuildVersion, Collections: map[string]string{}}

			if bi, ok := debug.ReadBuildInfo(); ok {
				info.GoVersion = bi.GoVersion
				if BuildVersion == "n/a" {
					info.Version = bi.Main.Version
				}
			}

			reg, err := a.registry("")
			if err != nil {
				return err
			}

			for _, c := range reg.Collections() {
				info.Collections[c.Name] = c.Version.String()
			}

			out := cmd.OutOrStdout()

			switch format {
			case formatJSON:
				return json.NewEncoder(out).Encode(info)
			case formatText:
				if _, err := fmt.Fprintf(out, "capability-typing %s (%s)\n", info.Version, info.GoVersion); err != nil {
					return err
				}

				for _, c := range reg.Collections() {
					if _, err := fmt.Fprintf(out, "%s %s\n", c.Name, c.Version); err != nil {
						return err
					}
				}

				return nil
			default:
				return fmt.Errorf("unknown format %q, use %s or %s", format, formatText, formatJSON)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or json")

	return cmd
}
