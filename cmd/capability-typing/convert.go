package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"capability-typing/address"
	"capability-typing/capabilities"
	"capability-typing/types"
	"capability-typing/typing"
)

var errMissingAddress = errors.New("converting to a global entry requires --address or --address-string")

type convertOptions struct {
	to            string
	address       string
	addressString string
	local         bool
	dedup         bool
}

func newConvertCmd(a *app) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert --to <base|global|meta> <entries>",
		Short: "Convert discovery entries between shapes",
		Long: `Reads one discovery entry or an array of entries (YAML or JSON, any shape)
and prints them converted to the requested shape as JSON. Every printed
record carries its "_typeName".

Global entries need an address: --address takes a serialized address
object which is written in canonical form, --address-string is used as is.
Meta info entries are marked local with --local; --dedup keeps only the
first entry per participant id.`,
		Example: `capability-typing convert --to meta --local entries.json
capability-typing convert --to global --address '{"_typeName":"joynr.system.RoutingTypes.MqttAddress","brokerUri":"tcp://broker:1883","topic":"t"}' entry.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := capabilities.ParseShape(opts.to)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			entries, isList, err := parseEntries(data)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			records, err := convertEntries(shape, entries, opts)
			if err != nil {
				return err
			}

			a.log.Debug().Str("shape", string(shape)).Int("in", len(entries)).Int("out", len(records)).Msg("converted entries")

			var out any = records
			if !isList && len(records) == 1 {
				out = records[0]
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", string(capabilities.ShapeMeta), "target shape: base, global or meta")
	cmd.Flags().StringVar(&opts.address, "address", "", "serialized address for global entries")
	cmd.Flags().StringVar(&opts.addressString, "address-string", "", "address string used as is for global entries")
	cmd.Flags().BoolVar(&opts.local, "local", false, "mark meta info entries as local")
	cmd.Flags().BoolVar(&opts.dedup, "dedup", false, "keep the first meta info entry per participant id")
	cmd.MarkFlagsMutuallyExclusive("address", "address-string")

	return cmd
}

// parseEntries accepts a single entry or an array of entries. Shape specific
// members (address, isLocal) are ignored.
func parseEntries(data []byte) ([]types.DiscoveryEntry, bool, error) {
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, false, err
	}

	if trimmed := bytes.TrimSpace(j); len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []types.DiscoveryEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, true, err
		}

		return entries, true, nil
	}

	var entry types.DiscoveryEntry
	if err := json.Unmarshal(j, &entry); err != nil {
		return nil, false, err
	}

	return []types.DiscoveryEntry{entry}, false, nil
}

func convertEntries(shape capabilities.Shape, entries []types.DiscoveryEntry, opts convertOptions) ([]map[string]any, error) {
	var converted []typing.Typed

	switch shape {
	case capabilities.ShapeBase:
		for _, e := range capabilities.ToDiscoveryEntries(entries) {
			converted = append(converted, e)
		}

	case capabilities.ShapeGlobal:
		for _, e := range entries {
			global, err := toGlobal(e, opts)
			if err != nil {
				return nil, err
			}

			converted = append(converted, global)
		}

	case capabilities.ShapeMeta:
		convert := capabilities.ToDiscoveryEntryWithMetaInfoSlice[types.DiscoveryEntry]
		if opts.dedup {
			convert = capabilities.ToDiscoveryEntryWithMetaInfoSet[types.DiscoveryEntry]
		}

		for _, e := range convert(opts.local, entries) {
			converted = append(converted, e)
		}
	}

	records := make([]map[string]any, 0, len(converted))
	for _, v := range converted {
		m, err := withTypeName(v)
		if err != nil {
			return nil, err
		}

		records = append(records, m)
	}

	return records, nil
}

func toGlobal(entry types.DiscoveryEntry, opts convertOptions) (types.GlobalDiscoveryEntry, error) {
	switch {
	case opts.address != "":
		addr, err := address.Deserialize(opts.address)
		if err != nil {
			return types.GlobalDiscoveryEntry{}, err
		}

		return capabilities.ToGlobalDiscoveryEntryWithAddress(entry, addr)

	case opts.addressString != "":
		return capabilities.ToGlobalDiscoveryEntry(entry, opts.addressString), nil

	default:
		return types.GlobalDiscoveryEntry{}, errMissingAddress
	}
}

// withTypeName returns the wire form of v with its "_typeName" member.
func withTypeName(v typing.Typed) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", v.TypeName(), err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", v.TypeName(), err)
	}

	m[typing.TypeNameKey] = v.TypeName()

	return m, nil
}
