// Package main provides the CLI entrypoint for capability-typing.
//
// capability-typing checks capability entries against their declared types:
//   - analyze: derive declared types from generated Go packages
//   - validate: check an interface definition document
//   - check: type check a record document against its declared type
//   - convert: convert discovery entries between their shapes
//   - schema: print the JSON schema of an entry shape
//   - version: print the tool and type collection versions
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
