// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for psu.
//
// Usage:
//
//	go run . [flags]
//	./psu [flags]
//
// This launches the psu CLI. See --help for options.
package main

import (
	"os"

	"github.com/psu-tools/psu/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
