// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for psu using Cobra.
// Running without a subcommand launches the interactive table; the
// subcommands edit the same data file non-interactively.
package cli
