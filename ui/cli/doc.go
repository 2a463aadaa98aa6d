// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Termfolio using Cobra.
// It loads configuration, sets up logging and i18n, and hands the assembled
// portfolio to the selected terminal backend.
package cli
