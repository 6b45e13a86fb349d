// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"csvplot/internal/dataset"

	"github.com/spf13/cobra"
)

// columnCompletionFunc completes the x-column and y-column arguments from
// the header of the CSV file named by the first argument. Errors are
// ignored during completion; a missing or malformed file just yields no
// suggestions.
func columnCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		// The first argument is the CSV path; let the shell complete files.
		return nil, cobra.ShellCompDirectiveDefault
	case 1, 2:
		header, err := dataset.Header(args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return header, cobra.ShellCompDirectiveNoFileComp
	default:
		// The title argument is free text.
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}
