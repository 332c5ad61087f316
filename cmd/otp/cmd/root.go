package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "otp",
	Short: "OpenTraceParts - LibrePCB library element generator",
	Long: `OpenTraceParts (otp) generates LibrePCB library elements from parametric
package tables:
  - QFN packages from the JEDEC MO-220 tables
  - DFN packages from JEDEC MO-229F plus manufacturer specific bodies
  - SOIC packages (EIAJ and JEDEC body standards)
  - Chip resistors with matching devices

Element UUIDs are pinned in a CSV cache so regenerated libraries keep
their identities.

Examples:
  otp generate                        # Generate all families into ./out
  otp generate --family qfn           # Generate only the QFN packages
  otp generate --config run.yaml      # Generate per manifest
  otp cache stats                     # Show UUID cache statistics`,
	Version: "0.2.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
