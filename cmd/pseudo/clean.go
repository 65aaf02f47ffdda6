package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pseudo/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the conversion cache",
	Long:  "Remove the on-disk cache of previously converted files.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(_ *cobra.Command, _ []string) error {
	cache, err := driver.OpenDiskCache("pseudo")
	if err != nil {
		return fmt.Errorf("failed to locate cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to remove cache: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, "conversion cache removed")
	return nil
}
