package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/uuidcache"
)

var cacheFile string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "UUID cache operations",
	Long:  `Commands for inspecting the persistent UUID cache`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	Args:  cobra.NoArgs,
	RunE:  runCacheStats,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.PersistentFlags().StringVar(&cacheFile, "cache", "uuid_cache.csv", "UUID cache file")
	cacheCmd.AddCommand(cacheStatsCmd)
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	cache, err := uuidcache.New(cacheFile)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d entries\n", cacheFile, cache.Len())
	return nil
}
