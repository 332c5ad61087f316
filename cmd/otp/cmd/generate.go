package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceParts/internal/ctxlog"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/generator"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/uuidcache"
)

var (
	generateOutput   string
	generateModels   string
	generateAuthor   string
	generateCache    string
	generateConfig   string
	generateFamilies []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate library elements",
	Long: `Generates the configured package families into a LibrePCB library
directory. Flags override the values of the optional YAML manifest.

Each element is written into its own UUID named directory. Elements that
fail to build are reported and skipped; the command exits non-zero if any
item failed.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output library directory (default \"out\")")
	generateCmd.Flags().StringVar(&generateModels, "models", "", "3D model output directory (disabled when empty)")
	generateCmd.Flags().StringVar(&generateAuthor, "author", "", "author recorded in element headers")
	generateCmd.Flags().StringVar(&generateCache, "cache", "uuid_cache.csv", "UUID cache file")
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "YAML run manifest")
	generateCmd.Flags().StringSliceVar(&generateFamilies, "family", nil, "restrict to families (qfn, dfn, soic, chip)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := ctxlog.WithLogger(cmd.Context(), log)

	cfg := &generator.RunConfig{}
	if generateConfig != "" {
		loaded, err := generator.LoadRunConfig(generateConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if generateOutput != "" {
		cfg.Output = generateOutput
	}
	if generateModels != "" {
		cfg.Models = generateModels
	}
	if generateAuthor != "" {
		cfg.Author = generateAuthor
	}
	if len(generateFamilies) > 0 {
		cfg.Families = generateFamilies
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cache, err := uuidcache.New(generateCache)
	if err != nil {
		return err
	}
	log.Debug("uuid cache loaded", "path", generateCache, "entries", cache.Len())

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if cfg.Models != "" {
		if err := os.MkdirAll(cfg.Models, 0o755); err != nil {
			return fmt.Errorf("creating model directory: %w", err)
		}
	}

	summary, err := generator.Run(ctx, cache, cfg.Output, cfg.Models, cfg.Items(cache))
	if err != nil {
		return err
	}
	log.Info("run finished",
		"generated", summary.Generated,
		"failed", summary.Failed,
		"duplicates", summary.Duplicates)
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d items failed", summary.Failed, summary.Failed+summary.Generated)
	}
	return nil
}
