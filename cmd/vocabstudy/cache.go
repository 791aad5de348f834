package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/vocabstudy/internal/datasync"
	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
)

func newCacheCommand() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect, export and import the word cache",
	}
	cacheCmd.AddCommand(
		newCacheListCommand(),
		newCacheClearCommand(),
		newCacheExportCommand(),
		newCacheImportCommand(),
	)
	return cacheCmd
}

func openCache() (*dictionary.FileCache, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return dictionary.NewFileCache(cfg.Vocabulary.CacheFile), nil
}

func newCacheListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the cached words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := openCache()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, entry := range cache.Entries() {
				if entry.Key == entry.Record.Word {
					_, _ = fmt.Fprintln(out, entry.Key)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s (%s)\n", entry.Key, entry.Record.Word)
			}
			return nil
		},
	}
}

func newCacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := openCache()
			if err != nil {
				return err
			}
			count := cache.Len()
			if err := cache.Clear(); err != nil {
				return fmt.Errorf("cache.Clear() > %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d words\n", count)
			return nil
		},
	}
}

func newCacheExportCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the word cache as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cache, err := openCache()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("os.Create(%s) > %w", output, err)
				}
				defer func() {
					if closeErr := file.Close(); closeErr != nil && err == nil {
						err = fmt.Errorf("file.Close() > %w", closeErr)
					}
				}()
				w = file
			}

			count, err := datasync.NewExporter(cache).Export(w)
			if err != nil {
				return fmt.Errorf("export cache: %w", err)
			}
			if output != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words to %s\n", count, output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write. Defaults to standard output")
	return cmd
}

func newCacheImportCommand() *cobra.Command {
	var opts datasync.ImportOptions
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import words from a YAML export into the cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := openCache()
			if err != nil {
				return err
			}
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open(%s) > %w", args[0], err)
			}
			defer func() { _ = file.Close() }()

			out := cmd.OutOrStdout()
			result, err := datasync.NewImporter(cache, out).Import(file, opts)
			if err != nil {
				return fmt.Errorf("import cache: %w", err)
			}

			_, _ = fmt.Fprintln(out, "\nImport Summary:")
			if opts.DryRun {
				_, _ = fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			_, _ = fmt.Fprintf(out, "  Words: %d new, %d skipped, %d updated, %d invalid\n",
				result.New, result.Skipped, result.Updated, result.Invalid)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview changes without modifying the cache")
	cmd.Flags().BoolVar(&opts.UpdateExisting, "update-existing", false, "Overwrite words that are already cached")
	return cmd
}
