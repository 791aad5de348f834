package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/vocabstudy/internal/bootstrap"
)

func newCategoriesCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "categories [category]",
		Short: "List the study categories, or the words of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			vocab, err := bootstrap.NewVocabulary(cfg)
			if err != nil {
				return fmt.Errorf("bootstrap.NewVocabulary() > %w", err)
			}
			defer func() { _ = vocab.Close() }()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, category := range vocab.Service.Categories() {
					_, _ = fmt.Fprintln(out, category)
				}
				return nil
			}

			if limit <= 0 {
				limit = cfg.Vocabulary.CategoryWordLimit
			}
			records := vocab.Service.GetCategoryWords(cmd.Context(), args[0], min(limit, cfg.Vocabulary.MaxWordCount))
			newWordPrinter(out).printWords(records)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of words. Defaults to vocabulary.category_word_limit")
	return cmd
}
