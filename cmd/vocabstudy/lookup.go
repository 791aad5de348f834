package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/vocabstudy/internal/bootstrap"
)

var errNoDetails = errors.New("no details found")

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Show the details of a word, looking it up when it is not cached",
		Args:  cobra.ExactArgs(1),
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

			record, ok := vocab.Service.GetWordDetails(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("%w for %q", errNoDetails, args[0])
			}
			newWordPrinter(cmd.OutOrStdout()).printWord(0, record)
			return nil
		},
	}
}
