package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/vocabstudy/internal/assets"
	"github.com/at-ishikawa/vocabstudy/internal/bootstrap"
	"github.com/at-ishikawa/vocabstudy/internal/pdf"
)

var errInvalidWordCount = errors.New("word count must be a positive integer")

type studyOptions struct {
	category  string
	wordCount int
	output    string
	pdf       bool
	dark      bool
}

func newStudyCommand() *cobra.Command {
	var opts studyOptions
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Generate a study session",
		Long: `Generate a study session of distinct words in random order.
Without --category, words are mixed from every category.
With --output or --pdf, the session is written as a markdown study sheet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("word-count") && opts.wordCount <= 0 {
				return fmt.Errorf("%w: %d", errInvalidWordCount, opts.wordCount)
			}
			if opts.wordCount <= 0 {
				opts.wordCount = cfg.Vocabulary.DefaultWordCount
			}
			opts.wordCount = min(opts.wordCount, cfg.Vocabulary.MaxWordCount)

			vocab, err := bootstrap.NewVocabulary(cfg)
			if err != nil {
				return fmt.Errorf("bootstrap.NewVocabulary() > %w", err)
			}
			defer func() { _ = vocab.Close() }()

			records := vocab.Service.GenerateStudySession(cmd.Context(), opts.category, opts.wordCount)
			out := cmd.OutOrStdout()
			if opts.output == "" && !opts.pdf {
				newWordPrinter(out).printWords(records)
				return nil
			}

			now := time.Now()
			markdownPath := opts.output
			if markdownPath == "" {
				markdownPath = filepath.Join(cfg.Outputs.StudyDirectory, studySheetFileName(opts.category, now))
			}
			sheet := assets.StudySheet{
				Title:    "Study session",
				Category: opts.category,
				Date:     now,
				Words:    records,
			}
			if err := writeStudySheet(markdownPath, cfg.Templates.StudySessionTemplate, sheet); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "Wrote %d words to %s\n", len(records), markdownPath)

			if !opts.pdf {
				return nil
			}
			pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath, pdf.Options{Dark: opts.dark})
			if err != nil {
				return fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
			}
			_, _ = fmt.Fprintf(out, "Wrote PDF to %s\n", pdfPath)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.category, "category", "", "Category to study. Empty mixes every category")
	flags.IntVar(&opts.wordCount, "word-count", 0, "Number of words. Defaults to vocabulary.default_word_count")
	flags.StringVarP(&opts.output, "output", "o", "", "Markdown file to write the study sheet to")
	flags.BoolVar(&opts.pdf, "pdf", false, "Also convert the study sheet to PDF")
	flags.BoolVar(&opts.dark, "dark", false, "Use the dark PDF theme")
	return cmd
}

// studySheetFileName keeps only letters and digits of category so the sheet stays inside the output directory.
func studySheetFileName(category string, now time.Time) string {
	name := strings.Join(strings.FieldsFunc(category, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}), "-")
	if name == "" {
		name = "mixed"
	}
	return fmt.Sprintf("study-%s-%s.md", name, now.Format("20060102-150405"))
}

func writeStudySheet(path string, templatePath string, sheet assets.StudySheet) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("file.Close() > %w", closeErr)
		}
	}()

	if err := assets.WriteStudySheet(file, templatePath, sheet); err != nil {
		return fmt.Errorf("assets.WriteStudySheet() > %w", err)
	}
	return nil
}
