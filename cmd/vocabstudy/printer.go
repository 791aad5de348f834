package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
)

type wordPrinter struct {
	w      io.Writer
	bold   *color.Color
	italic *color.Color
	faint  *color.Color
	slang  *color.Color
}

func newWordPrinter(w io.Writer) *wordPrinter {
	return &wordPrinter{
		w:      w,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
		faint:  color.New(color.Faint),
		slang:  color.New(color.FgMagenta),
	}
}

// printWord writes one record. A positive index numbers it as part of a list.
func (p *wordPrinter) printWord(index int, record dictionary.WordRecord) {
	var heading strings.Builder
	if index > 0 {
		heading.WriteString(fmt.Sprintf("%d. ", index))
	}
	heading.WriteString(p.bold.Sprint(record.Word))
	if record.Phonetic != "" {
		heading.WriteString(" " + p.faint.Sprint(record.Phonetic))
	}
	if record.IsSlang != nil && *record.IsSlang {
		heading.WriteString(" " + p.slang.Sprint("[slang]"))
	}
	_, _ = fmt.Fprintln(p.w, heading.String())

	if record.Translation != "" {
		translation := record.Translation
		if record.Transliteration != "" {
			translation += " (" + record.Transliteration + ")"
		}
		_, _ = fmt.Fprintf(p.w, "   %s\n", translation)
	}
	for _, meaning := range record.Meanings {
		_, _ = fmt.Fprintf(p.w, "   %s\n", p.italic.Sprint(meaning.PartOfSpeech))
		for i, definition := range meaning.Definitions {
			_, _ = fmt.Fprintf(p.w, "     %d. %s\n", i+1, definition)
		}
	}
	for i, example := range record.Examples {
		_, _ = fmt.Fprintf(p.w, "   > %s\n", example)
		if i < len(record.TranslatedExamples) && record.TranslatedExamples[i] != "" {
			_, _ = fmt.Fprintf(p.w, "     %s\n", p.faint.Sprint(record.TranslatedExamples[i]))
		}
	}
	if record.UsageNotes != "" {
		_, _ = fmt.Fprintf(p.w, "   Note: %s\n", record.UsageNotes)
	}
	if record.ImageURL != "" {
		_, _ = fmt.Fprintf(p.w, "   Image: %s\n", record.ImageURL)
	}
}

func (p *wordPrinter) printWords(records []dictionary.WordRecord) {
	for i, record := range records {
		if i > 0 {
			_, _ = fmt.Fprintln(p.w)
		}
		p.printWord(i+1, record)
	}
}
