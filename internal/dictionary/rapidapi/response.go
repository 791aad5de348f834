// https://rapidapi.com/dpventures/api/wordsapi
package rapidapi

import (
	"encoding/json"
	"fmt"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
)

type Response struct {
	Word          string        `json:"word"`
	Syllables     Syllable      `json:"syllables"`
	Frequency     float64       `json:"frequency"`
	Pronunciation Pronunciation `json:"pronunciation"`
	Results       []Result      `json:"results"`
}

type Syllable struct {
	Count int      `json:"count"`
	List  []string `json:"list"`
}

type Pronunciation struct {
	All string `json:"all"`
}

func (p *Pronunciation) UnmarshalJSON(data []byte) error {
	// pronunciation can be either a struct or a simple string
	if len(data) > 0 && data[0] == '{' {
		var all struct {
			All string `json:"all"`
		}
		if err := json.Unmarshal(data, &all); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		p.All = all.All
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	p.All = s
	return nil
}

type Result struct {
	Definition   string   `json:"definition"`
	Derivation   []string `json:"derivation,omitempty"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Synonyms     []string `json:"synonyms"`
	SimilarTo    []string `json:"similarTo,omitempty"`
	TypeOf       []string `json:"typeOf,omitempty"`
	Examples     []string `json:"examples"`
}

// ToWordRecord groups definitions by part of speech in the order they first appear.
func (r Response) ToWordRecord() dictionary.WordRecord {
	record := dictionary.WordRecord{
		Word:     r.Word,
		Phonetic: r.Pronunciation.All,
		Meanings: make([]dictionary.Meaning, 0),
		Examples: make([]string, 0),
	}

	indexes := make(map[string]int)
	for _, result := range r.Results {
		i, ok := indexes[result.PartOfSpeech]
		if !ok {
			i = len(record.Meanings)
			indexes[result.PartOfSpeech] = i
			record.Meanings = append(record.Meanings, dictionary.Meaning{
				PartOfSpeech: result.PartOfSpeech,
				Definitions:  make([]string, 0),
			})
		}
		record.Meanings[i].Definitions = append(record.Meanings[i].Definitions, result.Definition)
		record.Examples = append(record.Examples, result.Examples...)
	}
	return record
}
