package freedictionary

import (
	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
)

type Entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic"`
	Phonetics []Phonetic `json:"phonetics"`
	Meanings  []Meaning  `json:"meanings"`
}

type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

func (e Entry) phonetic() string {
	if e.Phonetic != "" {
		return e.Phonetic
	}
	for _, p := range e.Phonetics {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}

// ToWordRecord keeps every meaning and collects the examples of all definitions in order.
func (e Entry) ToWordRecord() dictionary.WordRecord {
	record := dictionary.WordRecord{
		Word:     e.Word,
		Phonetic: e.phonetic(),
		Meanings: make([]dictionary.Meaning, 0, len(e.Meanings)),
		Examples: make([]string, 0),
	}
	for _, meaning := range e.Meanings {
		definitions := make([]string, 0, len(meaning.Definitions))
		for _, d := range meaning.Definitions {
			definitions = append(definitions, d.Definition)
			if d.Example != "" {
				record.Examples = append(record.Examples, d.Example)
			}
		}
		record.Meanings = append(record.Meanings, dictionary.Meaning{
			PartOfSpeech: meaning.PartOfSpeech,
			Definitions:  definitions,
		})
	}
	return record
}
