package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
)

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type categoryWordsResponse struct {
	Category string                  `json:"category"`
	Words    []dictionary.WordRecord `json:"words"`
}

type studySessionResponse struct {
	Category  string                  `json:"category,omitempty"`
	WordCount int                     `json:"word_count"`
	Words     []dictionary.WordRecord `json:"words"`
}

type wordsResponse struct {
	Words []dictionary.WordRecord `json:"words"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{Categories: s.vocabulary.Categories()})
}

func (s *Server) handleCategoryWords(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(chi.URLParam(r, "category"))
	limit, err := s.positiveIntQuery(r, "limit", s.categoryWordLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	words := s.vocabulary.GetCategoryWords(r.Context(), category, limit)
	writeJSON(w, http.StatusOK, categoryWordsResponse{
		Category: category,
		Words:    words,
	})
}

func (s *Server) handleStudySession(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	wordCount, err := s.positiveIntQuery(r, "word_count", s.defaultWordCount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	words := s.vocabulary.GenerateStudySession(r.Context(), category, wordCount)
	writeJSON(w, http.StatusOK, studySessionResponse{
		Category:  category,
		WordCount: wordCount,
		Words:     words,
	})
}

func (s *Server) handleRandomWords(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	wordCount, err := s.positiveIntQuery(r, "word_count", s.apiWordCount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	words := s.vocabulary.GenerateStudySession(r.Context(), category, wordCount)
	writeJSON(w, http.StatusOK, wordsResponse{Words: words})
}

func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	record, ok := s.vocabulary.GetWordDetails(r.Context(), word)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no details found for %q", word))
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// positiveIntQuery reads a positive integer query parameter, capped at the configured maximum
func (s *Server) positiveIntQuery(r *http.Request, name string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return min(defaultValue, s.maxWordCount), nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return min(value, s.maxWordCount), nil
}
