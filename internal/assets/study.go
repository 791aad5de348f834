package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"

	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
)

const studySessionTemplateName = "study-session.md.go.tmpl"

//go:embed templates/study-session.md.go.tmpl
var fallbackStudySessionTemplate string

// StudySheet is the data passed to study session templates
type StudySheet struct {
	Title    string
	Category string
	Date     time.Time
	Words    []dictionary.WordRecord
}

// WriteStudySheet renders sheet with the template at templatePath, or the embedded one when it is missing or broken.
func WriteStudySheet(output io.Writer, templatePath string, sheet StudySheet) error {
	tmpl, err := parseTemplateWithFallback(templatePath, studySessionTemplateName, fallbackStudySessionTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, sheet); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
