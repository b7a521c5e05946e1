// Package prompt renders the LLM prompts for readings and question answers.
// Templates are embedded at build time and parsed once.
package prompt

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Siddhartha1011/AI-Astrologer/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Kind selects a prompt template.
type Kind string

const (
	KindReading  Kind = "reading"
	KindQuestion Kind = "question"
)

// registry maps each kind to its template file and the number of search
// snippets it draws context from.
var registry = map[Kind]struct {
	file       string
	maxContext int
}{
	KindReading:  {"templates/reading.tmpl", 5},
	KindQuestion: {"templates/question.tmpl", 3},
}

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// UnknownSign is rendered when no search info is available.
const UnknownSign = "Unknown"

type data struct {
	Birth    domain.BirthData
	Sign     string
	Question string
	Context  string
}

// Reading builds the full-reading prompt. info may be nil.
func Reading(birth domain.BirthData, info *domain.SearchInfo) (string, error) {
	return render(KindReading, birth, "", info)
}

// Answer builds the single-question prompt. info may be nil.
func Answer(birth domain.BirthData, question string, info *domain.SearchInfo) (string, error) {
	return render(KindQuestion, birth, question, info)
}

func render(kind Kind, birth domain.BirthData, question string, info *domain.SearchInfo) (string, error) {
	entry, ok := registry[kind]
	if !ok {
		return "", fmt.Errorf("unknown prompt kind %q", kind)
	}

	d := data{
		Birth:    birth,
		Sign:     UnknownSign,
		Question: question,
	}
	if info != nil {
		d.Sign = string(info.ZodiacSign)
		d.Context = buildContext(info.SearchResults, entry.maxContext)
	}

	var b strings.Builder
	name := strings.TrimPrefix(entry.file, "templates/")
	if err := templates.ExecuteTemplate(&b, name, d); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", kind, err)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// buildContext joins the content of the first limit snippets, one per line.
// Snippets without content are skipped but still count toward the limit.
func buildContext(snippets []domain.Snippet, limit int) string {
	if len(snippets) > limit {
		snippets = snippets[:limit]
	}
	var b strings.Builder
	for _, s := range snippets {
		if s.Content == "" {
			continue
		}
		b.WriteString(s.Content)
		b.WriteByte('\n')
	}
	return b.String()
}
