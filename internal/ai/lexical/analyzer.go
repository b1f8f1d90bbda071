// Package lexical is an offline ai.Analyzer built from a gazetteer and a
// stop-word noun-phrase chunker.
package lexical

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	bleveunicode "github.com/blevesearch/bleve/analysis/tokenizer/unicode"

	"github.com/spigell/interview-agent/internal/ai"
)

const (
	providerName   = "lexical"
	maxChunkTokens = 5
	// Names this short are only matched with their exact casing ("R", "Go").
	caseSensitiveLen = 2
)

var orgPattern = regexp.MustCompile(`(?:[A-Z][A-Za-z0-9&.-]*[ \t]+){1,4}(?:Inc|Corp|Corporation|LLC|Ltd|GmbH|Labs|Technologies|Solutions|Systems|Group)\b\.?`)

type term struct {
	label   string
	pattern *regexp.Regexp
}

// Analyzer recognizes gazetteer names and organization-like phrases, and
// splits text into noun chunks at punctuation and stop words.
type Analyzer struct {
	terms     []term
	tokenizer *bleveunicode.UnicodeTokenizer
}

// New builds an Analyzer. Extra gazetteer entries are merged over the
// defaults.
func New(extra map[string][]string) *Analyzer {
	gazetteer := DefaultGazetteer()
	for label, names := range extra {
		label = strings.ToUpper(strings.TrimSpace(label))
		gazetteer[label] = append(gazetteer[label], names...)
	}

	labels := make([]string, 0, len(gazetteer))
	for label := range gazetteer {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	a := &Analyzer{tokenizer: bleveunicode.NewUnicodeTokenizer()}
	for _, label := range labels {
		for _, name := range gazetteer[label] {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			a.terms = append(a.terms, term{label: label, pattern: termPattern(name)})
		}
	}
	return a
}

func termPattern(name string) *regexp.Regexp {
	flags := "(?i)"
	if utf8.RuneCountInString(name) <= caseSensitiveLen {
		flags = ""
	}
	return regexp.MustCompile(flags + `(?:^|[^\pL\pN+#])(` + regexp.QuoteMeta(name) + `)(?:$|[^\pL\pN+#])`)
}

func (a *Analyzer) Name() string { return providerName }

// Analyze implements ai.Analyzer. It never fails.
func (a *Analyzer) Analyze(_ context.Context, text string) (*ai.Analysis, error) {
	return &ai.Analysis{
		Entities:   a.entities(text),
		NounChunks: a.nounChunks(text),
	}, nil
}

func (a *Analyzer) entities(text string) []ai.Entity {
	var entities []ai.Entity

	for _, match := range orgPattern.FindAllString(text, -1) {
		entities = append(entities, ai.Entity{Text: strings.TrimSpace(match), Label: ai.LabelOrganization})
	}

	for _, t := range a.terms {
		match := t.pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		entities = append(entities, ai.Entity{Text: match[1], Label: t.label})
	}

	return entities
}

func (a *Analyzer) nounChunks(text string) []string {
	input := []byte(text)

	var (
		chunks     []string
		start, end int
		size       int
		prevEnd    int
	)

	flush := func() {
		if size > 0 {
			chunks = append(chunks, text[start:end])
		}
		size = 0
	}

	for _, token := range a.tokenizer.Tokenize(input) {
		if size > 0 && breaksChunk(text[prevEnd:token.Start]) {
			flush()
		}
		prevEnd = token.End

		if _, stop := stopWords[strings.ToLower(string(token.Term))]; stop {
			flush()
			continue
		}

		if size == maxChunkTokens {
			flush()
		}
		if size == 0 {
			start = token.Start
		}
		end = token.End
		size++
	}
	flush()

	return chunks
}

// breaksChunk reports whether the text between two tokens ends a phrase.
func breaksChunk(gap string) bool {
	for _, r := range gap {
		if r == '\n' || r == '\r' {
			return true
		}
		if unicode.IsSpace(r) {
			continue
		}
		if r == '-' || r == '+' || r == '#' || r == '/' {
			continue
		}
		return true
	}
	return false
}
