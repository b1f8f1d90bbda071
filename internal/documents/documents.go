// Package documents holds the three texts an interview is prepared from.
package documents

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Name identifies a document kind.
type Name string

const (
	JobPost         Name = "job_post"
	CompanyProfile  Name = "company_profile"
	CandidateResume Name = "candidate_resume"
)

// Names lists every document the pipeline needs, in load order.
var Names = []Name{JobPost, CompanyProfile, CandidateResume}

// Document is a named piece of raw text.
type Document struct {
	Name Name
	Text string
}

// Set maps document names to their documents.
type Set map[Name]Document

// Text returns the raw text of the named document or an empty string.
func (s Set) Text(name Name) string {
	return s[name].Text
}

// FromStrings builds a Set from plain strings keyed by document name.
func FromStrings(texts map[Name]string) Set {
	set := make(Set, len(texts))
	for name, text := range texts {
		set[name] = Document{Name: name, Text: text}
	}
	return set
}

// Load reads <dir>/<name>.txt for every document name. Contents are trimmed.
func Load(dir string) (Set, error) {
	set := make(Set, len(Names))
	for _, name := range Names {
		path := filepath.Join(dir, string(name)+".txt")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		set[name] = Document{Name: name, Text: strings.TrimSpace(string(data))}
	}
	return set, nil
}
