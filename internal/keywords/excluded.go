package keywords

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"
)

// Excluded is the content of an exclusion file: keywords the interviewer
// does not want to ask about again.
type Excluded struct {
	Items []*ExcludedKeyword
}

type ExcludedKeyword struct {
	Keyword    string
	ExcludedAt time.Time
}

// ToExcluded wraps keywords as exclusion entries stamped with the current time.
func ToExcluded(keywords []string) *Excluded {
	excluded := &Excluded{}
	now := time.Now().UTC()
	for _, keyword := range keywords {
		excluded.Items = append(excluded.Items, &ExcludedKeyword{Keyword: keyword, ExcludedAt: now})
	}
	return excluded
}

// GetExcludedFromFile reads an exclusion file. A missing or empty file is an
// empty list.
func GetExcludedFromFile(path string) (*Excluded, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Excluded{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &Excluded{}, nil
	}

	var excluded Excluded
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *Excluded) Append(other *Excluded) {
	e.Items = append(e.Items, other.Items...)
}

// Keywords returns the excluded keywords in file order.
func (e *Excluded) Keywords() []string {
	keywords := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		keywords = append(keywords, item.Keyword)
	}
	return keywords
}

// Filter drops every keyword listed in the exclusion, ignoring case.
func (e *Excluded) Filter(keywords []string) (kept, removed []string) {
	skip := make(map[string]struct{}, len(e.Items))
	for _, item := range e.Items {
		skip[strings.ToLower(strings.TrimSpace(item.Keyword))] = struct{}{}
	}

	kept = make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if _, ok := skip[strings.ToLower(strings.TrimSpace(keyword))]; ok {
			removed = append(removed, keyword)
			continue
		}
		kept = append(kept, keyword)
	}
	return kept, removed
}

// ToFile overwrites path with the exclusion list.
func (e *Excluded) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
