// Package fields pulls declared fields out of semi-structured document text.
package fields

import (
	"regexp"
	"strings"
)

// UnknownJobTitle is returned when a job post declares no title.
const UnknownJobTitle = "Unknown Job Title"

var (
	jobTitlePattern   = regexp.MustCompile(`Job Title:[ \t]*(.*)`)
	coreValuesPattern = regexp.MustCompile(`Core Values:[ \t]*(.*)`)
)

// JobTitle returns the trimmed text following the first "Job Title:" on its
// line, which may be empty. A post without the field yields UnknownJobTitle.
func JobTitle(text string) string {
	match := jobTitlePattern.FindStringSubmatch(text)
	if match == nil {
		return UnknownJobTitle
	}
	return strings.TrimSpace(match[1])
}

// CoreValues returns the comma separated entries following the first
// "Core Values:", each trimmed, in declaration order. Blank entries are kept.
func CoreValues(text string) []string {
	values := []string{}

	match := coreValuesPattern.FindStringSubmatch(text)
	if match == nil {
		return values
	}

	for _, value := range strings.Split(match[1], ",") {
		values = append(values, strings.TrimSpace(value))
	}
	return values
}
