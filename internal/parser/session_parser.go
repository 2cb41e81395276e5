package parser

import (
	"regexp"
	"strings"
)

// ParsedStart represents session metadata parsed from natural syntax
type ParsedStart struct {
	Project string
	Tag     string
	Note    string
}

var (
	projectRegex = regexp.MustCompile(`@([a-zA-Z0-9_-]+)`)
	tagRegex     = regexp.MustCompile(`#([a-zA-Z0-9_-]+)`)
)

// ParseStartInput extracts session metadata from a free-form descriptor.
// Syntax: "note text @project #tag". The markers are removed and whatever
// text remains becomes the note. A descriptor without any markers is
// treated as a bare project name.
func ParseStartInput(input string) ParsedStart {
	var result ParsedStart

	hasMarkers := false

	if matches := projectRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.Project = matches[1]
		input = projectRegex.ReplaceAllString(input, "")
		hasMarkers = true
	}

	if matches := tagRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.Tag = matches[1]
		input = tagRegex.ReplaceAllString(input, "")
		hasMarkers = true
	}

	// Clean up leftover text (remove extra spaces)
	leftover := strings.Join(strings.Fields(input), " ")

	if hasMarkers {
		result.Note = leftover
	} else {
		result.Project = leftover
	}

	return result
}
