// Package report splits free-form generated text into named sections by
// locating a per-mode list of recognized header phrases. Matching is
// case-insensitive and tolerant of minor punctuation variants; when no
// header is found the whole text becomes a single fallback section.
package report

import (
	"regexp"
	"sort"
	"strings"
)

// Section is a named, contiguous span of report text.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// header is one recognized phrase: a compiled pattern plus the canonical
// display title it maps to.
type header struct {
	pattern *regexp.Regexp
	title   string
}

// Vocabulary is an ordered list of recognized headers for one display
// mode. Order sets precedence when two patterns match at the same offset.
type Vocabulary struct {
	headers  []header
	fallback string
}

// NewVocabulary compiles a vocabulary from (pattern, canonical title)
// pairs. Patterns are compiled case-insensitive.
func NewVocabulary(fallbackTitle string, pairs ...[2]string) Vocabulary {
	v := Vocabulary{fallback: fallbackTitle}
	for _, p := range pairs {
		v.headers = append(v.headers, header{
			pattern: regexp.MustCompile(`(?i)` + p[0]),
			title:   p[1],
		})
	}
	return v
}

// CrimeVocabulary recognizes the default crime-report headers. The frame
// header accepts both "What's" and "Who's" plus optional apostrophes, and
// the terminal punctuation tolerates "?" or ":".
var CrimeVocabulary = NewVocabulary("Report",
	[2]string{`Crime Scene:`, "Crime Scene"},
	[2]string{`(?:What|Who)'?s in the Frame[?:]`, "What's in the Frame?"},
	[2]string{`What Might Have Happened Here[?:]`, "What Might Have Happened Here"},
	[2]string{`How This Helps Solve the Crime[?:]`, "How This Helps Solve the Crime"},
	[2]string{`Verdict:`, "Verdict"},
)

// ReportCardVocabulary recognizes the nice-or-naughty assessment headers.
var ReportCardVocabulary = NewVocabulary("Assessment",
	[2]string{`Subject:`, "Subject"},
	[2]string{`Setting Evidence:`, "Setting Evidence"},
	[2]string{`Verdict Meter:`, "Verdict Meter"},
	[2]string{`Naughty Percentage:`, "Naughty Percentage"},
	[2]string{`Image Clues Santa Noted:`, "Image Clues Santa Noted"},
	[2]string{`Alleged 12-Month Rap Sheet[^:\n]*:`, "Alleged 12-Month Rap Sheet"},
	[2]string{`Nice Deeds on Record:`, "Nice Deeds on Record"},
	[2]string{`Mitigating Factors:`, "Mitigating Factors"},
	[2]string{`Santa'?s Sentence:`, "Santa's Sentence"},
)

// VocabularyFor picks the header vocabulary for a mode id.
func VocabularyFor(mode string) Vocabulary {
	if mode == "report_card" {
		return ReportCardVocabulary
	}
	return CrimeVocabulary
}

type match struct {
	start, end int
	title      string
}

// ParseSections splits text on the vocabulary's headers. Sections appear
// in input order. Zero matches yield exactly one section holding the full
// trimmed input; the result is never empty.
func ParseSections(text string, vocab Vocabulary) []Section {
	var matches []match
	for _, h := range vocab.headers {
		for _, loc := range h.pattern.FindAllStringIndex(text, -1) {
			matches = append(matches, match{start: loc[0], end: loc[1], title: h.title})
		}
	}

	if len(matches) == 0 {
		return []Section{{Title: vocab.fallback, Content: strings.TrimSpace(text)}}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	sections := make([]Section, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1].start
		}
		sections = append(sections, Section{
			Title:   m.title,
			Content: strings.TrimSpace(text[m.end:end]),
		})
	}
	return sections
}

var subtitleRe = regexp.MustCompile(`(?i)^\s*.*?\s+[–-]\s+(.+?)\s+Edition`)

// Subtitle extracts the model's invented edition title from the report's
// first line, e.g. "Crime Scene Report – Couch Potato Edition" → "Couch
// Potato". Empty when the report carries none.
func Subtitle(text string) string {
	line := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		line = text[:idx]
	}
	m := subtitleRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
