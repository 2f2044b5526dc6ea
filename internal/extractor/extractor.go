// Package extractor turns raw recognized resume text into a partially
// populated profile fragment. Everything here is pure and deterministic:
// the same text always yields the same fragment, no I/O happens, and
// malformed input degrades to an empty fragment instead of an error.
package extractor

import (
	"log/slog"
	"regexp"
	"strings"

	"go-refolio-backend/internal/domain"
)

// personalInfoScanLines bounds how deep into the document the contact
// matchers look. Contact details live at the top of a resume.
const personalInfoScanLines = 15

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+/?`)
	websiteRe  = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s|]+`)
	locationRe = regexp.MustCompile(`\b([A-Z][A-Za-z .'-]+),\s*([A-Z]{2})\b`)

	nameTokenRe = regexp.MustCompile(`^[A-Za-z][A-Za-z.'-]*$`)
)

// nameBoilerplate rejects structural header lines that would otherwise pass
// the name shape check.
var nameBoilerplate = map[string]bool{
	"resume":     true,
	"cv":         true,
	"curriculum": true,
	"vitae":      true,
}

// Extract maps raw text to a profile fragment. It never returns an error:
// empty or unparseable input yields an all-empty fragment.
func Extract(text string) domain.ParsedResumeFragment {
	lines := prepareLines(text)
	fragment := domain.ParsedResumeFragment{}
	if len(lines) == 0 {
		return fragment
	}

	fragment.PersonalInfo = extractPersonalInfo(lines)

	segments := segment(lines)
	fragment.Experience = parseExperience(segments[sectionExperience])
	fragment.Education = parseEducation(segments[sectionEducation])
	fragment.Skills = parseSkills(segments[sectionSkills])
	fragment.Projects = parseProjects(segments[sectionProjects])

	return fragment
}

// prepareLines splits text into trimmed, non-empty lines.
func prepareLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// extractPersonalInfo scans the top of the document with independent
// matchers. The first match wins for every field; later duplicates are
// ignored. Returns nil when nothing at all was found.
func extractPersonalInfo(lines []string) *domain.PersonalInfo {
	info := domain.PersonalInfo{}

	limit := len(lines)
	if limit > personalInfoScanLines {
		limit = personalInfoScanLines
	}

	for _, line := range lines[:limit] {
		safeLine(line, func() {
			if info.Email == "" {
				if m := emailRe.FindString(line); m != "" {
					info.Email = m
				}
			}
			if info.LinkedIn == "" {
				if m := linkedinRe.FindString(line); m != "" {
					info.LinkedIn = m
				}
			}
			if info.Website == "" {
				if m := websiteRe.FindString(line); m != "" && !strings.Contains(strings.ToLower(m), "linkedin.com") {
					info.Website = m
				}
			}
			if info.Phone == "" {
				if m := phoneRe.FindString(line); m != "" {
					info.Phone = strings.TrimSpace(m)
				}
			}
			if info.Location == "" {
				if m := locationRe.FindString(line); m != "" {
					info.Location = m
				}
			}
			if info.FirstName == "" {
				if first, last, ok := parseName(line); ok {
					info.FirstName = first
					info.LastName = last
				}
			}
		})
	}

	if info == (domain.PersonalInfo{}) {
		return nil
	}
	return &info
}

// parseName accepts a line as a candidate name when it carries no contact
// artifacts, is 2-60 characters long and tokenizes into 2-4 name-shaped
// words that are not resume boilerplate.
func parseName(line string) (first, last string, ok bool) {
	if len(line) < 2 || len(line) > 60 {
		return "", "", false
	}
	if emailRe.MatchString(line) || phoneRe.MatchString(line) || websiteRe.MatchString(line) {
		return "", "", false
	}

	tokens := strings.Fields(line)
	if len(tokens) < 2 || len(tokens) > 4 {
		return "", "", false
	}
	for _, tok := range tokens {
		if !nameTokenRe.MatchString(tok) {
			return "", "", false
		}
		if nameBoilerplate[strings.ToLower(strings.Trim(tok, "."))] {
			return "", "", false
		}
	}
	return tokens[0], tokens[len(tokens)-1], true
}

// safeLine runs fn and absorbs any panic so a single malformed line never
// aborts extraction. Partial data beats a hard failure here: a human
// correction step sits downstream.
func safeLine(line string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("skipping unparseable resume line", "error", r, "line_length", len(line))
		}
	}()
	fn()
}
