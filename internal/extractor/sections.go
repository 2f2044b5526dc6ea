package extractor

import (
	"regexp"
	"strings"

	"go-refolio-backend/internal/domain"
)

type section int

const (
	sectionNone section = iota
	sectionExperience
	sectionEducation
	sectionSkills
	sectionProjects
)

// sectionOrder fixes the classification order so a line matching several
// trigger sets always resolves the same way.
var sectionOrder = []section{sectionExperience, sectionEducation, sectionSkills, sectionProjects}

// sectionTriggers is the rule table for section segmentation: a line
// containing any trigger enters that section, and any other section's
// trigger (or end of input) exits it. Heuristics live in data, not control
// flow.
var sectionTriggers = map[section][]string{
	sectionExperience: {"experience", "work history", "employment"},
	sectionEducation:  {"education", "academic background", "qualifications"},
	sectionSkills:     {"skills", "technologies", "competencies"},
	sectionProjects:   {"projects", "portfolio"},
}

// achievementVerbs flag description lines worth copying into the
// achievements list.
var achievementVerbs = []string{"achieved", "improved", "increased", "reduced"}

// bulletPrefixes mark description lines in an experience block.
var bulletPrefixes = []string{"-", "•", "*", "·"}

var (
	// Title {at|@|-|,} Organization — non-greedy head so the first separator
	// splits title from organization.
	experienceHeadRe = regexp.MustCompile(`(?i)^(.{2,80}?)(?:\s+at\s+|\s*@\s*|\s+-\s+|\s*,\s*)(.+)$`)
	// Degree {at|from|,} Organization
	educationHeadRe = regexp.MustCompile(`(?i)^(.{2,100}?)(?:\s+at\s+|\s+from\s+|\s*,\s*)(.+)$`)
)

// segment walks the lines once and buckets everything between a section
// trigger and the next trigger (or end of input) under that section.
// Trigger lines themselves are structural and not parsed.
func segment(lines []string) map[section][]string {
	segments := map[section][]string{}
	current := sectionNone
	for _, line := range lines {
		if sec, ok := classify(line); ok {
			current = sec
			continue
		}
		if current != sectionNone {
			segments[current] = append(segments[current], line)
		}
	}
	return segments
}

func classify(line string) (section, bool) {
	lowered := strings.ToLower(line)
	for _, sec := range sectionOrder {
		for _, trigger := range sectionTriggers[sec] {
			if strings.Contains(lowered, trigger) {
				return sec, true
			}
		}
	}
	return sectionNone, false
}

// parseExperience builds experience entries from the experience block.
// A line matching the entry pattern starts a new entry (flushing the
// previous one); other lines that look like bullets or description prose
// accumulate into the current entry.
func parseExperience(lines []string) []domain.ExperienceEntry {
	var entries []domain.ExperienceEntry
	var current *domain.ExperienceEntry
	var description []string

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.Join(description, "\n")
		entries = append(entries, *current)
		current = nil
		description = nil
	}

	addDescription := func(line string) {
		if current == nil {
			return
		}
		text := stripBullet(line)
		description = append(description, text)
		if containsAchievementVerb(text) {
			current.Achievements = append(current.Achievements, text)
		}
	}

	for _, line := range lines {
		safeLine(line, func() {
			// Bullets are always descriptions, never entry heads, even when
			// a comma inside one happens to fit the head pattern.
			if hasBulletPrefix(line) {
				addDescription(line)
				return
			}
			if entry, ok := parseExperienceHead(line); ok {
				flush()
				current = entry
				return
			}
			if isDescriptionLine(line) {
				addDescription(line)
			}
		})
	}
	flush()
	return entries
}

// parseExperienceHead matches `Title {at|@|-|,} Organization [| Location]
// [| DateRange]`.
func parseExperienceHead(line string) (*domain.ExperienceEntry, bool) {
	parts := splitPipeParts(line)
	m := experienceHeadRe.FindStringSubmatch(parts[0])
	if m == nil {
		return nil, false
	}

	entry := &domain.ExperienceEntry{}
	entry.Title = strings.TrimSpace(m[1])
	entry.Organization = strings.TrimSpace(m[2])
	applyTrailingParts(&entry.TimelineEntry, parts[1:])
	return entry, true
}

// parseEducation builds one entry per matching line; education blocks do
// not accumulate multi-line descriptions.
func parseEducation(lines []string) []domain.EducationEntry {
	var entries []domain.EducationEntry
	for _, line := range lines {
		safeLine(line, func() {
			parts := splitPipeParts(line)
			m := educationHeadRe.FindStringSubmatch(parts[0])
			if m == nil {
				return
			}
			entry := domain.EducationEntry{}
			entry.Title = strings.TrimSpace(m[1])
			entry.Organization = strings.TrimSpace(m[2])
			applyTrailingParts(&entry.TimelineEntry, parts[1:])
			entries = append(entries, entry)
		})
	}
	return entries
}

// parseProjects recovers a single project per section: the first short,
// punctuation-free line becomes the name, later longer lines accumulate
// into the description.
func parseProjects(lines []string) []domain.Project {
	var project *domain.Project
	var description []string

	for _, line := range lines {
		safeLine(line, func() {
			if project == nil {
				if isProjectName(line) {
					project = &domain.Project{Name: line}
				}
				return
			}
			if len(line) >= 20 {
				description = append(description, line)
			}
		})
	}

	if project == nil {
		return nil
	}
	project.Description = strings.Join(description, "\n")
	return []domain.Project{*project}
}

func isProjectName(line string) bool {
	return len(line) <= 60 && !strings.ContainsAny(line, ".,;:")
}

// splitPipeParts splits on `|` and trims; part 0 is always present.
func splitPipeParts(line string) []string {
	raw := strings.Split(line, "|")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		parts = append(parts, strings.TrimSpace(p))
	}
	return parts
}

// applyTrailingParts assigns the optional `| Location | DateRange` tail:
// a part that parses as a date range carries the dates, otherwise the
// first leftover becomes the location.
func applyTrailingParts(entry *domain.TimelineEntry, parts []string) {
	for _, part := range parts {
		if start, end, ok := parseDateRange(part); ok {
			entry.StartDate = start
			entry.EndDate = end
			continue
		}
		if entry.Location == "" && part != "" {
			entry.Location = part
		}
	}
}

func hasBulletPrefix(line string) bool {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func isDescriptionLine(line string) bool {
	return hasBulletPrefix(line) || len(line) >= 30
}

func stripBullet(line string) string {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return line
}

func containsAchievementVerb(line string) bool {
	lowered := strings.ToLower(line)
	for _, verb := range achievementVerbs {
		if strings.Contains(lowered, verb) {
			return true
		}
	}
	return false
}
