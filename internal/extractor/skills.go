package extractor

import (
	"regexp"
	"strings"

	"go-refolio-backend/internal/domain"
)

const (
	defaultSkillLevel = 3
	maxSkillNameLen   = 40
)

// skillDelimiterRe splits a skills line on common list delimiters and runs
// of two or more spaces (so multi-word skills survive).
var skillDelimiterRe = regexp.MustCompile(`[,;|•·]+|\s{2,}`)

var (
	parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)`)
	seniorityWordRe = regexp.MustCompile(`(?i)\b(expert|advanced|proficient|intermediate|basic|beginner|familiar)\b`)
)

// seniorityLevels maps seniority words to proficiency. Checked in order so
// "expert" beats "intermediate" on a line carrying both.
var seniorityLevels = []struct {
	word  string
	level int
}{
	{"expert", 5},
	{"advanced", 4},
	{"proficient", 4},
	{"intermediate", 3},
	{"basic", 2},
	{"beginner", 2},
	{"familiar", 1},
}

// skillCategories is the per-category keyword table. A token is assigned
// the first category whose keyword appears in it; everything else defaults
// to technical.
var skillCategories = []struct {
	name     string
	keywords []string
}{
	{"framework", []string{
		"react", "angular", "vue", "svelte", "next",
		"django", "flask", "rails", "laravel", "spring", "express", "gin",
	}},
	{"tool", []string{
		"docker", "kubernetes", "git", "jenkins", "terraform", "ansible",
		"jira", "figma", "photoshop", "aws", "azure", "gcp", "linux",
	}},
	{"language", []string{
		"english", "spanish", "french", "german", "mandarin", "japanese",
		"hindi", "arabic", "portuguese", "russian",
	}},
	{"technical", []string{
		"go", "python", "java", "typescript", "javascript", "sql", "html",
		"css", "ruby", "php", "swift", "kotlin", "rust", "scala", "c++", "c#",
	}},
}

// parseSkills tokenizes every line of the skills block, classifies each
// surviving token and de-duplicates case-insensitively (first occurrence
// wins).
func parseSkills(lines []string) []domain.Skill {
	var skills []domain.Skill
	seen := map[string]bool{}

	for _, line := range lines {
		safeLine(line, func() {
			for _, token := range skillDelimiterRe.Split(line, -1) {
				token = strings.TrimSpace(token)
				if len(token) < 2 || len(token) > maxSkillNameLen {
					continue
				}

				level := detectLevel(token)
				name := cleanSkillName(token)
				if name == "" {
					continue
				}

				key := strings.ToLower(name)
				if seen[key] {
					continue
				}
				seen[key] = true

				skills = append(skills, domain.Skill{
					Name:     name,
					Level:    level,
					Category: detectCategory(key),
				})
			}
		})
	}
	return skills
}

func detectLevel(token string) int {
	lowered := strings.ToLower(token)
	for _, s := range seniorityLevels {
		if strings.Contains(lowered, s.word) {
			return s.level
		}
	}
	return defaultSkillLevel
}

// cleanSkillName strips parentheticals and any seniority word so "Python
// (expert)" and "Advanced SQL" store as "Python" and "SQL".
func cleanSkillName(token string) string {
	name := parentheticalRe.ReplaceAllString(token, "")
	name = seniorityWordRe.ReplaceAllString(name, "")
	name = strings.Trim(name, " -:\t")
	return strings.TrimSpace(name)
}

func detectCategory(loweredName string) string {
	for _, cat := range skillCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(loweredName, kw) {
				return cat.name
			}
		}
	}
	return "technical"
}
