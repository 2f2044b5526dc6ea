package domain

import (
	"context"
	"time"
)

// PersonalInfo holds contact details recovered from the top of a resume.
// Every field is best-effort; empty means "not found".
type PersonalInfo struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
	Location  string `json:"location,omitempty"`
}

// TimelineEntry is the common shape of experience and education records.
// A nil EndDate means the entry is ongoing. Invariant: StartDate <= EndDate
// when EndDate is present.
type TimelineEntry struct {
	ID           string     `json:"id"`
	Title        string     `json:"title" validate:"required,max=200,no_emoji"`
	Organization string     `json:"organization" validate:"required,max=200,no_emoji"`
	Location     string     `json:"location,omitempty" validate:"max=200"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date"`
	CreatedAt    time.Time  `json:"created_at,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at,omitempty"`
}

// ExperienceEntry is one position in the work history.
type ExperienceEntry struct {
	TimelineEntry
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// EducationEntry is one degree or program in the education history.
type EducationEntry struct {
	TimelineEntry
}

// Skill is a single extracted competency. Invariant: 1 <= Level <= 5.
type Skill struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name" validate:"required,max=100"`
	Level     int       `json:"level" validate:"min=1,max=5"`
	Category  string    `json:"category"` // technical, framework, tool, language
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Project is a personal or professional project mentioned on the resume.
type Project struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ParsedResumeFragment is the loosely-typed output of the structured
// extractor. All five parts are independent and optional; extraction is
// best-effort and the fragment is expected to pass through a human
// correction step before becoming an authoritative profile.
type ParsedResumeFragment struct {
	PersonalInfo *PersonalInfo     `json:"personal_info,omitempty"`
	Experience   []ExperienceEntry `json:"experience,omitempty"`
	Education    []EducationEntry  `json:"education,omitempty"`
	Skills       []Skill           `json:"skills,omitempty"`
	Projects     []Project         `json:"projects,omitempty"`
}

// ResumeParseResult is what the pipeline hands back for one uploaded
// document: the extracted fragment plus processing metadata.
type ResumeParseResult struct {
	Fragment      ParsedResumeFragment `json:"fragment"`
	Confidence    float64              `json:"confidence"`
	Strategy      string               `json:"strategy"`
	ProcessingMS  int64                `json:"processing_ms"`
	Stages        []string             `json:"stages,omitempty"`
	ExtractedText string               `json:"extracted_text,omitempty"`
}

// ResumePipelineUsecase runs the full understanding pipeline for one
// document: validate, recognize, extract.
type ResumePipelineUsecase interface {
	ProcessResume(ctx context.Context, doc RawDocument, onProgress func(RecognitionProgress)) (*ResumeParseResult, error)
}
