package model

import (
	"encoding/json"
	"strings"
)

// EducationEntry is one structured education record.
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Dates       string `json:"dates,omitempty"`
}

// Education is either a list of structured entries or free text. Uploaded
// CV payloads carry it as a string, an object, or an array; normalization
// happens here at the JSON boundary so nothing downstream type-sniffs.
type Education struct {
	Entries  []EducationEntry
	FreeText string
}

func (e *Education) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.FreeText = s
		return nil
	}

	var one EducationEntry
	if err := json.Unmarshal(data, &one); err == nil && one != (EducationEntry{}) {
		e.Entries = []EducationEntry{one}
		return nil
	}

	var many []EducationEntry
	if err := json.Unmarshal(data, &many); err == nil {
		e.Entries = many
		return nil
	}

	var texts []string
	if err := json.Unmarshal(data, &texts); err == nil {
		e.FreeText = strings.Join(texts, "; ")
		return nil
	}

	// Unrecognized shapes degrade to empty rather than failing the request.
	*e = Education{}
	return nil
}

func (e Education) MarshalJSON() ([]byte, error) {
	if len(e.Entries) > 0 {
		return json.Marshal(e.Entries)
	}
	return json.Marshal(e.FreeText)
}

// Text flattens education into a single string for scoring and prompts.
func (e Education) Text() string {
	if len(e.Entries) == 0 {
		return e.FreeText
	}
	parts := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		fields := []string{}
		if entry.Degree != "" {
			fields = append(fields, entry.Degree)
		}
		if entry.Institution != "" {
			fields = append(fields, entry.Institution)
		}
		if entry.Dates != "" {
			fields = append(fields, entry.Dates)
		}
		parts = append(parts, strings.Join(fields, ", "))
	}
	return strings.Join(parts, "; ")
}

// IsZero reports whether no education data is present.
func (e Education) IsZero() bool {
	return len(e.Entries) == 0 && strings.TrimSpace(e.FreeText) == ""
}

// ExperienceEntry is one structured work-history record.
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Dates       string `json:"dates,omitempty"`
	Description string `json:"description,omitempty"`
}

// Experience mirrors Education: structured entries or free text.
type Experience struct {
	Entries  []ExperienceEntry
	FreeText string
}

func (e *Experience) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.FreeText = s
		return nil
	}

	var one ExperienceEntry
	if err := json.Unmarshal(data, &one); err == nil && one != (ExperienceEntry{}) {
		e.Entries = []ExperienceEntry{one}
		return nil
	}

	var many []ExperienceEntry
	if err := json.Unmarshal(data, &many); err == nil {
		e.Entries = many
		return nil
	}

	var texts []string
	if err := json.Unmarshal(data, &texts); err == nil {
		e.FreeText = strings.Join(texts, "; ")
		return nil
	}

	*e = Experience{}
	return nil
}

func (e Experience) MarshalJSON() ([]byte, error) {
	if len(e.Entries) > 0 {
		return json.Marshal(e.Entries)
	}
	return json.Marshal(e.FreeText)
}

// Text flattens experience into a single string.
func (e Experience) Text() string {
	if len(e.Entries) == 0 {
		return e.FreeText
	}
	parts := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		fields := []string{}
		if entry.Title != "" {
			fields = append(fields, entry.Title)
		}
		if entry.Company != "" {
			fields = append(fields, entry.Company)
		}
		if entry.Description != "" {
			fields = append(fields, entry.Description)
		}
		parts = append(parts, strings.Join(fields, ", "))
	}
	return strings.Join(parts, "; ")
}

// IsZero reports whether no experience data is present.
func (e Experience) IsZero() bool {
	return len(e.Entries) == 0 && strings.TrimSpace(e.FreeText) == ""
}

// CVProfile is the candidate data extracted from an uploaded CV plus the
// profile form. Every field is optional.
type CVProfile struct {
	JobRole      string     `json:"job_role,omitempty"`
	TargetJob    string     `json:"target_job,omitempty"`
	Skills       []string   `json:"skills,omitempty"`
	Experience   Experience `json:"experience,omitempty"`
	Education    Education  `json:"education,omitempty"`
	Projects     []string   `json:"projects,omitempty"`
	Achievements []string   `json:"achievements,omitempty"`
}

// Role returns the position the interview targets, preferring the CV's
// target job over the generic job role.
func (p *CVProfile) Role() string {
	if p == nil {
		return ""
	}
	if p.TargetJob != "" {
		return p.TargetJob
	}
	return p.JobRole
}

// IsZero reports whether the profile carries no usable data.
func (p *CVProfile) IsZero() bool {
	if p == nil {
		return true
	}
	return p.Role() == "" && len(p.Skills) == 0 &&
		p.Experience.IsZero() && p.Education.IsZero() &&
		len(p.Projects) == 0 && len(p.Achievements) == 0
}

// Inexperienced reports whether the candidate is known to have no work
// history. Absence of a profile means unknown, not inexperienced.
func (p *CVProfile) Inexperienced() bool {
	return p != nil && !p.IsZero() && p.Experience.IsZero()
}
