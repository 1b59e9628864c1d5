package resume

// Section identifiers that make up Document.SectionOrder.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionPortfolio  = "portfolio"
)

// Skills display modes.
const (
	SkillsModeList = "list"
	SkillsModeGrid = "grid"
)

// PersonalInfo holds the header fields of the document. All values are
// free text; PhotoURL is nil until a photo is set.
type PersonalInfo struct {
	FullName string  `json:"fullName"`
	Title    string  `json:"title"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	Website  string  `json:"website"`
	Address  string  `json:"address"`
	PhotoURL *string `json:"photoUrl"`
}

// Experience is one work history entry. Entries are kept most-recent-first.
type Experience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Skill is a named proficiency with a 0-100 level.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Portfolio is the free-form portfolio section.
type Portfolio struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Layout holds presentation preferences stored alongside content.
type Layout struct {
	SectionGap int    `json:"sectionGap"`
	SkillsMode string `json:"skillsMode"`
}

// Document is the root aggregate owned by the Store. Every mutation
// replaces it wholesale; a Document handed out of the store is never
// mutated in place afterwards.
type Document struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	Interests    []string     `json:"interests"`
	Portfolio    Portfolio    `json:"portfolio"`
	SectionOrder []string     `json:"sectionOrder"`
	ActiveItemID *string      `json:"activeItemId"`
	Layout       Layout       `json:"layout"`
}

// Clone returns a deep copy. Entry structs contain only scalar fields, so
// copying the slices is enough; pointer fields are re-allocated.
func (d Document) Clone() Document {
	out := d
	out.Experience = append([]Experience(nil), d.Experience...)
	out.Education = append([]Education(nil), d.Education...)
	out.Skills = append([]Skill(nil), d.Skills...)
	out.Interests = append([]string(nil), d.Interests...)
	out.SectionOrder = append([]string(nil), d.SectionOrder...)
	out.PersonalInfo.PhotoURL = cloneStringPtr(d.PersonalInfo.PhotoURL)
	out.ActiveItemID = cloneStringPtr(d.ActiveItemID)
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// hasItem reports whether id names an entry in any of the three entity
// collections or one of the known sections.
func (d Document) hasItem(id string) bool {
	switch id {
	case SectionSummary, SectionExperience, SectionEducation, SectionPortfolio:
		return true
	}
	for _, exp := range d.Experience {
		if exp.ID == id {
			return true
		}
	}
	for _, edu := range d.Education {
		if edu.ID == id {
			return true
		}
	}
	for _, skill := range d.Skills {
		if skill.ID == id {
			return true
		}
	}
	return false
}
