package resume

// Skill levels and categories used by the builder.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"

	CategoryTechnical = "Technical"
	CategorySoft      = "Soft"
	CategoryLanguage  = "Language"
	CategoryOther     = "Other"
)

// Data is the full resume record. A record produced by the text parser has the
// same shape with only the discovered fields filled in.
type Data struct {
	PersonalInfo      PersonalInfo          `json:"personalInfo"`
	Summary           string                `json:"summary"`
	Education         []Education           `json:"education"`
	Experience        []Experience          `json:"experience"`
	Skills            []Skill               `json:"skills"`
	Projects          []Project             `json:"projects"`
	Certifications    []Certification       `json:"certifications"`
	Languages         []Language            `json:"languages"`
	Interests         []Interest            `json:"interests"`
	Awards            []Award               `json:"awards"`
	Publications      []Publication         `json:"publications"`
	Volunteer         []VolunteerExperience `json:"volunteer"`
	References        []Reference           `json:"references"`
	CustomSections    []CustomSection       `json:"customSections"`
	SectionVisibility SectionVisibility     `json:"sectionVisibility"`
	SectionOrder      []string              `json:"sectionOrder"`
}

type PersonalInfo struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	LinkedIn   string `json:"linkedin"`
	GitHub     string `json:"github"`
	Address    string `json:"address"`
	Title      string `json:"title,omitempty"`
	Website    string `json:"website,omitempty"`
	Portfolio  string `json:"portfolio,omitempty"`
	Twitter    string `json:"twitter,omitempty"`
	Photo      string `json:"photo,omitempty"`
	ShowPhoto  bool   `json:"showPhoto"`
	PhotoShape string `json:"photoShape,omitempty"`
	PhotoSize  string `json:"photoSize,omitempty"`
}

type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	GPA          string `json:"gpa,omitempty"`
	Description  string `json:"description,omitempty"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
	Link         string `json:"link,omitempty"`
}

type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Award struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

type Publication struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Date      string `json:"date"`
	Link      string `json:"link,omitempty"`
	Authors   string `json:"authors,omitempty"`
}

type VolunteerExperience struct {
	ID           string `json:"id"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

type Reference struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship"`
}

type CustomSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type SectionVisibility struct {
	Summary        bool `json:"summary"`
	Experience     bool `json:"experience"`
	Education      bool `json:"education"`
	Skills         bool `json:"skills"`
	Projects       bool `json:"projects"`
	Certifications bool `json:"certifications"`
	Languages      bool `json:"languages"`
	Interests      bool `json:"interests"`
	Awards         bool `json:"awards"`
	Publications   bool `json:"publications"`
	Volunteer      bool `json:"volunteer"`
	References     bool `json:"references"`
	CustomSections bool `json:"customSections"`
}

// New returns an empty record: every scalar is empty and every collection is a
// non-nil empty slice, so the JSON form carries [] instead of null.
func New() *Data {
	d := &Data{}
	d.normalize()
	return d
}

// normalize replaces nil collections with empty ones.
func (d *Data) normalize() {
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Languages == nil {
		d.Languages = []Language{}
	}
	if d.Interests == nil {
		d.Interests = []Interest{}
	}
	if d.Awards == nil {
		d.Awards = []Award{}
	}
	if d.Publications == nil {
		d.Publications = []Publication{}
	}
	if d.Volunteer == nil {
		d.Volunteer = []VolunteerExperience{}
	}
	if d.References == nil {
		d.References = []Reference{}
	}
	if d.CustomSections == nil {
		d.CustomSections = []CustomSection{}
	}
	if d.SectionOrder == nil {
		d.SectionOrder = []string{}
	}
}

// Normalize is the exported form of normalize for records decoded elsewhere.
func (d *Data) Normalize() *Data {
	if d == nil {
		return New()
	}
	d.normalize()
	return d
}

// FullName joins first and last name.
func (p PersonalInfo) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Counts reports collection sizes, used for logging import results.
func (d *Data) Counts() map[string]int {
	return map[string]int{
		"education":      len(d.Education),
		"experience":     len(d.Experience),
		"skills":         len(d.Skills),
		"projects":       len(d.Projects),
		"certifications": len(d.Certifications),
		"languages":      len(d.Languages),
		"interests":      len(d.Interests),
		"awards":         len(d.Awards),
		"publications":   len(d.Publications),
		"volunteer":      len(d.Volunteer),
		"references":     len(d.References),
	}
}
