package profile

// Profile is the resume content shown on the page. It is decoded once at
// startup and treated as read-only afterwards.
type Profile struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Location string `yaml:"location"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`

	Links   Links  `yaml:"links"`
	Summary string `yaml:"summary"`

	Skills     Skills    `yaml:"skills"`
	Experience []Job     `yaml:"experience"`
	Projects   []Project `yaml:"projects"`
	Education  Education `yaml:"education"`
}

// Links holds the outbound targets. Resume is usually a root-relative path
// to a document shipped with the site.
type Links struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Resume   string `yaml:"resume"`
}

type Job struct {
	Role     string   `yaml:"role"`
	Company  string   `yaml:"company"`
	Location string   `yaml:"location"`
	Period   string   `yaml:"period"`
	Bullets  []string `yaml:"bullets"`
}

type Project struct {
	Name   string   `yaml:"name"`
	Stack  []string `yaml:"stack"`
	Detail []string `yaml:"detail"`
	Href   string   `yaml:"href,omitempty"` // optional
}

type Education struct {
	School string `yaml:"school"`
	Degree string `yaml:"degree"`
	When   string `yaml:"when"`
	Where  string `yaml:"where"`
}

// SkillCategory is one heading of the skills section, e.g. "Languages".
type SkillCategory struct {
	Name   string
	Labels []string
}

// Skills keeps categories in the order they appear in the source document.
type Skills []SkillCategory
