// Package page renders the portfolio page from a Profile.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/wahhaj007/portfolio/internal/profile"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// IndexTemplate is the name of the full-document template.
const IndexTemplate = "index.html"

// Options configure a Page. The zero value renders for a root deployment
// with the current year in the footer.
type Options struct {
	BasePath string
	Now      func() time.Time
}

// View is the data handed to the templates.
type View struct {
	Theme Theme
	Base  string

	Name     string
	Title    string
	Summary  string
	Location string
	Phone    string
	Email    string

	Tel    template.URL
	Mailto string

	GitHub   string
	LinkedIn string
	Resume   string

	Stylesheet string
	Script     string

	Nav      []Section
	Sections struct {
		About, Experience, Projects, Skills, Education, Contact Section
	}

	Experience []Card
	Projects   []Card
	Skills     []Card
	Education  profile.Education

	Year int
}

// Page is an immutable rendering of one Profile. It is safe for concurrent
// use.
type Page struct {
	tmpl *template.Template
	view View
}

// New builds the view model for p and parses the page templates.
func New(p profile.Profile, opts Options) (*Page, error) {
	tmpl, err := ParseTemplates()
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	base := NormalizeBase(opts.BasePath)

	v := View{
		Theme: DefaultTheme,
		Base:  base,

		Name:     p.Name,
		Title:    p.Title,
		Summary:  p.Summary,
		Location: p.Location,
		Phone:    p.Phone,
		Email:    p.Email,

		Tel:    telURL(p.Phone),
		Mailto: MailtoURI(p.Email),

		GitHub:   p.Links.GitHub,
		LinkedIn: p.Links.LinkedIn,
		Resume:   ResolveAsset(base, p.Links.Resume),

		Stylesheet: base + "static/site.css",
		Script:     base + "static/site.js",

		Nav: NavSections(),

		Experience: BuildCards(p.Experience, jobCard),
		Projects:   BuildCards(p.Projects, projectCard),
		Skills:     BuildCards(p.Skills, skillCard),
		Education:  p.Education,

		Year: now().Year(),
	}
	v.Sections.About = About
	v.Sections.Experience = Experience
	v.Sections.Projects = Projects
	v.Sections.Skills = Skills
	v.Sections.Education = Education
	v.Sections.Contact = Contact

	return &Page{tmpl: tmpl, view: v}, nil
}

// ParseTemplates parses the embedded page templates.
func ParseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// StaticFS returns the stylesheet and script served next to the page.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // embedded path is fixed
	}
	return sub
}

// View returns the template data for the given theme.
func (p *Page) View(theme Theme) View {
	v := p.view
	v.Theme = theme
	return v
}

// Template exposes the parsed templates, e.g. for gin's HTML renderer.
func (p *Page) Template() *template.Template { return p.tmpl }

// Render writes the full HTML document.
func (p *Page) Render(w io.Writer, theme Theme) error {
	return p.tmpl.ExecuteTemplate(w, IndexTemplate, p.View(theme))
}
