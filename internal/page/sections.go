package page

import (
	"fmt"

	"github.com/wahhaj007/portfolio/internal/profile"
)

// Section is an anchor-addressable region of the page.
type Section struct {
	Label string
	ID    string
}

var (
	About      = Section{Label: "About", ID: "about"}
	Experience = Section{Label: "Experience", ID: "experience"}
	Projects   = Section{Label: "Projects", ID: "projects"}
	Skills     = Section{Label: "Skills", ID: "skills"}
	Education  = Section{Label: "Education", ID: "education"}
	Contact    = Section{Label: "Contact", ID: "contact"}
)

// NavSections returns the header anchors in display order.
func NavSections() []Section {
	return []Section{About, Experience, Projects, Skills, Education, Contact}
}

// Card is one rendered record of a list section.
type Card struct {
	Heading    string
	Subheading string
	Chips      []string
	Lines      []Line
	Href       string
}

// Line is a detail line of a card. Reveal lines fade in the first time they
// scroll into view, after Delay.
type Line struct {
	Text   string
	Reveal bool
	Delay  string
}

// BuildCards maps each record to a card, preserving order.
func BuildCards[T any](items []T, rule func(T) Card) []Card {
	cards := make([]Card, 0, len(items))
	for _, it := range items {
		cards = append(cards, rule(it))
	}
	return cards
}

// bulletStaggerMS is the per-line entrance delay for experience bullets.
const bulletStaggerMS = 20

func jobCard(j profile.Job) Card {
	lines := make([]Line, len(j.Bullets))
	for i, b := range j.Bullets {
		lines[i] = Line{Text: b, Reveal: true, Delay: fmt.Sprintf("%dms", i*bulletStaggerMS)}
	}
	return Card{
		Heading:    j.Role + " · " + j.Company,
		Subheading: j.Location + " • " + j.Period,
		Lines:      lines,
	}
}

func projectCard(p profile.Project) Card {
	lines := make([]Line, len(p.Detail))
	for i, d := range p.Detail {
		lines[i] = Line{Text: d}
	}
	return Card{
		Heading: p.Name,
		Chips:   append([]string(nil), p.Stack...),
		Lines:   lines,
		Href:    p.Href,
	}
}

func skillCard(c profile.SkillCategory) Card {
	return Card{
		Heading: c.Name,
		Chips:   append([]string(nil), c.Labels...),
	}
}
