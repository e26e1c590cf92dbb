package site

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Report summarizes the structure of a rendered page.
type Report struct {
	NavTargets []string // fragment targets of the header nav, in order
	IDs        []string // every element id, in document order
	Sections   map[string]SectionReport
}

// SectionReport lists the cards found inside one <section>.
type SectionReport struct {
	Cards []CardReport
}

type CardReport struct {
	Heading string
	Chips   int
	Lines   int
}

// Inspect parses an HTML document and collects nav anchors, ids and the
// cards of each section.
func Inspect(r io.Reader) (Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Report{}, fmt.Errorf("parsing html: %w", err)
	}

	rep := Report{Sections: make(map[string]SectionReport)}
	walk(doc, &rep, false, "", nil)
	return rep, nil
}

// Dangling returns nav targets that no element id matches.
func (r Report) Dangling() []string {
	ids := make(map[string]struct{}, len(r.IDs))
	for _, id := range r.IDs {
		ids[id] = struct{}{}
	}

	var out []string
	for _, t := range r.NavTargets {
		if _, ok := ids[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}

func walk(n *html.Node, rep *Report, inNav bool, section string, card *CardReport) {
	if n.Type == html.ElementNode {
		if id := getAttr(n, "id"); id != "" {
			rep.IDs = append(rep.IDs, id)
		}

		switch {
		case n.Data == "nav":
			inNav = true
		case n.Data == "section":
			section = getAttr(n, "id")
			if _, ok := rep.Sections[section]; !ok {
				rep.Sections[section] = SectionReport{}
			}
		case n.Data == "a" && inNav:
			if href := getAttr(n, "href"); strings.HasPrefix(href, "#") {
				rep.NavTargets = append(rep.NavTargets, strings.TrimPrefix(href, "#"))
			}
		case hasAttr(n, "data-card"):
			c := &CardReport{}
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				walk(child, rep, inNav, section, c)
			}
			sr := rep.Sections[section]
			sr.Cards = append(sr.Cards, *c)
			rep.Sections[section] = sr
			return
		case card != nil && hasClass(n, "chip"):
			card.Chips++
		case card != nil && n.Data == "li" && n.Parent != nil && hasClass(n.Parent, "lines"):
			card.Lines++
		case card != nil && hasClass(n, "card-heading"):
			card.Heading = strings.TrimSpace(textContent(n))
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, rep, inNav, section, card)
	}
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return sb.String()
}
