package page

import (
	"html/template"
	"strings"
)

// TelURI builds a tel: link from a display phone number, keeping only its
// ASCII digits.
func TelURI(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return "tel:" + digits
}

// MailtoURI builds a mailto: link for the address as given.
func MailtoURI(email string) string {
	return "mailto:" + email
}

// telURL marks a tel: link as safe for href attributes. html/template only
// passes http, https and mailto through unchanged; TelURI output is digits
// only.
func telURL(phone string) template.URL {
	return template.URL(TelURI(phone))
}

// NormalizeBase turns a deployment base path into "/" or "/<path>/".
func NormalizeBase(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return "/"
	}
	return "/" + base + "/"
}

// ResolveAsset prefixes root-relative references with the base path.
// Absolute URLs, protocol-relative URLs, fragments and URI-scheme links are
// returned unchanged.
func ResolveAsset(base, ref string) string {
	if !strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "//") {
		return ref
	}
	return NormalizeBase(base) + strings.TrimPrefix(ref, "/")
}
