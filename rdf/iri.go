package rdf

import (
	"fmt"
	"net/url"
)

// ValidateIRI checks iri against the generic URI grammar (RFC 3986,
// approximated the way net/url does for RFC 3987 IRIs). It is meant to be
// called on an IRI after base resolution, so it only needs to reject
// genuinely malformed strings, not recognize relative references.
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("empty IRI")
	}
	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("invalid IRI syntax: %w", err)
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("IRI has no scheme: %s", iri)
	}
	first := parsed.Scheme[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return fmt.Errorf("scheme must start with a letter: %s", iri)
	}
	for i, r := range iri {
		if r < 0x20 {
			return fmt.Errorf("invalid control character at position %d in IRI: %s", i, iri)
		}
		if r == '<' || r == '>' || r == '"' || r == '`' {
			return fmt.Errorf("invalid character %q at position %d in IRI: %s", r, i, iri)
		}
	}
	return nil
}

// ResolveIRI resolves a relative reference against a base IRI per RFC
// 3986. An empty base with an absolute relative reference simply returns
// the reference unchanged.
func ResolveIRI(base, relative string) (string, error) {
	if relative == "" {
		if base == "" {
			return "", fmt.Errorf("cannot resolve empty IRI against empty base")
		}
		return base, nil
	}
	relURL, err := url.Parse(relative)
	if err != nil {
		return "", fmt.Errorf("invalid IRI reference %q: %w", relative, err)
	}
	if relURL.IsAbs() {
		return relative, nil
	}
	if base == "" {
		return relative, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base IRI %q: %w", base, err)
	}
	return baseURL.ResolveReference(relURL).String(), nil
}
