package rdf

import "strings"

const xmlNS = "http://www.w3.org/XML/1998/namespace"

// namespaceStack is an ordered sequence of prefix->IRI maps, outermost
// first. The empty-string key is the default (unprefixed) namespace. It
// is searched from innermost (last) to outermost (first); innermost wins.
type namespaceStack []map[string]string

// rootNamespaceStack returns the namespace stack every document starts
// with: just the built-in "xml" binding.
func rootNamespaceStack() namespaceStack {
	return namespaceStack{{"xml": xmlNS}}
}

// pushNamespaces scans an element's raw attributes for "xmlns" and
// "xmlns:prefix" declarations. If any are found it returns a new stack
// with one more frame; otherwise it returns parent unchanged (shared by
// reference, per spec.md §4.1 — children with no new declarations don't
// pay for a copy).
func pushNamespaces(parent namespaceStack, attrs []Attr) namespaceStack {
	var frame map[string]string
	for _, a := range attrs {
		switch {
		case a.Name == "xmlns":
			if frame == nil {
				frame = map[string]string{}
			}
			frame[""] = a.Value
		case strings.HasPrefix(a.Name, "xmlns:"):
			if frame == nil {
				frame = map[string]string{}
			}
			frame[a.Name[len("xmlns:"):]] = a.Value
		}
	}
	if frame == nil {
		return parent
	}
	out := make(namespaceStack, len(parent)+1)
	copy(out, parent)
	out[len(parent)] = frame
	return out
}

// expandedName is the result of resolving a qualified name against a
// namespace stack.
type expandedName struct {
	Prefix string
	Local  string
	URI    string
}

// isRDFNS reports whether e names something in the RDF/XML-syntax
// namespace.
func (e expandedName) isRDFNS() bool {
	return e.URI == rdfNS
}

// splitQName splits t on the first colon. With no colon, prefix is "".
func splitQName(t string) (prefix, local string) {
	if idx := strings.IndexByte(t, ':'); idx >= 0 {
		return t[:idx], t[idx+1:]
	}
	return "", t
}

func lookupPrefix(stack namespaceStack, prefix string) (string, bool) {
	for i := len(stack) - 1; i >= 0; i-- {
		if v, ok := stack[i][prefix]; ok {
			return v, true
		}
	}
	return "", false
}

// expandName resolves t against stack per spec.md §4.1: first frame
// (innermost to outermost) defining the prefix wins; an unbound
// non-empty prefix is a fatal error unless it is literally "xmlns",
// which (like the empty prefix) falls back to the innermost default
// binding.
func expandName(stack namespaceStack, t string) (expandedName, error) {
	prefix, local := splitQName(t)
	if prefix == "" {
		uri, _ := lookupPrefix(stack, "")
		return expandedName{Prefix: "", Local: local, URI: uri}, nil
	}
	if uri, ok := lookupPrefix(stack, prefix); ok {
		return expandedName{Prefix: prefix, Local: local, URI: uri}, nil
	}
	if prefix == "xmlns" {
		uri, _ := lookupPrefix(stack, "")
		return expandedName{Prefix: prefix, Local: local, URI: uri}, nil
	}
	return expandedName{}, errUnboundPrefix(prefix)
}
