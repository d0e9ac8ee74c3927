package rdf

import "strings"

// rdfNS is the RDF/XML-syntax namespace.
const rdfNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
const rdfXMLLiteral = rdfNS + "XMLLiteral"

// childrenMode says which handler the next child element opens in.
type childrenMode int

const (
	modeResource childrenMode = iota
	modeProperty
)

// activeTag is one frame of the element stack (spec.md §3). Many fields
// are meaningful only in one mode; see the comment on each.
type activeTag struct {
	namespaces namespaceStack
	baseIRI    string
	language   string // "" means no xml:lang in effect

	// subject is this element's RDF subject. A property-mode frame starts
	// with its parent's subject, which is replaced by the object once
	// rdf:resource, rdf:nodeID or parseType="Resource" determines it.
	subject Term

	// predicate is non-nil for a property-mode frame, unless the frame
	// was rewritten into a resource frame by rdf:parseType="Resource".
	predicate *IRI

	childrenParseType childrenMode
	hadChildren       bool

	// text is the accumulated character content of a property element.
	// Per spec.md §9, multiple text events concatenate (the W3C-suite
	// oracle), rather than the reference implementation's overwrite.
	text    string
	hasText bool

	datatype string // "" means none

	predicateEmitted bool

	// deferred property-shorthand attributes on a property element whose
	// object subject was not yet known when they were scanned.
	deferredPredicates []IRI
	deferredObjects    []Term

	listItemCounter int

	reifiedStatementID string // "" means no rdf:ID reification target

	// XMLLiteral capture (rdf:parseType="Literal").
	capturingLiteral bool
	literalBuf       *strings.Builder
	closingTagToEmit string // set on a placeholder frame pushed for a child of a literal capture

	// rdf:parseType="Collection" rolling tail.
	inCollection        bool
	collectionSubject   Term
	collectionPredicate IRI
}

func (a *activeTag) applyLang(value string) {
	a.language = strings.ToLower(value)
}

func (a *activeTag) applyBase(resolved string) {
	a.baseIRI = resolved
}
