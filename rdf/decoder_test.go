package rdf

import (
	"io"
	"strings"
	"testing"
)

func decodeAll(t *testing.T, input string) []Quad {
	t.Helper()
	dec, err := NewDecoder(strings.NewReader(input), DefaultDecodeOptions())
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	var quads []Quad
	for {
		q, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		quads = append(quads, q)
	}
	return quads
}

func decodeErr(t *testing.T, input string) error {
	t.Helper()
	dec, err := NewDecoder(strings.NewReader(input), DefaultDecodeOptions())
	if err != nil {
		return err
	}
	for {
		_, err := dec.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func TestMinimalTypedNode(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/">` +
		`<ex:Thing rdf:about="http://e/a"/></rdf:RDF>`
	quads := decodeAll(t, input)
	if len(quads) != 1 {
		t.Fatalf("got %d quads, want 1: %v", len(quads), quads)
	}
	q := quads[0]
	if s, ok := q.S.(IRI); !ok || s.Value != "http://e/a" {
		t.Fatalf("unexpected subject %v", q.S)
	}
	if q.P.Value != rdfNS+"type" {
		t.Fatalf("unexpected predicate %v", q.P)
	}
	if o, ok := q.O.(IRI); !ok || o.Value != "http://e/Thing" {
		t.Fatalf("unexpected object %v", q.O)
	}
}

func TestPropertyLiteralWithLanguage(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/">` +
		`<rdf:Description rdf:about="http://e/a"><ex:name xml:lang="en">Ann</ex:name></rdf:Description></rdf:RDF>`
	quads := decodeAll(t, input)
	if len(quads) != 1 {
		t.Fatalf("got %d quads, want 1: %v", len(quads), quads)
	}
	lit, ok := quads[0].O.(Literal)
	if !ok {
		t.Fatalf("expected literal object, got %v", quads[0].O)
	}
	if lit.Lexical != "Ann" || lit.Lang != "en" {
		t.Fatalf("unexpected literal %+v", lit)
	}
}

func TestPropertyWithNestedNodeElementObject(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/">` +
		`<rdf:Description rdf:about="http://e/s"><ex:p><rdf:Description rdf:about="http://e/o"/></ex:p></rdf:Description></rdf:RDF>`
	quads := decodeAll(t, input)
	if len(quads) != 1 {
		t.Fatalf("got %d quads, want 1: %v", len(quads), quads)
	}
	q := quads[0]
	if s, ok := q.S.(IRI); !ok || s.Value != "http://e/s" {
		t.Fatalf("unexpected subject %v", q.S)
	}
	if q.P.Value != "http://e/p" {
		t.Fatalf("unexpected predicate %v", q.P)
	}
	if o, ok := q.O.(IRI); !ok || o.Value != "http://e/o" {
		t.Fatalf("unexpected object %v", q.O)
	}
}

func TestPropertyWithNodeIDAttribute(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/">` +
		`<rdf:Description rdf:about="http://e/s"><ex:knows rdf:nodeID="b1"/></rdf:Description></rdf:RDF>`
	quads := decodeAll(t, input)
	if len(quads) != 1 {
		t.Fatalf("got %d quads, want 1: %v", len(quads), quads)
	}
	q := quads[0]
	if s, ok := q.S.(IRI); !ok || s.Value != "http://e/s" {
		t.Fatalf("unexpected subject %v", q.S)
	}
	if q.P.Value != "http://e/knows" {
		t.Fatalf("unexpected predicate %v", q.P)
	}
	if o, ok := q.O.(BlankNode); !ok || o.ID != "b1" {
		t.Fatalf("unexpected object %v", q.O)
	}
}

func TestParseTypeCollection(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/">` +
		`<rdf:Description rdf:about="http://e/a"><ex:items rdf:parseType="Collection">` +
		`<ex:X rdf:about="http://e/x"/><ex:Y rdf:about="http://e/y"/>` +
		`</ex:items></rdf:Description></rdf:RDF>`
	quads := decodeAll(t, input)
	// 2 rdf:type quads + (subject->c1, c1->x, c1->c2, c2->y, c2->rdf:nil) = 2 + 5
	if len(quads) != 7 {
		t.Fatalf("got %d quads, want 7: %v", len(quads), quads)
	}
	var sawFirst, sawRest, sawNil int
	for _, q := range quads {
		switch q.P.Value {
		case rdfNS + "first":
			sawFirst++
		case rdfNS + "rest":
			sawRest++
			if o, ok := q.O.(IRI); ok && o.Value == rdfNS+"nil" {
				sawNil++
			}
		}
	}
	if sawFirst != 2 {
		t.Fatalf("expected 2 rdf:first links, got %d", sawFirst)
	}
	if sawRest != 2 || sawNil != 1 {
		t.Fatalf("expected a 2-element list terminated by rdf:nil, rest=%d nil=%d", sawRest, sawNil)
	}
}

func TestParseTypeLiteral(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/">` +
		`<rdf:Description rdf:about="http://e/a"><ex:body rdf:parseType="Literal"><b>hi</b></ex:body></rdf:Description></rdf:RDF>`
	quads := decodeAll(t, input)
	if len(quads) != 1 {
		t.Fatalf("got %d quads, want 1: %v", len(quads), quads)
	}
	lit, ok := quads[0].O.(Literal)
	if !ok {
		t.Fatalf("expected literal object, got %v", quads[0].O)
	}
	if lit.Datatype.Value != rdfXMLLiteral {
		t.Fatalf("expected rdf:XMLLiteral datatype, got %v", lit.Datatype)
	}
	if lit.Lexical != "<b>hi</b>" {
		t.Fatalf("unexpected XMLLiteral text %q", lit.Lexical)
	}
}

func TestReificationFanOut(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/" xml:base="http://e/">` +
		`<rdf:Description rdf:about="http://e/a"><ex:p rdf:ID="r1" rdf:resource="http://e/b"/></rdf:Description></rdf:RDF>`
	quads := decodeAll(t, input)
	if len(quads) != 5 {
		t.Fatalf("got %d quads, want 5: %v", len(quads), quads)
	}
	want := []string{rdfNS + "type", rdfNS + "subject", rdfNS + "predicate", rdfNS + "object"}
	for i, p := range want {
		if quads[i+1].P.Value != p {
			t.Fatalf("quad %d: got predicate %v, want %v", i+1, quads[i+1].P, p)
		}
		if s, ok := quads[i+1].S.(IRI); !ok || s.Value != "http://e/#r1" {
			t.Fatalf("quad %d: unexpected reification subject %v", i+1, quads[i+1].S)
		}
	}
}

func TestRdfLiRewriting(t *testing.T) {
	// rdf:li is only legal as a property element directly inside a node
	// element; the node's own listItemCounter numbers successive
	// occurrences rdf:_1, rdf:_2, ...
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">` +
		`<rdf:Bag rdf:about="http://e/b"><rdf:li>x</rdf:li><rdf:li>y</rdf:li></rdf:Bag>` +
		`</rdf:RDF>`
	quads := decodeAll(t, input)
	var sawType, one, two int
	for _, q := range quads {
		switch q.P.Value {
		case rdfNS + "type":
			if o, ok := q.O.(IRI); ok && o.Value == rdfNS+"Bag" {
				sawType++
			}
		case rdfNS + "_1":
			if lit, ok := q.O.(Literal); ok && lit.Lexical == "x" {
				one++
			}
		case rdfNS + "_2":
			if lit, ok := q.O.(Literal); ok && lit.Lexical == "y" {
				two++
			}
		}
	}
	if sawType != 1 || one != 1 || two != 1 {
		t.Fatalf("unexpected rdf:li rewriting result: %v", quads)
	}
}

func TestDuplicateRdfIDIsError(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/">` +
		`<ex:Thing rdf:ID="dup"/><ex:Thing rdf:ID="dup"/></rdf:RDF>`
	err := decodeErr(t, input)
	if err == nil {
		t.Fatal("expected duplicate rdf:ID error")
	}
	if Code(err) != ErrCodeDuplicateID {
		t.Fatalf("got code %v, want %v", Code(err), ErrCodeDuplicateID)
	}
}

func TestDuplicateRdfIDAllowed(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/">` +
		`<ex:Thing rdf:ID="dup"/><ex:Thing rdf:ID="dup"/></rdf:RDF>`
	dec, err := NewDecoder(strings.NewReader(input), DecodeOptions{AllowDuplicateRdfIDs: true})
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	var n int
	for {
		_, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error with AllowDuplicateRdfIDs: %v", err)
		}
		n++
	}
	if n != 2 {
		t.Fatalf("got %d quads, want 2", n)
	}
}

func TestBagIDIsUnsupported(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/">` +
		`<rdf:Description rdf:about="http://e/a" rdf:bagID="bag1"/></rdf:RDF>`
	err := decodeErr(t, input)
	if err == nil {
		t.Fatal("expected rdf:bagID error")
	}
	if Code(err) != ErrCodeUnsupportedFeature {
		t.Fatalf("got code %v, want %v", Code(err), ErrCodeUnsupportedFeature)
	}
}

func TestUnboundPrefixIsError(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">` +
		`<nope:Thing rdf:about="http://e/a"/></rdf:RDF>`
	err := decodeErr(t, input)
	if err == nil {
		t.Fatal("expected unbound prefix error")
	}
	if Code(err) != ErrCodeUnboundPrefix {
		t.Fatalf("got code %v, want %v", Code(err), ErrCodeUnboundPrefix)
	}
}

func TestAboutAndNodeIDConflict(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/">` +
		`<ex:Thing rdf:about="http://e/a" rdf:nodeID="b1"/></rdf:RDF>`
	err := decodeErr(t, input)
	if err == nil {
		t.Fatal("expected conflicting-attributes error")
	}
	if Code(err) != ErrCodeConflictingAttributes {
		t.Fatalf("got code %v, want %v", Code(err), ErrCodeConflictingAttributes)
	}
}

func TestBaseIRIInheritanceAndShadowing(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/" xml:base="http://outer/">` +
		`<ex:Thing rdf:about="a"><ex:inner xml:base="http://inner/"><ex:X rdf:about="b"/></ex:inner></ex:Thing></rdf:RDF>`
	quads := decodeAll(t, input)
	var sawOuter, sawInner bool
	for _, q := range quads {
		if s, ok := q.S.(IRI); ok {
			if s.Value == "http://outer/a" {
				sawOuter = true
			}
			if s.Value == "http://inner/b" {
				sawInner = true
			}
		}
	}
	if !sawOuter {
		t.Fatalf("expected a subject resolved against the outer base: %v", quads)
	}
	if !sawInner {
		t.Fatalf("expected a subject resolved against the inner (shadowing) base: %v", quads)
	}
}

func TestStreamingInvarianceAcrossChunkBoundaries(t *testing.T) {
	input := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://e/">` +
		`<ex:Thing rdf:about="http://e/a"><ex:p>value</ex:p></ex:Thing></rdf:RDF>`
	whole := decodeAll(t, input)
	for split := 1; split < len(input); split++ {
		r := io.MultiReader(strings.NewReader(input[:split]), strings.NewReader(input[split:]))
		dec, err := NewDecoder(r, DefaultDecodeOptions())
		if err != nil {
			t.Fatalf("split %d: NewDecoder: %v", split, err)
		}
		var got []Quad
		for {
			q, err := dec.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("split %d: Next: %v", split, err)
			}
			got = append(got, q)
		}
		if len(got) != len(whole) {
			t.Fatalf("split %d: got %d quads, want %d", split, len(got), len(whole))
		}
		for i := range got {
			if got[i].S.String() != whole[i].S.String() || got[i].P.Value != whole[i].P.Value || got[i].O.String() != whole[i].O.String() {
				t.Fatalf("split %d: quad %d mismatch: got %v, want %v", split, i, got[i], whole[i])
			}
		}
	}
}
