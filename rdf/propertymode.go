package rdf

import (
	"fmt"
	"strings"
)

var forbiddenPropertyElementLocals = map[string]bool{
	"Description": true, "RDF": true, "ID": true, "about": true,
	"bagID": true, "parseType": true, "resource": true, "nodeID": true,
	"aboutEach": true, "aboutEachPrefix": true,
}

// handlePropertyElement processes an element opened in property mode, per
// spec.md §4.3.
func (d *Decoder) handlePropertyElement(tok Token, parent *activeTag) error {
	ns := pushNamespaces(parent.namespaces, tok.Attrs)
	e, err := expandName(ns, tok.Name)
	if err != nil {
		return d.errAt(tok, ErrCodeUnboundPrefix, err)
	}

	frame := &activeTag{
		namespaces:        ns,
		baseIRI:           parent.baseIRI,
		language:          parent.language,
		childrenParseType: modeResource,
		subject:           parent.subject,
	}

	if e.URI == rdfNS && e.Local == "li" {
		parent.listItemCounter++
		pred := IRI{Value: fmt.Sprintf("%s_%d", rdfNS, parent.listItemCounter)}
		frame.predicate = &pred
	} else {
		if e.URI == rdfNS && forbiddenPropertyElementLocals[e.Local] {
			return d.errAt(tok, ErrCodeForbiddenName, errForbiddenName(e.Local))
		}
		pred := IRI{Value: e.URI + e.Local}
		frame.predicate = &pred
	}

	// rdf:ID is resolved first: it fixes the reification target that the
	// parseType="Resource" branch below needs regardless of where rdf:ID
	// appears among the element's attributes.
	for _, a := range tok.Attrs {
		ae, err := expandName(ns, a.Name)
		if err != nil {
			return d.errAt(tok, ErrCodeUnboundPrefix, err)
		}
		if ae.URI == rdfNS && ae.Local == "ID" {
			if !IsNCName(a.Value) {
				return d.errAt(tok, ErrCodeInvalidNCName, errInvalidNCName(a.Value))
			}
			if err := d.ids.claim(a.Value); err != nil {
				return d.errAt(tok, ErrCodeDuplicateID, err)
			}
			resolved, err := ResolveIRI(frame.baseIRI, "#"+a.Value)
			if err != nil {
				return d.errAt(tok, ErrCodeInvalidIRI, err)
			}
			frame.reifiedStatementID = resolved
			break
		}
	}

	var (
		haveSubSubject  bool
		subSubjectValue string
		subSubjectBlank bool
		parseTypeSet    bool
		datatypeSet     bool
		attributedProp  bool
	)

	for _, a := range tok.Attrs {
		if a.Name == "xmlns" || strings.HasPrefix(a.Name, "xmlns:") {
			continue
		}
		ae, err := expandName(ns, a.Name)
		if err != nil {
			return d.errAt(tok, ErrCodeUnboundPrefix, err)
		}
		if ae.URI == xmlNS {
			switch ae.Local {
			case "lang":
				frame.applyLang(a.Value)
			case "base":
				resolved, err := ResolveIRI(frame.baseIRI, a.Value)
				if err != nil {
					return d.errAt(tok, ErrCodeInvalidIRI, err)
				}
				frame.applyBase(resolved)
			}
			continue
		}
		if ae.URI == rdfNS {
			handled := true
			switch ae.Local {
			case "ID":
				// already resolved above
			case "resource":
				if haveSubSubject || parseTypeSet {
					return d.errAt(tok, ErrCodeConflictingAttributes, errConflictingAttributes("rdf:resource conflicts with rdf:nodeID/rdf:parseType"))
				}
				resolved, err := ResolveIRI(frame.baseIRI, a.Value)
				if err != nil {
					return d.errAt(tok, ErrCodeInvalidIRI, err)
				}
				if err := ValidateIRI(resolved); err != nil {
					return d.errAt(tok, ErrCodeInvalidIRI, errInvalidIRI(resolved, err))
				}
				haveSubSubject = true
				subSubjectValue = resolved
				subSubjectBlank = false
				frame.hadChildren = true
			case "nodeID":
				if haveSubSubject || parseTypeSet || attributedProp || frame.hadChildren {
					return d.errAt(tok, ErrCodeConflictingAttributes, errConflictingAttributes("rdf:nodeID conflicts with rdf:resource/rdf:parseType"))
				}
				if !IsNCName(a.Value) {
					return d.errAt(tok, ErrCodeInvalidNCName, errInvalidNCName(a.Value))
				}
				haveSubSubject = true
				subSubjectValue = a.Value
				subSubjectBlank = true
				frame.hadChildren = true
			case "datatype":
				if parseTypeSet || attributedProp {
					return d.errAt(tok, ErrCodeConflictingAttributes, errConflictingAttributes("rdf:datatype conflicts with rdf:parseType/property-shorthand attributes"))
				}
				resolved, err := ResolveIRI(frame.baseIRI, a.Value)
				if err != nil {
					return d.errAt(tok, ErrCodeInvalidIRI, err)
				}
				frame.datatype = resolved
				datatypeSet = true
			case "parseType":
				if datatypeSet || haveSubSubject || attributedProp {
					return d.errAt(tok, ErrCodeConflictingAttributes, errConflictingAttributes("rdf:parseType conflicts with rdf:datatype/sub-subject/property-shorthand attributes"))
				}
				parseTypeSet = true
				switch a.Value {
				case "Resource":
					b := BlankNode{ID: d.opts.NewBlankNodeID()}
					d.emit(frame.subject, *frame.predicate, b, frame.reifiedStatementID)
					frame.subject = b
					frame.predicate = nil
					frame.childrenParseType = modeProperty
				case "Collection":
					frame.inCollection = true
					frame.collectionSubject = frame.subject
					frame.collectionPredicate = *frame.predicate
					frame.hadChildren = true
				case "Literal":
					frame.capturingLiteral = true
					frame.literalBuf = &strings.Builder{}
				}
			case "bagID":
				return d.errAt(tok, ErrCodeUnsupportedFeature, errUnsupportedFeature("rdf:bagID"))
			default:
				handled = false
			}
			if handled {
				continue
			}
		}
		if ae.URI == "" {
			continue
		}
		if parseTypeSet || datatypeSet {
			return d.errAt(tok, ErrCodeConflictingAttributes, errConflictingAttributes("property-shorthand attribute conflicts with rdf:parseType/rdf:datatype"))
		}
		attributedProp = true
		frame.hadChildren = true
		lit := Literal{Lexical: a.Value}
		if frame.language != "" {
			lit.Lang = frame.language
		}
		frame.deferredPredicates = append(frame.deferredPredicates, IRI{Value: ae.URI + ae.Local})
		frame.deferredObjects = append(frame.deferredObjects, lit)
	}

	if haveSubSubject {
		var resolved Term
		if subSubjectBlank {
			resolved = BlankNode{ID: subSubjectValue}
		} else {
			resolved = IRI{Value: subSubjectValue}
		}
		d.emit(parent.subject, *frame.predicate, resolved, frame.reifiedStatementID)
		frame.subject = resolved
		for i, p := range frame.deferredPredicates {
			d.emit(resolved, p, frame.deferredObjects[i], "")
		}
		frame.deferredPredicates = nil
		frame.deferredObjects = nil
		frame.predicateEmitted = true
	}

	d.push(frame)
	return nil
}
