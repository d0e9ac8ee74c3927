package rdf

import "strings"

var forbiddenNodeElementLocals = map[string]bool{
	"ID": true, "about": true, "bagID": true, "parseType": true,
	"resource": true, "nodeID": true, "li": true,
	"aboutEach": true, "aboutEachPrefix": true,
}

// handleResourceElement processes an element opened in resource mode (a
// node element), per spec.md §4.2.
func (d *Decoder) handleResourceElement(tok Token, parent *activeTag, isRoot bool) error {
	ns := pushNamespaces(parent.namespaces, tok.Attrs)
	e, err := expandName(ns, tok.Name)
	if err != nil {
		return d.errAt(tok, ErrCodeUnboundPrefix, err)
	}

	frame := &activeTag{
		namespaces:        ns,
		baseIRI:           parent.baseIRI,
		language:          parent.language,
		childrenParseType: modeProperty,
	}

	typed := true
	if e.URI == rdfNS {
		switch e.Local {
		case "RDF":
			if !isRoot {
				return d.errAt(tok, ErrCodeForbiddenName, errForbiddenName("RDF"))
			}
			frame.childrenParseType = modeResource
			typed = false
		case "Description":
			typed = false
		case "bagID", "aboutEach", "aboutEachPrefix":
			return d.errAt(tok, ErrCodeUnsupportedFeature, errUnsupportedFeature("rdf:"+e.Local))
		case "li":
			return d.errAt(tok, ErrCodeUnsupportedFeature, errUnsupportedFeature("rdf:li as a node element"))
		default:
			if forbiddenNodeElementLocals[e.Local] {
				return d.errAt(tok, ErrCodeForbiddenName, errForbiddenName(e.Local))
			}
		}
	}

	var (
		subjectSet  bool
		explicitTyp string
		hasExplicit bool
	)
	var shorthandPred []IRI
	var shorthandObj []Term

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
			case "about":
				if subjectSet {
					return d.errAt(tok, ErrCodeConflictingAttributes, errConflictingAttributes("rdf:about conflicts with rdf:ID/rdf:nodeID"))
				}
				resolved, err := ResolveIRI(frame.baseIRI, a.Value)
				if err != nil {
					return d.errAt(tok, ErrCodeInvalidIRI, err)
				}
				if err := ValidateIRI(resolved); err != nil {
					return d.errAt(tok, ErrCodeInvalidIRI, errInvalidIRI(resolved, err))
				}
				frame.subject = IRI{Value: resolved}
				subjectSet = true
			case "ID":
				if subjectSet {
					return d.errAt(tok, ErrCodeConflictingAttributes, errConflictingAttributes("rdf:ID conflicts with rdf:about/rdf:nodeID"))
				}
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
				frame.subject = IRI{Value: resolved}
				subjectSet = true
			case "nodeID":
				if subjectSet {
					return d.errAt(tok, ErrCodeConflictingAttributes, errConflictingAttributes("rdf:nodeID conflicts with rdf:about/rdf:ID"))
				}
				if !IsNCName(a.Value) {
					return d.errAt(tok, ErrCodeInvalidNCName, errInvalidNCName(a.Value))
				}
				frame.subject = BlankNode{ID: a.Value}
				subjectSet = true
			case "bagID", "aboutEach", "aboutEachPrefix", "li":
				return d.errAt(tok, ErrCodeUnsupportedFeature, errUnsupportedFeature("rdf:"+ae.Local))
			case "type":
				resolved, err := ResolveIRI(frame.baseIRI, a.Value)
				if err != nil {
					return d.errAt(tok, ErrCodeInvalidIRI, err)
				}
				explicitTyp = resolved
				hasExplicit = true
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
		lit := Literal{Lexical: a.Value}
		if frame.language != "" {
			lit.Lang = frame.language
		}
		shorthandPred = append(shorthandPred, IRI{Value: ae.URI + ae.Local})
		shorthandObj = append(shorthandObj, lit)
	}

	if !subjectSet {
		frame.subject = BlankNode{ID: d.opts.NewBlankNodeID()}
	}

	if typed {
		d.emit(frame.subject, IRI{Value: rdfNS + "type"}, IRI{Value: e.URI + e.Local}, parent.reifiedStatementID)
	}

	if parent.predicate != nil {
		parent.hadChildren = true
		if parent.inCollection {
			cons := BlankNode{ID: d.opts.NewBlankNodeID()}
			d.emit(parent.collectionSubject, parent.collectionPredicate, cons, parent.reifiedStatementID)
			d.emit(cons, IRI{Value: rdfNS + "first"}, frame.subject, "")
			parent.collectionSubject = cons
			parent.collectionPredicate = IRI{Value: rdfNS + "rest"}
		} else {
			d.emit(parent.subject, *parent.predicate, frame.subject, parent.reifiedStatementID)
			for i, p := range parent.deferredPredicates {
				d.emit(frame.subject, p, parent.deferredObjects[i], "")
			}
			parent.deferredPredicates = nil
			parent.deferredObjects = nil
			parent.predicateEmitted = true
		}
	}

	for i, p := range shorthandPred {
		d.emit(frame.subject, p, shorthandObj[i], "")
	}

	if hasExplicit {
		d.emit(frame.subject, IRI{Value: rdfNS + "type"}, IRI{Value: explicitTyp}, "")
	}

	d.push(frame)
	return nil
}
