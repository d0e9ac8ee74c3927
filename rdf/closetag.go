package rdf

// handleCloseTag pops the top frame and performs its close-time emission,
// per spec.md §4.6. The name on tok is informational only; the parser
// pops blindly.
func (d *Decoder) handleCloseTag(tok Token) error {
	frame := d.pop()

	if frame.capturingLiteral && frame.predicate == nil {
		// A placeholder pushed by openLiteralChild for a child of an
		// XMLLiteral capture: append its closing tag (if any) and stop.
		if frame.closingTagToEmit != "" {
			frame.literalBuf.WriteString(frame.closingTagToEmit)
		}
		return nil
	}

	if frame.capturingLiteral {
		frame.datatype = rdfXMLLiteral
		frame.text = frame.literalBuf.String()
		frame.hasText = true
		frame.hadChildren = false
	}

	if frame.inCollection {
		d.emit(frame.collectionSubject, frame.collectionPredicate, IRI{Value: rdfNS + "nil"}, frame.reifiedStatementID)
		return nil
	}

	if frame.predicate == nil {
		return nil
	}

	if !frame.hadChildren {
		lit := Literal{Lexical: frame.text}
		switch {
		case frame.datatype != "":
			lit.Datatype = IRI{Value: frame.datatype}
		case frame.language != "":
			lit.Lang = frame.language
		}
		d.emit(frame.subject, *frame.predicate, lit, frame.reifiedStatementID)
		return nil
	}

	if !frame.predicateEmitted {
		b := BlankNode{ID: d.opts.NewBlankNodeID()}
		d.emit(frame.subject, *frame.predicate, b, frame.reifiedStatementID)
		for i, p := range frame.deferredPredicates {
			d.emit(b, p, frame.deferredObjects[i], "")
		}
	}
	return nil
}
