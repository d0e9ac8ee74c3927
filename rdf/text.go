package rdf

// handleText processes a text event, per spec.md §4.4. Inside XMLLiteral
// capture the text is appended to the literal buffer verbatim; on a
// property-mode frame it accumulates into the frame's text field. Per
// SPEC_FULL.md's resolution of spec.md §9, multiple text events
// concatenate rather than overwrite.
func (d *Decoder) handleText(tok Token) error {
	frame := d.top()
	if frame.capturingLiteral {
		frame.literalBuf.WriteString(tok.Text)
		return nil
	}
	if frame.predicate != nil {
		frame.text += tok.Text
		frame.hasText = true
	}
	return nil
}

// openLiteralChild implements spec.md §4.5: a child of an XMLLiteral
// capture is not interpreted as RDF/XML, only re-serialized into the
// buffer, with a placeholder frame pushed so the matching close-tag can
// append the closing tag.
func (d *Decoder) openLiteralChild(tok Token, parent *activeTag) error {
	parent.literalBuf.WriteString(serializeOpenTag(tok))
	placeholder := &activeTag{
		capturingLiteral: true,
		literalBuf:       parent.literalBuf,
	}
	if !tok.SelfClosing {
		placeholder.closingTagToEmit = "</" + tok.Name + ">"
	}
	d.push(placeholder)
	return nil
}

func serializeOpenTag(tok Token) string {
	var b []byte
	b = append(b, '<')
	b = append(b, tok.Name...)
	for _, a := range tok.Attrs {
		b = append(b, ' ')
		b = append(b, a.Name...)
		b = append(b, '=', '"')
		b = append(b, escapeAttrValue(a.Value)...)
		b = append(b, '"')
	}
	if tok.SelfClosing {
		b = append(b, '/', '>')
	} else {
		b = append(b, '>')
	}
	return string(b)
}

func escapeAttrValue(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b = append(b, "&amp;"...)
		case '<':
			b = append(b, "&lt;"...)
		case '>':
			b = append(b, "&gt;"...)
		case '"':
			b = append(b, "&quot;"...)
		default:
			b = append(b, s[i])
		}
	}
	return string(b)
}
