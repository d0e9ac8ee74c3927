package rdf

import "io"

// Decoder turns a stream of RDF/XML into a stream of quads, all in the
// default graph. It implements the driver described in spec.md §4: it
// owns the element stack and node-ID registry and dispatches each
// tokenizer event to the resource-mode, property-mode, or literal-capture
// handler as appropriate.
type Decoder struct {
	tok  *Tokenizer
	opts DecodeOptions
	ids  *nodeIDRegistry

	stack []*activeTag
	queue []Quad

	err  error
	done bool
}

// NewDecoder returns a Decoder reading RDF/XML from r.
func NewDecoder(r io.Reader, opts DecodeOptions) (*Decoder, error) {
	opts = normalizeDecodeOptions(opts)
	tok, err := NewTokenizer(r, opts.TrackPosition, opts.Strict)
	if err != nil {
		return nil, err
	}
	root := &activeTag{
		namespaces:        rootNamespaceStack(),
		baseIRI:           opts.BaseIRI,
		childrenParseType: modeResource,
	}
	return &Decoder{
		tok:   tok,
		opts:  opts,
		ids:   newNodeIDRegistry(opts.AllowDuplicateRdfIDs),
		stack: []*activeTag{root},
	}, nil
}

func (d *Decoder) top() *activeTag { return d.stack[len(d.stack)-1] }

func (d *Decoder) push(frame *activeTag) { d.stack = append(d.stack, frame) }

func (d *Decoder) pop() *activeTag {
	frame := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return frame
}

func (d *Decoder) errAt(tok Token, code ErrorCode, err error) error {
	return newParseError(code, tok.Line, tok.Column, err)
}

// emit queues a quad, along with its reification fan-out (spec.md §4.8)
// when reifyID is non-empty.
func (d *Decoder) emit(s Term, p IRI, o Term, reifyID string) {
	d.queue = append(d.queue, Quad{S: s, P: p, O: o, G: d.opts.DefaultGraph})
	if reifyID == "" {
		return
	}
	r := IRI{Value: reifyID}
	d.queue = append(d.queue,
		Quad{S: r, P: IRI{Value: rdfNS + "type"}, O: IRI{Value: rdfNS + "Statement"}, G: d.opts.DefaultGraph},
		Quad{S: r, P: IRI{Value: rdfNS + "subject"}, O: s, G: d.opts.DefaultGraph},
		Quad{S: r, P: IRI{Value: rdfNS + "predicate"}, O: p, G: d.opts.DefaultGraph},
		Quad{S: r, P: IRI{Value: rdfNS + "object"}, O: o, G: d.opts.DefaultGraph},
	)
}

// Next returns the next quad, or io.EOF when the document is exhausted.
// Once Next returns a non-EOF error, every subsequent call returns the
// same error.
func (d *Decoder) Next() (Quad, error) {
	for {
		if len(d.queue) > 0 {
			q := d.queue[0]
			d.queue = d.queue[1:]
			return q, nil
		}
		if d.err != nil {
			return Quad{}, d.err
		}
		if d.done {
			return Quad{}, io.EOF
		}
		tok, err := d.tok.Next()
		if err != nil {
			if err == io.EOF {
				d.done = true
				if len(d.stack) > 1 {
					d.err = newParseError(ErrCodeSyntax, 0, 0, errUnclosedElements())
					return Quad{}, d.err
				}
				continue
			}
			d.err = err
			return Quad{}, err
		}
		if err := d.handleToken(tok); err != nil {
			d.err = err
			d.queue = nil
			return Quad{}, err
		}
	}
}

// Err returns the first error encountered, if any.
func (d *Decoder) Err() error { return d.err }

// Close releases the decoder. The decoder holds no resources beyond its
// in-memory state, so Close is a no-op provided for symmetry with other
// stream decoders.
func (d *Decoder) Close() error { return nil }

func (d *Decoder) handleToken(tok Token) error {
	switch tok.Kind {
	case TokStartElement:
		if err := d.handleOpenTag(tok); err != nil {
			return err
		}
		if tok.SelfClosing {
			return d.handleCloseTag(tok)
		}
		return nil
	case TokEndElement:
		return d.handleCloseTag(tok)
	case TokText:
		return d.handleText(tok)
	case TokDoctype:
		return d.handleDoctype(tok)
	}
	return nil
}

func (d *Decoder) handleOpenTag(tok Token) error {
	parent := d.top()
	if parent.capturingLiteral {
		return d.openLiteralChild(tok, parent)
	}
	isRoot := len(d.stack) == 1
	if parent.childrenParseType == modeResource {
		return d.handleResourceElement(tok, parent, isRoot)
	}
	return d.handlePropertyElement(tok, parent)
}
