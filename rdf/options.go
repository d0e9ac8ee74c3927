package rdf

// DecodeOptions configures RDF/XML decoder behavior.
// The zero value is ready to use and equals DefaultDecodeOptions; unset
// fields are filled in by NewDecoder.
type DecodeOptions struct {
	// BaseIRI is the initial base IRI. Default empty.
	BaseIRI string

	// DefaultGraph is the term placed in every emitted quad's graph slot.
	// nil (the default) means the default graph.
	DefaultGraph Term

	// Strict, if true, makes the underlying tokenizer reject undefined
	// "&name;" entity references. If false, such references pass through
	// unchanged. Malformed markup is rejected and tag-name case is
	// preserved in both modes.
	Strict bool

	// TrackPosition, if true, makes errors carry line/column information.
	TrackPosition bool

	// AllowDuplicateRdfIDs, if true, disables the uniqueness check on
	// rdf:ID values within a document.
	AllowDuplicateRdfIDs bool

	// NewBlankNodeID mints a fresh blank node identifier (without the
	// "_:" prefix) whenever the decoder needs one that was not supplied
	// by the document (an untyped rdf:Description with no rdf:about,
	// the object of a parseType="Resource" property, a Collection cons
	// cell, ...). Defaults to a monotonic counter when nil.
	NewBlankNodeID func() string
}

// DefaultDecodeOptions returns the default decoder configuration: no base
// IRI, the default graph, lenient tokenizer mode, no position tracking,
// and rdf:ID uniqueness enforced.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{}
}

func normalizeDecodeOptions(opts DecodeOptions) DecodeOptions {
	if opts.NewBlankNodeID == nil {
		gen := newBlankNodeGenerator()
		opts.NewBlankNodeID = func() string { return gen.next().ID }
	}
	return opts
}
