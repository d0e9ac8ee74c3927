// Package rdf implements a streaming RDF/XML decoder.
//
// It reads an XML document and emits RDF quads in the default graph,
// following the W3C RDF/XML Syntax Specification. The whole input is
// read into memory before the first token is produced; the input is not
// consumed chunk by chunk. The decoder never materializes the document
// as a tree: it advances on each XML event and emits quads as soon as
// they are known.
//
// Example:
//
//	dec, err := rdf.NewDecoder(r, rdf.DefaultDecodeOptions())
//	if err != nil {
//	    // handle error
//	}
//	defer dec.Close()
//
//	for {
//	    quad, err := dec.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // handle error
//	    }
//	    // process quad.S, quad.P, quad.O, quad.G
//	}
//
// Deprecated RDF/XML constructs (rdf:bagID, rdf:aboutEach,
// rdf:aboutEachPrefix) are explicit parse errors rather than silently
// ignored, per the syntax specification.
package rdf
