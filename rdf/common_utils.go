package rdf

import "fmt"

// blankNodeGenerator mints unique blank node identifiers for a single
// decoder instance. It is not safe for concurrent use; each decoder owns
// its own generator.
type blankNodeGenerator struct {
	counter int
}

func newBlankNodeGenerator() *blankNodeGenerator {
	return &blankNodeGenerator{}
}

// next returns a fresh blank node with an identifier not previously
// returned by this generator.
func (g *blankNodeGenerator) next() BlankNode {
	g.counter++
	return BlankNode{ID: fmt.Sprintf("b%d", g.counter)}
}
