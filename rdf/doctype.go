package rdf

import "strings"

// handleDoctype scans a DOCTYPE declaration's internal subset for
// "<!ENTITY name "value">" (or single-quoted) declarations and registers
// each with the tokenizer, per spec.md §4.7.
func (d *Decoder) handleDoctype(tok Token) error {
	s := tok.Doctype
	for {
		idx := strings.Index(s, "<!ENTITY")
		if idx < 0 {
			return nil
		}
		s = s[idx+len("<!ENTITY"):]
		s = strings.TrimLeft(s, " \t\r\n")
		nameEnd := strings.IndexAny(s, " \t\r\n")
		if nameEnd < 0 {
			return nil
		}
		name := s[:nameEnd]
		s = strings.TrimLeft(s[nameEnd:], " \t\r\n")
		if s == "" {
			return nil
		}
		quote := s[0]
		if quote != '"' && quote != '\'' {
			continue
		}
		s = s[1:]
		end := strings.IndexByte(s, quote)
		if end < 0 {
			return nil
		}
		value := s[:end]
		s = s[end+1:]
		d.tok.RegisterEntity(name, value)
	}
}
