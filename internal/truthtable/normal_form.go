package truthtable

import "strings"

const (
	termSeparatorPDNF    = " | "
	literalSeparatorPDNF = " & "
	termSeparatorPCNF    = " & "
	literalSeparatorPCNF = " | "
)

// synthesizer accumulates the normal forms and the function vector row by row.
type synthesizer struct {
	pdnf   strings.Builder
	pcnf   strings.Builder
	vector []bool
}

func newSynthesizer(rows int) *synthesizer {
	return &synthesizer{vector: make([]bool, 0, rows)}
}

// add records the result for the current assignment. A true row contributes a
// minterm to the PDNF, a false row a maxterm to the PCNF.
func (s *synthesizer) add(letters []byte, values []bool, result bool) {
	s.vector = append(s.vector, result)

	if result {
		if s.pdnf.Len() > 0 {
			s.pdnf.WriteString(termSeparatorPDNF)
		}
		writeTerm(&s.pdnf, letters, values, literalSeparatorPDNF, false)
		return
	}

	if s.pcnf.Len() > 0 {
		s.pcnf.WriteString(termSeparatorPCNF)
	}
	writeTerm(&s.pcnf, letters, values, literalSeparatorPCNF, true)
}

// writeTerm writes one parenthesized term. A literal is negated when its
// variable's value equals negateWhen.
func writeTerm(b *strings.Builder, letters []byte, values []bool, sep string, negateWhen bool) {
	b.WriteByte('(')
	for i, letter := range letters {
		if i > 0 {
			b.WriteString(sep)
		}
		if values[i] == negateWhen {
			b.WriteByte('!')
		}
		b.WriteByte(letter)
	}
	b.WriteByte(')')
}

func (s *synthesizer) PDNF() string {
	return s.pdnf.String()
}

func (s *synthesizer) PCNF() string {
	return s.pcnf.String()
}
