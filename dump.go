package automaton

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Dump Writes a in the line format read by Load: one line per state in id order, the state marked
// with a leading '>' if initial and a trailing '*' if accepting, followed by its destinations on 0
// and 1, separated by tabs.
func (a *Automaton) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for s := range a.States() {
		if s == a.Initial() {
			bw.WriteByte('>')
		}
		bw.WriteString(strconv.Itoa(s))
		if a.IsAccept(s) {
			bw.WriteByte('*')
		}
		bw.WriteByte('\t')
		bw.WriteString(strconv.Itoa(a.Step(s, 0)))
		bw.WriteByte('\t')
		bw.WriteString(strconv.Itoa(a.Step(s, 1)))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (a *Automaton) String() string {
	var sb strings.Builder
	_ = a.Dump(&sb)
	return sb.String()
}
