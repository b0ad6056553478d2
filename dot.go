package automaton

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDOT Writes a as a Graphviz digraph. Accept states are drawn as double circles and an
// invisible point marks the initial state. When both labels of a state lead to the same
// destination a single edge labelled "0,1" is emitted.
func (a *Automaton) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for s := range a.States() {
		shape := "circle"
		if a.IsAccept(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", s, shape)
	}
	for s := range a.States() {
		q0, q1 := a.Step(s, 0), a.Step(s, 1)
		if q0 == q1 {
			fmt.Fprintf(bw, "    q%d -> q%d [label=\"0,1\"];\n", s, q0)
			continue
		}
		fmt.Fprintf(bw, "    q%d -> q%d [label=\"0\"];\n", s, q0)
		fmt.Fprintf(bw, "    q%d -> q%d [label=\"1\"];\n", s, q1)
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", a.Initial())
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
