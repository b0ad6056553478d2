package automaton

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RemoveUnreachable(evenZeros()).WriteDOT(&buf))

	want := `digraph G {
    rankdir=LR;
    q0 [shape=doublecircle];
    q1 [shape=circle];
    q0 -> q1 [label="0"];
    q0 -> q0 [label="1"];
    q1 -> q0 [label="0"];
    q1 -> q1 [label="1"];
    _start [shape=point]; _start -> q0;
}
`
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, defaultAutomata.MakeEmpty().WriteDOT(&buf))
	assert.Contains(t, buf.String(), `q0 -> q0 [label="0,1"];`)
}
