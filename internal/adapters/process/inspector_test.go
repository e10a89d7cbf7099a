package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workspace/internal/ports"
)

func TestParsePaneProcesses(t *testing.T) {
	output := `  PID COMMAND                     S
 4242 claude --allowedTools Bash,GlobTool,GrepTool,View,LS S
 4300 vim notes.md                R
`

	processes := parsePaneProcesses(output)

	require.Len(t, processes, 2)
	assert.Equal(t, ports.PaneProcess{
		PID:     4242,
		Command: "claude --allowedTools Bash,GlobTool,GrepTool,View,LS",
		State:   "S",
	}, processes[0])
	assert.Equal(t, ports.PaneProcess{
		PID:     4300,
		Command: "vim notes.md",
		State:   "R",
	}, processes[1])
}

func TestParsePaneProcesses_HeaderOnly(t *testing.T) {
	assert.Empty(t, parsePaneProcesses("  PID COMMAND                     S\n"))
}

func TestParsePaneProcesses_Empty(t *testing.T) {
	assert.Empty(t, parsePaneProcesses(""))
}

func TestParsePaneProcesses_MultiCharState(t *testing.T) {
	output := `  PID COMMAND                     S
 5150 sleep 30                    Ss+
`

	processes := parsePaneProcesses(output)

	require.Len(t, processes, 1)
	assert.Equal(t, "Ss+", processes[0].State)
	assert.Equal(t, "sleep 30", processes[0].Command)
}

func TestParsePaneProcesses_SkipsMalformedLines(t *testing.T) {
	output := `  PID COMMAND                     S
 not-a-pid bash                   S
 6001 bash S
 incomplete
`

	processes := parsePaneProcesses(output)

	require.Len(t, processes, 1)
	assert.Equal(t, 6001, processes[0].PID)
}
