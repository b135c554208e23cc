package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Name(t *testing.T) {
	tests := []struct {
		usage    string
		wantLong string
		wantName string
	}{
		{"sheetrelay", "", ""},
		{"sheetrelay version", "version", "version"},
		{"sheetrelay send [flags] <alias> <date>", "send", "send"},
		{"sheetrelay alias list [flags]", "alias list", "list"},
	}
	for _, tt := range tests {
		t.Run(tt.usage, func(t *testing.T) {
			c := &Command{UsageLine: tt.usage}
			assert.Equal(t, tt.wantLong, c.LongName())
			assert.Equal(t, tt.wantName, c.Name())
		})
	}
}

func TestSetExitStatus(t *testing.T) {
	old := exitStatus
	t.Cleanup(func() { exitStatus = old })

	exitStatus = SNoError
	SetExitStatus(SInvalidParameters)
	SetExitStatus(SGenericError)
	assert.Equal(t, SInvalidParameters, ExitStatus(), "status must not decrease")
	assert.Equal(t, "InvalidParameters", ExitStatus().String())
}
