package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

func TestViewCmd(t *testing.T) {
	fake := &fakeWorkflow{}
	defer swapWorkflow(fake)()

	cmd := newTestRoot(newViewCmd)
	cmd.SetArgs([]string{"view", "-o", "audit-reports"})

	require.NoError(t, cmd.Execute())

	require.NotNil(t, fake.viewArgs)
	assert.Equal(t, m.Path("audit-reports"), fake.viewArgs.Reports)
}

func TestViewCmd_RejectsArgs(t *testing.T) {
	fake := &fakeWorkflow{}
	defer swapWorkflow(fake)()

	cmd := newTestRoot(newViewCmd)
	cmd.SetArgs([]string{"view", "extra"})

	assert.Error(t, cmd.Execute())
}
