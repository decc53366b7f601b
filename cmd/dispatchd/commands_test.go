package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutesCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"routes"})

	require.NoError(t, root.Execute())

	got := out.String()
	assert.Contains(t, got, "METHOD")
	assert.Contains(t, got, "/echo")
	assert.Contains(t, got, "query+body")
	assert.Contains(t, got, "DELETE")
	assert.Contains(t, got, "/session")
}

func TestRoutesCommandRejectsArgs(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"routes", "extra"})

	assert.Error(t, root.Execute())
}

func TestServeCommandStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := newRootCommand()
	root.SetArgs([]string{"serve", "--addr", "127.0.0.1:0"})

	assert.NoError(t, root.ExecuteContext(ctx))
}
