package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignCmd(t *testing.T) {
	var out bytes.Buffer
	signCmd.SetOut(&out)
	t.Cleanup(func() { signCmd.SetOut(nil); signDate = "" })

	require.NoError(t, signCmd.Flags().Set("date", "1990-04-20"))
	require.NoError(t, signCmd.RunE(signCmd, nil))

	assert.True(t, strings.HasPrefix(out.String(), "Taurus (age "), out.String())
}

func TestSignCmd_InvalidDate(t *testing.T) {
	t.Cleanup(func() { signDate = "" })

	require.NoError(t, signCmd.Flags().Set("date", "20-04-1990"))
	assert.Error(t, signCmd.RunE(signCmd, nil))
}
