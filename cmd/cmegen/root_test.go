package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/iltcme/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_Stdout(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--max-order", "5"})
	require.NoError(t, cmd.Execute())

	ps, err := params.Parse(out.Bytes())
	require.NoError(t, err)
	require.Len(t, ps, 5)
	for i, p := range ps {
		assert.Equal(t, i+1, p.N)
	}
}

func TestRoot_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--max-order", "3", "-o", path})
	require.NoError(t, cmd.Execute())

	ps, err := params.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, params.MaxOrder(ps))
}

func TestRoot_BadOrder(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--max-order", "0"})
	assert.ErrorIs(t, cmd.Execute(), params.ErrBadOrder)
}

func TestRoot_SinePowerDense(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--family", "sine-power", "--dense", "--max-order", "4"})
	require.NoError(t, cmd.Execute())

	ps, err := params.Parse(out.Bytes())
	require.NoError(t, err)
	require.Len(t, ps, 4)
	for _, p := range ps {
		for _, b := range p.B {
			assert.Zero(t, b, "sine-power records carry no sine terms")
		}
	}
}

func TestRoot_UnknownFamily(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--family", "gaussian"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown family")
}
