package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/tdata/tdata"
)

func TestCmdEncode_Objects(t *testing.T) {
	input := `{"kind":"int64","value":42}

{"kind":"str","value":"hi"}
{"kind":"vec_int64","value":[1,2,3]}
`
	var out bytes.Buffer
	require.NoError(t, cmdEncode(strings.NewReader(input), &out, ""))
	assert.Equal(t, "^i42$^shi$^I3:1:2:3$", out.String())
}

func TestCmdEncode_Kind(t *testing.T) {
	input := "[\"a:b\",\"c\"]\n[]\n"
	var out bytes.Buffer
	require.NoError(t, cmdEncode(strings.NewReader(input), &out, "vec_str"))
	assert.Equal(t, `^S2:a\:b:c$^S0$`, out.String())
}

func TestCmdEncode_Errors(t *testing.T) {
	var out bytes.Buffer
	err := cmdEncode(strings.NewReader("{\"kind\":\"int64\",\"value\":1}\nnope\n"), &out, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	err = cmdEncode(strings.NewReader("1\n"), &out, "bogus")
	assert.Error(t, err)
}

func TestCmdDecode(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cmdDecode(strings.NewReader("^i42$^shi$^I3:1:2:3$\n"), &out, 0, false))
	assert.Equal(t, "int64(42)\nstr(\"hi\")\nvec_int64[1 2 3]\n", out.String())
}

func TestCmdDecode_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cmdDecode(strings.NewReader("xx^R2:0.5:1$"), &out, 2, true))
	assert.JSONEq(t, `{"kind":"vec_real64","value":[0.5,1]}`, strings.TrimSpace(out.String()))
}

func TestCmdDecode_Failure(t *testing.T) {
	var out bytes.Buffer
	err := cmdDecode(strings.NewReader("^i1$^i2"), &out, 0, false)
	assert.ErrorIs(t, err, tdata.ErrUnterminated)
	assert.Equal(t, "int64(1)\n", out.String())
}

func TestCmdInspect(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	var out bytes.Buffer
	require.NoError(t, cmdInspect(strings.NewReader("^i42$^shi$^I3:1:2:3$"), &out, 0))
	s := out.String()
	assert.Contains(t, s, "vec_int64")
	assert.Contains(t, s, "^I3:1:2:3$")
	assert.Contains(t, s, "3 records, 20 of 20 bytes")
}

func TestRoundTripThroughCLI(t *testing.T) {
	input := `{"kind":"real64","value":0.1}
{"kind":"vec_str","value":["^1:2$","x"]}
`
	var encoded bytes.Buffer
	require.NoError(t, cmdEncode(strings.NewReader(input), &encoded, ""))

	var decoded bytes.Buffer
	require.NoError(t, cmdDecode(&encoded, &decoded, 0, true))

	lines := strings.Split(strings.TrimSpace(decoded.String()), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"kind":"real64","value":0.1}`, lines[0])
	assert.JSONEq(t, `{"kind":"vec_str","value":["^1:2$","x"]}`, lines[1])
}
