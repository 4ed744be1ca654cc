package console

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/rocket-sim/internal/i18n"
	"github.com/guttosm/rocket-sim/internal/service"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out, i18n.NewTranslator(), "en"), &out
}

func TestPrompter_AskString(t *testing.T) {
	p, out := newTestPrompter("  Done  \n")

	answer, err := p.AskString(i18n.KeyPromptTax)

	require.NoError(t, err)
	assert.Equal(t, "Done", answer)
	assert.Equal(t, "Would you like to factor in tax? 1 for yes, 0 for no: ", out.String())
}

func TestPrompter_AskString_EOF(t *testing.T) {
	p, _ := newTestPrompter("")

	_, err := p.AskString(i18n.KeyPromptTax)

	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_AskFloat(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  float64
		malformed bool
	}{
		{name: "integer", input: "55\n", expected: 55},
		{name: "decimal", input: "0.79\n", expected: 0.79},
		{name: "negative", input: "-3.5\n", expected: -3.5},
		{name: "exponent", input: "1e3\n", expected: 1000},
		{name: "word", input: "ten\n", malformed: true},
		{name: "empty line", input: "\n", malformed: true},
		{name: "infinity", input: "inf\n", malformed: true},
		{name: "not a number", input: "NaN\n", malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)

			v, err := p.AskFloat(i18n.KeyPromptRadius)

			if tt.malformed {
				assert.ErrorIs(t, err, service.ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestPrompter_AskInt(t *testing.T) {
	p, _ := newTestPrompter("10\n2.5\n")

	n, err := p.AskInt(i18n.KeyPromptSimulationTime)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	_, err = p.AskInt(i18n.KeyPromptSimulationInterval)
	assert.ErrorIs(t, err, service.ErrMalformedInput)
}

func TestPrompter_Say(t *testing.T) {
	p, out := newTestPrompter("")

	p.Say(i18n.KeyTripCost, "41688.31")
	p.Println("0.0")

	assert.Equal(t, "This trip will cost $41688.31\n0.0\n", out.String())
}

func TestPrompter_Locale(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out, nil, "pt")

	p.Say(i18n.KeyLoading)

	assert.Equal(t, "Carregando o foguete:\n", out.String())
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{value: 0, expected: "0.0"},
		{value: 249, expected: "249.0"},
		{value: 5.0, expected: "5.0"},
		{value: 41688.31, expected: "41688.31"},
		{value: 122.45, expected: "122.45"},
		{value: 102529.5, expected: "102529.5"},
		{value: -1.52, expected: "-1.52"},
		{value: 12709263675.7, expected: "12709263675.7"},
		{value: math.Inf(1), expected: "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.value))
		})
	}
}
