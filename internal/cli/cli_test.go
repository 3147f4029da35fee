package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthplan-backend/internal/plan"
)

func TestRootHasSubcommands(t *testing.T) {
	t.Parallel()

	root := NewRootCmd(&bytes.Buffer{})
	names := map[string]bool{}
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["plan"], "plan should be a subcommand of root")
	assert.True(t, names["version"], "version should be a subcommand of root")
}

func TestPlanFlagDefaults(t *testing.T) {
	t.Parallel()

	cmd := newPlanCmd()
	tests := []struct {
		flag     string
		expected string
	}{
		{"age", ""},
		{"count", "0"},
		{"json", "false"},
		{"symptoms", "[]"},
	}
	for _, tt := range tests {
		f := cmd.Flags().Lookup(tt.flag)
		require.NotNil(t, f, tt.flag)
		assert.Equal(t, tt.expected, f.DefValue, tt.flag)
	}
}

func TestPlanJSONOutput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Execute([]string{"plan", "--age", "70", "--lifestyle", "desk job", "--symptoms", "fatigue,headache", "--goals", "sleep", "--count", "3", "--json"}, &out)
	require.NoError(t, err)

	var got plan.Plan
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	age := 70
	want := plan.Generate(plan.Input{
		Age:       &age,
		Lifestyle: "desk job",
		Symptoms:  []string{"fatigue", "headache"},
		Goals:     []string{"sleep"},
		Count:     3,
	})
	assert.Equal(t, want, got)
	assert.Len(t, got.Suggestions, 3)
}

func TestPlanTextOutput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, Execute([]string{"plan", "--symptoms", "cough"}, &out))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Based on the symptoms you shared (cough)"))
	assert.Contains(t, text, "  1. Humidification & fluids: ")
	assert.Contains(t, text, "Caution: "+plan.Caution)
}

func TestPlanWithoutInputUsesBaseline(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, Execute([]string{"plan", "--json"}, &out))

	var got plan.Plan
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, plan.BaselineSuggestions(), got.Suggestions)
}

func TestPlanRejectsPositionalArgs(t *testing.T) {
	t.Parallel()

	err := Execute([]string{"plan", "extra"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, Execute([]string{"version"}, &out))
	assert.Contains(t, out.String(), "healthplan "+Version)
}
