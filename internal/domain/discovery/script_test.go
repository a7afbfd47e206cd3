package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptStrategy_Extract(t *testing.T) {
	s, err := NewScriptStrategy(`function extract(text) {
		return text.split(/\s+/).filter(function (tok) {
			return tok.indexOf("tool-") === 0;
		});
	}`)
	require.NoError(t, err)

	names, err := s.Extract("banner tool-alpha noise tool-beta tool-alpha")
	require.NoError(t, err)
	assert.Equal(t, []string{"tool-alpha", "tool-beta"}, names)
}

func TestScriptStrategy_MissingExtractFunction(t *testing.T) {
	_, err := NewScriptStrategy(`var notAFunction = 42;`)
	assert.Error(t, err)
}

func TestScriptStrategy_SyntaxError(t *testing.T) {
	_, err := NewScriptStrategy(`function extract(text { return []; }`)
	assert.Error(t, err)
}

func TestScriptStrategy_RuntimeErrorSurfaces(t *testing.T) {
	s, err := NewScriptStrategy(`function extract(text) { throw new Error("boom"); }`)
	require.NoError(t, err)

	_, err = s.Extract("anything")
	assert.Error(t, err)
}

func TestScriptStrategy_NonArrayReturn(t *testing.T) {
	s, err := NewScriptStrategy(`function extract(text) { return 42; }`)
	require.NoError(t, err)

	_, err = s.Extract("anything")
	assert.Error(t, err)
}
