package interview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		problem string
	}{
		{name: "bare", text: `{"problem":"Two Sum"}`, problem: "Two Sum"},
		{name: "fenced", text: "Sure!\n```json\n{\"problem\": \"Two Sum\"}\n```", problem: "Two Sum"},
		{name: "braces_in_string", text: `prefix {"problem":"use {} and \"}\" carefully"} trailing {"x":1}`, problem: `use {} and "}" carefully`},
		{name: "nested", text: `{"problem":"p","examples":{"in":[1,2]}} and {"problem":"second"}`, problem: "p"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var q Question
			require.NoError(t, ExtractJSON(tc.text, &q))
			assert.Equal(t, tc.problem, q.Problem)
		})
	}
}

func TestExtractJSONFailures(t *testing.T) {
	for _, text := range []string{"", "no json here", `{"problem": "unterminated"`, `{not json}`} {
		var q Question
		err := ExtractJSON(text, &q)
		assert.True(t, errors.Is(err, ErrGenerationFailed), "text %q: %v", text, err)
	}
}

func TestTextAcceptsStringsAndLists(t *testing.T) {
	var q Question
	require.NoError(t, ExtractJSON(`{"problem":"p","examples":["a","b"],"constraints":"n <= 10","followUp":{"k":1}}`, &q))

	assert.Equal(t, Text("a\nb"), q.Examples)
	assert.Equal(t, Text("n <= 10"), q.Constraints)
	assert.Equal(t, Text(`{"k":1}`), q.FollowUp)
}
