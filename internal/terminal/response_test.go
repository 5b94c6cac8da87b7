package terminal

import (
	"encoding/json"
	"testing"

	"github.com/usepylon/pylon-cli/internal/utils/test/assert"

	"github.com/fatih/color"
)

type testEnvelope struct {
	data      string
	requestID string
	cursor    string
}

func (e testEnvelope) Payload() json.RawMessage { return json.RawMessage(e.data) }

func (e testEnvelope) Envelope() interface{} {
	env := map[string]interface{}{"data": json.RawMessage(e.data)}
	if e.requestID != "" {
		env["request_id"] = e.requestID
	}
	env["has_next_page"] = e.cursor != ""
	if e.cursor != "" {
		env["cursor"] = e.cursor
	}
	return env
}

func (e testEnvelope) NextCursor() string { return e.cursor }

func TestResponseDocumentJSON(t *testing.T) {
	for _, tc := range []struct {
		description string
		env         testEnvelope
		raw         bool
		expected    string
	}{
		{
			description: "should print only the data by default",
			env:         testEnvelope{data: `{"id":"1","name":"Test"}`, requestID: "req_123"},
			expected:    "{\n  \"id\": \"1\",\n  \"name\": \"Test\"\n}",
		},
		{
			description: "should print the whole envelope when raw",
			env:         testEnvelope{data: `{"id":"1"}`, requestID: "req_123"},
			raw:         true,
			expected:    "{\n  \"data\": {\n    \"id\": \"1\"\n  },\n  \"has_next_page\": false,\n  \"request_id\": \"req_123\"\n}",
		},
		{
			description: "should print an empty list for null data",
			env:         testEnvelope{data: `null`},
			expected:    "[]",
		},
		{
			description: "should not escape html characters",
			env:         testEnvelope{data: `{"body":"<p>a & b</p>"}`},
			expected:    "{\n  \"body\": \"<p>a & b</p>\"\n}",
		},
		{
			description: "should keep the key order of the response",
			env:         testEnvelope{data: `{"zeta":1,"alpha":2}`},
			expected:    "{\n  \"zeta\": 1,\n  \"alpha\": 2\n}",
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			out, err := responseDocument{tc.env}.Render(UIConfig{OutputFormat: OutputFormatJSON, Raw: tc.raw})
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}

	t.Run("should default to json", func(t *testing.T) {
		out, err := responseDocument{testEnvelope{data: `[1,2]`}}.Render(UIConfig{})
		assert.Nil(t, err)
		assert.Equal(t, "[\n  1,\n  2\n]", out)
	})
}

func TestResponseDocumentYAML(t *testing.T) {
	for _, tc := range []struct {
		description string
		env         testEnvelope
		raw         bool
		expected    string
	}{
		{
			description: "should keep the key order of the response",
			env:         testEnvelope{data: `[{"zeta":"z","alpha":{"b":true,"a":null}}]`},
			expected: `- zeta: z
  alpha:
    b: true
    a: null`,
		},
		{
			description: "should print the request id when raw",
			env:         testEnvelope{data: `{"id":"1"}`, requestID: "req_123"},
			raw:         true,
			expected: `data:
  id: "1"
has_next_page: false
request_id: req_123`,
		},
		{
			description: "should print an empty list for null data",
			env:         testEnvelope{data: `null`},
			expected:    "[]",
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			out, err := responseDocument{tc.env}.Render(UIConfig{OutputFormat: OutputFormatYAML, Raw: tc.raw})
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestResponseDocumentTable(t *testing.T) {
	color.NoColor = true

	for _, tc := range []struct {
		description string
		env         testEnvelope
		expected    string
	}{
		{
			description: "should print no results for an empty list",
			env:         testEnvelope{data: `[]`, cursor: "ignored"},
			expected:    "No results.",
		},
		{
			description: "should print no results for null data",
			env:         testEnvelope{data: `null`},
			expected:    "No results.",
		},
		{
			description: "should use the first six keys of the first item as columns",
			env: testEnvelope{data: `[
				{"id":"1","name":"A","a":1,"b":true,"c":null,"d":{"x":[1, 2]},"e":"hidden"},
				{"id":"2","name":"B","extra":"hidden"}
			]`},
			expected: `  id  name  a  b     c  d
  --  ----  -  ----  -  -----------
  1   A     1  true     {"x":[1,2]}
  2   B`,
		},
		{
			description: "should print an object as fields and values",
			env:         testEnvelope{data: `{"id":"1","name":"Test","tags":["a"]}`},
			expected: `  field  value
  -----  -----
  id     1
  name   Test
  tags   ["a"]`,
		},
		{
			description: "should print a scalar as json",
			env:         testEnvelope{data: `"ok"`},
			expected:    `"ok"`,
		},
		{
			description: "should point to the next page",
			env:         testEnvelope{data: `[{"id":"1"}]`, cursor: "abc"},
			expected: `  id
  --
  1

More results available. Use --cursor abc`,
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			out, err := responseDocument{tc.env}.Render(UIConfig{OutputFormat: OutputFormatTable})
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}
