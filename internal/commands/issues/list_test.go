package issues

import (
	"encoding/json"
	"testing"

	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cloud/pylon"
	"github.com/usepylon/pylon-cli/internal/commands/resource"
	"github.com/usepylon/pylon-cli/internal/utils/test/assert"
	"github.com/usepylon/pylon-cli/internal/utils/test/mock"

	"github.com/spf13/pflag"
)

func TestListInputsValidate(t *testing.T) {
	for _, tc := range []struct {
		description string
		start       string
		end         string
		expectedErr error
	}{
		{
			description: "should accept a range within 30 days",
			start:       "2024-01-01T00:00:00Z",
			end:         "2024-01-15T00:00:00Z",
		},
		{
			description: "should accept a range of exactly 30 days",
			start:       "2024-01-01T00:00:00Z",
			end:         "2024-01-31T00:00:00Z",
		},
		{
			description: "should accept an empty range",
			start:       "2024-01-01T00:00:00Z",
			end:         "2024-01-01T00:00:00Z",
		},
		{
			description: "should reject an unparsable start date",
			start:       "yesterday",
			end:         "2024-01-31T00:00:00Z",
			expectedErr: cli.ValidationError{Message: "Invalid start date: yesterday. Use RFC3339 format (e.g. 2024-01-01T00:00:00Z)"},
		},
		{
			description: "should reject an unparsable end date",
			start:       "2024-01-01T00:00:00Z",
			end:         "2024-13-45",
			expectedErr: cli.ValidationError{Message: "Invalid end date: 2024-13-45. Use RFC3339 format (e.g. 2024-01-31T00:00:00Z)"},
		},
		{
			description: "should reject a range longer than 30 days",
			start:       "2024-01-01T00:00:00Z",
			end:         "2024-02-05T00:00:00Z",
			expectedErr: cli.ValidationError{Message: "Date range cannot exceed 30 days"},
		},
		{
			description: "should reject a range ending before it starts",
			start:       "2024-01-31T00:00:00Z",
			end:         "2024-01-01T00:00:00Z",
			expectedErr: cli.ValidationError{Message: "Start date must be before end date"},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			i := listInputs{Start: tc.start, End: tc.end}
			assert.Equal(t, tc.expectedErr, i.validate())
		})
	}
}

func TestListFlags(t *testing.T) {
	var cmd CommandList

	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	cmd.Flags(fs)

	assert.Nil(t, fs.Parse([]string{
		"--start", "2024-01-01T00:00:00Z",
		"--end", "2024-01-31T00:00:00Z",
		"--limit", "50",
	}))
	assert.Equal(t, listInputs{
		ListInputs: resource.ListInputs{Limit: 50},
		Start:      "2024-01-01T00:00:00Z",
		End:        "2024-01-31T00:00:00Z",
	}, cmd.inputs)
}

func TestListHandler(t *testing.T) {
	t.Run("should list issues within the time range", func(t *testing.T) {
		requests, client := mock.NewRecordingPylonClient(pylon.Response{
			Data: json.RawMessage(`[{"id":"iss_1","title":"Broken login"}]`),
		})
		out, _, ui := mock.NewSplitUI(mock.UIOptions{})

		cmd := &CommandList{listInputs{
			ListInputs: resource.ListInputs{Cursor: "abc"},
			Start:      "2024-01-01T00:00:00Z",
			End:        "2024-01-31T00:00:00Z",
		}}

		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Pylon: client}, nil))

		assert.Equal(t, []mock.PylonRequest{{
			Path: "/issues",
			Query: map[string]string{
				"start_time": "2024-01-01T00:00:00Z",
				"end_time":   "2024-01-31T00:00:00Z",
				"cursor":     "abc",
			},
		}}, *requests)
		assert.Equal(t, `[
  {
    "id": "iss_1",
    "title": "Broken login"
  }
]
`, out.String())
	})

	t.Run("should fail a range over 30 days before calling the api", func(t *testing.T) {
		requests, client := mock.NewRecordingPylonClient()
		out, _, ui := mock.NewSplitUI(mock.UIOptions{})

		cmd := &CommandList{listInputs{
			Start: "2024-01-01T00:00:00Z",
			End:   "2024-02-05T00:00:00Z",
		}}

		err := cmd.Handler(nil, ui, cli.Clients{Pylon: client}, nil)
		assert.Equal(t, cli.ValidationError{Message: "Date range cannot exceed 30 days"}, err)
		assert.Equal(t, 0, len(*requests))
		assert.Equal(t, "", out.String())
	})
}
