package customfields

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"testing"

	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cloud/pylon"
	"github.com/usepylon/pylon-cli/internal/commands/resource"
	"github.com/usepylon/pylon-cli/internal/utils/test/assert"
	"github.com/usepylon/pylon-cli/internal/utils/test/mock"

	"github.com/spf13/pflag"
)

func TestListFlags(t *testing.T) {
	t.Run("should parse a supported object type", func(t *testing.T) {
		var cmd CommandList

		fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
		cmd.Flags(fs)

		assert.Nil(t, fs.Parse([]string{"--object-type", "contact", "--all"}))
		assert.Equal(t, listInputs{
			ListInputs: resource.ListInputs{All: true},
			ObjectType: ObjectTypeContact,
		}, cmd.inputs)
	})

	t.Run("should reject an unsupported object type", func(t *testing.T) {
		var cmd CommandList

		fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
		fs.SetOutput(ioutil.Discard)
		cmd.Flags(fs)

		err := fs.Parse([]string{"--object-type", "ticket"})
		assert.Equal(t, errors.New(`invalid argument "ticket" for "--object-type" flag: unsupported value, use one of ["account", "issue", "contact"] instead`), err)
	})
}

func TestListHandler(t *testing.T) {
	t.Run("should list the custom fields of the object type", func(t *testing.T) {
		requests, client := mock.NewRecordingPylonClient(pylon.Response{
			Data: json.RawMessage(`[{"id":"cf_1","label":"Tier"}]`),
		})
		out, _, ui := mock.NewSplitUI(mock.UIOptions{})

		cmd := &CommandList{listInputs{ObjectType: ObjectTypeAccount}}

		assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Pylon: client}, nil))
		assert.Equal(t, []mock.PylonRequest{{
			Path:  "/custom-fields",
			Query: map[string]string{"object_type": "account"},
		}}, *requests)
		assert.Equal(t, "[\n  {\n    \"id\": \"cf_1\",\n    \"label\": \"Tier\"\n  }\n]\n", out.String())
	})

	t.Run("should require an object type", func(t *testing.T) {
		requests, client := mock.NewRecordingPylonClient()
		_, _, ui := mock.NewSplitUI(mock.UIOptions{})

		err := (&CommandList{}).Handler(nil, ui, cli.Clients{Pylon: client}, nil)
		assert.Equal(t, cli.ValidationError{Message: "Missing required option --object-type"}, err)
		assert.Equal(t, 0, len(*requests))
	})
}
