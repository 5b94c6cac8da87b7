package usage

import (
	"testing"

	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/utils/test/assert"
	"github.com/usepylon/pylon-cli/internal/utils/test/mock"
	"github.com/usepylon/pylon-cli/internal/utils/test/so"
)

func TestUsageHandler(t *testing.T) {
	out, errOut, ui := mock.NewSplitUI(mock.UIOptions{})

	assert.Nil(t, (&Command{}).Handler(nil, ui, cli.Clients{}, nil))

	assert.Equal(t, Text+"\n", out.String())
	assert.Equal(t, "", errOut.String())

	so.So(t, out.String(), so.ShouldStartWith, "Available commands:\n")
	so.So(t, out.String(), so.ShouldContainSubstring, "pylon issues list --start <t> --end <t>")
	so.So(t, out.String(), so.ShouldContainSubstring, "--format <format>    json (default) | table | yaml")
	so.So(t, out.String(), so.ShouldNotContainSubstring, "install")
}
