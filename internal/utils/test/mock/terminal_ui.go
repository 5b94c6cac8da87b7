package mock

import (
	"bytes"
	"io"

	"github.com/usepylon/pylon-cli/internal/terminal"

	"github.com/Netflix/go-expect"
	"github.com/hinshun/vt10x"
)

// UIOptions are the options to configure the mock terminal UI
type UIOptions struct {
	UseColors    bool
	OutputFormat terminal.OutputFormat
	Raw          bool
	Verbose      bool
}

func newUIConfig(options UIOptions) terminal.UIConfig {
	return terminal.UIConfig{
		DisableColors: !options.UseColors,
		OutputFormat:  options.OutputFormat,
		Raw:           options.Raw,
		Verbose:       options.Verbose,
	}
}

// NewUI returns a new *bytes.Buffer and a mock terminal UI that writes to the buffer
func NewUI() (*bytes.Buffer, terminal.UI) {
	out := new(bytes.Buffer)
	return out, NewUIWithOptions(UIOptions{}, out)
}

// NewUIWithOptions creates a new mock terminal UI based on the provided options
func NewUIWithOptions(options UIOptions, writer io.Writer) terminal.UI {
	return terminal.NewUI(newUIConfig(options), nil, writer, writer)
}

// NewSplitUI returns the *bytes.Buffer receiving stdout and the one receiving stderr
// along with a mock terminal UI that writes to them
func NewSplitUI(options UIOptions) (*bytes.Buffer, *bytes.Buffer, terminal.UI) {
	out, err := new(bytes.Buffer), new(bytes.Buffer)
	return out, err, terminal.NewUI(newUIConfig(options), nil, out, err)
}

// NewVT10XConsole returns a new *bytes.Buffer and a *expect.Console
// along with its corresponding *vt10.State and mock terminal UI that write to the buffer
func NewVT10XConsole() (*bytes.Buffer, *expect.Console, *vt10x.State, terminal.UI, error) {
	out := new(bytes.Buffer)
	console, state, ui, err := NewVT10XConsoleWithOptions(UIOptions{}, out)
	return out, console, state, ui, err
}

// NewVT10XConsoleWithOptions creates a new *expect.Console
// along with its corresponding *vt10.State and mock terminal UI based on the provided options
func NewVT10XConsoleWithOptions(options UIOptions, writers ...io.Writer) (*expect.Console, *vt10x.State, terminal.UI, error) {
	console, state, err := vt10x.NewVT10XConsole(expect.WithStdout(writers...))
	if err != nil {
		return nil, nil, nil, err
	}

	ui := terminal.NewUI(
		newUIConfig(options),
		console.Tty(),
		console.Tty(),
		console.Tty(),
	)

	return console, state, ui, nil
}
