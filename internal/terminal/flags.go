package terminal

import (
	"fmt"
	"strings"
)

// OutputFormat is the terminal output format
type OutputFormat string

func (of OutputFormat) String() string {
	val := string(of)
	if val == "" {
		return OutputFormatJSON.String()
	}
	return val
}

// Type returns the OutputFormat type
func (of OutputFormat) Type() string { return "OutputFormat" }

// Set validates and sets the output format value
func (of *OutputFormat) Set(val string) error {
	outputFormat := OutputFormat(val)

	if !isValidOutputFormat(outputFormat) {
		allOutputFormats := []string{
			string(OutputFormatJSON),
			string(OutputFormatTable),
			string(OutputFormatYAML),
		}
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(allOutputFormats, ", "))
	}

	*of = outputFormat
	return nil
}

// set of supported terminal output formats
const (
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatTable OutputFormat = "table"
	OutputFormatYAML  OutputFormat = "yaml"
)

func isValidOutputFormat(outputFormat OutputFormat) bool {
	switch outputFormat {
	case
		OutputFormatJSON,
		OutputFormatTable,
		OutputFormatYAML:
		return true
	}
	return false
}

// set of supported ui flags
const (
	FlagOutputFormat      = "format"
	FlagOutputFormatUsage = "set the output format, available options: [json, table, yaml]"

	FlagRaw      = "raw"
	FlagRawUsage = "include the full API envelope (request_id, pagination)"

	FlagVerbose      = "verbose"
	FlagVerboseUsage = "print debug details such as request retries to stderr"

	FlagDisableColors      = "disable-colors"
	FlagDisableColorsUsage = "disable all CLI output styling (e.g. colors, font styles, etc.)"
)
