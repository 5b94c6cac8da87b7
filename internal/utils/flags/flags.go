// Package flags holds flag values and helpers shared by the CLI commands
package flags

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// MarkHidden hides the named flag from the usage text
func MarkHidden(fs *pflag.FlagSet, name string) {
	fs.MarkHidden(name) //nolint: errcheck
}

// MarkRequired makes cobra fail the command when the named flag is not set
func MarkRequired(fs *pflag.FlagSet, name string) {
	cobra.MarkFlagRequired(fs, name) //nolint: errcheck
}

// EnumValue is a flag value restricted to a set of allowed values
type EnumValue struct {
	value       *string
	validValues []string
}

// NewEnum creates an EnumValue storing its value in p
func NewEnum(p *string, validValues ...string) *EnumValue {
	return &EnumValue{value: p, validValues: validValues}
}

// Set validates and sets the enum value
func (ev *EnumValue) Set(val string) error {
	for _, valid := range ev.validValues {
		if val == valid {
			*ev.value = val
			return nil
		}
	}
	return ev.errInvalidEnumValue()
}

// Type returns the type string of EnumValue
func (ev *EnumValue) Type() string {
	return "enum"
}

func (ev *EnumValue) String() string {
	if ev.value == nil {
		return ""
	}
	return *ev.value
}

// Usage describes the flag with its allowed values appended
func (ev *EnumValue) Usage(description string) string {
	return fmt.Sprintf("%s (%s)", description, strings.Join(ev.validValues, ", "))
}

func (ev *EnumValue) errInvalidEnumValue() error {
	var sb strings.Builder
	sb.WriteString(`unsupported value, use one of ["`)
	sb.WriteString(strings.Join(ev.validValues, `", "`))
	sb.WriteString(`"] instead`)
	return errors.New(sb.String())
}
