package terminal

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// set of exported spacing options
const (
	Indent = "  "
	Gutter = "  "
)

type table struct {
	headers      []string
	data         []map[string]string
	columnWidths map[string]int
}

func newTable(headers []string, data []map[string]string) table {
	var t table

	if len(headers) == 0 {
		return t
	}

	t.headers = headers
	t.data = make([]map[string]string, 0, len(data))
	t.columnWidths = make(map[string]int, len(headers))

	for _, header := range headers {
		t.columnWidths[header] = utf8.RuneCountInString(header)
	}

	for _, row := range data {
		r := make(map[string]string, len(t.headers))
		for _, header := range t.headers {
			value := row[header]
			if width := utf8.RuneCountInString(value); width > t.columnWidths[header] {
				t.columnWidths[header] = width
			}
			r[header] = value
		}
		t.data = append(t.data, r)
	}
	return t
}

func (t table) Message() (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}
	if len(t.data) == 0 {
		return fmt.Sprintf("%s\n%s", t.headerString(), t.dividerString()), nil
	}
	return fmt.Sprintf(`%s
%s
%s`, t.headerString(), t.dividerString(), t.dataString()), nil
}

func (t table) validate() error {
	if len(t.headers) == 0 {
		return errors.New("cannot create a table without headers")
	}
	return nil
}

func (t table) headerString() string {
	headers := make([]string, len(t.headers))
	for i, header := range t.headers {
		headers[i] = fmt.Sprintf("%s%s",
			color.New(color.Bold).SprintFunc()(header),
			t.padding(header, header),
		)
	}
	return Indent + strings.TrimRight(strings.Join(headers, Gutter), " ")
}

func (t table) dataString() string {
	rows := make([]string, len(t.data))
	for i, row := range t.data {
		cells := make([]string, len(t.headers))
		for j, header := range t.headers {
			cells[j] = row[header] + t.padding(header, row[header])
		}
		rows[i] = strings.TrimRight(Indent+strings.Join(cells, Gutter), " ")
	}
	return strings.Join(rows, "\n")
}

func (t table) dividerString() string {
	dashes := make([]string, len(t.headers))
	for i, header := range t.headers {
		dashes[i] = strings.Repeat("-", t.columnWidths[header])
	}
	return Indent + strings.Join(dashes, Gutter)
}

func (t table) padding(header, value string) string {
	return strings.Repeat(" ", t.columnWidths[header]-utf8.RuneCountInString(value))
}

func parseValue(value interface{}) string {
	parsed := ""
	switch v := value.(type) {
	case nil: // leave zero-value
	case string:
		parsed = v
	case fmt.Stringer:
		parsed = v.String()
	case error:
		parsed = v.Error()
	default:
		parsed = fmt.Sprintf("%+v", v)
	}
	return parsed
}
