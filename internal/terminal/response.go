package terminal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
)

const (
	maxTableColumns = 6

	msgNoResults = "No results."

	headerField = "field"
	headerValue = "value"
)

var emptyList = json.RawMessage("[]")

// Envelope is an API response which can be printed by the terminal UI
type Envelope interface {
	// Payload returns the response data
	Payload() json.RawMessage

	// Envelope returns the complete response document
	Envelope() interface{}

	// NextCursor returns the cursor to the next page, if there is one
	NextCursor() string
}

type responseDocument struct {
	env Envelope
}

func (d responseDocument) Message() (string, error) {
	return d.Render(UIConfig{})
}

func (d responseDocument) Render(config UIConfig) (string, error) {
	switch config.OutputFormat {
	case OutputFormatTable:
		return d.table()
	case OutputFormatYAML:
		doc, err := d.document(config.Raw)
		if err != nil {
			return "", err
		}
		return encodeYAML(doc)
	}

	if config.Raw {
		return encodeJSON(d.env.Envelope())
	}
	return encodeJSON(d.payload())
}

func (d responseDocument) payload() json.RawMessage {
	data := d.env.Payload()
	if isNull(data) {
		return emptyList
	}
	return data
}

func (d responseDocument) document(raw bool) (json.RawMessage, error) {
	if !raw {
		return d.payload(), nil
	}
	return json.Marshal(d.env.Envelope())
}

func (d responseDocument) table() (string, error) {
	data := bytes.TrimSpace(d.env.Payload())
	if isNull(data) {
		return msgNoResults, nil
	}

	var out string
	switch data[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return "", err
		}
		if len(items) == 0 {
			return msgNoResults, nil
		}

		t, err := listTable(items)
		if err != nil {
			return "", err
		}
		if out, err = t.Message(); err != nil {
			return "", err
		}
	case '{':
		t, err := objectTable(data)
		if err != nil {
			return "", err
		}
		if out, err = t.Message(); err != nil {
			return "", err
		}
	default:
		var err error
		if out, err = encodeJSON(json.RawMessage(data)); err != nil {
			return "", err
		}
	}

	if cursor := d.env.NextCursor(); cursor != "" {
		out += fmt.Sprintf("\n\nMore results available. Use --cursor %s", cursor)
	}
	return out, nil
}

// listTable builds a table whose columns are the leading keys of the first item
func listTable(items []json.RawMessage) (table, error) {
	if !isObject(items[0]) {
		rows := make([]map[string]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, map[string]string{headerValue: cellValue(item)})
		}
		return newTable([]string{headerValue}, rows), nil
	}

	keys, err := objectKeys(items[0])
	if err != nil {
		return table{}, err
	}
	if len(keys) > maxTableColumns {
		keys = keys[:maxTableColumns]
	}
	if len(keys) == 0 {
		keys = []string{headerValue}
	}

	rows := make([]map[string]string, 0, len(items))
	for _, item := range items {
		fields := map[string]json.RawMessage{}
		if isObject(item) {
			if err := json.Unmarshal(item, &fields); err != nil {
				return table{}, err
			}
		}

		row := make(map[string]string, len(keys))
		for _, key := range keys {
			row[key] = cellValue(fields[key])
		}
		rows = append(rows, row)
	}
	return newTable(keys, rows), nil
}

// objectTable builds a two column table of the object's fields
func objectTable(data json.RawMessage) (table, error) {
	keys, err := objectKeys(data)
	if err != nil {
		return table{}, err
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return table{}, err
	}

	rows := make([]map[string]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, map[string]string{
			headerField: key,
			headerValue: cellValue(fields[key]),
		})
	}
	return newTable([]string{headerField, headerValue}, rows), nil
}

func objectKeys(data json.RawMessage) ([]string, error) {
	o := orderedmap.New()
	if err := json.Unmarshal(data, o); err != nil {
		return nil, err
	}
	return o.Keys(), nil
}

// cellValue renders strings unquoted, null as empty and anything else as compact JSON
func cellValue(value json.RawMessage) string {
	value = bytes.TrimSpace(value)
	if isNull(value) {
		return ""
	}

	if value[0] == '"' {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			return strings.ReplaceAll(s, "\n", " ")
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return string(value)
	}
	return buf.String()
}

func isNull(data json.RawMessage) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

func isObject(data json.RawMessage) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}
