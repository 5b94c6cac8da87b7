package terminal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// encodeJSON renders v as indented JSON, leaving HTML characters unescaped
func encodeJSON(v interface{}) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// encodeYAML renders the JSON document as YAML
// Object keys keep their document order
func encodeYAML(doc json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	value, err := decodeYAMLValue(dec)
	if err != nil {
		return "", fmt.Errorf("failed to convert response to yaml: %w", err)
	}

	wide := newWideStrings(value)
	value = mapStrings(value, wide.swap)

	out, err := yaml.Marshal(value)
	if err != nil {
		return "", err
	}
	return wide.restore(string(bytes.TrimRight(out, "\n"))), nil
}

// decodeYAMLValue reads the next JSON value, turning objects into yaml.MapSlice
func decodeYAMLValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		ms := yaml.MapSlice{}
		for dec.More() {
			key, err := dec.Token()
			if err != nil {
				return nil, err
			}
			value, err := decodeYAMLValue(dec)
			if err != nil {
				return nil, err
			}
			ms = append(ms, yaml.MapItem{Key: key, Value: value})
		}
		_, err := dec.Token()
		return ms, err
	case '[':
		items := []interface{}{}
		for dec.More() {
			value, err := decodeYAMLValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		_, err := dec.Token()
		return items, err
	}
	return nil, fmt.Errorf("unexpected delimiter %s", delim)
}

// mapStrings applies fn to every string key and value of a decoded document
func mapStrings(value interface{}, fn func(string) string) interface{} {
	switch v := value.(type) {
	case string:
		return fn(v)
	case yaml.MapSlice:
		for i := range v {
			v[i].Key = mapStrings(v[i].Key, fn)
			v[i].Value = mapStrings(v[i].Value, fn)
		}
	case []interface{}:
		for i := range v {
			v[i] = mapStrings(v[i], fn)
		}
	}
	return value
}

// wideStrings holds the strings with runes outside the basic multilingual plane,
// which yaml.v2 only emits as escape sequences. Each one is marshalled as a
// plain placeholder and put back afterwards as a double quoted scalar.
type wideStrings struct {
	prefix string
	quoted []string
}

func newWideStrings(value interface{}) *wideStrings {
	for n := 0; ; n++ {
		prefix := fmt.Sprintf("widestring%d_", n)

		var taken bool
		mapStrings(value, func(s string) string {
			taken = taken || strings.Contains(s, prefix)
			return s
		})
		if !taken {
			return &wideStrings{prefix: prefix}
		}
	}
}

func (w *wideStrings) swap(s string) string {
	if !hasWideRune(s) {
		return s
	}
	w.quoted = append(w.quoted, strconv.Quote(s))
	return w.placeholder(len(w.quoted) - 1)
}

func (w *wideStrings) restore(out string) string {
	for i, quoted := range w.quoted {
		out = strings.Replace(out, w.placeholder(i), quoted, 1)
	}
	return out
}

func (w *wideStrings) placeholder(i int) string {
	return fmt.Sprintf("%s%d_", w.prefix, i)
}

func hasWideRune(s string) bool {
	for _, r := range s {
		if r > 0xFFFF {
			return true
		}
	}
	return false
}
