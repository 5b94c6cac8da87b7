package terminal

import (
	"strings"
)

type list struct {
	message string
	data    []string
}

func newList(message string, data []interface{}) list {
	l := list{message: message, data: make([]string, 0, len(data))}
	for _, item := range data {
		l.data = append(l.data, parseValue(item))
	}
	return l
}

func (l list) Message() (string, error) {
	lines := make([]string, 0, len(l.data)+1)
	if l.message != "" {
		lines = append(lines, l.message)
	}
	return strings.Join(append(lines, l.data...), "\n"), nil
}
