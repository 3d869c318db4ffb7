package textutil

import (
	"fmt"
	"strings"
)

// Field is one name/value pair rendered by ReprString.
type Field struct {
	Key   string
	Value any
}

// ReprString formats a diagnostic representation of a value in the form
// "Name(key = value, key2 = value2)".
func ReprString(name string, fields ...Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s = %v", f.Key, f.Value))
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}
