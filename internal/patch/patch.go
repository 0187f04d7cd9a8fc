// Package patch compiles sparse field maps into ordered column assignments
// against a fixed whitelist.
package patch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoValidFields indicates an update payload with nothing from the whitelist.
var ErrNoValidFields = errors.New("no valid fields to update")

// ErrInvalidValue indicates a whitelisted key whose value is not a scalar.
var ErrInvalidValue = errors.New("field value must be a string, number, boolean or null")

// Field maps an input name to a storage column. Aliases are alternative input
// names for the same column.
type Field struct {
	Name    string
	Column  string
	Aliases []string
}

// Assignment is a single column write.
type Assignment struct {
	Column string
	Value  string
}

// Patch is an ordered, de-duplicated set of column assignments.
type Patch []Assignment

// Columns returns the assigned columns in order.
func (p Patch) Columns() []string {
	cols := make([]string, len(p))
	for i, a := range p {
		cols[i] = a.Column
	}
	return cols
}

// Lookup returns the value assigned to column, if any.
func (p Patch) Lookup(column string) (string, bool) {
	for _, a := range p {
		if a.Column == column {
			return a.Value, true
		}
	}
	return "", false
}

// Set replaces the value of an already assigned column.
func (p Patch) Set(column, value string) {
	for i := range p {
		if p[i].Column == column {
			p[i].Value = value
			return
		}
	}
}

// Whitelist is an immutable ordered mapping from input names to columns.
type Whitelist struct {
	fields []Field
	index  map[string]int
}

// NewWhitelist builds a whitelist. The declaration order of fields fixes the
// order of compiled assignments. It panics on a name or column declared twice.
func NewWhitelist(fields ...Field) *Whitelist {
	w := &Whitelist{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	columns := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if _, dup := columns[f.Column]; dup {
			panic(fmt.Sprintf("patch: column %q declared twice", f.Column))
		}
		columns[f.Column] = struct{}{}
		w.fields[i] = Field{Name: f.Name, Column: f.Column, Aliases: append([]string(nil), f.Aliases...)}
		for _, name := range append([]string{f.Name}, f.Aliases...) {
			if _, dup := w.index[name]; dup {
				panic(fmt.Sprintf("patch: name %q declared twice", name))
			}
			w.index[name] = i
		}
	}
	return w
}

// Column resolves an input name to its column.
func (w *Whitelist) Column(name string) (string, bool) {
	i, ok := w.index[name]
	if !ok {
		return "", false
	}
	return w.fields[i].Column, true
}

// Columns returns every whitelisted column in declaration order.
func (w *Whitelist) Columns() []string {
	cols := make([]string, len(w.fields))
	for i, f := range w.fields {
		cols[i] = f.Column
	}
	return cols
}

// Compile keeps the known keys of input and returns them as assignments in
// whitelist order. Unknown keys are dropped silently. When a column is given
// under both its name and an alias, the canonical name wins.
func (w *Whitelist) Compile(input map[string]any) (Patch, error) {
	if len(input) == 0 {
		return nil, ErrNoValidFields
	}

	type hit struct {
		value     any
		canonical bool
	}
	hits := make(map[int]hit, len(input))
	for key, value := range input {
		i, ok := w.index[key]
		if !ok {
			continue
		}
		if !scalar(value) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidValue, key)
		}
		canonical := key == w.fields[i].Name
		if prev, seen := hits[i]; seen && prev.canonical && !canonical {
			continue
		}
		hits[i] = hit{value: value, canonical: canonical}
	}
	if len(hits) == 0 {
		return nil, ErrNoValidFields
	}

	p := make(Patch, 0, len(hits))
	for i, f := range w.fields {
		h, ok := hits[i]
		if !ok {
			continue
		}
		p = append(p, Assignment{Column: f.Column, Value: stringify(h.value)})
	}
	return p, nil
}

// SetClause renders "col1 = <ph(1)>, col2 = <ph(2)>" with placeholders
// produced by ph, and returns the matching argument list.
func (p Patch) SetClause(ph func(n int) string) (string, []any) {
	parts := make([]string, len(p))
	args := make([]any, len(p))
	for i, a := range p {
		parts[i] = fmt.Sprintf("%s = %s", a.Column, ph(i+1))
		args[i] = a.Value
	}
	return strings.Join(parts, ", "), args
}

func scalar(v any) bool {
	switch v.(type) {
	case nil, string, bool, fmt.Stringer,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
