package pipeline

import (
	"fmt"
	"reflect"
	"strings"
)

// Change is one field that a stage changed.
type Change struct {
	Field string
	From  string
	To    string
}

// String formats c as "field: from → to".
func (c Change) String() string {
	return fmt.Sprintf("%s: %s → %s", c.Field, c.From, c.To)
}

// Diff lists the fields that differ between prev and next, named by their
// json tags, in declaration order.
func Diff(prev, next Resolved) []Change {
	pv, nv := reflect.ValueOf(prev), reflect.ValueOf(next)
	rt := pv.Type()

	var changes []Change
	for i := 0; i < rt.NumField(); i++ {
		a, b := pv.Field(i), nv.Field(i)
		if reflect.DeepEqual(a.Interface(), b.Interface()) {
			continue
		}
		changes = append(changes, Change{
			Field: fieldName(rt.Field(i)),
			From:  show(a),
			To:    show(b),
		})
	}
	return changes
}

// Changes returns the changes each step made relative to the one before it.
func Changes(steps []Step) [][]Change {
	out := make([][]Change, len(steps))
	var prev Resolved
	for i, s := range steps {
		out[i] = Diff(prev, s.Resolved)
		prev = s.Resolved
	}
	return out
}

func fieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}

func show(v reflect.Value) string {
	if v.IsZero() {
		return "∅"
	}
	return fmt.Sprintf("%v", v.Interface())
}
