package engine

import (
	"strconv"
	"strings"

	"github.com/matzehuels/iddl/pkg/cache"
	"github.com/matzehuels/iddl/pkg/iddl"
)

// InputKeyer builds unscoped cache keys with [InputKey].
var InputKeyer cache.Keyer[iddl.TokenInput] = cache.KeyFunc[iddl.TokenInput](InputKey)

// InputKey returns the cache key for in. Every field that can change the
// output is written out by name, so adding a field to TokenInput without
// adding it here is the only way two distinct inputs can collide. Strings are
// quoted, so no value can forge a field separator.
//
// in should be normalized; the engine always passes normalized inputs.
func InputKey(in iddl.TokenInput) string {
	var b keyBuilder
	b.str("role", in.Role)
	b.str("section_role", in.SectionRole)
	b.str("page_role", in.PageRole)
	b.str("section_type", in.SectionType)
	b.str("prominence", string(in.Prominence))
	b.str("intent", string(in.Intent))
	b.str("density", string(in.Density))
	b.flag("hover", in.State.Hover)
	b.flag("active", in.State.Active)
	b.flag("focus", in.State.Focus)
	b.flag("selected", in.State.Selected)
	b.flag("disabled", in.State.Disabled)
	b.str("separation", string(in.Separation))

	c := in.Context
	b.str("space", string(c.Ancestry.Space))
	b.num("depth", c.Ancestry.Depth)
	b.num("parent_level", c.Ancestry.ParentLevel)
	b.num("count", c.Siblings.Count)
	b.num("index", c.Siblings.Index)
	b.flag("first", c.Siblings.IsFirst)
	b.flag("last", c.Siblings.IsLast)
	b.flag("only", c.Siblings.IsOnly)
	b.str("effective_density", string(c.Inheritance.EffectiveDensity))
	b.str("interaction", string(c.State.Interaction))
	b.str("selection", string(c.State.Selection))
	b.str("validity", string(c.State.Validity))
	b.str("to_previous", string(c.Relationship.ToPrevious))
	b.str("to_next", string(c.Relationship.ToNext))
	b.str("parent_flow", string(c.Layout.ParentFlow))
	b.str("self_flow", string(c.Layout.SelfFlow))
	return b.String()
}

type keyBuilder struct {
	strings.Builder
}

func (b *keyBuilder) field(name string) {
	if b.Len() > 0 {
		b.WriteByte('|')
	}
	b.WriteString(name)
	b.WriteByte('=')
}

func (b *keyBuilder) str(name, v string) {
	b.field(name)
	b.WriteString(strconv.Quote(v))
}

func (b *keyBuilder) num(name string, v int) {
	b.field(name)
	b.WriteString(strconv.Itoa(v))
}

func (b *keyBuilder) flag(name string, v bool) {
	b.field(name)
	if v {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
}
