package pipeline

import (
	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// Paint is a background and foreground pair.
type Paint struct {
	Surface    string
	Foreground string
}

// Rule is one entry of the state priority chain. The first rule whose When
// matches decides the color; Apply receives the base paint.
type Rule struct {
	Name  string
	When  func(f iddl.StateFlags) bool
	Apply func(base Paint) Paint
}

// StateRules is the state priority chain, strongest first:
// disabled > selected > invalid > active > hover/focus.
var StateRules = []Rule{
	{
		Name: "disabled",
		When: func(f iddl.StateFlags) bool { return f.Disabled },
		Apply: func(Paint) Paint {
			return Paint{strategy.SurfaceDisabled, strategy.ContentDisabled}
		},
	},
	{
		Name:  "selected",
		When:  func(f iddl.StateFlags) bool { return f.Selected },
		Apply: func(b Paint) Paint { return Paint{strategy.SurfaceSelected, b.Foreground} },
	},
	{
		Name: "indeterminate",
		When: func(f iddl.StateFlags) bool { return f.Indeterminate },
		Apply: func(Paint) Paint {
			return Paint{strategy.SurfaceSelected, strategy.ContentMuted}
		},
	},
	{
		Name: "invalid",
		When: func(f iddl.StateFlags) bool { return f.Invalid },
		Apply: func(b Paint) Paint {
			return Paint{strategy.IntentSurface(iddl.IntentCritical.Key(), "subtle"), b.Foreground}
		},
	},
	{
		Name: "pending",
		When: func(f iddl.StateFlags) bool { return f.Pending },
		Apply: func(b Paint) Paint {
			return Paint{strategy.IntentSurface(iddl.IntentCaution.Key(), "subtle"), b.Foreground}
		},
	},
	{
		Name:  "active",
		When:  func(f iddl.StateFlags) bool { return f.Active },
		Apply: func(b Paint) Paint { return Paint{strategy.SurfaceActive, b.Foreground} },
	},
	{
		Name:  "hover",
		When:  func(f iddl.StateFlags) bool { return f.Hover || f.Focus },
		Apply: func(b Paint) Paint { return Paint{strategy.SurfaceHover, b.Foreground} },
	},
}

// Color resolves the background and foreground: first the base paint from
// intent and prominence, then the first matching state rule.
func Color(t strategy.Tables, in iddl.TokenInput, r Resolved) Resolved {
	base := BasePaint(in.Intent, in.Prominence, r.Surface)
	paint, rule := ApplyRules(StateRules, in.Flags(), base)
	r.Background = paint.Surface
	r.Foreground = paint.Foreground
	r.Rule = rule
	return r
}

// BasePaint returns the paint for intent at prominence on a surface.
func BasePaint(intent iddl.Intent, p iddl.Prominence, surface string) Paint {
	if intent == iddl.IntentNeutral || intent == "" {
		return Paint{surface, neutralForeground(p)}
	}
	key := intent.Key()
	switch {
	case p.IsHigh():
		return Paint{strategy.IntentSurface(key, "default"), strategy.ContentOnIntent(key)}
	case p.IsLow():
		return Paint{strategy.SurfaceTransparent, strategy.ContentIntent(key)}
	default:
		return Paint{strategy.IntentSurface(key, "subtle"), strategy.ContentIntent(key)}
	}
}

// ApplyRules returns the paint of the first matching rule and its name, or
// base and "" when no rule matches.
func ApplyRules(rules []Rule, f iddl.StateFlags, base Paint) (Paint, string) {
	for _, rule := range rules {
		if rule.When(f) {
			return rule.Apply(base), rule.Name
		}
	}
	return base, ""
}

func neutralForeground(p iddl.Prominence) string {
	switch p {
	case iddl.ProminenceSubtle:
		return strategy.ContentSubtle
	case iddl.ProminenceNone, iddl.ProminenceHidden:
		return strategy.ContentMuted
	default:
		return strategy.ContentDefault
	}
}
