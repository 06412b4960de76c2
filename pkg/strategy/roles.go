package strategy

import "github.com/matzehuels/iddl/pkg/iddl"

// Category groups roles that share visual treatment.
type Category string

// Role categories.
const (
	CategoryAction     Category = "action"     // buttons, tabs, options
	CategoryInput      Category = "input"      // editable fields
	CategoryContainer  Category = "container"  // cards and groups
	CategoryOverlay    Category = "overlay"    // modals, popovers, toasts
	CategoryStructure  Category = "structure"  // page chrome: headers, sidebars, bars
	CategoryCollection Category = "collection" // lists, tables, trees
	CategoryText       Category = "text"       // titles, headings, body copy, labels
	CategoryMedia      Category = "media"      // images, avatars, canvases
	CategoryContent    Category = "content"    // everything else
)

// Categories lists every category.
var Categories = []Category{
	CategoryAction, CategoryInput, CategoryContainer, CategoryOverlay, CategoryStructure,
	CategoryCollection, CategoryText, CategoryMedia, CategoryContent,
}

// Tier is how a node separates itself from its surroundings.
type Tier string

// Separation tiers, weakest first.
const (
	TierGhost       Tier = "ghost"        // no fill and no border, separated by gap only
	TierSurfaceFill Tier = "surface-fill" // own background fill
	TierOutlined    Tier = "outlined"     // border line
	TierElevated    Tier = "elevated"     // fill plus shadow
)

// Tiers lists every tier, weakest first.
var Tiers = []Tier{TierGhost, TierSurfaceFill, TierOutlined, TierElevated}

// Separation returns the separation strategy a tier implies.
func (t Tier) Separation() iddl.Separation {
	switch t {
	case TierSurfaceFill, TierElevated:
		return iddl.SeparationSurface
	case TierOutlined:
		return iddl.SeparationBorder
	default:
		return iddl.SeparationGap
	}
}

// TextStyle is the typographic role of a text node.
type TextStyle string

// Text styles.
const (
	TextNone    TextStyle = ""
	TextTitle   TextStyle = "Title"
	TextHeading TextStyle = "Heading"
	TextBody    TextStyle = "Body"
	TextLabel   TextStyle = "Label"
)

// TextStyles lists every text style with a table row.
var TextStyles = []TextStyle{TextTitle, TextHeading, TextBody, TextLabel}

// Page roles with special treatment.
const (
	PageRoleApplication = "Application"
	PageRoleImmersive   = "Immersive"
)

// Padding is a base padding in rem.
type Padding struct {
	X float64 `mapstructure:"x" json:"x" yaml:"x" toml:"x"`
	Y float64 `mapstructure:"y" json:"y" yaml:"y" toml:"y"`
}

// Border positions.
const (
	BorderAll    = "all"
	BorderTop    = "top"
	BorderBottom = "bottom"
	BorderLeft   = "left"
	BorderRight  = "right"
	BorderNone   = "none"
)

// BorderPositions lists every border position.
var BorderPositions = []string{BorderAll, BorderTop, BorderBottom, BorderLeft, BorderRight, BorderNone}

var roleCategories = map[string]Category{
	DefaultKey: CategoryContent,

	"Button": CategoryAction, "IconButton": CategoryAction, "Action": CategoryAction,
	"Link": CategoryAction, "Tab": CategoryAction, "Chip": CategoryAction,
	"Option": CategoryAction, "MenuItem": CategoryAction, "Toggle": CategoryAction,

	"Input": CategoryInput, "TextField": CategoryInput, "Select": CategoryInput,
	"TextArea": CategoryInput, "Combobox": CategoryInput, "SearchField": CategoryInput,

	"Card": CategoryContainer, "Container": CategoryContainer, "Section": CategoryContainer,
	"Group": CategoryContainer, "FieldGroup": CategoryContainer, "Form": CategoryContainer,
	"Alert": CategoryContainer, "Callout": CategoryContainer, "Stats": CategoryContainer,
	"ImageCard": CategoryContainer, "MediaContainer": CategoryContainer,

	"Modal": CategoryOverlay, "Dialog": CategoryOverlay, "DialogContent": CategoryOverlay,
	"Popover": CategoryOverlay, "Tooltip": CategoryOverlay, "Toast": CategoryOverlay,
	"Drawer": CategoryOverlay, "Menu": CategoryOverlay, "FloatingToolbar": CategoryOverlay,

	"Header": CategoryStructure, "Footer": CategoryStructure, "Bar": CategoryStructure,
	"Toolbar": CategoryStructure, "Sidebar": CategoryStructure, "PrimarySidebar": CategoryStructure,
	"SecondarySidebar": CategoryStructure, "Aside": CategoryStructure, "Nav": CategoryStructure,
	"Panel": CategoryStructure, "Rail": CategoryStructure, "Stage": CategoryStructure,
	"ActivityBar": CategoryStructure, "StatusBar": CategoryStructure,

	"List": CategoryCollection, "ListItem": CategoryCollection, "Table": CategoryCollection,
	"TableRow": CategoryCollection, "TableCell": CategoryCollection, "TabList": CategoryCollection,
	"TreeView": CategoryCollection, "TreeItem": CategoryCollection, "Grid": CategoryCollection,
	"GridItem": CategoryCollection, "Divider": CategoryCollection, "Separator": CategoryCollection,

	"Title": CategoryText, "Heading": CategoryText, "SectionHeader": CategoryText,
	"Body": CategoryText, "Text": CategoryText, "Paragraph": CategoryText,
	"Label": CategoryText, "Caption": CategoryText, "Overline": CategoryText,
	"Code": CategoryText, "Terminal": CategoryText,

	"Avatar": CategoryMedia, "Image": CategoryMedia, "Icon": CategoryMedia,
	"Canvas": CategoryMedia, "Video": CategoryMedia,
}

var roleTextStyles = map[string]TextStyle{
	DefaultKey: TextNone,

	"Title":   TextTitle,
	"Heading": TextHeading, "SectionHeader": TextHeading,
	"Body": TextBody, "Text": TextBody, "Paragraph": TextBody, "Code": TextBody, "Terminal": TextBody,
	"Label": TextLabel, "Caption": TextLabel, "Overline": TextLabel,
}

// tierRow builds a prominence → tier table. Prominences left out fall back
// to the Standard entry.
func tierRow(category Category, standard Tier, overrides map[iddl.Prominence]Tier) Table[iddl.Prominence, Tier] {
	m := map[iddl.Prominence]Tier{iddl.ProminenceStandard: standard}
	for p, t := range overrides {
		m[p] = t
	}
	return MustTable("separation."+string(category), iddl.ProminenceStandard, m)
}

var separationTiers = map[Category]Table[iddl.Prominence, Tier]{
	CategoryAction: tierRow(CategoryAction, TierGhost, map[iddl.Prominence]Tier{
		iddl.ProminenceHero: TierSurfaceFill, iddl.ProminenceStrong: TierSurfaceFill,
		iddl.ProminenceElevated: TierElevated,
	}),
	CategoryInput: tierRow(CategoryInput, TierOutlined, map[iddl.Prominence]Tier{
		iddl.ProminenceHidden: TierGhost,
	}),
	CategoryContainer: tierRow(CategoryContainer, TierSurfaceFill, map[iddl.Prominence]Tier{
		iddl.ProminenceHero: TierElevated, iddl.ProminenceStrong: TierElevated,
		iddl.ProminenceElevated: TierElevated, iddl.ProminenceSubtle: TierOutlined,
		iddl.ProminenceNone: TierGhost, iddl.ProminenceHidden: TierGhost,
	}),
	CategoryOverlay: tierRow(CategoryOverlay, TierElevated, map[iddl.Prominence]Tier{
		iddl.ProminenceHidden: TierGhost,
	}),
	CategoryStructure: tierRow(CategoryStructure, TierOutlined, map[iddl.Prominence]Tier{
		iddl.ProminenceNone: TierGhost, iddl.ProminenceHidden: TierGhost,
	}),
	CategoryCollection: tierRow(CategoryCollection, TierOutlined, map[iddl.Prominence]Tier{
		iddl.ProminenceHero: TierSurfaceFill, iddl.ProminenceSubtle: TierGhost,
		iddl.ProminenceNone: TierGhost, iddl.ProminenceHidden: TierGhost,
	}),
	CategoryText:  tierRow(CategoryText, TierGhost, nil),
	CategoryMedia: tierRow(CategoryMedia, TierGhost, map[iddl.Prominence]Tier{iddl.ProminenceElevated: TierElevated}),
	CategoryContent: tierRow(CategoryContent, TierGhost, map[iddl.Prominence]Tier{
		iddl.ProminenceElevated: TierElevated,
	}),
}
