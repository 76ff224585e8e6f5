package profile

import "strings"

// BannerStyles lists the FIGlet fonts offered for the banner, in menu order.
var BannerStyles = []string{
	"standard",
	"3-d",
	"banner3-D",
	"starwars",
	"slant",
}

// Colors lists the selectable color names, in menu order.
var Colors = []string{
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"white",
}

// PromptStyles holds the labels of the prompt layouts, indexed like Config.Style.
var PromptStyles = []string{
	"Simple: name$",
	"Colored: name and $",
	"Doctor style: Doctor@name>",
	"Advanced: [Doctor name] #",
	"Plain: $",
}

// colorCodes maps color names to ANSI SGR foreground codes.
var colorCodes = map[string]int{
	"black":   30,
	"red":     31,
	"green":   32,
	"yellow":  33,
	"blue":    34,
	"magenta": 35,
	"cyan":    36,
	"white":   37,
}

// ColorCode returns the ANSI foreground code for name (case-insensitive).
// Unknown names fall back to green's code.
func ColorCode(name string) int {
	if code, ok := colorCodes[strings.ToLower(name)]; ok {
		return code
	}
	return colorCodes[DefaultColor]
}

// ANSIIndex returns the 0-7 palette index for name, as used by lipgloss.
func ANSIIndex(name string) int {
	return ColorCode(name) - 30
}

// IsColor reports whether name is one of the selectable Colors.
func IsColor(name string) bool {
	for _, c := range Colors {
		if c == name {
			return true
		}
	}
	return false
}

// Segment is one run of prompt text. An empty Color means uncolored text.
type Segment struct {
	Text  string
	Color string
}

// Colored reports whether the segment carries a color.
func (s Segment) Colored() bool { return s.Color != "" }

// PromptSegments lays out the prompt for the configured style. Both the
// shell script and the on-screen preview render from this table.
// Out-of-range styles use layout 0.
func (c Config) PromptSegments() []Segment {
	name := c.DisplayName()
	color := c.Color
	if color == "" {
		color = DefaultColor
	}

	switch c.Style {
	case 1:
		return []Segment{
			{Text: name, Color: color},
			{Text: ""}, // reset between the name and the dollar
			{Text: "$", Color: color},
			{Text: " "},
		}
	case 2:
		return []Segment{
			{Text: "Doctor@", Color: "green"},
			{Text: name, Color: color},
			{Text: "> "},
		}
	case 3:
		return []Segment{
			{Text: "[Doctor ", Color: "blue"},
			{Text: name, Color: color},
			{Text: "] #", Color: "blue"},
			{Text: " "},
		}
	case 4:
		return []Segment{
			{Text: "$ "},
		}
	default:
		return []Segment{
			{Text: name, Color: color},
			{Text: "$ "},
		}
	}
}
