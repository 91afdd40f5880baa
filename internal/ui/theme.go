package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// The TUI row delegate and the quit summary both pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Quantity string
	CornerTL, CornerTR, CornerBL, CornerBR         string
	H, V                                           string
	SymAdd, SymEdit, SymDelete, SymEditing         string
	Name                                           string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Quantity: "\033[93m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymAdd: "✚", SymEdit: "✎", SymDelete: "✖", SymEditing: "✱",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Name:  "mono",
			Title: "", Muted: "", Accent: "", Success: "", Error: "", Quantity: "",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymAdd: "+", SymEdit: "e", SymDelete: "x", SymEditing: "*",
		}
	default: // classic
		current = Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Quantity: fgYellow,
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymAdd: "+", SymEdit: "✎", SymDelete: "✗", SymEditing: "•",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
