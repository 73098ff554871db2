package strtab

// Color is a console color attached to a cell by an export-color
// directive. ColorDefault renders without any escape codes. Colors only
// affect console output; file exports ignore them.
type Color int

const (
	ColorDefault Color = iota // black, the terminal default
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorGrey
	ColorWhite
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorBlue:
		return "Blue"
	case ColorYellow:
		return "Yellow"
	case ColorGrey:
		return "Grey"
	case ColorWhite:
		return "White"
	default:
		return "Black"
	}
}

// letter returns the directive tag for the color. The default color has
// no tag; it cannot be requested explicitly.
func (c Color) letter() string {
	switch c {
	case ColorRed:
		return "r"
	case ColorGreen:
		return "g"
	case ColorBlue:
		return "b"
	case ColorYellow:
		return "y"
	case ColorGrey:
		return "x"
	case ColorWhite:
		return "w"
	default:
		return ""
	}
}

func colorForLetter(b byte) (Color, bool) {
	switch b {
	case 'r':
		return ColorRed, true
	case 'g':
		return ColorGreen, true
	case 'b':
		return ColorBlue, true
	case 'y':
		return ColorYellow, true
	case 'x':
		return ColorGrey, true
	case 'w':
		return ColorWhite, true
	default:
		return ColorDefault, false
	}
}
