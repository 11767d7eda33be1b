package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownOperation is returned by ParseOperation for names it does not recognize.
var ErrUnknownOperation = errors.New("unknown formatting operation")

// Kind identifies a formatting operation.
type Kind string

const (
	KindBold    Kind = "bold"
	KindItalic  Kind = "italic"
	KindLink    Kind = "link"
	KindImage   Kind = "image"
	KindHeading Kind = "heading"
)

// Heading levels accepted by the formatter.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// Operation is a formatting command. Level is only meaningful for headings.
type Operation struct {
	Kind  Kind
	Level int
}

// Bold returns the bold operation.
func Bold() Operation { return Operation{Kind: KindBold} }

// Italic returns the italic operation.
func Italic() Operation { return Operation{Kind: KindItalic} }

// Link returns the link operation.
func Link() Operation { return Operation{Kind: KindLink} }

// Image returns the image operation.
func Image() Operation { return Operation{Kind: KindImage} }

// Heading returns a heading operation for the given level.
// Levels outside 1-6 are kept as-is and make the operation a no-op.
func Heading(level int) Operation { return Operation{Kind: KindHeading, Level: level} }

// Valid reports whether the operation would change text.
func (o Operation) Valid() bool {
	switch o.Kind {
	case KindBold, KindItalic, KindLink, KindImage:
		return true
	case KindHeading:
		return o.Level >= MinHeadingLevel && o.Level <= MaxHeadingLevel
	default:
		return false
	}
}

func (o Operation) String() string {
	if o.Kind == KindHeading {
		return fmt.Sprintf("heading(%d)", o.Level)
	}
	return string(o.Kind)
}

// ParseOperation maps a user-facing name to an Operation.
// Accepted names are bold, italic, link, image, heading (using level) and h1 through h6.
func ParseOperation(name string, level int) (Operation, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "bold", "b":
		return Bold(), nil
	case "italic", "i":
		return Italic(), nil
	case "link", "a":
		return Link(), nil
	case "image", "img":
		return Image(), nil
	case "heading", "h":
		return Heading(level), nil
	}

	if rest, ok := strings.CutPrefix(name, "h"); ok {
		if n, err := strconv.Atoi(rest); err == nil {
			return Heading(n), nil
		}
	}

	return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}
