package markdown

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidArgument is returned when the input text or the style attributes
// cannot be formatted at all. Malformed markup never produces it.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	DefaultFontFamily = "system"
	DefaultFontSize   = 14.0
)

// Attributes describes how a range of text is displayed. The zero value is
// not valid: Family and Size must be set.
type Attributes struct {
	Family         string
	Size           float64 // Point size
	Bold           bool
	Italic         bool
	Strikethrough  bool
	Underline      bool
	Foreground     string  // #rrggbb or #rgb, empty means the renderer default
	BaselineOffset float64 // Points above the baseline
	Link           string
}

// DefaultAttributes returns the platform default font at the default size
func DefaultAttributes() Attributes {
	return Attributes{
		Family: DefaultFontFamily,
		Size:   DefaultFontSize,
	}
}

// Validate checks the attributes are usable as a base style
func (a Attributes) Validate() error {
	if strings.TrimSpace(a.Family) == "" {
		return fmt.Errorf("font family is empty: %w", ErrInvalidArgument)
	}
	if !isFinite(a.Size) || a.Size <= 0 {
		return fmt.Errorf("font size %v: %w", a.Size, ErrInvalidArgument)
	}
	if !isFinite(a.BaselineOffset) {
		return fmt.Errorf("baseline offset %v: %w", a.BaselineOffset, ErrInvalidArgument)
	}
	if err := validateColor(a.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	return nil
}

func validateColor(hex string) error {
	if hex == "" {
		return nil
	}
	if _, err := colorful.Hex(hex); err != nil {
		return fmt.Errorf("color %q: %w", hex, ErrInvalidArgument)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Traits is a set of symbolic font traits
type Traits uint32

// Bit values follow the symbolic trait layout of common font descriptors.
// Only TraitItalic and TraitBold affect formatting.
const (
	TraitItalic       Traits = 1 << 0
	TraitBold         Traits = 1 << 1
	TraitExpanded     Traits = 1 << 5
	TraitCondensed    Traits = 1 << 6
	TraitMonoSpace    Traits = 1 << 10
	TraitVertical     Traits = 1 << 11
	TraitUIOptimized  Traits = 1 << 12
	TraitTightLeading Traits = 1 << 15
	TraitLooseLeading Traits = 1 << 16
)

// FontDescriptor is the font-descriptor shaped input accepted by
// FormatWithDescriptor
type FontDescriptor struct {
	Family string
	Size   float64
	Traits Traits
}

// AttributesFromDescriptor extracts family, size and the bold and italic
// traits from desc. Every other trait is dropped.
func AttributesFromDescriptor(desc FontDescriptor) (Attributes, error) {
	attrs := Attributes{
		Family: desc.Family,
		Size:   desc.Size,
		Bold:   desc.Traits&TraitBold != 0,
		Italic: desc.Traits&TraitItalic != 0,
	}
	if err := attrs.Validate(); err != nil {
		return Attributes{}, fmt.Errorf("font descriptor: %w", err)
	}
	return attrs, nil
}
