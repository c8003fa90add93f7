package markdown

import (
	"fmt"
	"unicode/utf8"
)

const defaultSuperscriptScale = 0.7

type options struct {
	linkColor        string
	superscriptScale float64
}

func defaultOptions() options {
	return options{superscriptScale: defaultSuperscriptScale}
}

// Option configures a Formatter
type Option func(*options)

// WithLinkColor sets the foreground color applied to hyperlink text
func WithLinkColor(hex string) Option {
	return func(o *options) {
		o.linkColor = hex
	}
}

// WithSuperscriptScale sets the font size multiplier for superscript text.
// It must be in (0, 1].
func WithSuperscriptScale(scale float64) Option {
	return func(o *options) {
		o.superscriptScale = scale
	}
}

// Formatter converts strings containing inline markdown into FormattedText.
//
// Recognized markup:
//
//	*italics* or _italics_
//	**bold** or __bold__
//	~~strikethrough~~
//	^superscript^
//	[link text](target)
//
// A Formatter holds no mutable state and is safe for concurrent use.
type Formatter struct {
	opts options
}

// NewFormatter creates a formatter with the given options
func NewFormatter(opts ...Option) (*Formatter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateColor(o.linkColor); err != nil {
		return nil, fmt.Errorf("link: %w", err)
	}
	if !isFinite(o.superscriptScale) || o.superscriptScale <= 0 || o.superscriptScale > 1 {
		return nil, fmt.Errorf("superscript scale %v: %w", o.superscriptScale, ErrInvalidArgument)
	}

	return &Formatter{opts: o}, nil
}

var defaultFormatter = &Formatter{opts: defaultOptions()}

// Format formats text with the default formatter
func Format(text string, attrs Attributes) (*FormattedText, error) {
	return defaultFormatter.Format(text, attrs)
}

// FormatWithDescriptor formats text with the default formatter
func FormatWithDescriptor(text string, desc FontDescriptor) (*FormattedText, error) {
	return defaultFormatter.FormatWithDescriptor(text, desc)
}

// FormatDefault formats text with the default formatter
func FormatDefault(text string) (*FormattedText, error) {
	return defaultFormatter.FormatDefault(text)
}

// Format strips the markup from text and returns the plain text together with
// the spans it described. attrs is the style of text outside any span.
//
// Malformed markup is never an error; unmatched delimiters are kept as
// literal text. An error wrapping ErrInvalidArgument is returned if text is
// not valid UTF-8 or attrs does not validate.
func (f *Formatter) Format(text string, attrs Attributes) (*FormattedText, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("text is not valid UTF-8: %w", ErrInvalidArgument)
	}
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	input := []rune(text)
	ft := build(input, scan(input))
	ft.Base = attrs
	ft.opts = f.opts
	return ft, nil
}

// FormatWithDescriptor formats text using the family, size and bold/italic
// traits of desc as the base style
func (f *Formatter) FormatWithDescriptor(text string, desc FontDescriptor) (*FormattedText, error) {
	attrs, err := AttributesFromDescriptor(desc)
	if err != nil {
		return nil, err
	}
	return f.Format(text, attrs)
}

// FormatDefault formats text using DefaultAttributes as the base style
func (f *Formatter) FormatDefault(text string) (*FormattedText, error) {
	return f.Format(text, DefaultAttributes())
}

// Merge returns base with the styles of the active spans applied. active must
// be ordered outermost first, as Spans and Run.Kinds are. Spans are applied
// innermost first so the outermost span wins any conflicting field.
func (f *Formatter) Merge(base Attributes, active []Span) Attributes {
	return f.opts.merge(base, active)
}
