package models

import (
	"encoding/json"
	"fmt"
)

// ContentType is the discriminator written as the "type" key of every content block.
type ContentType int

const (
	ContentMarkdown ContentType = iota + 1
	ContentCode
	ContentTip
	ContentFold
)

var contentTypes = newEnumTable[ContentType]("content type", "markdown", "code", "tip", "fold")

// ContentTypes lists every block variant in declaration order.
func ContentTypes() []ContentType { return contentTypes.values() }

func (c ContentType) String() string { return contentTypes.name(c) }

func (c ContentType) IsValid() bool { return contentTypes.valid(c) }

func (c ContentType) MarshalText() ([]byte, error) { return contentTypes.marshalText(c) }

func (c *ContentType) UnmarshalJSON(data []byte) error {
	v, err := contentTypes.unmarshalJSON(data)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// TipLevel is the severity of a tip callout.
type TipLevel int

const (
	TipLevelTip TipLevel = iota + 1
	TipLevelWarning
	TipLevelError
)

// Wire form is "warning"; "warn" is rejected.
var tipLevels = newEnumTable[TipLevel]("tip level", "tip", "warning", "error")

func TipLevels() []TipLevel { return tipLevels.values() }

func (l TipLevel) String() string { return tipLevels.name(l) }

func (l TipLevel) IsValid() bool { return tipLevels.valid(l) }

func (l TipLevel) MarshalText() ([]byte, error) { return tipLevels.marshalText(l) }

func (l *TipLevel) UnmarshalJSON(data []byte) error {
	v, err := tipLevels.unmarshalJSON(data)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Content is implemented only by the four block variants below.
type Content interface {
	Type() ContentType
	isContent()
}

// Markdown holds raw markdown/MDX text.
type Markdown struct {
	Content string `json:"content"`
}

// Tip is a callout box.
type Tip struct {
	Level   TipLevel `json:"level" validate:"enum"`
	Content string   `json:"content"`
}

// CodeBlock is one language tab of a Code block.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// Code groups the same snippet in several languages.
type Code struct {
	Metadata []CodeBlock `json:"metadata"`
}

// Fold is a collapsible section.
type Fold struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (Markdown) Type() ContentType { return ContentMarkdown }
func (Tip) Type() ContentType      { return ContentTip }
func (Code) Type() ContentType     { return ContentCode }
func (Fold) Type() ContentType     { return ContentFold }

func (Markdown) isContent() {}
func (Tip) isContent()      {}
func (Code) isContent()     {}
func (Fold) isContent()     {}

// ContentBlock is one element of Post.Contents. Its JSON form is the variant's
// fields flattened next to a "type" key derived from the variant.
type ContentBlock struct {
	Content Content
}

// Block wraps a variant value.
func Block(c Content) ContentBlock {
	return ContentBlock{Content: c}
}

// Type returns the discriminator, or zero for an empty block.
func (b ContentBlock) Type() ContentType {
	if b.Content == nil {
		return 0
	}
	return b.Content.Type()
}

// blockWire is the flattened JSON shape shared by all variants. Pointer fields let
// encoding emit only the active variant's keys and let decoding tell an absent key
// from an empty one.
type blockWire struct {
	Type     *string      `json:"type"`
	Level    *TipLevel    `json:"level,omitempty"`
	Title    *string      `json:"title,omitempty"`
	Content  *string      `json:"content,omitempty"`
	Metadata *[]CodeBlock `json:"metadata,omitempty"`
}

func (b ContentBlock) MarshalJSON() ([]byte, error) {
	var w blockWire
	switch v := b.Content.(type) {
	case Markdown:
		w.Content = &v.Content
	case Tip:
		if !v.Level.IsValid() {
			return nil, &ValidationError{Field: "level", Reason: fmt.Sprintf("tip level %d has no name", int(v.Level))}
		}
		w.Level = &v.Level
		w.Content = &v.Content
	case Code:
		metadata := v.Metadata
		if metadata == nil {
			metadata = []CodeBlock{}
		}
		w.Metadata = &metadata
	case Fold:
		w.Title = &v.Title
		w.Content = &v.Content
	case nil:
		return nil, &ValidationError{Field: "contents", Reason: "block has no variant"}
	default:
		return nil, &ValidationError{Field: "contents", Reason: fmt.Sprintf("unsupported block variant %T", v)}
	}
	name := b.Content.Type().String()
	w.Type = &name
	return json.Marshal(w)
}

func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	var w blockWire
	if err := json.Unmarshal(data, &w); err != nil {
		return asDecodeError(err)
	}
	if w.Type == nil {
		return &MissingFieldError{Field: "type"}
	}
	// The raw string is kept so an unknown tag is reported as an unknown variant
	// rather than a generic enum error.
	typ, err := contentTypes.parse(*w.Type)
	if err != nil {
		return &UnknownVariantError{Type: *w.Type}
	}

	missing := func(field string) error {
		return &MissingFieldError{Variant: typ.String(), Field: field}
	}
	switch typ {
	case ContentMarkdown:
		if w.Content == nil {
			return missing("content")
		}
		b.Content = Markdown{Content: *w.Content}
	case ContentTip:
		if w.Level == nil {
			return missing("level")
		}
		if w.Content == nil {
			return missing("content")
		}
		b.Content = Tip{Level: *w.Level, Content: *w.Content}
	case ContentCode:
		if w.Metadata == nil {
			return missing("metadata")
		}
		code := Code{}
		if len(*w.Metadata) > 0 {
			code.Metadata = *w.Metadata
		}
		b.Content = code
	case ContentFold:
		if w.Title == nil {
			return missing("title")
		}
		if w.Content == nil {
			return missing("content")
		}
		b.Content = Fold{Title: *w.Title, Content: *w.Content}
	}
	return nil
}
