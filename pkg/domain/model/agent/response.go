package agent

import (
	"fmt"
	"strings"
)

// Part is one ordered element of structured chunk content.
type Part struct {
	Text string `json:"text"`
}

// Content is structured chunk content with an ordered sequence of parts.
type Content struct {
	Parts []Part `json:"parts"`
}

// Chunk is one unit of streamed agent output. Exactly one of Text, Content or
// Raw is expected to be set; Text takes precedence over Content, and Content
// over Raw, when extracting the reply text.
type Chunk struct {
	Text    string   `json:"text,omitempty"`
	Content *Content `json:"content,omitempty"`
	Raw     any      `json:"-"`
}

// TextChunk wraps a plain string as a chunk
func TextChunk(text string) Chunk {
	return Chunk{Text: text}
}

// ContentChunk wraps structured content as a chunk
func ContentChunk(parts ...string) Chunk {
	content := &Content{Parts: make([]Part, 0, len(parts))}
	for _, p := range parts {
		content.Parts = append(content.Parts, Part{Text: p})
	}
	return Chunk{Content: content}
}

// RawChunk wraps an arbitrary value as a chunk. Its text is the value's
// string coercion.
func RawChunk(v any) Chunk {
	return Chunk{Raw: v}
}

// ExtractText returns the text this chunk contributes to the reply. Structured
// content contributes each part's text in part order with no separator.
func (c Chunk) ExtractText() string {
	switch {
	case c.Text != "":
		return c.Text

	case c.Content != nil:
		var sb strings.Builder
		for _, p := range c.Content.Parts {
			sb.WriteString(p.Text)
		}
		return sb.String()

	case c.Raw != nil:
		return fmt.Sprint(c.Raw)

	default:
		return ""
	}
}
