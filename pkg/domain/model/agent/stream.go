package agent

import "strings"

// FallbackText is sent when the agent produced no visible output, so that a
// triggering event always gets a reply.
const FallbackText = "(no response)"

// Stream is a lazy, finite, consume-once sequence of response chunks produced
// by a single StreamQuery call. It is not re-iterable: once Next returns
// false, the stream is exhausted and Err reports any failure that ended it.
type Stream interface {
	// Next advances to the next chunk. It returns false when the stream is
	// exhausted or failed.
	Next() bool

	// Chunk returns the current chunk. Only valid after Next returned true.
	Chunk() Chunk

	// Err returns the error that terminated the stream, if any.
	Err() error
}

// NewStream returns a Stream over a fixed set of chunks. Agents that produce
// their whole output in one shot can use this instead of a custom Stream.
func NewStream(chunks ...Chunk) Stream {
	return &sliceStream{chunks: chunks}
}

// ErrStream returns a Stream that yields no chunks and fails with err.
func ErrStream(err error) Stream {
	return &sliceStream{err: err}
}

type sliceStream struct {
	chunks []Chunk
	pos    int
	cur    Chunk
	err    error
}

func (s *sliceStream) Next() bool {
	if s.err != nil || s.pos >= len(s.chunks) {
		return false
	}
	s.cur = s.chunks[s.pos]
	s.pos++
	return true
}

func (s *sliceStream) Chunk() Chunk {
	return s.cur
}

func (s *sliceStream) Err() error {
	return s.err
}

// CollectText consumes the stream fully and joins the extracted text of every
// chunk in emission order with no separator. The stream cannot be reused
// afterwards.
func CollectText(s Stream) (string, error) {
	var sb strings.Builder
	for s.Next() {
		sb.WriteString(s.Chunk().ExtractText())
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
