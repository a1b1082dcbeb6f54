package agent_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/inari/pkg/domain/model/agent"
)

func TestExtractText(t *testing.T) {
	t.Run("prefers plain text", func(t *testing.T) {
		chunk := agent.TextChunk("hello")
		gt.Equal(t, chunk.ExtractText(), "hello")
	})

	t.Run("joins structured content parts", func(t *testing.T) {
		chunk := agent.ContentChunk("foo", "bar")
		gt.Equal(t, chunk.ExtractText(), "foobar")
	})

	t.Run("renders raw payloads with their string form", func(t *testing.T) {
		chunk := agent.RawChunk(map[string]string{"k": "v"})
		gt.Equal(t, chunk.ExtractText(), "map[k:v]")
	})

	t.Run("empty chunk yields empty string", func(t *testing.T) {
		var chunk agent.Chunk
		gt.Equal(t, chunk.ExtractText(), "")
	})
}

func TestCollectText(t *testing.T) {
	t.Run("concatenates chunks in order without separators", func(t *testing.T) {
		s := agent.NewStream(
			agent.TextChunk("Hello"),
			agent.TextChunk(" "),
			agent.TextChunk("world"),
		)
		text, err := agent.CollectText(s)
		gt.NoError(t, err)
		gt.Equal(t, text, "Hello world")
	})

	t.Run("mixes chunk shapes", func(t *testing.T) {
		s := agent.NewStream(
			agent.TextChunk("a"),
			agent.ContentChunk("b", "c"),
			agent.RawChunk(42),
		)
		text, err := agent.CollectText(s)
		gt.NoError(t, err)
		gt.Equal(t, text, "abc42")
	})

	t.Run("empty stream yields empty string", func(t *testing.T) {
		text, err := agent.CollectText(agent.NewStream())
		gt.NoError(t, err)
		gt.Equal(t, text, "")
	})

	t.Run("returns the stream error", func(t *testing.T) {
		wantErr := errors.New("stream interrupted")
		_, err := agent.CollectText(agent.ErrStream(wantErr))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, wantErr))
	})
}

func TestQueryValidate(t *testing.T) {
	t.Run("accepts a populated query", func(t *testing.T) {
		q := &agent.Query{Message: "hi", UserID: "u1"}
		gt.NoError(t, q.Validate())
	})

	t.Run("rejects an empty message", func(t *testing.T) {
		q := &agent.Query{UserID: "u1"}
		err := q.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, agent.ErrEmptyMessage))
	})
}
