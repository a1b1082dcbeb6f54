package slack_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/inari/pkg/domain/model/slack"
)

func TestParseMention(t *testing.T) {
	t.Run("extracts a single mention with its trailing message", func(t *testing.T) {
		mentions := slack.ParseMention("<@U12345BOT> hello there")
		gt.A(t, mentions).Length(1)
		gt.Equal(t, mentions[0].UserID, "U12345BOT")
		gt.Equal(t, mentions[0].Message, "hello there")
	})

	t.Run("extracts multiple mentions", func(t *testing.T) {
		mentions := slack.ParseMention("<@U111> ask <@U222> about it")
		gt.A(t, mentions).Length(2)
		gt.Equal(t, mentions[0].UserID, "U111")
		gt.Equal(t, mentions[1].UserID, "U222")
		gt.Equal(t, mentions[1].Message, "about it")
	})

	t.Run("returns nil for plain text", func(t *testing.T) {
		gt.A(t, slack.ParseMention("no mentions here")).Length(0)
	})

	t.Run("ignores malformed mention tokens", func(t *testing.T) {
		gt.A(t, slack.ParseMention("<@> <@lowercase>")).Length(0)
	})
}

func TestStripMention(t *testing.T) {
	t.Run("removes the bot mention and trims", func(t *testing.T) {
		got := slack.StripMention("<@U12345BOT> what is up", "U12345BOT")
		gt.Equal(t, got, "what is up")
	})

	t.Run("removes repeated mention tokens", func(t *testing.T) {
		got := slack.StripMention("<@U12345BOT> hey <@U12345BOT>", "U12345BOT")
		gt.Equal(t, got, "hey")
	})

	t.Run("keeps mentions of other users", func(t *testing.T) {
		got := slack.StripMention("<@U12345BOT> ping <@U999>", "U12345BOT")
		gt.Equal(t, got, "ping <@U999>")
	})

	t.Run("bare mention becomes empty", func(t *testing.T) {
		got := slack.StripMention("<@U12345BOT>", "U12345BOT")
		gt.Equal(t, got, "")
	})
}
