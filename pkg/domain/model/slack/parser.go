package slack

import (
	"regexp"
	"strings"
)

var mentionPattern = regexp.MustCompile(`<@([A-Z0-9]+)>`)

// ParseMention extracts mention information from Slack message text. Each
// entry carries the remaining text after that mention token.
func ParseMention(text string) []Mention {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	mentions := make([]Mention, 0, len(matches))
	for _, match := range matches {
		if len(match) < 2 {
			continue
		}

		message := text
		if idx := strings.Index(message, match[0]); idx >= 0 {
			message = strings.TrimSpace(message[idx+len(match[0]):])
		}

		mentions = append(mentions, Mention{
			UserID:  match[1],
			Message: message,
		})
	}

	return mentions
}

// StripMention removes every mention token of the given user from the text
// and trims the surrounding whitespace. Used to turn "<@UBOT> hello" into the
// message actually addressed to the bot.
func StripMention(text, userID string) string {
	if userID == "" {
		return strings.TrimSpace(text)
	}
	token := "<@" + userID + ">"
	return strings.TrimSpace(strings.ReplaceAll(text, token, ""))
}
