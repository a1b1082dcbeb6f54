package discord

import "fmt"

// InteractionType is the inbound interaction kind
type InteractionType int

const (
	InteractionPing               InteractionType = 1
	InteractionApplicationCommand InteractionType = 2
)

// ResponseType is the interaction callback kind
type ResponseType int

const (
	ResponsePong                     ResponseType = 1
	ResponseChannelMessageWithSource ResponseType = 4
)

// User is the Discord user who triggered an interaction
type User struct {
	ID string `json:"id"`
}

// Member wraps the guild member of an interaction
type Member struct {
	User *User `json:"user,omitempty"`
}

// CommandOption is one option of an application command
type CommandOption struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// CommandData is the payload of an application command interaction
type CommandData struct {
	Name    string          `json:"name"`
	Options []CommandOption `json:"options,omitempty"`
}

// Interaction is the parsed interaction envelope posted by Discord
type Interaction struct {
	Type   InteractionType `json:"type"`
	Data   *CommandData    `json:"data,omitempty"`
	Member *Member         `json:"member,omitempty"`
	User   *User           `json:"user,omitempty"`
}

// UserID returns the triggering user's ID, from the guild member in servers
// or the top-level user in DMs.
func (x *Interaction) UserID() string {
	if x.Member != nil && x.Member.User != nil {
		return x.Member.User.ID
	}
	if x.User != nil {
		return x.User.ID
	}
	return ""
}

// CommandMessage returns the message text of an application command: the
// value of the first option, coerced to its string form.
func (x *Interaction) CommandMessage() string {
	if x.Data == nil || len(x.Data.Options) == 0 {
		return ""
	}
	v := x.Data.Options[0].Value
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ResponseData is the message content of an interaction response
type ResponseData struct {
	Content string `json:"content"`
}

// InteractionResponse is the callback body returned to Discord
type InteractionResponse struct {
	Type ResponseType  `json:"type"`
	Data *ResponseData `json:"data,omitempty"`
}

// Pong is the response to a ping interaction
func Pong() *InteractionResponse {
	return &InteractionResponse{Type: ResponsePong}
}

// MessageResponse builds a channel message response
func MessageResponse(content string) *InteractionResponse {
	return &InteractionResponse{
		Type: ResponseChannelMessageWithSource,
		Data: &ResponseData{Content: content},
	}
}
