package flow

import "github.com/turkuspot/spotbot/internal/domain"

// Option is one button offered to the user. Data carries callback data for
// ordinary buttons; URL makes it a link button instead.
type Option struct {
	Label string
	Data  string
	URL   string
}

// Callback is a button press arriving from the chat transport.
type Callback struct {
	ID        string
	MessageID int
	Data      string
}

// Event is one inbound update, normalized away from the transport. Exactly
// one of Command, Text, Location or Callback is meaningful.
type Event struct {
	ChatID     int64
	ExternalID string
	Command    string
	Text       string
	Location   *domain.Location
	Callback   *Callback
}

// Renderer is the outbound side of the conversation. The chat transport
// implements it; tests substitute a fake.
type Renderer interface {
	SendText(chatID int64, text string) error
	SendOptions(chatID int64, text string, options []Option) error
	EditOptions(chatID int64, messageID int, options []Option) error
	ClearOptions(chatID int64, messageID int) error
	AnswerCallback(callbackID, text string) error
}
