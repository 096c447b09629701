package bot

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/turkuspot/spotbot/internal/domain"
	"github.com/turkuspot/spotbot/internal/flow"
)

// Bot connects the wizard engine to the Telegram transport. It implements
// flow.Renderer for the outbound side and translates inbound updates into
// flow events.
type Bot struct {
	api    *tgbotapi.BotAPI
	engine *flow.Engine
}

// New creates a new Bot
func New(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot api: %w", err)
	}
	return &Bot{api: api}, nil
}

// SetEngine attaches the wizard engine. The engine needs the bot as its
// renderer, so wiring happens in two steps.
func (b *Bot) SetEngine(engine *flow.Engine) {
	b.engine = engine
}

// Start begins processing updates. Blocks until Stop is called.
func (b *Bot) Start() {
	log.Printf("Authorized on account %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	for update := range updates {
		go b.handleUpdate(update)
	}
}

// Stop stops receiving updates
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		cq := update.CallbackQuery
		if cq.Message == nil {
			return
		}
		b.engine.HandleEvent(flow.Event{
			ChatID:     cq.Message.Chat.ID,
			ExternalID: strconv.FormatInt(cq.From.ID, 10),
			Callback: &flow.Callback{
				ID:        cq.ID,
				MessageID: cq.Message.MessageID,
				Data:      cq.Data,
			},
		})
	case update.Message != nil:
		msg := update.Message
		if msg.From == nil {
			return
		}
		ev := flow.Event{
			ChatID:     msg.Chat.ID,
			ExternalID: strconv.FormatInt(msg.From.ID, 10),
		}
		switch {
		case msg.IsCommand():
			ev.Command = msg.Command()
		case msg.Venue != nil:
			ev.Location = &domain.Location{
				Latitude:     msg.Venue.Location.Latitude,
				Longitude:    msg.Venue.Location.Longitude,
				HasCoords:    true,
				VenueTitle:   msg.Venue.Title,
				VenueAddress: msg.Venue.Address,
			}
		case msg.Location != nil:
			ev.Location = &domain.Location{
				Latitude:  msg.Location.Latitude,
				Longitude: msg.Location.Longitude,
				HasCoords: true,
			}
		case msg.Text != "":
			ev.Text = msg.Text
		}
		// photos, stickers and other payloads are forwarded with no
		// content so the wizard can re-prompt where input was expected
		b.engine.HandleEvent(ev)
	}
}

// SendText implements flow.Renderer
func (b *Bot) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendOptions implements flow.Renderer
func (b *Bot) SendOptions(chatID int64, text string, options []flow.Option) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard(options)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send options: %w", err)
	}
	return nil
}

// EditOptions implements flow.Renderer
func (b *Bot) EditOptions(chatID int64, messageID int, options []flow.Option) error {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, keyboard(options))
	if _, err := b.api.Send(edit); err != nil {
		return fmt.Errorf("failed to edit options: %w", err)
	}
	return nil
}

// ClearOptions implements flow.Renderer
func (b *Bot) ClearOptions(chatID int64, messageID int) error {
	markup := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, markup)
	if _, err := b.api.Send(edit); err != nil {
		return fmt.Errorf("failed to clear options: %w", err)
	}
	return nil
}

// AnswerCallback implements flow.Renderer
func (b *Bot) AnswerCallback(callbackID, text string) error {
	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := b.api.Request(callback); err != nil {
		return fmt.Errorf("failed to answer callback: %w", err)
	}
	return nil
}

func keyboard(options []flow.Option) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for _, opt := range options {
		var button tgbotapi.InlineKeyboardButton
		if opt.URL != "" {
			button = tgbotapi.NewInlineKeyboardButtonURL(opt.Label, opt.URL)
		} else {
			button = tgbotapi.NewInlineKeyboardButtonData(opt.Label, opt.Data)
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
