package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

// SendRunSummary reports one finished company scrape.
func (b *Bot) SendRunSummary(companyName string, postCount int, filePath string) error {
	text := fmt.Sprintf(
		"✅ <b>%s</b>\n"+
			"📦 %d posts captured\n"+
			"📁 %s",
		companyName, postCount, filePath,
	)
	return b.send(text)
}

func (b *Bot) SendError(errReq error) error {
	return b.send(fmt.Sprintf("❌ <b>Scrape failed</b>:\n%v", errReq))
}

func (b *Bot) send(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := b.api.Send(msg)
	return err
}
