package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"aura-ai/internal/catalog"
	"aura-ai/internal/edit"
	"aura-ai/internal/i18n"
	"aura-ai/internal/imaging"
	"aura-ai/internal/mediagroup"
	"aura-ai/internal/prompt"
	"aura-ai/internal/session"
	"aura-ai/internal/studio"
	"aura-ai/internal/telegram"
)

// Bot is the part of the Telegram client the handlers use.
type Bot interface {
	SendTyping(chatID int64)
	SendText(chatID int64, text string) error
	SendTextWithKeyboard(chatID int64, text string, keyboard telegram.InlineKeyboard) (int, error)
	EditTextWithKeyboard(chatID int64, messageID int, text string, keyboard telegram.InlineKeyboard) error
	AnswerCallback(callbackID string, text string, alert bool) error
	SendPhoto(chatID int64, imageURL string, caption string) error
	DownloadFile(ctx context.Context, fileID string) ([]byte, string, error)
}

type Options struct {
	Telegram   Bot
	Studio     *studio.Service
	Translator *i18n.Translator
	Logger     *slog.Logger
}

type Handler struct {
	tg         Bot
	studio     *studio.Service
	tr         *i18n.Translator
	logger     *slog.Logger
	aggregator *mediagroup.Aggregator
}

func New(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	tr := opts.Translator
	if tr == nil {
		tr = i18n.New(i18n.English)
	}

	return &Handler{
		tg:     opts.Telegram,
		studio: opts.Studio,
		tr:     tr,
		logger: logger,
	}
}

func (h *Handler) SetMediaGroupAggregator(ag *mediagroup.Aggregator) {
	h.aggregator = ag
}

// sessionID scopes a studio session to one user in one chat.
func sessionID(chatID int64, userID int64) string {
	return fmt.Sprintf("tg:%d:%d", chatID, userID)
}

func (h *Handler) HandleUpdate(ctx context.Context, update telegram.Update) error {
	if update.CallbackQuery != nil {
		return h.handleCallback(ctx, update.CallbackQuery)
	}
	if update.Message == nil || update.Message.From == nil {
		return nil
	}

	msg := update.Message
	chatID := msg.Chat.ID
	userID := msg.From.ID

	st, err := h.studio.Ensure(ctx, sessionID(chatID, userID), msg.From.LanguageCode)
	if err != nil {
		return err
	}

	switch {
	case msg.IsCommand():
		return h.handleCommand(ctx, st, chatID, userID, msg)
	case len(msg.Photo) > 0:
		return h.handlePhoto(ctx, st, chatID, userID, msg)
	case strings.TrimSpace(msg.Text) != "":
		return h.setPrompt(ctx, st, chatID, msg.Text)
	}
	return nil
}

// HandleMediaGroup uploads the first photo of a settled album.
func (h *Handler) HandleMediaGroup(ctx context.Context, group mediagroup.Group) {
	photo, ok := group.First()
	if !ok {
		return
	}

	st, err := h.studio.Ensure(ctx, sessionID(group.ChatID, group.UserID), group.LanguageCode)
	if err != nil {
		h.logger.Error("media group session failed", "err", err)
		return
	}
	if len(group.Photos) > 1 {
		_ = h.tg.SendText(group.ChatID, h.tr.T(st.Locale, "albumFirstPhotoOnly"))
	}
	if err := h.upload(ctx, st, group.ChatID, group.UserID, photo.FileID, photo.FileName); err != nil {
		h.logger.Error("media group processing failed", "err", err)
	}
}

func (h *Handler) handleCommand(ctx context.Context, st session.State, chatID int64, userID int64, msg *tgbotapi.Message) error {
	locale := st.Locale

	switch msg.Command() {
	case "start":
		text := h.tr.T(locale, "mainTitle") + "\n" + h.tr.T(locale, "subtitle") + "\n\n" + h.tr.T(locale, "uploadPrompt")
		return h.tg.SendText(chatID, text)
	case "help":
		return h.tg.SendText(chatID, h.tr.T(locale, "helpText"))
	case "styles":
		if st.Image == nil {
			return h.tg.SendText(chatID, h.tr.T(locale, "error_no_image"))
		}
		return h.sendPicker(chatID, userID, st, 0)
	case "prompt":
		return h.setPrompt(ctx, st, chatID, msg.CommandArguments())
	case "clear":
		st, err := h.studio.ClearSelection(ctx, st.ID)
		if err != nil {
			return h.sendError(chatID, st.Locale, err)
		}
		return h.tg.SendText(chatID, h.tr.T(st.Locale, "selectionCleared"))
	case "generate":
		return h.generate(ctx, chatID, st.ID)
	case "back":
		st, err := h.studio.Back(ctx, st.ID)
		if err != nil {
			return h.sendError(chatID, st.Locale, err)
		}
		if st.Image == nil {
			return h.tg.SendText(chatID, h.tr.T(st.Locale, "uploadPrompt"))
		}
		return h.sendPicker(chatID, userID, st, 0)
	case "lang":
		st, err := h.studio.SetLocale(ctx, st.ID, h.tr.Toggle(locale))
		if err != nil {
			return err
		}
		return h.tg.SendText(chatID, h.tr.T(st.Locale, "languageChanged"))
	default:
		return h.tg.SendText(chatID, h.tr.T(locale, "unknownCommand"))
	}
}

func (h *Handler) setPrompt(ctx context.Context, st session.State, chatID int64, text string) error {
	text = strings.TrimSpace(text)
	st, err := h.studio.SetCustomPrompt(ctx, st.ID, text)
	if err != nil {
		return h.sendError(chatID, st.Locale, err)
	}
	if text == "" {
		return h.tg.SendText(chatID, h.tr.T(st.Locale, "promptCleared"))
	}
	return h.tg.SendText(chatID, h.tr.T(st.Locale, "promptSaved"))
}

func (h *Handler) handlePhoto(ctx context.Context, st session.State, chatID int64, userID int64, msg *tgbotapi.Message) error {
	// the last size is the largest
	photo := msg.Photo[len(msg.Photo)-1]
	name := fmt.Sprintf("photo_%d.jpg", msg.MessageID)

	if msg.MediaGroupID != "" && h.aggregator != nil {
		h.aggregator.Add(mediagroup.Item{
			ChatID:       chatID,
			UserID:       userID,
			LanguageCode: msg.From.LanguageCode,
			MediaGroupID: msg.MediaGroupID,
			MessageID:    msg.MessageID,
			FileID:       photo.FileID,
			FileName:     name,
		})
		return nil
	}

	if err := h.upload(ctx, st, chatID, userID, photo.FileID, name); err != nil {
		return err
	}
	if caption := strings.TrimSpace(msg.Caption); caption != "" {
		return h.setPrompt(ctx, st, chatID, caption)
	}
	return nil
}

func (h *Handler) upload(ctx context.Context, st session.State, chatID int64, userID int64, fileID string, name string) error {
	h.tg.SendTyping(chatID)

	data, mimeType, err := h.tg.DownloadFile(ctx, fileID)
	if err != nil {
		h.logger.Error("photo download failed", "err", err)
		return h.tg.SendText(chatID, h.tr.T(st.Locale, "photoDownloadFailed"))
	}

	mimeType, err = imaging.Normalize(data, mimeType)
	if err != nil {
		h.logger.Warn("photo rejected", "err", err)
		return h.tg.SendText(chatID, h.tr.T(st.Locale, "error_invalid_image"))
	}

	st, err = h.studio.Upload(ctx, st.ID, edit.Image{Data: data, MimeType: mimeType}, name)
	if err != nil {
		return h.sendError(chatID, st.Locale, err)
	}

	_ = h.tg.SendText(chatID, h.tr.T(st.Locale, "photoReceived"))
	return h.sendPicker(chatID, userID, st, 0)
}

// generate runs the batch in the calling goroutine and delivers the
// results in selection order.
func (h *Handler) generate(ctx context.Context, chatID int64, id string) error {
	st, ticket, err := h.studio.Start(ctx, id)
	if err != nil {
		return h.sendError(chatID, st.Locale, err)
	}

	h.tg.SendTyping(chatID)
	_ = h.tg.SendText(chatID, h.tr.T(st.Locale, "generatingCount", "count", len(ticket.Instructions)))

	st, err = h.studio.Run(ctx, id, ticket)
	if st.ID == "" {
		return err
	}
	if st.Epoch != ticket.Epoch {
		// superseded by an upload or /back while running
		return nil
	}
	if st.Phase != session.PhaseDone {
		return h.tg.SendText(chatID, h.failureText(st))
	}

	for i, res := range st.Results {
		caption := fmt.Sprintf("%s #%d", h.tr.T(st.Locale, "generatedImage"), i+1)
		if res.Text != nil && strings.TrimSpace(*res.Text) != "" {
			caption += "\n" + strings.TrimSpace(*res.Text)
		}
		if err := h.tg.SendPhoto(chatID, res.ImageURL, caption); err != nil {
			h.logger.Error("result delivery failed", "index", i, "err", err)
			return h.tg.SendText(chatID, h.tr.T(st.Locale, "errorPrefix")+": "+h.tr.T(st.Locale, "error_delivery"))
		}
	}
	return nil
}

func (h *Handler) failureText(st session.State) string {
	key := st.ErrorKey
	if key == "" {
		key = "error_unknown"
	}
	return h.tr.T(st.Locale, "errorPrefix") + ": " + h.tr.T(st.Locale, key)
}

func (h *Handler) sendError(chatID int64, locale string, err error) error {
	return h.tg.SendText(chatID, h.tr.T(locale, errorKey(err), "max", prompt.MaxSelections))
}

func errorKey(err error) string {
	switch {
	case errors.Is(err, session.ErrNoImage):
		return "error_no_image"
	case errors.Is(err, session.ErrBusy):
		return "error_busy"
	case errors.Is(err, catalog.ErrUnknownStyle):
		return "error_unknown_style"
	case errors.Is(err, prompt.ErrSelectionLimit):
		return session.WarningSelectionLimit
	}
	if key := edit.MessageKey(err); key != "" {
		return key
	}
	return "error_unknown"
}
