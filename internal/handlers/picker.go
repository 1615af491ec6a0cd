package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"aura-ai/internal/catalog"
	"aura-ai/internal/i18n"
	"aura-ai/internal/prompt"
	"aura-ai/internal/session"
)

const pickerCallbackPrefix = "st"

const (
	actionPage     = "p"
	actionToggle   = "t"
	actionClear    = "c"
	actionGenerate = "g"
	actionBack     = "b"
	actionNoop     = "n"
)

// callback is a decoded picker button press:
// st:<owner>:<action>[:<page>[:<style id>]]
type callback struct {
	Owner   int64
	Action  string
	Page    int
	StyleID string
}

func encodeCallback(c callback) string {
	parts := []string{pickerCallbackPrefix, strconv.FormatInt(c.Owner, 10), c.Action}
	switch c.Action {
	case actionPage, actionClear:
		parts = append(parts, strconv.Itoa(c.Page))
	case actionToggle:
		parts = append(parts, strconv.Itoa(c.Page), c.StyleID)
	}
	return strings.Join(parts, ":")
}

func parseCallback(data string) (callback, bool) {
	parts := strings.Split(strings.TrimSpace(data), ":")
	if len(parts) < 3 || parts[0] != pickerCallbackPrefix {
		return callback{}, false
	}

	owner, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return callback{}, false
	}
	c := callback{Owner: owner, Action: parts[2]}

	switch c.Action {
	case actionPage, actionClear, actionToggle:
		if len(parts) < 4 {
			return callback{}, false
		}
		page, err := strconv.Atoi(parts[3])
		if err != nil || page < 0 {
			return callback{}, false
		}
		c.Page = page
		if c.Action == actionToggle {
			if len(parts) != 5 || parts[4] == "" {
				return callback{}, false
			}
			c.StyleID = parts[4]
		}
	case actionGenerate, actionBack, actionNoop:
	default:
		return callback{}, false
	}
	return c, true
}

func (h *Handler) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) error {
	if q == nil || q.Message == nil || q.From == nil {
		return nil
	}
	c, ok := parseCallback(q.Data)
	if !ok {
		return nil
	}

	chatID := q.Message.Chat.ID
	msgID := q.Message.MessageID

	st, err := h.studio.Ensure(ctx, sessionID(chatID, q.From.ID), q.From.LanguageCode)
	if err != nil {
		return err
	}
	locale := st.Locale
	if c.Owner != q.From.ID {
		_ = h.tg.AnswerCallback(q.ID, h.tr.T(locale, "notYourMenu"), true)
		return nil
	}

	switch c.Action {
	case actionPage:
		_ = h.tg.AnswerCallback(q.ID, "", false)
	case actionToggle:
		st, err = h.studio.ToggleStyle(ctx, st.ID, c.StyleID)
		if err != nil {
			_ = h.tg.AnswerCallback(q.ID, h.tr.T(locale, errorKey(err), "max", prompt.MaxSelections), true)
			if !errors.Is(err, prompt.ErrSelectionLimit) {
				return nil
			}
		} else {
			_ = h.tg.AnswerCallback(q.ID, "", false)
		}
	case actionClear:
		st, err = h.studio.ClearSelection(ctx, st.ID)
		if err != nil {
			_ = h.tg.AnswerCallback(q.ID, h.tr.T(locale, errorKey(err)), true)
			return nil
		}
		_ = h.tg.AnswerCallback(q.ID, h.tr.T(locale, "selectionCleared"), false)
	case actionBack:
		st, err = h.studio.Back(ctx, st.ID)
		if err != nil {
			return err
		}
		_ = h.tg.AnswerCallback(q.ID, "", false)
	case actionGenerate:
		_ = h.tg.AnswerCallback(q.ID, h.tr.T(locale, "generatingButton"), false)
		return h.generate(ctx, chatID, st.ID)
	default:
		_ = h.tg.AnswerCallback(q.ID, "", false)
		return nil
	}

	return h.renderPicker(chatID, q.From.ID, msgID, st, c.Page)
}

func (h *Handler) sendPicker(chatID int64, userID int64, st session.State, page int) error {
	_, err := h.tg.SendTextWithKeyboard(chatID, pickerText(h.tr, h.studio.Catalog(), st, page), pickerKeyboard(h.tr, h.studio.Catalog(), userID, st, page))
	return err
}

// renderPicker edits the picker in place and falls back to a new message
// when the old one can no longer be edited.
func (h *Handler) renderPicker(chatID int64, userID int64, messageID int, st session.State, page int) error {
	text := pickerText(h.tr, h.studio.Catalog(), st, page)
	kb := pickerKeyboard(h.tr, h.studio.Catalog(), userID, st, page)

	if messageID != 0 {
		if err := h.tg.EditTextWithKeyboard(chatID, messageID, text, kb); err == nil {
			return nil
		}
	}
	_, err := h.tg.SendTextWithKeyboard(chatID, text, kb)
	return err
}

func clampPage(page int, n int) int {
	if page < 0 || page >= n {
		return 0
	}
	return page
}

func pickerText(tr *i18n.Translator, c *catalog.Catalog, st session.State, page int) string {
	locale := st.Locale
	cats := c.Localized(tr, locale)

	var b strings.Builder
	b.WriteString(tr.T(locale, "customizeTitle"))
	b.WriteString("\n")
	b.WriteString(tr.T(locale, "customizeSubtitle"))
	b.WriteString("\n\n")

	if len(cats) > 0 {
		cat := cats[clampPage(page, len(cats))]
		b.WriteString(cat.Title)
		b.WriteString("\n")
		if cat.Note != "" {
			b.WriteString(cat.Note)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(tr.T(locale, "selectionCounter", "count", len(st.Selected), "max", prompt.MaxSelections))
	b.WriteString("\n")
	for _, id := range st.Selected {
		fmt.Fprintf(&b, "✅ %s\n", tr.T(locale, catalog.StyleOption{ID: id}.LabelKey()))
	}
	if custom := strings.TrimSpace(st.CustomPrompt); custom != "" {
		fmt.Fprintf(&b, "%s: %s\n", tr.T(locale, "customPromptTitle"), truncateLine(custom, 80))
	}

	return strings.TrimSpace(b.String())
}

func pickerKeyboard(tr *i18n.Translator, c *catalog.Catalog, ownerID int64, st session.State, page int) tgbotapi.InlineKeyboardMarkup {
	locale := st.Locale
	cats := c.Localized(tr, locale)
	page = clampPage(page, len(cats))

	var rows [][]tgbotapi.InlineKeyboardButton

	var tabs []tgbotapi.InlineKeyboardButton
	for i, cat := range cats {
		label := cat.Title
		if i == page {
			label = "• " + label
		}
		tabs = append(tabs, tgbotapi.NewInlineKeyboardButtonData(label, encodeCallback(callback{Owner: ownerID, Action: actionPage, Page: i})))
	}
	if len(tabs) > 0 {
		rows = append(rows, tabs)
	}

	if len(cats) > 0 {
		var row []tgbotapi.InlineKeyboardButton
		for _, opt := range cats[page].Options {
			label := opt.Name
			if st.Selected.Contains(opt.ID) {
				label = "✅ " + label
			}
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, encodeCallback(callback{Owner: ownerID, Action: actionToggle, Page: page, StyleID: opt.ID})))
			if len(row) == 2 {
				rows = append(rows, row)
				row = nil
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d/%d", len(st.Selected), prompt.MaxSelections), encodeCallback(callback{Owner: ownerID, Action: actionNoop})),
		tgbotapi.NewInlineKeyboardButtonData(tr.T(locale, "clearSelection"), encodeCallback(callback{Owner: ownerID, Action: actionClear, Page: page})),
	})

	var last []tgbotapi.InlineKeyboardButton
	if st.CanGenerate() {
		label := fmt.Sprintf("%s (%d)", tr.T(locale, "generateButton"), st.DisplayCount())
		last = append(last, tgbotapi.NewInlineKeyboardButtonData(label, encodeCallback(callback{Owner: ownerID, Action: actionGenerate})))
	}
	if st.Phase == session.PhaseDone || st.Phase == session.PhaseFailed {
		last = append(last, tgbotapi.NewInlineKeyboardButtonData(tr.T(locale, "backToCustomizeButton"), encodeCallback(callback{Owner: ownerID, Action: actionBack})))
	}
	if len(last) > 0 {
		rows = append(rows, last)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func truncateLine(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}
