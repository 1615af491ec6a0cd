package web

import (
	"fmt"
	"time"

	"aura-ai/internal/i18n"
	"aura-ai/internal/prompt"
	"aura-ai/internal/session"
)

type resultView struct {
	Index       int     `json:"index"`
	ImageURL    string  `json:"imageUrl"`
	Text        *string `json:"text"`
	Alt         string  `json:"alt"`
	DownloadURL string  `json:"downloadUrl"`
}

type sessionView struct {
	ID       string `json:"id"`
	Phase    string `json:"phase"`
	Locale   string `json:"locale"`
	HasImage bool   `json:"hasImage"`

	ImageName string `json:"imageName,omitempty"`

	Selected      []string `json:"selected"`
	MaxSelections int      `json:"maxSelections"`
	Remaining     int      `json:"remaining"`
	Counter       string   `json:"counter"`
	Warning       string   `json:"warning,omitempty"`
	CustomPrompt  string   `json:"customPrompt"`

	GenerateCount int  `json:"generateCount"`
	CanGenerate   bool `json:"canGenerate"`

	Placeholders    int    `json:"placeholders"`
	PlaceholderText string `json:"placeholderText,omitempty"`

	Results  []resultView `json:"results"`
	Error    string       `json:"error,omitempty"`
	ErrorKey string       `json:"errorKey,omitempty"`
}

func newSessionView(tr *i18n.Translator, st session.State, locale string, now time.Time) sessionView {
	if locale == "" {
		locale = st.Locale
	}

	v := sessionView{
		ID:            st.ID,
		Phase:         string(st.Phase),
		Locale:        tr.Resolve(locale),
		HasImage:      st.Image != nil,
		ImageName:     st.ImageName,
		Selected:      append([]string{}, st.Selected...),
		MaxSelections: prompt.MaxSelections,
		Remaining:     st.Selected.Remaining(),
		Counter:       tr.T(locale, "selectionCounter", "count", len(st.Selected), "max", prompt.MaxSelections),
		CustomPrompt:  st.CustomPrompt,
		GenerateCount: st.DisplayCount(),
		CanGenerate:   st.CanGenerate(),
		Results:       make([]resultView, 0, len(st.Results)),
		ErrorKey:      st.ErrorKey,
	}

	if w := st.ActiveWarning(now); w != "" {
		v.Warning = tr.T(locale, w, "max", prompt.MaxSelections)
	}

	if st.Phase == session.PhaseGenerating {
		v.Placeholders = st.Pending
		v.PlaceholderText = tr.T(locale, "generatingPlaceholder")
	}

	for i, r := range st.Results {
		v.Results = append(v.Results, resultView{
			Index:       i,
			ImageURL:    r.ImageURL,
			Text:        r.Text,
			Alt:         fmt.Sprintf("%s %d", tr.T(locale, "generatedImage"), i+1),
			DownloadURL: fmt.Sprintf("/api/sessions/%s/results/%d", st.ID, i),
		})
	}

	if st.ErrorKey != "" {
		v.Error = fmt.Sprintf("%s: %s", tr.T(locale, "errorPrefix"), tr.T(locale, st.ErrorKey))
	}
	return v
}
