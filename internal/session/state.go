package session

import (
	"errors"
	"time"

	"aura-ai/internal/catalog"
	"aura-ai/internal/edit"
	"aura-ai/internal/prompt"
)

type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseCustomizing Phase = "customizing"
	PhaseGenerating  Phase = "generating"
	PhaseDone        Phase = "done"
	PhaseFailed      Phase = "failed"
)

var (
	ErrNoImage  = errors.New("no source image")
	ErrBusy     = errors.New("generation already in progress")
	ErrNotFound = errors.New("session not found")
	ErrExists   = errors.New("session already exists")
)

const WarningSelectionLimit = "selectionLimitError"

// State is one user's studio session. Every mutation of the fields below
// goes through the methods so phase and epoch stay consistent.
type State struct {
	ID     string `json:"id"`
	Phase  Phase  `json:"phase"`
	Locale string `json:"locale,omitempty"`

	Image     *edit.Image `json:"image,omitempty"`
	ImageName string      `json:"imageName,omitempty"`

	Selected     prompt.Selection `json:"selected"`
	CustomPrompt string           `json:"customPrompt,omitempty"`

	Warning          string    `json:"warning,omitempty"`
	WarningExpiresAt time.Time `json:"warningExpiresAt,omitempty"`

	Epoch    uint64        `json:"epoch"`
	Pending  int           `json:"pending,omitempty"`
	Results  []edit.Result `json:"results,omitempty"`
	ErrorKey string        `json:"errorKey,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// Ticket carries everything a batch needs, detached from the state.
type Ticket struct {
	Epoch        uint64
	Image        edit.Image
	Instructions []string
}

func New(id string) State {
	return State{ID: id, Phase: PhaseIdle, Selected: prompt.Selection{}}
}

// Upload replaces the source image and starts over. Any in-flight batch
// becomes stale.
func (s *State) Upload(img edit.Image, name string) {
	s.Image = &img
	s.ImageName = name
	s.Selected = prompt.Selection{}
	s.CustomPrompt = ""
	s.clearOutcome()
	s.Warning = ""
	s.WarningExpiresAt = time.Time{}
	s.Phase = PhaseCustomizing
	s.Epoch++
}

// ToggleStyle adds or removes id. A rejected add records a warning that
// expires after ttl and returns prompt.ErrSelectionLimit.
func (s *State) ToggleStyle(id string, now time.Time, ttl time.Duration) error {
	if s.Phase == PhaseGenerating {
		return ErrBusy
	}
	sel, err := s.Selected.Toggle(id)
	if err != nil {
		if errors.Is(err, prompt.ErrSelectionLimit) {
			s.Warning = WarningSelectionLimit
			s.WarningExpiresAt = now.Add(ttl)
		}
		return err
	}
	s.Selected = sel
	return nil
}

func (s *State) ClearSelection() error {
	if s.Phase == PhaseGenerating {
		return ErrBusy
	}
	s.Selected = s.Selected.Clear()
	return nil
}

func (s *State) SetCustomPrompt(text string) error {
	if s.Phase == PhaseGenerating {
		return ErrBusy
	}
	s.CustomPrompt = text
	return nil
}

// ActiveWarning returns the warning key while it has not expired.
func (s State) ActiveWarning(now time.Time) string {
	if s.Warning == "" || !now.Before(s.WarningExpiresAt) {
		return ""
	}
	return s.Warning
}

// Begin moves to the generating phase and returns the batch to run.
// Previous results are dropped wholesale.
func (s *State) Begin(c *catalog.Catalog) (Ticket, error) {
	if s.Image == nil {
		return Ticket{}, ErrNoImage
	}
	if s.Phase == PhaseGenerating {
		return Ticket{}, ErrBusy
	}

	instructions, err := prompt.Instructions(s.Selected, s.CustomPrompt, c)
	if err != nil {
		return Ticket{}, err
	}

	s.clearOutcome()
	s.Phase = PhaseGenerating
	s.Pending = len(instructions)
	s.Epoch++

	return Ticket{Epoch: s.Epoch, Image: *s.Image, Instructions: instructions}, nil
}

// Complete applies results if epoch is still current. It reports whether
// the results were applied.
func (s *State) Complete(epoch uint64, results []edit.Result) bool {
	if !s.current(epoch) {
		return false
	}
	s.Phase = PhaseDone
	s.Pending = 0
	s.Results = append([]edit.Result(nil), results...)
	s.ErrorKey = ""
	return true
}

func (s *State) Fail(epoch uint64, err error) bool {
	if !s.current(epoch) {
		return false
	}
	s.Phase = PhaseFailed
	s.Pending = 0
	s.Results = nil
	s.ErrorKey = edit.MessageKey(err)
	if s.ErrorKey == "" {
		s.ErrorKey = "error_unknown"
	}
	return true
}

// Back returns to customizing. Results are discarded and any in-flight
// batch becomes stale.
func (s *State) Back() {
	if s.Image == nil {
		s.Phase = PhaseIdle
	} else {
		s.Phase = PhaseCustomizing
	}
	s.clearOutcome()
	s.Epoch++
}

func (s State) GenerationCount() int {
	return prompt.Count(s.Selected, s.CustomPrompt)
}

// DisplayCount is the number shown on the generate action.
func (s State) DisplayCount() int {
	if n := s.GenerationCount(); n > 0 {
		return n
	}
	return 1
}

func (s State) CanGenerate() bool {
	return s.Image != nil && s.Phase != PhaseGenerating
}

func (s *State) current(epoch uint64) bool {
	return s.Phase == PhaseGenerating && s.Epoch == epoch
}

func (s *State) clearOutcome() {
	s.Results = nil
	s.ErrorKey = ""
	s.Pending = 0
}

func (s State) clone() State {
	out := s
	out.Selected = append(prompt.Selection{}, s.Selected...)
	out.Results = append([]edit.Result(nil), s.Results...)
	if s.Image != nil {
		img := *s.Image
		out.Image = &img
	}
	return out
}
