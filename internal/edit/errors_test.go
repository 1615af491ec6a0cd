package edit

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"configuration", fmt.Errorf("gemini: %w", ErrConfiguration), KindConfiguration},
		{"no candidates", ErrNoCandidates, KindUpstream},
		{"no image", fmt.Errorf("request 2: %w", ErrNoImage), KindUpstream},
		{"status", Upstream(503, "overloaded"), KindUpstream},
		{"transport", Communication("request", errors.New("dial tcp: refused")), KindCommunication},
		{"other", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessageKey(t *testing.T) {
	assert.Equal(t, "error_env_var_not_set", MessageKey(ErrConfiguration))
	assert.Equal(t, "error_no_candidates", MessageKey(ErrNoCandidates))
	assert.Equal(t, "error_no_image_in_response", MessageKey(fmt.Errorf("x: %w", ErrNoImage)))
	assert.Equal(t, "error_upstream", MessageKey(Upstream(429, "")))
	assert.Equal(t, "error_gemini_communication", MessageKey(Communication("decode", errors.New("eof"))))
	assert.Equal(t, "error_unknown", MessageKey(errors.New("boom")))
	assert.Empty(t, MessageKey(nil))
}

func TestCommunicationKeepsCause(t *testing.T) {
	err := Communication("request", context.DeadlineExceeded)

	assert.ErrorIs(t, err, ErrCommunication)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStatusOf(t *testing.T) {
	err := fmt.Errorf("request 1: %w", Upstream(429, "quota"))

	assert.Equal(t, 429, StatusOf(err))
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, "upstream model failure: status 429: quota", errors.Unwrap(err).Error())
	assert.Zero(t, StatusOf(ErrNoImage))
	assert.Zero(t, StatusOf(nil))
}
