package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitByBytes(t *testing.T) {
	assert.Equal(t, []string{"short"}, splitByBytes("short", 10))

	parts := splitByBytes(strings.Repeat("a", 25), 10)
	require.Len(t, parts, 3)
	assert.Equal(t, "aaaaaaaaaa", parts[0])
	assert.Equal(t, "aaaaa", parts[2])
}

func TestSplitByBytesKeepsRunesWhole(t *testing.T) {
	// "ệ" is three bytes.
	text := strings.Repeat("ệ", 5)
	parts := splitByBytes(text, 7)

	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.True(t, utf8.ValidString(p))
		assert.LessOrEqual(t, len(p), 7)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestTruncateByBytes(t *testing.T) {
	assert.Equal(t, "abc", truncateByBytes("abc", 0))
	assert.Equal(t, "abc", truncateByBytes("abcdef", 3))

	out := truncateByBytes("Ảnh được tạo", 4)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "Ản", out)
}

func TestPhotoFile(t *testing.T) {
	file, err := photoFile("data:image/jpeg;base64,aGVsbG8=")
	require.NoError(t, err)
	fb, ok := file.(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.Equal(t, "image.jpg", fb.Name)
	assert.Equal(t, []byte("hello"), fb.Bytes)

	file, err = photoFile("https://cdn.example.com/out.png")
	require.NoError(t, err)
	assert.Equal(t, tgbotapi.FileURL("https://cdn.example.com/out.png"), file)

	for _, bad := range []string{"ftp://host/a.png", "javascript:alert(1)", "data:image/png;base64,%%%", "/relative.png"} {
		_, err := photoFile(bad)
		assert.Error(t, err, bad)
	}
	_, err = photoFile("file:///etc/passwd")
	assert.ErrorIs(t, err, ErrUnsupportedImageURL)
}

func TestNewRequiresTokenAndClient(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	_, err = New(Options{Token: "123:abc"})
	assert.Error(t, err)
}
