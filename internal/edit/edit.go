package edit

import "context"

// Image is a source photo. It is shared by reference across concurrent
// requests and must be treated as read-only by every Editor.
type Image struct {
	Data     []byte
	MimeType string
}

// Result is one edited image. ImageURL is a data URI or a fetchable URL.
type Result struct {
	ImageURL string  `json:"imageUrl"`
	Text     *string `json:"text"`
}

// Editor applies a single instruction to an image.
type Editor interface {
	EditImage(ctx context.Context, img Image, instruction string) (Result, error)
}

// EditorFunc adapts a function to the Editor interface.
type EditorFunc func(ctx context.Context, img Image, instruction string) (Result, error)

func (f EditorFunc) EditImage(ctx context.Context, img Image, instruction string) (Result, error) {
	return f(ctx, img, instruction)
}
