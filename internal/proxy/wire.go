package proxy

// Request is the forwarding service request body.
type Request struct {
	Prompt      string `json:"prompt"`
	ImageBase64 string `json:"imageBase64"`
	MimeType    string `json:"mimeType"`
}

// Response is returned with 200. Text is null when the model sent none.
type Response struct {
	ImageURL string  `json:"imageUrl"`
	Text     *string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

const (
	CodeConfiguration = "configuration"
	CodeUpstream      = "upstream"
)

const (
	MsgMissingKey     = "Application configuration error: API key is missing."
	MsgMissingFields  = "Missing required fields: prompt, imageBase64, mimeType"
	MsgUpstreamStatus = "Failed to communicate with the AI model."
	MsgNoCandidates   = "The AI did not return any results."
	MsgNoImage        = "The AI response did not contain an image."
	MsgInternal       = "An internal server error occurred."
)
