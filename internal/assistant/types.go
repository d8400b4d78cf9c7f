package assistant

// askRequest is the wire payload sent to the assistant endpoint.
type askRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// askResponse mirrors the assistant's answer shape.
type askResponse struct {
	Text    string           `json:"text"`
	Sources []sourceResponse `json:"sources"`
}

type sourceResponse struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Source is one grounding citation returned alongside an answer.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Answer is the assistant's free-text reply plus optional citations. The
// text is passed through verbatim, never parsed.
type Answer struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}
