package api

// EncodeRequest asks for one id per character of Text. With Strict set,
// any character outside the vocabulary fails instead of mapping to the
// unknown id.
type EncodeRequest struct {
	Text   string `json:"text"`
	Strict bool   `json:"strict,omitempty"`
}

type EncodeResponse struct {
	ID    string `json:"id"`
	IDs   []int  `json:"ids"`
	Count int    `json:"count"`
}

// DecodeRequest maps IDs back to text. SkipSpecials defaults to true
// when omitted.
type DecodeRequest struct {
	IDs          []int `json:"ids"`
	SkipSpecials *bool `json:"skip_specials,omitempty"`
}

type DecodeResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type VocabResponse struct {
	Version string `json:"version"`
	Size    int    `json:"size"`
	PadID   *int   `json:"pad_id"`
	UnkID   *int   `json:"unk_id"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
