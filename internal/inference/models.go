// Package inference provides a client for the Hugging Face Inference API.
package inference

// QueryRequest is the standard inference request body.
type QueryRequest struct {
	Inputs string `json:"inputs"`
}

// Classification is one class label with its confidence, as returned by
// text-classification models.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Entity is one recognized span, as returned by token-classification models.
type Entity struct {
	EntityGroup string  `json:"entity_group"`
	Score       float64 `json:"score"`
	Word        string  `json:"word"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
}
