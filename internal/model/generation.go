package model

// GenerateRequest is the body accepted by the generation endpoint
type GenerateRequest struct {
	DeckText  string `json:"deckText"`
	VCPersona string `json:"vcPersona"`
}

// GenerationResult is the output of one pipeline run
type GenerationResult struct {
	Bullets []string `json:"bullets"`
	Brief   string   `json:"brief"`
}
