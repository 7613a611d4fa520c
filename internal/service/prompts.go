package service

import (
	"fmt"
	"strings"
)

const briefSystemPrompt = "Write concise professional VC briefings under 300 words."

const summaryPrompt = `Summarize the following pitch deck into 5 concise bullet points. Return ONLY the 5 bullets, each starting with a dash (-), no extra text.

Pitch deck:

%s`

const briefRequirements = "Requirements: ≤300 words, crisp, investor-ready, structured with short paragraphs and bold key points."

func buildSummaryPrompt(deckText string) string {
	return fmt.Sprintf(summaryPrompt, deckText)
}

// buildBriefPrompt conditions the draft on the numbered bullets
func buildBriefPrompt(persona string, bullets []string) string {
	lines := []string{
		"You are an expert venture investor communicator.",
		"Persona: " + persona,
		"Using the 5 bullet points summarizing a startup pitch deck, write a polished 1-page VC brief tailored to the persona.",
		briefRequirements,
		"Bullets:",
	}
	for i, b := range bullets {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, b))
	}
	return strings.Join(lines, "\n")
}

// buildDeckBriefPrompt conditions the draft on the raw deck text
func buildDeckBriefPrompt(persona, deckText string) string {
	lines := []string{
		"You are an expert venture investor communicator.",
		"Persona: " + persona,
		"Using the startup pitch deck below, write a polished 1-page VC brief tailored to the persona.",
		briefRequirements,
		"Pitch deck:",
		deckText,
	}
	return strings.Join(lines, "\n")
}
