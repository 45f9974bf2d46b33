package openai

import (
	"fmt"
	"strings"

	"github.com/resqnet/protosearch/core"
)

const systemPrompt = `You are an EMS protocol assistant. Provide concise, actionable answers based on the provided protocol excerpts.
Focus on:
- Key steps and interventions
- Medication dosages when mentioned
- Critical decision points
Keep responses brief and field-ready. Always cite the protocol number.`

// maxContextResults bounds how many excerpts reach the model.
const maxContextResults = 5

// maxExcerptBytes bounds each excerpt so the context stays small.
const maxExcerptBytes = 500

// buildUserPrompt assembles the question and the top excerpts into the
// user message.
func buildUserPrompt(query string, results []core.RankedDocument) string {
	excerpts := make([]string, 0, maxContextResults)

	for i, r := range results {
		if i >= maxContextResults {
			break
		}

		body := r.Body
		if len(body) > maxExcerptBytes {
			body = body[:maxExcerptBytes]
		}

		excerpts = append(excerpts, fmt.Sprintf(
			"Protocol: %s - %s\nAgency: %s (%s)\nContent: %s\n",
			r.DocumentNumber, r.Title, r.AgencyName, r.RegionCode, body))
	}

	return fmt.Sprintf(
		"Question: %s\n\nRelevant Protocols:\n%s\n\nProvide a concise answer based on these protocols.",
		query, strings.Join(excerpts, "\n---\n"))
}
