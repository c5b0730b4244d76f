package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agenthands/interactome/internal/core/model"
	"github.com/agenthands/interactome/internal/llm"
)

// Placeholder marks where the rendered centrality table goes in a prompt.
// Prompts without it get the table appended.
const Placeholder = "{centralities}"

// DefaultPrompt is used when no insight prompt is configured.
const DefaultPrompt = `You are assisting a biologist reading a protein-protein interaction network.
Centrality results (top nodes per measure):
{centralities}
Write two or three sentences naming the likely hub proteins and why.
Return a JSON object: {"summary": "..."}`

type Summarizer struct {
	LLM    llm.LLMClient
	Prompt string
}

func NewSummarizer(llmClient llm.LLMClient, prompt string) *Summarizer {
	if strings.TrimSpace(prompt) == "" {
		prompt = DefaultPrompt
	}
	return &Summarizer{
		LLM:    llmClient,
		Prompt: prompt,
	}
}

// SummarizeReport asks the model for a short reading of the ranked measures.
func (s *Summarizer) SummarizeReport(ctx context.Context, summary model.GraphSummary, rankings []model.RankedReport) (string, error) {
	prompt := render(s.Prompt, describe(summary, rankings))

	response, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate insight: %w", err)
	}

	text, err := parseSummary(response)
	if err != nil {
		return "", err
	}
	return text, nil
}

func render(prompt, table string) string {
	if !strings.Contains(prompt, Placeholder) {
		return strings.TrimRight(prompt, "\n") + "\n" + table
	}
	return strings.ReplaceAll(prompt, Placeholder, table)
}

func describe(summary model.GraphSummary, rankings []model.RankedReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Network: %d proteins, %d interactions\n", summary.Nodes, summary.Edges)
	for _, r := range rankings {
		fmt.Fprintf(&b, "- %s:", r.Measure)
		for _, ns := range r.Top {
			fmt.Fprintf(&b, " %s=%.4f", ns.Node, ns.Score)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// parseSummary pulls {"summary": ...} out of a reply that may carry markdown
// fences or chatter around the object. Replies without an object are used
// verbatim.
func parseSummary(response string) (string, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end <= start {
		text := strings.TrimSpace(response)
		if text == "" {
			return "", fmt.Errorf("empty insight response")
		}
		return text, nil
	}

	var result struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(response[start:end+1]), &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal JSON: %w\nData: %s", err, response[start:end+1])
	}
	if result.Summary == "" {
		return "", fmt.Errorf("insight response has no summary")
	}
	return result.Summary, nil
}
