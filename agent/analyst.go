// Package agent provides an AI analyst that reviews portfolio reports.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Analyst is a chat session with a portfolio analyst persona.
type Analyst struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewAnalyst creates the analyst persona used by the assist command.
func NewAnalyst() *Analyst {
	return &Analyst{
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a portfolio analyst reviewing a personal stock portfolio.

			The user will give you markdown reports produced by their portfolio tool:
			current holdings with weights, and proposed trades that trim positions
			whose absolute weight exceeds a concentration ceiling.

			Comment on concentration risk, on the proposed trims, and on anything
			notable about the cash balance. Be concise and concrete, refer to the
			actual tickers and figures in the report. Do not invent holdings that
			are not in the report.
		`}}},
		},
	}
}

// Start creates the underlying chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Review sends a markdown report to the analyst and returns its commentary.
func (a *Analyst) Review(ctx context.Context, client *genai.Client, report string) (string, error) {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return "", err
		}
	}
	resp, err := a.chat.Send(ctx, &genai.Part{Text: report})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
