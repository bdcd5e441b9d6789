package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/mfcarvalho/simulador/docs"
)

const model = "gemini-2.5-pro"

// Analyst is a chat with a model that has the simulation report and the
// relevant documentation in its system instruction, and nothing else: it
// answers from the report, it does not fetch or recompute.
type Analyst struct {
	Report string
	chat   *genai.Chat
}

func NewAnalyst(report string) *Analyst {
	return &Analyst{Report: report}
}

// Start creates the chat session. Must be called before Ask.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	instruction := `You are an investment analyst. The user ran a historical
simulation of a single security and you have its full report below. Answer
questions about it: explain the figures, compare scenarios the user
describes, point at the relevant rows. Stay within the report; if a question
needs data the report does not carry, say so. Reply in the user's language.

How the simulation works and what the metrics mean:

` + mustTopics("simulation", "metrics") + `

The report:

` + a.Report

	chat, err := client.Chats.Create(ctx, model, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the text of the answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// mustTopics panics on a missing topic, which is an embed defect caught by
// the docs tests.
func mustTopics(topics ...string) string {
	content, err := docs.GetTopics(topics...)
	if err != nil {
		panic(err)
	}
	return content
}
