// Package advisor turns rendered portfolio reports into plain-language
// commentary through a Gemini chat session.
//
// The advisor never reads the portfolio itself. The caller renders the
// reports it wants discussed and hands them over as markdown, so the
// commentary is grounded in exactly what the user saw on screen.
package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for commentary.
const DefaultModel = "gemini-2.5-flash"

const persona = `
	You are a portfolio advisor commenting on reports of a private investor's portfolio.

	The user's reports are quoted below. They are the only source of truth about the
	portfolio: ground every figure you mention in them, and say so when a report does
	not contain the answer. Amounts are in the portfolio's reporting currency.

	Keep answers short and in plain language. Explain what the numbers mean, point out
	concentrations or notable gains and losses, but never recommend buying or selling
	a specific security.
`

// Advisor keeps one chat session about one set of reports.
type Advisor struct {
	// Model is the Gemini model name, DefaultModel unless overridden.
	Model string
	chat  *genai.Chat
}

// New returns an Advisor talking to the default model.
func New() *Advisor { return &Advisor{Model: DefaultModel} }

// Start opens the chat session and primes it with the rendered reports.
func (a *Advisor) Start(ctx context.Context, client *genai.Client, reports ...string) error {
	instruction := persona
	if len(reports) > 0 {
		instruction += "\n\nThe user's current reports:\n\n" + strings.Join(reports, "\n\n---\n\n")
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}
	chat, err := client.Chats.Create(ctx, a.Model, config, nil)
	if err != nil {
		return fmt.Errorf("create advisor chat: %w", err)
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the advisor's answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	if a.chat == nil {
		return "", fmt.Errorf("advisor session not started")
	}
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive session. Initial prompts are consumed before
// reading from r, so a question given on the command line is answered first.
// Typing 'bye' or closing the input ends the session.
func (a *Advisor) Run(ctx context.Context, w io.Writer, r io.Reader, prompts ...string) error {
	fmt.Fprintln(w, "Ask about your portfolio reports. Type 'bye' to exit.")

	in := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)

		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = in.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, answer)
	}
}
