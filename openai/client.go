package openai

import (
	"context"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// defaultModel is used when OPENAI_MODEL is not set.
const defaultModel = "gpt-5-mini"

// Message is one conversation turn. Role is "system", "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Client wraps the external text-generation service. It holds no conversation
// state; callers pass full message lists.
type Client struct {
	api   *openai.Client
	Model string
}

func NewClient() *Client {
	key := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &Client{api: openai.NewClient(key), Model: model}
}

// StreamMessage streams the completion for a single system+user prompt pair.
func (c *Client) StreamMessage(ctx context.Context, system, prompt string) (<-chan string, error) {
	msgs := []Message{}
	if system != "" {
		msgs = append(msgs, Message{Role: RoleSystem, Content: system})
	}
	msgs = append(msgs, Message{Role: RoleUser, Content: prompt})
	return c.StreamConversation(ctx, msgs)
}

// StreamConversation streams the completion for a full conversation history.
// Tokens arrive on the returned channel, which closes when the stream ends.
func (c *Client) StreamConversation(ctx context.Context, messages []Message) (<-chan string, error) {
	apiMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		apiMsgs = append(apiMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	stream, err := c.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    c.Model,
		Messages: apiMsgs,
	})
	if err != nil {
		return nil, err
	}

	ch := make(chan string)

	go func() {
		defer stream.Close()
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err != nil {
				break
			}
			if len(resp.Choices) > 0 {
				ch <- resp.Choices[0].Delta.Content
			}
		}
	}()

	return ch, nil
}
