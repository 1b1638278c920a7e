package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/briefwire/briefwire/pkg/config"
)

// ErrMalformed indicates the oracle response did not decode into the declared schema
var ErrMalformed = errors.New("malformed oracle response")

// Oracle wraps an OpenAI-compatible LLM endpoint. It supports two response
// shapes: free-form text for the relevance pre-filter and schema-constrained
// JSON for batch extraction and digest summary calls.
type Oracle struct {
	client    *openai.Client
	config    config.OracleConfig
	systemMsg string
}

// NewOracle creates an oracle client from configuration
func NewOracle(cfg config.OracleConfig) *Oracle {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Oracle{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for digest curation
const defaultSystemPrompt = `You are an editorial assistant that curates news documents into a personalized digest.
You evaluate relevance against the recipient's topic profile, extract concise stories, and never invent facts
that are not present in the source documents. Relevance scores are integers from 0 to 10 where:
- 0-3: not relevant to the recipient
- 4-6: somewhat relevant
- 7-8: relevant
- 9-10: highly relevant, main-story material

A surface-string match (a company or product name that merely contains a topic word) is NOT relevance;
such documents must score low. When a continuity context of previously covered stories is provided,
skip documents that repeat those stories and mark genuine developments of them as continued.`

// Complete sends a free-form request and returns the raw response text.
// Used by the pre-filter path where the response may be fenced JSON.
func (o *Oracle) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       o.config.Model,
		Temperature: float32(o.config.Temperature),
		MaxTokens:   o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: o.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("oracle request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from oracle")
	}

	return resp.Choices[0].Message.Content, nil
}

// CompleteStructured sends a request constrained to the JSON schema reflected
// from out and unmarshals the response into out. A response that does not
// decode into the declared shape is returned as an error, not salvaged.
func (o *Oracle) CompleteStructured(ctx context.Context, name, prompt string, out any) error {
	schema, err := jsonschema.GenerateSchemaForType(out)
	if err != nil {
		return fmt.Errorf("generate schema for %s: %w", name, err)
	}

	req := openai.ChatCompletionRequest{
		Model:       o.config.Model,
		Temperature: float32(o.config.Temperature),
		MaxTokens:   o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: o.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: schema,
				Strict: true,
			},
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return fmt.Errorf("oracle request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("no response from oracle")
	}

	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(ExtractJSON(content)), out); err != nil {
		return fmt.Errorf("decode %s response: %w: %v", name, ErrMalformed, err)
	}

	return nil
}

// ExtractJSON recovers a JSON body from a response that may be wrapped in
// markdown fences or surrounded by prose. Returns the input unchanged when no
// JSON-looking region is found, leaving the failure to the caller's decoder.
func ExtractJSON(content string) string {
	s := strings.TrimSpace(content)

	// strip markdown fences
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	// locate the outermost JSON container
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")
	start := objStart
	end := strings.LastIndex(s, "}")
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		start = arrStart
		end = strings.LastIndex(s, "]")
	}
	if start < 0 || end <= start {
		return s
	}
	return s[start : end+1]
}
