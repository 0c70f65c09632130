package service

import (
	"context"
	"fmt"

	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/logger"

	"google.golang.org/genai"
)

// GeminiGenerator implements TextGenerator with the Gemini API
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, apperrors.ErrGeminiAPIKeyNotSet
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Name returns the model identifier
func (g *GeminiGenerator) Name() string {
	return g.model
}

// Generate sends one structured request and returns the raw response text
func (g *GeminiGenerator) Generate(ctx context.Context, req *GenerationRequest) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: req.ResponseMIMEType,
		ResponseSchema:   req.ResponseSchema,
	}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	logger.WithContext(ctx).WithField("model", g.model).Debug("Invoking Gemini GenerateContent")

	resp, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return resp.Text(), nil
}
