package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

var geminiClient *genai.Client

// InitCoachService sets up the Gemini client used for coaching tips
func InitCoachService(apiKey string) error {
	config := &genai.ClientConfig{}
	if apiKey != "" {
		config.APIKey = apiKey
	}
	client, err := genai.NewClient(context.Background(), config)
	if err != nil {
		return fmt.Errorf("failed to init gemini client: %w", err)
	}
	geminiClient = client
	return nil
}

func generateModelText(ctx context.Context, modelName, prompt string) (string, error) {
	if geminiClient == nil {
		return "", errors.New("gemini client not initialized")
	}
	resp, err := geminiClient.Models.GenerateContent(ctx, modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return cleanModelOutput(resp.Text()), nil
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// GenerateDailyTip asks Gemini for one short coaching tip based on a
// summary of the user's recent activity
func GenerateDailyTip(ctx context.Context, activitySummary string) (string, error) {
	if geminiClient == nil {
		return "", errors.New("gemini client not initialized")
	}

	prompt := fmt.Sprintf(
		`Act as a supportive fitness coach. Here is a summary of the user's recent activity:

%s

Give ONE short, specific, actionable tip for today (2-3 sentences). Plain text only, no markdown.`,
		activitySummary,
	)

	tip, err := generateModelText(ctx, defaultGeminiModel, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate tip: %w", err)
	}
	if tip == "" {
		return "", errors.New("no tip generated")
	}
	return tip, nil
}
