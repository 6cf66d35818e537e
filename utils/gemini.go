package utils

import (
	"codelearn/config"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AskGemini sends a single-turn prompt to the generative-language API and
// returns the first candidate's text. No conversation state is kept server
// side; the client owns its chat history.
func AskGemini(prompt string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent",
		config.AppConfig.GeminiApiURL, config.AppConfig.GeminiModel)

	result := new(geminiResponse)

	client := resty.New().SetTimeout(30 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", config.AppConfig.GeminiApiKey).
		SetBody(geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		}).
		SetResult(result).
		SetError(result).
		Post(url)
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		if result.Error != nil && result.Error.Message != "" {
			return "", fmt.Errorf("gemini API error: %s", result.Error.Message)
		}
		return "", fmt.Errorf("gemini API error: status %d", resp.StatusCode())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
