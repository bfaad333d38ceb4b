package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"course-service/internal/models"
)

const assistantSystemPrompt = `You are an AI assistant for a healthcare SQL and BigQuery course. You help students understand SQL concepts, BigQuery features, and healthcare analytics best practices.

Current context: %s

Provide helpful, accurate, and educational responses. Focus on:
- SQL syntax and best practices
- BigQuery-specific features
- Healthcare data analysis concepts
- HIPAA compliance considerations
- Query optimization techniques

Keep responses concise but informative. Use examples when helpful.`

const assistantFallback = "Sorry, the course assistant is having trouble right now. Please try again in a moment, or check the module video and instructions for the topic you are asking about."

type AssistantService struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Model   string
}

func NewAssistantService(baseURL, apiKey, model string) *AssistantService {
	return &AssistantService{
		Client:  &http.Client{Timeout: 120 * time.Second},
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	MaxTokens   int                     `json:"max_tokens"`
	Temperature float64                 `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// Chat proxies the student's question to the chat-completion API with the
// course system prompt. When the upstream fails the student gets a canned
// fallback rather than an error.
func (s *AssistantService) Chat(ctx context.Context, message, chatContext string) (*models.ChatResponse, error) {
	if message == "" {
		return nil, fmt.Errorf("message is required: %w", ErrValidation)
	}
	if chatContext == "" {
		chatContext = "General course assistance"
	}

	response, err := s.sendChatRequest(ctx, chatCompletionRequest{
		Model: s.Model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: fmt.Sprintf(assistantSystemPrompt, chatContext)},
			{Role: "user", Content: message},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("Assistant request failed: %v", err)
		return &models.ChatResponse{Response: assistantFallback, Timestamp: time.Now()}, nil
	}
	if len(response.Choices) == 0 {
		return &models.ChatResponse{Response: assistantFallback, Timestamp: time.Now()}, nil
	}

	return &models.ChatResponse{
		Response:  response.Choices[0].Message.Content,
		Timestamp: time.Now(),
	}, nil
}

func (s *AssistantService) sendChatRequest(ctx context.Context, request chatCompletionRequest) (*chatCompletionResponse, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
