package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"SignalScout/internal/model"
)

// Classifier returns a one-word sentiment label for a ticker. Callers
// must degrade failures to Neutral; a classifier error never aborts a
// run.
type Classifier interface {
	Classify(ctx context.Context, symbol string, headlines []string) (model.Sentiment, error)
	Name() string
}

// Disabled is the classifier used when no API key is configured. Always
// neutral.
type Disabled struct{}

func (Disabled) Classify(context.Context, string, []string) (model.Sentiment, error) {
	return model.SentimentNeutral, nil
}

func (Disabled) Name() string { return "disabled" }

// GeminiClassifier calls a generateContent text endpoint and maps the
// first word of the reply to a sentiment label.
type GeminiClassifier struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

// NewGeminiClassifier creates a classifier against the public endpoint,
// or a custom base URL when one is configured.
func NewGeminiClassifier(baseURL, apiKey, modelName string) *GeminiClassifier {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	return &GeminiClassifier{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   modelName,
		Client:  &http.Client{Timeout: 20 * time.Second},
	}
}

func (g *GeminiClassifier) Name() string { return "gemini" }

type generateRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Classify asks for exactly one word and parses it. Anything
// unrecognized comes back as Neutral.
func (g *GeminiClassifier) Classify(ctx context.Context, symbol string, headlines []string) (model.Sentiment, error) {
	prompt := buildPrompt(symbol, headlines)

	var reqBody generateRequest
	reqBody.Contents = make([]struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	}, 1)
	reqBody.Contents[0].Parts = []struct {
		Text string `json:"text"`
	}{{Text: prompt}}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return model.SentimentNeutral, fmt.Errorf("marshal request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.BaseURL, url.PathEscape(g.Model), url.QueryEscape(g.APIKey))
	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewReader(payload))
	if err != nil {
		return model.SentimentNeutral, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return model.SentimentNeutral, fmt.Errorf("sentiment request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return model.SentimentNeutral, fmt.Errorf("sentiment API: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.SentimentNeutral, fmt.Errorf("sentiment decode: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return model.SentimentNeutral, fmt.Errorf("sentiment API: empty response")
	}

	return ParseLabel(result.Candidates[0].Content.Parts[0].Text), nil
}

func buildPrompt(symbol string, headlines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a stock sentiment classifier. Ticker: %s.\n", symbol)
	if len(headlines) > 0 {
		if len(headlines) > 5 {
			headlines = headlines[:5]
		}
		b.WriteString("Recent headlines:\n")
		for _, h := range headlines {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}
	b.WriteString("Answer with exactly one word: Positive, Negative, or Neutral.")
	return b.String()
}

// ParseLabel maps the first word of a reply to a sentiment label.
// Unrecognized replies are Neutral.
func ParseLabel(text string) model.Sentiment {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return model.SentimentNeutral
	}
	word := strings.ToLower(strings.Trim(fields[0], ".,!\"'"))
	switch word {
	case "positive", "bullish":
		return model.SentimentBullish
	case "negative", "bearish":
		return model.SentimentBearish
	default:
		return model.SentimentNeutral
	}
}
