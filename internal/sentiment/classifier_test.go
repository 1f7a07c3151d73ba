package sentiment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"SignalScout/internal/model"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		reply string
		want  model.Sentiment
	}{
		{"Positive", model.SentimentBullish},
		{"positive.", model.SentimentBullish},
		{"Bullish outlook overall", model.SentimentBullish},
		{"Negative", model.SentimentBearish},
		{"  bearish\n", model.SentimentBearish},
		{"Neutral", model.SentimentNeutral},
		{"I cannot answer that", model.SentimentNeutral},
		{"", model.SentimentNeutral},
	}
	for _, tt := range tests {
		if got := ParseLabel(tt.reply); got != tt.want {
			t.Errorf("ParseLabel(%q) = %s, want %s", tt.reply, got, tt.want)
		}
	}
}

func TestGeminiClassifier_Classify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Positive"}]}}]}`))
	}))
	defer srv.Close()

	g := NewGeminiClassifier(srv.URL, "test-key", "test-model")
	got, err := g.Classify(context.Background(), "NVDA", []string{"Record quarter"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != model.SentimentBullish {
		t.Errorf("expected bullish, got %s", got)
	}
}

func TestGeminiClassifier_FailureIsNeutral(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGeminiClassifier(srv.URL, "test-key", "test-model")
	got, err := g.Classify(context.Background(), "NVDA", nil)
	if err == nil {
		t.Fatal("expected an error on 429")
	}
	if got != model.SentimentNeutral {
		t.Errorf("failed classification must return neutral, got %s", got)
	}
}

func TestDisabled(t *testing.T) {
	var c Classifier = Disabled{}
	got, err := c.Classify(context.Background(), "AAPL", nil)
	if err != nil || got != model.SentimentNeutral {
		t.Errorf("disabled classifier must be neutral and error-free, got %s, %v", got, err)
	}
}
