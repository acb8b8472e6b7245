package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lottery-tracker/internal/domain"
	"lottery-tracker/internal/notify"
	"lottery-tracker/internal/source"
)

func TestSend_PostsJSONPayload(t *testing.T) {
	var received notify.Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	raw := &source.RawDraw{
		TicketNumber: "12345",
		Date:         time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC),
		URL:          "https://example.com/sorteo",
	}
	result := domain.DrawResult{
		Date: raw.Date, Stake: 6, Prize: 60, Hit: true,
		Note: "tiene un premio de 60 €",
	}
	msg := notify.WeeklyResult(raw, result, time.Date(2024, 12, 14, 22, 0, 0, 0, time.UTC))

	webhook := NewWebhook(server.URL)
	if err := webhook.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(received.Embeds) != 1 {
		t.Fatalf("expected 1 embed, got %d", len(received.Embeds))
	}
	embed := received.Embeds[0]
	if embed.Title != "Lotería Nacional - 2024-12-14" {
		t.Errorf("unexpected title %q", embed.Title)
	}
	if embed.Color != notify.ColorWin {
		t.Errorf("expected win color, got %#x", embed.Color)
	}
	if embed.URL != raw.URL {
		t.Errorf("expected result URL, got %q", embed.URL)
	}
}

func TestSend_FailureEmbed(t *testing.T) {
	var received notify.Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
	}))
	defer server.Close()

	msg := notify.CheckFailed("12345", time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC), "timeout", time.Now())
	if err := NewWebhook(server.URL).Send(context.Background(), msg); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(received.Embeds) != 1 || received.Embeds[0].Color != notify.ColorFailure {
		t.Errorf("expected failure embed, got %+v", received)
	}
}

func TestSend_NonSuccessStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	err := NewWebhook(server.URL).Send(context.Background(), notify.Message{Content: "hola"})
	if err == nil {
		t.Fatal("expected error on 429 response")
	}
}

func TestSend_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := NewWebhook(server.URL, WithTimeout(time.Second)).Send(context.Background(), notify.Message{Content: "hola"})
	if err == nil {
		t.Fatal("expected transport error")
	}
}
