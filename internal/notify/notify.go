// Package notify defines the chat notification boundary. Delivery is
// fire-and-forget: transport-level success is the only acknowledgment.
package notify

import (
	"context"
	"fmt"
	"time"

	"lottery-tracker/internal/domain"
	"lottery-tracker/internal/source"
)

// Embed colors.
const (
	ColorWin     = 0x00FF00
	ColorFailure = 0xFF0000
)

// Message is a chat notification payload, shaped after the Discord webhook
// schema (other sinks may render only Content).
type Message struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// Embed is one rich block within a message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	URL         string       `json:"url,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

// EmbedField is a labeled value inside an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Sink delivers a notification message.
type Sink interface {
	Send(ctx context.Context, msg Message) error
}

// WeeklyResult builds the notification for a checked draw.
func WeeklyResult(raw *source.RawDraw, result domain.DrawResult, now time.Time) Message {
	outcome := "Sin premio"
	if result.Hit {
		outcome = fmt.Sprintf("Premio de %.2f €", result.Prize)
	}

	return Message{
		Embeds: []Embed{{
			Title:       fmt.Sprintf("Lotería Nacional - %s", result.Date.Format("2006-01-02")),
			Description: fmt.Sprintf("Número comprobado: **%s**", raw.TicketNumber),
			Color:       ColorWin,
			URL:         raw.URL,
			Fields: []EmbedField{
				{Name: "Resultado", Value: outcome},
				{Name: "Detalle", Value: result.Note},
			},
			Timestamp: now.Format(time.RFC3339),
		}},
	}
}

// CheckFailed builds the notification for a check that could not complete.
func CheckFailed(ticketNumber string, date time.Time, reason string, now time.Time) Message {
	return Message{
		Content: "Error: no se pudo comprobar la lotería",
		Embeds: []Embed{{
			Title:       fmt.Sprintf("Comprobación fallida - %s", date.Format("2006-01-02")),
			Description: fmt.Sprintf("Número %s: %s", ticketNumber, reason),
			Color:       ColorFailure,
			Timestamp:   now.Format(time.RFC3339),
		}},
	}
}
