package reporting

import (
	"encoding/json"
	"fmt"

	"lottery-tracker/internal/domain"
)

// RenderJSON renders the archival analysis document.
func RenderJSON(a *domain.Analysis) ([]byte, error) {
	out, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}
	return out, nil
}
