package reporting

import (
	"fmt"
	"strings"
	"time"

	"lottery-tracker/internal/domain"
)

// detailedResultLimit caps the per-draw listing at the digest's tail.
const detailedResultLimit = 10

// RenderMarkdown renders the analysis as a human-readable digest.
func RenderMarkdown(a *domain.Analysis) string {
	var sb strings.Builder
	s := a.Statistics

	sb.WriteString("# Análisis de Lotería Nacional\n\n")
	sb.WriteString(fmt.Sprintf("**Número analizado:** %s\n", a.TicketNumber))
	sb.WriteString(fmt.Sprintf("**Período:** %s - %s\n\n", formatDate(a.PeriodStart), formatDate(a.PeriodEnd)))

	sb.WriteString("## Estadísticas generales\n\n")
	sb.WriteString(fmt.Sprintf("- Total de boletos: %d\n", s.TicketCount))
	sb.WriteString(fmt.Sprintf("- Tasa de acierto: %s\n", formatPercent(s.WinRate)))
	sb.WriteString(fmt.Sprintf("- Mayor premio: %.2f €\n", s.BiggestPrize))
	if s.LastWinDate != nil {
		sb.WriteString(fmt.Sprintf("- Última victoria: %s\n", s.LastWinDate.Format("2006-01-02")))
	} else {
		sb.WriteString("- Última victoria: nunca\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Análisis económico\n\n")
	sb.WriteString(fmt.Sprintf("- Total gastado: %.2f €\n", s.TotalSpent))
	sb.WriteString(fmt.Sprintf("- Total ganado: %.2f €\n", s.TotalWon))
	sb.WriteString(fmt.Sprintf("- Beneficio neto: %.2f €\n", s.NetProfit))
	sb.WriteString(fmt.Sprintf("- ROI: %s\n\n", formatPercent(s.ROI)))

	if a.SkippedWeeks > 0 {
		sb.WriteString(fmt.Sprintf("**Atención:** %d semana(s) omitida(s); las estadísticas son parciales.\n\n", a.SkippedWeeks))
	}

	sb.WriteString("## Resultados detallados\n\n")
	tail := a.Results
	if len(tail) > detailedResultLimit {
		tail = tail[len(tail)-detailedResultLimit:]
	}
	for _, r := range tail {
		status := "Sin premio"
		if r.Hit {
			status = fmt.Sprintf("Premio %.2f €", r.Prize)
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", r.Date.Format("2006-01-02"), status))
	}
	if hidden := len(a.Results) - detailedResultLimit; hidden > 0 {
		sb.WriteString(fmt.Sprintf("\n... y %d resultados más\n", hidden))
	}

	return sb.String()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "n/a"
	}
	return t.Format("2006-01-02")
}

func formatPercent(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *v*100)
}
