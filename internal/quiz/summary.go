package quiz

// Summary is the completion screen payload.
type Summary struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Message    string  `json:"message"`
}

// BuildSummary computes the final percentage and the motivational message
// tier for a session. Valid at any point; usually called once completed.
func (s *Session) BuildSummary() Summary {
	total := len(s.Exercises)
	pct := 0.0
	if total > 0 {
		pct = float64(s.Score) / float64(total) * 100
	}
	return Summary{
		Score:      s.Score,
		Total:      total,
		Percentage: pct,
		Message:    motivationalMessage(pct),
	}
}

func motivationalMessage(percentage float64) string {
	switch {
	case percentage >= 80:
		return "🎉 Excelente! Você é um Python Master!"
	case percentage >= 60:
		return "👏 Muito bem! Continue praticando!"
	default:
		return "💪 Não desista! Pratique mais e você consegue!"
	}
}
