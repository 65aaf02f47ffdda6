package dialect

// Hint is a small piece of evidence suggesting a particular language.
type Hint struct {
	Kind   Kind
	Score  int
	Reason string
}

// Evidence aggregates hints collected while scanning raw source text.
type Evidence struct {
	hints []Hint
}

// NewEvidence creates a new Evidence container.
func NewEvidence() *Evidence {
	return &Evidence{
		hints: make([]Hint, 0, 16),
	}
}

// Add appends a hint to the evidence collection.
func (e *Evidence) Add(h Hint) {
	if e == nil {
		return
	}
	e.hints = append(e.hints, h)
}

// Hints returns the collected hints.
func (e *Evidence) Hints() []Hint {
	if e == nil {
		return nil
	}
	return e.hints
}

// Classification is the result of scoring evidence for a file.
type Classification struct {
	Kind       Kind
	Score      int
	TotalScore int
	Confidence float64
}

// Classify scores the evidence and chooses the dominant language.
func Classify(e *Evidence) Classification {
	if e == nil || len(e.hints) == 0 {
		return Classification{Kind: Unknown}
	}

	var scores [kindCount]int
	total := 0
	for _, h := range e.hints {
		if h.Score <= 0 {
			continue
		}
		if h.Kind <= Unknown || h.Kind >= kindCount {
			continue
		}
		scores[h.Kind] += h.Score
		total += h.Score
	}

	bestKind := Unknown
	bestScore := 0
	for k := JavaScript; k < kindCount; k++ {
		if scores[k] > bestScore {
			bestKind, bestScore = k, scores[k]
		}
	}

	conf := 0.0
	if total > 0 {
		conf = float64(bestScore) / float64(total)
	}

	return Classification{
		Kind:       bestKind,
		Score:      bestScore,
		TotalScore: total,
		Confidence: conf,
	}
}
