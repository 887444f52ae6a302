package debate

import goaway "github.com/TwiN/go-away"

// ProfanityOracle screens suggestion text before it reaches the audience.
type ProfanityOracle interface {
	IsProfane(text string) bool
}

type goAwayOracle struct {
	detector *goaway.ProfanityDetector
}

// NewProfanityOracle returns the default oracle backed by go-away's built-in
// dictionary.
func NewProfanityOracle() ProfanityOracle {
	return &goAwayOracle{detector: goaway.NewProfanityDetector()}
}

func (o *goAwayOracle) IsProfane(text string) bool {
	return o.detector.IsProfane(text)
}
