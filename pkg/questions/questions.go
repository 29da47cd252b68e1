package questions

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
)

// MediumTier is used whenever a question is not drawn through a player theme.
const MediumTier = 2

// Question is one entry of the question pool. The pool is read-only once loaded.
type Question struct {
	Prompt  string   `json:"question"`
	Choices []string `json:"options"`
	Correct int      `json:"correct"`
	Theme   string   `json:"theme"`
	Tier    int      `json:"tier"`
	Neutral bool     `json:"neutral"`
}

// Validate checks that the question can be asked.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("question has no prompt")
	}
	if len(q.Choices) == 0 {
		return fmt.Errorf("question %q has no options", q.Prompt)
	}
	if q.Correct < 0 || q.Correct >= len(q.Choices) {
		return fmt.Errorf("question %q has correct index %d out of %d options", q.Prompt, q.Correct, len(q.Choices))
	}
	if q.Tier != 0 && (q.Tier < 1 || q.Tier > 3) {
		return fmt.Errorf("question %q has tier %d, want 1..3", q.Prompt, q.Tier)
	}
	return nil
}

// Pool is an immutable set of questions indexed by theme.
type Pool struct {
	all     []Question
	neutral []Question
	byTheme map[string][]Question
}

// NewPool validates qs and indexes them.
func NewPool(qs []Question) (*Pool, error) {
	p := &Pool{
		all:     make([]Question, 0, len(qs)),
		byTheme: make(map[string][]Question),
	}
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("invalid question %d: %v", i, err)
		}
		q.Choices = append([]string(nil), q.Choices...)
		p.all = append(p.all, q)
		if q.Neutral {
			p.neutral = append(p.neutral, q)
		}
		if q.Theme != "" {
			p.byTheme[q.Theme] = append(p.byTheme[q.Theme], q)
		}
	}
	return p, nil
}

// LoadFile reads a JSON array of questions into a pool.
func LoadFile(path string) (*Pool, error) {
	qs, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewPool(qs)
}

// ReadFile reads a JSON array of questions without indexing them.
func ReadFile(path string) ([]Question, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions file: %v", err)
	}

	var qs []Question
	if err := json.Unmarshal(b, &qs); err != nil {
		return nil, fmt.Errorf("failed to parse questions file: %v", err)
	}
	return qs, nil
}

// Size returns the number of questions in the pool.
func (p *Pool) Size() int {
	return len(p.all)
}

// Themes returns how many questions each theme has.
func (p *Pool) Themes() map[string]int {
	counts := make(map[string]int, len(p.byTheme))
	for theme, qs := range p.byTheme {
		counts[theme] = len(qs)
	}
	return counts
}

// DrawAny draws uniformly from the whole pool.
func (p *Pool) DrawAny(rng *rand.Rand) (Question, bool) {
	return draw(p.all, rng)
}

// DrawNeutral draws uniformly from the neutral questions, falling back to the
// whole pool when there are none.
func (p *Pool) DrawNeutral(rng *rand.Rand) (Question, bool) {
	if len(p.neutral) == 0 {
		return p.DrawAny(rng)
	}
	return draw(p.neutral, rng)
}

// DrawTheme draws uniformly among the questions tagged with theme.
// It reports false when the theme has no question.
func (p *Pool) DrawTheme(theme string, rng *rand.Rand) (Question, bool) {
	return draw(p.byTheme[theme], rng)
}

func draw(qs []Question, rng *rand.Rand) (Question, bool) {
	if len(qs) == 0 {
		return Question{}, false
	}
	q := qs[rng.IntN(len(qs))]
	q.Choices = append([]string(nil), q.Choices...)
	return q, true
}
