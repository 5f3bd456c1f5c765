package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"blizhe/internal/domain"
	"blizhe/internal/logging"
)

// Catalog is the immutable set of questions and tips available to
// sessions. It is loaded once at startup.
type Catalog struct {
	questions []domain.Question
	byID      map[int]domain.Question
	tips      []string
}

type questionsFile struct {
	Questions []domain.Question `json:"questions"`
}

type tipsFile struct {
	Tips []string `json:"tips"`
}

// Load reads questions.json and tips.json from dataDir, falling back
// to the built-in sets when a file is missing or malformed. There are
// no partial catalogs: either a file fully parses or its built-in
// replacement is used wholesale. Load never fails.
func Load(ctx context.Context, dataDir string) *Catalog {
	var questions []domain.Question
	var tips []string

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		qs, err := loadQuestionsFile(filepath.Join(dataDir, "questions.json"))
		if err != nil {
			logging.Logger.Info("Using built-in questions", "reason", err)
			qs = builtinQuestions()
		}
		questions = qs
		return nil
	})
	g.Go(func() error {
		ts, err := loadTipsFile(filepath.Join(dataDir, "tips.json"))
		if err != nil {
			logging.Logger.Info("Using built-in tips", "reason", err)
			ts = builtinTips()
		}
		tips = ts
		return nil
	})
	g.Wait() //nolint:errcheck // both loaders recover locally

	return New(questions, tips)
}

// New builds a catalog from already-loaded data.
func New(questions []domain.Question, tips []string) *Catalog {
	byID := make(map[int]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &Catalog{questions: questions, byID: byID, tips: tips}
}

func loadQuestionsFile(path string) ([]domain.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f questionsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("%s contains no questions", path)
	}
	seen := make(map[int]bool, len(f.Questions))
	for _, q := range f.Questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("%s contains duplicate question id %d", path, q.ID)
		}
		seen[q.ID] = true
	}
	logging.Logger.Info("Loaded questions", "path", path, "count", len(f.Questions))
	return f.Questions, nil
}

func loadTipsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f tipsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(f.Tips) == 0 {
		return nil, fmt.Errorf("%s contains no tips", path)
	}
	return f.Tips, nil
}

// Questions returns the full question set. Callers must not mutate
// the returned slice.
func (c *Catalog) Questions() []domain.Question {
	return c.questions
}

// Lookup returns the question with the given id.
func (c *Catalog) Lookup(id int) (domain.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Tips returns the loaded tip list.
func (c *Catalog) Tips() []string {
	return c.tips
}

// RandomTip picks one tip for the results screen.
func (c *Catalog) RandomTip() string {
	if len(c.tips) == 0 {
		return ""
	}
	return c.tips[rand.IntN(len(c.tips))]
}
