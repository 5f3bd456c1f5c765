package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blizhe/internal/domain"
)

func TestLoad_FallsBackWhenDirMissing(t *testing.T) {
	cat := Load(context.Background(), filepath.Join(t.TempDir(), "nope"))

	assert.Len(t, cat.Questions(), 20)
	assert.Len(t, cat.Tips(), 5)
}

func TestLoad_ReadsExternalFiles(t *testing.T) {
	dir := t.TempDir()
	questions := `{"questions":[
		{"id":1,"text":"first","target":"any","stage":"any","depth":"easy","isCrisisSuitable":true},
		{"id":2,"text":"second","target":"couple","stage":"early","depth":"deep","isCrisisSuitable":false}
	]}`
	tips := `{"tips":["one tip"]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "questions.json"), []byte(questions), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tips.json"), []byte(tips), 0644))

	cat := Load(context.Background(), dir)

	assert.Len(t, cat.Questions(), 2)
	assert.Equal(t, []string{"one tip"}, cat.Tips())

	q, ok := cat.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "second", q.Text)
	assert.Equal(t, domain.TargetCouple, q.Target)
	assert.Equal(t, domain.DepthDeep, q.Depth)
}

func TestLoad_RejectsMalformedFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{"questions": [`},
		{"empty question list", `{"questions":[]}`},
		{"duplicate ids", `{"questions":[
			{"id":1,"text":"a","target":"any","stage":"any","depth":"easy"},
			{"id":1,"text":"b","target":"any","stage":"any","depth":"easy"}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "questions.json"), []byte(tt.content), 0644))

			cat := Load(context.Background(), dir)

			// The malformed file is replaced wholesale by the built-ins.
			assert.Len(t, cat.Questions(), 20)
		})
	}
}

func TestLookup_UnknownID(t *testing.T) {
	cat := New(builtinQuestions(), nil)

	_, ok := cat.Lookup(999)
	assert.False(t, ok)
}

func TestRandomTip(t *testing.T) {
	t.Run("empty tips", func(t *testing.T) {
		cat := New(nil, nil)
		assert.Equal(t, "", cat.RandomTip())
	})

	t.Run("tip from list", func(t *testing.T) {
		cat := New(nil, []string{"a", "b"})
		assert.Contains(t, []string{"a", "b"}, cat.RandomTip())
	})
}

func TestBuiltinQuestions_Attributes(t *testing.T) {
	questions := builtinQuestions()
	require.Len(t, questions, 20)

	seen := make(map[int]bool)
	for _, q := range questions {
		assert.False(t, seen[q.ID], "duplicate id %d", q.ID)
		seen[q.ID] = true

		assert.NotEmpty(t, q.Text, "question %d has no text", q.ID)
		assert.False(t, q.IsPremium, "built-in question %d must not be premium", q.ID)
	}

	t.Run("deep questions carry warnings and crisis limits", func(t *testing.T) {
		for _, q := range questions {
			if q.Depth != domain.DepthDeep {
				continue
			}
			assert.NotEmpty(t, q.TriggerWarning, "deep question %d", q.ID)
			assert.False(t, q.IsCrisisSuitable, "deep question %d", q.ID)
			assert.Equal(t, []domain.CrisisLevel{domain.CrisisLow}, q.CrisisAllowed)
		}
	})

	t.Run("only one audience-restricted question", func(t *testing.T) {
		for _, q := range questions {
			if q.ID == 9 {
				assert.Equal(t, domain.TargetCouple, q.Target)
			} else {
				assert.Equal(t, domain.TargetAny, q.Target)
			}
		}
	})
}
