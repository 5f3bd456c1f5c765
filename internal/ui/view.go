package ui

import (
	"fmt"
	"strings"

	"blizhe/internal/domain"
)

var tierTitles = map[domain.CompletionTier]string{
	domain.TierFull: "You made it through every question",
	domain.TierHalf: "A real conversation happened tonight",
	domain.TierBase: "Even one honest answer counts",
}

// Closing questions to talk over after the session, per audience.
var reflections = map[domain.Target][]string{
	domain.TargetCouple: {
		"Which answer surprised you the most?",
		"What would you like to ask each other more often?",
	},
	domain.TargetFamily: {
		"What did you learn about someone at the table?",
		"Which question should become a family tradition?",
	},
	domain.TargetParentAdultChild: {
		"What did you hear today that you had never heard before?",
		"When should you talk like this again?",
	},
}

var targetLabels = map[domain.Target]string{
	domain.TargetCouple:           "couple",
	domain.TargetFamily:           "family",
	domain.TargetParentAdultChild: "parent & adult child",
}

func (m *Model) View() string {
	switch m.screen {
	case screenWelcome:
		return m.viewWelcome()
	case screenSetup:
		return m.form.View()
	case screenPreSession:
		return m.viewPreSession()
	case screenQuestion:
		return m.viewQuestion()
	case screenResults:
		return m.viewResults()
	case screenHistory:
		return m.viewHistory()
	}
	return ""
}

func (m *Model) viewWelcome() string {
	var b strings.Builder

	b.WriteString(m.styles.AppName.Render("Blizhe"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Questions that bring you closer"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Normal.Render("Put the phones away, pour something warm, and take turns answering."))
	b.WriteString("\n")

	if m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.errorMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp(
		"enter", "start a session",
		"v", "history & favorites",
		"q", "quit",
	))
	return b.String()
}

func (m *Model) viewPreSession() string {
	cfg := m.engine.Config()
	_, total := m.engine.Progress()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Ready when you are"))
	b.WriteString("\n")
	b.WriteString(m.styles.Normal.Render(fmt.Sprintf(
		"%d questions for a %s session.", total, targetLabels[cfg.Target])))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("Read each question out loud. Everyone answers before moving on."))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("There are no wrong answers, and skipping is always allowed."))
	b.WriteString("\n")

	if cfg.Crisis {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("Crisis mode is on. Go gently, and stop whenever you need to."))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp(
		"enter", "begin",
		"esc", "back",
	))
	return b.String()
}

func (m *Model) viewQuestion() string {
	q, ok := m.engine.Current()
	if !ok {
		return ""
	}
	current, total := m.engine.Progress()

	var b strings.Builder

	counter := fmt.Sprintf("Question %d of %d", current, total)
	if m.engine.IsFavorite() {
		counter += "  " + m.styles.Favorite.Render("♥")
	}
	b.WriteString(m.styles.Counter.Render(counter))
	b.WriteString("\n")
	b.WriteString(m.progressBar.ViewAs(float64(current-1) / float64(total)))
	b.WriteString("\n\n")

	if q.TriggerWarning != "" {
		b.WriteString(m.styles.Warning.Render(q.TriggerWarning))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Question.Render(q.Text))
	b.WriteString("\n")

	if q.Goal != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(q.Goal))
		b.WriteString("\n")
	}

	if m.showHint && q.Hint != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render("Hint: " + q.Hint))
		b.WriteString("\n")
	}

	if m.confirmEnd {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("End the session now? Press e again to confirm."))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp(
		"enter", "next",
		"s", "skip",
		"f", "favorite",
		"h", "hint",
		"e", "end",
	))
	return b.String()
}

func (m *Model) viewResults() string {
	results := m.engine.Results()
	if results == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(tierTitles[results.Tier]))
	b.WriteString("\n")

	stats := []string{
		m.styles.Answered.Render(fmt.Sprintf("%d answered", results.Answered)),
		m.styles.Skipped.Render(fmt.Sprintf("%d skipped", results.Skipped)),
	}
	if results.Favorited > 0 {
		stats = append(stats, m.styles.Favorite.Render(fmt.Sprintf("%d favorited", results.Favorited)))
	}
	if results.Minutes > 0 {
		stats = append(stats, m.styles.Muted.Render(fmt.Sprintf("%d min together", results.Minutes)))
	}
	b.WriteString(m.styles.ResultCard.Render(strings.Join(stats, "   ")))
	b.WriteString("\n")

	if favorites := m.engine.FavoriteTexts(); len(favorites) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Favorite.Render("Saved for later:"))
		b.WriteString("\n")
		for _, text := range favorites {
			b.WriteString(m.styles.Normal.Render("  ♥ " + text))
			b.WriteString("\n")
		}
	}

	if prompts := reflections[m.engine.Config().Target]; len(prompts) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("Before you go:"))
		b.WriteString("\n")
		for _, p := range prompts {
			b.WriteString(m.styles.Normal.Render("  · " + p))
			b.WriteString("\n")
		}
	}

	if m.tip != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render("Tip: " + m.tip))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp(
		"r", "same settings again",
		"n", "new session",
		"v", "history",
		"q", "quit",
	))
	return b.String()
}

func (m *Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Past sessions"))
	b.WriteString("\n")

	if m.errorMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errorMsg))
		b.WriteString("\n")
	}

	if len(m.history) == 0 {
		b.WriteString(m.styles.Muted.Render("Nothing here yet. Your finished sessions will show up here."))
		b.WriteString("\n")
	}
	for _, entry := range m.history {
		line := fmt.Sprintf("%s  %-22s %d/%d answered",
			entry.Date.Format("2006-01-02"),
			targetLabels[entry.Target],
			entry.Answered, entry.Total)
		if entry.Minutes > 0 {
			line += fmt.Sprintf(", %d min", entry.Minutes)
		}
		b.WriteString(m.styles.Normal.Render(line))
		b.WriteString("\n")
	}

	if len(m.allFavorites) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Favorite.Render("All favorites:"))
		b.WriteString("\n")
		for _, text := range m.allFavorites {
			b.WriteString(m.styles.Normal.Render("  ♥ " + text))
			b.WriteString("\n")
		}
	}

	if m.confirmClear {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("Delete all history and favorites? Press C again to confirm."))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp(
		"esc", "back",
		"C", "clear all data",
		"q", "quit",
	))
	return b.String()
}

// renderHelp renders key/label pairs as a single help line.
func (m *Model) renderHelp(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts,
			m.styles.HelpKey.Render(pairs[i])+" "+m.styles.HelpLabel.Render(pairs[i+1]))
	}
	return m.styles.Help.Render(strings.Join(parts, "  ·  "))
}
