package story

import (
	"fmt"
	"strings"

	"mlb-storyteller-service/internal/domain"
	"mlb-storyteller-service/internal/quiz"
)

const maxPromptPlays = 12

func buildStoryPrompt(record domain.GameRecord, prefs Preferences) string {
	style := normalizeStyle(prefs.Style)

	var b strings.Builder
	fmt.Fprintf(&b, "As a baseball storyteller, create a %s narrative about this game.\n\n", style)

	fmt.Fprintf(&b, "Game Summary:\n%s vs %s\n", record.Summary.HomeTeam, record.Summary.AwayTeam)
	fmt.Fprintf(&b, "Score: %s %d, %s %d\n",
		record.Summary.HomeTeam, record.Summary.HomeScore,
		record.Summary.AwayTeam, record.Summary.AwayScore,
	)
	fmt.Fprintf(&b, "Status: %s\n", record.Summary.Status)
	if record.Summary.Venue != "" {
		fmt.Fprintf(&b, "Venue: %s\n", record.Summary.Venue)
	}

	b.WriteString("\nKey Plays:\n")
	plays := keyPlayLines(record)
	if len(plays) == 0 {
		b.WriteString("No key plays available yet\n")
	} else {
		for _, line := range plays {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}

	writeLeaders(&b, record.Leaders)

	b.WriteString("\nFocus on:\n")
	if prefs.FavoriteTeam != "" {
		fmt.Fprintf(&b, "- Your favorite team: %s\n", prefs.FavoriteTeam)
	} else {
		b.WriteString("- Both teams equally\n")
	}
	if len(prefs.FavoritePlayers) > 0 {
		fmt.Fprintf(&b, "- Key players: %s\n", strings.Join(prefs.FavoritePlayers, ", "))
	} else {
		b.WriteString("- Key players: All notable performances\n")
	}

	b.WriteString("\nStyle Guide:\n")
	switch style {
	case StyleAnalytical:
		b.WriteString("- Focus on statistics, strategy, and technical aspects\n")
	case StyleHumorous:
		b.WriteString("- Add wit and light-hearted observations\n")
	default:
		b.WriteString("- Create an emotional and engaging narrative that captures the excitement\n")
	}
	b.WriteString("\nMake the story personal and engaging, highlighting moments that would interest this specific fan.\n")

	return b.String()
}

func buildQuizPrompt(record domain.GameRecord) string {
	var b strings.Builder
	b.WriteString("You are a baseball quiz writer. Write a quiz about this game.\n\n")
	fmt.Fprintf(&b, "Game: %s vs %s, final score %s %d, %s %d.\n",
		record.Summary.HomeTeam, record.Summary.AwayTeam,
		record.Summary.HomeTeam, record.Summary.HomeScore,
		record.Summary.AwayTeam, record.Summary.AwayScore,
	)

	plays := keyPlayLines(record)
	if len(plays) > 0 {
		b.WriteString("\nKey plays:\n")
		for _, line := range plays {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	writeLeaders(&b, record.Leaders)

	fmt.Fprintf(&b, `
Respond with a single JSON object and nothing else, in this exact shape:

{
  "questions": [
    {
      "question": "...",
      "options": ["...", "...", "...", "..."],
      "correct_answer": "...",
      "explanation": "..."
    }
  ]
}

Rules:
- Exactly %d questions.
- Exactly 4 options per question.
- correct_answer must match one of the options verbatim.
- Every question must be answerable from the game facts above.
`, quiz.QuestionCount)

	return b.String()
}

// keyPlayLines picks the scoring plays, capped so the prompt stays bounded.
func keyPlayLines(record domain.GameRecord) []string {
	if record.Plays == nil {
		return nil
	}
	lines := make([]string, 0, len(record.Plays.ScoringPlays))
	for _, idx := range record.Plays.ScoringPlays {
		if idx < 0 || idx >= len(record.Plays.Events) {
			continue
		}
		play := record.Plays.Events[idx]
		if play.Description == "" {
			continue
		}
		lines = append(lines, play.Description)
		if len(lines) == maxPromptPlays {
			break
		}
	}
	return lines
}

func writeLeaders(b *strings.Builder, leaders *domain.Leaders) {
	if leaders == nil {
		return
	}
	writePerformances(b, "Batting Highlights", leaders.Batting)
	writePerformances(b, "Pitching Highlights", leaders.Pitching)
	writePerformances(b, "Fielding Highlights", leaders.Fielding)
}

func writePerformances(b *strings.Builder, heading string, perfs []domain.Performance) {
	if len(perfs) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", heading)
	for _, p := range perfs {
		fmt.Fprintf(b, "- %s: %s\n", p.Name, p.Highlight)
	}
}

func normalizeStyle(style string) string {
	switch style {
	case StyleAnalytical, StyleHumorous, StyleDramatic:
		return style
	default:
		return StyleDramatic
	}
}
