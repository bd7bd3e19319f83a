package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/cli/formatter"
)

// browseModel is a navigable list of suggestions with an expandable
// detail pane for the entry under the cursor.
type browseModel struct {
	suggestions []app.Suggestion
	cursor      int
	expanded    bool
}

func newBrowseModel(suggestions []app.Suggestion) browseModel {
	return browseModel{suggestions: suggestions}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.expanded = false
			}
		case "down", "j":
			if m.cursor < len(m.suggestions)-1 {
				m.cursor++
				m.expanded = false
			}
		case "enter", " ":
			m.expanded = !m.expanded
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Learning Suggestions"))
	b.WriteString("\n")
	if len(m.suggestions) == 0 {
		b.WriteString(formatter.Dim("  All caught up! Nothing new for this project right now."))
		b.WriteString("\n")
		return b.String()
	}

	for i, s := range m.suggestions {
		marker := "  "
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
			marker,
			formatter.TypeBadge(s.Type),
			formatter.Bold(s.Title),
			formatter.ScoreBadge(s.RelevanceScore)))

		if i == m.cursor && m.expanded {
			if s.Description != "" {
				b.WriteString(fmt.Sprintf("    %s\n", s.Description))
			}
			if s.Reason != "" {
				b.WriteString(fmt.Sprintf("    %s\n", formatter.Dim(s.Reason)))
			}
			if s.EstimatedTime > 0 {
				b.WriteString(fmt.Sprintf("    %s\n", formatter.StyleBlue.Render(formatter.FormatMinutes(s.EstimatedTime))))
			}
			if len(s.Prerequisites) > 0 {
				b.WriteString(fmt.Sprintf("    %s\n",
					formatter.Dim("requires: "+strings.Join(s.Prerequisites, ", "))))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("  ↑/↓ navigate · enter details · q quit"))
	b.WriteString("\n")
	return b.String()
}

func runSuggestionBrowser(suggestions []app.Suggestion) error {
	_, err := tea.NewProgram(newBrowseModel(suggestions)).Run()
	return err
}
