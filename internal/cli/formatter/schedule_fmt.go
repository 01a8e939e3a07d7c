package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/averyhall/tempo/internal/domain"
)

// RenderSchedule renders a full week suggestion: placements grouped by day,
// then dropped conflicts, unplaced items, warnings, and a reasoning footer.
func RenderSchedule(s *domain.ScheduleSuggestion) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Week of %s", s.WeekStart.Format("Jan 2, 2006"))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", StatusIndicator(s.Status), Dim(s.Algorithm)))
	b.WriteString("\n")

	if len(s.Placements) == 0 {
		b.WriteString(Dim("  Nothing scheduled this week.") + "\n")
	}

	placements := make([]domain.ScheduledPlacement, len(s.Placements))
	copy(placements, s.Placements)
	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].Start.Before(placements[j].Start)
	})

	var lastDay string
	for _, p := range placements {
		day := p.Start.Format("Monday Jan 2")
		if day != lastDay {
			if lastDay != "" {
				b.WriteString("\n")
			}
			b.WriteString("  " + Bold(day) + "\n")
			lastDay = day
		}
		b.WriteString(fmt.Sprintf("    %s  %s",
			Dim(fmt.Sprintf("%s–%s", p.Start.Format("15:04"), p.End.Format("15:04"))),
			ActivityColor(p.Activity).Render(p.Title)))
		if p.SuggestedPodcast != "" {
			b.WriteString(Dim(fmt.Sprintf("  ♪ %s", p.SuggestedPodcast)))
		}
		if !p.IsFlexible {
			b.WriteString(Dim("  (fixed)"))
		}
		b.WriteString("\n")
		if p.Description != "" {
			b.WriteString(Dim("      "+p.Description) + "\n")
		}
	}

	if len(s.Conflicts) > 0 {
		b.WriteString("\n" + Header("Dropped") + "\n")
		for _, c := range s.Conflicts {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				StyleRed.Render("✗"),
				fmt.Sprintf("%s overlapped %s", c.Title, Bold(c.With))))
		}
	}

	if len(s.Unplaced) > 0 {
		b.WriteString("\n" + Header("Unplaced") + "\n")
		headers := []string{"Item", "Priority", "Reason"}
		rows := make([][]string, 0, len(s.Unplaced))
		for _, u := range s.Unplaced {
			reason := string(u.Reason)
			if u.Detail != "" {
				reason = u.Detail
			}
			rows = append(rows, []string{
				u.Title,
				fmt.Sprintf("%d", u.Priority),
				Dim(reason),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	for _, w := range s.Warnings {
		b.WriteString("\n  " + SeverityColor(w.Severity).Render("! "+w.Message))
	}
	if len(s.Warnings) > 0 {
		b.WriteString("\n")
	}

	if s.Reasoning != "" {
		b.WriteString("\n" + Dim("  "+s.Reasoning) + "\n")
	}
	b.WriteString(Dim(fmt.Sprintf("  confidence %.0f%%", s.Confidence*100)) + "\n")

	return b.String()
}
