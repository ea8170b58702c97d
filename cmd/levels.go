package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/composition/internal/levels"
	"github.com/abhisek/composition/internal/session"
	"github.com/abhisek/composition/internal/ui/theme"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels and their targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := levelsTable()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

func levelsTable() (*table.Table, error) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("LEVEL", "MAX SUM", "RIGHT ANSWERS", "PERCENT", "TIME").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, lvl := range levels.All() {
		s, err := levels.Resolve(lvl)
		if err != nil {
			return nil, err
		}
		t.Row(
			lvl.String(),
			strconv.Itoa(s.MaxSumValue),
			strconv.Itoa(s.MinCountRightAnswers),
			strconv.Itoa(s.MinPercentOfRightAnswers)+"%",
			session.FormatTime(s.GameTime()),
		)
	}
	return t, nil
}
