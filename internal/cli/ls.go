package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/lootlogger/internal/presenter"
	"github.com/idilsaglam/lootlogger/internal/tui"
	"github.com/idilsaglam/lootlogger/internal/ui"
)

func newLsCmd(app *App) *cobra.Command {
	var (
		flat  bool
		width int
	)
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print the list grouped into Over $50 and Up to $50",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.session()
			if err != nil {
				return err
			}
			var lines []string
			if flat {
				lines = flatLines(p, width)
			} else {
				lines = tui.Lines(p, width)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(lines))
			return nil
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "List in store order without grouping")
	cmd.Flags().IntVar(&width, "width", 40, "Row width")
	return cmd
}

// flatLines numbers items in store order, 1-based.
func flatLines(p *presenter.Presenter, width int) []string {
	t := ui.Current()
	items := p.Items()
	if len(items) == 0 {
		return []string{t.Muted.Render(presenter.EmptyText)}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		out = append(out, fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%2d.", i+1)), ui.Row(it.Name, it.Price(), width-4)))
	}
	return out
}
