package cmd

import (
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/elseano/spinner/pkg/menu"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Ask a few typed questions and print the answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := menu.New([]menu.Field{
				menu.NewField("First Name", menu.Text, menu.Required, nil),
				menu.NewField("Last Name", menu.Text, menu.Optional, nil),
				menu.NewField("Age", menu.Integer, menu.Required, menu.IntValue(1)),
				menu.NewField("How much Ketchup?", menu.Float, menu.Required, nil),
			}, menuOptions(cmd)...)
			if err != nil {
				return err
			}

			results, err := m.Display()
			if err != nil {
				return err
			}

			renderResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

func menuOptions(cmd *cobra.Command) []menu.Option {
	return []menu.Option{
		menu.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
		menu.WithColors(colors()),
	}
}

func renderResults(out io.Writer, results menu.Results) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Field", "Type", "Value"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, f := range results {
		value := color.New(color.Faint).Sprint("(none)")
		if f.HasValue() {
			value = color.CyanString("%s", f.Value.String())
		}

		table.Append([]string{f.Label, f.Kind.String(), value})
	}

	io.WriteString(out, "\n")
	table.Render()
}
