package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/elseano/spinner/pkg/menu"
)

func newTipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tip",
		Short: "Split a bill and tip between people",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := menu.New([]menu.Field{
				menu.NewField("Bill", menu.Float, menu.Required, nil),
				menu.NewField("Tip Percentage (eg. 10 for 10%)", menu.Integer, menu.Required, menu.IntValue(10)),
				menu.NewField("Number of People", menu.Integer, menu.Required, menu.IntValue(1)),
			}, menuOptions(cmd)...)
			if err != nil {
				return err
			}

			results, err := m.Display()
			if err != nil {
				return err
			}

			bill := results[0].MustFloat().Float64
			percentage := results[1].MustInt().Int64
			people := results[2].MustInt().Int64

			each, tip, err := splitBill(bill, percentage, people)
			if errors.Is(err, errNoPayers) {
				fmt.Fprintln(cmd.OutOrStdout(), err)
				return nil
			} else if err != nil {
				return err
			}

			who := "You pay"
			if people > 1 {
				who = "Each of you pay"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s, the tip is %s\n",
				who, color.GreenString("%.2f", each), color.GreenString("%.2f", tip))

			return nil
		},
	}
}

func splitBill(bill float64, percentage, people int64) (each float64, tip float64, err error) {
	if people < 1 {
		return 0, 0, errNoPayers
	}

	tip = bill * float64(percentage) / 100
	return (bill + tip) / float64(people), tip, nil
}
