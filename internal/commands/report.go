package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/juev/hledger-viewer/internal/hledger"
)

// newReportCommand decodes one report and prints the normalized model as
// JSON. Mostly useful for inspecting what the shell would receive.
func newReportCommand(flags *rootFlags) *cobra.Command {
	var (
		interval string
		tree     bool
		depth    int
		rowTotal bool
		average  bool
		begin    string
		end      string
	)

	cmd := &cobra.Command{
		Use:       "report <balance|balancesheet|incomestatement|cashflow|print> [query...]",
		Short:     "Decode one report and print the normalized model",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"balance", "balancesheet", "incomestatement", "cashflow", "print"},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := buildEnv(flags)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			queries := args[1:]

			var result interface{}
			switch args[0] {
			case "balance":
				result, err = e.svc.Balance(ctx, e.journal, hledger.BalanceOptions{
					Interval: hledger.Interval(interval),
					Tree:     tree,
					Depth:    depth,
					RowTotal: rowTotal,
					Average:  average,
					Begin:    begin,
					End:      end,
					Queries:  queries,
				})
			case "balancesheet", "incomestatement", "cashflow":
				opts := hledger.CompoundOptions{
					Interval: hledger.Interval(interval),
					Tree:     tree,
					Depth:    depth,
					RowTotal: rowTotal,
					Average:  average,
					Begin:    begin,
					End:      end,
					Queries:  queries,
				}
				switch args[0] {
				case "balancesheet":
					result, err = e.svc.BalanceSheet(ctx, e.journal, opts)
				case "incomestatement":
					result, err = e.svc.IncomeStatement(ctx, e.journal, opts)
				default:
					result, err = e.svc.Cashflow(ctx, e.journal, opts)
				}
			case "print":
				result, err = e.svc.Transactions(ctx, e.journal, hledger.PrintOptions{
					Begin:   begin,
					End:     end,
					Queries: queries,
				})
			default:
				return fmt.Errorf("unknown report kind %q", args[0])
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&interval, "interval", "", "period granularity: daily, weekly, monthly, quarterly, yearly")
	cmd.Flags().BoolVar(&tree, "tree", false, "tree mode")
	cmd.Flags().IntVar(&depth, "depth", 0, "depth limit")
	cmd.Flags().BoolVar(&rowTotal, "row-total", false, "include row totals")
	cmd.Flags().BoolVar(&average, "average", false, "include row averages")
	cmd.Flags().StringVar(&begin, "begin", "", "begin date (inclusive)")
	cmd.Flags().StringVar(&end, "end", "", "end date (exclusive)")

	return cmd
}

func newAccountsCommand(flags *rootFlags) *cobra.Command {
	var declared, used bool

	cmd := &cobra.Command{
		Use:   "accounts [query...]",
		Short: "List account names",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := buildEnv(flags)
			if err != nil {
				return err
			}
			accounts, err := e.svc.Accounts(cmd.Context(), e.journal, hledger.AccountsOptions{
				Declared: declared,
				Used:     used,
				Queries:  args,
			})
			if err != nil {
				return err
			}
			for _, account := range accounts {
				fmt.Println(account)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&declared, "declared", false, "include declared accounts")
	cmd.Flags().BoolVar(&used, "used", false, "only accounts with postings")

	return cmd
}
