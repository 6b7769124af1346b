package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avvvet/signin-register/internal/export"
	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/avvvet/signin-register/internal/screen"
)

func newVisitorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "visitors",
		Aliases: []string{"visitor"},
		Short:   "Visitor sign-ins",
	}
	cmd.AddCommand(newVisitorsListCmd(), newVisitorsAddCmd())
	return cmd
}

func newVisitorsListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visitors",
		Long:  "List visitors signed in within a date window (today by default), optionally narrowed by a text search over name, company, visiting and date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := screen.NewVisitorScreen(newAPIClient())
			visitors, err := load(cmd.Context(), s, opts)
			if err != nil {
				return err
			}

			t := export.VisitorTable(visitors)
			if err := writeExports(cmd, opts, t); err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), visitors)
			}
			return printTable(cmd.OutOrStdout(), t, "visitors")
		},
	}

	opts.bind(cmd, export.VisitorPDFName)
	return cmd
}

func newVisitorsAddCmd() *cobra.Command {
	var v models.Visitor

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Sign in a visitor",
		Long:  "Record a visitor sign-in. Date and time in default to now.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if v.Date == "" {
				v.Date = now.Format("2006-01-02")
			}
			if v.TimeIn == "" {
				v.TimeIn = now.Format("15:04")
			}

			s := screen.NewVisitorScreen(newAPIClient())
			s.OpenCreate()
			created, err := s.Submit(cmd.Context(), v)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Visitor %s signed in (%s).\n", dash(created.Name), created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&v.Name, "name", "", "visitor name")
	cmd.Flags().StringVar(&v.Company, "company", "", "visitor company")
	cmd.Flags().StringVar(&v.Visiting, "visiting", "", "person or purpose of the visit")
	cmd.Flags().StringVar(&v.Date, "date", "", "visit date, YYYY-MM-DD")
	cmd.Flags().StringVar(&v.TimeIn, "time-in", "", "arrival time, HH:MM")
	return cmd
}
