package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/avvvet/signin-register/internal/export"
	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/avvvet/signin-register/internal/screen"
)

func newContractorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contractors",
		Aliases: []string{"contractor"},
		Short:   "Contractor sign-ins",
	}
	cmd.AddCommand(newContractorsListCmd(), newContractorsAddCmd(), newContractorsEditCmd())
	return cmd
}

func newContractorsListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contractors",
		Long:  "List contractors signed in within a date window (today by default), optionally narrowed by a text search.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := screen.NewContractorScreen(newAPIClient())
			contractors, err := load(cmd.Context(), s, opts)
			if err != nil {
				return err
			}

			t := export.ContractorTable(contractors)
			if err := writeExports(cmd, opts, t); err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), contractors)
			}
			return printTable(cmd.OutOrStdout(), t, "contractors")
		},
	}

	opts.bind(cmd, export.ContractorPDFName)
	return cmd
}

// bindContractorFlags registers one flag per contractor field.
func bindContractorFlags(fs *pflag.FlagSet, c *models.Contractor) {
	fs.StringVar(&c.Company, "company", "", "contractor company")
	fs.StringVar(&c.Engineer, "engineer", "", "engineer name")
	fs.StringVar(&c.JobCallOut, "job", "", "job call-out reference")
	fs.StringVar(&c.Action, "action", "", "work carried out")
	fs.StringVar(&c.Date, "date", "", "date, YYYY-MM-DD")
	fs.StringVar(&c.TimeIn, "time-in", "", "arrival time, HH:MM")
	fs.StringVar(&c.TimeOut, "time-out", "", "departure time, HH:MM")
	fs.StringVar(&c.PhoneNumber, "phone", "", "phone number, 9 to 15 digits")
	fs.StringVar(&c.AccessCardNo, "card", "", "access card number, up to 6 letters or digits")
}

func newContractorsAddCmd() *cobra.Command {
	var c models.Contractor

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Sign in a contractor",
		Long:  "Record a contractor sign-in. Date and time in default to now.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if c.Date == "" {
				c.Date = now.Format("2006-01-02")
			}
			if c.TimeIn == "" {
				c.TimeIn = now.Format("15:04")
			}

			s := screen.NewContractorScreen(newAPIClient())
			s.OpenCreate()
			created, err := s.Submit(cmd.Context(), c)
			if err != nil {
				return err
			}
			return printContractor(cmd, created, "signed in")
		},
	}

	bindContractorFlags(cmd.Flags(), &c)
	return cmd
}

func newContractorsEditCmd() *cobra.Command {
	var patch models.Contractor

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a contractor entry",
		Long:  "Change fields of an existing contractor entry, typically --time-out when the contractor leaves. Fields without a flag keep their value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := screen.NewContractorScreen(newAPIClient())
			if err := s.ClearFilter(cmd.Context()); err != nil {
				return err
			}

			rec, err := s.OpenEdit(args[0])
			if err != nil {
				return err
			}
			overlay(cmd.Flags(), &rec, patch)

			updated, err := s.Submit(cmd.Context(), rec)
			if err != nil {
				return err
			}
			return printContractor(cmd, updated, "updated")
		},
	}

	bindContractorFlags(cmd.Flags(), &patch)
	return cmd
}

// overlay copies the fields whose flags were given from patch onto rec.
func overlay(fs *pflag.FlagSet, rec *models.Contractor, patch models.Contractor) {
	set := map[string]func(){
		"company":  func() { rec.Company = patch.Company },
		"engineer": func() { rec.Engineer = patch.Engineer },
		"job":      func() { rec.JobCallOut = patch.JobCallOut },
		"action":   func() { rec.Action = patch.Action },
		"date":     func() { rec.Date = patch.Date },
		"time-in":  func() { rec.TimeIn = patch.TimeIn },
		"time-out": func() { rec.TimeOut = patch.TimeOut },
		"phone":    func() { rec.PhoneNumber = patch.PhoneNumber },
		"card":     func() { rec.AccessCardNo = patch.AccessCardNo },
	}
	fs.Visit(func(f *pflag.Flag) {
		if fn, ok := set[f.Name]; ok {
			fn()
		}
	})
}

func printContractor(cmd *cobra.Command, c *models.Contractor, verb string) error {
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), c)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Contractor %s from %s %s (%s).\n", dash(c.Engineer), dash(c.Company), verb, c.ID)
	return nil
}
