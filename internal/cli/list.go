package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/avvvet/signin-register/internal/export"
	"github.com/avvvet/signin-register/internal/screen"
)

// listOptions are the flags shared by both list commands.
type listOptions struct {
	from   string
	to     string
	all    bool
	search string
	pdf    string
	xlsx   string
}

func (o *listOptions) bind(cmd *cobra.Command, pdfName string) {
	cmd.Flags().StringVar(&o.from, "from", "", "first date of the window, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&o.to, "to", "", "last date of the window, YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&o.all, "all", false, "list every record, ignoring the date window")
	cmd.Flags().StringVar(&o.search, "search", "", "case-insensitive text search")
	cmd.Flags().StringVar(&o.pdf, "pdf", "", "also write the listed rows to a PDF file (e.g. "+pdfName+")")
	cmd.Flags().StringVar(&o.xlsx, "xlsx", "", "also write the listed rows to an XLSX file")
}

// load fills s according to the window flags and returns the visible rows.
func load[T screen.Entry](ctx context.Context, s *screen.Screen[T], o listOptions) ([]T, error) {
	if o.all {
		if err := s.ClearFilter(ctx); err != nil {
			return nil, err
		}
	} else {
		from, to := s.Filter()
		if o.from != "" {
			from = o.from
		}
		if o.to != "" {
			to = o.to
		}
		s.SetFilter(from, to)
		if err := s.ApplyFilter(ctx); err != nil {
			return nil, err
		}
	}

	s.SetSearch(o.search)
	return s.Visible(), nil
}

// writeExports writes t to the files named by the --pdf and --xlsx flags.
func writeExports(cmd *cobra.Command, o listOptions, t export.Table) error {
	if o.pdf != "" {
		if err := writeFile(o.pdf, t, export.WritePDF); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", o.pdf)
	}
	if o.xlsx != "" {
		if err := writeFile(o.xlsx, t, export.WriteXLSX); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", o.xlsx)
	}
	return nil
}

func writeFile(path string, t export.Table, write func(w io.Writer, t export.Table) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return write(f, t)
}
