// Package export renders the visible rows of a screen as a PDF or XLSX table.
package export

import (
	"strconv"

	"github.com/avvvet/signin-register/internal/registersvc/models"
)

const (
	VisitorPDFName    = "visitors.pdf"
	ContractorPDFName = "Contractor.pdf"
)

// Table is a titled grid of text cells with a fixed column order.
type Table struct {
	Title     string
	Columns   []string
	Rows      [][]string
	Landscape bool
}

var (
	visitorColumns = []string{"S. No.", "Name", "Company", "Visiting", "Date", "Time In"}

	contractorColumns = []string{
		"S. No.", "Engineer", "Company", "Job Callout", "Action",
		"Date", "Time In", "Time Out", "Phone No.", "Access Card No.",
	}
)

func VisitorTable(visitors []models.Visitor) Table {
	t := Table{Title: "Visitor Data", Columns: visitorColumns}
	for i, v := range visitors {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1), v.Name, v.Company, v.Visiting, v.Date, v.TimeIn,
		})
	}
	return t
}

// ContractorTable is landscape, ten columns do not fit a portrait page.
func ContractorTable(contractors []models.Contractor) Table {
	t := Table{Title: "Contractor Data", Columns: contractorColumns, Landscape: true}
	for i, c := range contractors {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1), c.Engineer, c.Company, c.JobCallOut, c.Action,
			c.Date, c.TimeIn, c.TimeOut, c.PhoneNumber, c.AccessCardNo,
		})
	}
	return t
}
