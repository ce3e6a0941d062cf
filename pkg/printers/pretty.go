// Package printers renders committed views as colored terminal tables.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/shopspring/decimal"

	"tableflip.dev/hrow/pkg/attendance"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/group"
	"tableflip.dev/hrow/pkg/resolve"
	"tableflip.dev/hrow/pkg/schema"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Resolver names the workers referenced by partners and finance rows.
	Resolver resolve.Resolver
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return Stdout()
	}
	return pp.Out
}

// Stdout is the color aware standard output.
func Stdout() io.Writer {
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " row")
	default:
		_, _ = c.Fprintln(pp.out(), " rows")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Rows prints rows under the headers of fields.
func Rows[T any](pp *PrettyPrint, fields schema.Set[T], rows []T) {
	if len(rows) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "

	header := make([]interface{}, 0, len(fields.Fields()))
	for _, f := range fields.Fields() {
		header = append(header, bold.Sprint(f.Header))
	}
	tbl.AddRow(header...)

	for _, row := range rows {
		cells := make([]interface{}, 0, len(header))
		for _, f := range fields.Fields() {
			cells = append(cells, colored(f, Cell(f, row, pp.Resolver)))
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Workers(rows []entity.Worker) {
	pp.TitleWithCount("Workers", len(rows))
	Rows(pp, schema.Workers(), rows)
}

func (pp *PrettyPrint) Partners(rows []entity.Partner) {
	pp.TitleWithCount("Partners", len(rows))
	Rows(pp, schema.Partners(), rows)
}

// Finance prints expenses and revenues followed by their totals.
func (pp *PrettyPrint) Finance(expenses []entity.Expense, revenues []entity.Revenue) {
	pp.TitleWithCount("Expenses", len(expenses))
	Rows(pp, schema.Expenses(), expenses)
	pp.TitleWithCount("Revenues", len(revenues))
	Rows(pp, schema.Revenues(), revenues)

	out, in := decimal.Zero, decimal.Zero
	for _, e := range expenses {
		out = out.Add(e.Amount)
	}
	for _, r := range revenues {
		in = in.Add(r.Amount)
	}
	balance := in.Sub(out)

	bc := color.New(color.FgGreen, color.Bold)
	if balance.IsNegative() {
		bc = color.New(color.FgRed, color.Bold)
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Expenses", out.StringFixed(2))
	tbl.AddRow("Revenues", in.StringFixed(2))
	tbl.AddRow("Balance", bc.Sprint(balance.StringFixed(2)))
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Attendance prints one row per worker and one column per date. Cells
// under invalid or blank dates are left empty.
func (pp *PrettyPrint) Attendance(sheet attendance.Sheet, workers []entity.Worker) {
	pp.TitleWithCount("Attendance", len(sheet.Records))
	if len(sheet.Columns) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	invalid := color.New(color.FgRed, color.CrossedOut)
	present := color.New(color.FgGreen)
	absent := color.New(color.Faint)

	names := resolve.New(workers)

	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{bold.Sprint("Worker")}
	for _, c := range sheet.Columns {
		switch {
		case c.Date == "":
			header = append(header, absent.Sprint("(no date)"))
		case !c.Valid:
			header = append(header, invalid.Sprint(c.Date))
		default:
			header = append(header, bold.Sprint(c.Date))
		}
	}
	tbl.AddRow(header...)

	for _, r := range sheet.Records {
		cells := []interface{}{names.Name(entity.Ref(r.WorkerID))}
		for i, c := range sheet.Columns {
			if !c.Editable() {
				cells = append(cells, "")
				continue
			}
			e := sheet.Cell(r.WorkerID, i)
			mark := absent.Sprint("·")
			if e.Present {
				mark = present.Sprint("✓")
			}
			if e.Comment != "" {
				mark += " " + e.Comment
			}
			cells = append(cells, mark)
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Groups(groups []entity.Group, workers []entity.Worker) {
	pp.TitleWithCount("Groups", len(groups))
	if len(groups) == 0 {
		pp.none()
		return
	}
	names := resolve.New(workers)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	for _, g := range groups {
		members := make([]string, 0, len(g.WorkerIDs))
		for _, id := range g.WorkerIDs {
			members = append(members, names.Name(entity.Ref(id)))
		}
		tbl.AddRow(color.New(color.Bold).Sprint(g.Name), strings.Join(members, ", "))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Certificates(certs []group.Certificate) {
	pp.TitleWithCount("Certificates", len(certs))
	if len(certs) == 0 {
		pp.none()
		return
	}
	for _, c := range certs {
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", c)
	}
	pp.NewLine()
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
