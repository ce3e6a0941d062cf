// Package show prints committed tables.
package show

import (
	"context"
	"io"

	"tableflip.dev/hrow/pkg/app"
	"tableflip.dev/hrow/pkg/attendance"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/printers"
)

type Show struct {
	Controller *app.Controller
	// Table limits output to one table; empty shows all of them.
	Table  string
	Output string
	Out    io.Writer
}

// view is the JSON shape of the shown tables.
type view struct {
	Workers    []entity.Worker   `json:"workers,omitempty"`
	Groups     []entity.Group    `json:"groups,omitempty"`
	Attendance *attendance.Sheet `json:"attendance,omitempty"`
	Partners   []entity.Partner  `json:"partners,omitempty"`
	Expenses   []entity.Expense  `json:"expenses,omitempty"`
	Revenues   []entity.Revenue  `json:"revenues,omitempty"`
}

func (s *Show) Do(ctx context.Context) error {
	tables := app.Tables()
	if s.Table != "" {
		t, err := app.ParseTable(s.Table)
		if err != nil {
			return err
		}
		tables = []app.Table{t}
	}

	c := s.Controller
	if s.Output == "json" {
		v := view{}
		for _, t := range tables {
			switch t {
			case app.TableWorkers:
				v.Workers = c.CommittedWorkers()
				v.Groups = c.Groups()
			case app.TableAttendance:
				sheet := c.CommittedAttendance()
				v.Attendance = &sheet
			case app.TablePartners:
				v.Partners = c.CommittedPartners()
			case app.TableFinance:
				v.Expenses = c.CommittedExpenses()
				v.Revenues = c.CommittedRevenues()
			}
		}
		return printers.JSON(s.out(), v)
	}

	pp := &printers.PrettyPrint{Out: s.Out, Resolver: c.Resolver()}
	for _, t := range tables {
		switch t {
		case app.TableWorkers:
			pp.Workers(c.Workers())
			pp.Groups(c.Groups(), c.CommittedWorkers())
		case app.TableAttendance:
			pp.Attendance(c.Attendance(), c.CommittedWorkers())
		case app.TablePartners:
			pp.Partners(c.Partners())
		case app.TableFinance:
			pp.Finance(c.Expenses(), c.Revenues())
		}
	}
	return nil
}

func (s *Show) out() io.Writer {
	if s.Out == nil {
		return printers.Stdout()
	}
	return s.Out
}
