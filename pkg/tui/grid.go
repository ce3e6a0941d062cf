package tui

import (
	"fmt"

	"github.com/shopspring/decimal"

	"tableflip.dev/hrow/pkg/app"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/printers"
	"tableflip.dev/hrow/pkg/resolve"
	"tableflip.dev/hrow/pkg/schema"
)

// grid is a rendered row table: display text plus what the cursor needs to
// route commands back to the controller.
type grid struct {
	scope    app.Scope
	title    string
	keys     []string
	headers  []string
	editable []bool
	kinds    []schema.Kind
	ids      []entity.ID
	cells    [][]string
	// raw is the text an edit starts from.
	raw [][]string
}

func buildGrid[T entity.Row](scope app.Scope, title string, fields schema.Set[T], rows []T, r resolve.Resolver) grid {
	g := grid{scope: scope, title: title}
	for _, f := range fields.Fields() {
		g.keys = append(g.keys, f.Key)
		g.headers = append(g.headers, f.Header)
		g.editable = append(g.editable, f.Editable)
		g.kinds = append(g.kinds, f.Kind)
	}
	for _, row := range rows {
		g.ids = append(g.ids, row.RowID())
		cells := make([]string, 0, len(g.keys))
		raw := make([]string, 0, len(g.keys))
		for _, f := range fields.Fields() {
			cells = append(cells, printers.Cell(f, row, r))
			raw = append(raw, rawText(f.Get(row)))
		}
		g.cells = append(g.cells, cells)
		g.raw = append(g.raw, raw)
	}
	return g
}

func rawText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// row returns the index of id, or -1.
func (g grid) row(id entity.ID) int {
	for i, candidate := range g.ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

// grids builds the row tables of the active table. Attendance has none.
func grids(c *app.Controller) []grid {
	r := c.Resolver()
	switch c.Active() {
	case app.TableWorkers:
		return []grid{buildGrid(app.ScopeWorkers, "Workers", schema.Workers(), c.Workers(), r)}
	case app.TablePartners:
		return []grid{buildGrid(app.ScopePartners, "Partners", schema.Partners(), c.Partners(), r)}
	case app.TableFinance:
		return []grid{
			buildGrid(app.ScopeExpenses, "Expenses", schema.Expenses(), c.Expenses(), r),
			buildGrid(app.ScopeRevenues, "Revenues", schema.Revenues(), c.Revenues(), r),
		}
	default:
		return nil
	}
}
