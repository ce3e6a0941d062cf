package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/resolve"
	"tableflip.dev/hrow/pkg/schema"
)

// Cell renders one field of row as display text. References are resolved
// against r, amounts get two decimals and nulls render empty.
func Cell[T any](f schema.Field[T], row T, r resolve.Resolver) string {
	v := f.Get(row)
	switch f.Kind {
	case schema.KindReference:
		id, ok := v.(entity.ID)
		if !ok {
			return resolve.Unassigned
		}
		return r.Name(entity.Ref(id))
	case schema.KindNumber:
		if d, ok := v.(decimal.Decimal); ok {
			return d.StringFixed(2)
		}
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

var statusColors = map[entity.PartnerStatus]*color.Color{
	entity.StatusPending:  color.New(color.FgYellow),
	entity.StatusApproved: color.New(color.FgGreen),
	entity.StatusRejected: color.New(color.FgRed),
}

// colored decorates a rendered cell for terminal output.
func colored[T any](f schema.Field[T], text string) string {
	switch f.Kind {
	case schema.KindStatus:
		if c, ok := statusColors[entity.PartnerStatus(text)]; ok {
			return c.Sprint(text)
		}
	case schema.KindReference:
		switch text {
		case resolve.Unassigned:
			return color.New(color.Faint).Sprint(text)
		case resolve.Unresolved:
			return color.New(color.FgRed, color.Italic).Sprint(text)
		}
	}
	return text
}
