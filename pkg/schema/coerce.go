package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tableflip.dev/hrow/pkg/entity"
)

// Text renders raw as a string; nil becomes "".
func Text(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Amount coerces raw into a decimal. Anything that is not a finite number or
// numeric text becomes zero.
func Amount(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v)
	case float32:
		return Amount(float64(v))
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case entity.ID:
		return decimal.NewFromInt(int64(v))
	default:
		return decimal.Zero
	}
}

// Reference coerces raw into a worker reference. nil, blank text and
// anything that is not an integer id mean unassigned.
func Reference(raw any) entity.NullID {
	switch v := raw.(type) {
	case entity.NullID:
		return v
	case entity.ID:
		return entity.Ref(v)
	case *entity.ID:
		if v == nil {
			return entity.Unassigned
		}
		return entity.Ref(*v)
	case int:
		return entity.Ref(entity.ID(v))
	case int64:
		return entity.Ref(entity.ID(v))
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return entity.Unassigned
		}
		return entity.Ref(entity.ID(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return entity.Unassigned
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return entity.Unassigned
		}
		return entity.Ref(entity.ID(id))
	default:
		return entity.Unassigned
	}
}

// Status coerces raw into a partner status, falling back to pending.
func Status(raw any) entity.PartnerStatus {
	switch v := raw.(type) {
	case entity.PartnerStatus:
		if s, err := entity.ParseStatus(string(v)); err == nil {
			return s
		}
		return entity.StatusPending
	default:
		s, _ := entity.ParseStatus(Text(raw))
		return s
	}
}

func refValue(n entity.NullID) any {
	if !n.Valid {
		return nil
	}
	return n.ID
}
