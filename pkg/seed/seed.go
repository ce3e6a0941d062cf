// Package seed generates demo records for a fresh session.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/hrow/pkg/attendance"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/ident"
	"tableflip.dev/hrow/pkg/store"
)

// Options sizes the generated data.
type Options struct {
	Workers int
	Finance int
	// Days is the number of attendance columns, ending today.
	Days int
	// Seed makes the output reproducible.
	Seed int64
}

var (
	firstNames = []string{"Ann", "Bob", "Cleo", "Dario", "Ewa", "Filip", "Greta", "Hugo", "Iga", "Jan", "Kasia", "Leon"}
	lastNames  = []string{"Lee", "Nowak", "Kowalski", "Moreau", "Rossi", "Schmidt", "Silva", "Wojcik", "Young", "Zieliński"}
	fields     = []string{"Computer Science", "Math", "Physics"}
	nouns      = []string{"lunch", "paper", "taxi", "toner", "venue", "grant", "snacks", "license", "badge", "poster"}
	companies  = []string{"Acme", "Globex", "Initech", "Umbrella", "Hooli", "Vandelay"}
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Snapshot builds a committed state with ids drawn from ids. Finance entries
// and partners reference workers in roster order.
func Snapshot(opts Options, ids ident.Generator, now time.Time) store.Snapshot {
	rng := rand.New(rand.NewSource(opts.Seed))

	workers := make([]entity.Worker, 0, opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		w := entity.NewWorker(ids.Next())
		w.Name = pick(rng, firstNames)
		w.Surname = pick(rng, lastNames)
		w.Email = strings.ToLower(fmt.Sprintf("%s.%s%d@example.org", w.Name, w.Surname, i))
		w.Phone = fmt.Sprintf("+48 %03d %03d %03d", rng.Intn(1000), rng.Intn(1000), rng.Intn(1000))
		w.Index = code(rng, 5)
		w.FieldOfStudy = pick(rng, fields)
		w.Section = code(rng, 2)
		workers = append(workers, w)
	}

	ref := func(i int) entity.NullID {
		if len(workers) == 0 {
			return entity.Unassigned
		}
		return entity.Ref(workers[i%len(workers)].ID)
	}

	partners := make([]entity.Partner, 0, opts.Finance)
	statuses := entity.AllStatuses()
	for i := 0; i < opts.Finance; i++ {
		p := entity.NewPartner(ids.Next())
		p.Name = pick(rng, companies)
		p.Email = strings.ToLower(p.Name) + "@example.com"
		p.Phone = fmt.Sprintf("+48 22 %03d %02d %02d", rng.Intn(1000), rng.Intn(100), rng.Intn(100))
		p.Status = statuses[rng.Intn(len(statuses))]
		if rng.Intn(3) > 0 {
			p.WorkerID = ref(i)
		}
		partners = append(partners, p)
	}

	expenses := make([]entity.Expense, 0, opts.Finance)
	revenues := make([]entity.Revenue, 0, opts.Finance)
	for i := 0; i < opts.Finance; i++ {
		e := entity.NewExpense(ids.Next())
		e.Name = pick(rng, nouns)
		e.Amount = decimal.NewFromInt(int64(rng.Intn(20)))
		e.WorkerID = ref(i)
		expenses = append(expenses, e)

		r := entity.NewRevenue(ids.Next())
		r.Name = pick(rng, nouns)
		r.Amount = decimal.NewFromInt(int64(rng.Intn(20)))
		r.WorkerID = ref(i)
		revenues = append(revenues, r)
	}

	return store.Snapshot{
		Schema:     store.CurrentSchema,
		Taken:      now,
		Workers:    workers,
		Partners:   partners,
		Expenses:   expenses,
		Revenues:   revenues,
		Attendance: sheet(rng, workers, opts.Days, now),
	}
}

func sheet(rng *rand.Rand, workers []entity.Worker, days int, now time.Time) attendance.Sheet {
	s := attendance.Sheet{}
	for d := days - 1; d >= 0; d-- {
		date := now.AddDate(0, 0, -d).Format(attendance.DateLayout)
		s.Columns = append(s.Columns, attendance.Column{Date: date, Valid: true})
	}
	for _, w := range workers {
		r := attendance.Record{WorkerID: w.ID, Dates: map[string]attendance.Entry{}}
		for _, c := range s.Columns {
			if rng.Intn(4) > 0 {
				r.Dates[c.Date] = attendance.Entry{Present: true}
			}
		}
		s.Records = append(s.Records, r)
	}
	return s
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.Intn(len(from))]
}

func code(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[rng.Intn(len(alphanumeric))]
	}
	return string(b)
}
