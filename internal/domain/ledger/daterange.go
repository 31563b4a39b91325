package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange rango [Start, EndExclusive) alineado a días calendario.
type DateRange struct {
	Start        time.Time
	EndExclusive time.Time
}

// DayStart trunca t a las 00:00 del día en loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// NormalizeDateRange convierte fechas opcionales en [from, to+1día).
// Los valores nulos toman defFrom/defTo; si el fin queda antes o igual al
// inicio se usa un único día.
func NormalizeDateRange(from, to *time.Time, defFrom, defTo time.Time, loc *time.Location) DateRange {
	f, t := defFrom, defTo
	if from != nil {
		f = *from
	}
	if to != nil {
		t = *to
	}
	start := DayStart(f, loc)
	end := DayStart(t, loc).AddDate(0, 0, 1)
	if !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}
	return DateRange{Start: start, EndExclusive: end}
}

// AsOf devuelve el límite exclusivo "fin del día de t" (t+1 a las 00:00).
func AsOf(t time.Time, loc *time.Location) time.Time {
	return DayStart(t, loc).AddDate(0, 0, 1)
}

// DailyPoint importe de un día calendario.
type DailyPoint struct {
	Date   time.Time
	Amount decimal.Decimal
}

// FillDailySeries devuelve un punto por cada día del rango, en orden, con 0
// para los días sin datos. Los puntos fuera del rango se ignoran.
func FillDailySeries(r DateRange, points []DailyPoint) []DailyPoint {
	loc := r.Start.Location()
	byDay := make(map[string]decimal.Decimal, len(points))
	for _, p := range points {
		key := DayStart(p.Date, loc).Format(time.DateOnly)
		byDay[key] = byDay[key].Add(p.Amount)
	}
	var out []DailyPoint
	for d := r.Start; d.Before(r.EndExclusive); d = d.AddDate(0, 0, 1) {
		out = append(out, DailyPoint{
			Date:   d,
			Amount: byDay[d.Format(time.DateOnly)].Round(2),
		})
	}
	return out
}
