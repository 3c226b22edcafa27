package dashboard

import "time"

// BucketKind identifica uma janela de tempo do painel
type BucketKind int

const (
	BucketToday BucketKind = iota
	BucketCurrentMonth
	BucketCurrentYear
	BucketMonthOfYear
)

// Bucket é uma classificação de registros. Month só é usado com BucketMonthOfYear.
type Bucket struct {
	Kind  BucketKind
	Month time.Month
}

var (
	Today        = Bucket{Kind: BucketToday}
	CurrentMonth = Bucket{Kind: BucketCurrentMonth}
	CurrentYear  = Bucket{Kind: BucketCurrentYear}
)

// MonthOfYear retorna o bucket do mês N do ano corrente
func MonthOfYear(month time.Month) Bucket {
	return Bucket{Kind: BucketMonthOfYear, Month: month}
}

// Buckets é o conjunto de janelas às quais um instante pertence.
// MonthOfYear é zero quando o instante não está no ano de referência.
type Buckets struct {
	Today        bool
	CurrentMonth bool
	CurrentYear  bool
	MonthOfYear  time.Month
}

// Classify avalia cada janela para o instante em relação a now, no fuso de instant
func Classify(instant, now time.Time) Buckets {
	now = now.In(instant.Location())

	iy, im, id := instant.Date()
	ny, nm, nd := now.Date()

	b := Buckets{
		CurrentYear: iy == ny,
	}
	if b.CurrentYear {
		b.MonthOfYear = im
		b.CurrentMonth = im == nm
		b.Today = b.CurrentMonth && id == nd
	}

	return b
}

// Contains informa se o conjunto inclui o bucket
func (b Buckets) Contains(bucket Bucket) bool {
	switch bucket.Kind {
	case BucketToday:
		return b.Today
	case BucketCurrentMonth:
		return b.CurrentMonth
	case BucketCurrentYear:
		return b.CurrentYear
	case BucketMonthOfYear:
		return b.MonthOfYear != 0 && b.MonthOfYear == bucket.Month
	default:
		return false
	}
}
