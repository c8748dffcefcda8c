package quinzena

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/matheusvidal/gestor-pautas/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClosingDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "первый день месяца закрывается 15-го",
			in:   date(2025, time.July, 1),
			want: date(2025, time.July, 15),
		},
		{
			name: "15-е число ещё относится к первой квинзене",
			in:   date(2025, time.July, 15),
			want: date(2025, time.July, 15),
		},
		{
			name: "16-е число открывает вторую квинзену",
			in:   date(2025, time.July, 16),
			want: date(2025, time.July, 31),
		},
		{
			name: "последний день 30-дневного месяца",
			in:   date(2025, time.April, 30),
			want: date(2025, time.April, 30),
		},
		{
			name: "февраль невисокосного года закрывается 28-го",
			in:   date(2025, time.February, 20),
			want: date(2025, time.February, 28),
		},
		{
			name: "февраль високосного года закрывается 29-го",
			in:   date(2024, time.February, 16),
			want: date(2024, time.February, 29),
		},
		{
			name: "вторая квинзена декабря закрывается 31-го",
			in:   date(2025, time.December, 31),
			want: date(2025, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClosingDate(tt.in))
		})
	}
}

func TestProjectPaymentDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "первая квинзена января",
			in:   date(2025, time.January, 15),
			want: date(2025, time.February, 4),
		},
		{
			name: "вторая квинзена января",
			in:   date(2025, time.January, 31),
			want: date(2025, time.February, 20),
		},
		{
			name: "вторая квинзена короткого февраля",
			in:   date(2025, time.February, 16),
			want: date(2025, time.March, 20),
		},
		{
			name: "переход через границу года",
			in:   date(2025, time.December, 20),
			want: date(2026, time.January, 20),
		},
		{
			name: "первая квинзена декабря тоже уходит в январь",
			in:   date(2025, time.December, 1),
			want: date(2026, time.January, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectPaymentDate(tt.in))
		})
	}
}

// Для любого дня месяца закрытие первой половины — 15-е, второй — последний день.
func TestProjectPaymentDate_WholeMonth(t *testing.T) {
	for day := 1; day <= 31; day++ {
		d := date(2025, time.January, day)
		closing := ClosingDate(d)
		if day <= 15 {
			assert.Equal(t, 15, closing.Day())
		} else {
			assert.Equal(t, 31, closing.Day())
		}
		assert.Equal(t, closing.AddDate(0, 0, 20), ProjectPaymentDate(d))
	}
}

func TestProjectPaymentDateString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "обычная дата", in: "2025-01-15", want: "2025-02-04"},
		{name: "конец месяца", in: "2025-01-31", want: "2025-02-20"},
		{name: "короткий февраль", in: "2025-02-16", want: "2025-03-20"},
		{name: "пустой вход даёт пустой выход", in: "", want: ""},
		{name: "мусор вместо даты даёт пустой выход", in: "31/01/2025", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectPaymentDateString(tt.in))
		})
	}
}

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "2025/07 - 1ª Quinzena", PeriodKey(date(2025, time.July, 10)))
	assert.Equal(t, "2025/07 - 2ª Quinzena", PeriodKey(date(2025, time.July, 20)))
	assert.Equal(t, "2025/01 - 1ª Quinzena", PeriodKey(date(2025, time.January, 15)))
	assert.Equal(t, "2025/01 - 2ª Quinzena", PeriodKey(date(2025, time.January, 16)))
}

// Прогноз из строки согласован с канонической формой даты.
func TestProjectPaymentDateString_RoundTrip(t *testing.T) {
	d := date(2025, time.July, 10)
	assert.Equal(t,
		ProjectPaymentDate(d).Format(models.DateLayout),
		ProjectPaymentDateString(d.Format(models.DateLayout)))
}
