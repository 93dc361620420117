package debt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSchedule(t *testing.T) {
	now := date(2024, time.January, 15)

	t.Run("uses the first installment date verbatim, then the due day rule", func(t *testing.T) {
		first := date(2024, time.January, 1)
		d := Debt{InstallmentsTotal: 3, InstallmentsPaid: 0, FirstInstallmentDate: &first, DueDay: 10}

		installments, inconsistent := Schedule(d, now)

		require.False(t, inconsistent)
		require.Len(t, installments, 3)
		assert.Equal(t, date(2024, time.January, 1), installments[0].DueDate)
		assert.Equal(t, date(2024, time.February, 10), installments[1].DueDate)
		assert.Equal(t, date(2024, time.March, 10), installments[2].DueDate)
	})

	t.Run("clips the due day to short months", func(t *testing.T) {
		first := date(2024, time.January, 31)
		d := Debt{InstallmentsTotal: 3, FirstInstallmentDate: &first, DueDay: 31}

		installments, _ := Schedule(d, now)

		require.Len(t, installments, 3)
		assert.Equal(t, date(2024, time.January, 31), installments[0].DueDate)
		assert.Equal(t, date(2024, time.February, 29), installments[1].DueDate)
		assert.Equal(t, date(2024, time.March, 31), installments[2].DueDate)
	})

	t.Run("anchors at the current month when no first date is set and the due day is ahead", func(t *testing.T) {
		d := Debt{InstallmentsTotal: 2, DueDay: 20}

		installments, _ := Schedule(d, now)

		require.Len(t, installments, 2)
		assert.Equal(t, date(2024, time.January, 20), installments[0].DueDate)
		assert.Equal(t, date(2024, time.February, 20), installments[1].DueDate)
	})

	t.Run("advances the anchor when the due day has already passed", func(t *testing.T) {
		d := Debt{InstallmentsTotal: 2, DueDay: 10}

		installments, _ := Schedule(d, now)

		require.Len(t, installments, 2)
		assert.Equal(t, date(2024, time.February, 10), installments[0].DueDate)
		assert.Equal(t, date(2024, time.March, 10), installments[1].DueDate)
	})

	t.Run("marks the paid prefix", func(t *testing.T) {
		d := Debt{InstallmentsTotal: 4, InstallmentsPaid: 2, DueDay: 20}

		installments, inconsistent := Schedule(d, now)

		require.False(t, inconsistent)
		assert.Equal(t, StatusPaid, installments[0].Status)
		assert.Equal(t, StatusPaid, installments[1].Status)
		assert.Equal(t, StatusPending, installments[2].Status)
		assert.Equal(t, StatusPending, installments[3].Status)
	})

	t.Run("clamps a stale paid counter and reports the inconsistency", func(t *testing.T) {
		d := Debt{InstallmentsTotal: 3, InstallmentsPaid: 7, DueDay: 20}

		installments, inconsistent := Schedule(d, now)

		assert.True(t, inconsistent)
		require.Len(t, installments, 3)
		for _, i := range installments {
			assert.Equal(t, StatusPaid, i.Status)
		}
	})

	t.Run("returns nothing for a debt without installments", func(t *testing.T) {
		installments, inconsistent := Schedule(Debt{InstallmentsTotal: 0, DueDay: 10}, now)

		assert.Empty(t, installments)
		assert.False(t, inconsistent)
	})
}

func TestTogglePaid(t *testing.T) {
	t.Run("marking a pending installment paid covers the whole prefix", func(t *testing.T) {
		d := Debt{InstallmentsTotal: 3, InstallmentsPaid: 0, DueDay: 10}

		paid, ok := TogglePaid(d, 2)

		assert.True(t, ok)
		assert.Equal(t, 2, paid)
	})

	t.Run("marking a paid installment pending keeps the prefix before it", func(t *testing.T) {
		d := Debt{InstallmentsTotal: 3, InstallmentsPaid: 3, DueDay: 10}

		paid, ok := TogglePaid(d, 2)

		assert.True(t, ok)
		assert.Equal(t, 1, paid)
	})

	t.Run("rejects an installment number outside the schedule", func(t *testing.T) {
		d := Debt{InstallmentsTotal: 3, InstallmentsPaid: 1, DueDay: 10}

		paid, ok := TogglePaid(d, 4)
		assert.False(t, ok)
		assert.Equal(t, 1, paid)

		paid, ok = TogglePaid(d, 0)
		assert.False(t, ok)
		assert.Equal(t, 1, paid)
	})

	t.Run("paid installments stay a contiguous prefix after any toggle", func(t *testing.T) {
		now := date(2024, time.January, 15)
		for initial := 0; initial <= 5; initial++ {
			for number := 1; number <= 5; number++ {
				d := Debt{InstallmentsTotal: 5, InstallmentsPaid: initial, DueDay: 10}
				paid, ok := TogglePaid(d, number)
				require.True(t, ok)
				require.GreaterOrEqual(t, paid, 0)
				require.LessOrEqual(t, paid, d.InstallmentsTotal)

				d.InstallmentsPaid = paid
				installments, _ := Schedule(d, now)
				for _, i := range installments {
					if i.Number <= paid {
						assert.Equal(t, StatusPaid, i.Status)
					} else {
						assert.Equal(t, StatusPending, i.Status)
					}
				}
			}
		}
	})
}
