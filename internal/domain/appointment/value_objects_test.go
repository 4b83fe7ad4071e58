//go:build unit

package appointment_test

import (
	"testing"

	"agendamento-api/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDay(t *testing.T) {
	t.Run("round trip through micros", func(t *testing.T) {
		for _, raw := range []string{"00:00", "09:30", "14:00", "23:59:59", "14:00:30"} {
			tod, err := appointment.ParseTimeOfDay(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, tod, appointment.TimeOfDayFromMicros(tod.Micros()), raw)
			assert.Equal(t, raw, tod.String())
		}
	})

	t.Run("explicit zero seconds render as HH:MM", func(t *testing.T) {
		tod, err := appointment.ParseTimeOfDay("14:00:00")
		require.NoError(t, err)
		assert.Equal(t, "14:00", tod.String())
		assert.Equal(t, "14:00:00", tod.SQLValue())
	})

	t.Run("equality is exact", func(t *testing.T) {
		a, _ := appointment.ParseTimeOfDay("14:00")
		b, _ := appointment.ParseTimeOfDay("14:00:00")
		c, _ := appointment.ParseTimeOfDay("14:01")
		assert.Equal(t, a, b)
		assert.NotEqual(t, a, c)
		assert.True(t, a.Before(c))
	})
}

func TestOccupiedSlots(t *testing.T) {
	at := func(s string) appointment.TimeOfDay {
		tod, err := appointment.ParseTimeOfDay(s)
		require.NoError(t, err)
		return tod
	}

	slots := []appointment.OccupiedSlot{
		{Time: at("16:00"), ClientName: "Carla"},
		{Time: at("09:00"), ClientName: "Bruno"},
		{Time: at("14:00"), ClientName: "Ana Silva"},
	}

	appointment.SortByTime(slots)
	assert.Equal(t, "Bruno", slots[0].ClientName)
	assert.Equal(t, "Ana Silva", slots[1].ClientName)
	assert.Equal(t, "Carla", slots[2].ClientName)

	assert.True(t, appointment.ContainsTime(slots, at("14:00")))
	assert.False(t, appointment.ContainsTime(slots, at("14:01")), "one minute apart does not conflict")
	assert.False(t, appointment.ContainsTime(nil, at("14:00")))
}

func TestParseDate(t *testing.T) {
	d, err := appointment.ParseDate("2025-11-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-11-10", d.String())

	_, err = appointment.ParseDate("2025/11/10")
	assert.ErrorIs(t, err, appointment.ErrInvalidDate)

	_, err = appointment.ParseDate("")
	assert.ErrorIs(t, err, appointment.ErrInvalidDate)
}
