package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		ts, err := NewTimeStringFromString("07:30")
		require.NoError(t, err)
		assert.Equal(t, TimeString("07:30"), ts)
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, s := range []string{"", "7:30am", "25:00", "12:60", "12-30"} {
			_, err := NewTimeStringFromString(s)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "value %q", s)
		}
	})
}

func TestNewTimeString_TruncatesToMinute(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 3, 10, 9, 15, 42, 0, time.UTC))
	assert.Equal(t, TimeString("09:15"), ts)
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{"within the day", "09:00", 90, "10:30"},
		{"wraps past midnight", "23:30", 60, "00:30"},
		{"negative wraps backwards", "00:30", -60, "23:30"},
		{"zero is identity", "12:00", 0, "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:01").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))

	// Некорректные значения не считаются ни раньше, ни позже
	assert.False(t, TimeString("bad").IsBefore("10:00"))
	assert.False(t, TimeString("bad").IsAfter("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("drops seconds from postgres TIME", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("08:30:00"))
		assert.Equal(t, TimeString("08:30"), ts)
	})

	t.Run("byte slice", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("14:00:00")))
		assert.Equal(t, TimeString("14:00"), ts)
	})

	t.Run("time value", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("18:45"), ts)
	})

	t.Run("nil resets", func(t *testing.T) {
		ts := TimeString("09:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.ErrorIs(t, ts.Scan(42), ErrInvalidTimeString)
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("07:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "07:00", v)
}
