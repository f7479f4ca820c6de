package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{"plain", "14:30", "14:30", false},
		{"with seconds", "14:30:00", "14:30", false},
		{"midnight", "00:00", "00:00", false},
		{"no padding normalized", "9:30", "09:30", false},
		{"hour overflow", "24:00", "", true},
		{"minute overflow", "10:60", "", true},
		{"garbage", "noon", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Hour(t *testing.T) {
	assert.Equal(t, 14, TimeString("14:30").Hour())
	assert.Equal(t, 0, TimeString("00:15").Hour())
	assert.Equal(t, -1, TimeString("bad").Hour())
}

func TestTimeString_TotalMinutes(t *testing.T) {
	m, err := TimeString("02:30").TotalMinutes()
	require.NoError(t, err)
	assert.Equal(t, 150, m)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
	assert.True(t, TimeString("11:00").IsAfter(TimeString("10:30")))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 15, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("15:45"), ts)

	require.NoError(t, ts.Scan([]byte("08:00:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan("12:15"))
	assert.Equal(t, TimeString("12:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
