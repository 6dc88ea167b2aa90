package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "morning", input: "09:30", want: 9*60 + 30},
		{name: "single digit hour", input: "9:05", want: 9*60 + 5},
		{name: "midnight", input: "00:00", want: 0},
		{name: "last minute", input: "23:59", want: 23*60 + 59},
		{name: "postgres time with seconds", input: "14:00:00", want: 14 * 60},
		{name: "seconds are dropped", input: "14:00:59", want: 14 * 60},
		{name: "non-numeric seconds", input: "10:00:zz", wantErr: true},
		{name: "single digit seconds", input: "10:00:5", wantErr: true},
		{name: "seconds out of range", input: "10:00:60", wantErr: true},
		{name: "signed seconds", input: "10:00:+5", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "single digit minute", input: "10:5", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minutes())
			assert.False(t, got.IsZero())
		})
	}
}

func TestParseClockLabel(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "12:00 AM", want: "00:00"},
		{input: "12:30 PM", want: "12:30"},
		{input: "01:15 pm", want: "13:15"},
		{input: "9:00 AM", want: "09:00"},
		{input: "11:59 PM", want: "23:59"},
		{input: "13:00 PM", wantErr: true},
		{input: "00:30 AM", wantErr: true},
		{input: "10:00", wantErr: true},
		{input: "10:00 XM", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClockLabel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeOfDay_ClockLabelRoundTrip(t *testing.T) {
	for minutes := 0; minutes < minutesPerDay; minutes += 7 {
		tod, err := TimeOfDayFromMinutes(minutes)
		require.NoError(t, err)

		parsed, err := ParseClockLabel(tod.ClockLabel())
		require.NoError(t, err)
		assert.Equal(t, tod, parsed, "label %s", tod.ClockLabel())
	}
}

func TestTimeOfDay_Comparisons(t *testing.T) {
	ten := MustTimeOfDay(10, 0)
	eleven := MustTimeOfDay(11, 0)

	assert.True(t, ten.IsBefore(eleven))
	assert.False(t, eleven.IsBefore(ten))
	assert.True(t, eleven.IsAfter(ten))
	assert.False(t, ten.IsBefore(ten))
	assert.True(t, ten.Equal(MustTimeOfDay(10, 0)))
	assert.Equal(t, "10:00 AM", ten.ClockLabel())
	assert.Equal(t, MustTimeOfDay(10, 0), MustTimeOfDay(10, 45).TruncateHour())
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	got, err := MustTimeOfDay(23, 0).AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, "23:59", got.String())

	_, err = MustTimeOfDay(23, 0).AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeOfDay_JSON(t *testing.T) {
	var payload struct {
		Start TimeOfDay `json:"start"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"08:15"}`), &payload))
	assert.Equal(t, MustTimeOfDay(8, 15), payload.Start)

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"08:15"}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"8am"}`), &payload))
}

func TestTimeOfDay_Scan(t *testing.T) {
	var tod TimeOfDay

	require.NoError(t, tod.Scan(time.Date(0, 1, 1, 17, 45, 0, 0, time.UTC)))
	assert.Equal(t, "17:45", tod.String())

	require.NoError(t, tod.Scan([]byte("08:00:00")))
	assert.Equal(t, "08:00", tod.String())

	require.NoError(t, tod.Scan(nil))
	assert.True(t, tod.IsZero())

	assert.Error(t, tod.Scan(42))
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2025-09-01")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.September, Day: 1}, d)
	assert.Equal(t, "2025-09-01", d.String())

	assert.Equal(t, NewDate(2025, time.October, 1), NewDate(2025, time.September, 31))
	assert.Equal(t, NewDate(2026, time.January, 1), NewDate(2025, time.December, 31).AddDays(1))

	assert.True(t, NewDate(2025, time.August, 31).Before(d))
	assert.True(t, d.After(NewDate(2025, time.August, 31)))
	assert.False(t, d.Before(d))

	_, err = ParseDate("09/01/2025")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDate_ScanAndJSON(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-09-01", d.String())

	require.NoError(t, d.Scan("2025-12-05T00:00:00Z"))
	assert.Equal(t, "2025-12-05", d.String())

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-05"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d, decoded)
}
