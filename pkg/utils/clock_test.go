package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextToTime(t *testing.T) {
	tests := []struct {
		text    string
		hour    int
		minute  int
		wantErr bool
	}{
		{text: "09:05", hour: 9, minute: 5},
		{text: "9:5", hour: 9, minute: 5},
		{text: "18:30:45", hour: 18, minute: 30},
		{text: " 07:00 ", hour: 7},
		{text: "24:00", wantErr: true},
		{text: "12:60", wantErr: true},
		{text: "12:30:99", wantErr: true},
		{text: "12:30:60", wantErr: true},
		{text: "meio-dia", wantErr: true},
		{text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := TextToTime(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, got.Hour())
			assert.Equal(t, tt.minute, got.Minute())
			assert.Zero(t, got.Second())
		})
	}
}

func TestTimeToText_RoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			clock := time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
			text := TimeToText(clock)

			back, err := TextToTime(text)
			require.NoError(t, err)
			assert.Equal(t, clock, back)
			assert.Len(t, text, 5)
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	got, err := NormalizeClock("7:3")
	require.NoError(t, err)
	assert.Equal(t, "07:03", got)

	got, err = NormalizeClock("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = NormalizeClock("99:99")
	assert.Error(t, err)
}

func TestSumAmounts(t *testing.T) {
	assert.Equal(t, 0.3, SumAmounts(0.1, 0.2))
	assert.Equal(t, 0.0, SumAmounts())
	assert.Equal(t, 1500.75, SumAmounts(1000.5, 500.25))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, 12)
	assert.NotEqual(t, first, second)
}
