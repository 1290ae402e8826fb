package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var manila = time.FixedZone("PHT", 8*60*60)

func TestParse(t *testing.T) {
	p, err := Parse(" Week ", Today)
	require.NoError(t, err)
	assert.Equal(t, Week, p)

	p, err = Parse("", Today)
	require.NoError(t, err)
	assert.Equal(t, Today, p)

	_, err = Parse("year", Today)
	assert.Error(t, err)
}

func TestRange(t *testing.T) {
	now := time.Date(2026, 10, 19, 23, 59, 59, 0, manila)
	tomorrow := time.Date(2026, 10, 20, 0, 0, 0, 0, manila)

	tests := []struct {
		period Period
		from   time.Time
	}{
		{Today, time.Date(2026, 10, 19, 0, 0, 0, 0, manila)},
		{Week, time.Date(2026, 10, 13, 0, 0, 0, 0, manila)},
		{Month, time.Date(2026, 9, 20, 0, 0, 0, 0, manila)},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			r := tt.period.Range(now)
			assert.True(t, r.From.Equal(tt.from), "from %s", r.From)
			assert.True(t, r.To.Equal(tomorrow), "to %s", r.To)
		})
	}

	assert.True(t, All.Range(now).IsOpen())
}

func TestClock(t *testing.T) {
	fixed := time.Date(2026, 10, 19, 8, 15, 30, 999, manila)
	c := FixedClock(fixed)

	assert.Equal(t, time.Date(2026, 10, 19, 8, 15, 30, 0, manila), c.Now())
	assert.Equal(t, manila, c.Location())

	utc := NewClock(time.UTC)
	assert.Equal(t, time.UTC, utc.Now().Location())
	assert.Zero(t, utc.Now().Nanosecond())
}
