package schedule

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinuteOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9:30", 0, false},
		{"09:60", 0, false},
		{"0930", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, err := MinuteOfDay(tc.in)
		if tc.ok {
			assert.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got, tc.in)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTime, tc.in)
		}
	}
}

func TestFormatMinuteRoundTrips(t *testing.T) {
	for m := 0; m < 1440; m += 7 {
		back, err := MinuteOfDay(FormatMinute(m))
		assert.NoError(t, err)
		assert.Equal(t, m, back)
	}
}

func TestExpandSlots(t *testing.T) {
	slots, err := ExpandSlots("10:00", 45, 30)
	assert.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30"}, slots)

	slots, err = ExpandSlots("09:00", 30, 30)
	assert.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slots)

	slots, err = ExpandSlots("14:00", 90, 15)
	assert.NoError(t, err)
	assert.Equal(t, []string{"14:00", "14:15", "14:30", "14:45", "15:00", "15:15"}, slots)
}

func TestExpandSlotsErrors(t *testing.T) {
	_, err := ExpandSlots("10:00", 30, 0)
	assert.ErrorIs(t, err, ErrInvalidGranularity)

	_, err = ExpandSlots("10:00", 0, 30)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ExpandSlots("10:00", -15, 30)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ExpandSlots("10:15", 30, 30)
	assert.ErrorIs(t, err, ErrNotAligned)

	_, err = ExpandSlots("25:00", 30, 30)
	assert.ErrorIs(t, err, ErrInvalidTime)

	// 23:30 + 60min precisaria de dois slots e o segundo cai em 00:00
	_, err = ExpandSlots("23:30", 60, 30)
	assert.ErrorIs(t, err, ErrCrossesMidnight)

	_, err = ExpandSlots("23:30", 30, 30)
	assert.NoError(t, err)
}

// A contagem de slots é sempre ceil(duracao/granularidade) e os horários
// saem contíguos na grade.
func TestExpandSlotsShape(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	granularities := []int{10, 15, 20, 30, 60}

	for i := 0; i < 500; i++ {
		g := granularities[rnd.Intn(len(granularities))]
		startMin := rnd.Intn(600/g) * g
		duration := 1 + rnd.Intn(180)

		slots, err := ExpandSlots(FormatMinute(startMin), duration, g)
		assert.NoError(t, err)

		want := (duration + g - 1) / g
		assert.Len(t, slots, want)

		for j, s := range slots {
			m, err := MinuteOfDay(s)
			assert.NoError(t, err)
			assert.Equal(t, startMin+j*g, m)
		}
	}
}
