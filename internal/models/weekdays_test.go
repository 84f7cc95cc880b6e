package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdaysContains(t *testing.T) {
	days := Weekdays{1, 3, 5}

	assert.True(t, days.Contains(time.Monday))
	assert.True(t, days.Contains(time.Friday))
	assert.False(t, days.Contains(time.Sunday))
	assert.False(t, Weekdays{}.Contains(time.Monday))
}

func TestWeekdaysValue(t *testing.T) {
	v, err := Weekdays{5, 1, 3}.Value()
	assert.NoError(t, err)
	assert.Equal(t, "1,3,5", v)

	v, err = Weekdays{}.Value()
	assert.NoError(t, err)
	assert.Equal(t, "", v)

	_, err = Weekdays{7}.Value()
	assert.Error(t, err)
}

func TestWeekdaysScan(t *testing.T) {
	var days Weekdays

	assert.NoError(t, days.Scan("1,3,5"))
	assert.Equal(t, Weekdays{1, 3, 5}, days)

	assert.NoError(t, days.Scan([]byte("0,6")))
	assert.Equal(t, Weekdays{0, 6}, days)

	assert.NoError(t, days.Scan(""))
	assert.Nil(t, days)

	assert.NoError(t, days.Scan(nil))
	assert.Nil(t, days)

	assert.Error(t, days.Scan("1,x"))
	assert.Error(t, days.Scan("8"))
	assert.Error(t, days.Scan(42))
}
