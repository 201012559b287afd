package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptySchedule_EncodesAsArray(t *testing.T) {
	data, err := json.Marshal(EmptySchedule())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.True(t, EmptySchedule().IsEmpty())
}

func TestScheduleEntry_StartTime(t *testing.T) {
	assert.Equal(t, "14:00", ScheduleEntry{Time: "14:00 - 15:00"}.StartTime())
	assert.Equal(t, "11:00", ScheduleEntry{Time: "11:00-11:30"}.StartTime())
	assert.Equal(t, "", ScheduleEntry{}.StartTime())
}

func TestScheduleEntry_MissingFields(t *testing.T) {
	full := ScheduleEntry{Time: "09:00 - 10:00", Activity: "Coding", Reason: "Peak", Type: EntryWork}
	assert.Empty(t, full.MissingFields())

	partial := ScheduleEntry{Time: "09:00 - 10:00", Activity: "Coding"}
	assert.Equal(t, []string{"reason", "type"}, partial.MissingFields())
}
