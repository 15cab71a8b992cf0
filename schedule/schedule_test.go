package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklySchedule_JSON(t *testing.T) {
	ws, err := ParseSchedule("Mon-Tue 11:30 am - 10 pm / Sun 5:30 pm - 2 am")
	require.NoError(t, err)

	data, err := json.Marshal(ws)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Mon": {"start": "11:30", "end": "22:00"},
		"Tue": {"start": "11:30", "end": "22:00"},
		"Sun": {"start": "17:30", "end": "02:00"}
	}`, string(data))

	var decoded WeeklySchedule
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ws.Days(), decoded.Days())
	sunday, ok := decoded.Get(Sunday)
	require.True(t, ok)
	assert.True(t, sunday.CrossesMidnight())
}

func TestWeeklySchedule_UnmarshalUnknownDay(t *testing.T) {
	var ws WeeklySchedule
	err := json.Unmarshal([]byte(`{"Funday": {"start": "09:00", "end": "17:00"}}`), &ws)
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestWeeklySchedule_String(t *testing.T) {
	ws, err := ParseSchedule("Wed 9 am - 5 pm / Mon 10 am - 4 pm")
	require.NoError(t, err)
	assert.Equal(t, "Mon 10:00-16:00 / Wed 09:00-17:00", ws.String())
}

func TestLookupWeekday(t *testing.T) {
	d, ok := LookupWeekday(" THU ")
	assert.True(t, ok)
	assert.Equal(t, Thursday, d)

	_, ok = LookupWeekday("thursday")
	assert.False(t, ok)
}
