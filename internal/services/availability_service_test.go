package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
)

// 2030-01-07 is a Monday.
const (
	testMonday  = "2030-01-07"
	testTuesday = "2030-01-08"
)

func TestClassifySlot(t *testing.T) {
	env := newTestEnv(t)
	_, profile := createVet(t, env.db, "drsmith")

	tests := []struct {
		name      string
		date      string
		start     string
		wantEntry bool
		aligned   bool
	}{
		{"first slot of the day", testMonday, "09:00", true, true},
		{"aligned mid-morning", testMonday, "10:30", true, true},
		{"last slot before close", testMonday, "12:30", true, true},
		{"end boundary is outside", testMonday, "13:00", false, false},
		{"misaligned start", testMonday, "10:15", true, false},
		{"before opening", testMonday, "08:30", false, false},
		{"day without schedule", testTuesday, "10:00", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls, err := env.availability.ClassifySlot(profile.ID, tt.date, tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEntry, cls.Entry != nil)
			assert.Equal(t, tt.aligned, cls.Aligned)
			assert.False(t, cls.OnTimeOff)
		})
	}
}

func TestClassifySlotUnknownVet(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.availability.ClassifySlot(uuid.New(), testMonday, "09:00")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestTimeOffEndpointsInclusive(t *testing.T) {
	env := newTestEnv(t)
	_, profile := createVet(t, env.db, "drsmith")

	_, err := env.availability.AddTimeOff(profile.ID, &dto.TimeOffCreateRequest{
		StartDate: "2030-01-07",
		EndDate:   "2030-01-09",
		Reason:    "conference",
	})
	require.NoError(t, err)

	for date, want := range map[string]bool{
		"2030-01-06": false,
		"2030-01-07": true,
		"2030-01-08": true,
		"2030-01-09": true,
		"2030-01-10": false,
	} {
		off, err := env.availability.IsOnTimeOff(profile.ID, date)
		require.NoError(t, err)
		assert.Equal(t, want, off, date)
	}

	cls, err := env.availability.ClassifySlot(profile.ID, testMonday, "09:00")
	require.NoError(t, err)
	assert.True(t, cls.OnTimeOff)
}

func TestAddTimeOffValidation(t *testing.T) {
	env := newTestEnv(t)
	_, profile := createVet(t, env.db, "drsmith")

	_, err := env.availability.AddTimeOff(profile.ID, &dto.TimeOffCreateRequest{
		StartDate: "07-01-2030", EndDate: "2030-01-09",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = env.availability.AddTimeOff(profile.ID, &dto.TimeOffCreateRequest{
		StartDate: "2030-01-09", EndDate: "2030-01-07",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestDeleteTimeOffAuthorization(t *testing.T) {
	env := newTestEnv(t)
	vetUser, profile := createVet(t, env.db, "drsmith")
	otherVet, _ := createVet(t, env.db, "drjones")
	admin := createUser(t, env.db, "admin", models.RoleAdmin)

	add := func() uuid.UUID {
		w, err := env.availability.AddTimeOff(profile.ID, &dto.TimeOffCreateRequest{
			StartDate: "2030-02-01", EndDate: "2030-02-03",
		})
		require.NoError(t, err)
		return w.ID
	}

	id := add()
	err := env.availability.DeleteTimeOff(asPrincipal(otherVet), id)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	require.NoError(t, env.availability.DeleteTimeOff(asPrincipal(vetUser), id))

	id = add()
	require.NoError(t, env.availability.DeleteTimeOff(asPrincipal(admin), id))
}

func TestReplaceWeeklySchedule(t *testing.T) {
	env := newTestEnv(t)
	_, profile := createVet(t, env.db, "drsmith")

	entries, err := env.availability.ReplaceWeeklySchedule(profile.ID, []dto.ScheduleEntryRequest{
		{DayOfWeek: "WEDNESDAY", StartTime: "14:00", EndTime: "18:00", SlotLengthMinutes: 20},
		{DayOfWeek: "WEDNESDAY", StartTime: "09:00", EndTime: "12:00", SlotLengthMinutes: 20},
		{DayOfWeek: "FRIDAY", StartTime: "10:00", EndTime: "13:00", SlotLengthMinutes: 15},
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Ordered by (day, start); the Monday entry from the fixture is gone.
	assert.Equal(t, "FRIDAY", entries[0].DayOfWeek)
	assert.Equal(t, "WEDNESDAY", entries[1].DayOfWeek)
	assert.Equal(t, "09:00", entries[1].StartTime)
	assert.Equal(t, "14:00", entries[2].StartTime)
}

func TestReplaceWeeklyScheduleValidation(t *testing.T) {
	env := newTestEnv(t)
	_, profile := createVet(t, env.db, "drsmith")

	tests := []struct {
		name string
		req  dto.ScheduleEntryRequest
	}{
		{"bad day", dto.ScheduleEntryRequest{DayOfWeek: "FUNDAY", StartTime: "09:00", EndTime: "12:00", SlotLengthMinutes: 30}},
		{"bad clock", dto.ScheduleEntryRequest{DayOfWeek: "MONDAY", StartTime: "9am", EndTime: "12:00", SlotLengthMinutes: 30}},
		{"start after end", dto.ScheduleEntryRequest{DayOfWeek: "MONDAY", StartTime: "12:00", EndTime: "09:00", SlotLengthMinutes: 30}},
		{"slot too short", dto.ScheduleEntryRequest{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "12:00", SlotLengthMinutes: 4}},
		{"slot too long", dto.ScheduleEntryRequest{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "12:00", SlotLengthMinutes: 241}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.availability.ReplaceWeeklySchedule(profile.ID, []dto.ScheduleEntryRequest{tt.req})
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		})
	}

	// Overlapping blocks on the same day are rejected as a whole.
	_, err := env.availability.ReplaceWeeklySchedule(profile.ID, []dto.ScheduleEntryRequest{
		{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "12:00", SlotLengthMinutes: 30},
		{DayOfWeek: "MONDAY", StartTime: "11:00", EndTime: "14:00", SlotLengthMinutes: 30},
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	// The failed replace must not have touched the stored schedule.
	entries, err := env.availability.GetWeeklySchedule(profile.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "MONDAY", entries[0].DayOfWeek)
}

func TestAbuttingBlocksAllowed(t *testing.T) {
	env := newTestEnv(t)
	_, profile := createVet(t, env.db, "drsmith")

	_, err := env.availability.ReplaceWeeklySchedule(profile.ID, []dto.ScheduleEntryRequest{
		{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "12:00", SlotLengthMinutes: 30},
		{DayOfWeek: "MONDAY", StartTime: "12:00", EndTime: "15:00", SlotLengthMinutes: 30},
	})
	assert.NoError(t, err)
}

func TestScheduleDayCaseNormalized(t *testing.T) {
	env := newTestEnv(t)
	_, profile := createVet(t, env.db, "drsmith")

	entries, err := env.availability.ReplaceWeeklySchedule(profile.ID, []dto.ScheduleEntryRequest{
		{DayOfWeek: "monday", StartTime: "09:00", EndTime: "13:00", SlotLengthMinutes: 30},
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "MONDAY", entries[0].DayOfWeek)

	// A lowercase submission must still match Monday bookings.
	cls, err := env.availability.ClassifySlot(profile.ID, testMonday, "10:00")
	require.NoError(t, err)
	require.NotNil(t, cls.Entry)
	assert.True(t, cls.Aligned)

	// Mixed-case duplicates count as the same day in the overlap check.
	_, err = env.availability.ReplaceWeeklySchedule(profile.ID, []dto.ScheduleEntryRequest{
		{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "13:00", SlotLengthMinutes: 30},
		{DayOfWeek: "monday", StartTime: "10:00", EndTime: "12:00", SlotLengthMinutes: 30},
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestScheduleLastSlotEndsBeforeMidnight(t *testing.T) {
	env := newTestEnv(t)
	_, profile := createVet(t, env.db, "drsmith")

	// 23:30 would be an aligned start whose slot wraps past 24:00.
	_, err := env.availability.ReplaceWeeklySchedule(profile.ID, []dto.ScheduleEntryRequest{
		{DayOfWeek: "MONDAY", StartTime: "23:00", EndTime: "23:45", SlotLengthMinutes: 30},
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	// A late block whose slots all close out within the day is fine.
	_, err = env.availability.ReplaceWeeklySchedule(profile.ID, []dto.ScheduleEntryRequest{
		{DayOfWeek: "MONDAY", StartTime: "22:00", EndTime: "23:30", SlotLengthMinutes: 45},
	})
	assert.NoError(t, err)
}
