package get_client_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/internal/integrations/staffservice"
	"github.com/gymsys/GMS-ScheduleService/pkg/types"
)

var slotSettings = GymSettings{
	OpenTime:                "07:00",
	CloseTime:               "22:00",
	SlotDurationMinutes:     60,
	MinBookingNoticeMinutes: 60,
	MaxConcurrentPerTrainer: 1,
}

func TestGenerateTimeSlots_FutureDateReturnsFullDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(slotSettings, date, now)

	require.NoError(t, err)
	// 07:00..21:00 с шагом 60 минут
	require.Len(t, slots, 15)
	assert.Equal(t, types.TimeString("07:00"), slots[0])
	assert.Equal(t, types.TimeString("21:00"), slots[len(slots)-1])
}

func TestGenerateTimeSlots_TodayFiltersByMinNotice(t *testing.T) {
	// Сейчас 09:30, уведомление 60 минут: первый допустимый слот 11:00
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(slotSettings, date, now)

	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("11:00"), slots[0])
	assert.Equal(t, types.TimeString("21:00"), slots[len(slots)-1])
}

func TestGenerateTimeSlots_PastDateIsEmpty(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(slotSettings, date, now)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_PartialSlotDoesNotFit(t *testing.T) {
	settings := slotSettings
	settings.CloseTime = "21:30"

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(settings, date, now)

	require.NoError(t, err)
	// Слот 21:00-22:00 не помещается до закрытия в 21:30
	assert.Equal(t, types.TimeString("20:00"), slots[len(slots)-1])
}

func TestBuildSlots_TrainerAvailability(t *testing.T) {
	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	roster := []staffservice.Trainer{
		{ID: 7, FirstName: "Ana", Active: true},
		{ID: 8, FirstName: "Luis", Active: true},
	}
	trainings := []*domain.Training{
		{
			Status:    domain.StatusScheduled,
			TrainerID: 7,
			StartTime: time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
		},
	}

	slots := buildSlots(
		[]types.TimeString{"09:00", "10:00", "11:00"},
		date, slotSettings, roster, trainings,
	)

	require.Len(t, slots, 3)

	t.Run("free slot counts both trainers", func(t *testing.T) {
		assert.Equal(t, 2, slots[0].AvailableSpots)
		assert.Equal(t, 2, slots[0].TotalSpots)
		assert.ElementsMatch(t, []int64{7, 8}, slots[0].AvailableTrainers)
	})

	t.Run("occupied trainer drops out of the slot", func(t *testing.T) {
		assert.Equal(t, 1, slots[1].AvailableSpots)
		assert.Equal(t, 2, slots[1].TotalSpots)
		assert.Equal(t, []int64{8}, slots[1].AvailableTrainers)
	})

	t.Run("touching session frees the next slot", func(t *testing.T) {
		// Сессия 10:00-11:00 не пересекает слот 11:00-12:00
		assert.Equal(t, 2, slots[2].AvailableSpots)
		assert.ElementsMatch(t, []int64{7, 8}, slots[2].AvailableTrainers)
	})
}

func TestBuildSlots_CancelledSessionDoesNotOccupy(t *testing.T) {
	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	roster := []staffservice.Trainer{{ID: 7, Active: true}}
	trainings := []*domain.Training{
		{
			Status:    domain.StatusCancelled,
			TrainerID: 7,
			StartTime: time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
		},
	}

	slots := buildSlots([]types.TimeString{"10:00"}, date, slotSettings, roster, trainings)

	require.Len(t, slots, 1)
	assert.Equal(t, 1, slots[0].AvailableSpots)
	assert.Equal(t, []int64{7}, slots[0].AvailableTrainers)
}

func TestCountOverlappingTrainings(t *testing.T) {
	trainings := []*domain.Training{
		{
			Status:    domain.StatusScheduled,
			TrainerID: 7,
			StartTime: time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
		},
		{
			Status:    domain.StatusScheduled,
			TrainerID: 8,
			StartTime: time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
		},
	}

	slotStart := time.Date(2025, 3, 11, 10, 30, 0, 0, time.UTC)
	slotEnd := time.Date(2025, 3, 11, 11, 30, 0, 0, time.UTC)

	// Учитываются только сессии запрошенного тренера
	assert.Equal(t, 1, countOverlappingTrainings(slotStart, slotEnd, 7, trainings))
	assert.Equal(t, 0, countOverlappingTrainings(slotStart, slotEnd, 99, trainings))
}
