package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContract_IsCurrentlyActive(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("active status with future end date", func(t *testing.T) {
		c := &Contract{Status: ContractActive, EndDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
		assert.True(t, c.IsCurrentlyActive(now))
	})

	t.Run("end date today still grants access", func(t *testing.T) {
		c := &Contract{Status: ContractActive, EndDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}
		assert.True(t, c.IsCurrentlyActive(now))
	})

	t.Run("end date yesterday denies even with stale active status", func(t *testing.T) {
		// Биллинг обновляет статусы лениво: хранимому статусу одному не доверяем
		c := &Contract{Status: ContractActive, EndDate: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)}
		assert.False(t, c.IsCurrentlyActive(now))
	})

	t.Run("cancelled contract denies regardless of dates", func(t *testing.T) {
		c := &Contract{Status: ContractCancelled, EndDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
		assert.False(t, c.IsCurrentlyActive(now))
	})

	t.Run("expired status denies", func(t *testing.T) {
		c := &Contract{Status: ContractExpired, EndDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
		assert.False(t, c.IsCurrentlyActive(now))
	})
}

func TestHasAnyCurrentlyActive(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	expired := &Contract{Status: ContractActive, EndDate: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)}
	cancelled := &Contract{Status: ContractCancelled, EndDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	active := &Contract{Status: ContractActive, EndDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

	assert.False(t, HasAnyCurrentlyActive(nil, now))
	assert.False(t, HasAnyCurrentlyActive([]*Contract{expired, cancelled}, now))
	assert.True(t, HasAnyCurrentlyActive([]*Contract{expired, active}, now))
}

func TestActor_CanViewTraining(t *testing.T) {
	training := &Training{ClientID: 42, TrainerID: 7}

	assert.True(t, Actor{UserID: 1, Role: RoleAdmin}.CanViewTraining(training))
	assert.True(t, Actor{UserID: 7, Role: RoleTrainer}.CanViewTraining(training))
	assert.False(t, Actor{UserID: 8, Role: RoleTrainer}.CanViewTraining(training))
	assert.True(t, Actor{UserID: 42, Role: RoleClient}.CanViewTraining(training))
	assert.False(t, Actor{UserID: 43, Role: RoleClient}.CanViewTraining(training))
	assert.False(t, Actor{UserID: 42, Role: Role("OTRO")}.CanViewTraining(training))
}

func TestActor_ScopeFilter(t *testing.T) {
	otherTrainer := int64(99)

	t.Run("admin filter passes through", func(t *testing.T) {
		filter := Actor{UserID: 1, Role: RoleAdmin}.ScopeFilter(TrainingsFilter{TrainerID: &otherTrainer})
		assert.Equal(t, otherTrainer, *filter.TrainerID)
		assert.Nil(t, filter.ClientID)
	})

	t.Run("trainer is forced onto own sessions", func(t *testing.T) {
		filter := Actor{UserID: 7, Role: RoleTrainer}.ScopeFilter(TrainingsFilter{TrainerID: &otherTrainer})
		assert.Equal(t, int64(7), *filter.TrainerID)
	})

	t.Run("client is forced onto own sessions", func(t *testing.T) {
		filter := Actor{UserID: 42, Role: RoleClient}.ScopeFilter(TrainingsFilter{})
		assert.Equal(t, int64(42), *filter.ClientID)
	})
}
