package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-clinic-scheduling/internal/domain/entity"
)

func TestAppointmentRepositoryFindByIDs(t *testing.T) {
	repo := NewAppointmentRepository()
	now := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

	first := entity.NewAppointment(uuid.New(), uuid.New(), now.Add(time.Hour), now)
	second := entity.NewAppointment(uuid.New(), uuid.New(), now.Add(3*time.Hour), now)
	require.NoError(t, repo.Save(first))
	require.NoError(t, repo.Save(second))

	// Input order is preserved, unknown IDs are skipped
	found, err := repo.FindByIDs([]uuid.UUID{second.ID, uuid.New(), first.ID})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, second.ID, found[0].ID)
	assert.Equal(t, first.ID, found[1].ID)
}

func TestAppointmentRepositoryFindByID(t *testing.T) {
	repo := NewAppointmentRepository()
	now := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

	appointment := entity.NewAppointment(uuid.New(), uuid.New(), now.Add(time.Hour), now)
	require.NoError(t, repo.Save(appointment))

	found, err := repo.FindByID(appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, appointment, found)

	missing, err := repo.FindByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAppointmentRepositorySaveIsIdempotentForOrder(t *testing.T) {
	repo := NewAppointmentRepository()
	now := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

	appointment := entity.NewAppointment(uuid.New(), uuid.New(), now.Add(time.Hour), now)
	require.NoError(t, repo.Save(appointment))

	appointment.Cancel(now)
	require.NoError(t, repo.Save(appointment))

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsCancelled())
}
