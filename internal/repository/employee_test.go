package repository_test

import (
	"testing"

	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/UnknownOlympus/roster/internal/models"
	"github.com/UnknownOlympus/roster/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = models.Employee{Name: "Alice", Department: "Eng", Position: "Dev"}
	bob   = models.Employee{Name: "Bob", Department: "Sales", Position: "Rep"}
	carol = models.Employee{Name: "Carol", Department: "HR", Position: "Mgr"}
)

func newRepo(t *testing.T) (*repository.Repository, *metrics.Metrics) {
	t.Helper()

	m := metrics.NewMetrics(prometheus.NewRegistry())

	return repository.NewEmployeeRepository(m), m
}

func TestAppend_KeepsCallOrder(t *testing.T) {
	t.Parallel()

	repo, m := newRepo(t)

	repo.Append(alice)
	repo.Append(bob)
	repo.Append(carol)
	repo.Append(alice)

	assert.Equal(t, []models.Employee{alice, bob, carol, alice}, repo.List())
	assert.Equal(t, 4, repo.Len())
	assert.InDelta(t, 4, testutil.ToFloat64(m.Records), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(m.StoreMutations.WithLabelValues("append", metrics.OutcomeApplied)), 0)
}

func TestUpdateAt(t *testing.T) {
	t.Parallel()

	t.Run("replaces only the addressed position", func(t *testing.T) {
		t.Parallel()

		repo, _ := newRepo(t)
		repo.Append(alice)
		repo.Append(bob)
		repo.Append(carol)

		updated := models.Employee{ID: 9, Name: "Bobby", Department: "Sales", Position: "Lead"}
		require.True(t, repo.UpdateAt(1, updated))

		assert.Equal(t, []models.Employee{alice, updated, carol}, repo.List())
	})

	t.Run("out of bounds is a no-op", func(t *testing.T) {
		t.Parallel()

		repo, m := newRepo(t)
		repo.Append(alice)

		for _, idx := range []int{-1, 1, 42} {
			assert.False(t, repo.UpdateAt(idx, bob), "index %d", idx)
		}

		assert.Equal(t, []models.Employee{alice}, repo.List())
		assert.InDelta(t, 3, testutil.ToFloat64(m.StoreMutations.WithLabelValues("update", metrics.OutcomeIgnored)), 0)
	})
}

func TestDeleteAt(t *testing.T) {
	t.Parallel()

	t.Run("removes one and shifts the rest down", func(t *testing.T) {
		t.Parallel()

		repo, m := newRepo(t)
		repo.Append(alice)
		repo.Append(bob)
		repo.Append(carol)

		require.True(t, repo.DeleteAt(0))

		assert.Equal(t, []models.Employee{bob, carol}, repo.List())
		got, ok := repo.Get(0)
		require.True(t, ok)
		assert.Equal(t, bob, got)
		assert.InDelta(t, 2, testutil.ToFloat64(m.Records), 0)
	})

	t.Run("out of bounds is a no-op", func(t *testing.T) {
		t.Parallel()

		repo, _ := newRepo(t)
		repo.Append(alice)

		assert.False(t, repo.DeleteAt(1))
		assert.False(t, repo.DeleteAt(-1))
		assert.Equal(t, []models.Employee{alice}, repo.List())
	})
}

func TestGet_OutOfBounds(t *testing.T) {
	t.Parallel()

	repo, _ := newRepo(t)

	got, ok := repo.Get(0)
	assert.False(t, ok)
	assert.Equal(t, models.Employee{}, got)
}

func TestList_ReturnsCopy(t *testing.T) {
	t.Parallel()

	repo, _ := newRepo(t)
	repo.Append(alice)

	list := repo.List()
	list[0].Name = "Mallory"

	got, _ := repo.Get(0)
	assert.Equal(t, "Alice", got.Name)
}

func TestSubscribe(t *testing.T) {
	t.Parallel()

	repo, _ := newRepo(t)

	var snapshots [][]models.Employee
	repo.Subscribe(func(employees []models.Employee) {
		snapshots = append(snapshots, employees)
	})

	repo.Append(alice)
	repo.Append(bob)
	repo.UpdateAt(5, carol) // ignored, no notification
	repo.DeleteAt(0)

	require.Len(t, snapshots, 3)
	assert.Equal(t, []models.Employee{alice}, snapshots[0])
	assert.Equal(t, []models.Employee{alice, bob}, snapshots[1])
	assert.Equal(t, []models.Employee{bob}, snapshots[2])
}
