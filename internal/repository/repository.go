package repository

import (
	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/UnknownOlympus/roster/internal/models"
)

// Subscriber receives a copy of the record sequence after every applied mutation.
type Subscriber func(employees []models.Employee)

// EmployeeRepoIface represents the interface for interacting with the ordered employee roster.
// Records are addressed by their position in the sequence, never by ID.
type EmployeeRepoIface interface {
	Append(employee models.Employee)
	UpdateAt(index int, employee models.Employee) bool
	DeleteAt(index int) bool
	Get(index int) (models.Employee, bool)
	List() []models.Employee
	Len() int
}

// Repository is the in-memory record store. It is not safe for concurrent use;
// callers serialize access the way a UI event loop does.
type Repository struct {
	employees   []models.Employee
	subscribers []Subscriber
	metrics     *metrics.Metrics
}

func NewEmployeeRepository(metrics *metrics.Metrics) *Repository {
	return &Repository{metrics: metrics}
}

// Subscribe registers fn to be notified of the new sequence after each applied mutation.
func (r *Repository) Subscribe(fn Subscriber) {
	r.subscribers = append(r.subscribers, fn)
}

func (r *Repository) notify() {
	r.metrics.Records.Set(float64(len(r.employees)))
	for _, fn := range r.subscribers {
		fn(r.List())
	}
}

func (r *Repository) observe(op string, applied bool) {
	outcome := metrics.OutcomeIgnored
	if applied {
		outcome = metrics.OutcomeApplied
	}
	r.metrics.StoreMutations.WithLabelValues(op, outcome).Inc()
}
