package memory

import (
	"fmt"
	"sync"
	"time"

	"meetbot/internal/meeting/repository"
	"meetbot/internal/model"
	"meetbot/pkg/log"
)

type implRepository struct {
	l   log.Logger
	now func() time.Time

	mu       sync.RWMutex
	meetings map[int64]model.Meeting
	seq      int64

	// writer serialises WithinDateLock callers across all dates.
	writer sync.Mutex
}

// New creates an in-process Repository. Data lives until the process exits.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:        l,
		now:      time.Now,
		meetings: make(map[int64]model.Meeting),
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("meeting/repository/memory.%s", method)
}
