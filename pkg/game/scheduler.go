package game

import (
	"sort"
	"time"

	"github.com/mflstudio/concours/pkg/log"
)

type taskID uint64

// task is delayed work owned by the game loop. A task only runs while the
// session epoch still matches the one it was scheduled in.
type task struct {
	id     taskID
	due    time.Time
	period time.Duration
	epoch  uint64
	name   string
	run    func()
}

// scheduler holds the timers of the session. It is not safe for concurrent
// use: only the game loop schedules and runs tasks.
type scheduler struct {
	nextID taskID
	tasks  map[taskID]*task
}

func newScheduler() *scheduler {
	return &scheduler{
		tasks: make(map[taskID]*task),
	}
}

// after runs fn once, d after now.
func (s *scheduler) after(now time.Time, d time.Duration, epoch uint64, name string, fn func()) taskID {
	return s.add(&task{due: now.Add(d), epoch: epoch, name: name, run: fn})
}

// every runs fn each period starting one period after now, until canceled.
func (s *scheduler) every(now time.Time, period time.Duration, epoch uint64, name string, fn func()) taskID {
	return s.add(&task{due: now.Add(period), period: period, epoch: epoch, name: name, run: fn})
}

func (s *scheduler) add(t *task) taskID {
	s.nextID++
	t.id = s.nextID
	s.tasks[t.id] = t
	return t.id
}

func (s *scheduler) cancel(id taskID) {
	delete(s.tasks, id)
}

// pending returns the number of scheduled tasks.
func (s *scheduler) pending() int {
	return len(s.tasks)
}

// runDue runs every task due at now, oldest first. Tasks from another epoch
// are dropped without running.
func (s *scheduler) runDue(now time.Time, epoch uint64) {
	for {
		due := s.due(now)
		if len(due) == 0 {
			return
		}
		for _, t := range due {
			// an earlier task may have canceled this one
			if _, ok := s.tasks[t.id]; !ok {
				continue
			}
			if t.epoch != epoch {
				log.Trace("Dropping stale %s task from epoch %d", t.name, t.epoch)
				delete(s.tasks, t.id)
				continue
			}
			if t.period > 0 {
				t.due = t.due.Add(t.period)
			} else {
				delete(s.tasks, t.id)
			}
			t.run()
		}
	}
}

func (s *scheduler) due(now time.Time) []*task {
	var due []*task
	for _, t := range s.tasks {
		if !t.due.After(now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})
	return due
}
