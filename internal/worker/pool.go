package worker

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// ErrQueueFull is returned by SubmitJob when the job queue has no room.
	ErrQueueFull = errors.New("job queue full")
	// ErrStopped is returned by SubmitJob once the dispatcher is stopping.
	ErrStopped = errors.New("dispatcher stopped")
)

// Job is a unit of background work.
type Job interface {
	Execute() error
	ID() string
}

// Worker pulls jobs from its own channel after registering it in the pool.
type Worker struct {
	ID         int
	WorkerPool chan chan Job
	JobChannel chan Job
	Quit       chan struct{}
	Wg         *sync.WaitGroup
	Log        *logrus.Logger
}

// NewWorker creates a new Worker.
func NewWorker(id int, workerPool chan chan Job, wg *sync.WaitGroup, log *logrus.Logger) Worker {
	return Worker{
		ID:         id,
		WorkerPool: workerPool,
		JobChannel: make(chan Job),
		Quit:       make(chan struct{}),
		Wg:         wg,
		Log:        log,
	}
}

// Start makes the Worker listen for jobs on its JobChannel.
func (w Worker) Start() {
	w.Wg.Add(1)
	go func() {
		defer w.Wg.Done()
		for {
			// WorkerPool holds one slot per worker, so registering never blocks.
			w.WorkerPool <- w.JobChannel

			select {
			case job := <-w.JobChannel:
				entry := w.Log.WithFields(logrus.Fields{"worker": w.ID, "job_id": job.ID()})
				entry.Debug("Started job")
				if err := job.Execute(); err != nil {
					entry.WithError(err).Error("Job failed")
				} else {
					entry.Info("Finished job")
				}
			case <-w.Quit:
				w.Log.WithField("worker", w.ID).Debug("Worker stopping")
				return
			}
		}
	}()
}

// Stop signals the worker to return once its current job is done.
func (w Worker) Stop() {
	close(w.Quit)
}

// Dispatcher hands queued jobs to idle workers.
type Dispatcher struct {
	MaxWorkers int
	WorkerPool chan chan Job
	JobQueue   chan Job
	Workers    []Worker
	Wg         sync.WaitGroup
	Quit       chan struct{}
	Log        *logrus.Logger

	done     chan struct{}
	stopOnce sync.Once
}

// NewDispatcher creates a dispatcher with maxWorkers workers and a job queue
// holding up to jobQueueSize pending jobs.
func NewDispatcher(maxWorkers int, jobQueueSize int, log *logrus.Logger) *Dispatcher {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Dispatcher{
		MaxWorkers: maxWorkers,
		WorkerPool: make(chan chan Job, maxWorkers),
		JobQueue:   make(chan Job, jobQueueSize),
		Workers:    make([]Worker, 0, maxWorkers),
		Quit:       make(chan struct{}),
		Log:        log,
	}
}

// Run starts the dispatcher and its workers.
func (d *Dispatcher) Run() {
	d.Log.WithField("workers", d.MaxWorkers).Info("Dispatcher starting")
	for i := 1; i <= d.MaxWorkers; i++ {
		worker := NewWorker(i, d.WorkerPool, &d.Wg, d.Log)
		d.Workers = append(d.Workers, worker)
		worker.Start()
	}

	d.done = make(chan struct{})
	go d.dispatch()
}

// dispatch holds at most one job while it waits for an idle worker, so
// jobs beyond that stay in JobQueue and count against its capacity.
func (d *Dispatcher) dispatch() {
	defer close(d.done)
	for {
		select {
		case job := <-d.JobQueue:
			if !d.handOff(job) {
				d.Log.WithField("job_id", job.ID()).Warn("Dispatcher: dropping job on shutdown")
				return
			}
		case <-d.Quit:
			d.Log.Debug("Dispatcher: stopping dispatch loop")
			return
		}
	}
}

func (d *Dispatcher) handOff(job Job) bool {
	select {
	case jobChannel := <-d.WorkerPool:
		select {
		case jobChannel <- job:
			return true
		case <-d.Quit:
			return false
		}
	case <-d.Quit:
		return false
	}
}

// SubmitJob queues a job without blocking.
func (d *Dispatcher) SubmitJob(job Job) error {
	select {
	case <-d.Quit:
		return ErrStopped
	default:
	}

	select {
	case d.JobQueue <- job:
		d.Log.WithField("job_id", job.ID()).Debug("Job queued")
		return nil
	default:
		d.Log.WithField("job_id", job.ID()).Warn("Job queue full, dropping job")
		return ErrQueueFull
	}
}

// Stop shuts down the dispatch loop, drops jobs still queued and waits for
// workers to finish their current job. It is safe to call more than once.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.Log.Info("Dispatcher: initiating shutdown")
		close(d.Quit)
		if d.done != nil {
			<-d.done
		}

		dropped := 0
	drain:
		for {
			select {
			case <-d.JobQueue:
				dropped++
			default:
				break drain
			}
		}
		if dropped > 0 {
			d.Log.WithField("jobs", dropped).Warn("Dispatcher: dropped queued jobs on shutdown")
		}

		for _, worker := range d.Workers {
			worker.Stop()
		}

		d.Wg.Wait()
		d.Log.Info("Dispatcher: shutdown complete")
	})
}
