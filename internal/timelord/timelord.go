// Package timelord runs a pool of workers that compute Wesolowski VDF
// proofs for queued challenges, tracking throughput statistics.
package timelord

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/chronosvdf/wesolowski"
	"github.com/chronosvdf/wesolowski/internal/store"
)

// Config controls the worker pool and queue behavior.
type Config struct {
	WorkerPoolSize       int
	MaxPendingChallenges int
	ChallengeTimeout     time.Duration
	MonitoringInterval   time.Duration
}

// DefaultConfig returns conservative defaults.
func DefaultConfig() Config {
	return Config{
		WorkerPoolSize:       2,
		MaxPendingChallenges: 100,
		ChallengeTimeout:     5 * time.Minute,
		MonitoringInterval:   30 * time.Second,
	}
}

// JobStatus is the lifecycle state of a Job.
type JobStatus int

const (
	JobPending JobStatus = iota
	JobRunning
	JobCompleted
	JobFailed
	JobTimeout
)

func (s JobStatus) String() string {
	switch s {
	case JobPending:
		return "pending"
	case JobRunning:
		return "running"
	case JobCompleted:
		return "completed"
	case JobFailed:
		return "failed"
	case JobTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Job is a single queued VDF computation.
type Job struct {
	ID          string
	Unsolved    *vdf.UnsolvedVDF
	SubmittedAt time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	Proof       *vdf.SerializedProof
	Err         error
	Status      JobStatus
}

// Stats is a snapshot of aggregate worker-pool performance.
type Stats struct {
	TotalJobs        int64
	CompletedJobs    int64
	FailedJobs       int64
	TimeoutJobs      int64
	AverageProofTime time.Duration
	ActiveWorkers    int
	PendingJobs      int
	LastProofTime    time.Time
}

// Timelord owns the job queue and worker pool.
type Timelord struct {
	cfg   Config
	store *store.Store

	jobs      map[string]*Job
	jobQueue  chan *Job
	jobsMutex sync.RWMutex

	workerGroup sync.WaitGroup

	stats      Stats
	statsMutex sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc

	monitorTicker *time.Ticker
}

// New creates a Timelord that persists solved jobs to st.
func New(cfg Config, st *store.Store) *Timelord {
	ctx, cancel := context.WithCancel(context.Background())
	return &Timelord{
		cfg:      cfg,
		store:    st,
		jobs:     make(map[string]*Job),
		jobQueue: make(chan *Job, cfg.MaxPendingChallenges),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the worker pool and the monitoring loop.
func (tl *Timelord) Start() {
	log.Printf("timelord: starting with %d workers", tl.cfg.WorkerPoolSize)
	for i := 0; i < tl.cfg.WorkerPoolSize; i++ {
		tl.workerGroup.Add(1)
		go tl.runWorker(i)
	}
	tl.monitorTicker = time.NewTicker(tl.cfg.MonitoringInterval)
	go tl.monitorPerformance()
}

// Stop cancels outstanding work and waits for workers to exit.
func (tl *Timelord) Stop() {
	log.Printf("timelord: stopping")
	tl.cancel()
	if tl.monitorTicker != nil {
		tl.monitorTicker.Stop()
	}
	tl.workerGroup.Wait()
	log.Printf("timelord: stopped")
}

// SubmitChallenge queues a new job for unsolved, identified by id.
func (tl *Timelord) SubmitChallenge(id string, unsolved *vdf.UnsolvedVDF) (*Job, error) {
	job := &Job{
		ID:          id,
		Unsolved:    unsolved,
		SubmittedAt: time.Now().UTC(),
		Status:      JobPending,
	}

	tl.jobsMutex.Lock()
	if len(tl.jobQueue) >= tl.cfg.MaxPendingChallenges {
		tl.jobsMutex.Unlock()
		return nil, fmt.Errorf("maximum pending challenges reached (%d)", tl.cfg.MaxPendingChallenges)
	}
	tl.jobs[id] = job
	tl.jobsMutex.Unlock()

	select {
	case tl.jobQueue <- job:
		tl.updateStats(func(s *Stats) {
			s.TotalJobs++
			s.PendingJobs++
		})
		return job, nil
	default:
		tl.jobsMutex.Lock()
		delete(tl.jobs, id)
		tl.jobsMutex.Unlock()
		return nil, fmt.Errorf("job queue is full")
	}
}

// GetJob retrieves a job by ID.
func (tl *Timelord) GetJob(id string) (*Job, bool) {
	tl.jobsMutex.RLock()
	defer tl.jobsMutex.RUnlock()
	job, ok := tl.jobs[id]
	return job, ok
}

// GetStats returns a snapshot of current statistics.
func (tl *Timelord) GetStats() Stats {
	tl.statsMutex.RLock()
	defer tl.statsMutex.RUnlock()
	return tl.stats
}

func (tl *Timelord) updateStats(f func(*Stats)) {
	tl.statsMutex.Lock()
	defer tl.statsMutex.Unlock()
	f(&tl.stats)
}

func (tl *Timelord) runWorker(id int) {
	defer tl.workerGroup.Done()
	log.Printf("timelord: worker %d started", id)
	defer log.Printf("timelord: worker %d stopped", id)

	for {
		select {
		case <-tl.ctx.Done():
			return
		case job := <-tl.jobQueue:
			tl.processJob(id, job)
		}
	}
}

func (tl *Timelord) processJob(workerID int, job *Job) {
	now := time.Now().UTC()
	job.StartedAt = &now
	job.Status = JobRunning
	tl.updateStats(func(s *Stats) {
		s.ActiveWorkers++
		s.PendingJobs--
	})

	jobCtx, cancel := context.WithTimeout(tl.ctx, tl.cfg.ChallengeTimeout)
	defer cancel()

	type result struct {
		proof *vdf.SerializedProof
		err   error
	}
	resultChan := make(chan result, 1)

	go func() {
		proof, err := vdf.Compute(job.Unsolved.Setup.T, job.Unsolved.X)
		if err != nil {
			resultChan <- result{err: fmt.Errorf("compute: %w", err)}
			return
		}
		resultChan <- result{proof: proof}
	}()

	select {
	case <-jobCtx.Done():
		job.Status = JobTimeout
		job.Err = fmt.Errorf("job timed out after %s", tl.cfg.ChallengeTimeout)
		tl.updateStats(func(s *Stats) {
			s.TimeoutJobs++
			s.ActiveWorkers--
		})

	case res := <-resultChan:
		completedAt := time.Now().UTC()
		job.CompletedAt = &completedAt

		if res.err != nil {
			job.Status = JobFailed
			job.Err = res.err
			tl.updateStats(func(s *Stats) {
				s.FailedJobs++
				s.ActiveWorkers--
			})
		} else {
			job.Proof = res.proof
			job.Status = JobCompleted
			proofTime := completedAt.Sub(*job.StartedAt)

			if tl.store != nil {
				if err := tl.store.MarkSolved(job.ID, res.proof); err != nil {
					log.Printf("timelord: worker %d failed to persist job %s: %v", workerID, job.ID, err)
				}
			}

			tl.updateStats(func(s *Stats) {
				s.CompletedJobs++
				s.ActiveWorkers--
				s.LastProofTime = completedAt
				if s.CompletedJobs == 1 {
					s.AverageProofTime = proofTime
				} else {
					const alpha = 0.1
					s.AverageProofTime = time.Duration(float64(s.AverageProofTime)*(1-alpha) + float64(proofTime)*alpha)
				}
			})
		}
	}

	log.Printf("timelord: worker %d completed job %s (status: %s)", workerID, job.ID, job.Status)
}

func (tl *Timelord) monitorPerformance() {
	for {
		select {
		case <-tl.ctx.Done():
			return
		case <-tl.monitorTicker.C:
			s := tl.GetStats()
			log.Printf("timelord stats - total=%d completed=%d failed=%d timeout=%d pending=%d avg=%s",
				s.TotalJobs, s.CompletedJobs, s.FailedJobs, s.TimeoutJobs, s.PendingJobs, s.AverageProofTime)
		}
	}
}
