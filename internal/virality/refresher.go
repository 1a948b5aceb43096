// Package virality keeps platform virality profiles fresh.
//
// Profile tuning values are not computed yet; a refresh only stamps
// last_synced so the dashboard can show when each platform was visited.
package virality

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"trendreel/functions/internal/worker"
	"trendreel/functions/models"
)

// ProfileStore is the slice of the data store the refresher needs.
type ProfileStore interface {
	ListViralityProfiles() ([]models.PlatformViralityProfile, error)
	TouchViralityProfiles(platform string, at time.Time) (int, error)
}

// JobSubmitter queues background jobs.
type JobSubmitter interface {
	SubmitJob(job worker.Job) error
}

// Refresher refreshes virality profiles on demand or in the background.
type Refresher struct {
	store  ProfileStore
	logger *logrus.Logger
	now    func() time.Time
}

// NewRefresher returns a Refresher backed by store.
func NewRefresher(store ProfileStore, logger *logrus.Logger) *Refresher {
	return &Refresher{store: store, logger: logger, now: time.Now}
}

// RefreshAll refreshes every profile in one update and returns the sync time.
func (r *Refresher) RefreshAll() (time.Time, error) {
	at := r.now().UTC()
	n, err := r.store.TouchViralityProfiles("", at)
	if err != nil {
		return time.Time{}, fmt.Errorf("refresh virality profiles: %w", err)
	}
	r.logger.WithFields(logrus.Fields{"profiles": n, "last_synced": at}).Info("Virality profiles refreshed")
	return at, nil
}

// RefreshPlatform refreshes the profile of a single platform.
func (r *Refresher) RefreshPlatform(platform string) error {
	at := r.now().UTC()
	n, err := r.store.TouchViralityProfiles(platform, at)
	if err != nil {
		return fmt.Errorf("refresh virality profile %s: %w", platform, err)
	}
	if n == 0 {
		r.logger.WithField("platform", platform).Warn("No virality profile touched")
	}
	return nil
}

// Schedule queues one refresh job per known profile and returns how many
// were queued. Jobs rejected by a full queue are logged and skipped.
func (r *Refresher) Schedule(q JobSubmitter) (int, error) {
	profiles, err := r.store.ListViralityProfiles()
	if err != nil {
		return 0, fmt.Errorf("list virality profiles: %w", err)
	}

	batch := r.now().UTC().Format("20060102T150405")
	queued := 0
	for _, p := range profiles {
		job := &RefreshJob{JobID: fmt.Sprintf("virality-%s-%s", p.Platform, batch), Platform: p.Platform, refresher: r}
		if err := q.SubmitJob(job); err != nil {
			r.logger.WithError(err).WithField("platform", p.Platform).Warn("Could not queue virality refresh")
			continue
		}
		queued++
	}
	return queued, nil
}

// RefreshJob refreshes one platform profile on a worker.
type RefreshJob struct {
	JobID     string
	Platform  string
	refresher *Refresher
}

// ID returns the unique identifier of the job.
func (j *RefreshJob) ID() string {
	return j.JobID
}

// Execute performs the refresh.
func (j *RefreshJob) Execute() error {
	return j.refresher.RefreshPlatform(j.Platform)
}
