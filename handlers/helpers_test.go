package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"trendreel/functions/internal/store"
	"trendreel/functions/middleware"
	"trendreel/functions/models"
	"trendreel/functions/utils"
)

type creditCall struct {
	OrgID  uuid.UUID
	Amount int
	Reason string
}

type fakeStore struct {
	trends   map[string]models.Trend
	brands   map[string]models.Brand
	userOrgs map[string]uuid.UUID
	wallets  map[uuid.UUID]int
	jobs     map[string]models.VideoJob

	upserted []models.Trend
	added    []creditCall
	deducted []creditCall
	created  []models.VideoJob

	upsertErr error
	orgErr    error
	walletErr error
	addErr    error
	deductErr error
	createErr error
	jobErr    error

	jobLookups int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		trends:   map[string]models.Trend{},
		brands:   map[string]models.Brand{},
		userOrgs: map[string]uuid.UUID{},
		wallets:  map[uuid.UUID]int{},
		jobs:     map[string]models.VideoJob{},
	}
}

func (f *fakeStore) UpsertTrend(trend models.Trend) (*models.Trend, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserted = append(f.upserted, trend)
	trend.ID = uuid.New()
	return &trend, nil
}

func (f *fakeStore) GetTrend(id string) (*models.Trend, error) {
	t, ok := f.trends[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return &t, nil
}

func (f *fakeStore) GetBrand(id string) (*models.Brand, error) {
	b, ok := f.brands[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return &b, nil
}

func (f *fakeStore) GetUserOrgID(userID string) (uuid.UUID, error) {
	if f.orgErr != nil {
		return uuid.Nil, f.orgErr
	}
	id, ok := f.userOrgs[userID]
	if !ok {
		return uuid.Nil, store.ErrRecordNotFound
	}
	return id, nil
}

func (f *fakeStore) GetWallet(orgID uuid.UUID) (*models.CreditsWallet, error) {
	if f.walletErr != nil {
		return nil, f.walletErr
	}
	credits, ok := f.wallets[orgID]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return &models.CreditsWallet{OrgID: orgID, CurrentCredits: credits}, nil
}

func (f *fakeStore) AddCredits(orgID uuid.UUID, amount int, reason string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, creditCall{orgID, amount, reason})
	f.wallets[orgID] += amount
	return nil
}

func (f *fakeStore) DeductCredits(orgID uuid.UUID, amount int, reason string) error {
	if f.deductErr != nil {
		return f.deductErr
	}
	f.deducted = append(f.deducted, creditCall{orgID, amount, reason})
	f.wallets[orgID] -= amount
	return nil
}

func (f *fakeStore) CreateVideoJob(job models.VideoJob) (*models.VideoJob, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	job.ID = uuid.New()
	f.created = append(f.created, job)
	f.jobs[job.ID.String()] = job
	return &job, nil
}

func (f *fakeStore) ApproveScript(jobID string) (*models.VideoJob, error) {
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("video job %s: %w", jobID, store.ErrRecordNotFound)
	}
	job.Status = models.JobStatusApproved
	job.ScriptApproved = true
	f.jobs[jobID] = job
	return &job, nil
}

func (f *fakeStore) GetVideoJob(jobID string) (*models.VideoJob, error) {
	f.jobLookups++
	if f.jobErr != nil {
		return nil, f.jobErr
	}
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return &job, nil
}

type fakePayments struct {
	err   error
	calls int
}

func (p *fakePayments) Authorize(orgID, paymentMethodID string, credits int) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return "ref-1", nil
}

type fakeRefresher struct {
	at  time.Time
	err error
}

func (r *fakeRefresher) RefreshAll() (time.Time, error) {
	return r.at, r.err
}

type tokenVerifier map[string]string

func (v tokenVerifier) VerifyToken(token string) (string, error) {
	if id, ok := v[token]; ok {
		return id, nil
	}
	return "", errors.New("invalid token")
}

const (
	testToken  = "token-alice"
	testUserID = "user-alice"
)

type testEnv struct {
	app       *fiber.App
	store     *fakeStore
	payments  *fakePayments
	refresher *fakeRefresher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger, _ := test.NewNullLogger()
	env := &testEnv{
		store:     newFakeStore(),
		payments:  &fakePayments{},
		refresher: &fakeRefresher{at: time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC)},
	}
	h := NewApplicationHandler(env.store, env.payments, env.refresher, logger)

	env.app = fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	env.app.Use(middleware.Preflight())
	h.Register(env.app, middleware.RequireUser(tokenVerifier{testToken: testUserID}, logger))
	return env
}

// call sends body (a string is sent verbatim, anything else as JSON) and
// decodes the JSON response.
func (e *testEnv) call(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (e *testEnv) post(t *testing.T, path, token string, body interface{}) (int, map[string]interface{}) {
	return e.call(t, http.MethodPost, path, token, body)
}
