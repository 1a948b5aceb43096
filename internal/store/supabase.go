package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	postgrest "github.com/supabase-community/postgrest-go"

	"trendreel/functions/models"
)

// SupabaseStore talks to the Supabase REST endpoint with the service key.
type SupabaseStore struct {
	client *postgrest.Client
	now    func() time.Time
}

// NewSupabaseStore builds a PostgREST client for the project at supabaseURL.
func NewSupabaseStore(supabaseURL, serviceKey string) (*SupabaseStore, error) {
	if supabaseURL == "" || serviceKey == "" {
		return nil, fmt.Errorf("supabase url and service key must be set")
	}

	restURL := strings.TrimRight(supabaseURL, "/") + "/rest/v1"
	headers := map[string]string{
		"apikey":        serviceKey,
		"Authorization": fmt.Sprintf("Bearer %s", serviceKey),
	}

	client := postgrest.NewClient(restURL, "public", headers)
	if client.ClientError != nil {
		return nil, fmt.Errorf("failed to initialize PostgREST client: %w", client.ClientError)
	}

	return &SupabaseStore{
		client: client,
		now:    time.Now,
	}, nil
}

// UpsertTrend inserts a trend or merges it into the existing row with the
// same platform and source URL.
func (s *SupabaseStore) UpsertTrend(trend models.Trend) (*models.Trend, error) {
	row := map[string]interface{}{
		"platform":         trend.Platform,
		"source_url":       trend.SourceURL,
		"category":         trend.Category,
		"title":            trend.Title,
		"view_count":       trend.ViewCount,
		"like_count":       trend.LikeCount,
		"comment_count":    trend.CommentCount,
		"engagement_score": trend.EngagementScore,
		"updated_at":       s.now().UTC(),
	}
	if trend.ThumbnailURL != nil {
		row["thumbnail_url"] = *trend.ThumbnailURL
	}
	if trend.BrandNotes != nil {
		row["brand_notes"] = *trend.BrandNotes
	}

	var results []models.Trend
	_, err := s.client.From(trendsTable).
		Insert(row, true, "platform,source_url", "representation", "").
		ExecuteTo(&results)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert trend %s: %w", trend.SourceURL, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no record returned after upserting trend %s", trend.SourceURL)
	}
	return &results[0], nil
}

// GetTrend returns the trend with the given id.
func (s *SupabaseStore) GetTrend(id string) (*models.Trend, error) {
	return selectOne[models.Trend](s, trendsTable, "*", "id", id)
}

// GetBrand returns the brand with the given id.
func (s *SupabaseStore) GetBrand(id string) (*models.Brand, error) {
	return selectOne[models.Brand](s, brandsTable, "id,name,vertical", "id", id)
}

// GetUserOrgID resolves the organization a user belongs to.
func (s *SupabaseStore) GetUserOrgID(userID string) (uuid.UUID, error) {
	user, err := selectOne[models.User](s, usersTable, "id,org_id", "id", userID)
	if err != nil {
		return uuid.Nil, err
	}
	if user.OrgID == nil {
		return uuid.Nil, ErrRecordNotFound
	}
	return *user.OrgID, nil
}

// GetWallet returns the credits wallet of an organization.
func (s *SupabaseStore) GetWallet(orgID uuid.UUID) (*models.CreditsWallet, error) {
	return selectOne[models.CreditsWallet](s, walletsTable, "org_id,current_credits,updated_at", "org_id", orgID.String())
}

// AddCredits credits an organization's wallet through the add_credits procedure.
func (s *SupabaseStore) AddCredits(orgID uuid.UUID, amount int, reason string) error {
	_, err := s.rpc(addCreditsProcedure, creditParams(orgID, amount, reason))
	return err
}

// DeductCredits debits an organization's wallet through the deduct_credits
// procedure. The procedure owns the balance check; a false result is
// reported as ErrInsufficientCredits. Only a boolean or numeric result
// counts as a completed charge.
func (s *SupabaseStore) DeductCredits(orgID uuid.UUID, amount int, reason string) error {
	body, err := s.rpc(deductCreditsProcedure, creditParams(orgID, amount, reason))
	if err != nil {
		return err
	}

	var result interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("rpc %s: unreadable result %q: %w", deductCreditsProcedure, body, err)
	}
	switch v := result.(type) {
	case bool:
		if !v {
			return ErrInsufficientCredits
		}
		return nil
	case float64:
		return nil
	default:
		return fmt.Errorf("rpc %s: unexpected result %s", deductCreditsProcedure, body)
	}
}

// CreateVideoJob inserts a job row and returns it as stored.
func (s *SupabaseStore) CreateVideoJob(job models.VideoJob) (*models.VideoJob, error) {
	now := s.now().UTC()
	row := map[string]interface{}{
		"org_id":            job.OrgID.String(),
		"status":            job.Status,
		"compliance_status": job.ComplianceStatus,
		"script_approved":   job.ScriptApproved,
		"target_platforms":  job.TargetPlatforms,
		"campaign_type":     job.CampaignType,
		"credits_charged":   job.CreditsCharged,
		"created_at":        now,
		"updated_at":        now,
	}
	if job.BrandID != nil {
		row["brand_id"] = job.BrandID.String()
	}
	if job.SourceTrendID != nil {
		row["source_trend_id"] = job.SourceTrendID.String()
	}
	if job.TargetVertical != nil {
		row["target_vertical"] = *job.TargetVertical
	}
	if job.Prompt != nil {
		row["prompt"] = *job.Prompt
	}

	var results []models.VideoJob
	_, err := s.client.From(videoJobsTable).
		Insert(row, false, "", "representation", "").
		ExecuteTo(&results)
	if err != nil {
		return nil, fmt.Errorf("failed to insert video job for org %s: %w", job.OrgID, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no record returned after inserting video job for org %s", job.OrgID)
	}
	return &results[0], nil
}

// ApproveScript marks a job's script as approved.
func (s *SupabaseStore) ApproveScript(jobID string) (*models.VideoJob, error) {
	update := map[string]interface{}{
		"status":          models.JobStatusApproved,
		"script_approved": true,
		"updated_at":      s.now().UTC(),
	}

	var results []models.VideoJob
	_, err := s.client.From(videoJobsTable).
		Update(update, "representation", "").
		Eq("id", jobID).
		ExecuteTo(&results)
	if err != nil {
		return nil, fmt.Errorf("failed to approve script for job %s: %w", jobID, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("video job %s: %w", jobID, ErrRecordNotFound)
	}
	return &results[0], nil
}

// GetVideoJob returns the job with the given id.
func (s *SupabaseStore) GetVideoJob(jobID string) (*models.VideoJob, error) {
	return selectOne[models.VideoJob](s, videoJobsTable, "*", "id", jobID)
}

// ListViralityProfiles returns every platform profile.
func (s *SupabaseStore) ListViralityProfiles() ([]models.PlatformViralityProfile, error) {
	var profiles []models.PlatformViralityProfile
	_, err := s.client.From(viralityProfilesTable).
		Select("*", "", false).
		ExecuteTo(&profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to list virality profiles: %w", err)
	}
	return profiles, nil
}

// TouchViralityProfiles sets last_synced on the profile for platform, or on
// every profile when platform is empty. It returns the number of rows touched.
func (s *SupabaseStore) TouchViralityProfiles(platform string, at time.Time) (int, error) {
	query := s.client.From(viralityProfilesTable).
		Update(map[string]interface{}{"last_synced": at.UTC()}, "representation", "")
	if platform == "" {
		// PostgREST refuses filterless updates.
		query = query.Neq("platform", "")
	} else {
		query = query.Eq("platform", platform)
	}

	var results []models.PlatformViralityProfile
	if _, err := query.ExecuteTo(&results); err != nil {
		return 0, fmt.Errorf("failed to touch virality profiles: %w", err)
	}
	return len(results), nil
}

func selectOne[T any](s *SupabaseStore, table, columns, column, value string) (*T, error) {
	var rows []T
	_, err := s.client.From(table).
		Select(columns, "", false).
		Eq(column, value).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s where %s=%s: %w", table, column, value, err)
	}
	if len(rows) == 0 {
		return nil, ErrRecordNotFound
	}
	return &rows[0], nil
}

func creditParams(orgID uuid.UUID, amount int, reason string) map[string]interface{} {
	return map[string]interface{}{
		"p_org_id": orgID.String(),
		"p_amount": amount,
		"p_reason": reason,
	}
}

// rpc calls a stored procedure and returns its raw JSON result. The call
// goes through the query builder rather than Client.Rpc so that any status
// of 400 or above is an error whatever the response body looks like.
func (s *SupabaseStore) rpc(name string, params interface{}) (json.RawMessage, error) {
	body, _, err := s.client.From("rpc/"+name).
		Insert(params, false, "", "", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("rpc %s: %w", name, err)
	}

	// Procedures returning void answer 204 with no body.
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("rpc %s: response is not JSON: %q", name, body)
	}
	return json.RawMessage(body), nil
}
