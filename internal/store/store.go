// Package store reads and writes the Supabase tables and calls the credit
// procedures over PostgREST.
package store

import "errors"

// ErrRecordNotFound is returned when a lookup matches no row.
var ErrRecordNotFound = errors.New("record not found")

// ErrInsufficientCredits is returned when the debit procedure refuses a charge.
var ErrInsufficientCredits = errors.New("insufficient credits")

// Table and procedure names in the Supabase project.
const (
	usersTable             = "users"
	walletsTable           = "credits_wallets"
	trendsTable            = "trends"
	videoJobsTable         = "video_jobs"
	brandsTable            = "brands"
	viralityProfilesTable  = "platform_virality_profiles"
	addCreditsProcedure    = "add_credits"
	deductCreditsProcedure = "deduct_credits"
)
