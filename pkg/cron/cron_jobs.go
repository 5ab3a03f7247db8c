package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cmwalshWVU/prompt-pad-api/internal/repositories/supabase"
	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

func StartCronJob(db *supabase.Client) *cron.Cron {
	c := cron.New()

	// expire stale invites and shares every 6 hours
	_, err := c.AddFunc("0 */6 * * *", func() {
		if err := MarkExpiredInvites(db); err != nil {
			utils.Logger.Errorf("Cron job failed to expire invites: %v", err)
		}
		if err := PurgeExpiredPromptShares(db); err != nil {
			utils.Logger.Errorf("Cron job failed to purge expired prompt shares: %v", err)
		}
	})
	if err != nil {
		utils.Logger.Errorf("Failed to schedule expiry job: %v", err)
	}

	c.Start()
	utils.Logger.Info("Cron jobs started (invite/share expiry every 6h)")
	return c
}

// MarkExpiredInvites flips pending group invites whose expiry has passed to
// status expired, so they stop showing up in pending-invite listings.
func MarkExpiredInvites(db *supabase.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)
	rows, err := db.From("group_invites").
		Update(map[string]interface{}{"status": "expired"}).
		Eq("status", "pending").
		Lt("expires_at", now).
		Returning().
		Execute(ctx)
	if err != nil {
		return err
	}

	if len(rows) > 0 {
		utils.Logger.Infof("Marked %d invites as expired", len(rows))
	}
	return nil
}

// PurgeExpiredPromptShares removes prompt shares past their expires_at, so
// expired grants stop conferring access.
func PurgeExpiredPromptShares(db *supabase.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)
	rows, err := db.From("prompt_shares").
		Delete().
		Lt("expires_at", now).
		Returning().
		Execute(ctx)
	if err != nil {
		return err
	}

	if len(rows) > 0 {
		utils.Logger.Infof("Purged %d expired prompt shares", len(rows))
	}
	return nil
}
