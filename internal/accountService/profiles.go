package accounts

import (
	"context"
	"fmt"
	"strings"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
	"bluepenguin/utils"
)

// Rating thresholds that trigger a suspension once a profile has enough ratings
const (
	MinRatingsForReview = 3
	LowRatingThreshold  = 2.0
	HighRatingThreshold = 4.0
)

// GetProfile returns a public profile
func (s *AccountService) GetProfile(ctx context.Context, profileID string) (models.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, profileID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to get profile %s: %w", profileID, err)
	}
	return profile, nil
}

// GetOwnProfile returns the profile of an account
func (s *AccountService) GetOwnProfile(ctx context.Context, accountID string) (models.Profile, error) {
	profile, err := s.repo.GetProfileByAccount(ctx, accountID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to get profile of account %s: %w", accountID, err)
	}
	return profile, nil
}

// ProfileInput holds profile fields to change; nil fields are left alone
type ProfileInput struct {
	DisplayName *string
	DisplayIcon *string
	Description *string
}

// EditProfile changes the caller's own profile
func (s *AccountService) EditProfile(ctx context.Context, accountID string, in ProfileInput) (models.Profile, error) {
	profile, err := s.GetOwnProfile(ctx, accountID)
	if err != nil {
		return models.Profile{}, err
	}
	if in.DisplayName != nil {
		name := strings.TrimSpace(*in.DisplayName)
		if name == "" {
			return models.Profile{}, fmt.Errorf("service: %w - display name cannot be empty", auctionerrors.ErrInvalidInput)
		}
		profile.DisplayName = name
	}
	if in.DisplayIcon != nil {
		profile.DisplayIcon = strings.TrimSpace(*in.DisplayIcon)
	}
	if in.Description != nil {
		profile.Description = strings.TrimSpace(*in.Description)
	}

	if err := s.repo.UpdateProfile(ctx, profile); err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to update profile %s: %w", profile.ProfileID, err)
	}
	return profile, nil
}

// RateProfile records a 1..5 score. A profile with enough ratings whose average
// falls outside the allowed band is suspended, or demoted when it is a VIP, and its
// open listings are withdrawn. The third strike removes the account for good.
func (s *AccountService) RateProfile(ctx context.Context, raterProfileID, rateeProfileID string, score int) (models.Profile, error) {
	if score < 1 || score > 5 {
		return models.Profile{}, fmt.Errorf("service: %w - score must be between 1 and 5", auctionerrors.ErrInvalidInput)
	}
	if raterProfileID == "" || rateeProfileID == "" {
		return models.Profile{}, fmt.Errorf("service: %w - missing profile ID", auctionerrors.ErrInvalidInput)
	}
	if raterProfileID == rateeProfileID {
		return models.Profile{}, fmt.Errorf("service: %w - cannot rate yourself", auctionerrors.ErrForbidden)
	}

	profile, err := s.repo.RateProfile(ctx, models.Rating{
		RaterProfileID: raterProfileID,
		RateeProfileID: rateeProfileID,
		Score:          score,
		CreatedAt:      s.clock.Now(),
	})
	if err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to rate profile %s: %w", rateeProfileID, err)
	}

	if err := s.reviewRatings(ctx, profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (s *AccountService) reviewRatings(ctx context.Context, profile models.Profile) error {
	if profile.RatingCount < MinRatingsForReview {
		return nil
	}
	if profile.AverageRating >= LowRatingThreshold && profile.AverageRating <= HighRatingThreshold {
		return nil
	}

	account, err := s.GetAccount(ctx, profile.AccountID)
	if err != nil {
		return err
	}
	demoted := false
	switch {
	case account.Removed():
		return nil
	case account.Status == models.StatusVIP:
		account.Status = models.StatusUser
		demoted = true
	case account.IsSuspended:
		return nil
	default:
		account.IsSuspended = true
	}
	account.SuspensionStrikes++
	if account.SuspensionStrikes >= models.MaxSuspensionStrikes {
		account.IsRemoved = true
	}

	if _, err := s.save(ctx, account); err != nil {
		return err
	}
	withdrawn, err := s.repo.WithdrawListings(ctx, profile.ProfileID)
	if err != nil {
		return fmt.Errorf("service: failed to withdraw listings of %s: %w", profile.ProfileID, err)
	}
	utils.Warn("profile suspended by ratings", map[string]any{
		"profile_id":     profile.ProfileID,
		"average_rating": profile.AverageRating,
		"strikes":        account.SuspensionStrikes,
		"status":         account.Status,
		"demoted":        demoted,
		"withdrawn":      withdrawn,
	})

	if account.IsRemoved {
		s.sessions.RevokeAccount(account.AccountID)
		utils.Warn("account removed", map[string]any{"account_id": account.AccountID, "strikes": account.SuspensionStrikes})
	}
	return nil
}

// ReportProfile files a pending report against another profile and re-evaluates the
// reportee's VIP status; a reported VIP loses it.
func (s *AccountService) ReportProfile(ctx context.Context, reporterProfileID, reporteeProfileID, text string) (models.Report, error) {
	text = strings.TrimSpace(text)
	if reporterProfileID == "" || reporteeProfileID == "" {
		return models.Report{}, fmt.Errorf("service: %w - missing profile ID", auctionerrors.ErrInvalidInput)
	}
	if text == "" || len(text) > models.MaxReportLength {
		return models.Report{}, fmt.Errorf("service: %w - report must be 1 to %d characters", auctionerrors.ErrInvalidInput, models.MaxReportLength)
	}
	if reporterProfileID == reporteeProfileID {
		return models.Report{}, fmt.Errorf("service: %w - cannot report yourself", auctionerrors.ErrForbidden)
	}
	reportee, err := s.GetProfile(ctx, reporteeProfileID)
	if err != nil {
		return models.Report{}, err
	}

	report := models.Report{
		ReportID:          utils.GenerateID(),
		ReporterProfileID: reporterProfileID,
		ReporteeProfileID: reporteeProfileID,
		Text:              text,
		Status:            models.ReportPending,
		CreatedAt:         s.clock.Now(),
	}
	if err := s.repo.CreateReport(ctx, report); err != nil {
		return models.Report{}, fmt.Errorf("service: failed to report profile %s: %w", reporteeProfileID, err)
	}
	utils.Info("profile reported", map[string]any{"report_id": report.ReportID, "reportee": reporteeProfileID})

	account, err := s.GetAccount(ctx, reportee.AccountID)
	if err != nil {
		utils.Error("vip review after report failed", map[string]any{"account_id": reportee.AccountID, "error": err.Error()})
		return report, nil
	}
	s.reviewVIP(ctx, account)
	return report, nil
}
