package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bluepenguin/pkg/auctionerrors"
	"bluepenguin/pkg/models"
)

const accountColumns = `account_id, email, username, first_name, last_name, password_hash, status,
	balance, is_suspended, suspension_strikes, quit_requested, is_removed, points, created_at`

const profileColumns = `profile_id, account_id, display_name, display_icon, description,
	average_rating, rating_count, item_count`

// CreateAccount stores an account with its profile in one transaction
func (r *PostgresRepo) CreateAccount(ctx context.Context, account models.Account, profile models.Profile) error {
	profile.AccountID = account.AccountID
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, `INSERT INTO accounts (`+accountColumns+`) VALUES
			(:account_id, :email, :username, :first_name, :last_name, :password_hash, :status,
			 :balance, :is_suspended, :suspension_strikes, :quit_requested, :is_removed, :points, :created_at)`, account); err != nil {
			return mapErr(err, auctionerrors.ErrAccountNotFound)
		}
		_, err := tx.NamedExecContext(ctx, `INSERT INTO profiles (`+profileColumns+`) VALUES
			(:profile_id, :account_id, :display_name, :display_icon, :description,
			 :average_rating, :rating_count, :item_count)`, profile)
		return mapErr(err, auctionerrors.ErrProfileNotFound)
	})
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// GetAccount returns an account by ID
func (r *PostgresRepo) GetAccount(ctx context.Context, accountID string) (models.Account, error) {
	var account models.Account
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1`
	if err := r.db.GetContext(ctx, &account, query, accountID); err != nil {
		return models.Account{}, fmt.Errorf("get account %s: %w", accountID, mapErr(err, auctionerrors.ErrAccountNotFound))
	}
	return account, nil
}

// GetAccountByEmail looks an account up by its login email
func (r *PostgresRepo) GetAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	var account models.Account
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE LOWER(email) = LOWER($1)`
	if err := r.db.GetContext(ctx, &account, query, email); err != nil {
		return models.Account{}, fmt.Errorf("get account by email: %w", mapErr(err, auctionerrors.ErrAccountNotFound))
	}
	return account, nil
}

// UpdateAccount persists mutable account fields. Balance and points only change through
// AdjustBalance, PayFine and AcceptWinner.
func (r *PostgresRepo) UpdateAccount(ctx context.Context, account models.Account) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE accounts SET
		username = :username, first_name = :first_name, last_name = :last_name, status = :status,
		is_suspended = :is_suspended, suspension_strikes = :suspension_strikes, quit_requested = :quit_requested,
		is_removed = :is_removed,
		password_hash = COALESCE(NULLIF(:password_hash, ''), password_hash)
		WHERE account_id = :account_id`, account)
	if err != nil {
		return fmt.Errorf("update account %s: %w", account.AccountID, mapErr(err, auctionerrors.ErrAccountNotFound))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update account %s: %w", account.AccountID, auctionerrors.ErrAccountNotFound)
	}
	return nil
}

// AdjustBalance adds delta to the balance; a negative result is rejected
func (r *PostgresRepo) AdjustBalance(ctx context.Context, accountID string, delta float64) (models.Account, error) {
	var account models.Account
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		if account, err = lockAccount(ctx, tx, accountID); err != nil {
			return err
		}
		if account.Balance+delta < 0 {
			return auctionerrors.ErrInsufficientBalance
		}
		account.Balance += delta
		_, err = tx.ExecContext(ctx, `UPDATE accounts SET balance = $2 WHERE account_id = $1`, accountID, account.Balance)
		return err
	})
	if err != nil {
		return models.Account{}, fmt.Errorf("adjust balance %s: %w", accountID, err)
	}
	return account, nil
}

// PayFine charges the fine and lifts the suspension in one transaction
func (r *PostgresRepo) PayFine(ctx context.Context, accountID string, fine float64) (models.Account, error) {
	var account models.Account
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		if account, err = lockAccount(ctx, tx, accountID); err != nil {
			return err
		}
		if !account.IsSuspended {
			return fmt.Errorf("account is not suspended: %w", auctionerrors.ErrInvalidState)
		}
		if account.Balance < fine {
			return fmt.Errorf("fine %.2f: %w", fine, auctionerrors.ErrInsufficientBalance)
		}
		account.Balance -= fine
		account.IsSuspended = false
		_, err = tx.ExecContext(ctx, `UPDATE accounts SET balance = $2, is_suspended = FALSE WHERE account_id = $1`,
			accountID, account.Balance)
		return err
	})
	if err != nil {
		return models.Account{}, fmt.Errorf("pay fine %s: %w", accountID, err)
	}
	return account, nil
}

// ReviewVIPStatus promotes or demotes the account from its transactions, reports and balance
func (r *PostgresRepo) ReviewVIPStatus(ctx context.Context, accountID string) (models.Account, error) {
	var account models.Account
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		if account, err = lockAccount(ctx, tx, accountID); err != nil {
			return err
		}
		var transactions, reports int
		if err := tx.GetContext(ctx, &transactions, `SELECT COUNT(*) FROM transactions t
			JOIN profiles p ON p.profile_id IN (t.seller_profile_id, t.buyer_profile_id)
			WHERE p.account_id = $1 AND t.status <> $2`, accountID, models.TxnRejected); err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &reports, `SELECT COUNT(*) FROM reports r
			JOIN profiles p ON p.profile_id = r.reportee_profile_id
			WHERE p.account_id = $1`, accountID); err != nil {
			return err
		}

		status := account.VIPReview(transactions, reports)
		if status == account.Status {
			return nil
		}
		account.Status = status
		_, err = tx.ExecContext(ctx, `UPDATE accounts SET status = $2 WHERE account_id = $1`, accountID, status)
		return err
	})
	if err != nil {
		return models.Account{}, fmt.Errorf("review vip status %s: %w", accountID, err)
	}
	return account, nil
}

func lockAccount(ctx context.Context, tx *sqlx.Tx, accountID string) (models.Account, error) {
	var account models.Account
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &account, query, accountID); err != nil {
		return models.Account{}, mapErr(err, auctionerrors.ErrAccountNotFound)
	}
	return account, nil
}

// GetProfile returns a profile by ID
func (r *PostgresRepo) GetProfile(ctx context.Context, profileID string) (models.Profile, error) {
	var profile models.Profile
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE profile_id = $1`
	if err := r.db.GetContext(ctx, &profile, query, profileID); err != nil {
		return models.Profile{}, fmt.Errorf("get profile %s: %w", profileID, mapErr(err, auctionerrors.ErrProfileNotFound))
	}
	return profile, nil
}

// GetProfileByAccount returns the profile owned by an account
func (r *PostgresRepo) GetProfileByAccount(ctx context.Context, accountID string) (models.Profile, error) {
	var profile models.Profile
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE account_id = $1`
	if err := r.db.GetContext(ctx, &profile, query, accountID); err != nil {
		return models.Profile{}, fmt.Errorf("get profile of account %s: %w", accountID, mapErr(err, auctionerrors.ErrProfileNotFound))
	}
	return profile, nil
}

// UpdateProfile persists display fields of a profile
func (r *PostgresRepo) UpdateProfile(ctx context.Context, profile models.Profile) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE profiles SET
		display_name = :display_name, display_icon = :display_icon, description = :description
		WHERE profile_id = :profile_id`, profile)
	if err != nil {
		return fmt.Errorf("update profile %s: %w", profile.ProfileID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update profile %s: %w", profile.ProfileID, auctionerrors.ErrProfileNotFound)
	}
	return nil
}

// RateProfile records or replaces a rating and recomputes the ratee's average
func (r *PostgresRepo) RateProfile(ctx context.Context, rating models.Rating) (models.Profile, error) {
	var profile models.Profile
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, `INSERT INTO ratings (rater_profile_id, ratee_profile_id, score, created_at)
			VALUES (:rater_profile_id, :ratee_profile_id, :score, :created_at)
			ON CONFLICT (rater_profile_id, ratee_profile_id)
			DO UPDATE SET score = EXCLUDED.score, created_at = EXCLUDED.created_at`, rating); err != nil {
			return err
		}
		query := `UPDATE profiles SET
			average_rating = (SELECT AVG(score) FROM ratings WHERE ratee_profile_id = $1),
			rating_count = (SELECT COUNT(*) FROM ratings WHERE ratee_profile_id = $1)
			WHERE profile_id = $1
			RETURNING ` + profileColumns
		return mapErr(tx.GetContext(ctx, &profile, query, rating.RateeProfileID), auctionerrors.ErrProfileNotFound)
	})
	if err != nil {
		return models.Profile{}, fmt.Errorf("rate profile %s: %w", rating.RateeProfileID, err)
	}
	return profile, nil
}

// SetShippingAddress creates or replaces the address of an account
func (r *PostgresRepo) SetShippingAddress(ctx context.Context, address models.ShippingAddress) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO shipping_addresses
		(account_id, street_address, address_line_2, city, state, zip, country)
		VALUES (:account_id, :street_address, :address_line_2, :city, :state, :zip, :country)
		ON CONFLICT (account_id) DO UPDATE SET
			street_address = EXCLUDED.street_address, address_line_2 = EXCLUDED.address_line_2,
			city = EXCLUDED.city, state = EXCLUDED.state, zip = EXCLUDED.zip, country = EXCLUDED.country`, address)
	if err != nil {
		return fmt.Errorf("set shipping address %s: %w", address.AccountID, err)
	}
	return nil
}

// GetShippingAddress returns the address of an account
func (r *PostgresRepo) GetShippingAddress(ctx context.Context, accountID string) (models.ShippingAddress, error) {
	var address models.ShippingAddress
	query := `SELECT account_id, street_address, address_line_2, city, state, zip, country
		FROM shipping_addresses WHERE account_id = $1`
	if err := r.db.GetContext(ctx, &address, query, accountID); err != nil {
		return models.ShippingAddress{}, fmt.Errorf("get shipping address %s: %w", accountID, mapErr(err, auctionerrors.ErrAddressNotFound))
	}
	return address, nil
}

// SetCardDetails creates or replaces the card of an account; a card number used by another account conflicts
func (r *PostgresRepo) SetCardDetails(ctx context.Context, card models.CardDetails) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO card_details
		(account_id, card_number, card_holder_name, expire_month, expire_year)
		VALUES (:account_id, :card_number, :card_holder_name, :expire_month, :expire_year)
		ON CONFLICT (account_id) DO UPDATE SET
			card_number = EXCLUDED.card_number, card_holder_name = EXCLUDED.card_holder_name,
			expire_month = EXCLUDED.expire_month, expire_year = EXCLUDED.expire_year`, card)
	if err != nil {
		return fmt.Errorf("set card details %s: %w", card.AccountID, mapErr(err, auctionerrors.ErrAccountNotFound))
	}
	return nil
}

// SetPayPalDetails creates or replaces the PayPal login of an account
func (r *PostgresRepo) SetPayPalDetails(ctx context.Context, paypal models.PayPalDetails) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO paypal_details (account_id, paypal_email)
		VALUES (:account_id, :paypal_email)
		ON CONFLICT (account_id) DO UPDATE SET paypal_email = EXCLUDED.paypal_email`, paypal)
	if err != nil {
		return fmt.Errorf("set paypal details %s: %w", paypal.AccountID, mapErr(err, auctionerrors.ErrAccountNotFound))
	}
	return nil
}

// GetPaymentDetails returns whichever payment methods the account has on file
func (r *PostgresRepo) GetPaymentDetails(ctx context.Context, accountID string) (models.PaymentDetails, error) {
	if _, err := r.GetAccount(ctx, accountID); err != nil {
		return models.PaymentDetails{}, fmt.Errorf("get payment details: %w", err)
	}

	var details models.PaymentDetails
	var card models.CardDetails
	err := r.db.GetContext(ctx, &card, `SELECT account_id, card_number, card_holder_name, expire_month, expire_year
		FROM card_details WHERE account_id = $1`, accountID)
	switch {
	case err == nil:
		details.Card = &card
	case !errors.Is(err, sql.ErrNoRows):
		return models.PaymentDetails{}, fmt.Errorf("get card details %s: %w", accountID, err)
	}

	var paypal models.PayPalDetails
	err = r.db.GetContext(ctx, &paypal, `SELECT account_id, paypal_email FROM paypal_details WHERE account_id = $1`, accountID)
	switch {
	case err == nil:
		details.PayPal = &paypal
	case !errors.Is(err, sql.ErrNoRows):
		return models.PaymentDetails{}, fmt.Errorf("get paypal details %s: %w", accountID, err)
	}
	return details, nil
}

// CreateReport stores a report between two profiles
func (r *PostgresRepo) CreateReport(ctx context.Context, report models.Report) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO reports
		(report_id, reporter_profile_id, reportee_profile_id, text, status, created_at)
		VALUES (:report_id, :reporter_profile_id, :reportee_profile_id, :text, :status, :created_at)`, report)
	if err != nil {
		return fmt.Errorf("create report %s: %w", report.ReportID, mapErr(err, auctionerrors.ErrProfileNotFound))
	}
	return nil
}

// WithdrawListings deletes every unclosed item of a profile; bids, comments and saves cascade.
// Closed items stay because transactions refer to them.
func (r *PostgresRepo) WithdrawListings(ctx context.Context, profileID string) (int, error) {
	var withdrawn int
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM profiles WHERE profile_id = $1)`, profileID); err != nil {
			return err
		}
		if !exists {
			return auctionerrors.ErrProfileNotFound
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM items WHERE profile_id = $1 AND closed_at IS NULL`, profileID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		withdrawn = int(n)
		_, err = tx.ExecContext(ctx,
			`UPDATE profiles SET item_count = GREATEST(item_count - $2, 0) WHERE profile_id = $1`, profileID, withdrawn)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("withdraw listings of %s: %w", profileID, err)
	}
	return withdrawn, nil
}
