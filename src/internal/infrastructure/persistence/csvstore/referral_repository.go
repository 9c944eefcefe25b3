package csvstore

import (
	"strconv"

	"github.com/hopeworks/impact_hub/src/internal/domain/referral"
)

// ===========================
// CSV ReferralRepository
// ===========================

// CSVReferralRepository stores referral rows in referrals.csv with columns
// referrer_id,referred_id,code,hasDonated. Upsert key is (referred_id, code).
type CSVReferralRepository struct {
	table table
}

func NewReferralRepository(dir string) referral.ReferralRepository {
	return &CSVReferralRepository{
		table: newTable(dir, referralsFile, []string{"referrer_id", "referred_id", "code", "hasDonated"}),
	}
}

func referralToRow(ref *referral.Referral) []string {
	return []string{ref.ReferrerID(), ref.ReferredID(), ref.Code(), strconv.FormatBool(ref.HasDonated())}
}

func rowToReferral(row []string) *referral.Referral {
	hasDonated, _ := strconv.ParseBool(row[3])
	return referral.ReconstructReferral(row[0], row[1], row[2], hasDonated)
}

func (r *CSVReferralRepository) Save(ref *referral.Referral) error {
	rows, err := r.table.load()
	if err != nil {
		return err
	}
	updated := false
	for i, row := range rows {
		if row[1] == ref.ReferredID() && row[2] == ref.Code() {
			rows[i] = referralToRow(ref)
			updated = true
			break
		}
	}
	if !updated {
		rows = append(rows, referralToRow(ref))
	}
	return r.table.store(rows)
}

func (r *CSVReferralRepository) FindByReferredAndCode(referredID, code string) (*referral.Referral, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row[1] == referredID && row[2] == code {
			return rowToReferral(row), nil
		}
	}
	return nil, referral.ErrReferralNotFound.WithContext("referred_id", referredID)
}

func (r *CSVReferralRepository) FindByReferrer(referrerID string) ([]*referral.Referral, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}
	var out []*referral.Referral
	for _, row := range rows {
		if row[0] == referrerID {
			out = append(out, rowToReferral(row))
		}
	}
	return out, nil
}
