package csvstore

import (
	"github.com/shopspring/decimal"

	"github.com/hopeworks/impact_hub/src/internal/domain/donation"
)

// ===========================
// CSV DonationRepository
// ===========================

// CSVDonationRepository stores the donation table in donations.csv with
// columns uuid,amount,path,impact_points,hours,created_at. The table is
// append-only; stored impact points are trusted and never recomputed.
type CSVDonationRepository struct {
	table table
}

func NewDonationRepository(dir string) donation.DonationRepository {
	return &CSVDonationRepository{
		table: newTable(dir, donationsFile, []string{"uuid", "amount", "path", "impact_points", "hours", "created_at"}),
	}
}

func donationToRow(d *donation.Donation) []string {
	return []string{
		d.UserID(),
		d.Amount().String(),
		string(d.Path()),
		d.ImpactPoints().String(),
		d.Hours().String(),
		d.CreatedAt(),
	}
}

// decimalCell parses one numeric column. Referral-bonus rows and rows from
// data files predating the hours column leave cells blank; blank reads as zero.
func decimalCell(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func rowToDonation(t table, row []string) (*donation.Donation, error) {
	amount, err := decimalCell(row[1])
	if err != nil {
		return nil, ErrCorruptedTable.WithContext("file", t.path, "column", "amount", "value", row[1])
	}
	points, err := decimalCell(row[3])
	if err != nil {
		return nil, ErrCorruptedTable.WithContext("file", t.path, "column", "impact_points", "value", row[3])
	}
	hours, err := decimalCell(row[4])
	if err != nil {
		return nil, ErrCorruptedTable.WithContext("file", t.path, "column", "hours", "value", row[4])
	}
	return donation.ReconstructDonation(row[0], amount, donation.Path(row[2]), points, hours, row[5]), nil
}

func (r *CSVDonationRepository) Append(d *donation.Donation) error {
	return r.table.appendRow(donationToRow(d))
}

func (r *CSVDonationRepository) FindByUser(userID string) ([]*donation.Donation, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	var out []*donation.Donation
	for _, d := range all {
		if d.UserID() == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *CSVDonationRepository) FindAll() ([]*donation.Donation, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}
	out := make([]*donation.Donation, 0, len(rows))
	for _, row := range rows {
		d, err := rowToDonation(r.table, row)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *CSVDonationRepository) CountByUser(userID string) (int, error) {
	rows, err := r.table.load()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, row := range rows {
		if row[0] == userID {
			count++
		}
	}
	return count, nil
}
