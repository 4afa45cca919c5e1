package store

import (
	"context"
	"fmt"
	"strings"

	"medisync-api/internal/model"
)

const medicineCols = `id, medicine_name, ingredients, pharmacy_name, address, availability`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with LIKE
// metacharacters in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (s *Store) queryMedicines(ctx context.Context, op, q string, args ...any) ([]model.Medicine, error) {
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	out := []model.Medicine{}
	for rows.Next() {
		var m model.Medicine
		if err := rows.Scan(&m.ID, &m.MedicineName, &m.Ingredients, &m.PharmacyName, &m.Address, &m.Availability); err != nil {
			return nil, wrap(op, err)
		}
		out = append(out, m)
	}
	return out, wrap(op, rows.Err())
}

// SearchMedicines matches query against name or ingredients, case-insensitively.
func (s *Store) SearchMedicines(ctx context.Context, query string) ([]model.Medicine, error) {
	return s.queryMedicines(ctx, "search medicines",
		`SELECT `+medicineCols+` FROM main
		 WHERE medicine_name ILIKE $1 OR ingredients ILIKE $1
		 ORDER BY id`, containsPattern(query))
}

// ListMedicines returns every record in the main table.
func (s *Store) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	return s.queryMedicines(ctx, "list medicines", `SELECT `+medicineCols+` FROM main ORDER BY id`)
}

func (s *Store) MedicinesByPharmacy(ctx context.Context, pharmacy string) ([]model.Medicine, error) {
	return s.queryMedicines(ctx, "medicines by pharmacy",
		`SELECT `+medicineCols+` FROM main WHERE pharmacy_name ILIKE $1 ORDER BY id`,
		containsPattern(pharmacy))
}

func (s *Store) Medicine(ctx context.Context, id int64) (*model.Medicine, error) {
	m := &model.Medicine{}
	err := s.db.QueryRow(ctx, `SELECT `+medicineCols+` FROM main WHERE id = $1`, id).
		Scan(&m.ID, &m.MedicineName, &m.Ingredients, &m.PharmacyName, &m.Address, &m.Availability)
	if err != nil {
		return nil, wrap("medicine", err)
	}
	return m, nil
}

func (s *Store) AddMedicine(ctx context.Context, m *model.Medicine) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO main (medicine_name, ingredients, pharmacy_name, address, availability)
		 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		m.MedicineName, m.Ingredients, m.PharmacyName, m.Address, m.Availability,
	).Scan(&m.ID)
	return wrap("add medicine", err)
}

// SetAvailability updates one medicine of the given pharmacy. Writing the
// value already stored is a successful no-op.
func (s *Store) SetAvailability(ctx context.Context, id int64, pharmacy string, available bool) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE main SET availability = $1 WHERE id = $2 AND pharmacy_name ILIKE $3`,
		available, id, containsPattern(pharmacy),
	)
	if err != nil {
		return wrap("set availability", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("store: set availability: medicine %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) PharmacyName(ctx context.Context, pharmacistID int64) (string, error) {
	var name string
	err := s.db.QueryRow(ctx, `SELECT pharmacy_name FROM pharmacist WHERE id = $1`, pharmacistID).Scan(&name)
	if err != nil {
		return "", wrap("pharmacy name", err)
	}
	return name, nil
}
