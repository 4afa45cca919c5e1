package store

import (
	"context"
	"fmt"

	"medisync-api/internal/model"
)

// Profile loads the role-table row a user points at. This is the only place
// that maps a role to its table.
func (s *Store) Profile(ctx context.Context, role model.Role, id int64) (model.Profile, error) {
	switch role {
	case model.RolePatient:
		p := &model.Patient{}
		err := s.db.QueryRow(ctx,
			`SELECT id, first_name, last_name, contact, address, email FROM patient WHERE id = $1`, id,
		).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Contact, &p.Address, &p.Email)
		if err != nil {
			return nil, wrap("patient", err)
		}
		return p, nil
	case model.RoleDoctor:
		d, err := s.Doctor(ctx, id)
		if err != nil {
			return nil, err
		}
		return d, nil
	case model.RolePharmacist:
		p := &model.Pharmacist{}
		err := s.db.QueryRow(ctx,
			`SELECT id, name, pharmacy_name, address, phone, email FROM pharmacist WHERE id = $1`, id,
		).Scan(&p.ID, &p.Name, &p.PharmacyName, &p.Address, &p.Phone, &p.Email)
		if err != nil {
			return nil, wrap("pharmacist", err)
		}
		return p, nil
	}
	return nil, fmt.Errorf("store: profile: %w: %q", model.ErrInvalidRole, role)
}

// UpdateProfile rewrites the editable columns of a role row. Email and
// password are owned by registration and never change here.
func (s *Store) UpdateProfile(ctx context.Context, p model.Profile) error {
	var (
		q    string
		args []any
	)
	switch p := p.(type) {
	case *model.Patient:
		q = `UPDATE patient SET first_name=$1, last_name=$2, contact=$3, address=$4 WHERE id=$5`
		args = []any{p.FirstName, p.LastName, p.Contact, p.Address, p.ID}
	case *model.Doctor:
		q = `UPDATE doctor SET name=$1, clinic_location=$2, contact=$3, specialization=$4 WHERE id=$5`
		args = []any{p.Name, p.ClinicLocation, p.Contact, p.Specialization, p.ID}
	case *model.Pharmacist:
		q = `UPDATE pharmacist SET name=$1, pharmacy_name=$2, address=$3, phone=$4 WHERE id=$5`
		args = []any{p.Name, p.PharmacyName, p.Address, p.Phone, p.ID}
	default:
		return fmt.Errorf("store: update profile: %w: %T", model.ErrInvalidRole, p)
	}
	tag, err := s.db.Exec(ctx, q, args...)
	if err != nil {
		return wrap("update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("store: update profile: %w", ErrNotFound)
	}
	return nil
}

func (s *Store) Doctor(ctx context.Context, id int64) (*model.Doctor, error) {
	d := &model.Doctor{}
	err := s.db.QueryRow(ctx,
		`SELECT id, name, clinic_location, contact, specialization, email FROM doctor WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.ClinicLocation, &d.Contact, &d.Specialization, &d.Email)
	if err != nil {
		return nil, wrap("doctor", err)
	}
	return d, nil
}

func (s *Store) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, clinic_location, contact, specialization, email FROM doctor ORDER BY id`)
	if err != nil {
		return nil, wrap("list doctors", err)
	}
	defer rows.Close()

	out := []model.Doctor{}
	for rows.Next() {
		var d model.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.ClinicLocation, &d.Contact, &d.Specialization, &d.Email); err != nil {
			return nil, wrap("list doctors", err)
		}
		out = append(out, d)
	}
	return out, wrap("list doctors", rows.Err())
}
