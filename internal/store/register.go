package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"medisync-api/internal/model"
)

// Registration is one role-table row plus the credential that signs in as it.
type Registration struct {
	Profile      model.Profile
	PasswordHash string
}

// Register inserts the role row, the user row and the identity account in a
// single transaction. The role id comes from the table's sequence. A failure
// at any step leaves no user or account row behind.
func (s *Store) Register(ctx context.Context, reg Registration) (*model.User, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, wrap("register", err)
	}
	defer tx.Rollback(ctx)

	id, err := insertProfile(ctx, tx, reg.Profile, reg.PasswordHash)
	if err != nil {
		return nil, wrap("insert "+string(reg.Profile.Role()), err)
	}

	u := &model.User{ID: id, Email: reg.Profile.ContactEmail(), Type: reg.Profile.Role()}
	err = tx.QueryRow(ctx,
		`INSERT INTO "user" (id, email, type) VALUES ($1,$2,$3) RETURNING user_id`,
		u.ID, u.Email, string(u.Type),
	).Scan(&u.UserID)
	if err != nil {
		return nil, wrap("insert user", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO account (uid, email, password_hash) VALUES ($1,$2,$3)`,
		uuid.NewString(), u.Email, reg.PasswordHash,
	)
	if err != nil {
		return nil, wrap("insert account", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrap("register commit", err)
	}
	return u, nil
}

func insertProfile(ctx context.Context, tx pgx.Tx, p model.Profile, hash string) (int64, error) {
	var id int64
	var err error
	switch p := p.(type) {
	case *model.Patient:
		err = tx.QueryRow(ctx,
			`INSERT INTO patient (first_name, last_name, contact, address, email, password)
			 VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
			p.FirstName, p.LastName, p.Contact, p.Address, p.Email, hash,
		).Scan(&id)
		p.ID = id
	case *model.Doctor:
		err = tx.QueryRow(ctx,
			`INSERT INTO doctor (name, clinic_location, contact, specialization, email)
			 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
			p.Name, p.ClinicLocation, p.Contact, p.Specialization, p.Email,
		).Scan(&id)
		p.ID = id
	case *model.Pharmacist:
		err = tx.QueryRow(ctx,
			`INSERT INTO pharmacist (name, pharmacy_name, address, phone, email, password)
			 VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
			p.Name, p.PharmacyName, p.Address, p.Phone, p.Email, hash,
		).Scan(&id)
		p.ID = id
	default:
		return 0, fmt.Errorf("%w: %T", model.ErrInvalidRole, p)
	}
	return id, err
}
