package store

import (
	"context"

	"medisync-api/internal/model"
)

func (s *Store) AccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	a := &model.Account{}
	err := s.db.QueryRow(ctx,
		`SELECT uid, email, password_hash, created_at FROM account WHERE email = $1`, email,
	).Scan(&a.UID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, wrap("account by email", err)
	}
	return a, nil
}
