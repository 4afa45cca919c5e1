package store

import (
	"context"

	"medisync-api/internal/model"
)

const userCols = `user_id, id, email, type`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	u := &model.User{}
	var typ string
	if err := row.Scan(&u.UserID, &u.ID, &u.Email, &typ); err != nil {
		return nil, err
	}
	// type is validated by the caller; an unknown value is a distinct state
	u.Type = model.Role(typ)
	return u, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx,
		`SELECT `+userCols+` FROM "user" WHERE email = $1`, email))
	return u, wrap("user by email", err)
}

func (s *Store) UserByID(ctx context.Context, userID int64) (*model.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx,
		`SELECT `+userCols+` FROM "user" WHERE user_id = $1`, userID))
	return u, wrap("user by id", err)
}
