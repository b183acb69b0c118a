// Package users mirrors Firebase identities into Postgres so the relational
// side of the house can list and segment accounts. The document store stays
// the source of truth for brochure content.
package users

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

type UpsertUser struct {
	FirebaseUID string
	Email       string
	DisplayName string
	PhotoURL    string
}

// EnsureUser upserts the identity and stamps the sign-in time. Empty fields
// never clobber previously known values.
func (r *Repo) EnsureUser(ctx context.Context, u UpsertUser) (string, error) {
	if u.FirebaseUID == "" {
		return "", fmt.Errorf("firebase_uid required")
	}

	const q = `
insert into users (firebase_uid, email, display_name, photo_url, last_seen_at)
values ($1, nullif($2,''), nullif($3,''), nullif($4,''), now())
on conflict (firebase_uid) do update
set
  email = coalesce(excluded.email, users.email),
  display_name = coalesce(excluded.display_name, users.display_name),
  photo_url = coalesce(excluded.photo_url, users.photo_url),
  last_seen_at = now()
returning id::text;
`
	var id string
	if err := r.db.QueryRow(ctx, q, u.FirebaseUID, u.Email, u.DisplayName, u.PhotoURL).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// Account is a row of the mirror: who has signed in, never any brochure
// content.
type Account struct {
	ID          string
	FirebaseUID string
	Email       string
	DisplayName string
}

// List returns the known accounts, most recently seen first.
func (r *Repo) List(ctx context.Context, limit int) ([]Account, error) {
	if limit <= 0 {
		limit = 50
	}

	const q = `
select id::text, firebase_uid, coalesce(email, ''), coalesce(display_name, '')
from users
order by last_seen_at desc
limit $1;
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Account, 0, limit)
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.FirebaseUID, &a.Email, &a.DisplayName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
