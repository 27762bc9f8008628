package user

import (
	"database/sql"
)

type UserRepoSQL struct {
	db *sql.DB
}

func NewUserRepoSQL(db *sql.DB) *UserRepoSQL {
	return &UserRepoSQL{db: db}
}

const selectColumns = "SELECT `id`, `email`, `display_name`, `password`, `reputation`, `is_admin` FROM users"

func (repo *UserRepoSQL) scanOne(r *sql.Row) (*User, error) {
	u := User{}
	err := r.Scan(&u.ID, &u.Email, &u.DisplayName, &u.Password, &u.Reputation, &u.IsAdmin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (repo *UserRepoSQL) GetByID(id int64) (*User, error) {
	return repo.scanOne(repo.db.QueryRow(selectColumns+" WHERE id = ?", id))
}

func (repo *UserRepoSQL) GetByEmail(email string) (*User, error) {
	return repo.scanOne(repo.db.QueryRow(selectColumns+" WHERE email = ?", email))
}

// GetByDisplayName matches the stored name exactly.
func (repo *UserRepoSQL) GetByDisplayName(name string) (*User, error) {
	return repo.scanOne(repo.db.QueryRow(selectColumns+" WHERE BINARY display_name = ?", name))
}

func (repo *UserRepoSQL) GetAll() ([]*User, error) {
	rows, err := repo.db.Query(selectColumns)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*User, 0, 10)
	for rows.Next() {
		u := User{}
		err = rows.Scan(&u.ID, &u.Email, &u.DisplayName, &u.Password, &u.Reputation, &u.IsAdmin)
		if err != nil {
			return nil, err
		}
		users = append(users, &u)
	}

	return users, rows.Err()
}

func (repo *UserRepoSQL) Add(u *User) (int64, error) {
	query := "INSERT INTO users (`email`, `display_name`, `password`, `reputation`, `is_admin`) VALUES (?, ?, ?, ?, ?)"
	r, err := repo.db.Exec(query, u.Email, u.DisplayName, u.Password, u.Reputation, u.IsAdmin)
	if err != nil {
		return 0, err
	}

	lastID, err := r.LastInsertId()
	if err != nil {
		return 0, err
	}

	return lastID, nil
}

// AdjustReputation applies delta server-side so concurrent votes don't lose
// updates. Lookup is case-insensitive so the credit lands on the author
// regardless of stored casing.
func (repo *UserRepoSQL) AdjustReputation(displayName string, delta int) (bool, error) {
	query := "UPDATE users SET reputation = reputation + ? WHERE LOWER(display_name) = LOWER(?)"
	r, err := repo.db.Exec(query, delta, displayName)
	if err != nil {
		return false, err
	}

	affected, err := r.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (repo *UserRepoSQL) Delete(id int64) (bool, error) {
	r, err := repo.db.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return false, err
	}

	affected, err := r.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
