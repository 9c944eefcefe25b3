package csvstore

import (
	"github.com/hopeworks/impact_hub/src/internal/domain/user"
)

// ===========================
// CSV UserRepository
// ===========================

// CSVUserRepository stores users in users.csv with columns
// uuid,email,password,fname,lname,team_id. The password column holds the
// bcrypt hash, never plaintext.
type CSVUserRepository struct {
	table table
}

func NewUserRepository(dir string) user.UserRepository {
	return &CSVUserRepository{
		table: newTable(dir, usersFile, []string{"uuid", "email", "password", "fname", "lname", "team_id"}),
	}
}

func userToRow(u *user.User) []string {
	return []string{u.ID(), u.Email(), u.PasswordHash(), u.FirstName(), u.LastName(), u.TeamID()}
}

func rowToUser(row []string) *user.User {
	return user.ReconstructUser(row[0], row[1], row[2], row[3], row[4], row[5])
}

func (r *CSVUserRepository) Save(u *user.User) error {
	rows, err := r.table.load()
	if err != nil {
		return err
	}
	updated := false
	for i, row := range rows {
		if row[0] == u.ID() {
			rows[i] = userToRow(u)
			updated = true
			break
		}
	}
	if !updated {
		rows = append(rows, userToRow(u))
	}
	return r.table.store(rows)
}

func (r *CSVUserRepository) FindByID(id string) (*user.User, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row[0] == id {
			return rowToUser(row), nil
		}
	}
	return nil, user.ErrUserNotFound.WithContext("user_id", id)
}

func (r *CSVUserRepository) FindByEmail(email string) (*user.User, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row[1] == email {
			return rowToUser(row), nil
		}
	}
	return nil, user.ErrUserNotFound.WithContext("email", email)
}

func (r *CSVUserRepository) ExistsByEmail(email string) (bool, error) {
	rows, err := r.table.load()
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row[1] == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *CSVUserRepository) FindAll() ([]*user.User, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}
	users := make([]*user.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, rowToUser(row))
	}
	return users, nil
}
