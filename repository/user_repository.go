package repository

import (
	"database/sql"
	"drone-spot-api/model"
)

// IUserRepository defines the contract for user directory operations.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByLoginID(loginID string) (*model.User, error)
	GetUserByUID(uid string) (*model.User, error)
	DeleteUser(uid string) error
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (uid, name, login_id, email, password, level, age, drone)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`
	return r.DB.QueryRow(query,
		user.UID, user.Name, user.LoginID, user.Email, user.Password, user.Level, user.Age, user.Drone,
	).Scan(&user.CreatedAt)
}

func (r *UserRepository) GetUserByLoginID(loginID string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT uid, name, login_id, email, password, level, age, drone, image, one_liner, created_at
	          FROM users WHERE login_id = $1`
	err := r.DB.QueryRow(query, loginID).Scan(
		&user.UID, &user.Name, &user.LoginID, &user.Email, &user.Password,
		&user.Level, &user.Age, &user.Drone, &user.Image, &user.OneLiner, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user row. The sessions, likes, reviews, and follows
// tables all reference users with ON DELETE CASCADE, so the user's refresh
// sessions die with the account.
func (r *UserRepository) DeleteUser(uid string) error {
	result, err := r.DB.Exec(`DELETE FROM users WHERE uid = $1`, uid)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *UserRepository) GetUserByUID(uid string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT uid, name, login_id, email, password, level, age, drone, image, one_liner, created_at
	          FROM users WHERE uid = $1`
	err := r.DB.QueryRow(query, uid).Scan(
		&user.UID, &user.Name, &user.LoginID, &user.Email, &user.Password,
		&user.Level, &user.Age, &user.Drone, &user.Image, &user.OneLiner, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
