package repository

import (
	"database/sql"

	"ai-marketing-api/model"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByID(id int) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	TouchLastLogin(id int) error
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (email, name, password_hash, salt) VALUES ($1, $2, $3, $4) RETURNING id, created_at, last_login`
	return r.DB.QueryRow(query, user.Email, user.Name, user.PasswordHash, user.Salt).
		Scan(&user.ID, &user.CreatedAt, &user.LastLogin)
}

func (r *UserRepository) GetUserByID(id int) (*model.User, error) {
	user := &model.User{}
	var googleID, avatar, passwordHash, salt sql.NullString
	query := `SELECT id, google_id, email, name, avatar, password_hash, salt, created_at, last_login FROM users WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&user.ID, &googleID, &user.Email, &user.Name,
		&avatar, &passwordHash, &salt, &user.CreatedAt, &user.LastLogin)
	if err != nil {
		return nil, err
	}
	user.GoogleID = googleID.String
	user.Avatar = avatar.String
	user.PasswordHash = passwordHash.String
	user.Salt = salt.String
	return user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	user := &model.User{}
	var googleID, avatar, passwordHash, salt sql.NullString
	query := `SELECT id, google_id, email, name, avatar, password_hash, salt, created_at, last_login FROM users WHERE email = $1`
	err := r.DB.QueryRow(query, email).Scan(&user.ID, &googleID, &user.Email, &user.Name,
		&avatar, &passwordHash, &salt, &user.CreatedAt, &user.LastLogin)
	if err != nil {
		return nil, err
	}
	user.GoogleID = googleID.String
	user.Avatar = avatar.String
	user.PasswordHash = passwordHash.String
	user.Salt = salt.String
	return user, nil
}

// TouchLastLogin stamps a successful password login.
func (r *UserRepository) TouchLastLogin(id int) error {
	_, err := r.DB.Exec(`UPDATE users SET last_login = now() WHERE id = $1`, id)
	return err
}
