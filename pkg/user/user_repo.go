package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user does not exist")

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	UpdateUser(ctx context.Context, userId int, user User) (User, error)
	GetAllUsers(ctx context.Context) ([]User, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	currency := user.Settings.Currency
	if currency == "" {
		currency = "EUR"
	}
	timezone := user.Settings.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	query := `INSERT INTO users (uid, username, display_name, timezone, currency)
				VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int
	err := r.db.QueryRow(ctx, query,
		user.Uid,
		user.Username,
		user.DisplayName,
		timezone,
		currency,
	).Scan(&id)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return 0, err
	}
	return id, nil
}

func (r *RepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	query := `SELECT id, uid, username, display_name, timezone, currency FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *RepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	query := `SELECT id, uid, username, display_name, timezone, currency FROM users WHERE uid = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, uid))
}

func (r *RepoImpl) scanOne(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.Id,
		&u.Uid,
		&u.Username,
		&u.DisplayName,
		&u.Settings.Timezone,
		&u.Settings.Currency,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, err
	}
	return u, nil
}

func (r *RepoImpl) UpdateUser(ctx context.Context, userId int, user User) (User, error) {
	query := `UPDATE users SET display_name = $1, timezone = $2, currency = $3 WHERE id = $4`
	result, err := r.db.Exec(ctx, query,
		user.DisplayName,
		user.Settings.Timezone,
		user.Settings.Currency,
		userId,
	)
	if err != nil {
		return User{}, err
	}
	if result.RowsAffected() == 0 {
		log.Infof("no rows affected updating user %d", userId)
		return User{}, ErrUserNotFound
	}
	user.Id = userId
	return user, nil
}

func (r *RepoImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	query := `SELECT id, uid, username, display_name, timezone, currency FROM users ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Errorf("failed to get users: %v", err)
		return nil, err
	}
	defer rows.Close()
	users := make([]User, 0, 4)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Id, &u.Uid, &u.Username, &u.DisplayName, &u.Settings.Timezone, &u.Settings.Currency); err != nil {
			log.Errorf("failed to scan user: %v", err)
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		log.Errorf("error iterating over rows: %v", err)
		return nil, err
	}
	return users, nil
}
