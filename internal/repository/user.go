package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

type userRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func newUserRepository(db *sqlx.DB, log *zap.Logger) *userRepository {
	return &userRepository{db: db, log: log}
}

func (r *userRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("user_uid", "username", "password_hash", "role").
		Values(user.UserUid, user.Username, user.PasswordHash, user.Role).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var created model.User
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errors.Wrapf(errs.ErrConflict, "username %q taken", user.Username)
		}
		r.log.Error("user create", zap.String("q", q), zap.Error(err))
		return model.User{}, err
	}
	return created, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	q, args, err := qb.Select("id", "user_uid", "username", "password_hash", "role", "created_at").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}
