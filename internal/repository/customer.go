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

type CustomerRepository interface {
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	GetByUid(ctx context.Context, customerUid string) (model.Customer, error)
	GetByEmail(ctx context.Context, email string) (model.Customer, error)
	List(ctx context.Context, f model.CustomerFilter) (model.ListCustomers, error)
	Update(ctx context.Context, customerUid string, req model.UpdateCustomerRequest) (model.Customer, error)
	Delete(ctx context.Context, customerUid string) error
	IncTotalBookings(ctx context.Context, customerUid string) error
}

type customerRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func newCustomerRepository(db *sqlx.DB, log *zap.Logger) *customerRepository {
	return &customerRepository{db: db, log: log}
}

var customerColumns = []string{
	"id", "customer_uid", "first_name", "last_name", "email", "phone",
	"license_number", "total_bookings", "created_at",
}

func (r *customerRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	q, args, err := qb.Insert(customersTableName).
		Columns("customer_uid", "first_name", "last_name", "email", "phone", "license_number").
		Values(c.CustomerUid, c.FirstName, c.LastName, c.Email, c.Phone, c.LicenseNumber).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Customer{}, err
	}
	var created model.Customer
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Customer{}, errors.Wrap(errs.ErrConflict, "email already registered")
		}
		r.log.Error("customer create", zap.String("q", q), zap.Error(err))
		return model.Customer{}, err
	}
	return created, nil
}

func (r *customerRepository) GetByUid(ctx context.Context, customerUid string) (model.Customer, error) {
	return r.getBy(ctx, sq.Eq{"customer_uid": customerUid})
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (model.Customer, error) {
	return r.getBy(ctx, sq.Eq{"email": email})
}

func (r *customerRepository) getBy(ctx context.Context, pred sq.Eq) (model.Customer, error) {
	q, args, err := qb.Select(customerColumns...).
		From(customersTableName).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Customer{}, err
	}
	var c model.Customer
	if err := r.db.GetContext(ctx, &c, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, errs.ErrNotFound
		}
		return model.Customer{}, err
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context, f model.CustomerFilter) (model.ListCustomers, error) {
	base := qb.Select(customerColumns...).From(customersTableName).OrderBy("id")
	count := qb.Select("count(*)").From(customersTableName)

	if f.Search != "" {
		pat := "%" + f.Search + "%"
		cond := sq.Or{
			sq.ILike{"first_name": pat},
			sq.ILike{"last_name": pat},
			sq.ILike{"email": pat},
			sq.ILike{"phone": pat},
		}
		base, count = base.Where(cond), count.Where(cond)
	}
	if f.Page != 0 && f.PageSize != 0 {
		base = base.Limit(uint64(f.PageSize)).Offset(uint64((f.Page - 1) * f.PageSize))
	}

	query, args, err := base.ToSql()
	if err != nil {
		return model.ListCustomers{}, err
	}
	var items []model.Customer
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListCustomers{}, err
	}

	query, args, err = count.ToSql()
	if err != nil {
		return model.ListCustomers{}, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return model.ListCustomers{}, err
	}

	return model.ListCustomers{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.PageSize,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

func (r *customerRepository) Update(ctx context.Context, customerUid string, req model.UpdateCustomerRequest) (model.Customer, error) {
	upd := qb.Update(customersTableName).Where(sq.Eq{"customer_uid": customerUid})

	changed := false
	set := func(column string, v interface{}) {
		upd = upd.Set(column, v)
		changed = true
	}
	if req.FirstName != nil {
		set("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		set("last_name", *req.LastName)
	}
	if req.Email != nil {
		set("email", *req.Email)
	}
	if req.Phone != nil {
		set("phone", *req.Phone)
	}
	if req.LicenseNumber != nil {
		set("license_number", *req.LicenseNumber)
	}
	if !changed {
		return r.GetByUid(ctx, customerUid)
	}

	q, args, err := upd.Suffix("returning *").ToSql()
	if err != nil {
		return model.Customer{}, err
	}
	var c model.Customer
	if err := r.db.GetContext(ctx, &c, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, errs.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Customer{}, errors.Wrap(errs.ErrConflict, "email already registered")
		}
		return model.Customer{}, err
	}
	return c, nil
}

func (r *customerRepository) Delete(ctx context.Context, customerUid string) error {
	q, args, err := qb.Delete(customersTableName).
		Where(sq.Eq{"customer_uid": customerUid}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return errors.Wrap(errs.ErrConflict, "customer has bookings")
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *customerRepository) IncTotalBookings(ctx context.Context, customerUid string) error {
	q := `update customers set total_bookings = total_bookings + 1 where customer_uid = $1`
	_, err := r.db.ExecContext(ctx, q, customerUid)
	return err
}
