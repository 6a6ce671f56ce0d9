package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
)

type VehicleRepository interface {
	Create(ctx context.Context, v model.Vehicle) (model.Vehicle, error)
	GetByUid(ctx context.Context, vehicleUid string) (model.Vehicle, error)
	List(ctx context.Context, f model.VehicleFilter) (model.ListVehicles, error)
	Update(ctx context.Context, vehicleUid string, req model.UpdateVehicleRequest) (model.Vehicle, error)
	Delete(ctx context.Context, vehicleUid string) error
	IncTotalRentals(ctx context.Context, vehicleUid string) error
	AddImage(ctx context.Context, img model.VehicleImage) (model.VehicleImage, error)
	ListImages(ctx context.Context, vehicleID int) ([]model.VehicleImage, error)
	DeleteImage(ctx context.Context, vehicleUid string, imageID int) (string, error)
	ReconcileAvailability(ctx context.Context, now time.Time) (int64, error)
}

type vehicleRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func newVehicleRepository(db *sqlx.DB, log *zap.Logger) *vehicleRepository {
	return &vehicleRepository{db: db, log: log}
}

var vehicleColumns = []string{
	"id", "vehicle_uid", "make", "model", "year", "plate_number", "category",
	"transmission", "seats", "daily_rate", "status", "is_available",
	"total_rentals", "description", "created_at",
}

func (r *vehicleRepository) Create(ctx context.Context, v model.Vehicle) (model.Vehicle, error) {
	q, args, err := qb.Insert(vehiclesTableName).
		Columns("vehicle_uid", "make", "model", "year", "plate_number", "category",
			"transmission", "seats", "daily_rate", "status", "description").
		Values(v.VehicleUid, v.Make, v.Model, v.Year, v.PlateNumber, v.Category,
			v.Transmission, v.Seats, v.DailyRate, v.Status, v.Description).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Vehicle{}, err
	}
	var created model.Vehicle
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Vehicle{}, errors.Wrap(errs.ErrConflict, "plate number already registered")
		}
		r.log.Error("vehicle create", zap.String("q", q), zap.Error(err))
		return model.Vehicle{}, err
	}
	return created, nil
}

func (r *vehicleRepository) GetByUid(ctx context.Context, vehicleUid string) (model.Vehicle, error) {
	q, args, err := qb.Select(vehicleColumns...).
		From(vehiclesTableName).
		Where(sq.Eq{"vehicle_uid": vehicleUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Vehicle{}, err
	}
	var v model.Vehicle
	if err := r.db.GetContext(ctx, &v, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Vehicle{}, errs.ErrNotFound
		}
		return model.Vehicle{}, err
	}
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context, f model.VehicleFilter) (model.ListVehicles, error) {
	base := qb.Select(vehicleColumns...).From(vehiclesTableName).OrderBy("id")
	count := qb.Select("count(*)").From(vehiclesTableName)

	apply := func(q sq.SelectBuilder) sq.SelectBuilder {
		if f.Category != "" {
			q = q.Where(sq.Eq{"category": f.Category})
		}
		if f.Transmission != "" {
			q = q.Where(sq.Eq{"transmission": f.Transmission})
		}
		if f.Status != "" {
			q = q.Where(sq.Eq{"status": f.Status})
		}
		if f.OnlyAvailable {
			q = q.Where(sq.Eq{"is_available": true, "status": model.VehicleStatusActive})
		}
		if f.Search != "" {
			pat := "%" + f.Search + "%"
			q = q.Where(sq.Or{
				sq.ILike{"make": pat},
				sq.ILike{"model": pat},
				sq.ILike{"plate_number": pat},
			})
		}
		return q
	}
	base, count = apply(base), apply(count)

	if f.Page != 0 && f.PageSize != 0 {
		base = base.Limit(uint64(f.PageSize)).Offset(uint64((f.Page - 1) * f.PageSize))
	}

	query, args, err := base.ToSql()
	if err != nil {
		return model.ListVehicles{}, err
	}
	var items []model.Vehicle
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListVehicles{}, err
	}

	query, args, err = count.ToSql()
	if err != nil {
		return model.ListVehicles{}, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return model.ListVehicles{}, err
	}

	return model.ListVehicles{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.PageSize,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicleUid string, req model.UpdateVehicleRequest) (model.Vehicle, error) {
	upd := qb.Update(vehiclesTableName).Where(sq.Eq{"vehicle_uid": vehicleUid})

	changed := false
	set := func(column string, v interface{}) {
		upd = upd.Set(column, v)
		changed = true
	}
	if req.Make != nil {
		set("make", *req.Make)
	}
	if req.Model != nil {
		set("model", *req.Model)
	}
	if req.Year != nil {
		set("year", *req.Year)
	}
	if req.PlateNumber != nil {
		set("plate_number", *req.PlateNumber)
	}
	if req.Category != nil {
		set("category", *req.Category)
	}
	if req.Transmission != nil {
		set("transmission", *req.Transmission)
	}
	if req.Seats != nil {
		set("seats", *req.Seats)
	}
	if req.DailyRate != nil {
		set("daily_rate", *req.DailyRate)
	}
	if req.Status != nil {
		set("status", *req.Status)
		// A vehicle leaving service stops advertising availability right
		// away. The flag comes back through reconciliation once active.
		if *req.Status != model.VehicleStatusActive {
			set("is_available", false)
		}
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if !changed {
		return r.GetByUid(ctx, vehicleUid)
	}

	q, args, err := upd.Suffix("returning *").ToSql()
	if err != nil {
		return model.Vehicle{}, err
	}
	var v model.Vehicle
	if err := r.db.GetContext(ctx, &v, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Vehicle{}, errs.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Vehicle{}, errors.Wrap(errs.ErrConflict, "plate number already registered")
		}
		return model.Vehicle{}, err
	}
	return v, nil
}

func (r *vehicleRepository) Delete(ctx context.Context, vehicleUid string) error {
	q, args, err := qb.Delete(vehiclesTableName).
		Where(sq.Eq{"vehicle_uid": vehicleUid}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return errors.Wrap(errs.ErrConflict, "vehicle has bookings")
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) IncTotalRentals(ctx context.Context, vehicleUid string) error {
	q := `update vehicles set total_rentals = total_rentals + 1 where vehicle_uid = $1`
	_, err := r.db.ExecContext(ctx, q, vehicleUid)
	return err
}

func (r *vehicleRepository) AddImage(ctx context.Context, img model.VehicleImage) (model.VehicleImage, error) {
	q, args, err := qb.Insert(vehicleImagesTableName).
		Columns("vehicle_id", "path", "is_primary").
		Values(img.VehicleID, img.Path, img.IsPrimary).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.VehicleImage{}, err
	}
	var created model.VehicleImage
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		return model.VehicleImage{}, err
	}
	return created, nil
}

func (r *vehicleRepository) ListImages(ctx context.Context, vehicleID int) ([]model.VehicleImage, error) {
	q, args, err := qb.Select("id", "vehicle_id", "path", "is_primary", "created_at").
		From(vehicleImagesTableName).
		Where(sq.Eq{"vehicle_id": vehicleID}).
		OrderBy("is_primary desc", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var images []model.VehicleImage
	if err := r.db.SelectContext(ctx, &images, q, args...); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *vehicleRepository) DeleteImage(ctx context.Context, vehicleUid string, imageID int) (string, error) {
	q := `
	delete from vehicle_images i
	using vehicles v
	where i.vehicle_id = v.id and v.vehicle_uid = $1 and i.id = $2
	returning i.path`
	var path string
	if err := r.db.QueryRowContext(ctx, q, vehicleUid, imageID).Scan(&path); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errs.ErrNotFound
		}
		return "", err
	}
	return path, nil
}

// ReconcileAvailability recomputes the availability cache from vehicle
// and booking state and reports how many flags had drifted. A vehicle
// is out while it is not in active service, while a rental is active
// (returns close that), and while a confirmed window covers the given
// instant. Only rows whose flag disagrees are written.
func (r *vehicleRepository) ReconcileAvailability(ctx context.Context, now time.Time) (int64, error) {
	q := `
	update vehicles v
	set is_available = sub.free
	from (
		select v2.id, v2.status = 'active' and not exists (
			select 1 from bookings b
			where b.vehicle_id = v2.id
			  and (b.status = 'active'
			    or (b.status = 'confirmed' and b.start_at <= $1 and b.end_at > $1))
		) as free
		from vehicles v2
	) sub
	where sub.id = v.id and v.is_available <> sub.free`
	res, err := r.db.ExecContext(ctx, q, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
