package room

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tableName = "public.rooms"

var columns = []string{"id", "room_number", "room_type", "price", "capacity", "status"}

type Repository interface {
	List(ctx context.Context) ([]*Room, error)
	Create(ctx context.Context, r *Room) error
	Update(ctx context.Context, r *Room) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]*Room, error)
	Stats(ctx context.Context) (*Stats, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
	psql squirrel.StatementBuilderType
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{
		pool: pool,
		psql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *pgxRepository) List(ctx context.Context) ([]*Room, error) {
	query, args, err := r.psql.Select(columns...).
		From(tableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rooms query failed: %w", err)
	}
	return r.query(ctx, "list rooms", query, args)
}

func (r *pgxRepository) Create(ctx context.Context, rm *Room) error {
	query, args, err := r.psql.Insert(tableName).
		Columns("room_number", "room_type", "price", "capacity", "status").
		Values(rm.RoomNumber, rm.RoomType, rm.Price, rm.Capacity, string(rm.Status)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rm.ID); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRoomNumber
		}
		return fmt.Errorf("create room failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Update(ctx context.Context, rm *Room) error {
	query, args, err := r.psql.Update(tableName).
		Set("room_number", rm.RoomNumber).
		Set("room_type", rm.RoomType).
		Set("price", rm.Price).
		Set("capacity", rm.Capacity).
		Set("status", string(rm.Status)).
		Where(squirrel.Eq{"id": rm.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRoomNumber
		}
		return fmt.Errorf("update room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.psql.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Search(ctx context.Context, term string) ([]*Room, error) {
	query, args, err := searchQuery(r.psql, term).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search rooms query failed: %w", err)
	}
	return r.query(ctx, "search rooms", query, args)
}

func (r *pgxRepository) Stats(ctx context.Context) (*Stats, error) {
	query, args, err := statsQuery(r.psql).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build room stats query failed: %w", err)
	}

	var s Stats
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&s.Total, &s.Available, &s.Occupied, &s.Maintenance); err != nil {
		return nil, fmt.Errorf("room stats failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) query(ctx context.Context, op, query string, args []interface{}) ([]*Room, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", op, err)
	}
	defer rows.Close()

	result := make([]*Room, 0)
	for rows.Next() {
		var rm Room
		var status string
		if err := rows.Scan(&rm.ID, &rm.RoomNumber, &rm.RoomType, &rm.Price, &rm.Capacity, &status); err != nil {
			return nil, fmt.Errorf("scan room failed: %w", err)
		}
		rm.Status = Status(status)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s failed: %w", op, err)
	}
	return result, nil
}

// searchQuery matches term as a case-insensitive substring of room_number,
// room_type or status.
func searchQuery(psql squirrel.StatementBuilderType, term string) squirrel.SelectBuilder {
	pattern := "%" + escapeLike(term) + "%"
	return psql.Select(columns...).
		From(tableName).
		Where(squirrel.Or{
			squirrel.ILike{"room_number": pattern},
			squirrel.ILike{"room_type": pattern},
			squirrel.ILike{"status": pattern},
		}).
		OrderBy("id")
}

// statsQuery counts with FILTER so an empty table yields zeros instead of NULLs.
func statsQuery(psql squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return psql.Select("COUNT(*)").
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", string(StatusAvailable))).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", string(StatusOccupied))).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", string(StatusMaintenance))).
		From(tableName)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralises LIKE wildcards so the term only matches literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
