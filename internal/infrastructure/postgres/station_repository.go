package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/controlpetro/control-petro-api/internal/domain"
	"github.com/controlpetro/control-petro-api/internal/domain/entity"
	"github.com/controlpetro/control-petro-api/internal/domain/repository"
)

var _ repository.StationRepository = (*StationRepo)(nil)

// StationRepo implementación de StationRepository sobre PostgreSQL (usable con pool o tx).
type StationRepo struct {
	q Querier
}

// NewStationRepository construye el adaptador de estaciones. Pasar pool o tx (Querier).
func NewStationRepository(q Querier) *StationRepo {
	return &StationRepo{q: q}
}

const stationColumns = `id, code, name, address, city, state, latitude, longitude,
	magna_capacity, premium_capacity, diesel_capacity, active, created_at`

// Create persiste una estación. Devuelve ErrDuplicate si el código ya existe.
func (r *StationRepo) Create(ctx context.Context, station *entity.Station) error {
	query := `
		INSERT INTO stations (` + stationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		station.ID, station.Code, station.Name, station.Address, station.City, station.State,
		station.Latitude, station.Longitude,
		station.MagnaCapacity, station.PremiumCapacity, station.DieselCapacity,
		station.Active, station.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create station: %w", err)
	}
	return nil
}

// GetByID obtiene una estación por ID; (nil, nil) si no existe.
func (r *StationRepo) GetByID(ctx context.Context, id string) (*entity.Station, error) {
	query := `SELECT ` + stationColumns + ` FROM stations WHERE id = $1`
	st, err := scanStation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get station: %w", err)
	}
	return st, nil
}

// ListActive lista las estaciones activas ordenadas por código.
func (r *StationRepo) ListActive(ctx context.Context) ([]*entity.Station, error) {
	query := `SELECT ` + stationColumns + ` FROM stations WHERE active ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Station
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		list = append(list, st)
	}
	return list, rows.Err()
}

func scanStation(row pgx.Row) (*entity.Station, error) {
	var st entity.Station
	err := row.Scan(
		&st.ID, &st.Code, &st.Name, &st.Address, &st.City, &st.State,
		&st.Latitude, &st.Longitude,
		&st.MagnaCapacity, &st.PremiumCapacity, &st.DieselCapacity,
		&st.Active, &st.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
