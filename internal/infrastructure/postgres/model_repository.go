package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

var _ repository.ModelRepository = (*ModelRepo)(nil)

// ModelRepo lectura de modelos con su segmento y fabricante.
type ModelRepo struct {
	q Querier
}

// NewModelRepository construye el adaptador.
func NewModelRepository(q Querier) *ModelRepo {
	return &ModelRepo{q: q}
}

// GetByID obtiene un modelo por ID. (nil, nil) si no existe.
func (r *ModelRepo) GetByID(ctx context.Context, id string) (*entity.Model, error) {
	query := `
		SELECT m.id, m.name, m.price, m.min_qty,
		       m.segment_id, COALESCE(s.name, ''),
		       m.manufacturer_id, COALESCE(f.name, ''),
		       m.image_path
		FROM models m
		LEFT JOIN segments s ON s.id = m.segment_id
		LEFT JOIN manufacturers f ON f.id = m.manufacturer_id
		WHERE m.id = $1`
	var m entity.Model
	var segmentID, manufacturerID, imagePath *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Price, &m.MinQty,
		&segmentID, &m.SegmentName,
		&manufacturerID, &m.ManufacturerName,
		&imagePath,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get model: %w", err)
	}
	m.SegmentID = derefStr(segmentID)
	m.ManufacturerID = derefStr(manufacturerID)
	m.ImagePath = derefStr(imagePath)
	return &m, nil
}
