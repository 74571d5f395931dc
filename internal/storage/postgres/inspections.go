package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/agromart/internal/domain/errors"
	"github.com/polkiloo/agromart/internal/domain/model"
)

const inspectionColumns = `id, order_id, inspector_id, status, findings, checklist_results, photos, location, inspection_date, created_at, updated_at`

func (r *inspectionRepository) Create(ctx context.Context, record *model.InspectionRecord) (*model.InspectionRecord, error) {
	stored := *record
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		order, err := lockOrder(ctx, tx, record.OrderID)
		if err != nil {
			return err
		}
		if order.Status.Terminal() {
			return domainErrors.InvalidState("order", order.ID, string(order.Status), "create inspection")
		}

		checklist, photos, err := marshalInspectionLists(stored.Checklist, stored.Photos)
		if err != nil {
			return err
		}

		const insert = `INSERT INTO inspection_records
            (order_id, inspector_id, status, findings, checklist_results, photos, location, inspection_date)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            RETURNING id, created_at, updated_at`
		return tx.QueryRow(ctx, insert,
			stored.OrderID, stored.InspectorID, stored.Status, stored.Findings,
			checklist, photos, stored.Location, stored.InspectionDate).
			Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *inspectionRepository) GetByID(ctx context.Context, id int64) (*model.InspectionRecord, error) {
	query := `SELECT ` + inspectionColumns + ` FROM inspection_records WHERE id=$1`
	return scanInspectionRow(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *inspectionRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.InspectionRecord, error) {
	query := `SELECT ` + inspectionColumns + ` FROM inspection_records WHERE order_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.InspectionRecord
	for rows.Next() {
		var rec model.InspectionRecord
		if err := scanInspection(rows, &rec); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *inspectionRepository) SetChecklist(ctx context.Context, id int64, items []model.ChecklistItem, status model.InspectionStatus) (*model.InspectionRecord, error) {
	var updated *model.InspectionRecord
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		record, err := lockInspection(ctx, tx, id)
		if err != nil {
			return err
		}
		if record.Status == model.InspectionStatusPassed || record.Status == model.InspectionStatusFailed {
			return domainErrors.InvalidState("inspection", record.ID, string(record.Status), "update checklist")
		}

		encoded, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("marshal checklist: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE inspection_records SET checklist_results=$1, status=$2, updated_at=NOW() WHERE id=$3`,
			encoded, status, record.ID); err != nil {
			return err
		}
		record.Checklist = items
		record.Status = status
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *inspectionRepository) AddPhoto(ctx context.Context, id int64, photo model.InspectionPhoto) (*model.InspectionRecord, error) {
	var updated *model.InspectionRecord
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		record, err := lockInspection(ctx, tx, id)
		if err != nil {
			return err
		}

		photos := append(record.Photos, photo)
		encoded, err := json.Marshal(photos)
		if err != nil {
			return fmt.Errorf("marshal photos: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE inspection_records SET photos=$1, updated_at=NOW() WHERE id=$2`,
			encoded, record.ID); err != nil {
			return err
		}
		record.Photos = photos
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *inspectionRepository) Complete(ctx context.Context, id int64, status model.InspectionStatus, findings string) (*model.InspectionRecord, error) {
	var updated *model.InspectionRecord
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		record, err := lockInspection(ctx, tx, id)
		if err != nil {
			return err
		}
		if record.Status == model.InspectionStatusPassed || record.Status == model.InspectionStatusFailed {
			return domainErrors.InvalidState("inspection", record.ID, string(record.Status), "complete")
		}

		if _, err := tx.Exec(ctx,
			`UPDATE inspection_records SET status=$1, findings=$2, updated_at=NOW() WHERE id=$3`,
			status, findings, record.ID); err != nil {
			return err
		}
		record.Status = status
		record.Findings = findings
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func lockInspection(ctx context.Context, tx pgx.Tx, id int64) (*model.InspectionRecord, error) {
	return scanInspectionRow(tx.QueryRow(ctx,
		`SELECT `+inspectionColumns+` FROM inspection_records WHERE id=$1 FOR UPDATE`, id))
}

func marshalInspectionLists(checklist []model.ChecklistItem, photos []model.InspectionPhoto) ([]byte, []byte, error) {
	encodedChecklist, err := json.Marshal(checklist)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal checklist: %w", err)
	}
	encodedPhotos, err := json.Marshal(photos)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal photos: %w", err)
	}
	return encodedChecklist, encodedPhotos, nil
}

func scanInspection(row pgx.Row, rec *model.InspectionRecord) error {
	var checklist, photos []byte
	err := row.Scan(&rec.ID, &rec.OrderID, &rec.InspectorID, &rec.Status, &rec.Findings,
		&checklist, &photos, &rec.Location, &rec.InspectionDate, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return err
	}
	if len(checklist) > 0 {
		if err := json.Unmarshal(checklist, &rec.Checklist); err != nil {
			return fmt.Errorf("unmarshal checklist: %w", err)
		}
	}
	if len(photos) > 0 {
		if err := json.Unmarshal(photos, &rec.Photos); err != nil {
			return fmt.Errorf("unmarshal photos: %w", err)
		}
	}
	return nil
}

func scanInspectionRow(row pgx.Row) (*model.InspectionRecord, error) {
	var rec model.InspectionRecord
	if err := scanInspection(row, &rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}
