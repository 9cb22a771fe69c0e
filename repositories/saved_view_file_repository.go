package repositories

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/utils"
)

// SavedViewFileRepository persists user-created saved views as one JSON array
// on the local device. Built-ins are excluded from storage and re-seeded by
// the usecase on every load.
type SavedViewFileRepository struct {
	path string
}

func NewSavedViewFileRepository(path string) *SavedViewFileRepository {
	return &SavedViewFileRepository{path: path}
}

type savedViewRecord struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status,omitempty"`
	Urgency   string    `json:"urgency,omitempty"`
	Severity  string    `json:"severity,omitempty"`
	Customer  string    `json:"customer,omitempty"`
	Search    string    `json:"q,omitempty"`
	RangeDays int       `json:"range_days,omitempty"`
	Sort      string    `json:"sort"`
	CreatedAt time.Time `json:"created_at"`
}

// ListUserViews loads the persisted user views. Missing, unreadable or
// corrupt storage is not an error: the caller silently falls back to
// built-ins only.
func (repo *SavedViewFileRepository) ListUserViews(ctx context.Context) []models.SavedView {
	raw, err := os.ReadFile(repo.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			utils.LoggerFromContext(ctx).WarnContext(ctx,
				"saved views storage unreadable, falling back to built-ins", "error", err.Error())
		}
		return nil
	}

	var records []savedViewRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx,
			"saved views storage corrupt, falling back to built-ins", "error", err.Error())
		return nil
	}

	views := make([]models.SavedView, 0, len(records))
	for _, record := range records {
		views = append(views, models.SavedView{
			Id:   record.Id,
			Name: record.Name,
			Kind: models.ViewUser,
			Filters: models.FilterCriteria{
				Status:    record.Status,
				Urgency:   record.Urgency,
				Severity:  record.Severity,
				Customer:  record.Customer,
				Search:    record.Search,
				RangeDays: record.RangeDays,
			},
			Sort:      models.SortingFieldFrom(record.Sort),
			CreatedAt: record.CreatedAt,
		})
	}
	return views
}

// WriteUserViews serializes the full user-view list. Writes go through a
// temp file and rename so a crash mid-write never leaves a truncated array.
// A write failure degrades gracefully: the in-memory list stays valid for
// the session.
func (repo *SavedViewFileRepository) WriteUserViews(ctx context.Context, views []models.SavedView) error {
	records := make([]savedViewRecord, 0, len(views))
	for _, v := range views {
		if v.IsBuiltIn() {
			continue
		}
		records = append(records, savedViewRecord{
			Id:        v.Id,
			Name:      v.Name,
			Status:    v.Filters.Status,
			Urgency:   v.Filters.Urgency,
			Severity:  v.Filters.Severity,
			Customer:  v.Filters.Customer,
			Search:    v.Filters.Search,
			RangeDays: v.Filters.RangeDays,
			Sort:      string(v.Sort),
			CreatedAt: v.CreatedAt,
		})
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling saved views")
	}

	if err := os.MkdirAll(filepath.Dir(repo.path), 0o755); err != nil {
		return errors.Wrap(err, "creating saved views directory")
	}
	tmp := repo.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrap(err, "writing saved views")
	}
	if err := os.Rename(tmp, repo.path); err != nil {
		return errors.Wrap(err, "replacing saved views file")
	}
	return nil
}
