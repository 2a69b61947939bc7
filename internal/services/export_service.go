package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
	"golang.org/x/sync/errgroup"
)

const (
	ExportSleep         = "sleep"
	ExportBody          = "body"
	ExportBloodPressure = "bloodPressure"
	ExportNutrition     = "nutrition"
	ExportWater         = "water"
	ExportTraining      = "training"
	ExportSauna         = "sauna"
)

var ExportCategories = []string{
	ExportSleep,
	ExportBody,
	ExportBloodPressure,
	ExportNutrition,
	ExportWater,
	ExportTraining,
	ExportSauna,
}

type rangeLister[T any] interface {
	ListByUser(ctx context.Context, userID int64, dateRange repository.DateRange) ([]T, error)
}

type ExportStores struct {
	Sleep         rangeLister[models.SleepEntry]
	Body          rangeLister[models.BodyEntry]
	BloodPressure rangeLister[models.BloodPressureEntry]
	Nutrition     rangeLister[models.NutritionEntry]
	Water         rangeLister[models.WaterEntry]
	Training      rangeLister[models.TrainingEntry]
	Sauna         rangeLister[models.SaunaEntry]
}

type ExportBundle struct {
	Sleep         []models.SleepEntry         `json:"sleep"`
	Body          []models.BodyEntry          `json:"body"`
	BloodPressure []models.BloodPressureEntry `json:"bloodPressure"`
	Nutrition     []models.NutritionEntry     `json:"nutrition"`
	Water         []models.WaterEntry         `json:"water"`
	Training      []models.TrainingEntry      `json:"training"`
	Sauna         []models.SaunaEntry         `json:"sauna"`
}

type ExportService struct {
	stores ExportStores
}

func NewExportService(stores ExportStores) *ExportService {
	return &ExportService{stores: stores}
}

// All loads every tracking category with the same inclusive date range.
func (s *ExportService) All(ctx context.Context, userID int64, dateRange repository.DateRange) (*ExportBundle, error) {
	var bundle ExportBundle
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		bundle.Sleep, err = s.stores.Sleep.ListByUser(ctx, userID, dateRange)
		return err
	})
	g.Go(func() (err error) {
		bundle.Body, err = s.stores.Body.ListByUser(ctx, userID, dateRange)
		return err
	})
	g.Go(func() (err error) {
		bundle.BloodPressure, err = s.stores.BloodPressure.ListByUser(ctx, userID, dateRange)
		return err
	})
	g.Go(func() (err error) {
		bundle.Nutrition, err = s.stores.Nutrition.ListByUser(ctx, userID, dateRange)
		return err
	})
	g.Go(func() (err error) {
		bundle.Water, err = s.stores.Water.ListByUser(ctx, userID, dateRange)
		return err
	})
	g.Go(func() (err error) {
		bundle.Training, err = s.stores.Training.ListByUser(ctx, userID, dateRange)
		return err
	})
	g.Go(func() (err error) {
		bundle.Sauna, err = s.stores.Sauna.ListByUser(ctx, userID, dateRange)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// CSVFile is one exported category ready to be sent as an attachment.
type CSVFile struct {
	Filename string
	Content  []byte
}

func (s *ExportService) CSV(
	ctx context.Context,
	userID int64,
	category string,
	dateRange repository.DateRange,
) (*CSVFile, error) {
	var (
		content []byte
		err     error
	)
	switch category {
	case ExportSleep:
		content, err = exportCategory(ctx, s.stores.Sleep, userID, dateRange)
	case ExportBody:
		content, err = exportCategory(ctx, s.stores.Body, userID, dateRange)
	case ExportBloodPressure:
		content, err = exportCategory(ctx, s.stores.BloodPressure, userID, dateRange)
	case ExportNutrition:
		content, err = exportCategory(ctx, s.stores.Nutrition, userID, dateRange)
	case ExportWater:
		content, err = exportCategory(ctx, s.stores.Water, userID, dateRange)
	case ExportTraining:
		content, err = exportCategory(ctx, s.stores.Training, userID, dateRange)
	case ExportSauna:
		content, err = exportCategory(ctx, s.stores.Sauna, userID, dateRange)
	default:
		return nil, fmt.Errorf("%w: unknown export category %q", ErrInvalidInput, category)
	}
	if err != nil {
		return nil, err
	}
	return &CSVFile{Filename: exportFilename(category, dateRange), Content: content}, nil
}

func exportCategory[T any](
	ctx context.Context,
	store rangeLister[T],
	userID int64,
	dateRange repository.DateRange,
) ([]byte, error) {
	rows, err := store.ListByUser(ctx, userID, dateRange)
	if err != nil {
		return nil, err
	}
	return WriteCSV(rows)
}

func exportFilename(category string, dateRange repository.DateRange) string {
	if !dateRange.Bounded() {
		return category + "_all.csv"
	}
	return fmt.Sprintf("%s_%s_%s.csv", category, dateRange.Start, dateRange.End)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV renders rows as a ';' separated sheet with a UTF-8 BOM. The header
// row is the JSON keys of T in declaration order, and cells hold the JSON
// values with strings unquoted and nulls left empty.
func WriteCSV[T any](rows []T) ([]byte, error) {
	header := jsonKeys(reflect.TypeOf((*T)(nil)).Elem())

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		encoded, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("encode export row: %w", err)
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(encoded, &fields); err != nil {
			return nil, fmt.Errorf("decode export row: %w", err)
		}

		record := make([]string, len(header))
		for i, key := range header {
			record[i] = csvCell(fields[key])
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func jsonKeys(t reflect.Type) []string {
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			keys = append(keys, jsonKeys(field.Type)...)
			continue
		}
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		keys = append(keys, name)
	}
	return keys
}

func csvCell(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if raw[0] == '"' && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(raw)
}
