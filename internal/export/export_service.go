package export

import (
	"context"
	"fmt"

	exporterrors "go-hrdesk/internal/export/errors"
	"go-hrdesk/internal/shared/contextutil"
	"go-hrdesk/internal/shared/dberror"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Service interface {
	Rows(ctx context.Context, table string) ([]map[string]any, error)
	Workbook(ctx context.Context, table string) ([]byte, string, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, logger: l.Named("export.service")}
}

func lookup(table string) (Table, error) {
	t, ok := Tables[table]
	if !ok {
		return Table{}, exporterrors.ErrUnknownTable
	}
	return t, nil
}

func (s *service) Rows(ctx context.Context, table string) ([]map[string]any, error) {
	t, err := lookup(table)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Fetch(ctx, t)
	if err != nil {
		return nil, dberror.Map(err, nil)
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	return rows, nil
}

// Workbook renders the table as a single-sheet workbook named after it, a
// header row followed by one row per record. The second return value is the
// download file name.
func (s *service) Workbook(ctx context.Context, table string) ([]byte, string, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	t, err := lookup(table)
	if err != nil {
		return nil, "", err
	}

	rows, err := s.repo.Fetch(ctx, t)
	if err != nil {
		return nil, "", dberror.Map(err, nil)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", t.Name); err != nil {
		return nil, "", err
	}

	header := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
		return nil, "", err
	}

	for i, row := range rows {
		values := make([]any, len(t.Columns))
		for j, col := range t.Columns {
			values[j] = row[col]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(t.Name, cell, &values); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error("write workbook failed", zap.String("table", t.Name), zap.Error(err))
		return nil, "", err
	}

	log.Info("workbook exported", zap.String("table", t.Name), zap.Int("rows", len(rows)))
	return buf.Bytes(), fmt.Sprintf("%s.xlsx", t.Name), nil
}
