package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"praxis/internal/application/audit/dto"
	"praxis/internal/domain/audit"
	"praxis/internal/shared/errors"
	"praxis/internal/shared/logger"
)

const (
	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
)

type ExportAuditLogQuery struct {
	OrgID   uint
	Format  string
	MaxRows int
}

type ExportAuditLogResult struct {
	Format  string               `json:"format"`
	Rows    []*dto.AuditEntryDTO `json:"rows,omitempty"`
	CSV     string               `json:"csv,omitempty"`
	Total   int                  `json:"total"`
	Capped  bool                 `json:"capped"`
	MaxRows int                  `json:"max_rows"`
}

type ExportAuditLogUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewExportAuditLogUseCase(auditRepo audit.Repository, logger logger.Interface) *ExportAuditLogUseCase {
	return &ExportAuditLogUseCase{auditRepo: auditRepo, logger: logger}
}

// Execute dumps the org's ledger in seq order, capped at MaxRows. The export
// fetches one row past the cap to detect truncation.
func (uc *ExportAuditLogUseCase) Execute(
	ctx context.Context,
	query ExportAuditLogQuery,
) (*ExportAuditLogResult, error) {
	if query.OrgID == 0 {
		return nil, errors.NewValidationError("organization ID is required")
	}
	if query.Format != ExportFormatJSON && query.Format != ExportFormatCSV {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported export format: %s", query.Format))
	}
	if query.MaxRows <= 0 {
		return nil, errors.NewValidationError("max rows must be positive")
	}

	entries, err := uc.auditRepo.ListAllByOrg(ctx, query.OrgID, query.MaxRows+1)
	if err != nil {
		uc.logger.Errorw("failed to read audit log for export", "error", err, "org_id", query.OrgID)
		return nil, errors.NewInternalError("failed to export audit log")
	}

	capped := len(entries) > query.MaxRows
	if capped {
		entries = entries[:query.MaxRows]
	}

	result := &ExportAuditLogResult{
		Format:  query.Format,
		Total:   len(entries),
		Capped:  capped,
		MaxRows: query.MaxRows,
	}

	switch query.Format {
	case ExportFormatJSON:
		result.Rows = dto.EntriesToDTOs(entries)
	case ExportFormatCSV:
		out, err := renderCSV(entries)
		if err != nil {
			return nil, errors.NewInternalError("failed to render csv export")
		}
		result.CSV = out
	}

	uc.logger.Infow("audit log exported",
		"org_id", query.OrgID,
		"format", query.Format,
		"rows", result.Total,
		"capped", capped)

	return result, nil
}

func renderCSV(entries []*audit.Entry) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"seq", "id", "actor_id", "actor_role", "action", "resource_type", "resource_id", "correlation_id", "prev_hash", "record_hash", "created_at"}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, e := range entries {
		row := []string{
			strconv.FormatUint(e.Seq(), 10),
			e.ID(),
			strconv.FormatUint(uint64(e.ActorID()), 10),
			e.ActorRole(),
			e.Action().String(),
			e.ResourceType(),
			e.ResourceID(),
			e.CorrelationID(),
			e.PrevHash(),
			e.RecordHash(),
			e.CreatedAt().Format(time.RFC3339Nano),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}
