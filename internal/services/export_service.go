package services

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"socketCanvas/internal/enums"
	"socketCanvas/internal/models"
	"socketCanvas/internal/utils"
)

// PDF page is A4 (210mm wide); canvas coordinates are shrunk to fit.
const pdfScale = 3.0

// ExportService renders a saved canvas state to PDF and uploads it to
// object storage.
type ExportService struct {
	snapshotService    *SnapshotService
	fileManagerService *FileManagerService
}

func NewExportService(snapshotService *SnapshotService, fileManagerService *FileManagerService) *ExportService {
	return &ExportService{
		snapshotService:    snapshotService,
		fileManagerService: fileManagerService,
	}
}

// ExportStatePDF renders the saved state and returns the public URL of the
// uploaded document.
func (es *ExportService) ExportStatePDF(stateID uint64) (string, models.Outcome, error) {
	state, points, outcome, err := es.snapshotService.GetStateWithPoints(stateID)
	if err != nil {
		return "", outcome, err
	}
	if outcome != models.OutcomeOK {
		return "", outcome, nil
	}

	var buffer bytes.Buffer
	if err := RenderStatePDF(state, points, &buffer); err != nil {
		return "", models.OutcomeOK, err
	}

	fileName := fmt.Sprintf("state_%d_%s.pdf", state.ID, uuid.NewString())
	url, err := es.fileManagerService.UploadCanvasExport(
		fileName,
		&buffer,
		int64(buffer.Len()),
		"application/pdf",
		enums.FILE_BUCKET_CANVAS_EXPORTS,
	)
	if err != nil {
		return "", models.OutcomeOK, err
	}
	return url, models.OutcomeOK, nil
}

// RenderStatePDF draws every saved point as a filled dot on one A4 page.
func RenderStatePDF(state *models.CanvasState, points []models.SavedCanvasPoint, out *bytes.Buffer) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetFont("Helvetica", "", 10)
	p.CellFormat(0, 6, state.Name, "", 1, "L", false, 0, "")

	for _, point := range points {
		r, g, b := utils.HexToRGB(point.Color)
		p.SetFillColor(r, g, b)
		p.Circle(point.X/pdfScale, point.Y/pdfScale, point.Size/pdfScale, "F")
	}
	return p.Output(out)
}
