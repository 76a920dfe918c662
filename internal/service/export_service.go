package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/repository"
)

// ExportService produces the Excel workbook of internships for the
// secretariat.
type ExportService struct {
	internshipRepo repository.InternshipRepository
	logger         *zap.Logger
}

// NewExportService creates the export service.
func NewExportService(internshipRepo repository.InternshipRepository, logger *zap.Logger) *ExportService {
	return &ExportService{internshipRepo: internshipRepo, logger: logger}
}

var exportHeaders = []string{
	"ΑΜ", "Επώνυμο", "Όνομα", "Email", "Τηλέφωνο", "Τμήμα",
	"Πρόγραμμα", "Επόπτης", "Ημ. Έναρξης", "Ημ. Λήξης",
	"Εταιρεία", "ΑΦΜ Εταιρείας", "Email Εταιρείας", "Τηλέφωνο Εταιρείας", "Πόλη Εταιρείας",
}

// WriteInternships writes the workbook of active internships for the given
// program. An empty program exports every program.
func (s *ExportService) WriteInternships(ctx context.Context, program model.InternshipProgram, w io.Writer) error {
	if program != "" && !program.Valid() {
		return ErrInvalidProgram
	}

	internships, err := s.internshipRepo.ListAll(ctx, program, model.StatusActive)
	if err != nil {
		return fmt.Errorf("listing internships: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Πρακτικές"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for row, in := range internships {
		values := []interface{}{
			"", "", "", "", "",
			in.Department,
			in.Program.Description(),
			in.Supervisor,
			formatDate(in.StartDate),
			formatDate(in.EndDate),
			"", "", "", "", "",
		}
		if in.User != nil {
			values[0] = in.User.AM
			values[1] = in.User.LastName
			values[2] = in.User.FirstName
			values[3] = in.User.Email
			values[4] = in.User.TelephoneNumber
		}
		if in.Company != nil {
			values[10] = in.Company.Name
			values[11] = in.Company.AFM
			values[12] = in.Company.Email
			values[13] = in.Company.Telephone
			values[14] = in.Company.City
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	s.logger.Info("internships exported",
		zap.String("program", string(program)),
		zap.Int("rows", len(internships)),
	)
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
