package participants

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"registrations/middleware"
	"registrations/models"
	"registrations/services"
	"registrations/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []interface{}{"ID", "First Name", "Last Name", "Email", "Role", "Competition", "University", "CV"}

// ExportParticipantsXLSX writes the caller's visible previews as a spreadsheet
// @Summary Export participants
// @Description Same rows as the participant listing, as an XLSX workbook
// @Tags Participants
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /participants/export [get]
// @Security Bearer
func (h *ParticipantHandler) ExportParticipantsXLSX(c *gin.Context) {
	claims, err := middleware.GetClaimsFromRequest(c)
	if err != nil {
		return
	}

	previews, err := h.svc.ExportPreview(c.Request.Context(), claims)
	if err != nil {
		respondWithServiceError(c, claims, err)
		return
	}

	xlsx, err := buildExport(previews)
	if err != nil {
		logrus.WithError(err).Error("Failed to build participants export")
		response.Error(c, http.StatusInternalServerError, ErrFailedToExport)
		return
	}
	defer xlsx.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="participants.xlsx"`)
	c.Status(http.StatusOK)
	if err := xlsx.Write(c.Writer); err != nil {
		logrus.WithError(err).Error("Failed to write participants export")
	}
}

func buildExport(previews []models.ParticipantPreview) (*excelize.File, error) {
	xlsx := excelize.NewFile()
	if err := xlsx.SetSheetName("Sheet1", exportSheet); err != nil {
		xlsx.Close()
		return nil, err
	}
	if err := xlsx.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		xlsx.Close()
		return nil, err
	}

	for i, p := range previews {
		competition, university := "", ""
		if p.Competition != nil {
			competition = string(*p.Competition)
		}
		if p.University != nil {
			university = string(*p.University)
		}
		cv := "no"
		if p.ContainCV {
			cv = "yes"
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			xlsx.Close()
			return nil, err
		}
		row := []interface{}{p.ID.String(), p.FirstName, p.LastName, p.Email, string(p.Role), competition, university, cv}
		if err := xlsx.SetSheetRow(exportSheet, cell, &row); err != nil {
			xlsx.Close()
			return nil, err
		}
	}
	return xlsx, nil
}

// ImportParticipantsXLSX provisions one participant per spreadsheet row
// @Summary Import participants from XLSX
// @Description Rows that fail are skipped and reported, the others are created with a one-time password each
// @Tags Participants
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX file"
// @Success 201 {object} ImportResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /participants/import [post]
// @Security Bearer
func (h *ParticipantHandler) ImportParticipantsXLSX(c *gin.Context) {
	claims, err := middleware.GetClaimsFromRequest(c)
	if err != nil {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrFailedToGetFile+": "+err.Error())
		return
	}
	openedFile, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetFile)
		return
	}
	defer openedFile.Close()

	xlsx, err := excelize.OpenReader(openedFile)
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrFailedToParseXLSX+": "+err.Error())
		return
	}
	defer xlsx.Close()

	rows, labels, err := readParticipantRows(xlsx)
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrFailedToParseXLSX+": "+err.Error())
		return
	}
	if len(rows) == 0 {
		response.Error(c, http.StatusBadRequest, ErrNoParticipantsRows)
		return
	}

	created, err := h.svc.Import(c.Request.Context(), claims, rows)
	var merr *multierror.Error
	if err != nil && !errors.As(err, &merr) {
		respondWithServiceError(c, claims, err)
		return
	}

	result := ImportResult{Created: created}
	if merr != nil {
		result.Errors = make(map[string]string, len(merr.Errors))
		for _, rowErr := range merr.Errors {
			var re *services.RowError
			if errors.As(rowErr, &re) && re.Row-1 < len(labels) {
				result.Errors[labels[re.Row-1]] = rowMessage(claims, re.Err)
				continue
			}
			result.Errors["import"] = rowMessage(claims, rowErr)
		}
	}

	if len(created) == 0 {
		response.ValidationError(c, result.Errors)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusCreated, result)
}

// readParticipantRows collects the data rows of every sheet that carries the expected headers.
// labels[i] locates rows[i] in the workbook as "Sheet!row".
func readParticipantRows(xlsx *excelize.File) ([]models.MinimalParticipant, []string, error) {
	var rows []models.MinimalParticipant
	var labels []string

	for _, sheetName := range xlsx.GetSheetList() {
		sheetRows, err := xlsx.GetRows(sheetName)
		if err != nil {
			return nil, nil, fmt.Errorf("sheet %s: %w", sheetName, err)
		}
		if len(sheetRows) < 2 { // At least header and one data row
			continue
		}

		firstNameIdx, lastNameIdx, emailIdx, competitionIdx, roleIdx := -1, -1, -1, -1, -1
		for i, cell := range sheetRows[0] {
			switch strings.TrimSpace(cell) {
			case "Prénom", "First Name", "FirstName", "first_name":
				firstNameIdx = i
			case "Nom", "Nom de famille", "Last Name", "LastName", "last_name":
				lastNameIdx = i
			case "Courriel", "E-mail", "Email", "email":
				emailIdx = i
			case "Compétition", "Competition", "competition":
				competitionIdx = i
			case "Rôle", "Role", "role":
				roleIdx = i
			}
		}
		if firstNameIdx == -1 || lastNameIdx == -1 || emailIdx == -1 || competitionIdx == -1 {
			continue
		}

		for i := 1; i < len(sheetRows); i++ {
			row := sheetRows[i]
			email := cellAt(row, emailIdx)
			if email == "" {
				continue
			}

			role := models.RoleParticipant
			if raw := cellAt(row, roleIdx); raw != "" {
				role = models.Role(strings.ToLower(raw))
			}
			rows = append(rows, models.MinimalParticipant{
				FirstName:   cellAt(row, firstNameIdx),
				LastName:    cellAt(row, lastNameIdx),
				Email:       email,
				Competition: models.Competition(strings.ToLower(cellAt(row, competitionIdx))),
				Role:        role,
			})
			labels = append(labels, fmt.Sprintf("%s!%d", sheetName, i+1))
		}
	}
	return rows, labels, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
