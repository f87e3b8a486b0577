package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/application/service"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/presentation/http/dto/response"
)

// DefectReportHandler handles defect report HTTP requests
type DefectReportHandler struct {
	reportService *service.DefectReportService
	maxUploadSize int64
}

// NewDefectReportHandler creates a new defect report handler
func NewDefectReportHandler(reportService *service.DefectReportService, maxUploadSize int64) *DefectReportHandler {
	return &DefectReportHandler{
		reportService: reportService,
		maxUploadSize: maxUploadSize,
	}
}

// DefectReportRequest represents the create defect report request body
type DefectReportRequest struct {
	VehicleID   string `json:"vehicle_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// Create handles filing a defect report
// @Summary Create Defect Report
// @Tags defect-reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /defect-reports [post]
func (h *DefectReportHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req DefectReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	report, err := h.reportService.CreateDefectReport(c.Request.Context(), &service.CreateDefectReportInput{
		UserID:      *userID,
		VehicleID:   vehicleID,
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Defect report created successfully", report)
}

// List handles listing defect reports
// @Summary List Defect Reports
// @Tags defect-reports
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param status query int false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /defect-reports [get]
func (h *DefectReportHandler) List(c *gin.Context) {
	var status *enum.DefectStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.DefectStatus(parsed)
			status = &st
		}
	}

	var vehicleID *uuid.UUID
	if v := c.Query("vehicle_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			vehicleID = &id
		}
	}

	result, err := h.reportService.ListDefectReports(c.Request.Context(), &service.ListDefectReportsInput{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
		Status:     status,
		VehicleID:  vehicleID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Defect reports retrieved successfully", result)
}

// Get handles getting a single defect report
// @Summary Get Defect Report
// @Tags defect-reports
// @Security BearerAuth
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.APIResponse
// @Router /defect-reports/{id} [get]
func (h *DefectReportHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID")
		return
	}

	report, err := h.reportService.GetDefectReport(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Defect report retrieved successfully", report)
}

// UpdateStatus handles moving a report through its review workflow
// @Summary Update Defect Report Status
// @Tags defect-reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.APIResponse
// @Router /defect-reports/{id}/status [put]
func (h *DefectReportHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.reportService.UpdateDefectStatus(c.Request.Context(), id, enum.DefectStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Defect report status updated successfully", nil)
}

// AddAttachment handles uploading a file to a defect report
// @Summary Add Attachment
// @Description Upload a photo, repair quote or transport document
// @Tags defect-reports
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Report ID"
// @Param kind formData string true "Attachment kind"
// @Param file formData file true "File to upload"
// @Success 201 {object} response.APIResponse
// @Router /defect-reports/{id}/attachments [post]
func (h *DefectReportHandler) AddAttachment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A file is required")
		return
	}
	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		response.BadRequest(c, "File exceeds the maximum upload size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	attachment, err := h.reportService.AddAttachment(c.Request.Context(), &service.AddAttachmentInput{
		ReportID: id,
		Kind:     enum.AttachmentKind(c.PostForm("kind")),
		FileName: fileHeader.Filename,
		Content:  file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Attachment uploaded successfully", attachment)
}

// Delete handles removing a defect report
// @Summary Delete Defect Report
// @Tags defect-reports
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 204
// @Router /defect-reports/{id} [delete]
func (h *DefectReportHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID")
		return
	}

	if err := h.reportService.DeleteDefectReport(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
