package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/domain/repository"
	"github.com/autoforge/dealership-api/pkg/apperror"
	"github.com/autoforge/dealership-api/pkg/pagination"
	"github.com/autoforge/dealership-api/pkg/storage"
)

// DefectReportService handles defect and warranty claim reports
type DefectReportService struct {
	reportRepo  repository.DefectReportRepository
	vehicleRepo repository.VehicleRepository
	store       storage.Store
}

// NewDefectReportService creates a new defect report service
func NewDefectReportService(
	reportRepo repository.DefectReportRepository,
	vehicleRepo repository.VehicleRepository,
	store storage.Store,
) *DefectReportService {
	return &DefectReportService{
		reportRepo:  reportRepo,
		vehicleRepo: vehicleRepo,
		store:       store,
	}
}

// CreateDefectReportInput represents the input for filing a defect report
type CreateDefectReportInput struct {
	UserID      uuid.UUID
	VehicleID   uuid.UUID
	Title       string
	Description string
	Severity    string
}

// CreateDefectReport files a new defect report against a vehicle
func (s *DefectReportService) CreateDefectReport(ctx context.Context, input *CreateDefectReportInput) (*entity.DefectReport, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}

	severity := input.Severity
	switch severity {
	case "low", "medium", "high":
	default:
		severity = "medium"
	}

	report := &entity.DefectReport{
		UserID:      input.UserID,
		VehicleID:   input.VehicleID,
		Title:       input.Title,
		Description: input.Description,
		Severity:    severity,
		Status:      enum.DefectStatusOpen,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// GetDefectReport retrieves a defect report with its attachments
func (s *DefectReportService) GetDefectReport(ctx context.Context, id uuid.UUID) (*entity.DefectReport, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, apperror.NewNotFoundError("Defect report")
	}
	return report, nil
}

// ListDefectReportsInput represents the input for listing defect reports
type ListDefectReportsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.DefectStatus
	VehicleID  *uuid.UUID
}

// ListDefectReports lists defect reports with filtering
func (s *DefectReportService) ListDefectReports(ctx context.Context, input *ListDefectReportsInput) (*pagination.PaginatedResult[entity.DefectReport], error) {
	params := &repository.DefectReportFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		VehicleID:  input.VehicleID,
	}

	reports, total, err := s.reportRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(reports, pag), nil
}

// UpdateDefectStatus moves a report through its review workflow
func (s *DefectReportService) UpdateDefectStatus(ctx context.Context, id uuid.UUID, status enum.DefectStatus) error {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if report == nil {
		return apperror.NewNotFoundError("Defect report")
	}
	if report.Status == enum.DefectStatusClosed {
		return apperror.NewBadRequestError("Closed reports cannot change status")
	}

	return s.reportRepo.UpdateStatus(ctx, id, status)
}

// AddAttachmentInput represents an uploaded file for a defect report
type AddAttachmentInput struct {
	ReportID uuid.UUID
	Kind     enum.AttachmentKind
	FileName string
	Content  io.Reader
}

// AddAttachment stores the uploaded file and records its public URL on the
// report
func (s *DefectReportService) AddAttachment(ctx context.Context, input *AddAttachmentInput) (*entity.DefectAttachment, error) {
	report, err := s.reportRepo.GetByID(ctx, input.ReportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, apperror.NewNotFoundError("Defect report")
	}

	if !input.Kind.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown attachment kind")
	}

	saved, err := s.store.Save("defects", input.FileName, input.Content)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	attachment := &entity.DefectAttachment{
		ReportID: input.ReportID,
		Kind:     input.Kind,
		FileName: input.FileName,
		URL:      saved.URL,
	}

	if err := s.reportRepo.AddAttachment(ctx, attachment); err != nil {
		// The report row failed, leave no orphan file behind
		_ = s.store.Delete(saved.StoredName)
		return nil, err
	}

	return attachment, nil
}

// DeleteDefectReport removes a defect report
func (s *DefectReportService) DeleteDefectReport(ctx context.Context, id uuid.UUID) error {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if report == nil {
		return apperror.NewNotFoundError("Defect report")
	}

	return s.reportRepo.Delete(ctx, id)
}
