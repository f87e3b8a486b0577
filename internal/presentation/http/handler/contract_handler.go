package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/application/service"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/presentation/http/dto/response"
)

// ContractHandler handles contract HTTP requests
type ContractHandler struct {
	contractService *service.ContractService
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractService *service.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// ContractorRequest represents the contractor section of the convert request
type ContractorRequest struct {
	Type string `json:"type" binding:"required"`

	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	FiscalCode *string `json:"fiscal_code"`
	BirthDate  *string `json:"birth_date"`
	BirthPlace *string `json:"birth_place"`

	CompanyName              *string `json:"company_name"`
	VATNumber                *string `json:"vat_number"`
	RepresentativeFiscalCode *string `json:"representative_fiscal_code"`
	RepresentativeBirthDate  *string `json:"representative_birth_date"`
	RepresentativeBirthPlace *string `json:"representative_birth_place"`

	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

func (r ContractorRequest) input() service.ContractorInput {
	return service.ContractorInput{
		Type:                     enum.ContractorType(r.Type),
		FirstName:                r.FirstName,
		LastName:                 r.LastName,
		FiscalCode:               r.FiscalCode,
		BirthDate:                r.BirthDate,
		BirthPlace:               r.BirthPlace,
		CompanyName:              r.CompanyName,
		VATNumber:                r.VATNumber,
		RepresentativeFiscalCode: r.RepresentativeFiscalCode,
		RepresentativeBirthDate:  r.RepresentativeBirthDate,
		RepresentativeBirthPlace: r.RepresentativeBirthPlace,
		Address:                  r.Address,
		City:                     r.City,
		Province:                 r.Province,
		PostalCode:               r.PostalCode,
		Phone:                    r.Phone,
		Email:                    r.Email,
	}
}

// ConvertQuoteRequest represents the convert request body
type ConvertQuoteRequest struct {
	Contractor     ContractorRequest `json:"contractor" binding:"required"`
	DeliveryDays   int               `json:"delivery_days"`
	SpecialClauses *string           `json:"special_clauses"`
}

// Convert handles converting a pending quote into a contract
// @Summary Convert Quote
// @Description Convert a pending quote into a purchase contract
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 201 {object} response.APIResponse
// @Router /quotes/{id}/convert [post]
func (h *ContractHandler) Convert(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req ConvertQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	contract, err := h.contractService.ConvertQuote(c.Request.Context(), &service.ConvertQuoteInput{
		QuoteID:        quoteID,
		UserID:         *userID,
		Contractor:     req.Contractor.input(),
		DeliveryDays:   req.DeliveryDays,
		SpecialClauses: req.SpecialClauses,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote converted successfully", contract)
}

// List handles listing contracts
// @Summary List Contracts
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	result, err := h.contractService.ListContracts(c.Request.Context(), paginationFromQuery(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Contracts retrieved successfully", result)
}

// Get handles getting a single contract
// @Summary Get Contract
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.APIResponse
// @Router /contracts/{id} [get]
func (h *ContractHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	contract, err := h.contractService.GetContract(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contract retrieved successfully", contract)
}

// Delete handles deleting a contract (admin only, enforced by the route)
// @Summary Delete Contract
// @Tags contracts
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Success 204
// @Router /contracts/{id} [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	if err := h.contractService.DeleteContract(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
