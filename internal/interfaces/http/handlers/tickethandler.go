package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	ticketUC "github.com/oncabito/sentinela/internal/application/ticket/usecases"
	"github.com/oncabito/sentinela/internal/shared/logger"
	"github.com/oncabito/sentinela/internal/shared/utils"
)

// TicketUseCases bundles the ticket operations exposed over the admin API.
type TicketUseCases struct {
	Get            *ticketUC.GetTicketUseCase
	List           *ticketUC.ListTicketsUseCase
	Assign         *ticketUC.AssignTicketUseCase
	ChangeStatus   *ticketUC.ChangeStatusUseCase
	Close          *ticketUC.CloseTicketUseCase
	ElevateUrgency *ticketUC.ElevateUrgencyUseCase
	Sync           *ticketUC.SyncTicketUseCase
}

// TicketHandler serves the support-team ticket endpoints.
type TicketHandler struct {
	useCases TicketUseCases
	logger   logger.Interface
}

func NewTicketHandler(useCases TicketUseCases, logger logger.Interface) *TicketHandler {
	return &TicketHandler{
		useCases: useCases,
		logger:   logger,
	}
}

// List handles GET /tickets with optional status and user filters.
func (h *TicketHandler) List(c *gin.Context) {
	query := ticketUC.ListTicketsQuery{
		Status: c.Query("status"),
	}
	if rawUserID := c.Query("user_id"); rawUserID != "" {
		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "user_id must be an integer")
			return
		}
		query.TelegramUserID = userID
	}

	result, err := h.useCases.List.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"tickets": result.Tickets})
}

// Get handles GET /tickets/:id.
func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, ok := h.parseTicketID(c)
	if !ok {
		return
	}

	dto, err := h.useCases.Get.Execute(c.Request.Context(), ticketUC.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

// GetByProtocol handles GET /tickets/protocol/:protocol.
func (h *TicketHandler) GetByProtocol(c *gin.Context) {
	protocol := c.Param("protocol")

	dto, err := h.useCases.Get.Execute(c.Request.Context(), ticketUC.GetTicketQuery{Protocol: protocol})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

type assignRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

// Assign handles POST /tickets/:id/assign.
func (h *TicketHandler) Assign(c *gin.Context) {
	ticketID, ok := h.parseTicketID(c)
	if !ok {
		return
	}

	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "technician_id is required")
		return
	}

	result, err := h.useCases.Assign.Execute(c.Request.Context(), ticketUC.AssignTicketCommand{
		TicketID:     ticketID,
		TechnicianID: req.TechnicianID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned", result.Ticket)
}

type changeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChangeStatus handles PUT /tickets/:id/status.
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, ok := h.parseTicketID(c)
	if !ok {
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	result, err := h.useCases.ChangeStatus.Execute(c.Request.Context(), ticketUC.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", result.Ticket)
}

type closeRequest struct {
	ResolutionNotes string `json:"resolution_notes" binding:"required"`
}

// Close handles POST /tickets/:id/close.
func (h *TicketHandler) Close(c *gin.Context) {
	ticketID, ok := h.parseTicketID(c)
	if !ok {
		return
	}

	var req closeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "resolution_notes is required")
		return
	}

	result, err := h.useCases.Close.Execute(c.Request.Context(), ticketUC.CloseTicketCommand{
		TicketID:        ticketID,
		ResolutionNotes: req.ResolutionNotes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed", result.Ticket)
}

// ElevateUrgency handles POST /tickets/:id/elevate.
func (h *TicketHandler) ElevateUrgency(c *gin.Context) {
	ticketID, ok := h.parseTicketID(c)
	if !ok {
		return
	}

	result, err := h.useCases.ElevateUrgency.Execute(c.Request.Context(), ticketUC.ElevateUrgencyCommand{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Urgency elevated"
	if !result.Elevated {
		message = "Ticket already at highest urgency"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result.Ticket)
}

// Sync handles POST /tickets/:id/sync, pushing one ticket to HubSoft now
// instead of waiting for the periodic sweep.
func (h *TicketHandler) Sync(c *gin.Context) {
	ticketID, ok := h.parseTicketID(c)
	if !ok {
		return
	}

	result, err := h.useCases.Sync.Execute(c.Request.Context(), ticketUC.SyncTicketCommand{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket synced", gin.H{"hubsoft_id": result.HubSoftID})
}

func (h *TicketHandler) parseTicketID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "ticket ID must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
