package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tombdereus/gimcana-api/internal/api/handler/v1/request"
	"github.com/tombdereus/gimcana-api/internal/api/handler/v1/response"
	"github.com/tombdereus/gimcana-api/internal/api/middleware"
	"github.com/tombdereus/gimcana-api/internal/domain"
	"github.com/tombdereus/gimcana-api/internal/service"
)

type GimcanaService interface {
	Scan(ctx context.Context, userID, campaignID uint, rawCode string) (domain.ScanResult, error)
	GetProgress(ctx context.Context, userID, campaignID uint) (domain.Progress, error)
	Claim(ctx context.Context, userID, campaignID uint) (domain.ClaimOutcome, error)
	ExecuteRaffle(ctx context.Context, campaignID, executedBy uint, numWinners int) (domain.RaffleResult, bool, error)
	GetRaffleResult(ctx context.Context, campaignID uint) (domain.RaffleResult, error)
	IsWinner(ctx context.Context, campaignID, userID uint) (bool, int, error)
	GetCampaign(ctx context.Context, campaignID uint, withStats bool) (domain.Campaign, error)
	ListActiveCampaigns(ctx context.Context, userID uint) ([]domain.Campaign, error)
	ListAllCampaigns(ctx context.Context) ([]domain.Campaign, error)
	ListQRCodes(ctx context.Context, campaignID uint) ([]domain.QRCode, error)
	GetQRScanCounts(ctx context.Context, qrCodes []domain.QRCode) (map[uint]int64, error)
	ListParticipants(ctx context.Context, campaignID uint) ([]domain.Participant, error)
	ListRaffleEntrants(ctx context.Context, campaignID uint) ([]domain.RaffleEntrant, error)
	ListRaffleHistory(ctx context.Context) ([]domain.RaffleResult, error)
	CreateCampaign(ctx context.Context, campaign domain.Campaign, qrItems []service.QRItem) (domain.Campaign, error)
}

type GimcanaHandler struct {
	svc GimcanaService
}

func NewGimcanaHandler(svc GimcanaService) *GimcanaHandler {
	return &GimcanaHandler{
		svc: svc,
	}
}

func getUserID(ctx *gin.Context) (uint, *response.Err) {
	userID := ctx.GetUint(middleware.ContextKeyUserID)
	if userID == 0 {
		return 0, response.ErrUnauthorized(errors.New("missing user in context"))
	}

	return userID, nil
}

func isAdmin(ctx *gin.Context) bool {
	return ctx.GetString(middleware.ContextKeyUserRole) == middleware.RoleAdmin
}

func parseCampaignID(ctx *gin.Context) (uint, *response.Err) {
	campaignID, err := strconv.ParseUint(ctx.Param("campaignID"), 10, 64)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid campaign ID: %w", err))
	}

	return uint(campaignID), nil
}

// HandleScan godoc
// @Summary      Record a QR scan
// @Description  Records that the authenticated user scanned a gimcana QR code. Scanning the same code twice is a no-op that reports the current progress.
// @Tags         gimcana
// @Accept       json
// @Produce      json
// @Param        input  body      request.ScanRequest  true  "Scanned code"
// @Success      200    {object}  response.ScanResponse
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /gimcana/scan [post]
// @Security     BearerAuth
func (h *GimcanaHandler) HandleScan(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.ScanRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.Scan(ctx.Request.Context(), userID, input.CampaignID, input.QRCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignNotFound):
			response.RenderErr(ctx, response.ErrNotFound("campaign", err))
		case errors.Is(err, service.ErrQRCodeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("QR code", err))
		case errors.Is(err, service.ErrCampaignInactive):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleScan -> h.svc.Scan -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewScanResponse(&result))
}

// HandleGetProgress godoc
// @Summary      Get campaign progress
// @Description  Returns the authenticated user's scan checklist, completion and raffle state for a campaign.
// @Tags         gimcana
// @Produce      json
// @Param        campaignID  path      int  true  "Campaign ID"
// @Success      200  {object}  domain.Progress
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /gimcana/campaigns/{campaignID}/progress [get]
// @Security     BearerAuth
func (h *GimcanaHandler) HandleGetProgress(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	campaignID, respErr := parseCampaignID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	progress, err := h.svc.GetProgress(ctx.Request.Context(), userID, campaignID)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", err))
			return
		}

		err = fmt.Errorf("HandleGetProgress -> h.svc.GetProgress -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, progress)
}

// HandleEnterRaffle godoc
// @Summary      Claim the campaign prize
// @Description  Claims the prize of a completed campaign. For raffle campaigns this enters the user into the draw, for direct campaigns it records the claim. Repeated calls return the original record.
// @Tags         gimcana
// @Produce      json
// @Param        campaignID  path      int  true  "Campaign ID"
// @Success      200  {object}  response.ClaimResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /gimcana/campaigns/{campaignID}/enter-raffle [post]
// @Security     BearerAuth
func (h *GimcanaHandler) HandleEnterRaffle(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	campaignID, respErr := parseCampaignID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	outcome, err := h.svc.Claim(ctx.Request.Context(), userID, campaignID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignNotFound):
			response.RenderErr(ctx, response.ErrNotFound("campaign", err))
		case errors.Is(err, service.ErrNotCompleted):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("HandleEnterRaffle -> h.svc.Claim -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewClaimResponse(&outcome))
}

// HandleListCampaigns godoc
// @Summary      List campaigns
// @Description  Lists currently active campaigns with the caller's progress summary. Admins receive every campaign with participation stats instead.
// @Tags         gimcana
// @Produce      json
// @Success      200  {array}   domain.Campaign
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /gimcana/campaigns [get]
// @Security     BearerAuth
func (h *GimcanaHandler) HandleListCampaigns(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var (
		campaigns []domain.Campaign
		err       error
	)
	if isAdmin(ctx) {
		campaigns, err = h.svc.ListAllCampaigns(ctx.Request.Context())
	} else {
		campaigns, err = h.svc.ListActiveCampaigns(ctx.Request.Context(), userID)
	}
	if err != nil {
		err = fmt.Errorf("HandleListCampaigns -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, campaigns)
}

// HandleGetCampaign godoc
// @Summary      Get a campaign
// @Description  Returns one campaign. Admins also get participation stats.
// @Tags         gimcana
// @Produce      json
// @Param        campaignID  path      int  true  "Campaign ID"
// @Success      200  {object}  domain.Campaign
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /gimcana/campaigns/{campaignID} [get]
// @Security     BearerAuth
func (h *GimcanaHandler) HandleGetCampaign(ctx *gin.Context) {
	campaignID, respErr := parseCampaignID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	campaign, err := h.svc.GetCampaign(ctx.Request.Context(), campaignID, isAdmin(ctx))
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", err))
			return
		}

		err = fmt.Errorf("HandleGetCampaign -> h.svc.GetCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, campaign)
}

// HandleListQRCodes godoc
// @Summary      List campaign QR codes
// @Description  Lists the scan points of a campaign. Printed codes and scan counts are only included for admins.
// @Tags         gimcana
// @Produce      json
// @Param        campaignID  path      int  true  "Campaign ID"
// @Success      200  {array}   response.QRCodeResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /gimcana/campaigns/{campaignID}/qr-codes [get]
// @Security     BearerAuth
func (h *GimcanaHandler) HandleListQRCodes(ctx *gin.Context) {
	campaignID, respErr := parseCampaignID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	qrCodes, err := h.svc.ListQRCodes(ctx.Request.Context(), campaignID)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", err))
			return
		}

		err = fmt.Errorf("HandleListQRCodes -> h.svc.ListQRCodes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	admin := isAdmin(ctx)

	var counts map[uint]int64
	if admin {
		counts, err = h.svc.GetQRScanCounts(ctx.Request.Context(), qrCodes)
		if err != nil {
			err = fmt.Errorf("HandleListQRCodes -> h.svc.GetQRScanCounts -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}
	}

	items := make([]response.QRCodeResponse, len(qrCodes))
	for i, qr := range qrCodes {
		items[i] = response.QRCodeResponse{
			ID:                qr.ID,
			Number:            qr.Number,
			EstablishmentName: qr.EstablishmentName,
			LocationHint:      qr.LocationHint,
		}
		if admin {
			items[i].Code = qr.Code
			count := counts[qr.ID]
			items[i].ScanCount = &count
		}
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleGetRaffleResult godoc
// @Summary      Get the raffle result
// @Description  Returns the executed draw for a campaign, annotated with whether the caller won.
// @Tags         gimcana
// @Produce      json
// @Param        campaignID  path      int  true  "Campaign ID"
// @Success      200  {object}  response.RaffleResultResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /gimcana/campaigns/{campaignID}/raffle-result [get]
// @Security     BearerAuth
func (h *GimcanaHandler) HandleGetRaffleResult(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	campaignID, respErr := parseCampaignID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	result, err := h.svc.GetRaffleResult(ctx.Request.Context(), campaignID)
	if err != nil {
		if errors.Is(err, service.ErrRaffleResultNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("raffle result", err))
			return
		}

		err = fmt.Errorf("HandleGetRaffleResult -> h.svc.GetRaffleResult -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	isWinner, _, err := h.svc.IsWinner(ctx.Request.Context(), campaignID, userID)
	if err != nil {
		err = fmt.Errorf("HandleGetRaffleResult -> h.svc.IsWinner -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	resp := response.NewRaffleResultResponse(&result)
	resp.IsWinner = &isWinner

	ctx.JSON(http.StatusOK, resp)
}

// HandleCreateCampaign godoc
// @Summary      Create a campaign
// @Description  Creates a gimcana campaign and generates its QR codes. Admin only.
// @Tags         gimcana,admin
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateCampaignRequest  true  "Campaign details"
// @Success      201    {object}  domain.Campaign
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /gimcana/campaigns [post]
// @Security     BearerAuth
func (h *GimcanaHandler) HandleCreateCampaign(ctx *gin.Context) {
	var input request.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	startDate, err := time.Parse(time.RFC3339, input.StartDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid start date format: %v", err)))

		return
	}

	endDate, err := time.Parse(time.RFC3339, input.EndDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid end date format: %v", err)))

		return
	}

	campaign := domain.Campaign{
		Name:             input.Name,
		Description:      input.Description,
		TotalQRCodes:     input.TotalQRCodes,
		StartDate:        startDate.UTC(),
		EndDate:          endDate.UTC(),
		PrizeType:        domain.PrizeType(input.PrizeType),
		PrizeDescription: input.PrizeDescription,
		NumWinners:       input.NumWinners,
		IsActive:         true,
	}
	if input.RaffleDate != "" {
		raffleDate, err := time.Parse(time.RFC3339, input.RaffleDate)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid raffle date format: %v", err)))

			return
		}
		raffleDate = raffleDate.UTC()
		campaign.RaffleDate = &raffleDate
	}

	qrItems := make([]service.QRItem, len(input.QRItems))
	for i, item := range input.QRItems {
		qrItems[i] = service.QRItem{
			EstablishmentName: item.EstablishmentName,
			LocationHint:      item.LocationHint,
		}
	}

	created, err := h.svc.CreateCampaign(ctx.Request.Context(), campaign, qrItems)
	if err != nil {
		if errors.Is(err, service.ErrRaffleDateMissing) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleCreateCampaign -> h.svc.CreateCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListParticipants godoc
// @Summary      List campaign participants
// @Description  Lists every user who scanned at least one QR of the campaign, with completion and claim state. Admin only.
// @Tags         gimcana,admin
// @Produce      json
// @Param        campaignID  path      int  true  "Campaign ID"
// @Success      200  {array}   domain.Participant
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /gimcana/campaigns/{campaignID}/participants [get]
// @Security     BearerAuth
func (h *GimcanaHandler) HandleListParticipants(ctx *gin.Context) {
	campaignID, respErr := parseCampaignID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participants, err := h.svc.ListParticipants(ctx.Request.Context(), campaignID)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", err))
			return
		}

		err = fmt.Errorf("HandleListParticipants -> h.svc.ListParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleListRaffleParticipants godoc
// @Summary      List raffle entrants
// @Description  Lists the raffle entry pool of a campaign in draw order. Admin only.
// @Tags         gimcana,admin
// @Produce      json
// @Param        campaignID  path      int  true  "Campaign ID"
// @Success      200  {array}   response.RaffleEntrantResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /gimcana/campaigns/{campaignID}/raffle-participants [get]
// @Security     BearerAuth
func (h *GimcanaHandler) HandleListRaffleParticipants(ctx *gin.Context) {
	campaignID, respErr := parseCampaignID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	entrants, err := h.svc.ListRaffleEntrants(ctx.Request.Context(), campaignID)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", err))
			return
		}

		err = fmt.Errorf("HandleListRaffleParticipants -> h.svc.ListRaffleEntrants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	items := make([]response.RaffleEntrantResponse, len(entrants))
	for i, entrant := range entrants {
		items[i] = response.RaffleEntrantResponse{
			UserID:    entrant.UserID,
			EnteredAt: entrant.EnteredAt,
		}
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleExecuteRaffle godoc
// @Summary      Execute the raffle
// @Description  Draws the winners for a raffle campaign whose raffle date has passed. Idempotent: repeating the call returns the recorded result. Admin only.
// @Tags         gimcana,admin
// @Accept       json
// @Produce      json
// @Param        campaignID  path      int                           true   "Campaign ID"
// @Param        input       body      request.ExecuteRaffleRequest  false  "Draw options"
// @Success      200  {object}  response.RaffleResultResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /gimcana/campaigns/{campaignID}/execute-raffle [post]
// @Security     BearerAuth
func (h *GimcanaHandler) HandleExecuteRaffle(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	campaignID, respErr := parseCampaignID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.ExecuteRaffleRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&input); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		if err := input.Validate(); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
	}

	result, alreadyExecuted, err := h.svc.ExecuteRaffle(ctx.Request.Context(), campaignID, userID, input.NumWinners)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignNotFound):
			response.RenderErr(ctx, response.ErrNotFound("campaign", err))
		case errors.Is(err, service.ErrNotRaffleCampaign),
			errors.Is(err, service.ErrRaffleNotDue):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrEmptyRafflePool):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("HandleExecuteRaffle -> h.svc.ExecuteRaffle -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	resp := response.NewRaffleResultResponse(&result)
	resp.AlreadyDrawn = alreadyExecuted

	ctx.JSON(http.StatusOK, resp)
}

// HandleRaffleHistory godoc
// @Summary      List executed raffles
// @Description  Returns every executed draw, newest first. Admin only.
// @Tags         gimcana,admin
// @Produce      json
// @Success      200  {array}   response.RaffleResultResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /gimcana/raffles/history [get]
// @Security     BearerAuth
func (h *GimcanaHandler) HandleRaffleHistory(ctx *gin.Context) {
	results, err := h.svc.ListRaffleHistory(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleRaffleHistory -> h.svc.ListRaffleHistory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	items := make([]*response.RaffleResultResponse, len(results))
	for i := range results {
		items[i] = response.NewRaffleResultResponse(&results[i])
	}

	ctx.JSON(http.StatusOK, items)
}
