package request

import (
	"errors"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	qrCodeRegexPattern = `^GIMCANA-[0-9A-F]{16}$`
)

var (
	errInvalidQRCode     = errors.New("the code is not a valid gimcana QR code")
	errInvalidRaffleDate = errors.New("raffle_date must be an RFC 3339 timestamp")
)

var qrCodeExp = regexp2.MustCompile(qrCodeRegexPattern, regexp2.IgnoreCase)

type ScanRequest struct {
	CampaignID uint   `json:"campaign_id" binding:"required"`
	QRCode     string `json:"qr_code" binding:"required"`
}

func (req *ScanRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.CampaignID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.QRCode, validation.Required),
	)
	if err != nil {
		return err
	}

	if ok, _ := qrCodeExp.MatchString(strings.TrimSpace(req.QRCode)); !ok {
		return errInvalidQRCode
	}

	return nil
}

type QRItem struct {
	EstablishmentName string `json:"establishment_name"`
	LocationHint      string `json:"location_hint"`
}

type CreateCampaignRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	PrizeType        string   `json:"prize_type" binding:"required,oneof=direct raffle"`
	PrizeDescription string   `json:"prize_description"`
	TotalQRCodes     int      `json:"total_qr_codes" binding:"required,min=1"`
	NumWinners       int      `json:"num_winners"`
	StartDate        string   `json:"start_date" binding:"required"`
	EndDate          string   `json:"end_date" binding:"required"`
	RaffleDate       string   `json:"raffle_date,omitempty"`
	QRItems          []QRItem `json:"qr_items"`
}

func (req *CreateCampaignRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.PrizeType, validation.Required, validation.In("direct", "raffle")),
		validation.Field(&req.PrizeDescription, validation.Length(0, 200)),
		validation.Field(&req.TotalQRCodes, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&req.NumWinners, validation.Min(0), validation.Max(10)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
	)
	if err != nil {
		return err
	}

	if _, err := time.Parse(time.RFC3339, req.StartDate); err != nil {
		return errors.New("start_date must be an RFC 3339 timestamp")
	}
	if _, err := time.Parse(time.RFC3339, req.EndDate); err != nil {
		return errors.New("end_date must be an RFC 3339 timestamp")
	}
	if req.RaffleDate != "" {
		if _, err := time.Parse(time.RFC3339, req.RaffleDate); err != nil {
			return errInvalidRaffleDate
		}
	}
	if len(req.QRItems) > req.TotalQRCodes {
		return errors.New("more QR items than total_qr_codes")
	}

	return nil
}

type ExecuteRaffleRequest struct {
	NumWinners int `json:"num_winners"`
}

func (req *ExecuteRaffleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.NumWinners, validation.Min(0), validation.Max(10)),
	)
}
