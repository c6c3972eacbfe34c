package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScanRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ScanRequest
		wantErr bool
	}{
		{
			name: "valid code",
			req:  ScanRequest{CampaignID: 1, QRCode: "GIMCANA-0123456789ABCDEF"},
		},
		{
			name: "lowercase code accepted",
			req:  ScanRequest{CampaignID: 1, QRCode: "gimcana-0123456789abcdef"},
		},
		{
			name: "surrounding whitespace accepted",
			req:  ScanRequest{CampaignID: 1, QRCode: " GIMCANA-0123456789ABCDEF "},
		},
		{
			name:    "missing campaign",
			req:     ScanRequest{QRCode: "GIMCANA-0123456789ABCDEF"},
			wantErr: true,
		},
		{
			name:    "missing code",
			req:     ScanRequest{CampaignID: 1},
			wantErr: true,
		},
		{
			name:    "wrong prefix",
			req:     ScanRequest{CampaignID: 1, QRCode: "TOMBOLA-0123456789ABCDEF"},
			wantErr: true,
		},
		{
			name:    "short hex",
			req:     ScanRequest{CampaignID: 1, QRCode: "GIMCANA-0123"},
			wantErr: true,
		},
		{
			name:    "non-hex payload",
			req:     ScanRequest{CampaignID: 1, QRCode: "GIMCANA-0123456789ABCDEG"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCampaignRequest_Validate(t *testing.T) {
	valid := CreateCampaignRequest{
		Name:         "Gimcana d'estiu",
		PrizeType:    "raffle",
		TotalQRCodes: 5,
		StartDate:    time.Now().UTC().Format(time.RFC3339),
		EndDate:      time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
		RaffleDate:   time.Now().UTC().Add(2 * time.Hour).Format(time.RFC3339),
	}
	assert.NoError(t, valid.Validate())

	badDate := valid
	badDate.RaffleDate = "31/12/2026"
	assert.Error(t, badDate.Validate())

	badType := valid
	badType.PrizeType = "lottery"
	assert.Error(t, badType.Validate())

	tooManyItems := valid
	tooManyItems.TotalQRCodes = 1
	tooManyItems.QRItems = []QRItem{{EstablishmentName: "a"}, {EstablishmentName: "b"}}
	assert.Error(t, tooManyItems.Validate())
}

func TestExecuteRaffleRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ExecuteRaffleRequest{}).Validate())
	assert.NoError(t, (&ExecuteRaffleRequest{NumWinners: 5}).Validate())
	assert.Error(t, (&ExecuteRaffleRequest{NumWinners: 11}).Validate())
}
