package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tombdereus/gimcana-api/internal/config"
	"github.com/tombdereus/gimcana-api/internal/pkg/jwthelper"
	"github.com/tombdereus/gimcana-api/internal/repository/dao"
)

const testSigningKey = "test-signing-key"

func newTestServer(t *testing.T) (*Server, *dao.GimcanaDAO) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dao.InitTables(db))

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			BaseURL:            "localhost:8080",
			JWTSigningKey:      testSigningKey,
			AllowedCORSDomains: "*",
		},
		Gin:     &config.GinConfig{Mode: "test"},
		Gimcana: &config.GimcanaConfig{DefaultRaffleWinners: 1},
	}

	return NewServer(conf, db), dao.NewGimcanaDAO(db)
}

func seedTestCampaign(t *testing.T, d *dao.GimcanaDAO, totalQRCodes int, prizeType string) dao.Campaign {
	t.Helper()

	now := time.Now().UTC()
	qrCodes := make([]dao.QRCode, totalQRCodes)
	for i := range qrCodes {
		qrCodes[i] = dao.QRCode{
			Code:              fmt.Sprintf("GIMCANA-%016X", i+1),
			Number:            i + 1,
			EstablishmentName: fmt.Sprintf("Punt %d", i+1),
		}
	}

	raffleDate := now.Add(-time.Hour)
	campaign, err := d.InsertCampaign(context.Background(), dao.Campaign{
		Name:         "Gimcana de prova",
		TotalQRCodes: totalQRCodes,
		StartDate:    now.Add(-24 * time.Hour),
		EndDate:      now.Add(24 * time.Hour),
		PrizeType:    prizeType,
		RaffleDate:   &raffleDate,
		NumWinners:   1,
		IsActive:     true,
	}, qrCodes)
	require.NoError(t, err)

	return campaign
}

func bearerToken(t *testing.T, userID uint, role string) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), userID, role)
	require.NoError(t, err)

	return "Bearer " + token
}

func doRequest(s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	recorder := httptest.NewRecorder()
	s.Router.ServeHTTP(recorder, req)

	return recorder
}

func TestHealthcheck(t *testing.T) {
	s, _ := newTestServer(t)

	recorder := doRequest(s, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestScan_RequiresAuth(t *testing.T) {
	s, _ := newTestServer(t)

	recorder := doRequest(s, http.MethodPost, "/api/v1/gimcana/scan", "", map[string]any{
		"campaign_id": 1,
		"qr_code":     "GIMCANA-0000000000000001",
	})
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload["detail"])
}

func TestScan_EndToEnd(t *testing.T) {
	s, d := newTestServer(t)
	campaign := seedTestCampaign(t, d, 2, "direct")
	token := bearerToken(t, 1, "user")

	recorder := doRequest(s, http.MethodPost, "/api/v1/gimcana/scan", token, map[string]any{
		"campaign_id": campaign.ID,
		"qr_code":     campaign.QRCodes[0].Code,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var scan struct {
		IsDuplicate  bool `json:"is_duplicate"`
		ScannedCount int  `json:"scanned_count"`
		TotalQRCodes int  `json:"total_qr_codes"`
		Completed    bool `json:"completed"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &scan))
	assert.False(t, scan.IsDuplicate)
	assert.Equal(t, 1, scan.ScannedCount)
	assert.Equal(t, 2, scan.TotalQRCodes)
	assert.False(t, scan.Completed)

	// The same code submitted again is reported as a duplicate.
	recorder = doRequest(s, http.MethodPost, "/api/v1/gimcana/scan", token, map[string]any{
		"campaign_id": campaign.ID,
		"qr_code":     campaign.QRCodes[0].Code,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &scan))
	assert.True(t, scan.IsDuplicate)
	assert.Equal(t, 1, scan.ScannedCount)
}

func TestScan_MalformedCode(t *testing.T) {
	s, d := newTestServer(t)
	campaign := seedTestCampaign(t, d, 1, "direct")

	recorder := doRequest(s, http.MethodPost, "/api/v1/gimcana/scan", bearerToken(t, 1, "user"), map[string]any{
		"campaign_id": campaign.ID,
		"qr_code":     "not-a-gimcana-code",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateCampaign_AdminOnly(t *testing.T) {
	s, _ := newTestServer(t)

	body := map[string]any{
		"name":           "Nova gimcana",
		"prize_type":     "direct",
		"total_qr_codes": 3,
		"start_date":     time.Now().UTC().Add(-time.Hour).Format(time.RFC3339),
		"end_date":       time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
	}

	recorder := doRequest(s, http.MethodPost, "/api/v1/gimcana/campaigns", bearerToken(t, 1, "user"), body)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = doRequest(s, http.MethodPost, "/api/v1/gimcana/campaigns", bearerToken(t, 1, "admin"), body)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var created struct {
		ID           uint `json:"id"`
		TotalQRCodes int  `json:"total_qr_codes"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, 3, created.TotalQRCodes)
}

func TestCreateCampaign_RejectsMalformedDates(t *testing.T) {
	s, _ := newTestServer(t)

	body := map[string]any{
		"name":           "Nova gimcana",
		"prize_type":     "direct",
		"total_qr_codes": 3,
		"start_date":     "31-08-2026",
		"end_date":       time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
	}

	recorder := doRequest(s, http.MethodPost, "/api/v1/gimcana/campaigns", bearerToken(t, 1, "admin"), body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "detail")
}

func TestListQRCodes_CodesOnlyForAdmins(t *testing.T) {
	s, d := newTestServer(t)
	campaign := seedTestCampaign(t, d, 2, "direct")
	path := fmt.Sprintf("/api/v1/gimcana/campaigns/%d/qr-codes", campaign.ID)

	recorder := doRequest(s, http.MethodGet, path, bearerToken(t, 1, "user"), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var items []struct {
		Code      string `json:"code"`
		ScanCount *int64 `json:"scan_count"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Empty(t, items[0].Code)
	assert.Nil(t, items[0].ScanCount)

	recorder = doRequest(s, http.MethodGet, path, bearerToken(t, 2, "admin"), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, campaign.QRCodes[0].Code, items[0].Code)
	require.NotNil(t, items[0].ScanCount)
}

func TestEnterRaffle_BeforeCompletion(t *testing.T) {
	s, d := newTestServer(t)
	campaign := seedTestCampaign(t, d, 2, "raffle")
	path := fmt.Sprintf("/api/v1/gimcana/campaigns/%d/enter-raffle", campaign.ID)

	recorder := doRequest(s, http.MethodPost, path, bearerToken(t, 1, "user"), nil)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestExecuteRaffle_OverHTTP(t *testing.T) {
	s, d := newTestServer(t)
	campaign := seedTestCampaign(t, d, 1, "raffle")
	token := bearerToken(t, 1, "user")

	// One user completes and enters.
	recorder := doRequest(s, http.MethodPost, "/api/v1/gimcana/scan", token, map[string]any{
		"campaign_id": campaign.ID,
		"qr_code":     campaign.QRCodes[0].Code,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	enterPath := fmt.Sprintf("/api/v1/gimcana/campaigns/%d/enter-raffle", campaign.ID)
	recorder = doRequest(s, http.MethodPost, enterPath, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	// Execution is admin only.
	executePath := fmt.Sprintf("/api/v1/gimcana/campaigns/%d/execute-raffle", campaign.ID)
	recorder = doRequest(s, http.MethodPost, executePath, token, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	adminToken := bearerToken(t, 9, "admin")
	recorder = doRequest(s, http.MethodPost, executePath, adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var result struct {
		TotalEntrants int  `json:"total_entrants"`
		AlreadyDrawn  bool `json:"already_drawn"`
		Winners       []struct {
			UserID   uint `json:"user_id"`
			Position int  `json:"position"`
		} `json:"winners"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, 1, result.TotalEntrants)
	assert.False(t, result.AlreadyDrawn)
	require.Len(t, result.Winners, 1)
	assert.Equal(t, uint(1), result.Winners[0].UserID)

	// A repeated trigger reports the recorded draw.
	recorder = doRequest(s, http.MethodPost, executePath, adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.True(t, result.AlreadyDrawn)

	// The winner sees the result.
	resultPath := fmt.Sprintf("/api/v1/gimcana/campaigns/%d/raffle-result", campaign.ID)
	recorder = doRequest(s, http.MethodGet, resultPath, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var view struct {
		IsWinner *bool `json:"is_winner"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &view))
	require.NotNil(t, view.IsWinner)
	assert.True(t, *view.IsWinner)
}
