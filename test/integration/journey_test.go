//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intake(attachmentIDs ...uint) gin.H {
	return gin.H{
		"business_name":        "Atelier Ndiaye",
		"business_description": "Tailor shop in Thies",
		"site_type":            "premium",
		"description":          "Online shop for made to measure clothing",
		"has_domain":           "yes",
		"domain":               "atelier-ndiaye.sn",
		"references":           "https://example.com/tailors",
		"attachment_ids":       attachmentIDs,
	}
}

func TestFullJourney_Postgres(t *testing.T) {
	_, customer := signUp(t, "ndiaye@example.com", "Moussa Ndiaye")
	adminID, admin := signUp(t, "ops@example.com", "Ops Team")
	require.NoError(t, testCtx.Repos.User.UpdateRole(adminID, user.RoleAdmin))

	w := customer.Upload("/api/questionnaire/attachments", "file", "logo.png", []byte("\x89PNG fake image"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	attachment := decode[map[string]any](t, w)
	attachmentID := uint(attachment["id"].(float64))

	w = customer.JSON(http.MethodPost, "/api/questionnaire", intake(attachmentID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	receipt := decode[map[string]any](t, w)
	assert.Equal(t, "in_progress", receipt["customer_status"])
	requestID := uint(receipt["request_id"].(float64))

	w = admin.JSON(http.MethodGet, fmt.Sprintf("/api/admin/requests/%d/questionnaire", requestID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	export := decode[map[string]any](t, w)
	files := export["files"].([]any)
	require.Len(t, files, 1)
	assert.Contains(t, files[0].(map[string]any)["url"], "X-Amz-Signature")

	path := fmt.Sprintf("/api/admin/requests/%d", requestID)
	w = admin.JSON(http.MethodPut, path+"/status", gin.H{"status": "in_progress"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = admin.JSON(http.MethodPut, path+"/preview", gin.H{"preview_link": "https://preview.example.com/ndiaye"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = customer.JSON(http.MethodPost, "/api/dashboard/approve", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = customer.JSON(http.MethodPost, "/api/payments", gin.H{"package": "premium", "method": "orange"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = customer.JSON(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "payment_complete", decode[map[string]any](t, w)["status"])

	w = admin.JSON(http.MethodGet, "/api/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[map[string]any](t, w)
	assert.GreaterOrEqual(t, stats["revenue_xof"].(float64), float64(1))
}

func TestConcurrentSubmissions_OneWins(t *testing.T) {
	_, customer := signUp(t, "race@example.com", "Race Condition")

	const attempts = 8
	codes := make([]int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = customer.JSON(http.MethodPost, "/api/questionnaire", intake()).Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		default:
			assert.Equal(t, http.StatusConflict, code)
		}
	}
	assert.Equal(t, 1, created)
}

func TestHealth_AllBackends(t *testing.T) {
	w := NewHTTPClient(t, testCtx.Router, "").JSON(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, strings.Contains(w.Body.String(), `"redis":"ok"`))
}
