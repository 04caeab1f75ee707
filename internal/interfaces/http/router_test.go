package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/application/document"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/config"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/logging"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/interfaces/http/middleware"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/analyzer"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/errors"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

const testContract = `SERVICE AGREEMENT

1. Termination. Either party may terminate this agreement immediately and without notice if the other party breaches any material obligation under this agreement.

2. Payment. The Client shall pay the Provider a monthly fee of $5,000 within thirty days of receiving each invoice, and late payments shall incur a penalty fee.

3. Confidentiality. Each party shall keep confidential all proprietary information disclosed by the other party during the term of this agreement and thereafter.`

type memRepo struct {
	records map[string]legal.DocumentRecord
}

func (r *memRepo) Save(_ context.Context, rec *legal.DocumentRecord) error {
	r.records[rec.ID] = *rec
	return nil
}

func (r *memRepo) Get(_ context.Context, id string) (*legal.DocumentRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeDocumentNotFound, "document not found")
	}
	out := rec
	return &out, nil
}

func (r *memRepo) List(_ context.Context) ([]legal.DocumentRecord, error) {
	out := make([]legal.DocumentRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return errors.New(errors.ErrCodeDocumentNotFound, "document not found")
	}
	delete(r.records, id)
	return nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	eng := analyzer.New(patterns.Default(), nil, analyzer.DefaultOptions(), nil)
	svc := document.NewService(eng, &memRepo{records: make(map[string]legal.DocumentRecord)},
		nil, nil, nil, nil, nil, document.Options{})

	return NewRouter(config.ServerConfig{Mode: gin.TestMode}, RouterDeps{
		Service: svc,
		Logger:  logging.NewNopLogger(),
	})
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func uploadTestDocument(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/v1/documents",
		map[string]string{"filename": "contract.txt", "text": testContract})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var rec legal.DocumentRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	require.NotEmpty(t, rec.ID)
	return rec.ID
}

func TestUploadAndGetDocument(t *testing.T) {
	router := newTestRouter(t)
	id := uploadTestDocument(t, router)

	w := doJSON(router, http.MethodGet, "/api/v1/documents/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rec legal.DocumentRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "contract.txt", rec.Filename)
	assert.NotEmpty(t, rec.Analysis.Clauses)
	assert.NotContains(t, w.Body.String(), "SERVICE AGREEMENT")
}

func TestUploadRejectsMissingText(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/documents", map[string]string{"filename": "x.txt"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRejectsBlankText(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/documents",
		map[string]string{"filename": "x.txt", "text": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "DOC_002")
}

func TestGetUnknownDocumentReturns404(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/documents/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "DOC_001")
}

func TestDeleteDocument(t *testing.T) {
	router := newTestRouter(t)
	id := uploadTestDocument(t, router)

	w := doJSON(router, http.MethodDelete, "/api/v1/documents/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/documents/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAskQuestion(t *testing.T) {
	router := newTestRouter(t)
	id := uploadTestDocument(t, router)

	w := doJSON(router, http.MethodPost, "/api/v1/documents/"+id+"/qa",
		map[string]string{"question": "What happens upon termination of this contract?"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Answer, "Based on the document analysis:")
}

func TestAskRejectsMissingQuestion(t *testing.T) {
	router := newTestRouter(t)
	id := uploadTestDocument(t, router)

	w := doJSON(router, http.MethodPost, "/api/v1/documents/"+id+"/qa", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRiskEndpointIncludesDisplayBadges(t *testing.T) {
	router := newTestRouter(t)
	id := uploadTestDocument(t, router)

	w := doJSON(router, http.MethodGet, "/api/v1/documents/"+id+"/risk", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OverallRisk string `json:"overall_risk"`
		Clauses     []struct {
			RiskScore   int    `json:"risk_score"`
			DisplayRisk string `json:"display_risk"`
		} `json:"clauses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Clauses)
	for _, clause := range resp.Clauses {
		// Display buckets are coarser than the analytical level: a score
		// of 7 shows as medium while still counting as high-risk.
		if clause.RiskScore >= 8 {
			assert.Equal(t, "high", clause.DisplayRisk)
		} else if clause.RiskScore <= 3 {
			assert.Equal(t, "low", clause.DisplayRisk)
		} else {
			assert.Equal(t, "medium", clause.DisplayRisk)
		}
	}
}

func TestComplianceEndpoint(t *testing.T) {
	router := newTestRouter(t)
	id := uploadTestDocument(t, router)

	w := doJSON(router, http.MethodGet, "/api/v1/documents/"+id+"/compliance?jurisdiction=us", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var report legal.ComplianceReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "us", report.Jurisdiction)
	assert.NotZero(t, report.CheckedProvisions)
}

func TestCompareEndpoint(t *testing.T) {
	router := newTestRouter(t)
	id1 := uploadTestDocument(t, router)
	id2 := uploadTestDocument(t, router)

	w := doJSON(router, http.MethodPost, "/api/v1/documents/compare",
		map[string]string{"doc1_id": id1, "doc2_id": id2})
	require.Equal(t, http.StatusOK, w.Code)

	var report legal.ComparisonReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, report.Doc1Clauses, report.Doc2Clauses)
}

func TestEntitiesEndpoint(t *testing.T) {
	router := newTestRouter(t)
	id := uploadTestDocument(t, router)

	w := doJSON(router, http.MethodGet, "/api/v1/documents/"+id+"/entities", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Entities map[string][]string `json:"entities"`
		Summary  legal.EntitySummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Entities["amounts"], "$5,000")
	assert.True(t, resp.Summary.HasFinancialTerms)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")

	w = doJSON(router, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/documents", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiting(t *testing.T) {
	gin.SetMode(gin.TestMode)

	eng := analyzer.New(patterns.Default(), nil, analyzer.DefaultOptions(), nil)
	svc := document.NewService(eng, &memRepo{records: make(map[string]legal.DocumentRecord)},
		nil, nil, nil, nil, nil, document.Options{})

	limiter := middleware.NewRateLimiter(1, 2)
	defer limiter.Stop()
	router := NewRouter(config.ServerConfig{Mode: gin.TestMode}, RouterDeps{
		Service: svc,
		Logger:  logging.NewNopLogger(),
		Limiter: limiter,
	})

	var lastCode int
	for i := 0; i < 5; i++ {
		w := doJSON(router, http.MethodGet, "/api/v1/documents", nil)
		lastCode = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, lastCode)

	// Exempt paths are never throttled.
	w := doJSON(router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMultipartUpload(t *testing.T) {
	router := newTestRouter(t)

	var body bytes.Buffer
	boundary := "testboundary"
	body.WriteString("--" + boundary + "\r\n")
	body.WriteString(`Content-Disposition: form-data; name="file"; filename="agreement.txt"` + "\r\n")
	body.WriteString("Content-Type: text/plain\r\n\r\n")
	body.WriteString(testContract)
	body.WriteString("\r\n--" + boundary + "--\r\n")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", &body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, strings.Contains(w.Body.String(), "agreement.txt"))
}
