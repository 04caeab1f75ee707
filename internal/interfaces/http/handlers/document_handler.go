package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/application/document"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/riskengine"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/types/legal"
)

// DocumentHandler serves the document analysis endpoints.
type DocumentHandler struct {
	service *document.Service
}

// NewDocumentHandler builds the handler around the document service.
func NewDocumentHandler(service *document.Service) *DocumentHandler {
	return &DocumentHandler{service: service}
}

type uploadRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text" binding:"required"`
}

type compareRequest struct {
	Doc1ID string `json:"doc1_id" binding:"required"`
	Doc2ID string `json:"doc2_id" binding:"required"`
}

type questionRequest struct {
	Question string `json:"question" binding:"required"`
}

type answerResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// clauseBadge augments a clause with its display risk bucket, which is
// coarser than the analytical risk level and drives UI badge colors.
type clauseBadge struct {
	legal.ClauseRecord
	DisplayRisk legal.RiskLevel `json:"display_risk"`
}

type riskResponse struct {
	legal.RiskAssessment
	Clauses []clauseBadge `json:"clauses"`
}

type entitiesResponse struct {
	Entities map[string][]string `json:"entities"`
	Summary  legal.EntitySummary `json:"summary"`
}

// Upload accepts a document either as a multipart "file" part or as a
// JSON body, analyses it, and returns the stored record.
func (h *DocumentHandler) Upload(c *gin.Context) {
	filename, text, ok := h.readUpload(c)
	if !ok {
		return
	}

	rec, err := h.service.Upload(c.Request.Context(), filename, text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *DocumentHandler) readUpload(c *gin.Context) (filename, text string, ok bool) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			badRequest(c, "multipart upload requires a 'file' part")
			return "", "", false
		}
		f, err := fileHeader.Open()
		if err != nil {
			badRequest(c, "failed to open uploaded file")
			return "", "", false
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			badRequest(c, "failed to read uploaded file")
			return "", "", false
		}
		return fileHeader.Filename, string(data), true
	}

	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request body must contain a non-empty 'text' field")
		return "", "", false
	}
	if req.Filename == "" {
		req.Filename = "document.txt"
	}
	return req.Filename, req.Text, true
}

// List returns all stored documents without their text bodies.
func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs, "count": len(docs)})
}

// Get returns one stored document with its analysis.
func (h *DocumentHandler) Get(c *gin.Context) {
	rec, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Delete removes a document and its stored text.
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reanalyze runs a fresh analysis over the stored text.
func (h *DocumentHandler) Reanalyze(c *gin.Context) {
	rec, err := h.service.Reanalyze(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Compare reports the differences between two stored documents.
func (h *DocumentHandler) Compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request body must contain 'doc1_id' and 'doc2_id'")
		return
	}

	report, err := h.service.Compare(c.Request.Context(), req.Doc1ID, req.Doc2ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Ask answers a question about one stored document.
func (h *DocumentHandler) Ask(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request body must contain a non-empty 'question' field")
		return
	}

	answer, err := h.service.Ask(c.Request.Context(), c.Param("id"), req.Question)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, answerResponse{Question: req.Question, Answer: answer})
}

// Entities returns the extracted entities of a document with their
// summary view.
func (h *DocumentHandler) Entities(c *gin.Context) {
	entities, summary, err := h.service.ExtractEntities(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entitiesResponse{Entities: entities, Summary: summary})
}

// Risk returns the document risk assessment together with per-clause
// display badges.
func (h *DocumentHandler) Risk(c *gin.Context) {
	rec, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	clauses := make([]clauseBadge, len(rec.Analysis.Clauses))
	for i, clause := range rec.Analysis.Clauses {
		clauses[i] = clauseBadge{
			ClauseRecord: clause,
			DisplayRisk:  riskengine.DisplayBucket(clause.RiskScore),
		}
	}
	c.JSON(http.StatusOK, riskResponse{
		RiskAssessment: rec.Analysis.RiskAssessment,
		Clauses:        clauses,
	})
}

// Compliance checks the document against a jurisdiction rule set.
func (h *DocumentHandler) Compliance(c *gin.Context) {
	report, err := h.service.CheckCompliance(c.Request.Context(), c.Param("id"), c.Query("jurisdiction"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
