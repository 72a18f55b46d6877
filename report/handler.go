package report

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eupern/ai-cancer-chatbot/files"
	"github.com/eupern/ai-cancer-chatbot/sse"
)

// MaxReportChars caps the text handed to the engine. Upstream OCR output is
// already truncated to the same bound, so the two stay in sync.
const MaxReportChars = 3000

// AIClient is the minimal surface of the external text-generation collaborator
// the summary endpoint needs. Matches openai.Client.
type AIClient interface {
	StreamMessage(ctx context.Context, system, prompt string) (<-chan string, error)
}

type Handler struct {
	AI AIClient
}

func NewHandler(ai AIClient) *Handler {
	return &Handler{AI: ai}
}

// RegisterRoutes wires the analysis endpoints.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/report/analyze", h.Analyze)
	r.POST("/report/summary", h.Summary)
}

type analyzeReq struct {
	Text         string   `json:"text"`
	ImagingTexts []string `json:"imaging_texts"`
}

// Analyze accepts report text as JSON ({text, imaging_texts}) or as
// multipart/form-data with an optional PDF whose text layer is extracted and
// used when no pasted text was supplied. Empty input is not an error: the
// engine degrades to its baseline result.
func (h *Handler) Analyze(c *gin.Context) {
	text, imaging, ok := h.readInput(c)
	if !ok {
		return
	}
	res := Build(text, imaging)
	c.JSON(http.StatusOK, gin.H{"report": res})
}

// Summary builds the free-text prompt from the structured result plus the raw
// text and streams the external text-generation service's reply over SSE.
// Generation itself stays delegated; this handler only orchestrates the call.
func (h *Handler) Summary(c *gin.Context) {
	text, imaging, ok := h.readInput(c)
	if !ok {
		return
	}
	res := Build(text, imaging)
	prompt := BuildSummaryPrompt(res, text)

	stream, err := h.AI.StreamMessage(c.Request.Context(), Preamble(), prompt)
	if err != nil {
		log.Printf("[report][summary] generation call failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "text generation unavailable"})
		return
	}
	sse.Stream(c, stream)
}

// readInput pulls text + imaging texts out of either body shape and applies
// the char cap. Returns ok=false after it has already written an error reply.
func (h *Handler) readInput(c *gin.Context) (string, []string, bool) {
	ct := c.GetHeader("Content-Type")

	if strings.HasPrefix(ct, "multipart/form-data") {
		text := c.PostForm("text")
		imaging := c.PostFormArray("imaging_text")

		if upFile, err := c.FormFile("file"); err == nil && upFile != nil {
			ext := strings.ToLower(filepath.Ext(upFile.Filename))
			if ext != ".pdf" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "only pdf uploads are supported"})
				return "", nil, false
			}
			tmpDir := "./tmp"
			_ = os.MkdirAll(tmpDir, 0o755)
			tmp := filepath.Join(tmpDir, uuid.NewString()+ext)
			if err := c.SaveUploadedFile(upFile, tmp); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store upload"})
				return "", nil, false
			}
			defer os.Remove(tmp)

			// Pasted text wins over the file's text layer, like the manual
			// paste box in the original UI.
			if strings.TrimSpace(text) == "" {
				extracted, err := files.ExtractPDFText(tmp, MaxReportChars)
				if err != nil {
					log.Printf("[report][upload] pdf text extraction failed for %s: %v", upFile.Filename, err)
					c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not read pdf text"})
					return "", nil, false
				}
				text = extracted
			}
		}
		return capText(text), capAll(imaging), true
	}

	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return "", nil, false
	}
	return capText(req.Text), capAll(req.ImagingTexts), true
}

func capText(s string) string {
	if len(s) > MaxReportChars {
		return s[:MaxReportChars]
	}
	return s
}

func capAll(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		out = append(out, capText(t))
	}
	return out
}
