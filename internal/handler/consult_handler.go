package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Consultor is the consultation pipeline as the HTTP layer sees it.
type Consultor interface {
	Consultar(ctx context.Context, query string) (string, error)
}

// LogReader exposes the accumulated query log for the gated log endpoint.
type LogReader interface {
	Dump() (string, error)
}

type ConsultaHandler struct {
	consultor Consultor
	logs      LogReader
	logToken  string
}

func NewConsultaHandler(consultor Consultor, logs LogReader, logToken string) *ConsultaHandler {
	return &ConsultaHandler{consultor: consultor, logs: logs, logToken: logToken}
}

func (h *ConsultaHandler) Consultar(c *gin.Context) {
	requestID := uuid.NewString()
	c.Header("X-Request-ID", requestID)

	var req ConsultaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("invalid consultation body", "request_id", requestID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "O campo 'query' é obrigatório"})
		return
	}

	if h.consultor == nil {
		slog.Error("consultation received before the pipeline was initialized", "request_id", requestID)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "O consultor não foi carregado corretamente"})
		return
	}

	slog.Info("consultation received", "request_id", requestID, "query", req.Query)

	resposta, err := h.consultor.Consultar(c.Request.Context(), req.Query)
	if err != nil {
		slog.Error("consultation failed", "request_id", requestID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno ao processar a consulta"})
		return
	}

	c.JSON(http.StatusOK, ConsultaResponse{Response: resposta})
}

func (h *ConsultaHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "API do Consultor Inteligente está no ar!"})
}

func (h *ConsultaHandler) GetQueryLog(c *gin.Context) {
	token := c.Query("token")
	if h.logToken == "" || token != h.logToken {
		c.JSON(http.StatusForbidden, gin.H{"error": "Acesso negado"})
		return
	}

	logText, err := h.logs.Dump()
	if err != nil {
		slog.Error("error reading query log", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler o log de consultas"})
		return
	}

	c.String(http.StatusOK, logText)
}
