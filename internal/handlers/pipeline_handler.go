package handlers

import (
	"errors"
	"net/http"

	"quiz-api/internal/pipeline"

	"github.com/gin-gonic/gin"
)

type PipelineHandler struct {
	Client *pipeline.Client
}

func NewPipelineHandler(client *pipeline.Client) *PipelineHandler {
	return &PipelineHandler{Client: client}
}

// RunPipeline forwards a generation request to the pipeline container and
// relays its response. The request context bounds the multi-minute run.
func (h *PipelineHandler) RunPipeline(c *gin.Context) {
	var req pipeline.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Client.Run(c.Request.Context(), req)
	if errors.Is(err, pipeline.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pipeline not configured"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "pipeline_response": result})
		return
	}
	c.JSON(http.StatusOK, result)
}
