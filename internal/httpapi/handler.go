package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cipherworks/cipherlab/internal/cipher"
)

// Handler serves the cipher API. It holds no per-request state.
type Handler struct {
	log *logrus.Logger
}

// NewHandler creates a handler logging through the given logger.
func NewHandler(log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{log: log}
}

// HealthCheck reports service liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "cipherlab API is running",
	})
}

// ListAlgorithms returns every registered cipher.
func (h *Handler) ListAlgorithms(c *gin.Context) {
	algorithms := cipher.Algorithms()
	infos := make([]AlgorithmInfo, 0, len(algorithms))
	for _, alg := range algorithms {
		infos = append(infos, AlgorithmInfo{
			Name:           alg.Name,
			Family:         string(alg.Family),
			KeyKind:        string(alg.KeyKind),
			Description:    alg.Description,
			SelfReciprocal: alg.SelfReciprocal,
		})
	}
	c.JSON(http.StatusOK, gin.H{"algorithms": infos})
}

// Transform runs one cipher over the request text.
func (h *Handler) Transform(c *gin.Context) {
	var req TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
		return
	}

	alg, ok := cipher.Lookup(req.Cipher)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "UNKNOWN_CIPHER",
			Message: fmt.Sprintf("unknown cipher %q", req.Cipher),
		})
		return
	}

	mode := cipher.Encrypt
	if req.Mode != "" {
		var err error
		mode, err = cipher.ParseMode(req.Mode)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    "BAD_MODE",
				Message: err.Error(),
			})
			return
		}
	}

	key, err := alg.ParseKey(req.Key)
	if err != nil {
		h.cipherError(c, err)
		return
	}

	var trace cipher.Trace
	output, err := alg.Run(req.Text, key, mode, &trace)
	if err != nil {
		h.cipherError(c, err)
		return
	}

	resp := TransformResponse{
		Cipher: alg.Name,
		Mode:   mode.String(),
		Output: output,
	}
	if req.Trace {
		resp.Steps = trace
	}
	c.JSON(http.StatusOK, resp)
}

// cipherError maps engine validation errors to 400 responses carrying
// the engine's error code.
func (h *Handler) cipherError(c *gin.Context, err error) {
	var cerr *cipher.Error
	if errors.As(err, &cerr) {
		h.log.WithFields(logrus.Fields{
			"code":   cerr.Code,
			"cipher": cerr.Algorithm,
		}).Debug("transform rejected")
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    string(cerr.Code),
			Message: cerr.Message,
		})
		return
	}

	h.log.WithError(err).Error("transform failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    "INTERNAL",
		Message: err.Error(),
	})
}
