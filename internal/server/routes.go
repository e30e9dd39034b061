package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/bitsctl/internal/bits"
	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// bodyOverhead is the JSON framing allowed on top of max_input_digits.
const bodyOverhead = 1024

type decodeRequest struct {
	Hex  string `json:"hex" binding:"required"`
	Tree bool   `json:"tree"`
}

type decodeResponse struct {
	VersionSum   uint64 `json:"version_sum"`
	Value        int64  `json:"value"`
	BitsConsumed int    `json:"bits_consumed"`
	BitLength    int    `json:"bit_length"`
	Packets      int    `json:"packets"`
	Tree         string `json:"tree,omitempty"`
}

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.Name,
			"version": "0.0.1",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/v1/decode", s.handleDecode)
}

func (s *Server) handleDecode(c *gin.Context) {
	if s.maxDigits > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(s.maxDigits+bodyOverhead))
	}

	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Set(observability.ContextKeyDecodeKind, bits.Kind(bits.ErrInputTooLarge))
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large", "kind": "input_too_large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.svc.Process(strings.TrimSpace(req.Hex))
	if err != nil {
		kind := bits.Kind(err)
		c.Set(observability.ContextKeyDecodeKind, kind)
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "kind": kind})
		return
	}

	out := decodeResponse{
		VersionSum:   res.VersionSum,
		Value:        res.Value,
		BitsConsumed: res.BitsConsumed,
		BitLength:    res.BitLength,
		Packets:      res.Packets,
	}
	if req.Tree {
		out.Tree = res.Root.String()
	}
	c.JSON(http.StatusOK, out)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, bits.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case bits.Kind(err) == "internal":
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}
