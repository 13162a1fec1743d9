package ui

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ajltrack/internal/errors"
)

type loginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type searchRequest struct {
	Aircraft string `json:"aircraft"`
	System   string `json:"system"`
}

type updateStatusRequest struct {
	AJL    string `json:"ajl"`
	Status string `json:"status"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handleMeta(c *gin.Context) {
	c.JSON(http.StatusOK, s.service.Meta(c.Request.Context()))
}

func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result := s.service.Search(c.Request.Context(), req.Aircraft, req.System)
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	ok, err := s.service.Login(c.Request.Context(), req.ID, req.Password)
	if err != nil {
		log.Printf("[API] login unavailable: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "credential list unavailable",
		})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "invalid id or password",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleUpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	summary, err := s.service.UpdateStatus(c.Request.Context(), req.AJL, req.Status)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.GetCode(err) == errors.CodeValidationError {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "summary": summary})
}

func (s *Server) handleStatusSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.service.Summary(c.Request.Context()))
}
