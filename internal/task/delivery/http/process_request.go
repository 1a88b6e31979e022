package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	pkgErrors "task-intelligence/pkg/errors"
)

var (
	errMissingUUID     = pkgErrors.NewBadRequest("uuid is required")
	errInvalidPriority = pkgErrors.NewBadRequest("priority must be one of H, M, L or empty")
)

// processParseReq binds the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processResolveDateReq binds the date resolution request body.
func (h *handler) processResolveDateReq(c *gin.Context) (resolveDateReq, error) {
	var req resolveDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processParseRecurrenceReq binds the recurrence parse request body.
func (h *handler) processParseRecurrenceReq(c *gin.Context) (parseRecurrenceReq, error) {
	var req parseRecurrenceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processScoreReq binds and validates the urgency score request body.
func (h *handler) processScoreReq(c *gin.Context) (scoreReq, error) {
	var req scoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateTaskReq binds the create task request body.
func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListTasksReq binds the list query parameters.
func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAddDependencyReq binds the request body + URI param.
func (h *handler) processAddDependencyReq(c *gin.Context) (addDependencyReq, error) {
	var req addDependencyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.UUID = c.Param("uuid")
	if req.UUID == "" {
		return req, errMissingUUID
	}
	return req, nil
}

// processGenerateInstancesReq binds the optional request body + URI param.
func (h *handler) processGenerateInstancesReq(c *gin.Context) (generateInstancesReq, error) {
	var req generateInstancesReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	req.UUID = c.Param("uuid")
	if req.UUID == "" {
		return req, errMissingUUID
	}
	return req, nil
}
