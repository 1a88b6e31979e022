package http

import (
	"github.com/gin-gonic/gin"

	"task-intelligence/pkg/recurrence"
	"task-intelligence/pkg/response"
)

// Parse godoc
// @Summary     Parse task text
// @Description Splits free text into tasks and extracts inline metadata. Element start/end are byte offsets into source. Nothing is stored.
// @Tags        Engine
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	parsed := h.parser.ParseMany(req.Text, h.now(req.Now))
	response.OK(c, h.newParseResp(parsed))
}

// ResolveDate godoc
// @Summary     Resolve a date expression
// @Description Resolves ISO dates, relative offsets and named dates against a reference time.
// @Tags        Engine
// @Accept      json
// @Produce     json
// @Param       body body resolveDateReq true "Expression and optional reference"
// @Success     200  {object} resolveDateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/dates/resolve [POST]
func (h *handler) ResolveDate(c *gin.Context) {
	req, err := h.processResolveDateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	resp := resolveDateResp{Expression: req.Expression}
	if t, ok := h.dates.Resolve(req.Expression, h.now(req.Reference)); ok {
		resp.Resolved = true
		resp.Date = &t
	}
	response.OK(c, resp)
}

// ParseRecurrence godoc
// @Summary     Parse a recurrence code
// @Description Validates a code of the form P<n><D|W|M|Y>.
// @Tags        Engine
// @Accept      json
// @Produce     json
// @Param       body body parseRecurrenceReq true "Recurrence code"
// @Success     200  {object} recurrenceResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/recurrence/parse [POST]
func (h *handler) ParseRecurrence(c *gin.Context) {
	req, err := h.processParseRecurrenceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	p, ok := recurrence.Parse(req.Code)
	response.OK(c, newRecurrenceResp(req.Code, p, ok))
}

// Score godoc
// @Summary     Score urgency
// @Description Computes the urgency breakdown of a task snapshot.
// @Tags        Engine
// @Accept      json
// @Produce     json
// @Param       body body scoreReq true "Task snapshot"
// @Success     200  {object} urgency.Breakdown
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/urgency/score [POST]
func (h *handler) Score(c *gin.Context) {
	req, err := h.processScoreReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.scorer.Breakdown(req.toSnapshot(), req.BlockingCount, req.BlockedCount, h.now(req.Now)))
}

// Create godoc
// @Summary     Create tasks from text
// @Description Parses one or many tasks from free text and stores them. A recur code turns them into recurrence templates.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Task text"
// @Success     200  {object} createTaskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateFromText(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromText: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateTaskResp(output))
}

// List godoc
// @Summary     List tasks by urgency
// @Description Returns tasks ranked by urgency, highest first. Defaults to pending tasks.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       status  query string false "pending, completed, deleted or recurring"
// @Param       project query string false "Project filter"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListTasksResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task with its urgency breakdown.
// @Tags        Tasks
// @Produce     json
// @Param       uuid path string true "Task UUID"
// @Success     200 {object} rankedTaskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{uuid} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	uuid := c.Param("uuid")
	if uuid == "" {
		response.Error(c, errMissingUUID, nil)
		return
	}

	output, err := h.uc.Get(ctx, uuid)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newRankedTaskResp(output))
}

// AddDependency godoc
// @Summary     Add a dependency
// @Description Makes the task depend on another task. Rejected with 409 when the edge would close a cycle.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       uuid path string           true "Task UUID"
// @Param       body body addDependencyReq true "Dependency"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - dependency cycle"
// @Router      /api/v1/tasks/{uuid}/dependencies [POST]
func (h *handler) AddDependency(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddDependencyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddDependency(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddDependency: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(output))
}

// GenerateInstances godoc
// @Summary     Generate recurring instances
// @Description Stores the next instances of a recurrence template, continuing its numbering.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       uuid path string               true  "Template UUID"
// @Param       body body generateInstancesReq false "Instance count"
// @Success     200 {object} generateInstancesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{uuid}/instances [POST]
func (h *handler) GenerateInstances(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateInstancesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GenerateInstances(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateInstances: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGenerateInstancesResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks a pending task as completed.
// @Tags        Tasks
// @Produce     json
// @Param       uuid path string true "Task UUID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - task is not pending"
// @Router      /api/v1/tasks/{uuid}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	uuid := c.Param("uuid")
	if uuid == "" {
		response.Error(c, errMissingUUID, nil)
		return
	}

	output, err := h.uc.Complete(ctx, uuid)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(output))
}

