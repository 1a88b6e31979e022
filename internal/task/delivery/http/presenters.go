package http

import (
	"time"

	"task-intelligence/internal/model"
	"task-intelligence/internal/task"
	"task-intelligence/internal/taskparse"
	"task-intelligence/internal/urgency"
	"task-intelligence/pkg/recurrence"
)

// --- Request DTOs ---

type parseReq struct {
	Text string     `json:"text" binding:"required"`
	Now  *time.Time `json:"now"`
}

// ---

type resolveDateReq struct {
	Expression string     `json:"expression" binding:"required"`
	Reference  *time.Time `json:"reference"`
}

// ---

type parseRecurrenceReq struct {
	Code string `json:"code" binding:"required"`
}

// ---

type scoreReq struct {
	Priority      string     `json:"priority"`
	Due           *time.Time `json:"due"`
	Scheduled     *time.Time `json:"scheduled"`
	Start         *time.Time `json:"start"`
	Tags          []string   `json:"tags"`
	Entry         time.Time  `json:"entry"`
	BlockingCount int        `json:"blocking_count" binding:"min=0"`
	BlockedCount  int        `json:"blocked_count"  binding:"min=0"`
	Now           *time.Time `json:"now"`
}

func (r scoreReq) validate() error {
	if !model.Priority(r.Priority).IsValid() {
		return errInvalidPriority
	}
	return nil
}

func (r scoreReq) toSnapshot() urgency.Snapshot {
	return urgency.Snapshot{
		Priority:  model.Priority(r.Priority),
		Due:       r.Due,
		Scheduled: r.Scheduled,
		Start:     r.Start,
		Tags:      r.Tags,
		Entry:     r.Entry,
	}
}

// ---

type createTaskReq struct {
	Text  string     `json:"text" binding:"required"`
	Recur string     `json:"recur"`
	Until *time.Time `json:"until"`
}

func (r createTaskReq) toInput() task.CreateFromTextInput {
	return task.CreateFromTextInput{
		Text:  r.Text,
		Recur: r.Recur,
		Until: r.Until,
	}
}

// ---

type listTasksReq struct {
	Status  string `form:"status"  binding:"omitempty,oneof=pending completed deleted recurring"`
	Project string `form:"project"`
}

func (r listTasksReq) toInput() task.ListInput {
	return task.ListInput{
		Status:  model.Status(r.Status),
		Project: r.Project,
	}
}

// ---

type addDependencyReq struct {
	UUID      string `json:"-"` // populated from URI param
	DependsOn string `json:"depends_on" binding:"required"`
}

func (r addDependencyReq) toInput() task.AddDependencyInput {
	return task.AddDependencyInput{
		TaskUUID:  r.UUID,
		DependsOn: r.DependsOn,
	}
}

// ---

type generateInstancesReq struct {
	UUID  string `json:"-"` // populated from URI param
	Count int    `json:"count" binding:"min=0"`
}

func (r generateInstancesReq) toInput() task.GenerateInstancesInput {
	return task.GenerateInstancesInput{
		TemplateUUID: r.UUID,
		Count:        r.Count,
	}
}

// --- Response DTOs ---

// elementResp.Start and End are byte offsets into the fragment's source.
type elementResp struct {
	Category string `json:"category"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Text     string `json:"text"`
	Value    string `json:"value"`
}

func newElementResp(el taskparse.Element) elementResp {
	span := el.Span()
	resp := elementResp{
		Category: el.Category().String(),
		Start:    span.Start,
		End:      span.End,
		Text:     span.Text,
	}
	switch e := el.(type) {
	case taskparse.DateElement:
		resp.Value = e.Due.Format(time.RFC3339)
	case taskparse.PriorityElement:
		resp.Value = string(e.Priority)
	case taskparse.ProjectElement:
		resp.Value = e.Project
	case taskparse.TagElement:
		resp.Value = e.Tag
	}
	return resp
}

type parsedTaskResp struct {
	Source      string        `json:"source"`
	Description string        `json:"description"`
	Due         *time.Time    `json:"due,omitempty"`
	Priority    string        `json:"priority,omitempty"`
	Project     string        `json:"project,omitempty"`
	Tags        []string      `json:"tags"`
	Elements    []elementResp `json:"elements"`
}

func newParsedTaskResp(p taskparse.ParsedTask) parsedTaskResp {
	resp := parsedTaskResp{
		Source:      p.Source,
		Description: p.Description,
		Due:         p.Due,
		Priority:    string(p.Priority),
		Project:     p.Project,
		Tags:        nonNil(p.Tags),
		Elements:    make([]elementResp, 0, len(p.Elements)),
	}
	for _, el := range p.Elements {
		resp.Elements = append(resp.Elements, newElementResp(el))
	}
	return resp
}

type parseResp struct {
	Tasks []parsedTaskResp `json:"tasks"`
	Count int              `json:"count"`
}

func (h *handler) newParseResp(parsed []taskparse.ParsedTask) parseResp {
	resp := parseResp{Tasks: make([]parsedTaskResp, 0, len(parsed)), Count: len(parsed)}
	for _, p := range parsed {
		resp.Tasks = append(resp.Tasks, newParsedTaskResp(p))
	}
	return resp
}

type resolveDateResp struct {
	Expression string     `json:"expression"`
	Resolved   bool       `json:"resolved"`
	Date       *time.Time `json:"date,omitempty"`
}

type recurrenceResp struct {
	Code          string `json:"code"`
	Valid         bool   `json:"valid"`
	Amount        int    `json:"amount,omitempty"`
	Unit          string `json:"unit,omitempty"`
	ApproxSeconds int64  `json:"approx_seconds,omitempty"`
}

func newRecurrenceResp(code string, p recurrence.Pattern, ok bool) recurrenceResp {
	if !ok {
		return recurrenceResp{Code: code}
	}
	return recurrenceResp{
		Code:          p.String(),
		Valid:         true,
		Amount:        p.Amount,
		Unit:          string(p.Unit),
		ApproxSeconds: int64(p.ApproxDuration().Seconds()),
	}
}

type taskResp struct {
	UUID        string     `json:"uuid"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority,omitempty"`
	Project     string     `json:"project,omitempty"`
	Tags        []string   `json:"tags"`
	Entry       time.Time  `json:"entry"`
	Modified    time.Time  `json:"modified"`
	Due         *time.Time `json:"due,omitempty"`
	Scheduled   *time.Time `json:"scheduled,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	Until       *time.Time `json:"until,omitempty"`
	Recur       string     `json:"recur,omitempty"`
	Parent      string     `json:"parent,omitempty"`
	Imask       int        `json:"imask,omitempty"`
	Depends     []string   `json:"depends"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		UUID:        t.UUID,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Project:     t.Project,
		Tags:        nonNil(t.Tags),
		Entry:       t.Entry,
		Modified:    t.Modified,
		Due:         t.Due,
		Scheduled:   t.Scheduled,
		Start:       t.Start,
		End:         t.End,
		Until:       t.Until,
		Recur:       t.Recur,
		Parent:      t.Parent,
		Imask:       t.Imask,
		Depends:     nonNil(t.Depends),
	}
}

type rankedTaskResp struct {
	taskResp
	Urgency   float64           `json:"urgency"`
	Breakdown urgency.Breakdown `json:"breakdown"`
	Blocking  int               `json:"blocking"`
	Blocked   int               `json:"blocked"`
}

func newRankedTaskResp(t task.TaskWithUrgency) rankedTaskResp {
	return rankedTaskResp{
		taskResp:  newTaskResp(t.Task),
		Urgency:   t.Urgency,
		Breakdown: t.Breakdown,
		Blocking:  t.Blocking,
		Blocked:   t.Blocked,
	}
}

type createTaskResp struct {
	Tasks  []taskResp       `json:"tasks"`
	Parsed []parsedTaskResp `json:"parsed"`
	Count  int              `json:"count"`
}

func (h *handler) newCreateTaskResp(o task.CreateFromTextOutput) createTaskResp {
	resp := createTaskResp{
		Tasks:  make([]taskResp, 0, len(o.Tasks)),
		Parsed: make([]parsedTaskResp, 0, len(o.Parsed)),
		Count:  len(o.Tasks),
	}
	for _, t := range o.Tasks {
		resp.Tasks = append(resp.Tasks, newTaskResp(t))
	}
	for _, p := range o.Parsed {
		resp.Parsed = append(resp.Parsed, newParsedTaskResp(p))
	}
	return resp
}

type listTasksResp struct {
	Tasks []rankedTaskResp `json:"tasks"`
	Count int              `json:"count"`
}

func (h *handler) newListTasksResp(o task.ListOutput) listTasksResp {
	resp := listTasksResp{Tasks: make([]rankedTaskResp, 0, len(o.Tasks)), Count: o.Count}
	for _, t := range o.Tasks {
		resp.Tasks = append(resp.Tasks, newRankedTaskResp(t))
	}
	return resp
}

type instanceResp struct {
	taskResp
	CalendarLink string `json:"calendar_link,omitempty"`
}

type generateInstancesResp struct {
	Instances []instanceResp `json:"instances"`
	Count     int            `json:"count"`
}

func (h *handler) newGenerateInstancesResp(o task.GenerateInstancesOutput) generateInstancesResp {
	resp := generateInstancesResp{Instances: make([]instanceResp, 0, len(o.Instances)), Count: len(o.Instances)}
	for _, inst := range o.Instances {
		resp.Instances = append(resp.Instances, instanceResp{
			taskResp:     newTaskResp(inst),
			CalendarLink: o.CalendarLinks[inst.UUID],
		})
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
