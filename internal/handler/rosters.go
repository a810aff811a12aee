package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/staffio-dev/roster-manager/backend/internal/calendar"
	"github.com/staffio-dev/roster-manager/backend/internal/domain"
	"github.com/staffio-dev/roster-manager/backend/internal/roster"
	"github.com/staffio-dev/roster-manager/backend/internal/utils"
)

type rosterDayView struct {
	Date    string `json:"date"`
	WeekOff bool   `json:"weekOff"` // 周休日渲染为固定的"休"标记，不是可编辑的格子
}

type rosterSessionView struct {
	ID                  string               `json:"id"`
	Year                int                  `json:"year"`
	Month               int                  `json:"month"`
	Days                []rosterDayView      `json:"days"`
	SelectedShiftID     int64                `json:"selectedShiftID"`
	SelectedEmployeeIDs []int64              `json:"selectedEmployeeIDs"`
	Entries             []domain.RosterEntry `json:"entries"`
}

func (h *Handler) rosterSessionView(session *roster.Session) rosterSessionView {
	month := session.Month()

	days := make([]rosterDayView, 0)
	for _, day := range month.Days() {
		days = append(days, rosterDayView{
			Date:    calendar.DateOf(day).String(),
			WeekOff: month.IsWeekOff(day),
		})
	}

	return rosterSessionView{
		ID:                  session.ID(),
		Year:                month.Year,
		Month:               int(month.Month),
		Days:                days,
		SelectedShiftID:     session.SelectedShift(),
		SelectedEmployeeIDs: session.SelectedEmployees(),
		Entries:             session.MonthEntries(),
	}
}

func (h *Handler) CreateRosterSession(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)

	var req struct {
		Year  int `json:"year" validate:"required"`
		Month int `json:"month" validate:"required,min=1,max=12"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 班次目录在会话创建时固定下来，之后的目录变更不影响已打开的会话
	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	month := calendar.NewMonth(req.Year, time.Month(req.Month), calendar.WeekOffDaysFromInts(h.config.Roster.WeekOffDays)...)
	session := h.rosterSessions.Create(myInfo.ID, month, roster.NewCatalog(shifts))

	h.successResponse(w, r, "创建排班会话成功", h.rosterSessionView(session))
}

func (h *Handler) GetRosterSession(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(RosterSessionCtx).(*roster.Session)

	h.successResponse(w, r, "获取排班会话成功", h.rosterSessionView(session))
}

func (h *Handler) DeleteRosterSession(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(RosterSessionCtx).(*roster.Session)

	h.rosterSessions.Delete(session.ID())

	h.successResponse(w, r, "关闭排班会话成功", nil)
}

func (h *Handler) RosterSessionNextMonth(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(RosterSessionCtx).(*roster.Session)

	session.NextMonth()

	h.successResponse(w, r, "切换月份成功", h.rosterSessionView(session))
}

func (h *Handler) RosterSessionPrevMonth(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(RosterSessionCtx).(*roster.Session)

	session.PrevMonth()

	h.successResponse(w, r, "切换月份成功", h.rosterSessionView(session))
}

func (h *Handler) SelectRosterShift(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(RosterSessionCtx).(*roster.Session)

	var req struct {
		ShiftID int64 `json:"shiftID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	session.SelectShift(req.ShiftID)

	h.successResponse(w, r, "选择班次成功", nil)
}

func (h *Handler) ToggleRosterSelection(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(RosterSessionCtx).(*roster.Session)

	var req struct {
		EmployeeID int64 `json:"employeeID" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	selected := session.ToggleEmployee(req.EmployeeID)

	h.successResponse(w, r, "切换勾选状态成功", map[string]bool{"selected": selected})
}

func (h *Handler) SelectAllRosterSelection(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(RosterSessionCtx).(*roster.Session)

	// 全选以当前的团队名单为准
	team, err := h.repository.GetEmployeesByManager(session.ManagerID())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ids := make([]int64, 0, len(team))
	for _, employee := range team {
		ids = append(ids, employee.ID)
	}

	session.SelectAllEmployees(ids)

	h.successResponse(w, r, "全选成功", session.SelectedEmployees())
}

func (h *Handler) ClearRosterSelection(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(RosterSessionCtx).(*roster.Session)

	session.ClearSelection()

	h.successResponse(w, r, "清空勾选成功", nil)
}

// AssignRosterCell 分配或清除单个格子，shiftID 为 0 时表示清除
func (h *Handler) AssignRosterCell(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(RosterSessionCtx).(*roster.Session)

	var req struct {
		EmployeeID int64  `json:"employeeID" validate:"required"`
		Day        string `json:"day" validate:"required"`
		ShiftID    int64  `json:"shiftID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	day, err := time.Parse("2006-01-02", req.Day)
	if err != nil {
		h.errorResponse(w, r, "日期格式无效")
		return
	}

	if err := session.Assign(req.EmployeeID, calendar.DateOf(day), req.ShiftID); err != nil {
		switch {
		case errors.Is(err, roster.ErrUnknownShift):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "排班成功", nil)
}

func (h *Handler) BulkAssignRoster(w http.ResponseWriter, r *http.Request) {
	session := r.Context().Value(RosterSessionCtx).(*roster.Session)

	report, err := session.BulkAssign()
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrNoShiftSelected),
			errors.Is(err, roster.ErrNoEmployeesSelected),
			errors.Is(err, roster.ErrUnknownShift):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "批量排班成功", report)
}

// PublishRoster 把当前月份的排班结果持久化，并给经理发送确认邮件
func (h *Handler) PublishRoster(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)
	session := r.Context().Value(RosterSessionCtx).(*roster.Session)

	month := session.Month()
	monthlyRoster := &domain.MonthlyRoster{
		Year:      month.Year,
		Month:     int(month.Month),
		ManagerID: session.ManagerID(),
		Entries:   session.MonthEntries(),
	}

	if err := h.repository.InsertMonthlyRoster(monthlyRoster); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 准备邮件
	mailMessage := domain.MailMessage{
		Type: "roster_published",
		To:   myInfo.Email,
		Data: domain.RosterPublishedMailData{
			FullName:   myInfo.FullName,
			Year:       monthlyRoster.Year,
			Month:      monthlyRoster.Month,
			EntryCount: len(monthlyRoster.Entries),
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "发布排班表成功", monthlyRoster)
}

func (h *Handler) GetPublishedRoster(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		h.errorResponse(w, r, "年份无效")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		h.errorResponse(w, r, "月份无效")
		return
	}

	if err := utils.ValidateRosterMonth(year, month); err != nil {
		h.badRequest(w, r, err)
		return
	}

	monthlyRoster, err := h.repository.GetMonthlyRoster(myInfo.ID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "该月份还没有发布排班表", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "获取排班表成功", monthlyRoster)
}
