package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffio-dev/roster-manager/backend/internal/domain"
	"github.com/staffio-dev/roster-manager/backend/internal/utils"
)

func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取班次列表成功", shifts)
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)
	h.successResponse(w, r, "获取班次成功", shift)
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name" validate:"required"`
		StartTime    string `json:"startTime" validate:"required"`
		EndTime      string `json:"endTime" validate:"required"`
		DepartmentID int64  `json:"departmentID" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift := &domain.Shift{
		Name:         req.Name,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		DepartmentID: req.DepartmentID,
	}

	// 只检查时间格式，结束时间早于开始时间表示跨夜班次，是合法的
	if err := utils.ValidateShiftTime(shift); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateShift(shift); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shifts_name_key":
				h.errorResponse(w, r, "班次名称已存在")
			case "shifts_department_id_fkey":
				h.errorResponse(w, r, "部门不存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "创建班次成功", shift)
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		Name      *string `json:"name"`
		StartTime *string `json:"startTime"`
		EndTime   *string `json:"endTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}

	if err := utils.ValidateShiftTime(shift); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateShift(shift); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shifts_name_key":
				h.errorResponse(w, r, "班次名称已存在")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新班次失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新班次成功", shift)
}

// DeleteShift 删除班次。已发布排班表中引用该班次的格子会变成悬空引用，
// 展示时按"未分配"处理，这里不做级联清理
func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if err := h.repository.DeleteShift(shift.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除班次成功", nil)
}

func (h *Handler) GetAllDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.repository.GetAllDepartments()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取部门列表成功", departments)
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	department := &domain.Department{
		Name: req.Name,
	}

	if err := h.repository.CreateDepartment(department); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "departments_name_key":
				h.errorResponse(w, r, "部门名称已存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "创建部门成功", department)
}
