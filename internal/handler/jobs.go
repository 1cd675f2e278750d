package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hirestack/job-board/backend/internal/domain"
	"github.com/hirestack/job-board/backend/internal/repository"
)

type listingRequest struct {
	CompanyName    string  `json:"companyName" validate:"required"`
	CompanyLogoURL *string `json:"companyLogoUrl"`
	JobPosition    string  `json:"jobPosition" validate:"required"`
	MonthlySalary  *int64  `json:"monthlySalary" validate:"omitempty,min=0"`
	JobType        string  `json:"jobType" validate:"required,oneof=Internship Full-Time Part-Time Contractual"`
	Remote         string  `json:"remote" validate:"required,oneof=Remote In-Office"`
	Location       *string `json:"location"`
	JobDescription string  `json:"jobDescription"`
	AboutCompany   string  `json:"aboutCompany"`
	SkillsRequired string  `json:"skillsRequired"`
	AdditionalInfo string  `json:"additionalInfo"`
}

func (req *listingRequest) toListing() *domain.Listing {
	return &domain.Listing{
		CompanyName:    req.CompanyName,
		CompanyLogoURL: req.CompanyLogoURL,
		JobPosition:    req.JobPosition,
		MonthlySalary:  req.MonthlySalary,
		JobType:        domain.JobType(req.JobType),
		Remote:         domain.WorkMode(req.Remote),
		Location:       req.Location,
		JobDescription: req.JobDescription,
		AboutCompany:   req.AboutCompany,
		SkillsRequired: req.SkillsRequired,
		AdditionalInfo: req.AdditionalInfo,
	}
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req listingRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	listing := req.toListing()
	listing.UserID = r.Context().Value(UserIDCtxKey).(int64)

	if err := h.repository.CreateListing(listing); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidEnumValue):
			h.badRequestMessage(w, r, "Invalid job type or remote option")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, listing)
}

// parseListingListQuery 解析列表接口的查询参数。
// 非法的数字一律当作未提供，缺省值由 repository 统一填充。
func parseListingListQuery(values url.Values) repository.ListListingsOptions {
	opts := repository.ListListingsOptions{
		Search:   values.Get("search"),
		Location: values.Get("location"),
		JobType:  values.Get("jobType"),
		Remote:   values.Get("remote"),
		Sort:     values.Get("sort"),
		Order:    values.Get("order"),
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil {
		opts.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil {
		opts.Limit = limit
	}

	return opts
}

func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	opts := parseListingListQuery(r.URL.Query())

	listings, err := h.repository.ListListings(opts)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidSortField):
			h.badRequestMessage(w, r, "Invalid sort field")
		case errors.Is(err, repository.ErrInvalidSortOrder):
			h.badRequestMessage(w, r, "Invalid sort order")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, listings)
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobIDParam := chi.URLParam(r, "id")
	jobID, err := strconv.ParseInt(jobIDParam, 10, 64)
	if err != nil {
		h.notFound(w, r, "Job listing not found")
		return
	}

	listing, err := h.repository.GetListingByID(jobID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "Job listing not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, listing)
}

func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var req listingRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 所有权中间件已经加载并校验过目标职位
	job := r.Context().Value(JobCtxKey).(*domain.Listing)

	listing := req.toListing()
	listing.ID = job.ID
	listing.UserID = job.UserID

	changed, err := h.repository.UpdateListing(listing)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidEnumValue):
			h.badRequestMessage(w, r, "Invalid job type or remote option")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if !changed {
		h.notFound(w, r, "Job listing not found")
		return
	}

	h.writeJSON(w, r, http.StatusOK, messageResponse{Message: "Job listing updated successfully"})
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtxKey).(*domain.Listing)

	changed, err := h.repository.DeleteListing(job.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !changed {
		h.notFound(w, r, "Job listing not found")
		return
	}

	h.writeJSON(w, r, http.StatusOK, messageResponse{Message: "Job listing deleted successfully"})
}
