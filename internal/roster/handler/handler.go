// Package handler exposes the roster over HTTP. Every response body is the
// operation's Result envelope; the HTTP status comes from the domain error
// behind a failed envelope.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"rollbook/internal/roster/filter"
	"rollbook/internal/roster/models"
	"rollbook/internal/roster/result"
	"rollbook/internal/roster/service"
	id "rollbook/pkg/domain"
	dErrors "rollbook/pkg/domain-errors"
	"rollbook/pkg/platform/httputil"
)

// Handler wires roster endpoints to the roster service.
type Handler struct {
	roster *service.Roster
	logger *slog.Logger
}

// New constructs a roster handler.
func New(roster *service.Roster, logger *slog.Logger) *Handler {
	return &Handler{roster: roster, logger: logger}
}

// Register mounts the roster routes. requireAuth guards the mutating ones;
// reads are open.
func (h *Handler) Register(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/schools", func(r chi.Router) {
		r.Get("/", h.handleListSchools)
		r.Get("/{id}", h.handleGetSchool)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.handleCreateSchool)
			r.Put("/{id}", h.handleUpdateSchool)
			r.Delete("/{id}", h.handleDeleteSchool)
		})
	})
	r.Route("/classes", func(r chi.Router) {
		r.Get("/", h.handleListClasses)
		r.Get("/{id}", h.handleGetClass)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.handleCreateClass)
			r.Put("/{id}", h.handleUpdateClass)
			r.Delete("/{id}", h.handleDeleteClass)
		})
	})
	r.Route("/people", func(r chi.Router) {
		r.Get("/", h.handleListPeople)
		r.Get("/search", h.handleSearchPeople)
		r.Get("/{id}", h.handleGetPerson)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.handleAddPerson)
			r.Put("/{id}", h.handleUpdatePerson)
			r.Delete("/{id}", h.handleDeletePerson)
			r.Post("/{id}/classes", h.handleAddClassesToPerson)
		})
	})
}

// writeResult serializes the envelope. Failed envelopes keep their body but
// take the status of the retained domain error.
func writeResult[T any](w http.ResponseWriter, res result.Result[T], successStatus int) {
	if !res.Success {
		httputil.WriteJSON(w, httputil.StatusOf(res.Err()), res)
		return
	}
	httputil.WriteJSON(w, successStatus, res)
}

// Schools

func (h *Handler) handleCreateSchool(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[createSchoolRequest](w, r)
	if !ok {
		return
	}
	writeResult(w, h.roster.CreateSchool(r.Context(), req.Name), http.StatusCreated)
}

func (h *Handler) handleListSchools(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.roster.ListSchools(r.Context()), http.StatusOK)
}

func (h *Handler) handleGetSchool(w http.ResponseWriter, r *http.Request) {
	schoolID, err := id.ParseSchoolID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	writeResult(w, h.roster.GetSchool(r.Context(), schoolID), http.StatusOK)
}

func (h *Handler) handleUpdateSchool(w http.ResponseWriter, r *http.Request) {
	schoolID, err := id.ParseSchoolID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[updateSchoolRequest](w, r)
	if !ok {
		return
	}
	res := h.roster.UpdateSchool(r.Context(), models.School{ID: schoolID, Name: req.Name})
	writeResult(w, res, http.StatusOK)
}

func (h *Handler) handleDeleteSchool(w http.ResponseWriter, r *http.Request) {
	schoolID, err := id.ParseSchoolID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	writeResult(w, h.roster.DeleteSchool(r.Context(), schoolID), http.StatusOK)
}

// Classes

func (h *Handler) handleCreateClass(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[createClassRequest](w, r)
	if !ok {
		return
	}
	writeResult(w, h.roster.CreateClass(r.Context(), req.Name, req.Description), http.StatusCreated)
}

func (h *Handler) handleListClasses(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.roster.ListClasses(r.Context()), http.StatusOK)
}

func (h *Handler) handleGetClass(w http.ResponseWriter, r *http.Request) {
	classID, err := id.ParseClassID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	writeResult(w, h.roster.GetClass(r.Context(), classID), http.StatusOK)
}

func (h *Handler) handleUpdateClass(w http.ResponseWriter, r *http.Request) {
	classID, err := id.ParseClassID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[updateClassRequest](w, r)
	if !ok {
		return
	}
	res := h.roster.UpdateClass(r.Context(), models.Class{ID: classID, Name: req.Name, Description: req.Description})
	writeResult(w, res, http.StatusOK)
}

func (h *Handler) handleDeleteClass(w http.ResponseWriter, r *http.Request) {
	classID, err := id.ParseClassID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	writeResult(w, h.roster.DeleteClass(r.Context(), classID), http.StatusOK)
}

// People

func (h *Handler) handleAddPerson(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[personPayload](w, r)
	if !ok {
		return
	}
	writeResult(w, h.roster.AddPerson(r.Context(), req.toNewPerson()), http.StatusCreated)
}

// handleListPeople serves GET /people. With ?field= and ?query= it applies
// the single dynamic filter; unrecognized fields fall through to the full
// list.
func (h *Handler) handleListPeople(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	query := r.URL.Query().Get("query")
	writeResult(w, h.roster.ListPeople(r.Context(), field, query), http.StatusOK)
}

// handleSearchPeople serves GET /people/search with one optional query
// parameter per criterion. A non-integer year_group is rejected; everything
// else flows into the conjunctive search.
func (h *Handler) handleSearchPeople(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := filter.Params{
		FirstName:  q.Get("first_name"),
		LastName:   q.Get("last_name"),
		Role:       q.Get("role"),
		SchoolName: q.Get("school_name"),
		ClassName:  q.Get("class_name"),
	}
	if raw := q.Get("year_group"); raw != "" {
		yg, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "year_group must be an integer"))
			return
		}
		params.YearGroup = &yg
	}
	writeResult(w, h.roster.SearchPeople(r.Context(), params), http.StatusOK)
}

func (h *Handler) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := id.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	writeResult(w, h.roster.GetPerson(r.Context(), personID), http.StatusOK)
}

func (h *Handler) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	personID, err := id.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[personPayload](w, r)
	if !ok {
		return
	}
	writeResult(w, h.roster.UpdatePerson(r.Context(), req.toPerson(personID)), http.StatusOK)
}

func (h *Handler) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	personID, err := id.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	writeResult(w, h.roster.DeletePerson(r.Context(), personID), http.StatusOK)
}

func (h *Handler) handleAddClassesToPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := id.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[assignClassesRequest](w, r)
	if !ok {
		return
	}
	writeResult(w, h.roster.AddClassesToPerson(r.Context(), personID, req.parsedClassIDs), http.StatusOK)
}
