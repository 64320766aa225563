// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package company

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vitrinehq/vitrine/internal/platform/apperr"
	requestutil "github.com/vitrinehq/vitrine/internal/platform/request"
	"github.com/vitrinehq/vitrine/internal/platform/respond"
)

// errNoData covers both a missing and an unparsable section payload.
var errNoData = apperr.ValidationError("No data provided")

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.getInfo)
	router.Post("/", handler.updateSection)
	router.Delete("/", handler.deleteInfo)
}

func (handler *Handler) getInfo(writer http.ResponseWriter, request *http.Request) {
	info, err := handler.service.GetInfo(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, info)
}

// updateSection handles POST for all three profile sections. The dashboard
// sends application/json; older clients submit multipart form data with the
// section name and a JSON-encoded `data` field, and both shapes stay
// supported.
func (handler *Handler) updateSection(writer http.ResponseWriter, request *http.Request) {
	var rawSection string
	var payload []byte

	if requestutil.IsJSON(request) {
		var body struct {
			Section     string          `json:"section"`
			CompanyInfo json.RawMessage `json:"companyInfo"`
			Links       json.RawMessage `json:"links"`
			Members     json.RawMessage `json:"members"`
		}
		if err := requestutil.DecodeJSON(request, &body); err != nil {
			respond.Error(writer, request, err)
			return
		}

		rawSection = body.Section
		switch Section(body.Section) {
		case SectionBasic:
			payload = body.CompanyInfo
		case SectionSocial:
			payload = body.Links
		case SectionTeam:
			payload = body.Members
		}
	} else {
		if err := request.ParseMultipartForm(1 << 20); err != nil {
			respond.Error(writer, request, err)
			return
		}
		rawSection = request.FormValue("section")
		payload = []byte(request.FormValue("data"))
	}

	section, ok := ParseSection(rawSection)
	if !ok {
		respond.BadRequest(writer, "Invalid section")
		return
	}

	if len(payload) == 0 {
		respond.BadRequest(writer, "No data provided")
		return
	}

	info, err := handler.applySection(request, section, payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, info)
}

// applySection decodes the section payload and dispatches to the service.
func (handler *Handler) applySection(request *http.Request, section Section, payload []byte) (*Info, error) {
	ctx := request.Context()

	switch section {
	case SectionBasic:
		var basic BasicInfo
		if err := json.Unmarshal(payload, &basic); err != nil {
			return nil, errNoData
		}
		return handler.service.UpdateBasic(ctx, basic)

	case SectionSocial:
		var links []SocialLink
		if err := json.Unmarshal(payload, &links); err != nil {
			return nil, errNoData
		}
		return handler.service.UpdateSocialLinks(ctx, links)

	default:
		var members []TeamMember
		if err := json.Unmarshal(payload, &members); err != nil {
			return nil, errNoData
		}
		return handler.service.UpdateTeamMembers(ctx, members)
	}
}

func (handler *Handler) deleteInfo(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteInfo(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]interface{}{
		"success": true,
		"message": "Company information deleted successfully",
	})
}
