package http

import (
	"greentracker-backend/internal/adapter/middleware"
	domainEvidence "greentracker-backend/internal/domain/evidence"
	domainUser "greentracker-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// Handlers groups every resource handler mounted under /api.
type Handlers struct {
	Auth         *AuthHandler
	Indicators   *IndicatorHandler
	Categories   *CategoryHandler
	Criteria     *CriterionHandler
	Activities   *ActivityHandler
	Evidence     *EvidenceHandler
	Feedback     *FeedbackHandler
	Units        *UnitHandler
	Admins       *AdminHandler
	UploadPeriod *UploadPeriodHandler
	Reports      *ReportHandler

	// LoginLimit throttles POST /auth/login when set.
	LoginLimit echo.MiddlewareFunc
}

const (
	roleUnit       = domainUser.RoleUnit
	roleAdmin      = domainUser.RoleAdmin
	roleSuperadmin = domainUser.RoleSuperadmin
	roleAny        = middleware.RoleAny
)

// Register mounts the API. authn resolves bearer tokens; extra runs after the role check on every protected route.
func Register(api *echo.Group, h Handlers, authn middleware.Authenticator, extra ...echo.MiddlewareFunc) {
	var loginMW []echo.MiddlewareFunc
	if h.LoginLimit != nil {
		loginMW = append(loginMW, h.LoginLimit)
	}
	api.POST("/auth/login", h.Auth.Login, loginMW...)

	guard := func(roles ...domainUser.Role) []echo.MiddlewareFunc {
		mw := []echo.MiddlewareFunc{middleware.Auth(authn), middleware.Allow(roles...)}
		return append(mw, extra...)
	}

	api.POST("/indicators", h.Indicators.Create, guard(roleSuperadmin)...)
	api.GET("/indicators", h.Indicators.List, guard(roleAny)...)
	api.GET("/indicators/:index", h.Indicators.Get, guard(roleAny)...)
	api.PUT("/indicators/:index", h.Indicators.Replace, guard(roleSuperadmin)...)
	api.DELETE("/indicators/:index", h.Indicators.Delete, guard(roleSuperadmin)...)

	api.POST("/indicators/:index/categories", h.Categories.Create, guard(roleSuperadmin)...)
	api.GET("/indicators/:index/categories", h.Categories.List, guard(roleAny)...)
	api.GET("/indicators/:index/categories/:name", h.Categories.Get, guard(roleAny)...)
	api.PUT("/indicators/:index/categories/:name", h.Categories.Replace, guard(roleSuperadmin)...)
	api.DELETE("/indicators/:index/categories/:name", h.Categories.Delete, guard(roleSuperadmin)...)

	api.POST("/indicators/:index/criteria", h.Criteria.Create, guard(roleSuperadmin)...)
	api.GET("/indicators/:index/criteria", h.Criteria.List, guard(roleAny)...)
	api.GET("/indicators/:index/criteria/:subindex", h.Criteria.Get, guard(roleAny)...)
	api.PUT("/indicators/:index/criteria/:subindex", h.Criteria.Replace, guard(roleSuperadmin)...)
	api.DELETE("/indicators/:index/criteria/:subindex", h.Criteria.Delete, guard(roleSuperadmin)...)

	api.POST("/activities", h.Activities.Create, guard(roleUnit)...)
	api.GET("/activities", h.Activities.List, guard(roleAny)...)
	api.GET("/activities/:id", h.Activities.Get, guard(roleAny)...)
	api.PUT("/activities/:id", h.Activities.Replace, guard(roleUnit)...)
	api.DELETE("/activities/:id", h.Activities.Delete, guard(roleAny)...)

	for _, typ := range []domainEvidence.Type{domainEvidence.TypeImage, domainEvidence.TypeDocument, domainEvidence.TypeLink} {
		base := "/activity/:activityId/" + string(typ) + "-evidence"
		if typ == domainEvidence.TypeLink {
			api.POST(base, h.Evidence.CreateLink, guard(roleUnit)...)
			api.PUT(base+"/:evidenceNumber", h.Evidence.ReplaceLink, guard(roleUnit)...)
		} else {
			api.POST(base, h.Evidence.CreateFile(typ), guard(roleUnit)...)
			api.PUT(base+"/:evidenceNumber", h.Evidence.ReplaceFile(typ), guard(roleUnit)...)
		}
		api.GET(base, h.Evidence.List(typ), guard(roleAny)...)
		api.GET(base+"/:evidenceNumber", h.Evidence.Get(typ), guard(roleAny)...)
		api.DELETE(base+"/:evidenceNumber", h.Evidence.Delete(typ), guard(roleAny)...)
	}
	api.GET("/activity/:activityId/evidence", h.Evidence.List(""), guard(roleAny)...)
	api.GET("/activity/:activityId/evidence/:evidenceNumber", h.Evidence.Get(""), guard(roleAny)...)

	fb := "/activity/:activityId/evidence/:evidenceNumber/feedback"
	api.POST(fb, h.Feedback.Create, guard(roleAdmin, roleSuperadmin)...)
	api.GET(fb, h.Feedback.List, guard(roleAny)...)
	api.GET(fb+"/:feedback", h.Feedback.Get, guard(roleAny)...)
	api.PUT(fb+"/:feedback", h.Feedback.Replace, guard(roleAdmin, roleSuperadmin)...)
	api.DELETE(fb+"/:feedback", h.Feedback.Delete, guard(roleAdmin, roleSuperadmin)...)

	api.GET("/units/me", h.Units.Me, guard(roleUnit)...)
	api.PUT("/units/me", h.Units.ReplaceMe, guard(roleUnit)...)
	api.GET("/units/me/activities", h.Activities.List, guard(roleUnit)...)
	api.POST("/units/me/activities", h.Activities.Create, guard(roleUnit)...)
	api.GET("/units/me/activities/:id", h.Activities.Get, guard(roleUnit)...)
	api.PUT("/units/me/activities/:id", h.Activities.Replace, guard(roleUnit)...)
	api.DELETE("/units/me/activities/:id", h.Activities.Delete, guard(roleUnit)...)
	api.POST("/units", h.Units.Create, guard(roleAdmin, roleSuperadmin)...)
	api.GET("/units", h.Units.List, guard(roleAdmin, roleSuperadmin)...)
	api.GET("/units/:id", h.Units.Get, guard(roleAdmin, roleSuperadmin)...)
	api.PUT("/units/:id", h.Units.Replace, guard(roleAdmin, roleSuperadmin)...)
	api.DELETE("/units/:id", h.Units.Delete, guard(roleAdmin, roleSuperadmin)...)

	api.GET("/admins/me", h.Admins.Me, guard(roleAdmin, roleSuperadmin)...)
	api.PUT("/admins/me", h.Admins.ReplaceMe, guard(roleAdmin, roleSuperadmin)...)
	api.POST("/admins", h.Admins.Create, guard(roleSuperadmin)...)
	api.GET("/admins", h.Admins.List, guard(roleSuperadmin)...)
	api.GET("/admins/:id", h.Admins.Get, guard(roleSuperadmin)...)
	api.PUT("/admins/:id", h.Admins.Replace, guard(roleSuperadmin)...)
	api.DELETE("/admins/:id", h.Admins.Delete, guard(roleSuperadmin)...)

	api.GET("/upload-period", h.UploadPeriod.Get, guard(roleAny)...)
	api.PUT("/upload-period", h.UploadPeriod.Replace, guard(roleSuperadmin)...)

	api.GET("/reports/:criteria", h.Reports.Criteria, guard(roleAdmin, roleSuperadmin)...)
}
