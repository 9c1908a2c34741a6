package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/i18n"
	"github.com/u4rad/camp-service/internal/middleware"
	"github.com/u4rad/camp-service/internal/service"
)

// Services bundles the services behind the API routes. Routes of a nil
// service are not registered.
type Services struct {
	Companies      service.ResourceService[model.Company]
	Camps          service.ResourceService[model.Camp]
	Selections     SelectionService
	TestData       TestDataService
	Prices         service.ResourceService[model.Service]
	ServiceCosts   service.ResourceService[model.ServiceCost]
	Costs          CostService
	Summaries      SummaryService
	CopyPrices     service.ResourceService[model.CopyPrice]
	CompanyDetails service.ResourceService[model.CompanyDetails]
	Coupons        CouponService
	Quotes         QuoteService
	Estimations    EstimationService
	Users          UserService
	Auth           service.AuthService
}

// registerAPIRoutes mounts the business routes on api. Login and refresh
// stay public; with auth enabled everything else requires a bearer token.
func registerAPIRoutes(api *gin.RouterGroup, cfg *RouterConfig) {
	svc := cfg.Services

	protected := api
	if svc.Auth != nil {
		auth := NewAuthHandler(svc.Auth, cfg.LogSink)
		api.POST("/auth/login", auth.Login)
		api.POST("/auth/refresh", auth.RefreshToken)

		if cfg.EnableAuth {
			protected = api.Group("", middleware.JWTAuth(svc.Auth))
		}
		protected.POST("/auth/logout", auth.Logout)
	}

	registerResourceRoutes(protected, cfg)
}

func registerResourceRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	svc := cfg.Services

	if svc.Companies != nil {
		NewResourceHandler[model.Company](svc.Companies,
			WithAudit(cfg.LogSink, "", middleware.ActionCompanyDeleted),
		).Register(rg.Group("/companies"))
	}
	if svc.Camps != nil {
		NewResourceHandler[model.Camp](svc.Camps, WithCompanyFilter()).Register(rg.Group("/camps"))
	}
	if svc.Selections != nil {
		NewSelectionHandler(svc.Selections, cfg.LogSink).Register(rg.Group("/service-selection"))
	}
	if svc.TestData != nil {
		NewTestDataHandler(svc.TestData).Register(rg.Group("/test-case-data"))
	}
	if svc.Prices != nil {
		NewResourceHandler[model.Service](svc.Prices, ReadOnly()).Register(rg.Group("/prices"))
	}
	if svc.ServiceCosts != nil {
		NewResourceHandler[model.ServiceCost](svc.ServiceCosts, ReadOnly()).Register(rg.Group("/service_costs"))
	}
	if svc.Costs != nil {
		NewCostHandler(svc.Costs, cfg.LogSink).Register(rg.Group("/cost_details"))
	}
	if svc.Summaries != nil {
		NewSummaryHandler(svc.Summaries, cfg.LogSink).Register(rg.Group("/costsummaries"))
	}
	if svc.CopyPrices != nil {
		NewResourceHandler[model.CopyPrice](svc.CopyPrices).Register(rg.Group("/copyprice"))
	}
	if svc.CompanyDetails != nil {
		NewResourceHandler[model.CompanyDetails](svc.CompanyDetails).Register(rg.Group("/company-details"))
	}
	if svc.Coupons != nil {
		NewResourceHandler[model.DiscountCoupon](svc.Coupons).Register(rg.Group("/discount-coupons"))
		rg.GET("/validate-coupon/:code", NewCouponHandler(svc.Coupons).Validate)
	}
	if svc.Quotes != nil {
		rg.POST("/estimates/quote", NewQuoteHandler(svc.Quotes).Quote)
	}
	if svc.Estimations != nil {
		NewEstimationHandler(svc.Estimations, cfg.LogSink, cfg.MaxUploadBytes).Register(rg)
	}
	if svc.Users != nil {
		var revoker TokenRevoker
		if svc.Auth != nil {
			revoker = svc.Auth
		}
		NewUserHandler(svc.Users, revoker, cfg.LogSink).Register(rg.Group("/users"))
	}
}

func noRoute(c *gin.Context) {
	NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
}

func noMethod(c *gin.Context) {
	NewResponseBuilder(c).Error(http.StatusMethodNotAllowed, i18n.ErrKeyMethodNotSupported, nil)
}
