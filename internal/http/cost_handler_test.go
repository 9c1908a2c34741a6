package http

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/mocks"
	"github.com/u4rad/camp-service/internal/service"
)

func TestCostHandler_Distribute(t *testing.T) {
	sink := &recordingSink{}
	costs := &mocks.MockCostService{}
	costs.On("Distribute", mock.Anything, mock.MatchedBy(func(d *model.CostDistribution) bool {
		return d.CompanyID == 1 && len(d.Packages) == 1 && d.Packages[0].Travel == 200
	})).Return(2, nil)
	router := NewRouter(RouterConfig{Services: Services{Costs: costs}, LogSink: sink})

	w := doJSON(router, http.MethodPost, "/api/cost_details", `{"company_id": 1, "packages": [
		{"package_name": "Basic", "travel": 200, "stay": 40, "food": 30, "total_cost": 270, "services": ["CBC", "Lipid"]}
	]}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.CostDistributionResponse
	decodeData(t, w, &resp)
	assert.Equal(t, "Package costs saved successfully", resp.Message)
	assert.Equal(t, 2, resp.Saved)
	assert.True(t, sink.has("costs_distributed"))
}

func TestCostHandler_Distribute_Validation(t *testing.T) {
	costs := &mocks.MockCostService{}
	router := newTestRouter(Services{Costs: costs})

	w := doJSON(router, http.MethodPost, "/api/cost_details", `{"packages": []}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Contains(t, resp.Errors, "company_id")
	assert.NotContains(t, resp.Errors, "packages")
	costs.AssertNotCalled(t, "Distribute", mock.Anything, mock.Anything)
}

func TestCostHandler_Distribute_NoPackages(t *testing.T) {
	costs := &mocks.MockCostService{}
	costs.On("Distribute", mock.Anything, mock.Anything).Return(0, nil)
	router := newTestRouter(Services{Costs: costs})

	w := doJSON(router, http.MethodPost, "/api/cost_details", `{"company_id": 4}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.CostDistributionResponse
	decodeData(t, w, &resp)
	assert.Zero(t, resp.Saved)
}

func TestCostHandler_List(t *testing.T) {
	costs := &mocks.MockCostService{}
	costs.On("ListDetails", mock.Anything, int64(1)).
		Return([]model.CostDetails{{ID: 1, CompanyID: 1, ServiceName: "CBC", Travel: 200}}, nil)
	router := newTestRouter(Services{Costs: costs})

	w := doJSON(router, http.MethodGet, "/api/cost_details?company_id=1", "")

	require.Equal(t, http.StatusOK, w.Code)
	var rows []model.CostDetails
	decodeData(t, w, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(200), rows[0].Travel)
}

func TestCostHandler_Sheet(t *testing.T) {
	costs := &mocks.MockCostService{}
	costs.On("Sheet", mock.Anything, int64(1)).Return([]model.PackageSheetLine{
		{PackageName: "Basic", TPrice: decimal.NewFromInt(585)},
	}, nil)
	costs.On("Sheet", mock.Anything, int64(2)).Return(nil, service.ErrNotFound)
	router := newTestRouter(Services{Costs: costs})

	w := doJSON(router, http.MethodGet, "/api/cost_details/sheet?company_id=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var sheet dto.PackageSheetResponse
	decodeData(t, w, &sheet)
	assert.Equal(t, int64(1), sheet.CompanyID)
	require.Len(t, sheet.Packages, 1)
	assert.True(t, decimal.NewFromInt(585).Equal(sheet.Packages[0].TPrice))

	w = doJSON(router, http.MethodGet, "/api/cost_details/sheet?company_id=2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodGet, "/api/cost_details/sheet?company_id=x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
