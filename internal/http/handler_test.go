package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/mocks"
	"github.com/u4rad/camp-service/internal/repository"
	"github.com/u4rad/camp-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(svc Services) *gin.Engine {
	return NewRouter(RouterConfig{Services: svc})
}

func doRequest(router http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	if body == "" {
		return doRequest(router, method, path, nil, nil)
	}
	return doRequest(router, method, path, bytes.NewBufferString(body), nil)
}

// decodeData unmarshals the data field of a success envelope into v.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) dto.SuccessResponse {
	t.Helper()
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	return resp
}

const validCamp = `{"company": 1, "location": "Hall A", "district": "Pune", "state": "MH",
	"pin_code": "411001", "start_date": "2024-05-01", "end_date": "2024-05-03"}`

func TestResourceHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*mocks.MockResourceService[model.Camp])
		expectedStatus int
		expectedLen    int
	}{
		{
			name: "all camps",
			path: "/api/camps",
			setupMock: func(m *mocks.MockResourceService[model.Camp]) {
				m.On("List", mock.Anything, repository.Query{}).
					Return([]model.Camp{{ID: 1}, {ID: 2}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name: "filtered by company",
			path: "/api/camps?company_id=7",
			setupMock: func(m *mocks.MockResourceService[model.Camp]) {
				m.On("List", mock.Anything, repository.ByCompany(7)).
					Return([]model.Camp{{ID: 3, CompanyID: 7}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:           "malformed company id",
			path:           "/api/camps?company_id=abc",
			setupMock:      func(m *mocks.MockResourceService[model.Camp]) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camps := &mocks.MockResourceService[model.Camp]{}
			tt.setupMock(camps)
			router := newTestRouter(Services{Camps: camps})

			w := doJSON(router, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var items []model.Camp
				decodeData(t, w, &items)
				assert.Len(t, items, tt.expectedLen)
			} else {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.Contains(t, resp.Errors, "company_id")
			}
			camps.AssertExpectations(t)
		})
	}
}

func TestResourceHandler_Get(t *testing.T) {
	camps := &mocks.MockResourceService[model.Camp]{}
	camps.On("Get", mock.Anything, int64(5)).Return(&model.Camp{ID: 5, Location: "Hall A"}, nil)
	camps.On("Get", mock.Anything, int64(9)).Return(nil, service.ErrNotFound)
	router := newTestRouter(Services{Camps: camps})

	t.Run("found", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/camps/5", "")
		require.Equal(t, http.StatusOK, w.Code)
		var camp model.Camp
		resp := decodeData(t, w, &camp)
		assert.Equal(t, "Hall A", camp.Location)
		assert.NotEmpty(t, resp.RequestID)
	})

	t.Run("not found", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/camps/9", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, decodeError(t, w).Error)
	})

	for _, id := range []string{"0", "-1", "abc"} {
		t.Run("invalid id "+id, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, "/api/camps/"+id, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeError(t, w).Errors, "id")
		})
	}
}

func TestResourceHandler_Create(t *testing.T) {
	t.Run("valid camp", func(t *testing.T) {
		camps := &mocks.MockResourceService[model.Camp]{}
		camps.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Camp) bool {
			return c.CompanyID == 1 && c.Location == "Hall A"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Camp).ID = 11
		}).Return(nil)
		router := newTestRouter(Services{Camps: camps})

		w := doJSON(router, http.MethodPost, "/api/camps", validCamp)

		require.Equal(t, http.StatusCreated, w.Code)
		var camp model.Camp
		decodeData(t, w, &camp)
		assert.Equal(t, int64(11), camp.ID)
		camps.AssertExpectations(t)
	})

	t.Run("missing fields are reported per field", func(t *testing.T) {
		camps := &mocks.MockResourceService[model.Camp]{}
		router := newTestRouter(Services{Camps: camps})

		w := doJSON(router, http.MethodPost, "/api/camps", `{"company": 1}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "this field is required", resp.Errors["location"])
		assert.Contains(t, resp.Errors, "start_date")
		camps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("end before start", func(t *testing.T) {
		camps := &mocks.MockResourceService[model.Camp]{}
		router := newTestRouter(Services{Camps: camps})
		body := `{"company": 1, "location": "Hall A", "district": "Pune", "state": "MH",
			"pin_code": "411001", "start_date": "2024-05-03", "end_date": "2024-05-01"}`

		w := doJSON(router, http.MethodPost, "/api/camps", body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "must not be before start_date", decodeError(t, w).Errors["end_date"])
	})

	t.Run("malformed json", func(t *testing.T) {
		router := newTestRouter(Services{Camps: &mocks.MockResourceService[model.Camp]{}})
		w := doJSON(router, http.MethodPost, "/api/camps", `{"company": `)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Errors, "non_field_errors")
	})

	t.Run("wrong field type", func(t *testing.T) {
		router := newTestRouter(Services{Camps: &mocks.MockResourceService[model.Camp]{}})
		w := doJSON(router, http.MethodPost, "/api/camps", `{"company": "one"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "must be an integer", decodeError(t, w).Errors["company"])
	})
}

func TestResourceHandler_Update(t *testing.T) {
	camps := &mocks.MockResourceService[model.Camp]{}
	camps.On("Update", mock.Anything, int64(4), mock.AnythingOfType("*model.Camp")).
		Return(&model.Camp{ID: 4, Location: "Hall A"}, nil).Once()
	camps.On("Update", mock.Anything, int64(5), mock.AnythingOfType("*model.Camp")).
		Return(nil, service.ErrNotFound).Once()
	router := newTestRouter(Services{Camps: camps})

	w := doJSON(router, http.MethodPut, "/api/camps/4", validCamp)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPut, "/api/camps/5", validCamp)
	assert.Equal(t, http.StatusNotFound, w.Code)

	camps.AssertExpectations(t)
}

func TestResourceHandler_Delete(t *testing.T) {
	sink := &recordingSink{}
	companies := &mocks.MockResourceService[model.Company]{}
	companies.On("Delete", mock.Anything, int64(3)).Return(nil)
	companies.On("Delete", mock.Anything, int64(4)).Return(service.ErrNotFound)
	router := NewRouter(RouterConfig{Services: Services{Companies: companies}, LogSink: sink})

	w := doJSON(router, http.MethodDelete, "/api/companies/3", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.True(t, sink.has("company_deleted"))

	w = doJSON(router, http.MethodDelete, "/api/companies/4", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResourceHandler_ReadOnly(t *testing.T) {
	prices := &mocks.MockResourceService[model.Service]{}
	prices.On("List", mock.Anything, repository.Query{}).Return([]model.Service{{ID: 1, Name: "CBC"}}, nil)
	router := newTestRouter(Services{Prices: prices})

	w := doJSON(router, http.MethodGet, "/api/prices", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/prices", `{"service_name": "CBC"}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	prices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResourceHandler_ServiceErrors(t *testing.T) {
	coupons := &mocks.MockCouponService{}
	coupons.On("Create", mock.Anything, mock.Anything).Return(service.ErrConflict)
	coupons.On("List", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	router := newTestRouter(Services{Coupons: coupons})

	w := doJSON(router, http.MethodPost, "/api/discount-coupons", `{"code": "SAVE10", "discount_percentage": "10"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.ErrCodeConflict, decodeError(t, w).Error)

	w = doJSON(router, http.MethodGet, "/api/discount-coupons", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeInternal, resp.Error)
	assert.NotContains(t, resp.Message, assert.AnError.Error())
}

// recordingSink collects log entries in memory.
type recordingSink struct {
	entries []*model.LogEntry
}

func (s *recordingSink) Log(entry *model.LogEntry) bool {
	s.entries = append(s.entries, entry)
	return true
}

// has reports whether an audit entry with the action was recorded.
func (s *recordingSink) has(action string) bool {
	for _, e := range s.entries {
		if e.ActionType == action {
			return true
		}
	}
	return false
}
