package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/services/tracking"
	"github.com/hhtransportationtx/dispatch/services/tracking/mocks"
)

func performRequest(h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h(c)
	return rec
}

func TestGetNearbyDrivers(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		mockSetup      func(*mocks.MockTrackingUC)
		expectedStatus int
	}{
		{
			name:   "Success",
			target: "/tracking/drivers/nearby?lat=34.0522&lng=-118.2437&radius_miles=3",
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					GetNearbyDrivers(gomock.Any(), models.Location{Latitude: 34.0522, Longitude: -118.2437}, 3.0).
					Return([]models.NearbyDriver{{ID: "d1", DistanceMiles: 0.8}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing coordinates",
			target:         "/tracking/drivers/nearby?radius_miles=3",
			mockSetup:      func(mockUC *mocks.MockTrackingUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Invalid location",
			target: "/tracking/drivers/nearby?lat=200&lng=0",
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					GetNearbyDrivers(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tracking.ErrInvalidLocation)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Store failure",
			target: "/tracking/drivers/nearby?lat=34.0522&lng=-118.2437",
			mockSetup: func(mockUC *mocks.MockTrackingUC) {
				mockUC.EXPECT().
					GetNearbyDrivers(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTrackingUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewTrackingHandler(mockUC)

			rec := performRequest(handler.GetNearbyDrivers, tt.target)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestGetCellSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	mockUC.EXPECT().
		GetCellSummary(gomock.Any(), models.Location{Latitude: 34.0522, Longitude: -118.2437}).
		Return(&models.CellSummary{Cell: "9q5ctr", Count: 2, DriverIDs: []string{"d1", "d2"}}, nil)

	handler := NewTrackingHandler(mockUC)
	rec := performRequest(handler.GetCellSummary, "/tracking/cells/summary?lat=34.0522&lng=-118.2437")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "9q5ctr")
}

func TestGetCellSummary_MissingCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewTrackingHandler(mocks.NewMockTrackingUC(ctrl))
	rec := performRequest(handler.GetCellSummary, "/tracking/cells/summary")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
