//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"wheel-promo-api/internal/handler/api"
	resdto "wheel-promo-api/internal/handler/dto/response"
	"wheel-promo-api/internal/usecase/commands"
	"wheel-promo-api/internal/usecase/queries"
	"wheel-promo-api/tests/common/builder"
	"wheel-promo-api/tests/common/httptest"
	"wheel-promo-api/tests/common/testutil"
	commandsmock "wheel-promo-api/tests/mock/commands"
	queriesmock "wheel-promo-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminSegmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSegmentCommands
	mockReads    *queriesmock.MockAdminSegmentReadStore
	handler      *api.AdminSegmentHandler
}

func (s *AdminSegmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSegmentCommands(s.mockCtrl)
	s.mockReads = queriesmock.NewMockAdminSegmentReadStore(s.mockCtrl)
	s.handler = api.NewAdminSegmentHandler(s.mockCommands, s.mockReads)

	s.router.GET("/admin/wheel/segments", s.handler.List)
	s.router.POST("/admin/wheel/segments", s.handler.Create)
	s.router.PATCH("/admin/wheel/segments/:id", s.handler.Update)
	s.router.DELETE("/admin/wheel/segments/:id", s.handler.Delete)
}

func (s *AdminSegmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminSegmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminSegmentHandlerTestSuite))
}

func (s *AdminSegmentHandlerTestSuite) TestList() {
	url := "/admin/wheel/segments"

	s.Run("success: includes inactive segments", func() {
		views := []queries.SegmentView{
			builder.NewSegmentBuilder().BuildView(),
			builder.NewSegmentBuilder().WithLabel("Retired").AsInactive().BuildView(),
		}
		s.mockReads.EXPECT().ListAll(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "admin-token")

		var response []resdto.SegmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.False(response[1].IsActive)
	})
}

type testCaseSegment struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AdminSegmentHandlerTestSuite) TestCreate() {
	url := "/admin/wheel/segments"
	reqBody := builder.NewSegmentBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with the new segment id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id.String(), response["id"])
	})

	s.Run("error: 400 Bad Request on binding violations", func() {
		cases := []testCaseSegment{
			{name: "missing label", mutate: testutil.Field("label", nil), expectCode: http.StatusBadRequest},
			{name: "empty label", mutate: testutil.Field("label", ""), expectCode: http.StatusBadRequest},
			{name: "unknown discount type", mutate: testutil.Field("discount_type", "bogus"), expectCode: http.StatusBadRequest},
			{name: "negative discount value", mutate: testutil.Field("discount_value", -5), expectCode: http.StatusBadRequest},
			{name: "negative weight", mutate: testutil.Field("weight", -1), expectCode: http.StatusBadRequest},
			{name: "zero weight is accepted", mutate: testutil.Field("weight", 0), expectCode: http.StatusCreated},
			{name: "unknown prize type", mutate: testutil.Field("prize_type", "voucher"), expectCode: http.StatusBadRequest},
			{name: "missing color", mutate: testutil.Field("color", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "admin-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 400 when domain validation rejects the segment", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(uuid.Nil, commands.ErrSegmentValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid segment data")
	})
}

func (s *AdminSegmentHandlerTestSuite) TestUpdate() {
	segmentID := uuid.New()
	url := "/admin/wheel/segments/" + segmentID.String()
	reqBody := builder.NewSegmentBuilder().WithLabel("20% OFF").BuildUpdateRequestDTO()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), segmentID, reqBody).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "admin-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on a malformed segment id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/wheel/segments/nope", reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid segment ID")
	})

	s.Run("error: 404 for an unknown segment", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), segmentID, reqBody).
			Return(commands.ErrSegmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Segment not found")
	})
}

func (s *AdminSegmentHandlerTestSuite) TestDelete() {
	segmentID := uuid.New()
	url := "/admin/wheel/segments/" + segmentID.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), segmentID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on a malformed segment id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/wheel/segments/nope", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid segment ID")
	})

	s.Run("error: 404 for an unknown segment", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), segmentID).
			Return(commands.ErrSegmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Segment not found")
	})

	s.Run("error: 409 when spin history references the segment", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), segmentID).
			Return(commands.ErrSegmentInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Segment has recorded spins")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), segmentID).
			Return(errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
