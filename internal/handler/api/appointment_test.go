//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"agendamento-api/internal/domain/appointment"
	"agendamento-api/internal/handler/api"
	resdto "agendamento-api/internal/handler/dto/response"
	"agendamento-api/internal/handler/httperr"
	"agendamento-api/internal/infra"
	"agendamento-api/internal/pkg/errs"
	"agendamento-api/internal/usecase/commands"
	"agendamento-api/internal/usecase/queries"
	"agendamento-api/tests/common/builder"
	"agendamento-api/tests/common/httptest"
	"agendamento-api/tests/common/testutil"
	commandsmock "agendamento-api/tests/mock/commands"
	queriesmock "agendamento-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/agendar", s.handler.Book)
	s.router.GET("/api/disponibilidade", s.handler.Availability)
	s.router.GET("/api/agendamentos", s.handler.ListRecent)
	s.router.DELETE("/api/agendamentos/:id", s.handler.Delete)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

// ================================================================================
// TestBook
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestBook() {
	url := "/api/agendar"
	reqBody := builder.NewAppointmentBuilder().BuildCreateRequestDTO()

	s.Run("success: 201 with stored record", func() {
		created := builder.NewAppointmentBuilder().WithID(9).BuildDomain()
		s.mockCommands.EXPECT().
			Book(gomock.Any(), builder.NewAppointmentBuilder().BuildBookingRequest()).
			Return(&commands.BookingResult{Appointment: created}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.True(resp.Success)
		s.Equal(int32(9), resp.ID)
		s.NotEmpty(resp.Message)
		s.Equal("Ana Silva", resp.Data.ClientName)
		s.Equal("2025-11-10", resp.Data.Date)
		s.Equal("14:00", resp.Data.Time)
	})

	validation := []struct {
		name   string
		mutate func(map[string]any)
		kind   appointment.ValidationKind
		fields []string
	}{
		{name: "missing hora", mutate: testutil.Field("hora", nil), kind: appointment.KindMissingFields, fields: []string{"hora"}},
		{name: "short name", mutate: testutil.Field("nome", "Al"), kind: appointment.KindInvalidName, fields: []string{"nome"}},
		{name: "short phone", mutate: testutil.Field("telefone", "123"), kind: appointment.KindInvalidPhone, fields: []string{"telefone"}},
		{name: "bad date", mutate: testutil.Field("data", "10/11/2025"), kind: appointment.KindInvalidDateFormat, fields: []string{"data"}},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			verr := &appointment.ValidationError{Kind: tc.kind, Fields: tc.fields}
			s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, verr)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

			resp := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.KindValidation, verr.Message())
			s.Equal(string(tc.kind), resp.Reason)
			s.Equal(tc.fields, resp.Fields)
		})
	}

	s.Run("validation: empty body reports every field missing", func() {
		_, verr := appointment.Validate(appointment.BookingRequest{})
		s.mockCommands.EXPECT().Book(gomock.Any(), appointment.BookingRequest{}).Return(nil, verr)

		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "")

		resp := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.KindValidation, "")
		s.Equal(string(appointment.KindMissingFields), resp.Reason)
		s.Equal([]string{"nome", "telefone", "servico", "data", "hora"}, resp.Fields)
	})

	s.Run("error: non-string field names the field", func() {
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url,
			`{"nome":"Ana Silva","telefone":"11999990000","servico":7,"data":"2025-11-10","hora":"14:00"}`)

		resp := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.KindValidation, "inválido")
		s.Equal([]string{"servico"}, resp.Fields)
	})

	s.Run("error: malformed json", func() {
		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"nome": "Ana"`)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.KindValidation, "inválido")
	})

	s.Run("error: slot taken maps to 409", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, commands.ErrSlotTaken)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, httperr.KindSlotConflict, "ocupado")
	})

	s.Run("error: race lost on the unique constraint maps to 409", func() {
		raceErr := errs.Mark(infra.WrapRepoErr("failed to create appointment", assertErr("duplicate")), commands.ErrSlotTaken)
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, raceErr)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, httperr.KindSlotConflict, "")
	})

	s.Run("error: storage failure hides raw details", func() {
		dbErr := infra.WrapRepoErr("failed to create appointment", assertErr("pq: relation agendamentos does not exist"))
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		resp := httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, httperr.KindStorageUnavailable, "")
		s.NotContains(w.Body.String(), "relation")
		s.NotEmpty(resp.Detail)
	})
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestAvailability() {
	s.Run("success", func() {
		view := &queries.AvailabilityView{
			Date:  "2025-11-10",
			Total: 1,
			Slots: []queries.OccupiedSlotView{{Time: "14:00", ClientName: "Ana Silva", Service: "Corte"}},
		}
		s.mockQueries.EXPECT().Availability(gomock.Any(), "2025-11-10").Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/disponibilidade?data=2025-11-10", nil)

		var resp queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(*view, resp)
		s.Contains(w.Body.String(), `"total_agendamentos":1`)
		s.Contains(w.Body.String(), `"horarios_ocupados":[`)
	})

	s.Run("error: missing date carries an example", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), "").Return(nil, queries.ErrDateRequired)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/disponibilidade", nil)
		resp := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.KindValidation, "data")
		s.Equal("2025-11-10", resp.Example)
	})

	s.Run("error: malformed date carries an example", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), "amanha").Return(nil, appointment.NewInvalidDateError())

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/disponibilidade?data=amanha", nil)
		resp := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.KindValidation, "")
		s.Equal("2025-11-10", resp.Example)
	})

	s.Run("error: storage failure", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), "2025-11-10").Return(nil, assertErr("timeout"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/disponibilidade?data=2025-11-10", nil)
		resp := httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, httperr.KindStorageUnavailable, "")
		s.Empty(resp.Example)
	})
}

// ================================================================================
// TestListRecent
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestListRecent() {
	s.Run("success: default limit", func() {
		views := []queries.AppointmentView{builder.NewAppointmentBuilder().BuildView()}
		s.mockQueries.EXPECT().ListRecent(gomock.Any(), 0).Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/agendamentos", nil)

		var resp resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(1, resp.Total)
		s.Len(resp.Appointments, 1)
	})

	s.Run("success: explicit limit forwarded", func() {
		s.mockQueries.EXPECT().ListRecent(gomock.Any(), 5).Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/agendamentos?limite=5", nil)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"total":0,"agendamentos":[]}`, w.Body.String())
	})

	s.Run("error: non-numeric limit", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/agendamentos?limite=abc", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.KindValidation, "limite")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		deleted := builder.NewAppointmentBuilder().WithID(4).BuildDomain()
		s.mockCommands.EXPECT().Delete(gomock.Any(), int32(4)).Return(deleted, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/agendamentos/4", nil)

		var resp resdto.DeleteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Success)
		s.Equal(int32(4), resp.Appointment.ID)
	})

	s.Run("error: not found", func() {
		notFound := errs.Mark(infra.WrapRepoErr("failed to delete appointment", pgx.ErrNoRows), commands.ErrAppointmentNotFound)
		s.mockCommands.EXPECT().Delete(gomock.Any(), int32(99)).Return(nil, notFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/agendamentos/99", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, httperr.KindNotFound, "não encontrado")
	})

	for _, raw := range []string{"abc", "0", "-1", "99999999999"} {
		s.Run("error: invalid id "+raw, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/agendamentos/"+raw, nil)
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, httperr.KindValidation, "ID")
		})
	}
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
