//go:build unit

package appointment_test

import (
	"strings"
	"testing"

	"agendamento-api/internal/domain/appointment"
	"agendamento-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name       string
	mutate     func(*builder.AppointmentBuilder)
	kind       appointment.ValidationKind
	wantFields []string
}

func TestValidate(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := appointment.Validate(builder.NewAppointmentBuilder().BuildBookingRequest())
		require.NoError(t, err)

		assert.Equal(t, "Ana Silva", actual.Name.String())
		assert.Equal(t, "11999990000", actual.Phone.String())
		assert.Equal(t, "Corte", actual.Service)
		assert.Equal(t, "2025-11-10", actual.Slot.Date.String())
		assert.Equal(t, "14:00", actual.Slot.Time.String())
	})

	t.Run("trims every field", func(t *testing.T) {
		req := builder.NewAppointmentBuilder().
			WithName("  Ana Silva  ").
			WithPhone(" 11999990000 ").
			WithService(" Corte ").
			WithDate(" 2025-11-10 ").
			WithTime(" 14:00 ").
			BuildBookingRequest()

		actual, err := appointment.Validate(req)
		require.NoError(t, err)

		assert.Equal(t, "Ana Silva", actual.Name.String())
		assert.Equal(t, "11999990000", actual.Phone.String())
		assert.Equal(t, "Corte", actual.Service)
		assert.Equal(t, "2025-11-10", actual.Slot.Date.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:       "missing time",
				mutate:     func(b *builder.AppointmentBuilder) { b.WithTime("") },
				kind:       appointment.KindMissingFields,
				wantFields: []string{"hora"},
			},
			{
				name:       "whitespace only name",
				mutate:     func(b *builder.AppointmentBuilder) { b.WithName("   ") },
				kind:       appointment.KindMissingFields,
				wantFields: []string{"nome"},
			},
			{
				name: "several fields reported together",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithPhone("").WithService("").WithDate("")
				},
				kind:       appointment.KindMissingFields,
				wantFields: []string{"telefone", "servico", "data"},
			},
			{
				name: "missing wins over short name",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithName("Al").WithTime("")
				},
				kind:       appointment.KindMissingFields,
				wantFields: []string{"hora"},
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "two characters",
				mutate: func(b *builder.AppointmentBuilder) { b.WithName("Al") },
				kind:   appointment.KindInvalidName,
			},
			{
				name:   "two characters after trimming",
				mutate: func(b *builder.AppointmentBuilder) { b.WithName("  Al  ") },
				kind:   appointment.KindInvalidName,
			},
			{
				name:   "minimum length",
				mutate: func(b *builder.AppointmentBuilder) { b.WithName("Ana") },
			},
			{
				name:   "multibyte characters count once",
				mutate: func(b *builder.AppointmentBuilder) { b.WithName("Zoé") },
			},
			{
				name: "short name reported before short phone",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithName("Al").WithPhone("123")
				},
				kind: appointment.KindInvalidName,
			},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "nine characters",
				mutate: func(b *builder.AppointmentBuilder) { b.WithPhone("119999900") },
				kind:   appointment.KindInvalidPhone,
			},
			{
				name:   "minimum length",
				mutate: func(b *builder.AppointmentBuilder) { b.WithPhone("1199999000") },
			},
			{
				name:   "formatted phone",
				mutate: func(b *builder.AppointmentBuilder) { b.WithPhone("(11) 99999-0000") },
			},
		})
	})

	t.Run("date validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "slash separator",
				mutate: func(b *builder.AppointmentBuilder) { b.WithDate("2025/11/10") },
				kind:   appointment.KindInvalidDateFormat,
			},
			{
				name:   "day first",
				mutate: func(b *builder.AppointmentBuilder) { b.WithDate("10-11-2025") },
				kind:   appointment.KindInvalidDateFormat,
			},
			{
				name:   "single digit month",
				mutate: func(b *builder.AppointmentBuilder) { b.WithDate("2025-1-10") },
				kind:   appointment.KindInvalidDateFormat,
			},
			{
				name:   "trailing time",
				mutate: func(b *builder.AppointmentBuilder) { b.WithDate("2025-11-10T14:00") },
				kind:   appointment.KindInvalidDateFormat,
			},
			{
				// calendar validity is left to the store
				name:   "impossible calendar date passes the pattern",
				mutate: func(b *builder.AppointmentBuilder) { b.WithDate("2025-02-30") },
			},
		})
	})

	t.Run("time validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "with seconds",
				mutate: func(b *builder.AppointmentBuilder) { b.WithTime("14:00:30") },
			},
			{
				name:   "hour out of range",
				mutate: func(b *builder.AppointmentBuilder) { b.WithTime("24:00") },
				kind:   appointment.KindInvalidTimeFormat,
			},
			{
				name:   "minute out of range",
				mutate: func(b *builder.AppointmentBuilder) { b.WithTime("14:60") },
				kind:   appointment.KindInvalidTimeFormat,
			},
			{
				name:   "free text",
				mutate: func(b *builder.AppointmentBuilder) { b.WithTime("duas da tarde") },
				kind:   appointment.KindInvalidTimeFormat,
			},
		})
	})
}

func TestValidationError_Message(t *testing.T) {
	_, err := appointment.Validate(appointment.BookingRequest{})
	require.Error(t, err)

	var vErr *appointment.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, appointment.KindMissingFields, vErr.Kind)
	assert.Equal(t, []string{"nome", "telefone", "servico", "data", "hora"}, vErr.Fields)
	assert.True(t, strings.HasPrefix(vErr.Message(), "Campos obrigatórios ausentes"))
	assert.Contains(t, vErr.Message(), "hora")
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := appointment.Validate(builder.NewAppointmentBuilder().With(c.mutate).BuildBookingRequest())

			if c.kind == "" {
				require.NoError(t, err)
				assert.False(t, actual.Slot.Date.IsZero())
				return
			}

			require.Error(t, err)
			assert.Equal(t, appointment.NormalizedBooking{}, actual, "no partial normalization on failure")

			var vErr *appointment.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, c.kind, vErr.Kind)
			if c.wantFields != nil {
				assert.Equal(t, c.wantFields, vErr.Fields)
			}
		})
	}
}
