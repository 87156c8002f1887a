// Package biometrics serves simulated wearable readings until real devices
// stream them.
package biometrics

import (
	"net/http"
	"time"

	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gorilla/mux"
)

type Reading struct {
	HeartRate int       `json:"heartRate"`
	Steps     int       `json:"steps"`
	Calories  int       `json:"calories"`
	HRV       int       `json:"hrv"`
	Timestamp time.Time `json:"timestamp"`
}

type Handler struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewHandler uses faker for the readings. A seed of 0 in gofakeit.New gives
// a random one.
func NewHandler(faker *gofakeit.Faker) *Handler {
	return &Handler{
		faker: faker,
		now:   time.Now,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/biometrics/live", h.HandleLive).Methods("GET", "OPTIONS").Name("biometrics-live")
}

func (h *Handler) HandleLive(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.StartSpan(r.Context(), "handler.biometrics.live")
	defer span.End()

	pkg.WriteJSONResponseOK(w, h.reading())
}

// ranges are inclusive
func (h *Handler) reading() Reading {
	return Reading{
		HeartRate: h.faker.IntRange(60, 179),
		Steps:     h.faker.IntRange(2000, 6999),
		Calories:  h.faker.IntRange(200, 699),
		HRV:       h.faker.IntRange(30, 79),
		Timestamp: h.now().UTC(),
	}
}
