package v1health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/logging"
	"github.com/eurofurence/reg-payment-winipayer-adapter/internal/restapi/common"
)

type HealthResultDto struct {
	Status string `json:"status"`
}

func Create(server chi.Router) {
	server.Get("/info/health", healthGet)
	server.Get("/", healthGet)
}

func healthGet(w http.ResponseWriter, r *http.Request) {
	dto := HealthResultDto{Status: "up"}
	common.SendJSON(w, http.StatusOK, dto, logging.LoggerFromContext(r.Context()))
}
