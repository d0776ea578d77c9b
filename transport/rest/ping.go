package rest

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (that *Handlers) Ping(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}
