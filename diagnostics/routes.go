package diagnostics

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// jsonResult provides a basic root object in order to avoid using a scalar at root level.
type jsonResult struct {
	Data interface{} `json:"data"`
}

// Router gets the router for the read-only diagnostics endpoints.
func Router(diagnostics *Diagnostics) *httprouter.Router {
	router := httprouter.New()
	router.GET("/diagnostics/cluster", clusterHandler(diagnostics))
	router.GET("/diagnostics/hosts", hostsHandler(diagnostics))
	return router
}

func clusterHandler(diagnostics *Diagnostics) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		data, err := diagnostics.Cluster()
		writeResponse(w, data, err)
	}
}

func hostsHandler(diagnostics *Diagnostics) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		data, err := diagnostics.Hosts()
		writeResponse(w, &data, err)
	}
}

func writeResponse(w http.ResponseWriter, data interface{}, err error) {
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(&jsonResult{Data: data}); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

func writeErrorResponse(w http.ResponseWriter, errorCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(errorCode)
	_ = json.NewEncoder(w).Encode(errorMsg)
}
