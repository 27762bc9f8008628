package handlers

import (
	"encoding/json"
	"net/http"

	"phreddit/pkg/errs"
)

type Response struct {
	Message string `json:"message"`
}

type CustomError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type ErrorsResponse struct {
	Errors []*CustomError `json:"errors"`
}

func WriteResponse(w http.ResponseWriter, msg string, status int) {
	resp := &Response{Message: msg}
	res, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(status)
		return
	}

	w.WriteHeader(status)
	w.Write(res)
}

func writeErrorsResponse(w http.ResponseWriter, errors []*CustomError, status int) {
	errorsJSON, err := json.Marshal(&ErrorsResponse{Errors: errors})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	w.Write(errorsJSON)
}

func writeJSON(w http.ResponseWriter, payload interface{}, status int) {
	respBytes, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(respBytes)
}

// writeOutcome translates a typed service failure into a transport response.
func writeOutcome(w http.ResponseWriter, err error) {
	switch {
	case errs.Is(err, errs.Validation):
		WriteResponse(w, errs.Message(err), http.StatusUnprocessableEntity)
	case errs.Is(err, errs.NotFound):
		WriteResponse(w, errs.Message(err), http.StatusNotFound)
	case errs.Is(err, errs.Permission):
		WriteResponse(w, errs.Message(err), http.StatusForbidden)
	default:
		WriteResponse(w, errs.Message(err), http.StatusInternalServerError)
	}
}
