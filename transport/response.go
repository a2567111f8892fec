package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/contact-management/constant"
	"github.com/muhammadheryan/contact-management/model"
	"github.com/muhammadheryan/contact-management/utils/errors"
)

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, model.WebResponse{Data: data})
}

func writeSuccessPaging(w http.ResponseWriter, data interface{}, paging *model.Paging) {
	writeJSON(w, http.StatusOK, model.WebResponse{Data: data, Paging: paging})
}

// writeError maps a CustomError to its HTTP status and surfaces its message
// verbatim. Anything else becomes a generic 500 so internal detail never
// leaks.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), model.WebResponse{Error: ce.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body model.WebResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
