package rewards

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Валидатор запросов, в ошибках поля называются как в JSON
func NewValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type errorResponse struct {
	Error  string            `json:"error"`
	Msg    string            `json:"msg,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Чтение JSON тела и проверка; при ошибке ответ 400 уже записан
func (h *RewardsHandler) bindAndValidate(w http.ResponseWriter, req *http.Request, out interface{}) error {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request_body", Msg: err.Error()})
		return err
	}
	defer req.Body.Close()
	err = json.Unmarshal(body, out)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request_body", Msg: err.Error()})
		return err
	}

	err = h.validate.Struct(out)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation_failed", Fields: validationErrorsToMap(err)})
		return err
	}
	return nil
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Namespace()] = fe.Tag()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
