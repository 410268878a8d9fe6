package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin/binding"
)

// strictJSON is binding.JSON that also rejects data after the first value.
var strictJSON binding.Binding = strictJSONBinding{}

type strictJSONBinding struct{}

func (strictJSONBinding) Name() string {
	return "json"
}

func (strictJSONBinding) Bind(req *http.Request, obj any) error {
	if req == nil || req.Body == nil {
		return errors.New("invalid request")
	}
	dec := json.NewDecoder(req.Body)
	if err := dec.Decode(obj); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected content after JSON body")
	}
	if binding.Validator == nil {
		return nil
	}
	return binding.Validator.ValidateStruct(obj)
}
