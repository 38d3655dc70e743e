package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

// OapiRequestValidator checks parameters and bodies against the OpenAPI
// document behind router. Requests the document does not describe pass
// through untouched so the router can answer 404 or 405.
func OapiRequestValidator(router routers.Router, onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}

			err = openapi3filter.ValidateRequest(r.Context(), input)
			if err != nil {
				onError(w, r, requestError(err))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requestError drops the schema dumps kin-openapi puts into its messages.
func requestError(err error) error {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		field := strings.Join(schemaErr.JSONPointer(), ".")
		if field == "" {
			return errors.New(schemaErr.Reason)
		}

		return fmt.Errorf("%s: %s", field, schemaErr.Reason)
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		reason := reqErr.Reason
		if reason == "" && reqErr.Err != nil {
			reason = reqErr.Err.Error()
		}

		if reqErr.Parameter != nil {
			return fmt.Errorf("invalid %s parameter %q: %s", reqErr.Parameter.In, reqErr.Parameter.Name, reason)
		}

		if reason != "" {
			return errors.New(reason)
		}
	}

	return err
}
