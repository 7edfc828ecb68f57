package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/storytrails-server/internal/config"
	"github.com/dtroode/storytrails-server/internal/logger"
	"github.com/dtroode/storytrails-server/internal/model"
)

// Endpoint names an HTTP operation for error mapping.
type Endpoint string

const (
	CreateNewBook              Endpoint = "createNewBook"
	FindAllBooks               Endpoint = "findAllBooks"
	FindAllBooksIntoCollection Endpoint = "findAllBooksIntoCollection"
	FindBookByID               Endpoint = "findBookById"
	UpdateBook                 Endpoint = "updateBook"
	DeleteBook                 Endpoint = "deleteBook"
	CreateNewCollection        Endpoint = "createNewCollection"
	FindAllCollections         Endpoint = "findAllCollections"
	FindCollectionByID         Endpoint = "findCollectionById"
	UpdateCollection           Endpoint = "updateCollection"
	DeleteCollection           Endpoint = "deleteCollection"

	RegisterUser    Endpoint = "registerUser"
	Login           Endpoint = "login"
	UploadBookCover Endpoint = "uploadBookCover"
	GetBookCover    Endpoint = "getBookCover"
)

const (
	msgBadRequest   = "bad request"
	msgNotFound     = "not found"
	msgUnauthorized = "unauthorized"
	msgInternal     = "internal server error"
	msgTooLarge     = "cover image too large"
)

// legacyRule is the coarse fallback answer of an endpoint.
type legacyRule struct {
	status  int
	message string
	// missingToken401 answers 401 instead of the fallback when no token was sent.
	missingToken401 bool
}

var legacyRules = map[Endpoint]legacyRule{
	CreateNewBook:              {status: http.StatusBadRequest, message: msgBadRequest},
	FindAllBooks:               {status: http.StatusBadRequest, message: msgBadRequest, missingToken401: true},
	FindAllBooksIntoCollection: {status: http.StatusNotFound, message: msgNotFound, missingToken401: true},
	FindBookByID:               {status: http.StatusNotFound, message: msgNotFound},
	UpdateBook:                 {status: http.StatusNotFound, message: msgNotFound},
	DeleteBook:                 {status: http.StatusNotFound, message: msgNotFound},
	CreateNewCollection:        {status: http.StatusBadRequest, message: msgBadRequest},
	FindAllCollections:         {status: http.StatusBadRequest, message: msgBadRequest},
	FindCollectionByID:         {status: http.StatusNotFound, message: msgNotFound},
	UpdateCollection:           {status: http.StatusBadRequest, message: msgBadRequest},
	DeleteCollection:           {status: http.StatusNotFound, message: msgBadRequest},
}

// ErrorMapper turns service errors into HTTP responses.
type ErrorMapper struct {
	strict bool
	logger *logger.Logger
}

// NewErrorMapper creates an ErrorMapper for the given API error mode.
func NewErrorMapper(mode string, logger *logger.Logger) *ErrorMapper {
	return &ErrorMapper{strict: mode == config.ErrorModeStrict, logger: logger}
}

// Resolve returns the status and details message for err raised by endpoint.
func (m *ErrorMapper) Resolve(endpoint Endpoint, err error) (int, string) {
	rule, ok := legacyRules[endpoint]
	if m.strict || !ok {
		return strictStatus(err)
	}

	switch {
	case errors.Is(err, model.ErrNotOwner):
		return http.StatusUnauthorized, msgUnauthorized
	case rule.missingToken401 && errors.Is(err, model.ErrMissingToken):
		return http.StatusUnauthorized, msgUnauthorized
	default:
		return rule.status, rule.message
	}
}

func strictStatus(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, model.ErrNotOwner):
		return http.StatusUnauthorized, msgUnauthorized
	case errors.Is(err, model.ErrUnauthenticated):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrStorageDisabled):
		return http.StatusNotFound, msgNotFound
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, msgTooLarge
	case errors.Is(err, model.ErrInvalid):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// Write maps err and writes the error response.
func (m *ErrorMapper) Write(w http.ResponseWriter, r *http.Request, endpoint Endpoint, err error) {
	status, msg := m.Resolve(endpoint, err)

	if cause, _ := strictStatus(err); cause == http.StatusInternalServerError {
		m.logger.Error("HTTP handler: request failed",
			"endpoint", endpoint,
			"path", r.URL.Path,
			"error", err.Error())
	} else {
		m.logger.Debug("HTTP handler: request rejected",
			"endpoint", endpoint,
			"status", status,
			"error", err.Error())
	}

	writeDetails(w, status, msg)
}
