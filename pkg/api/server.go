// Package api exposes the invoice service over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/invoicepress/invoicepress/pkg/storage"
	"github.com/invoicepress/invoicepress/pkg/upi"
	"github.com/invoicepress/invoicepress/pkg/uploader"
)

// Server wires the document store, upload backend and QR configuration
// behind the HTTP routes. The uploads backend may be nil, in which case
// the logo endpoint reports uploads as unavailable.
type Server struct {
	store    storage.Store
	uploads  uploader.Uploader
	qr       upi.Config
	log      zerolog.Logger
	validate *validator.Validate
	now      func() time.Time
}

// New constructs a Server.
func New(store storage.Store, uploads uploader.Uploader, qr upi.Config, log zerolog.Logger) *Server {
	return &Server{
		store:    store,
		uploads:  uploads,
		qr:       qr,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Router builds the full route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger{Logger: s.log}.Middleware)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/invoices/preview", s.handlePreview).Methods(http.MethodPost)
	api.HandleFunc("/invoices", s.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/invoices", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id}", s.handleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/invoices/{id}", s.handleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/invoices/{id}/duplicate", s.handleDuplicate).Methods(http.MethodPost)
	api.HandleFunc("/invoices/{id}/pdf", s.handlePDF).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id}/print", s.handlePrint).Methods(http.MethodGet)
	api.HandleFunc("/uploads/logo", s.handleLogoUpload).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}
