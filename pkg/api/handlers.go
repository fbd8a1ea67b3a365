package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ssargent/bifrost/pkg/record"
	"github.com/ssargent/bifrost/pkg/store"
)

const defaultListLimit = 100

// Server holds the API server state
type Server struct {
	store   store.Store
	docs    *record.Type[Document, string]
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(kv store.Store, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		store:   kv,
		docs:    Documents(),
		config:  config,
		metrics: metrics,
	}
}

func (s *Server) recordOp(op string, success bool, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordStoreOperation(op, success, time.Since(start))
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleCreate stores a new document under a generated id.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req PutDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.recordOp("create", false, start)
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}

	doc := Document{ID: NewDocumentID(), Value: req.Value}
	if err := s.docs.Persist(s.store, doc); err != nil {
		s.recordOp("create", false, start)
		sendError(w, fmt.Sprintf("Failed to store document: %v", err), http.StatusInternalServerError)
		return
	}

	s.recordOp("create", true, start)
	sendSuccess(w, DocumentResponse{ID: doc.ID, Value: doc.Value})
}

// handlePut stores a document under the id in the path.
func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := url.QueryUnescape(chi.URLParam(r, "id"))
	if err != nil || id == "" {
		s.recordOp("put", false, start)
		sendError(w, "Invalid document id", http.StatusBadRequest)
		return
	}

	var req PutDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.recordOp("put", false, start)
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}

	if err := s.docs.Persist(s.store, Document{ID: id, Value: req.Value}); err != nil {
		s.recordOp("put", false, start)
		sendError(w, fmt.Sprintf("Failed to store document: %v", err), http.StatusInternalServerError)
		return
	}

	s.recordOp("put", true, start)
	sendSuccess(w, map[string]string{"message": "Document stored successfully"})
}

// handleGet retrieves a document by id.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := url.QueryUnescape(chi.URLParam(r, "id"))
	if err != nil || id == "" {
		s.recordOp("get", false, start)
		sendError(w, "Invalid document id", http.StatusBadRequest)
		return
	}

	doc, found, err := s.docs.Fetch(s.store, id)
	if err != nil {
		s.recordOp("get", false, start)
		sendError(w, fmt.Sprintf("Failed to fetch document: %v", err), http.StatusInternalServerError)
		return
	}
	if !found {
		s.recordOp("get", false, start)
		sendError(w, "Document not found", http.StatusNotFound)
		return
	}

	s.recordOp("get", true, start)
	sendSuccess(w, DocumentResponse{ID: doc.ID, Value: doc.Value})
}

// handleDelete removes a document by id.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := url.QueryUnescape(chi.URLParam(r, "id"))
	if err != nil || id == "" {
		s.recordOp("delete", false, start)
		sendError(w, "Invalid document id", http.StatusBadRequest)
		return
	}

	if err := s.docs.Remove(s.store, id); err != nil {
		s.recordOp("delete", false, start)
		sendError(w, fmt.Sprintf("Failed to delete document: %v", err), http.StatusInternalServerError)
		return
	}

	s.recordOp("delete", true, start)
	sendSuccess(w, map[string]string{"message": "Document deleted successfully"})
}

// handleList scans documents in ascending id order. Query parameters:
//
//	prefix  only ids starting with this string
//	from    inclusive lower id bound
//	to      inclusive upper id bound
//	limit   maximum number of documents (default 100)
//
// prefix and from/to are mutually exclusive.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	limit := defaultListLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.recordOp("list", false, start)
			sendError(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	prefix := q.Get("prefix")
	from, to := q.Get("from"), q.Get("to")
	if prefix != "" && (from != "" || to != "") {
		s.recordOp("list", false, start)
		sendError(w, "prefix and from/to cannot be combined", http.StatusBadRequest)
		return
	}

	seq := s.docs.Scan(s.store)
	switch {
	case prefix != "":
		seq = record.ScanPrefix(s.docs, s.store, DocumentIDPrefix(), prefix)
	case from != "" || to != "":
		r := record.Range[string]{}
		if from != "" {
			r.Start = record.Included(from)
		}
		if to != "" {
			r.End = record.Included(to)
		}
		seq = record.ScanRange(s.docs, s.store, DocumentIDPrefix(), r)
	}

	docs := []DocumentResponse{}
	for doc, err := range seq {
		if err != nil {
			s.recordOp("list", false, start)
			sendError(w, fmt.Sprintf("Failed to scan documents: %v", err), http.StatusInternalServerError)
			return
		}
		docs = append(docs, DocumentResponse{ID: doc.ID, Value: doc.Value})
		if len(docs) == limit {
			break
		}
	}

	s.recordOp("list", true, start)
	sendSuccess(w, docs)
}
