package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/briefwire/briefwire/pkg/digest"
	"github.com/briefwire/briefwire/pkg/domain"
	"github.com/briefwire/briefwire/pkg/store"
)

// digestHandler runs the curation pipeline for a submitted document pool.
// When the request names a recipient and carries no continuity context, the
// recipient's latest stored digest provides it.
func (s *Server) digestHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req digest.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("decode request: %w", err), http.StatusBadRequest)
		return
	}

	if req.Continuity == nil && req.RecipientID != "" && s.store != nil {
		prior, err := s.store.LastDigest(ctx, req.RecipientID)
		switch {
		case err == nil:
			req.Continuity = digest.BuildContinuity(prior, 0)
		case errors.Is(err, store.ErrNotFound):
			// first digest for this recipient, nothing to carry over
		default:
			lgr.Printf("[WARN] prior digest lookup for %q failed: %v", req.RecipientID, err)
		}
	}

	result, err := s.runner.Run(ctx, req)
	if err != nil {
		var schemaErr *digest.SchemaError
		switch {
		case errors.Is(err, digest.ErrEmptyPool):
			renderError(w, r, err, http.StatusBadRequest)
		case errors.Is(err, store.ErrNotFound):
			renderError(w, r, err, http.StatusNotFound)
		case errors.As(err, &schemaErr):
			lgr.Printf("[ERROR] digest failed on malformed oracle output: %v", err)
			renderError(w, r, err, http.StatusBadGateway)
		default:
			lgr.Printf("[ERROR] digest failed: %v", err)
			renderError(w, r, err, http.StatusInternalServerError)
		}
		return
	}

	if s.store != nil {
		if err := s.store.SaveDigest(ctx, result.RecipientID, &result.Digest); err != nil {
			lgr.Printf("[WARN] save digest for %q failed: %v", result.RecipientID, err)
		}
	}

	renderJSON(w, r, http.StatusOK, result)
}

// listRecipientsHandler returns all known recipients
func (s *Server) listRecipientsHandler(w http.ResponseWriter, r *http.Request) {
	recipients, err := s.store.ListRecipients(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] list recipients failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, recipients)
}

// saveRecipientHandler creates or updates a recipient
func (s *Server) saveRecipientHandler(w http.ResponseWriter, r *http.Request) {
	var recipient domain.Recipient
	if err := json.NewDecoder(r.Body).Decode(&recipient); err != nil {
		renderError(w, r, fmt.Errorf("decode recipient: %w", err), http.StatusBadRequest)
		return
	}
	if recipient.ID == "" {
		renderError(w, r, fmt.Errorf("recipient id is required"), http.StatusBadRequest)
		return
	}

	if err := s.store.SaveRecipient(r.Context(), &recipient); err != nil {
		lgr.Printf("[ERROR] save recipient %q failed: %v", recipient.ID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, recipient)
}

// getRecipientHandler returns one recipient by ID
func (s *Server) getRecipientHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	recipient, err := s.store.LoadRecipient(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] load recipient %q failed: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, recipient)
}

// listDigestsHandler returns recent digests for a recipient, newest first
func (s *Server) listDigestsHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	digests, err := s.store.ListDigests(r.Context(), id, limit)
	if err != nil {
		lgr.Printf("[ERROR] list digests for %q failed: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, digests)
}
