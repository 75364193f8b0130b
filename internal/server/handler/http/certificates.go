package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/carbontrade/carboncert/internal/apperrors"
	"github.com/carbontrade/carboncert/internal/middleware"
	"github.com/carbontrade/carboncert/internal/models"
)

// CertificateService defines the interface for carbon-certificate
// operations required by the HTTP handlers.
type CertificateService interface {
	// ListMine returns all certificates owned by the given user.
	ListMine(ctx context.Context, userID int64) ([]models.CarbonCertificate, error)
	// ListOwnerless returns all certificates without an owner.
	ListOwnerless(ctx context.Context) ([]models.CarbonCertificate, error)
	// Create inserts a new certificate as given.
	Create(ctx context.Context, country string, status models.CertificateStatus, ownerID *int64) (*models.CarbonCertificate, error)
	// TransferOwnership atomically reassigns a certificate the requester owns.
	TransferOwnership(ctx context.Context, requesterID, certificateID, newOwnerID int64) (*models.CarbonCertificate, error)
}

// CertificateHandler handles HTTP requests for carbon certificates.
type CertificateHandler struct {
	// CertificateService performs the underlying certificate operations.
	CertificateService CertificateService
}

// CreateCertificateRequest represents the JSON payload for certificate creation.
type CreateCertificateRequest struct {
	Country string `json:"country"`
	Status  string `json:"status"`
	Owner   *int64 `json:"owner"`
}

// TransferRequest represents the JSON payload for an ownership transfer.
type TransferRequest struct {
	CarbonCertificateID *int64 `json:"carbonCertificateId"`
	Owner               *int64 `json:"owner"`
}

// My handles GET /carbon-certificates/my, listing the caller's certificates.
func (h *CertificateHandler) My(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperrors.ErrUnauthorized)
		return
	}

	certificates, err := h.CertificateService.ListMine(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, certificates)
}

// Ownerless handles GET /carbon-certificates/ownerless, listing certificates
// without an owner.
func (h *CertificateHandler) Ownerless(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.CertificateService.ListOwnerless(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, certificates)
}

// Create handles POST /carbon-certificates.
// The supplied owner is stored as given; it is not checked against the
// caller's identity.
func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidation("invalid request body"))
		return
	}
	if req.Owner == nil {
		writeError(w, apperrors.NewValidation("owner must be a number conforming to the specified constraints"))
		return
	}

	cert, err := h.CertificateService.Create(r.Context(), req.Country, models.CertificateStatus(req.Status), req.Owner)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, cert)
}

// Update handles PUT /carbon-certificates/my, transferring ownership of a
// certificate the caller currently owns to another user.
func (h *CertificateHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperrors.ErrUnauthorized)
		return
	}

	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidation("invalid request body"))
		return
	}

	var messages []string
	if req.CarbonCertificateID == nil {
		messages = append(messages, "carbonCertificateId must be a number conforming to the specified constraints")
	}
	if req.Owner == nil {
		messages = append(messages, "owner must be a number conforming to the specified constraints")
	}
	if len(messages) > 0 {
		writeError(w, apperrors.NewValidation(messages...))
		return
	}

	cert, err := h.CertificateService.TransferOwnership(r.Context(), userID, *req.CarbonCertificateID, *req.Owner)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cert)
}
