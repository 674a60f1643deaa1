package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"blockexplorer/internal/core/domain"
	"blockexplorer/internal/logger"
	"blockexplorer/pkg/blockcypher"
	"blockexplorer/pkg/explorer"
)

// HTTPHandler handles incoming HTTP requests for the explorer API.
type HTTPHandler struct {
	explorerService explorer.Explorer
	logger          logger.AppLogger
}

// NewHTTPHandler creates a new handler with the necessary service dependency.
func NewHTTPHandler(explorerService explorer.Explorer, appLogger logger.AppLogger) (*HTTPHandler, error) {
	if explorerService == nil {
		return nil, errors.New("explorerService cannot be nil for HTTPHandler")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for HTTPHandler")
	}
	return &HTTPHandler{
		explorerService: explorerService,
		logger:          appLogger,
	}, nil
}

// HandleGetCurrencies handles requests to GET /v1/currencies
func (h *HTTPHandler) HandleGetCurrencies(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", requestLogger)
		return
	}

	infos := h.explorerService.Currencies(r.Context())
	respondWithJSON(w, http.StatusOK, CurrenciesResponse{Currencies: infos}, requestLogger)
}

// HandleGetWallet handles requests to GET /v1/wallets/{currency}/{address}
func (h *HTTPHandler) HandleGetWallet(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", requestLogger)
		return
	}

	currency := r.PathValue("currency")
	address := r.PathValue("address")
	if currency == "" || address == "" {
		respondWithError(w, http.StatusBadRequest, "Currency and address cannot be empty in URL path", requestLogger)
		return
	}

	wallet, err := h.explorerService.GetWallet(r.Context(), currency, address)
	if err != nil {
		h.respondWithFetchError(w, err, currency, "wallet", requestLogger)
		return
	}

	respondWithJSON(w, http.StatusOK, wallet, requestLogger)
}

// HandleGetTransaction handles requests to GET /v1/transactions/{currency}/{hash}
func (h *HTTPHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", requestLogger)
		return
	}

	currency := r.PathValue("currency")
	hash := r.PathValue("hash")
	if currency == "" || hash == "" {
		respondWithError(w, http.StatusBadRequest, "Currency and hash cannot be empty in URL path", requestLogger)
		return
	}

	tx, err := h.explorerService.GetTransaction(r.Context(), currency, hash)
	if err != nil {
		h.respondWithFetchError(w, err, currency, "transaction", requestLogger)
		return
	}

	respondWithJSON(w, http.StatusOK, tx, requestLogger)
}

// handleWatchlistCollection routes /v1/watchlist by method.
func (h *HTTPHandler) handleWatchlistCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.HandleGetWatchlist(w, r)
	case http.MethodPost:
		h.HandleWatch(w, r)
	default:
		requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", requestLogger)
	}
}

// HandleWatch handles requests to POST /v1/watchlist
func (h *HTTPHandler) HandleWatch(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", requestLogger)
		return
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			requestLogger.Warn("Failed to close request body in HandleWatch", "error", err)
		}
	}()

	var req WatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), requestLogger)
		return
	}

	requestLogger = requestLogger.With("currency", req.Currency, "address", req.Address)

	wallet, err := h.explorerService.Watch(r.Context(), req.Currency, req.Address, req.Name)
	if err != nil {
		h.respondWithFetchError(w, err, req.Currency, "wallet", requestLogger)
		return
	}

	requestLogger.Info("Wallet watched successfully")
	respondWithJSON(w, http.StatusOK, WatchResponse{
		Success: true,
		Message: "Wallet added to watchlist",
		Wallet:  wallet,
	}, requestLogger)
}

// HandleUnwatch handles requests to DELETE /v1/watchlist/{currency}/{address}
func (h *HTTPHandler) HandleUnwatch(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodDelete {
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", requestLogger)
		return
	}

	currency := r.PathValue("currency")
	address := r.PathValue("address")

	if err := h.explorerService.Unwatch(r.Context(), currency, address); err != nil {
		if isValidationError(err) {
			respondWithError(w, http.StatusBadRequest, err.Error(), requestLogger)
		} else {
			requestLogger.Error("Error removing wallet from watchlist", "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to remove wallet from watchlist", requestLogger)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true}, requestLogger)
}

// HandleGetWatchlist handles requests to GET /v1/watchlist
func (h *HTTPHandler) HandleGetWatchlist(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", requestLogger)
		return
	}

	wallets, err := h.explorerService.Watchlist(r.Context())
	if err != nil {
		requestLogger.Error("Error listing watchlist", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list watchlist", requestLogger)
		return
	}

	respondWithJSON(w, http.StatusOK, WatchlistResponse{Wallets: wallets}, requestLogger)
}

// respondWithFetchError maps service errors to HTTP responses: validation
// failures become 400, the folded not-found kinds become 404 with a message
// naming the blockchain, everything else is a 500.
func (h *HTTPHandler) respondWithFetchError(
	w http.ResponseWriter,
	err error,
	currency, entity string,
	requestLogger logger.AppLogger,
) {
	switch {
	case isValidationError(err):
		respondWithError(w, http.StatusBadRequest, err.Error(), requestLogger)
	case errors.Is(err, blockcypher.ErrWalletNotFound), errors.Is(err, blockcypher.ErrTransactionNotFound):
		msg := fmt.Sprintf(
			"We could not find a %s with that identifier on the %s blockchain.",
			entity,
			titleCase(currency),
		)
		respondWithError(w, http.StatusNotFound, msg, requestLogger)
	default:
		requestLogger.Error("Unexpected fetch error", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch "+entity, requestLogger)
	}
}

// titleCase capitalizes the first letter of a currency name for user-facing messages.
func titleCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// isValidationError reports whether an error stems from bad caller input
// rather than from the upstream API or storage.
func isValidationError(err error) bool {
	return errors.Is(err, blockcypher.ErrUnsupportedCurrency) ||
		errors.Is(err, blockcypher.ErrURLGeneration) ||
		errors.Is(err, domain.ErrInvalidWalletAddress) ||
		errors.Is(err, domain.ErrInvalidWalletName)
}

// respondWithError logs a warning and sends a JSON error response with the given code and message.
func respondWithError(w http.ResponseWriter, code int, message string, l logger.AppLogger) {
	if l == nil {
		l = logger.NewSlogAdapter(slog.Default())
	}
	l.Warn("Responding with error", "http_code", code, "message", message)
	respondWithJSON(w, code, ErrorResponse{Error: message}, l)
}

// respondWithJSON marshals the given payload into JSON and writes it to the response writer.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, l logger.AppLogger) {
	if l == nil {
		l = logger.NewSlogAdapter(slog.Default())
	}

	response, err := json.Marshal(payload)
	if err != nil {
		l.Error("Error marshaling JSON response",
			"error", err.Error(),
			"payload_type", fmt.Sprintf("%T", payload),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	n, writeErr := w.Write(response)
	if writeErr != nil {
		l.Error("Error writing response body", "error", writeErr, "bytes_written", n)
	}
}
