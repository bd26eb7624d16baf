package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mkaneko/sleepoints/internal/feed"
	"github.com/mkaneko/sleepoints/internal/models"
	"github.com/mkaneko/sleepoints/internal/service"
)

const (
	defaultOthersLimit = 10
	maxOthersLimit     = 200
)

// App holds the handler dependencies: the rewards service, the feed
// cache, and the identity of the single configured current user.
type App struct {
	Rewards *service.Rewards
	Feed    *feed.Cache
	Owner   feed.Owner

	// CurrentUserID is the configuration-resolved current user. Injected
	// here at the transport boundary so the business logic stays
	// multi-user ready.
	CurrentUserID string
}

// NewApp creates the handler set.
func NewApp(rewards *service.Rewards, feedCache *feed.Cache, owner feed.Owner, currentUserID string) *App {
	return &App{Rewards: rewards, Feed: feedCache, Owner: owner, CurrentUserID: currentUserID}
}

func (a *App) meHandler(w http.ResponseWriter, r *http.Request) {
	user, err := a.Rewards.Me(r.Context(), a.CurrentUserID)
	if err != nil {
		slog.Error("me failed", "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	writeJSON(w, user)
}

func (a *App) sessionsHandler(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.Rewards.Sessions(r.Context(), a.CurrentUserID)
	if err != nil {
		slog.Error("sessions failed", "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	if sessions == nil {
		sessions = []models.SleepSession{}
	}
	writeJSON(w, sessions)
}

func (a *App) productsHandler(w http.ResponseWriter, r *http.Request) {
	catalog, err := a.Rewards.Products(r.Context())
	if err != nil {
		slog.Error("products failed", "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	if catalog == nil {
		catalog = []models.Product{}
	}
	writeJSON(w, catalog)
}

func (a *App) productHandler(w http.ResponseWriter, r *http.Request) {
	product, err := a.Rewards.Product(r.Context(), r.PathValue("id"))
	if errors.Is(err, service.ErrProductNotFound) {
		WriteJSONError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		slog.Error("product failed", "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	writeJSON(w, product)
}

type redeemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

func (a *App) redeemHandler(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	res, err := a.Rewards.Redeem(r.Context(), a.CurrentUserID, req.ProductID, req.Qty)
	switch {
	case err == nil:
		writeJSON(w, res)
	case errors.Is(err, service.ErrProductNotFound):
		WriteJSONError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrQuantityLimitExceeded),
		errors.Is(err, service.ErrInsufficientBalance):
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
	default:
		slog.Error("redeem failed", "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
	}
}

func (a *App) goodThingsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	othersLimit := defaultOthersLimit
	if v := q.Get("others_limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxOthersLimit {
			WriteJSONError(w, http.StatusBadRequest, "validation_error", "others_limit must be in [1, 200]")
			return
		}
		othersLimit = n
	}
	includeRaw := boolParam(q.Get("include_raw"))
	flatten := boolParam(q.Get("flatten"))

	rows, err := a.Feed.Rows(r.Context())
	switch {
	case err == nil:
	case errors.Is(err, feed.ErrNotConfigured):
		WriteJSONError(w, http.StatusInternalServerError, "not_configured", err.Error())
		return
	case errors.Is(err, feed.ErrUpstreamFormat), errors.Is(err, feed.ErrUpstreamUnavailable):
		slog.Warn("feed fetch failed", "error", err)
		WriteJSONError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	default:
		slog.Error("feed fetch failed", "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	writeJSON(w, feed.Aggregate(rows, a.Owner, othersLimit, includeRaw, flatten))
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func boolParam(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
