// Package httpapi exposes the storefront store as a JSON API.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/catalog"
	"storefront/internal/logger"
	"storefront/internal/session"
	"storefront/internal/storefront"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	store         *storefront.Store
	tokens        *session.Tokens
	secureCookies bool
}

func NewHandler(store *storefront.Store, tokens *session.Tokens, secureCookies bool) *Handler {
	return &Handler{store: store, tokens: tokens, secureCookies: secureCookies}
}

// RegisterRoutes mounts every storefront endpoint on router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	router.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/{id:[0-9]+}", h.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)

	router.HandleFunc("/cart", h.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/cart/items", h.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/items/{id:[0-9]+}", h.UpdateCartItem).Methods(http.MethodPut)
	router.HandleFunc("/cart/items/{id:[0-9]+}", h.RemoveCartItem).Methods(http.MethodDelete)

	router.HandleFunc("/wishlist", h.GetWishlist).Methods(http.MethodGet)
	router.HandleFunc("/wishlist/{id:[0-9]+}", h.ToggleWishlist).Methods(http.MethodPost)
	router.HandleFunc("/wishlist/{id:[0-9]+}", h.RemoveWishlist).Methods(http.MethodDelete)

	router.HandleFunc("/orders", h.PlaceOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders", h.ListOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/pending", h.PendingOrder).Methods(http.MethodGet)
	router.HandleFunc("/orders/{id}", h.GetOrder).Methods(http.MethodGet)

	router.HandleFunc("/session", h.GetSession).Methods(http.MethodGet)
	router.HandleFunc("/session", h.Login).Methods(http.MethodPost)
	router.HandleFunc("/session", h.Logout).Methods(http.MethodDelete)
	router.HandleFunc("/session/register", h.Register).Methods(http.MethodPost)

	router.HandleFunc("/theme", h.GetTheme).Methods(http.MethodGet)
	router.HandleFunc("/theme", h.SetTheme).Methods(http.MethodPut)
	router.HandleFunc("/theme/toggle", h.ToggleTheme).Methods(http.MethodPost)

	router.HandleFunc("/comparison", h.GetComparison).Methods(http.MethodGet)
	router.HandleFunc("/comparison/{id:[0-9]+}", h.ToggleComparison).Methods(http.MethodPost)
	router.HandleFunc("/views", h.RecentlyViewed).Methods(http.MethodGet)
	router.HandleFunc("/views/{id:[0-9]+}", h.RecordView).Methods(http.MethodPost)
}

func productID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func decode(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// ListProducts handles GET /products?q=&category=&price=&sort=
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	sortOrder, err := catalog.ParseSortOrder(params.Get("sort"))
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	price, err := catalog.ParsePriceRange(params.Get("price"))
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	products := h.store.Catalog().Find(catalog.Query{
		Term:     params.Get("q"),
		Category: params.Get("category"),
		Price:    price,
		Sort:     sortOrder,
	})
	respondJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	p, ok := h.store.Catalog().Get(id)
	if !ok {
		respondStoreError(w, r, storefront.ErrUnknownProduct)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Catalog().Categories())
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.CartSummary())
}

type addItemRequest struct {
	ID int `json:"id"`
}

// AddCartItem handles POST /cart/items. Each call adds one unit.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.store.AddToCart(r.Context(), req.ID); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, h.store.CartSummary())
}

type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req quantityRequest
	if err := decode(r, &req); err != nil || req.Quantity == nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.store.SetCartQuantity(r.Context(), id, *req.Quantity)
	respondJSON(w, http.StatusOK, h.store.CartSummary())
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	h.store.RemoveFromCart(r.Context(), id)
	respondJSON(w, http.StatusOK, h.store.CartSummary())
}

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Wishlist())
}

func (h *Handler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	m, err := h.store.ToggleWishlist(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"id": id, "membership": m})
}

func (h *Handler) RemoveWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	h.store.RemoveFromWishlist(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// PlaceOrder handles POST /orders. It answers 202 with the draft while
// processing continues; ?wait=true blocks until the order commits.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	pending, err := h.store.PlaceOrder(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); !wait {
		respondJSON(w, http.StatusAccepted, pending.Draft())
		return
	}

	o, err := pending.Wait(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, o)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Orders())
}

func (h *Handler) PendingOrder(w http.ResponseWriter, r *http.Request) {
	pending, ok := h.store.PendingOrder()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, pending.Draft())
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.store.Order(mux.Vars(r)["id"])
	if !ok {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, o)
}

type sessionResponse struct {
	User  *session.Identity `json:"user"`
	Token string            `json:"token,omitempty"`
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	var resp sessionResponse
	if id, ok := h.store.User(); ok {
		resp.User = &id
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in session.LoginInput
	if err := decode(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := session.LoginIdentity(in)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	h.store.Login(r.Context(), id)
	h.startSession(w, r, http.StatusOK, id)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in session.RegisterInput
	if err := decode(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.store.Register(r.Context(), in)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	h.startSession(w, r, http.StatusCreated, id)
}

// startSession issues a token when a signing secret is configured.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, status int, id session.Identity) {
	resp := sessionResponse{User: &id}

	if h.tokens != nil {
		token, err := h.tokens.Issue(id)
		switch {
		case errors.Is(err, session.ErrSecretNotSet):
		case err != nil:
			logger.FromCtx(r.Context()).Error("failed to issue session token", zap.Error(err))
		default:
			resp.Token = token
			http.SetCookie(w, &http.Cookie{
				Name:     session.CookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   h.secureCookies,
				SameSite: http.SameSiteLaxMode,
			})
		}
	}

	respondJSON(w, status, resp)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

type themeBody struct {
	Theme storefront.Theme `json:"theme"`
}

func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, themeBody{Theme: h.store.Theme()})
}

func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeBody
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.SetTheme(r.Context(), req.Theme); err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, themeBody{Theme: h.store.ToggleTheme(r.Context())})
}

func (h *Handler) GetComparison(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Comparison())
}

func (h *Handler) ToggleComparison(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	added, err := h.store.ToggleComparison(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"id": id, "compared": added})
}

func (h *Handler) RecentlyViewed(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.RecentlyViewed())
}

func (h *Handler) RecordView(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.store.RecordView(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
