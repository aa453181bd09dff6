package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.MenuService.ListCategories(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.MenuService.CreateCategory(r.Context(), category)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		utils.WriteJSONError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	category.CategoryID = categoryID

	updated, err := h.services.MenuService.UpdateCategory(r.Context(), category)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		utils.WriteJSONError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	if err := h.services.MenuService.DeleteCategory(r.Context(), categoryID); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listMenu serves the public menu. Unauthenticated callers only see
// available items; staff and managers may pass all=true to include
// everything (for the admin views).
func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := models.MenuFilter{
		Search:        r.URL.Query().Get("search"),
		OnlyAvailable: true,
	}
	if categoryID := r.URL.Query().Get("category_id"); categoryID != "" {
		id, err := strconv.ParseInt(categoryID, 10, 64)
		if err != nil {
			utils.WriteJSONError(w, "invalid category id", http.StatusBadRequest)
			return
		}
		filter.CategoryID = id
	}

	if r.URL.Query().Get("all") == "true" {
		if role, token := h.roleFromBearer(r); token {
			if role == models.RoleStaff || role == models.RoleManager {
				filter.OnlyAvailable = false
			}
		}
	}

	items, err := h.services.MenuService.ListMenu(r.Context(), filter)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int("items", len(items)).Msg("menu listed")
	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemID")
	if err != nil {
		utils.WriteJSONError(w, "invalid menu item id", http.StatusBadRequest)
		return
	}

	item, err := h.services.MenuService.GetMenuItem(r.Context(), itemID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.MenuService.CreateMenuItem(r.Context(), item)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemID")
	if err != nil {
		utils.WriteJSONError(w, "invalid menu item id", http.StatusBadRequest)
		return
	}

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	item.MenuItemID = itemID

	updated, err := h.services.MenuService.UpdateMenuItem(r.Context(), item)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemID")
	if err != nil {
		utils.WriteJSONError(w, "invalid menu item id", http.StatusBadRequest)
		return
	}

	if err := h.services.MenuService.DeleteMenuItem(r.Context(), itemID); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// roleFromBearer parses an optional bearer token on an otherwise public
// route. The second return is false when no valid token is present.
func (h *Handler) roleFromBearer(r *http.Request) (models.Role, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		return "", false
	}
	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return "", false
	}
	return token.Role, true
}

// pathID parses a positive int64 chi URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return parseID(chi.URLParam(r, name))
}

// parseID parses a positive int64 identifier from its decimal string form.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}
