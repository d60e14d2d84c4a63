package httpapi

import (
	"errors"
	"net/http"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/server/models"
	"github.com/GURUTIKI/presently/internal/server/services"
	"github.com/go-chi/chi/v5"
)

// --------- DTOs ---------

type authReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type createListReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createItemReq struct {
	ListID   string `json:"listId"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Price    string `json:"price"`
	ImageURL string `json:"imageUrl"`
}

type itemStatusReq struct {
	IsBought bool   `json:"isBought"`
	BoughtBy string `json:"boughtBy"`
}

// internalError logs the cause and answers with a generic message so storage
// details never leak to clients.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	errorJSON(w, http.StatusInternalServerError, "Internal Server Error")
}

// --------- Auth ---------

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in authReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "Missing fields")
		return
	}

	user, err := s.users.Register(r.Context(), in.Username, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			errorJSON(w, http.StatusBadRequest, "Missing fields")
		case errors.Is(err, common.ErrorAlreadyExists):
			errorJSON(w, http.StatusConflict, "Username already taken")
		default:
			s.internalError(w, r, err)
		}
		return
	}

	setSessionCookie(w, user.ID)
	writeJSON(w, http.StatusOK, userDTO{ID: user.ID, Username: user.Username})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in authReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "Missing fields")
		return
	}

	user, err := s.users.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Warn(r.Context(), "login rejected", "username", in.Username)
			errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.internalError(w, r, err)
		return
	}

	setSessionCookie(w, user.ID)
	writeJSON(w, http.StatusOK, userDTO{ID: user.ID, Username: user.Username})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --------- Lists ---------

func (s *Server) handleListLists(w http.ResponseWriter, r *http.Request) {
	result, err := s.lists.ListByOwner(r.Context(), sessionUserID(r.Context()))
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if result == nil {
		result = []*models.GiftList{}
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var in createListReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "Missing fields")
		return
	}

	list, err := s.lists.Create(r.Context(), sessionUserID(r.Context()), in.Title, in.Description)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			errorJSON(w, http.StatusBadRequest, "Missing fields")
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// --------- Items ---------

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var in createItemReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "Missing fields")
		return
	}

	item, err := s.items.Create(r.Context(), sessionUserID(r.Context()), services.NewItemParams{
		ListID:   in.ListID,
		Name:     in.Name,
		URL:      in.URL,
		Price:    in.Price,
		ImageURL: in.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			errorJSON(w, http.StatusBadRequest, "Missing fields")
		case errors.Is(err, common.ErrorNotFound):
			errorJSON(w, http.StatusNotFound, "List not found or unauthorized")
		default:
			s.internalError(w, r, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	listID := r.URL.Query().Get("listId")
	if listID == "" {
		errorJSON(w, http.StatusBadRequest, "List ID required")
		return
	}

	result, err := s.items.ListForRequester(r.Context(), listID, requesterID(r))
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if result == nil {
		result = []*models.GiftItem{}
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleUpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	var in itemStatusReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "Missing fields")
		return
	}

	item, err := s.items.UpdateStatus(r.Context(), chi.URLParam(r, "id"), in.IsBought, in.BoughtBy)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			errorJSON(w, http.StatusNotFound, "Item not found")
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	err := s.items.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			errorJSON(w, http.StatusNotFound, "Item not found or delete failed")
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --------- Uploads ---------

func (s *Server) handlePresignUpload(w http.ResponseWriter, r *http.Request) {
	if !s.images.Enabled() {
		errorJSON(w, http.StatusServiceUnavailable, "Image uploads not configured")
		return
	}

	key, url, err := s.images.PresignUpload(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key, "uploadUrl": url})
}
