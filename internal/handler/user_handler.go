package handlers

import (
	"net/http"
)

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// get user by id
	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	// forming the response
	response := UserResponse{
		UserId:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}

	WriteSuccess(w, response, http.StatusOK)
}
