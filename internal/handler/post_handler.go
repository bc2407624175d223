package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

const maxContentLength = 500

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// лента общая для всех аутентифицированных, сортировка - забота клиента
	feed, err := h.PostService.GetFeed(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}

	WriteSuccess(w, feed, http.StatusOK)
}

func (h *Handlers) GetMyPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	posts, err := h.PostService.GetOwnPosts(r.Context(), userID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPut { // if put, then we update the post
		h.UpdatePost(w, r)
		return
	}

	if r.Method == http.MethodDelete {
		h.DeletePost(w, r)
		return
	}

	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var content string
	var imageURL *string

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		// пост с картинкой: поле content + файл image.
		// MaxBytesReader обрывает чтение тела на лимите, иначе
		// ParseMultipartForm молча сольёт излишек во временные файлы.
		r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

		if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
					h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
			} else {
				WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
			}
			return
		}

		content = r.FormValue("content")

		file, handler, err := r.FormFile("image")
		if err == nil {
			defer file.Close()

			// formats image
			allowedTypes := map[string]bool{
				"image/jpeg": true,
				"image/jpg":  true,
				"image/png":  true,
				"image/gif":  true,
				"image/webp": true,
			}

			fileType := handler.Header.Get("Content-Type")
			if !allowedTypes[fileType] {
				WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
				return
			}

			url, err := h.PostService.UploadImage(r.Context(), userID, handler.Filename, file, handler.Size)
			if err != nil {
				WriteError(w, "Ошибка загрузки изображения", http.StatusInternalServerError)
				return
			}
			imageURL = &url
		}
	} else {
		var req struct {
			Content string `json:"content" validate:"required"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
			return
		}

		content = req.Content
	}

	// content verification
	if content == "" {
		WriteError(w, "Отсутствует текст поста", http.StatusBadRequest)
		return
	}

	if utf8.RuneCountInString(content) > maxContentLength {
		WriteError(w, fmt.Sprintf("Текст поста не может быть длиннее %d символов", maxContentLength), http.StatusBadRequest)
		return
	}

	// creating a post: владелец берётся только из контекста авторизации
	post, err := h.PostService.CreatePost(r.Context(), userID, content, imageURL)
	if err != nil {
		writeAppError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// check url
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 4 || pathParts[3] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}
	postID := pathParts[3]

	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Content == "" {
		WriteError(w, "Отсутствует текст поста", http.StatusBadRequest)
		return
	}

	if utf8.RuneCountInString(req.Content) > maxContentLength {
		WriteError(w, fmt.Sprintf("Текст поста не может быть длиннее %d символов", maxContentLength), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), postID, userID, req.Content)
	if err != nil {
		writeAppError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// extracting the post id from the url
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 4 || pathParts[3] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}
	postID := pathParts[3]

	if err := h.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		writeAppError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пост удален"}, http.StatusOK)
}
