package adaptor

import (
	"io"
	"net/http"

	"ecommerce-backend/internal/client"
	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

// maxVoiceUploadBytes membatasi ukuran file audio yang diterima
const maxVoiceUploadBytes = 10 << 20 // 10 MB

// ChatHandler meneruskan payload chat/voice ke AI service dan relay
// response body apa adanya
type ChatHandler struct {
	ai  *client.AIService
	log *zap.Logger
}

func NewChatHandler(ai *client.AIService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		ai:  ai,
		log: log.With(zap.String("handler", "chat")),
	}
}

// Generate handles POST /api/chat/generate
func (h *ChatHandler) Generate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	respBody, err := h.ai.GenerateChat(r.Context(), body)
	if err != nil {
		h.log.Error("Chat generate proxy failed", zap.Error(err))
		utils.ResponseInternalError(w, "AI service unavailable")
		return
	}

	h.relay(w, respBody)
}

// Voice handles POST /api/chat/voice (multipart file upload)
func (h *ChatHandler) Voice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxVoiceUploadBytes); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Audio file is required", nil)
		return
	}
	defer file.Close()

	respBody, err := h.ai.VoiceChat(r.Context(), header.Filename, file)
	if err != nil {
		h.log.Error("Voice chat proxy failed", zap.Error(err))
		utils.ResponseInternalError(w, "AI service unavailable")
		return
	}

	h.relay(w, respBody)
}

// relay writes the AI service response verbatim
func (h *ChatHandler) relay(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
