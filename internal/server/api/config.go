// Package api provides HTTP API handlers for the mudra daemon.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ayusman/mudra/internal/store"
)

// defaults maps every tunable setting to its default value. The GET
// response merges stored values over these, so the UI always sees the
// full option set.
var defaults = map[string]string{
	store.SettingDominantHand:    "Right",
	store.SettingPinchDistance:   "0.05",
	store.SettingDebounceFrames:  "5",
	store.SettingScrollThreshold: "0.3",
	store.SettingMotionThreshold: "1.0",
	store.SettingCameraDevice:    "0",
	store.SettingEnabled:         "true",
}

// ConfigHandler handles GET and PUT requests for the named tuning options.
type ConfigHandler struct {
	store *store.Store
}

// NewConfigHandler creates a new ConfigHandler with the given store.
func NewConfigHandler(s *store.Store) *ConfigHandler {
	return &ConfigHandler{store: s}
}

// ServeHTTP implements the http.Handler interface.
func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// get handles GET /api/config and returns all options, stored values
// merged over defaults.
func (h *ConfigHandler) get(w http.ResponseWriter, r *http.Request) {
	stored, err := h.store.Settings().All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	config := make(map[string]string, len(defaults))
	for key, value := range defaults {
		config[key] = value
	}
	for key, value := range stored {
		if _, ok := defaults[key]; ok {
			config[key] = value
		}
	}

	writeJSON(w, http.StatusOK, config)
}

// update handles PUT /api/config. Only known option keys are accepted,
// and each value is validated before anything is persisted.
func (h *ConfigHandler) update(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	for key, value := range req {
		if err := validateSetting(key, value); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	for key, value := range req {
		if err := h.store.Settings().Set(key, value); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to save settings")
			return
		}
	}

	h.get(w, r)
}

// validateSetting checks one key-value pair against the option schema.
func validateSetting(key, value string) error {
	switch key {
	case store.SettingDominantHand:
		if value != "Left" && value != "Right" {
			return fmt.Errorf("%s must be Left or Right", key)
		}
	case store.SettingPinchDistance, store.SettingScrollThreshold, store.SettingMotionThreshold:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("%s must be a positive number", key)
		}
	case store.SettingDebounceFrames:
		v, err := strconv.Atoi(value)
		if err != nil || v < 1 {
			return fmt.Errorf("%s must be a positive integer", key)
		}
	case store.SettingCameraDevice:
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("%s must be an integer device ID", key)
		}
	case store.SettingEnabled:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%s must be true or false", key)
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
