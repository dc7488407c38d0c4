package webui

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cwbudde/algo-eq/editor"
	"github.com/cwbudde/algo-eq/params"
)

// ParamState is one entry of GET /api/params.
type ParamState struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Control    string         `json:"control"`
	Value      float64        `json:"value"`
	Normalized float64        `json:"normalized"`
	Display    string         `json:"display"`
	Min        float64        `json:"min"`
	Max        float64        `json:"max"`
	Interval   float64        `json:"interval,omitempty"`
	Skew       float64        `json:"skew,omitempty"`
	Choices    []string       `json:"choices,omitempty"`
	Labels     []editor.Label `json:"labels,omitempty"`
}

// ParamStates reports every control's parameter with its display string.
func (s *Server) ParamStates() []ParamState {
	out := make([]ParamState, 0, len(s.controls))

	for _, c := range s.controls {
		v := s.store.Value(c.Param.ID)
		out = append(out, ParamState{
			ID:         c.Param.ID,
			Name:       c.Param.Name,
			Control:    c.Kind.String(),
			Value:      v,
			Normalized: c.Proportion(v),
			Display:    c.DisplayString(v),
			Min:        c.Param.Range.Min,
			Max:        c.Param.Range.Max,
			Interval:   c.Param.Range.Interval,
			Skew:       c.Param.Range.Skew,
			Choices:    c.Param.Choices,
			Labels:     c.Labels,
		})
	}

	return out
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ParamStates())
	case http.MethodPost:
		var values map[string]float64
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			http.Error(w, fmt.Sprintf("decode: %v", err), http.StatusBadRequest)
			return
		}

		// Validate first so that a bad request changes nothing.
		for id := range values {
			if _, ok := s.store.Index(id); !ok {
				http.Error(w, fmt.Errorf("%w: %q", params.ErrUnknownParameter, id).Error(), http.StatusBadRequest)
				return
			}
		}

		for id, v := range values {
			if err := s.store.Set(id, v); err != nil {
				status := http.StatusInternalServerError
				if errors.Is(err, params.ErrUnknownParameter) {
					status = http.StatusBadRequest
				}
				http.Error(w, err.Error(), status)
				return
			}
		}

		writeJSON(w, http.StatusOK, s.ParamStates())
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleStyle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.style)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
