package helpers

import (
	"encoding/json"
	"fmt"

	helpercfg "helperkit/core/helpers"
	"helperkit/core/utils"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service exposes the helper collection to the HTTP handlers.
type Service struct {
	logger *zap.Logger
	colors *lru.Cache[string, string]
	sf     singleflight.Group
	report *utils.Debounced[int]
}

// NewService creates a helpers service with a bounded color cache.
func NewService(cfg helpercfg.Config, logger *zap.Logger) (*Service, error) {
	colors, err := lru.New[string, string](cfg.CacheSize())
	if err != nil {
		return nil, fmt.Errorf("failed to create color cache: %w", err)
	}

	s := &Service{logger: logger, colors: colors}
	s.report = utils.NewDebounced(func(entries int) {
		s.logger.Debug("Color cache settled", zap.Int("entries", entries))
	}, cfg.DebounceDelay())
	return s, nil
}

// Close drops any pending cache report.
func (s *Service) Close() {
	s.report.Cancel()
}

// Color returns the color of text, computing it at most once per cached text
// even under concurrent requests.
func (s *Service) Color(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	if c, ok := s.colors.Get(text); ok {
		return c, true
	}

	v, _, _ := s.sf.Do(text, func() (any, error) {
		if c, ok := s.colors.Get(text); ok {
			return c, nil
		}
		c, _ := utils.StringToColor(text)
		s.colors.Add(text, c)
		s.report.Call(s.colors.Len())
		return c, nil
	})
	return v.(string), true
}

// CachedColors returns the number of cached colors.
func (s *Service) CachedColors() int {
	return s.colors.Len()
}

// Prune removes empty values from a JSON document. Shallow pruning requires a
// JSON object; deep pruning accepts any document.
func (s *Service) Prune(body []byte, deep bool) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if deep {
		return utils.PruneEmptyDeep(doc), nil
	}
	r, ok := doc.(map[string]any)
	if !ok {
		return nil, utils.ErrNotObject
	}
	return utils.PruneEmpty(r), nil
}

// ErrorMessage extracts the first field message from a field-error document.
func (s *Service) ErrorMessage(body []byte) (string, bool, error) {
	fe, err := utils.ParseFieldErrors(body)
	if err != nil {
		return "", false, err
	}
	msg, ok := utils.ExtractErrorMessage(fe)
	return msg, ok, nil
}

// TypeOf decodes a JSON value and returns its type tag.
func (s *Service) TypeOf(body []byte) (string, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return utils.TypeOf(v), nil
}

// Find looks up a record by field, defaulting to "id".
func (s *Service) Find(records []utils.Record, field string, key any) (utils.Record, bool) {
	if field == "" {
		field = utils.DefaultKeyField
	}
	return utils.FindByField(records, field, key)
}

// Match returns the records sharing a field value with candidates.
func (s *Service) Match(records, candidates []utils.Record, field string) ([]utils.Record, bool) {
	if field == "" {
		field = utils.DefaultKeyField
	}
	return utils.FindMatchingBy(records, candidates, field)
}
