package alert

import (
	"encoding/json"
	"os"
	"sync"

	"TickerSentinel/internal/model"
)

// Store holds the alert rules for the process, optionally mirrored to a JSON
// state file so rules survive restarts. An empty file path keeps the store
// memory-only.
type Store struct {
	mu       sync.Mutex
	rules    []*model.AlertRule
	filePath string
}

// NewStore creates a Store, loading prior rules from the state file when it
// exists.
func NewStore(filePath string) (*Store, error) {
	s := &Store{filePath: filePath}
	if filePath == "" {
		return s, nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &s.rules); err != nil {
		return nil, err
	}
	return s, nil
}

// Add appends a rule and persists.
func (s *Store) Add(rule *model.AlertRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rule)
	return s.save()
}

// Remove deletes the rule whose ID starts with the given prefix. Returns the
// removed rule, or nil when nothing matched.
func (s *Store) Remove(idPrefix string) (*model.AlertRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rules {
		if len(idPrefix) > 0 && len(r.ID) >= len(idPrefix) && r.ID[:len(idPrefix)] == idPrefix {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			return r, s.save()
		}
	}
	return nil, nil
}

// All returns a copy of the current rule set.
func (s *Store) All() []*model.AlertRule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.AlertRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// ForSymbol returns the rules bound to the given symbol.
func (s *Store) ForSymbol(symbol string) []*model.AlertRule {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.AlertRule
	for _, r := range s.rules {
		if r.Symbol == symbol {
			out = append(out, r)
		}
	}
	return out
}

// Evaluate runs the fire-once evaluation for the symbol at the given price,
// removes the fired rules from the store and persists the remainder.
func (s *Store) Evaluate(symbol string, price float64) ([]*model.AlertRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fired, remaining := Evaluate(symbol, price, s.rules)
	if len(fired) == 0 {
		return nil, nil
	}
	s.rules = remaining
	return fired, s.save()
}

func (s *Store) save() error {
	if s.filePath == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.rules, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0644)
}
