package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Maaz9703/maazweb-api/internal/repo"
)

type SettingsService struct {
	Repo *repo.GormRepo
}

// Get returns the settings singleton as a key/value map, creating the empty
// document on first read.
func (s *SettingsService) Get(ctx context.Context) (map[string]any, error) {
	setting, err := s.Repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return decodeSettings(setting.Data)
}

// Update merges the given keys into the singleton and upserts it; keys not
// present in the update are kept.
func (s *SettingsService) Update(ctx context.Context, updates map[string]any) (map[string]any, error) {
	setting, err := s.Repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	current, err := decodeSettings(setting.Data)
	if err != nil {
		return nil, err
	}
	for k, v := range updates {
		current[k] = v
	}

	data, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	if _, err := s.Repo.UpsertSettings(ctx, data); err != nil {
		return nil, err
	}
	return current, nil
}

func decodeSettings(data []byte) (map[string]any, error) {
	values := map[string]any{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return values, nil
}
