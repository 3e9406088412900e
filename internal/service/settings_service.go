package service

import (
	"context"
	"fmt"

	"github.com/fernet/fernet-go"

	"github.com/jmertens/portfolio-tracker-backend/internal/apperrors"
	"github.com/jmertens/portfolio-tracker-backend/internal/repository"
)

// settingQuotesAPIKey is the setting table key under which the encrypted
// quotes API key is stored.
const settingQuotesAPIKey = "quotes_api_key"

// SettingsService manages application settings, in particular the quotes API
// key, which is stored fernet-encrypted at rest. A key from the environment
// serves as a fallback when none has been stored.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	keys         []*fernet.Key
	envAPIKey    string
}

// NewSettingsService creates a new SettingsService. fernetKey is the base64
// key used to encrypt stored secrets; when empty, storing an API key is
// rejected but a key from the environment still works.
func NewSettingsService(settingsRepo *repository.SettingsRepository, fernetKey, envAPIKey string) (*SettingsService, error) {
	s := &SettingsService{
		settingsRepo: settingsRepo,
		envAPIKey:    envAPIKey,
	}

	if fernetKey != "" {
		key, err := fernet.DecodeKey(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("invalid fernet key: %w", err)
		}
		s.keys = []*fernet.Key{key}
	}

	return s, nil
}

// SetAPIKey encrypts and stores the quotes API key.
func (s *SettingsService) SetAPIKey(ctx context.Context, apiKey string) error {
	if len(s.keys) == 0 {
		return apperrors.ErrEncryptionKeyMissing
	}

	token, err := fernet.EncryptAndSign([]byte(apiKey), s.keys[0])
	if err != nil {
		return fmt.Errorf("failed to encrypt API key: %w", err)
	}

	return s.settingsRepo.Set(ctx, settingQuotesAPIKey, string(token))
}

// APIKey returns the quotes API key: the stored, encrypted key takes
// precedence over the environment fallback. Implements quotes.KeySource.
func (s *SettingsService) APIKey(ctx context.Context) (string, error) {
	if len(s.keys) > 0 {
		token, ok, err := s.settingsRepo.Get(ctx, settingQuotesAPIKey)
		if err != nil {
			return "", err
		}
		if ok {
			msg := fernet.VerifyAndDecrypt([]byte(token), 0, s.keys)
			if msg == nil {
				return "", fmt.Errorf("failed to decrypt stored API key")
			}
			return string(msg), nil
		}
	}

	if s.envAPIKey != "" {
		return s.envAPIKey, nil
	}

	return "", apperrors.ErrAPIKeyNotConfigured
}

// HasAPIKey reports whether a quotes API key is available from either source.
func (s *SettingsService) HasAPIKey(ctx context.Context) bool {
	_, err := s.APIKey(ctx)
	return err == nil
}
