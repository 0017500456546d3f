package store

import (
	"context"

	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
)

// fileCredentialRepository is the JSON-file implementation of
// [CredentialRepository]. The mapping lives in passwords.json, a sibling of
// the entity collections, so secret material stays out of the profile file.
type fileCredentialRepository struct {
	credentials *jsonTable
	logger      *logger.Logger
}

func newFileCredentialRepository(credentials *jsonTable, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating file credential repository")
	return &fileCredentialRepository{
		credentials: credentials,
		logger:      logger,
	}
}

func (r *fileCredentialRepository) GetCredential(ctx context.Context, userID string) (string, error) {
	r.credentials.mu.Lock()
	defer r.credentials.mu.Unlock()

	hash, ok := r.credentials.load(ctx)[userID]
	if !ok {
		return "", ErrCredentialNotFound
	}

	return hash, nil
}

func (r *fileCredentialRepository) SetCredential(ctx context.Context, userID string, passwordHash string) error {
	log := logger.FromContext(ctx)

	r.credentials.mu.Lock()
	defer r.credentials.mu.Unlock()

	entries := r.credentials.load(ctx)
	entries[userID] = passwordHash

	if err := r.credentials.write(entries); err != nil {
		log.Err(err).Msg("error persisting credentials table")
		return err
	}

	return nil
}
