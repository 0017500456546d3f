package store

import (
	"context"

	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
	"github.com/MKhiriev/go-wallet-tracker/models"
)

// fileUserRepository is the JSON-file implementation of [UserRepository].
// The users collection lives in a single users.json file.
type fileUserRepository struct {
	users  *jsonCollection[models.User]
	ids    IDGenerator
	logger *logger.Logger
}

func newFileUserRepository(users *jsonCollection[models.User], ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating file user repository")
	return &fileUserRepository{
		users:  users,
		ids:    ids,
		logger: logger,
	}
}

// CreateUser assigns a fresh identifier, appends the user to the collection
// and rewrites the file. Email uniqueness is checked against the loaded
// collection under the collection lock.
func (r *fileUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	records := r.users.load(ctx)
	for _, existing := range records {
		if existing.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	user.UserID = r.ids.Generate()
	records = append(records, user)

	if err := r.users.write(records); err != nil {
		log.Err(err).Msg("error persisting users collection")
		return models.User{}, err
	}

	return user, nil
}

func (r *fileUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	for _, user := range r.users.load(ctx) {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

func (r *fileUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	for _, user := range r.users.load(ctx) {
		if user.UserID == userID {
			return user, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}
