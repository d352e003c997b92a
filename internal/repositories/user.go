package repositories

import (
	"context"
	"errors"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/store"
)

// UsersCollection is the document collection holding user accounts.
const UsersCollection = "users"

// UserReadRepository reads user accounts from the document store.
type UserReadRepository struct {
	store store.Store
}

func NewUserReadRepository(s store.Store) *UserReadRepository {
	return &UserReadRepository{store: s}
}

// GetByUsername returns the user with the given username, or nil when
// absent. The store gives no secondary uniqueness guarantee; if several
// documents match, the first encountered is used.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	docs, err := r.store.Query(ctx, UsersCollection, &store.Filter{Field: "username", Value: username}, "")
	if err != nil {
		logger.Log.Errorw("failed to query user by username", "username", username, "error", err)
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	user := models.UserFromDocument(docs[0])
	return &user, nil
}

// GetByID returns the user with the given ID, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := r.store.Get(ctx, UsersCollection, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get user by id", "id", id, "error", err)
		return nil, err
	}
	user := models.UserFromDocument(doc)
	return &user, nil
}

// GetAll returns every user account.
func (r *UserReadRepository) GetAll(ctx context.Context) ([]models.User, error) {
	docs, err := r.store.StreamAll(ctx, UsersCollection)
	if err != nil {
		logger.Log.Errorw("failed to stream users", "error", err)
		return nil, err
	}
	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, models.UserFromDocument(doc))
	}
	return users, nil
}

// UserWriteRepository writes user accounts to the document store.
type UserWriteRepository struct {
	store store.Store
}

func NewUserWriteRepository(s store.Store) *UserWriteRepository {
	return &UserWriteRepository{store: s}
}

// Create inserts a new user and returns its store-assigned ID. The username
// is claimed through the store's uniqueness primitive; a taken username
// surfaces as store.ErrConflict.
func (r *UserWriteRepository) Create(ctx context.Context, user models.User) (string, error) {
	id, err := r.store.PutUnique(ctx, UsersCollection, "username", user.Fields())
	if err != nil {
		logger.Log.Errorw("failed to create user", "username", user.Username, "error", err)
		return "", err
	}
	logger.Log.Infow("user created", "id", id, "username", user.Username)
	return id, nil
}

// Update merges partial fields into a user document. Returns
// store.ErrNotFound when the user does not exist.
func (r *UserWriteRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := r.store.Update(ctx, UsersCollection, id, fields); err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "error", err)
		return err
	}
	logger.Log.Infow("user updated", "id", id)
	return nil
}

// Delete removes a user document. Returns store.ErrNotFound when the user
// does not exist.
func (r *UserWriteRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, UsersCollection, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "error", err)
		return err
	}
	logger.Log.Infow("user deleted", "id", id)
	return nil
}
