package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
)

// Profile documents are keyed by the identity-provider uid.
type userRepository struct {
	col *firestore.CollectionRef
}

func NewUserRepository(client *firestore.Client) model.UserRepository {
	return &userRepository{col: client.Collection(usersCollection)}
}

func (r *userRepository) Create(ctx context.Context, profile *model.UserProfile) error {
	_, err := r.col.Doc(profile.UserID).Set(ctx, profile)
	return errors.Wrap(err, "create user profile")
}

func (r *userRepository) Find(ctx context.Context, userID string) (*model.UserProfile, error) {
	doc, err := r.col.Doc(userID).Get(ctx)
	if isNotFound(err) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get user profile %s", userID)
	}

	var profile model.UserProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Wrapf(err, "decode user profile %s", userID)
	}
	return &profile, nil
}

func (r *userRepository) Update(ctx context.Context, profile *model.UserProfile) error {
	_, err := r.col.Doc(profile.UserID).Set(ctx, profile)
	return errors.Wrapf(err, "update user profile %s", profile.UserID)
}

func (r *userRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.col.Doc(userID).Delete(ctx)
	return errors.Wrapf(err, "delete user profile %s", userID)
}
