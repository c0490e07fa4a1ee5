package db

import (
	"context"
	"errors"
	"fmt"

	"jobdesk/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (domain.User, error) {
	if r.db == nil {
		return domain.User{}, errDBUnavailable
	}
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, "google_id = ?", googleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return userFromModel(model), nil
}

// GetOrCreate resolves the user for a verified identity, inserting on
// first sight. The unique index on google_id plus insert-on-conflict
// keeps concurrent first logins from producing two rows: the losing
// insert is a no-op and the follow-up read returns the winner's row.
func (r *UserRepository) GetOrCreate(ctx context.Context, identity domain.Identity) (domain.User, error) {
	if r.db == nil {
		return domain.User{}, errDBUnavailable
	}
	user, err := r.GetByGoogleID(ctx, identity.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}
	model := UserModel{
		GoogleID: identity.Subject,
		Email:    identity.Email,
		Name:     identity.Name,
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "google_id"}},
		DoNothing: true,
	}).Create(&model)
	if result.Error != nil {
		// The conflict clause only covers google_id; a duplicate on
		// the email index (same address, different subject) still
		// surfaces as a driver error.
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.User{}, fmt.Errorf("%w: email already registered to another account", domain.ErrConflict)
		}
		return domain.User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return r.GetByGoogleID(ctx, identity.Subject)
	}
	return userFromModel(model), nil
}

func userFromModel(model UserModel) domain.User {
	return domain.User{
		ID:       model.ID,
		GoogleID: model.GoogleID,
		Email:    model.Email,
		Name:     model.Name,
	}
}
