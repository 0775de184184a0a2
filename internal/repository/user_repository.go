package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"skicheck/internal/model"
	"skicheck/pkg/logger"
)

// Filter is an opaque query predicate applied unmodified to a list query.
type Filter func(*gorm.DB) *gorm.DB

// UsernameContains filters users whose username contains the given fragment.
func UsernameContains(fragment string) Filter {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("username LIKE ?", "%"+fragment+"%")
	}
}

// UserRepository defines persistence operations for users. Implementations
// forward to the datastore without transformation; errors propagate
// unchanged to the calling service.
type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, page, pageSize int, filter Filter, sort string) ([]model.User, error)
	Save(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, user *model.User) error
	ResetAllPaymentStatus(ctx context.Context) error
}

type userRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db, log: logger.Named("user_repository")}
}

func (r *userRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Roles").
		Preload("Detail").
		Preload("Detail.Equipment")
}

func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	start := time.Now()
	var users []model.User
	err := r.withAssociations(ctx).Find(&users).Error
	r.log.Debug().Dur("elapsed", time.Since(start)).Int("count", len(users)).Msg("find all users")
	return users, err
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	start := time.Now()
	var user model.User
	err := r.withAssociations(ctx).First(&user, id).Error
	r.log.Debug().Uint("id", id).Dur("elapsed", time.Since(start)).Msg("find user by id")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	start := time.Now()
	var user model.User
	err := r.withAssociations(ctx).Where("username = ?", username).First(&user).Error
	r.log.Debug().Str("username", username).Dur("elapsed", time.Since(start)).Msg("find user by username")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, page, pageSize int, filter Filter, sort string) ([]model.User, error) {
	start := time.Now()
	query := r.withAssociations(ctx)
	if filter != nil {
		query = filter(query)
	}
	if sort != "" {
		query = query.Order(sort)
	}
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		// page is 1-based
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	var users []model.User
	err := query.Find(&users).Error
	r.log.Debug().
		Int("page", page).
		Int("page_size", pageSize).
		Dur("elapsed", time.Since(start)).
		Msg("list users")
	return users, err
}

// Save inserts a new user or updates an existing one, replacing the role and
// equipment sets so removed entries disappear from the side tables.
func (r *userRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if user.ID == 0 {
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			// a zero-value detail is not cascaded, but every member owns one
			if user.Detail.ID == 0 {
				user.Detail.UserID = user.ID
				return saveDetail(tx, &user.Detail)
			}
			return nil
		}
		if err := tx.Omit("Roles", "Detail").Save(user).Error; err != nil {
			return err
		}
		if err := replaceRoles(tx, user); err != nil {
			return err
		}
		user.Detail.UserID = user.ID
		return saveDetail(tx, &user.Detail)
	})
	r.log.Debug().Uint("id", user.ID).Dur("elapsed", time.Since(start)).Msg("save user")
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user together with its role rows, detail, and the
// detail's equipment rows.
func (r *userRepository) Delete(ctx context.Context, user *model.User) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&model.RoleAssignment{}).Error; err != nil {
			return err
		}
		if err := deleteDetailByOwner(tx, user.ID); err != nil {
			return err
		}
		return tx.Delete(&model.User{}, user.ID).Error
	})
	r.log.Debug().Uint("id", user.ID).Dur("elapsed", time.Since(start)).Msg("delete user")
	return err
}

// ResetAllPaymentStatus clears the paid flag on every row that currently has
// it set. Set-based, no entities are loaded.
func (r *userRepository) ResetAllPaymentStatus(ctx context.Context) error {
	start := time.Now()
	err := r.db.WithContext(ctx).
		Model(&model.UserDetail{}).
		Where("has_paid = ?", true).
		Update("has_paid", false).Error
	r.log.Debug().Dur("elapsed", time.Since(start)).Msg("reset all payment status")
	return err
}

func replaceRoles(tx *gorm.DB, user *model.User) error {
	if err := tx.Where("user_id = ?", user.ID).Delete(&model.RoleAssignment{}).Error; err != nil {
		return err
	}
	for i := range user.Roles {
		user.Roles[i].UserID = user.ID
	}
	if len(user.Roles) == 0 {
		return nil
	}
	return tx.Create(&user.Roles).Error
}
