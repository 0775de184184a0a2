package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"skicheck/internal/model"
	"skicheck/pkg/logger"
)

// UserDetailRepository defines persistence operations for member details.
type UserDetailRepository interface {
	FindAll(ctx context.Context) ([]model.UserDetail, error)
	FindByID(ctx context.Context, id uint) (*model.UserDetail, error)
	Save(ctx context.Context, detail *model.UserDetail) (*model.UserDetail, error)
	Delete(ctx context.Context, detail *model.UserDetail) error
	ResetAllPayments(ctx context.Context) error
}

type userDetailRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewUserDetailRepository builds a GORM-backed repository.
func NewUserDetailRepository(db *gorm.DB) UserDetailRepository {
	return &userDetailRepository{db: db, log: logger.Named("user_detail_repository")}
}

func (r *userDetailRepository) FindAll(ctx context.Context) ([]model.UserDetail, error) {
	start := time.Now()
	var details []model.UserDetail
	err := r.db.WithContext(ctx).Preload("Equipment").Find(&details).Error
	r.log.Debug().Dur("elapsed", time.Since(start)).Int("count", len(details)).Msg("find all details")
	return details, err
}

func (r *userDetailRepository) FindByID(ctx context.Context, id uint) (*model.UserDetail, error) {
	start := time.Now()
	var detail model.UserDetail
	err := r.db.WithContext(ctx).Preload("Equipment").First(&detail, id).Error
	r.log.Debug().Uint("id", id).Dur("elapsed", time.Since(start)).Msg("find detail by id")
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *userDetailRepository) Save(ctx context.Context, detail *model.UserDetail) (*model.UserDetail, error) {
	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveDetail(tx, detail)
	})
	r.log.Debug().Uint("id", detail.ID).Dur("elapsed", time.Since(start)).Msg("save detail")
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (r *userDetailRepository) Delete(ctx context.Context, detail *model.UserDetail) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", detail.ID).Delete(&model.EquipmentItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.UserDetail{}, detail.ID).Error
	})
	r.log.Debug().Uint("id", detail.ID).Dur("elapsed", time.Since(start)).Msg("delete detail")
	return err
}

func (r *userDetailRepository) ResetAllPayments(ctx context.Context) error {
	start := time.Now()
	err := r.db.WithContext(ctx).
		Model(&model.UserDetail{}).
		Where("has_paid = ?", true).
		Update("has_paid", false).Error
	r.log.Debug().Dur("elapsed", time.Since(start)).Msg("reset all payments")
	return err
}

// saveDetail upserts a detail row and replaces its equipment rows. When the
// owning user already has a detail the incoming record is reattached to it,
// keeping the one-to-one invariant.
func saveDetail(tx *gorm.DB, detail *model.UserDetail) error {
	if detail.ID == 0 && detail.UserID != 0 {
		var existing model.UserDetail
		err := tx.Select("id").Where("user_id = ?", detail.UserID).First(&existing).Error
		switch {
		case err == nil:
			detail.ID = existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first detail for this user
		default:
			return err
		}
	}
	if err := tx.Omit("Equipment").Save(detail).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", detail.ID).Delete(&model.EquipmentItem{}).Error; err != nil {
		return err
	}
	for i := range detail.Equipment {
		detail.Equipment[i].UserDetailID = detail.ID
	}
	if len(detail.Equipment) == 0 {
		return nil
	}
	return tx.Create(&detail.Equipment).Error
}

// deleteDetailByOwner removes a user's detail and its equipment rows, if a
// detail exists.
func deleteDetailByOwner(tx *gorm.DB, userID uint) error {
	var detail model.UserDetail
	err := tx.Select("id").Where("user_id = ?", userID).First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", detail.ID).Delete(&model.EquipmentItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.UserDetail{}, detail.ID).Error
}
