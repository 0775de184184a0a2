package main

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"skicheck/internal/auth"
	"skicheck/internal/config"
	"skicheck/internal/db"
	"skicheck/internal/model"
	"skicheck/internal/repository"
	"skicheck/pkg/logger"
)

type seedMember struct {
	username  string
	email     string
	firstName string
	lastName  string
	roles     []model.Role
	hasPaid   bool
	equipment []model.Equipment
}

var seedMembers = []seedMember{
	{
		username:  "admin",
		email:     "admin@skicheck.local",
		firstName: "Anna",
		lastName:  "Keller",
		roles:     []model.Role{model.RoleAdmin, model.RoleUser},
		hasPaid:   true,
		equipment: []model.Equipment{model.EquipmentSkis, model.EquipmentPoles, model.EquipmentHelmet},
	},
	{
		username:  "beat",
		email:     "beat@skicheck.local",
		firstName: "Beat",
		lastName:  "Moser",
		roles:     []model.Role{model.RoleUser},
		hasPaid:   false,
		equipment: []model.Equipment{model.EquipmentSnowboard, model.EquipmentBoots},
	},
	{
		username:  "claire",
		email:     "claire@skicheck.local",
		firstName: "Claire",
		lastName:  "Dubois",
		roles:     []model.Role{model.RoleUser},
		hasPaid:   true,
		equipment: []model.Equipment{model.EquipmentSkis, model.EquipmentBoots, model.EquipmentHelmet},
	},
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Get()
		l.Fatal().Err(err).Msg("loading configuration failed")
	}
	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	log := logger.Named("seed")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RoleAssignment{},
		&model.UserDetail{},
		&model.EquipmentItem{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}

	hash, err := auth.HashPassword(cfg.DefaultPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hashing default password failed")
	}

	repo := repository.NewUserRepository(gormDB)
	created := 0
	for _, m := range seedMembers {
		if _, err := repo.FindByUsername(ctx, m.username); err == nil {
			log.Info().Str("username", m.username).Msg("member already present, skipping")
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal().Err(err).Str("username", m.username).Msg("member lookup failed")
		}

		user := &model.User{
			Username:       m.username,
			Email:          m.email,
			FirstName:      m.firstName,
			LastName:       m.lastName,
			HashedPassword: hash,
		}
		user.SetRoleSet(m.roles...)
		user.Detail.HasPaid = m.hasPaid
		user.Detail.SetEquipmentSet(m.equipment...)

		if _, err := repo.Save(ctx, user); err != nil {
			log.Fatal().Err(err).Str("username", m.username).Msg("seeding member failed")
		}
		created++
	}

	log.Info().Int("created", created).Msg("seeding finished")
}
