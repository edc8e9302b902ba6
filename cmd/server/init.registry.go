package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"cashmitra/config"
	"cashmitra/internal/database"
	"cashmitra/internal/global"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")

	// Tạo các index bổ sung (unique slug, compound, TTL-like queries)
	db, _ := global.RegistryDatabase.Get(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.CreateAdditionalIndexes(context.Background(), db); err != nil {
		// Index lỗi không chặn server chạy, nhưng phải thấy trong log
		logrus.Errorf("Failed to create additional indexes: %v", err)
	} else {
		logrus.Info("Created additional indexes")
	}
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName, db); err != nil {
		return err
	}

	colNames := []string{
		global.MongoDB_ColNames.Products,
		global.MongoDB_ColNames.Categories,
		global.MongoDB_ColNames.Accessories,
		global.MongoDB_ColNames.Questions,
		global.MongoDB_ColNames.Questionnaires,
		global.MongoDB_ColNames.Partners,
		global.MongoDB_ColNames.PickupOrders,
		global.MongoDB_ColNames.SellSessions,
		global.MongoDB_ColNames.Assets,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
