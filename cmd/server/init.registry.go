package main

import (
	"github.com/anurag2169/RiseStream-backend/config"
	"github.com/anurag2169/RiseStream-backend/internal/global"
	"github.com/anurag2169/RiseStream-backend/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

// InitCollections registers every collection handle in the global registry.
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	log := logger.GetAppLogger()
	db := client.Database(cfg.MongoDB_DBName)

	for name := range collectionModels() {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			log.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}
		if registered {
			log.Debugf("Collection %s registered", name)
		} else {
			log.Warnf("Collection %s already registered", name)
		}
	}
	log.Info("Initialized collection registry")
	return nil
}
