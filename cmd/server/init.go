package main

import (
	"context"
	"fmt"
	"time"

	"github.com/anurag2169/RiseStream-backend/config"
	commentmodels "github.com/anurag2169/RiseStream-backend/internal/api/comment/models"
	likemodels "github.com/anurag2169/RiseStream-backend/internal/api/like/models"
	playlistmodels "github.com/anurag2169/RiseStream-backend/internal/api/playlist/models"
	submodels "github.com/anurag2169/RiseStream-backend/internal/api/subscription/models"
	usermodels "github.com/anurag2169/RiseStream-backend/internal/api/user/models"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"
	"github.com/anurag2169/RiseStream-backend/internal/database"
	"github.com/anurag2169/RiseStream-backend/internal/global"
	"github.com/anurag2169/RiseStream-backend/internal/logger"
)

// collectionModels pairs every collection with the model carrying its index tags.
func collectionModels() map[string]interface{} {
	names := global.MongoDB_ColNames
	return map[string]interface{}{
		names.Users:         usermodels.User{},
		names.Videos:        videomodels.Video{},
		names.Comments:      commentmodels.Comment{},
		names.Likes:         likemodels.Like{},
		names.Subscriptions: submodels.Subscription{},
		names.Playlists:     playlistmodels.Playlist{},
	}
}

// InitGlobal loads the configuration, the validator and the MongoDB session.
func InitGlobal() error {
	log := logger.GetAppLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}
	global.MongoDB_ServerConfig = cfg
	log.Info("Initialized server config")

	global.InitValidator()
	log.Info("Initialized validator")

	return initDatabase_MongoDB(cfg)
}

func initDatabase_MongoDB(cfg *config.Configuration) error {
	log := logger.GetAppLogger()

	client, err := database.GetInstance(cfg)
	if err != nil {
		return fmt.Errorf("get database instance: %w", err)
	}
	global.MongoDB_Session = client

	models := collectionModels()
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	if err := database.EnsureDatabaseAndCollections(client, cfg.MongoDB_DBName, names); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	db := client.Database(cfg.MongoDB_DBName)
	for name, model := range models {
		if err := database.CreateIndexes(ctx, db.Collection(name), model); err != nil {
			return fmt.Errorf("create indexes for %s: %w", name, err)
		}
	}
	log.Info("Ensured collections and indexes")
	return nil
}
