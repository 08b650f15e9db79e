package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/anurag2169/RiseStream-backend/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureDatabaseAndCollections creates the missing collections of dbName.
// MongoDB creates the database itself together with its first collection.
func EnsureDatabaseAndCollections(client *mongo.Client, dbName string, collections []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for _, name := range collections {
		if have[name] {
			continue
		}
		logger.GetAppLogger().Infof("Collection %s does not exist, creating", name)
		if err := db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}

	logger.GetAppLogger().Infof("Database and collections are ensured in database: %s", dbName)
	return nil
}

// parseOrder extracts the sort order (1 or -1) from an index tag part.
func parseOrder(entry map[string]string) int {
	if entry["order"] == "-1" {
		return -1
	}
	return 1
}

// parseIndexTag splits `single;compound:name,order:-1,partial` into one map per ';' part.
func parseIndexTag(tag string) []map[string]string {
	result := []map[string]string{}
	for _, part := range strings.Split(tag, ";") {
		entry := map[string]string{}
		for _, subPart := range strings.Split(part, ",") {
			subPart = strings.TrimSpace(subPart)
			if subPart == "" {
				continue
			}
			kv := strings.SplitN(subPart, ":", 2)
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		result = append(result, entry)
	}
	return result
}

// IndexModels builds the index definitions declared by `index` struct tags.
//
// Supported keys:
//   - single: one-field index, with optional order:-1
//   - unique: one-field unique index, with optional sparse
//   - compound:<name>: fields sharing a name form one index; a name containing
//     "_unique" makes it unique; partial on a field adds {field: {$exists: true}}
//     to the partial filter expression
func IndexModels(model interface{}) []mongo.IndexModel {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	models := []mongo.IndexModel{}
	compoundOrder := []string{}
	compoundKeys := map[string]bson.D{}
	compoundPartial := map[string]bson.M{}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}
		bsonField := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		for _, entry := range parseIndexTag(tag) {
			if _, ok := entry["single"]; ok {
				name := bsonField + "_single"
				models = append(models, mongo.IndexModel{
					Keys:    bson.D{{Key: bsonField, Value: parseOrder(entry)}},
					Options: options.Index().SetName(name),
				})
			}

			if _, ok := entry["unique"]; ok {
				opts := options.Index().SetName(bsonField + "_unique").SetUnique(true)
				if _, sparse := entry["sparse"]; sparse {
					opts.SetSparse(true)
				}
				models = append(models, mongo.IndexModel{
					Keys:    bson.D{{Key: bsonField, Value: 1}},
					Options: opts,
				})
			}

			if group, ok := entry["compound"]; ok && group != "" {
				if _, seen := compoundKeys[group]; !seen {
					compoundOrder = append(compoundOrder, group)
				}
				compoundKeys[group] = append(compoundKeys[group], bson.E{Key: bsonField, Value: parseOrder(entry)})
				if _, partial := entry["partial"]; partial {
					if compoundPartial[group] == nil {
						compoundPartial[group] = bson.M{}
					}
					compoundPartial[group][bsonField] = bson.M{"$exists": true}
				}
			}
		}
	}

	for _, group := range compoundOrder {
		opts := options.Index().SetName(group)
		if strings.Contains(group, "_unique") {
			opts.SetUnique(true)
		}
		if filter, ok := compoundPartial[group]; ok {
			opts.SetPartialFilterExpression(filter)
		}
		models = append(models, mongo.IndexModel{Keys: compoundKeys[group], Options: opts})
	}

	return models
}

// sameIndex compares keys and uniqueness of an existing index with a definition.
func sameIndex(existing bson.M, model mongo.IndexModel) bool {
	keys, ok := model.Keys.(bson.D)
	if !ok {
		return false
	}
	var existingKeys bson.D
	switch k := existing["key"].(type) {
	case bson.D:
		existingKeys = k
	case bson.M:
		for name, v := range k {
			existingKeys = append(existingKeys, bson.E{Key: name, Value: v})
		}
	default:
		return false
	}
	if len(existingKeys) != len(keys) {
		return false
	}

	values := map[string]int{}
	for _, e := range existingKeys {
		switch v := e.Value.(type) {
		case int32:
			values[e.Key] = int(v)
		case int64:
			values[e.Key] = int(v)
		case float64:
			values[e.Key] = int(v)
		}
	}
	for _, e := range keys {
		want, _ := e.Value.(int)
		if got, ok := values[e.Key]; !ok || got != want {
			return false
		}
	}

	unique, _ := existing["unique"].(bool)
	wantUnique := model.Options != nil && model.Options.Unique != nil && *model.Options.Unique
	return unique == wantUnique
}

// CreateIndexes creates the indexes declared on model, replacing same-named
// indexes whose definition changed.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	log := logger.GetAppLogger().WithField("collection", collection.Name())

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("cannot list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	existing := map[string]bson.M{}
	for cursor.Next(ctx) {
		var info bson.M
		if err := cursor.Decode(&info); err != nil {
			return fmt.Errorf("cannot decode index info: %w", err)
		}
		if name, ok := info["name"].(string); ok {
			existing[name] = info
		}
	}

	for _, idx := range IndexModels(model) {
		name := *idx.Options.Name
		if current, ok := existing[name]; ok {
			if sameIndex(current, idx) {
				continue
			}
			if _, err := collection.Indexes().DropOne(ctx, name); err != nil {
				return fmt.Errorf("cannot drop index %s: %w", name, err)
			}
			log.Infof("Dropped outdated index %s", name)
		}
		if _, err := collection.Indexes().CreateOne(ctx, idx); err != nil {
			return fmt.Errorf("cannot create index %s: %w", name, err)
		}
		log.Infof("Created index %s", name)
	}
	return nil
}
