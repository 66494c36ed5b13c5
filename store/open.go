package store

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/bitmark-inc/commerce-survey/schema"
)

const (
	DriverSheets   = "sheets"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// OpenFromConfig builds the backend named by `store.driver`. The returned
// store is wrapped in a read cache when `store.cache_ttl` is positive.
func OpenFromConfig(ctx context.Context) (ResponseStore, error) {
	s, err := openDriver(ctx, viper.GetString("store.driver"))
	if err != nil {
		return nil, err
	}

	if ttl := viper.GetDuration("store.cache_ttl"); ttl > 0 {
		log.WithField("prefix", cacheLogPrefix).Infof("caching reads for %s", ttl)
		return NewCachedStore(s, ttl), nil
	}
	return s, nil
}

func openDriver(ctx context.Context, driver string) (ResponseStore, error) {
	header := schema.Header()

	switch driver {
	case DriverSheets:
		opts := []option.ClientOption{}
		if file := viper.GetString("sheets.credentials"); file != "" {
			opts = append(opts, option.WithCredentialsFile(file))
		}
		if endpoint := viper.GetString("sheets.endpoint"); endpoint != "" {
			opts = append(opts, option.WithEndpoint(endpoint))
		}
		service, err := sheets.NewService(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("create sheets service with error: %w", err)
		}
		return NewSheetsStore(service, viper.GetString("sheets.spreadsheet_id"), viper.GetString("sheets.worksheet")), nil

	case DriverMongo:
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("connect mongo database with error: %w", err)
		}
		return NewMongoStore(client, viper.GetString("mongo.database"), header), nil

	case DriverPostgres:
		ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
		if err != nil {
			return nil, fmt.Errorf("connect orm database with error: %w", err)
		}
		return NewORMStore(ormDB, header), nil

	case DriverMemory, "":
		log.WithField("prefix", "store").Warn("using in-memory store, responses are lost on restart")
		return NewMemoryStore(header), nil
	}

	return nil, fmt.Errorf("unknown store driver: %s", driver)
}
