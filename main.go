package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/commerce-survey/api"
	"github.com/bitmark-inc/commerce-survey/geo"
	"github.com/bitmark-inc/commerce-survey/store"
	"github.com/bitmark-inc/commerce-survey/utils"
)

var (
	server        *api.Server
	responseStore store.ResponseStore
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Local overrides for development
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("store.driver", store.DriverMemory)
	viper.SetDefault("store.cache_ttl", store.DefaultCacheTTL)
	viper.SetDefault("sheets.worksheet", store.DefaultWorksheet)
	viper.SetDefault("survey.timezone", utils.DefaultTimezone)
	viper.SetDefault("map.language", "es")
	viper.SetDefault("map.cache_ttl", 24*time.Hour)

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("commerce")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func initGeocoding() {
	if !viper.GetBool("map.geocode") {
		return
	}

	client, err := maps.NewClient(maps.WithAPIKey(viper.GetString("map.apikey")))
	if err != nil {
		log.WithField("prefix", "init").Errorf("init google map client with error: %s", err)
		return
	}

	geo.SetLocationResolver(geo.NewCachedLocationResolver(
		geo.NewGeocodingLocationResolver(client, viper.GetString("map.language")),
		viper.GetDuration("map.cache_ttl"),
	))
	log.WithField("prefix", "init").Info("Initialized geocoding")
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown survey api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if responseStore != nil {
			log.Info("Shutting down response store")
			responseStore.Close()
		}

		sentry.Flush(5 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	utils.InitI18NBundle()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	var err error
	responseStore, err = store.OpenFromConfig(initialCtx)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Infof("Initialized %s response store", viper.GetString("store.driver"))

	initGeocoding()

	// Init http server
	server = api.NewServer(responseStore)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
