package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/bitmark-inc/commerce-survey/schema"
	"github.com/bitmark-inc/commerce-survey/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("commerce")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "", "[optional] path of configuration file")
	flag.Parse()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			panic(err)
		}
	}

	// the cache layer is irrelevant here
	viper.Set("store.cache_ttl", 0)

	ctx := context.Background()
	s, err := store.OpenFromConfig(ctx)
	if err != nil {
		panic(err)
	}
	defer s.Close()

	p, ok := s.(store.Preparer)
	if !ok {
		fmt.Printf("store driver %q needs no preparation\n", viper.GetString("store.driver"))
		return
	}

	fmt.Println("prepare response store")
	if err := p.Prepare(ctx, schema.Header()); err != nil {
		panic(err)
	}
}
