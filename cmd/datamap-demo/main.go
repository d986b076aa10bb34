package main

import (
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skybi/datamap/internal/config"
	"github.com/skybi/datamap/internal/seed"
	"github.com/skybi/datamap/pkg/container"
	"github.com/skybi/datamap/pkg/datamap"
	"github.com/skybi/datamap/pkg/holder"
	"os"
	"runtime"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	// Load the seed items
	items := seed.Default()
	if cfg.SeedFile != "" {
		log.Info().Str("path", cfg.SeedFile).Msg("loading seed file...")
		items, err = seed.Load(cfg.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not load the seed file")
		}
	}

	// Observe the inventory using logging and metric hooks
	registry := prometheus.NewRegistry()
	metricHooks := datamap.NewMetricHooks[string, *seed.Item]("inventory")
	if err := metricHooks.Register(registry); err != nil {
		log.Fatal().Err(err).Msg("could not register the inventory metrics")
	}
	hooks := datamap.MultiHooks[string, *seed.Item]{
		datamap.NewLogHooks[string, *seed.Item](log.Logger),
		metricHooks,
	}

	inventory, err := buildInventory(cfg, items, hooks)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build the inventory")
	}
	runInventory(inventory)

	if err := runSessions(); err != nil {
		log.Fatal().Err(err).Msg("could not build the session map")
	}

	reportMetrics(registry)
	log.Info().Msg("done!")
}

func buildInventory(cfg *config.Config, items map[string]*seed.Item, hooks datamap.Hooks[string, *seed.Item]) (*datamap.FactoryMap[string, *seed.Item], error) {
	settings := datamap.FactorySettings[string, *seed.Item]{
		Comparator: datamap.ByKey[string, *seed.Item](),
		DefaultValue: func() *seed.Item {
			return &seed.Item{}
		},
		Ordered: cfg.Ordered,
	}
	if cfg.Clone {
		settings.Cloner = (*seed.Item).Clone
	}

	opts := []datamap.Option[string, *seed.Item]{datamap.WithHooks(hooks)}
	if cfg.Backend == config.BackendIndexed {
		opts = append(opts, datamap.WithContainer(container.IndexedConstructor[string, *seed.Item]()))
	}
	log.Info().Str("backend", cfg.Backend).Bool("ordered", cfg.Ordered).Bool("clone", cfg.Clone).Msg("building inventory...")
	return datamap.FactoryFromObject(items, settings, opts...)
}

func runInventory(inventory *datamap.FactoryMap[string, *seed.Item]) {
	// A missing item is materialized with its default value
	kiwi, _ := inventory.Get("kiwi")
	kiwi.Quantity += 5
	inventory.Set("kiwi", kiwi)

	// Changes to a cloned item stay local until they are written back
	apple, _ := inventory.Get("apple")
	apple.Quantity--
	stored, _ := inventory.Get("apple")
	log.Info().Int("local", apple.Quantity).Int("stored", stored.Quantity).Msg("took an apple")

	inventory.ForEach(func(item *seed.Item, name string) {
		log.Info().Str("item", name).Int("quantity", item.Quantity).Strs("tags", item.Tags).Msg("inventory")
	})
}

func runSessions() error {
	sessions, err := datamap.NewWeak([]container.Entry[string, int]{{Key: "x", Value: 1}})
	if err != nil {
		return err
	}
	value, _ := sessions.Get("x")
	log.Info().Str("holder", sessions.Holder().ID().String()).Int("x", value).Int("table_size", holder.DefaultTable.Len()).
		Msg("weak session map is reachable")

	// The map is not used anymore, so its container may be reclaimed at any later point
	runtime.GC()
	log.Info().Int("table_size", holder.DefaultTable.Len()).Msg("dropped weak session map")
	return nil
}

func reportMetrics(registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		log.Error().Err(err).Msg("could not gather the inventory metrics")
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			event := log.Info().Str("metric", family.GetName()).Float64("value", metric.GetCounter().GetValue())
			for _, label := range metric.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			event.Msg("")
		}
	}
}
