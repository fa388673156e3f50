package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	console "github.com/asynkron/goconsole"
	"github.com/asynkron/protoactor-go/actor"
	"github.com/sirupsen/logrus"

	"github.com/9triver/lrucore/actor/cache"
	lru "github.com/9triver/lrucore/cache"
	"github.com/9triver/lrucore/configs"
	"github.com/9triver/lrucore/utils"
	"github.com/9triver/lrucore/utils/errors"
)

func loadConfig(path string, maxEntries int) (*configs.Config, error) {
	cfg := configs.Default()
	if path != "" {
		loaded, err := configs.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if maxEntries != 0 {
		cfg.MaxEntries = maxEntries
	}
	configs.RequestTimeout = cfg.RequestTimeout
	return cfg, cfg.Validate()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	maxEntries := flag.Int("max", 0, "maximum number of entries, overrides config (-1 for unbounded)")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	cfg, err := loadConfig(*configPath, *maxEntries)
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	level, _ := cfg.Level()

	sys := actor.NewActorSystem(utils.WithLogger(level, cfg.LogFiles...))
	defer sys.Shutdown()

	// the session id tags this console's log lines when several share a log
	log := logrus.WithField("session", utils.GenID())

	core := lru.New[string, string](
		lru.WithCapacity(cfg.StoreCapacity),
		lru.WithLogger(sys.Logger().With("component", "cache")),
	)
	bounded := lru.NewBounded(core, cfg.MaxEntries, func(key, value string) {
		log.Infof("Evicted %q (%d bytes)", key, len(value))
	})

	id := utils.GenCacheID()
	pid, err := cache.Spawn[string, string](sys.Root, bounded, id)
	if err != nil {
		log.Fatalf("Failed to spawn cache %s: %v", id, err)
	}
	client := cache.NewClient[string, string](sys.Root, pid)
	log.Infof("Cache %s ready (max entries %d, store capacity %d)", id, cfg.MaxEntries, cfg.StoreCapacity)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			line, err := console.ReadLine()
			if err != nil {
				return
			}
			out, err := execute(client, line)
			if errors.Is(err, errQuit) {
				return
			} else if err != nil {
				log.Errorf("%s: %s", line, errors.Stacktrace(err))
				continue
			}
			if out != "" {
				fmt.Println(out)
			}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Infof("Received signal: %v, shutting down...", sig)
	case <-done:
	}
	log.Info("Cache shutdown complete")
}
