package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/cache"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Global variables for dependencies
var (
	cfg            config.Config
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       *repo.MazeRepo
	mazeCache      i.MazeCache
	mazeService    i.MazeService
	mazeController api_i.Controller
	jwtTokenizer   i.Tokenizer
	router         *api.Router
	appLogger      *zap.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Fatal("connecting to MongoDB", zap.Error(err))
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Fatal("pinging MongoDB", zap.Error(err))
	}
	appLogger.Info("Connected to MongoDB")
}

func initMazeRepo(ctx context.Context, client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, cfg.DBName, "mazes")
	if err := mazeRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Fatal("creating maze indexes", zap.Error(err))
	}
	appLogger.Info("Maze repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	// previews still render without the cache
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Warn("Redis unreachable, diagram cache disabled", zap.Error(err))
		return
	}

	mazeCache = cache.NewRedisMazeCache(redisClient, cfg.CacheTTLSeconds)
	appLogger.Info("Diagram cache initialized")
}

func initMazeService() {
	serviceLogger := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout, logger.ParseLevel(cfg.LogLevel))

	var err error
	mazeService, err = service.NewMazeService(mazeRepo, mazeCache, serviceLogger, &service.Options{
		MaxDimension: cfg.MaxMazeDimension,
		DefaultBias:  cfg.DefaultBias,
	})
	if err != nil {
		appLogger.Fatal("creating maze service", zap.Error(err))
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	controllerLogger := logger.New("MAZE-API", config.ColorMagenta, os.Stdout, logger.ParseLevel(cfg.LogLevel))
	mazeController = mazeapi.NewMazeController(mazeService, controllerLogger)
	appLogger.Info("Maze controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", cfg.HostIP, cfg.RESTPort),
		BaseURL:                 "/api",
		Mode:                    cfg.GinMode,
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
		Logger:                  logger.New("HTTP", config.ColorBlue, os.Stdout, logger.ParseLevel(cfg.LogLevel)),
	})
	appLogger.Info("Router initialized")
}

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	appLogger = logger.New("APP", config.ColorGreen, os.Stdout, logger.ParseLevel(cfg.LogLevel))
	defer func() {
		_ = appLogger.Sync()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initMazeRepo(ctx, mongoClient)
	initRedis(ctx)
	defer redisClient.Close()

	initJWTTokenizer()
	initMazeService()
	initMazeController()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error("Starting server", zap.Error(err))
		os.Exit(1)
	}
}
